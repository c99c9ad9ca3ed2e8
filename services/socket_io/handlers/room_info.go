package handlers

import (
	"Trazo/services/redis"
	socketio_utils "Trazo/services/socket_io/utils"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/socket.io/v2/socket"
	"gorm.io/gorm"
)

// GetRoomInfo sends the requesting client its view of the room document.
// This is how a reconnecting client resynchronizes: the payload is derived
// from the current snapshot, so countdowns and hints come back consistent
// no matter how long the client was away.
func GetRoomInfo(redisClient *redis.RedisClient, client *socket.Socket, db *gorm.DB,
	playerID string) func(args ...interface{}) {
	return func(args ...interface{}) {
		if len(args) < 1 {
			client.Emit("error", gin.H{"error": "Missing room id"})
			return
		}
		roomID, ok := args[0].(string)
		if !ok || roomID == "" {
			client.Emit("error", gin.H{"error": "Invalid room id"})
			return
		}

		state, err := socketio_utils.ValidateRoomAndPlayer(redisClient, client, db, playerID, roomID)
		if err != nil {
			return
		}

		log.Printf("[INFO] Room info requested by %s for room %s", playerID, roomID)
		client.Emit("room_info", RoomStatePayload(state, playerID))
	}
}
