package handlers

import (
	models "Trazo/models/postgres"
	"Trazo/services/redis"
	socketio_types "Trazo/services/socket_io/types"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/socket.io/v2/socket"
	"gorm.io/gorm"
)

// HandleExitRoom removes the player from the room on request: the driver is
// stopped, membership is dropped from both stores and ownership is handed
// over if needed.
func HandleExitRoom(redisClient *redis.RedisClient, client *socket.Socket, db *gorm.DB,
	playerID string, sio *socketio_types.SocketServer) func(args ...interface{}) {
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

		log.Printf("[EXIT] Player %s leaving room %s", playerID, roomID)
		leaveRoom(redisClient, db, sio, roomID, playerID)

		client.Leave(socket.Room(roomID))
		client.Emit("room_left", gin.H{"room_id": roomID})
		sio.Sio_server.To(socket.Room(roomID)).Emit("player_left", gin.H{
			"room_id":   roomID,
			"player_id": playerID,
		})
	}
}

// HandleDisconnecting runs the same teardown as a voluntary exit when the
// socket drops. The room ids come from the socket's room set.
func HandleDisconnecting(redisClient *redis.RedisClient, client *socket.Socket, db *gorm.DB,
	playerID string, sio *socketio_types.SocketServer) func(args ...interface{}) {
	return func(args ...interface{}) {
		log.Printf("[DISCONNECT] Player %s disconnecting, socket %s", playerID, client.Id())

		// Find the rooms this player is a member of
		var memberships []models.Participant
		if err := db.Where("id = ?", playerID).Find(&memberships).Error; err != nil {
			log.Printf("[DISCONNECT-ERROR] Error finding player's rooms: %v", err)
		} else {
			for _, membership := range memberships {
				roomID := membership.RoomID
				log.Printf("[DISCONNECT] Removing player %s from room %s", playerID, roomID)
				leaveRoom(redisClient, db, sio, roomID, playerID)
				sio.Sio_server.To(socket.Room(roomID)).Emit("player_left", gin.H{
					"room_id":   roomID,
					"player_id": playerID,
					"reason":    "disconnected",
				})
			}
		}

		sio.RemoveConnection(playerID)
	}
}

// leaveRoom is the shared teardown for voluntary exits and disconnects.
func leaveRoom(redisClient *redis.RedisClient, db *gorm.DB, sio *socketio_types.SocketServer,
	roomID, playerID string) {
	// Stop ticking for this client before touching membership
	sio.DetachDriver(playerID)

	state, err := removeParticipant(redisClient, roomID, playerID)
	if err != nil {
		log.Printf("[EXIT-ERROR] Room %s: %v", roomID, err)
	}

	// Mirror membership in PostgreSQL
	if err := db.Where("id = ? AND room_id = ?", playerID, roomID).
		Delete(&models.Participant{}).Error; err != nil {
		log.Printf("[EXIT-ERROR] Error deleting participant %s: %v", playerID, err)
	}

	if state != nil && len(state.Participants) == 0 {
		if err := db.Where("id = ?", roomID).Delete(&models.Room{}).Error; err != nil {
			log.Printf("[EXIT-ERROR] Error deleting empty room %s: %v", roomID, err)
		}
		return
	}

	// Keep the durable owner column in sync with the document
	if state != nil {
		if owner := state.Owner(); owner != nil {
			if err := db.Model(&models.Room{}).Where("id = ?", roomID).
				Update("owner_id", owner.ID).Error; err != nil {
				log.Printf("[EXIT-ERROR] Error updating room owner: %v", err)
			}
		}
	}
}
