package socketio_utils

import (
	models "Trazo/models/postgres"
	redis_models "Trazo/models/redis"
	"Trazo/services/redis"
	"Trazo/utils"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/socket.io/v2/socket"
	"gorm.io/gorm"
)

// Function that verifies a socket.io client connection. The client sends
// its participant id in the handshake auth data; we look the participant
// up in the database to recover its display name.
func VerifyPlayerConnection(client *socket.Socket, db *gorm.DB) (success bool, playerID, name string) {
	// Checks if we have auth data in the connection
	authData, ok := client.Handshake().Auth.(map[string]interface{})
	if !ok {
		fmt.Println("No auth data provided in handshake!")
		client.Emit("error", gin.H{"error": "Connection failed: missing auth data"})
		return false, "", ""
	}

	playerID, exists := authData["player_id"].(string)
	if !exists || playerID == "" {
		fmt.Println("No player_id provided in handshake!")
		client.Emit("error", gin.H{"error": "Connection failed: missing player_id"})
		return false, "", ""
	}

	// Fetch the participant's name from the database
	var participant models.Participant
	result := db.Where("id = ?", playerID).First(&participant)
	if result.Error != nil {
		fmt.Println("Error fetching participant from database:", result.Error)
		client.Emit("error", gin.H{"error": "Connection failed: unknown participant"})
		return false, "", ""
	}

	return true, playerID, participant.Name
}

// Helper function to validate room and player, returning the room state if valid
func ValidateRoomAndPlayer(redisClient *redis.RedisClient, client *socket.Socket,
	db *gorm.DB, playerID string, roomID string) (*redis_models.RoomState, error) {

	isInRoom, err := utils.IsParticipantInRoom(db, roomID, playerID)
	if err != nil {
		log.Printf("[CHECK-ERROR] Database error: %v", err)
		client.Emit("error", gin.H{"error": "Database error"})
		return nil, err
	}

	if !isInRoom {
		log.Printf("[CHECK-ERROR] Player is NOT in room: %s, Room: %s", playerID, roomID)
		client.Emit("error", gin.H{"error": "You must join the room first"})
		return nil, fmt.Errorf("player not in room")
	}

	state, err := redisClient.GetRoomState(roomID)
	if err != nil {
		log.Printf("[CHECK-ERROR] Error obtaining room state: %v", err)
		client.Emit("error", gin.H{"error": "Error obtaining room state"})
		return nil, err
	}

	return state, nil
}
