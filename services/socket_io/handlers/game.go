package handlers

import (
	"Trazo/services/redis"
	socketio_types "Trazo/services/socket_io/types"
	socketio_utils "Trazo/services/socket_io/utils"
	game_sync "Trazo/sync"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/socket.io/v2/socket"
	"gorm.io/gorm"
)

// HandleStartGame launches a game in the room. Only the room owner's
// request goes through; the driver enforces that against the latest
// snapshot, not against whatever the client claims.
func HandleStartGame(redisClient *redis.RedisClient, client *socket.Socket, db *gorm.DB,
	playerID string, sio *socketio_types.SocketServer,
	syncManager *game_sync.SyncManager) func(args ...interface{}) {
	return func(args ...interface{}) {
		log.Printf("[START] HandleStartGame - Player: %s, Args: %v", playerID, args)

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
		if !state.IsOwner(playerID) {
			log.Printf("[START-ERROR] Player %s is not the owner of room %s", playerID, roomID)
			client.Emit("error", gin.H{"error": "Only the room owner can start the game"})
			return
		}
		if state.Game.IsGameActive {
			client.Emit("error", gin.H{"error": "A game is already running"})
			return
		}

		driver, exists := sio.GetDriver(playerID)
		if !exists {
			client.Emit("error", gin.H{"error": "Join the room before starting the game"})
			return
		}

		if err := driver.StartGame(); err != nil {
			log.Printf("[START-ERROR] Room %s: %v", roomID, err)
			client.Emit("error", gin.H{"error": "Error starting the game"})
			return
		}

		if err := syncManager.MarkGameRunning(roomID); err != nil {
			log.Printf("[START-ERROR] Error marking game running: %v", err)
		}

		log.Printf("[START-SUCCESS] Game started in room %s by %s", roomID, playerID)
		client.Emit("game_started", gin.H{"room_id": roomID})
	}
}

// HandleSelectWord lets the current drawer pick one of the offered words.
func HandleSelectWord(redisClient *redis.RedisClient, client *socket.Socket, db *gorm.DB,
	playerID string, sio *socketio_types.SocketServer) func(args ...interface{}) {
	return func(args ...interface{}) {
		log.Printf("[SELECT] HandleSelectWord - Player: %s, Args: %v", playerID, args)

		if len(args) < 2 {
			client.Emit("error", gin.H{"error": "Missing room id or word"})
			return
		}
		roomID, ok := args[0].(string)
		if !ok || roomID == "" {
			client.Emit("error", gin.H{"error": "Invalid room id"})
			return
		}
		word, ok := args[1].(string)
		if !ok || word == "" {
			client.Emit("error", gin.H{"error": "Invalid word"})
			return
		}

		if _, err := socketio_utils.ValidateRoomAndPlayer(redisClient, client, db, playerID, roomID); err != nil {
			return
		}

		driver, exists := sio.GetDriver(playerID)
		if !exists {
			client.Emit("error", gin.H{"error": "Join the room first"})
			return
		}

		if err := driver.SelectWord(word); err != nil {
			log.Printf("[SELECT-ERROR] Room %s, player %s: %v", roomID, playerID, err)
			client.Emit("error", gin.H{"error": err.Error()})
			return
		}

		log.Printf("[SELECT-SUCCESS] Player %s selected a word in room %s", playerID, roomID)
		client.Emit("word_selected", gin.H{"room_id": roomID, "word": word})
	}
}
