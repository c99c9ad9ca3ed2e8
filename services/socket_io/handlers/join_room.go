package handlers

import (
	redis_models "Trazo/models/redis"
	"Trazo/services/game"
	"Trazo/services/redis"
	socketio_types "Trazo/services/socket_io/types"
	game_sync "Trazo/sync"
	"Trazo/utils"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/socket.io/v2/socket"
	"gorm.io/gorm"
)

// HandleJoinRoom wires a connected client into a room: it registers the
// participant in the shared document, joins the socket room, starts the
// client's game driver and subscribes the socket to state updates.
func HandleJoinRoom(redisClient *redis.RedisClient, client *socket.Socket, db *gorm.DB,
	playerID string, playerName string, sio *socketio_types.SocketServer,
	syncManager *game_sync.SyncManager) func(args ...interface{}) {
	return func(args ...interface{}) {
		log.Printf("[JOIN] HandleJoinRoom - Player: %s, Args: %v, Socket ID: %s",
			playerID, args, client.Id())

		if len(args) < 1 {
			log.Printf("[JOIN-ERROR] Missing arguments for player %s", playerID)
			client.Emit("error", gin.H{"error": "Missing room id"})
			return
		}

		roomID, ok := args[0].(string)
		if !ok || roomID == "" {
			client.Emit("error", gin.H{"error": "Invalid room id"})
			return
		}

		// 1. The room must exist in PostgreSQL
		room, err := utils.CheckRoomExists(db, roomID)
		if err != nil {
			log.Printf("[JOIN-ERROR] Room %s not found: %v", roomID, err)
			client.Emit("error", gin.H{"error": "Room not found"})
			return
		}

		// 2. And the player must have joined it through the HTTP API
		isInRoom, err := utils.IsParticipantInRoom(db, roomID, playerID)
		if err != nil {
			log.Printf("[JOIN-ERROR] Database error: %v", err)
			client.Emit("error", gin.H{"error": "Database error"})
			return
		}
		if !isInRoom {
			log.Printf("[JOIN-ERROR] Player %s is not a member of room %s", playerID, roomID)
			client.Emit("error", gin.H{"error": "Join the room through the API first"})
			return
		}

		// 3. Make sure the player appears in the shared document. A mid-game
		// joiner gets a zero score and enters the drawer rotation next round.
		state, err := redisClient.GetRoomState(roomID)
		if err != nil {
			state = newRoomState(room)
		}
		if state.Participant(playerID) == nil {
			state.Participants = append(state.Participants, redis_models.Participant{
				ID:      playerID,
				Name:    playerName,
				IsOwner: room.OwnerID == playerID,
			})
			if err := redisClient.SaveRoomState(state); err != nil {
				log.Printf("[JOIN-ERROR] Error saving room state: %v", err)
				client.Emit("error", gin.H{"error": "Error joining the room"})
				return
			}
		}

		// 4. Join the socket room
		client.Join(socket.Room(roomID))

		// 5. Start this client's game driver. The driver ticks the shared
		// countdowns; only the owner's commits stick.
		sink := &RoomSink{Redis: redisClient, Sio: sio}
		driver := game.NewDriver(redisClient, redisClient, sink, roomID, playerID)
		driver.OnGameOver = func(final *redis_models.RoomState) {
			if err := syncManager.SyncFinishedGame(roomID); err != nil {
				log.Printf("[SYNC-ERROR] Room %s: %v", roomID, err)
			}
			sio.Sio_server.To(socket.Room(roomID)).Emit("game_over", gin.H{
				"room_id":       roomID,
				"player_scores": final.Game.PlayerScores,
			})
		}
		if err := driver.Start(); err != nil {
			log.Printf("[JOIN-ERROR] Error starting game driver: %v", err)
			client.Emit("error", gin.H{"error": "Error joining the room"})
			return
		}

		// 6. Feed every new snapshot to this socket, masked for its viewer
		stopFeed, err := redisClient.SubscribeRoom(roomID, func(s *redis_models.RoomState) {
			client.Emit("room_state", RoomStatePayload(s, playerID))
		})
		if err != nil {
			log.Printf("[JOIN-ERROR] Error subscribing to room updates: %v", err)
			driver.Stop()
			client.Emit("error", gin.H{"error": "Error joining the room"})
			return
		}
		sio.AttachDriver(playerID, driver, stopFeed)

		log.Printf("[JOIN-SUCCESS] Player %s joined room %s", playerID, roomID)
		client.Emit("room_joined", RoomStatePayload(state, playerID))
		sio.Sio_server.To(socket.Room(roomID)).Emit("player_joined", gin.H{
			"room_id": roomID,
			"player":  gin.H{"id": playerID, "name": playerName},
		})
	}
}
