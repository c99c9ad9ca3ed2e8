package handlers

import (
	redis_models "Trazo/models/redis"
	"Trazo/services/game"
	"Trazo/services/redis"
	socketio_types "Trazo/services/socket_io/types"
	socketio_utils "Trazo/services/socket_io/utils"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/socket.io/v2/socket"
	"gorm.io/gorm"
)

// HandleChatMessage routes a typed message: during a drawing turn a message
// matching the secret word is treated as a guess and never shown in chat,
// anything else is a plain chat message for the whole room.
func HandleChatMessage(redisClient *redis.RedisClient, client *socket.Socket, db *gorm.DB,
	playerID string, playerName string, sio *socketio_types.SocketServer) func(args ...interface{}) {
	return func(args ...interface{}) {
		if len(args) < 2 {
			client.Emit("error", gin.H{"error": "Missing room id or message"})
			return
		}
		roomID, ok := args[0].(string)
		if !ok || roomID == "" {
			client.Emit("error", gin.H{"error": "Invalid room id"})
			return
		}
		text, ok := args[1].(string)
		if !ok || text == "" {
			client.Emit("error", gin.H{"error": "Invalid message"})
			return
		}

		state, err := socketio_utils.ValidateRoomAndPlayer(redisClient, client, db, playerID, roomID)
		if err != nil {
			return
		}

		// Secret word suppression: the word itself never reaches the chat,
		// whether the guess scores or not (retypes, the drawer leaking it).
		if state.Game.IsGameActive && state.Game.SelectedWord != "" &&
			game.MatchesSecretWord(&state.Game, text) {
			driver, exists := sio.GetDriver(playerID)
			if !exists {
				client.Emit("error", gin.H{"error": "Join the room first"})
				return
			}
			points, correct, err := driver.SubmitGuess(text)
			if err != nil {
				log.Printf("[CHAT-ERROR] Guess by %s in room %s: %v", playerID, roomID, err)
				client.Emit("error", gin.H{"error": "Error submitting guess"})
				return
			}
			client.Emit("guess_result", gin.H{
				"room_id": roomID,
				"correct": correct,
				"points":  points,
			})
			return
		}

		msg := redis_models.ChatMessage{
			Text:       text,
			SenderID:   playerID,
			SenderName: playerName,
			Timestamp:  time.Now(),
		}
		if err := redisClient.AppendChatMessage(roomID, msg); err != nil {
			log.Printf("[CHAT-ERROR] Error storing message in room %s: %v", roomID, err)
			client.Emit("error", gin.H{"error": "Error sending message"})
			return
		}
		sio.Sio_server.To(socket.Room(roomID)).Emit("chat_message", gin.H{
			"text":        msg.Text,
			"sender_id":   msg.SenderID,
			"sender_name": msg.SenderName,
			"timestamp":   msg.Timestamp,
		})
	}
}

// HandleGetChatHistory returns the room's stored chat log, oldest first.
func HandleGetChatHistory(redisClient *redis.RedisClient, client *socket.Socket, db *gorm.DB,
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

		if _, err := socketio_utils.ValidateRoomAndPlayer(redisClient, client, db, playerID, roomID); err != nil {
			return
		}

		history, err := redisClient.GetChatHistory(roomID)
		if err != nil {
			log.Printf("[CHAT-ERROR] Error reading chat history for room %s: %v", roomID, err)
			client.Emit("error", gin.H{"error": "Error reading chat history"})
			return
		}

		messages := make([]gin.H, 0, len(history))
		for _, m := range history {
			messages = append(messages, gin.H{
				"text":        m.Text,
				"sender_id":   m.SenderID,
				"sender_name": m.SenderName,
				"timestamp":   m.Timestamp,
			})
		}
		client.Emit("chat_history", gin.H{"room_id": roomID, "messages": messages})
	}
}
