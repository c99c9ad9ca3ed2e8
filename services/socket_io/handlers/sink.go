package handlers

import (
	redis_models "Trazo/models/redis"
	"Trazo/services/redis"
	socketio_types "Trazo/services/socket_io/types"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/socket.io/v2/socket"
)

// RoomSink stores game announcements in the room's chat history and
// pushes them to every connected client in the room.
type RoomSink struct {
	Redis *redis.RedisClient
	Sio   *socketio_types.SocketServer
}

func (s *RoomSink) AppendSystemMessage(roomId string, text string) error {
	msg := redis_models.NewSystemMessage(text)
	if err := s.Redis.AppendChatMessage(roomId, msg); err != nil {
		return err
	}
	s.Sio.Sio_server.To(socket.Room(roomId)).Emit("chat_message", gin.H{
		"text":        msg.Text,
		"sender_id":   msg.SenderID,
		"sender_name": msg.SenderName,
		"timestamp":   msg.Timestamp,
	})
	return nil
}
