package redis

import "time"

// SystemSenderID marks messages authored by the game itself
// (announcements), as opposed to player chat.
const SystemSenderID = "system"

// ChatMessage represents a message in the room chat
type ChatMessage struct {
	Text       string    `json:"text"`
	SenderID   string    `json:"sender_id"`
	SenderName string    `json:"sender_name"`
	Timestamp  time.Time `json:"timestamp"`
}

// NewSystemMessage builds an announcement message.
func NewSystemMessage(text string) ChatMessage {
	return ChatMessage{
		Text:       text,
		SenderID:   SystemSenderID,
		SenderName: "System",
		Timestamp:  time.Now(),
	}
}
