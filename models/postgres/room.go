package postgres

import (
	"math/rand"
	"time"

	"gorm.io/gorm"
)

/*
 * 'Room' defines the structure of a Trazo game room.
 * The durable record only carries the CRUD side of a room; the live game
 * state lives in Redis and is synced back here when a game finishes.
 */
type Room struct {
	ID            string    `gorm:"primaryKey;size:50;not null"`
	OwnerID       string    `gorm:"size:50;index:idx_rooms_owner"`
	MaxPlayers    int       `gorm:"default:8"`
	DrawTime      int       `gorm:"default:90"`
	Rounds        int       `gorm:"default:3"`
	WordCount     int       `gorm:"default:3"`
	Hints         int       `gorm:"default:2"`
	CustomWords   string    `gorm:"type:text"`
	GamesPlayed   int       `gorm:"default:0"`
	CreatedAt     time.Time `gorm:"default:CURRENT_TIMESTAMP"`
	IsGameRunning bool      `gorm:"default:false;index:idx_rooms_active"`

	// Relationship with the room's members
	Participants []*Participant `gorm:"foreignKey:RoomID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

// Random room id generation. Short ids keep invite links and QR codes small.
const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func generateRoomID(length int) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = charset[rand.Intn(len(charset))]
	}
	return string(b)
}

// Ensure the id is truly unique. Collisions are rare with so few rooms, but
// loop until we find a free one anyway.
func (r *Room) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID != "" {
		return nil
	}
	for {
		newID := generateRoomID(6)
		var existing Room
		if err := tx.Where("id = ?", newID).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				r.ID = newID
				return nil
			}
			return err
		}
		// Otherwise, loop again to generate a new unique ID
	}
}
