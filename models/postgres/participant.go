package postgres

import (
	"time"

	"gorm.io/gorm"
)

/*
 * 'Participant' is one durable room membership row. JoinedAt drives the
 * turn order (insertion order == drawer rotation).
 */
type Participant struct {
	ID       string    `gorm:"primaryKey;size:50;not null"`
	RoomID   string    `gorm:"size:50;index:idx_participants_room;not null"`
	Name     string    `gorm:"size:50;not null"`
	IsOwner  bool      `gorm:"default:false"`
	JoinedAt time.Time `gorm:"default:CURRENT_TIMESTAMP"`

	Room Room `gorm:"foreignKey:RoomID"`
}

// Participant ids are generated server-side so clients can't pick
// colliding or impersonating ids.
func (p *Participant) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID != "" {
		return nil
	}
	for {
		newID := generateRoomID(12)
		var existing Participant
		if err := tx.Where("id = ?", newID).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				p.ID = newID
				return nil
			}
			return err
		}
	}
}
