package postgres

import (
	"time"

	"gorm.io/datatypes"
)

/*
 * 'GameResult' is the durable record of one finished game: the final
 * scoreboard as it stood when the last round ended. Written by the
 * SyncManager from the Redis snapshot, never updated afterwards.
 */
type GameResult struct {
	ID           uint           `gorm:"primaryKey;autoIncrement"`
	RoomID       string         `gorm:"size:50;index:idx_game_results_room;not null"`
	RoundsPlayed int            `gorm:"not null"`
	Scores       datatypes.JSON `gorm:"not null"` // map[participantID]points
	FinishedAt   time.Time      `gorm:"default:CURRENT_TIMESTAMP"`

	Room Room `gorm:"foreignKey:RoomID"`
}
