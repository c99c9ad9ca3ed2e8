package sync

import (
	"Trazo/services/redis"
	"database/sql"
	"encoding/json"
	"fmt"
)

// SyncManager copies game outcomes from the live Redis documents into
// PostgreSQL once they are final. Nothing here runs on the hot path: it is
// invoked exactly once per finished game, by the owner's driver.
type SyncManager struct {
	redisClient *redis.RedisClient
	db          *sql.DB
}

// NewSyncManager creates a new instance of the synchronization manager
func NewSyncManager(redisClient *redis.RedisClient, db *sql.DB) *SyncManager {
	return &SyncManager{
		redisClient: redisClient,
		db:          db,
	}
}

// SyncFinishedGame persists the final scoreboard of a room whose game just
// reached its terminal state and flips the room's running flag.
func (sm *SyncManager) SyncFinishedGame(roomId string) error {
	// Re-read the authoritative final snapshot from Redis
	state, err := sm.redisClient.GetRoomState(roomId)
	if err != nil {
		return fmt.Errorf("error getting room state from Redis: %v", err)
	}
	if state.Game.IsGameActive {
		return fmt.Errorf("game in room %s is still running", roomId)
	}

	scores, err := json.Marshal(state.Game.PlayerScores)
	if err != nil {
		return fmt.Errorf("error marshaling final scores: %v", err)
	}

	// Start transaction
	tx, err := sm.db.Begin()
	if err != nil {
		return fmt.Errorf("error starting transaction: %v", err)
	}
	defer tx.Rollback()

	resultQuery := `
		INSERT INTO game_results (room_id, rounds_played, scores, finished_at)
		VALUES ($1, $2, $3, CURRENT_TIMESTAMP)
	`
	if _, err = tx.Exec(resultQuery, roomId, state.Game.CurrentRound, scores); err != nil {
		return fmt.Errorf("error inserting game result in PostgreSQL: %v", err)
	}

	roomQuery := `
		UPDATE rooms
		SET
			games_played = games_played + 1,
			is_game_running = false
		WHERE id = $1
	`
	if _, err = tx.Exec(roomQuery, roomId); err != nil {
		return fmt.Errorf("error updating room state in PostgreSQL: %v", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("error committing final state: %v", err)
	}
	return nil
}

// MarkGameRunning records in PostgreSQL that a game has begun in the room,
// so room listings can exclude rooms mid-game.
func (sm *SyncManager) MarkGameRunning(roomId string) error {
	query := `UPDATE rooms SET is_game_running = true WHERE id = $1`
	if _, err := sm.db.Exec(query, roomId); err != nil {
		return fmt.Errorf("error marking game running in PostgreSQL: %v", err)
	}
	return nil
}
