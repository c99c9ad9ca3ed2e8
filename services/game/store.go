package game

import (
	redis_models "Trazo/models/redis"
)

// Store is the room-store contract the game core consumes. The backing
// store offers no transactions and no compare-and-swap: last write wins.
// The driver compensates with single-writer discipline, so implementations
// only need these three primitives.
type Store interface {
	// GetRoomState returns the latest committed document for a room.
	GetRoomState(roomId string) (*redis_models.RoomState, error)
	// CommitGameStatus merges a new game section into the latest document.
	CommitGameStatus(roomId string, game *redis_models.GameStatus) error
	// CommitGuess merges one correct guess into the latest document,
	// touching only the guesser's own fields: set membership in
	// guessedPlayers plus their score delta. Idempotent for a player
	// already recorded.
	CommitGuess(roomId string, playerId string, points int) error
	// SubscribeRoom delivers every committed document to onChange until the
	// returned unsubscribe func is called.
	SubscribeRoom(roomId string, onChange func(*redis_models.RoomState)) (func(), error)
}

// MessageSink is the system announcer contract: append-only,
// fire-and-forget status lines in the room chat.
type MessageSink interface {
	AppendSystemMessage(roomId string, text string) error
}

// WordSource supplies the externally managed default word list.
type WordSource interface {
	GetDefaultWords() ([]string, error)
}
