package handlers

import (
	models "Trazo/models/postgres"
	redis_models "Trazo/models/redis"
	"Trazo/services/redis"
	redis_utils "Trazo/services/redis/utils"
	"fmt"
	"log"
)

// newRoomState seeds a fresh shared document from the durable room record.
// It happens for the first client that connects to a room whose Redis key
// expired or was never written.
func newRoomState(room *models.Room) *redis_models.RoomState {
	return &redis_models.RoomState{
		RoomID: room.ID,
		Settings: redis_models.GameSettings{
			MaxPlayers:  room.MaxPlayers,
			DrawTime:    room.DrawTime,
			Rounds:      room.Rounds,
			WordCount:   room.WordCount,
			Hints:       room.Hints,
			CustomWords: room.CustomWords,
		},
	}
}

// removeParticipant drops a player from the shared document. When the owner
// leaves, ownership passes to the first remaining participant so the room
// keeps exactly one committing client. The last player leaving tears down
// the Redis state.
func removeParticipant(redisClient *redis.RedisClient, roomID, playerID string) (*redis_models.RoomState, error) {
	state, err := redisClient.GetRoomState(roomID)
	if err != nil {
		return nil, fmt.Errorf("error getting room state: %v", err)
	}

	leaving := state.Participant(playerID)
	if leaving == nil {
		return state, nil
	}
	wasOwner := leaving.IsOwner

	remaining := state.Participants[:0:0]
	for _, p := range state.Participants {
		if p.ID != playerID {
			remaining = append(remaining, p)
		}
	}
	state.Participants = remaining

	if len(state.Participants) == 0 {
		if err := redisClient.DeleteRoomState(roomID); err != nil {
			return nil, fmt.Errorf("error deleting empty room state: %v", err)
		}
		if err := redisClient.CleanupKeys([]string{redis_utils.FormatChatHistoryKey(roomID)}); err != nil {
			log.Printf("[ROOM-ERROR] Error cleaning chat history for room %s: %v", roomID, err)
		}
		log.Printf("[ROOM] Room %s is empty, state removed", roomID)
		return state, nil
	}

	if wasOwner {
		state.Participants[0].IsOwner = true
		log.Printf("[ROOM] Ownership of room %s passed to %s", roomID, state.Participants[0].ID)
	}

	if err := redisClient.SaveRoomState(state); err != nil {
		return nil, fmt.Errorf("error saving room state: %v", err)
	}
	return state, nil
}
