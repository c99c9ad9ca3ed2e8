package handlers

import (
	redis_models "Trazo/models/redis"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func activeRoomState() *redis_models.RoomState {
	return &redis_models.RoomState{
		RoomID: "abc123",
		Settings: redis_models.GameSettings{
			MaxPlayers: 8, DrawTime: 90, Rounds: 3, WordCount: 3, Hints: 2,
		},
		Participants: []redis_models.Participant{
			{ID: "p1", Name: "Ana", IsOwner: true},
			{ID: "p2", Name: "Bruno"},
		},
		Game: redis_models.GameStatus{
			IsGameActive:   true,
			CurrentRound:   1,
			TotalRounds:    3,
			CurrentDrawer:  "p1",
			SelectedWord:   "cat",
			AvailableWords: []string{"cat", "dog", "sun"},
			TimeRemaining:  45,
			RevealedHints:  []int{1},
			PlayerScores:   map[string]int{"p1": 0, "p2": 0},
		},
	}
}

func TestRoomStatePayloadMasksWordForGuessers(t *testing.T) {
	state := activeRoomState()

	payload := RoomStatePayload(state, "p2")
	game := payload["game"].(gin.H)

	assert.Equal(t, "_ a _", game["word"])
	assert.Nil(t, game["available_words"])
}

func TestRoomStatePayloadShowsWordToDrawer(t *testing.T) {
	state := activeRoomState()

	payload := RoomStatePayload(state, "p1")
	game := payload["game"].(gin.H)

	assert.Equal(t, "cat", game["word"])
	assert.Equal(t, []string{"cat", "dog", "sun"}, game["available_words"])
}

func TestRoomStatePayloadIdleGame(t *testing.T) {
	state := activeRoomState()
	state.Game = redis_models.GameStatus{TotalRounds: 3}

	payload := RoomStatePayload(state, "p2")
	game := payload["game"].(gin.H)

	assert.Equal(t, false, game["is_game_active"])
	assert.Equal(t, "", game["word"])

	participants := payload["participants"].([]gin.H)
	assert.Len(t, participants, 2)
	assert.Equal(t, true, participants[0]["is_owner"])
}
