package game

import (
	redis_models "Trazo/models/redis"
	"testing"

	"github.com/stretchr/testify/assert"
)

func activeStatus() *redis_models.GameStatus {
	return &redis_models.GameStatus{
		IsGameActive:   true,
		CurrentRound:   1,
		TotalRounds:    2,
		CurrentDrawer:  "p1",
		SelectedWord:   "penguin",
		TimeRemaining:  45,
		GuessedPlayers: []string{},
		PlayerScores:   map[string]int{"p1": 0, "p2": 0, "p3": 0},
	}
}

func TestGuessScore(t *testing.T) {
	assert.Equal(t, 50, GuessScore(45, 90))
	assert.Equal(t, 2, GuessScore(1, 90))
	assert.Equal(t, 100, GuessScore(90, 90))
	assert.Equal(t, 34, GuessScore(30, 90), "ceil rounds up")
	assert.Equal(t, 0, GuessScore(45, 0), "degenerate draw time awards nothing")
}

func TestEvaluateGuess(t *testing.T) {
	g := activeStatus()

	assert.True(t, EvaluateGuess(g, "p2", "penguin"))
	assert.True(t, EvaluateGuess(g, "p2", "  PENGUIN  "), "case and whitespace insensitive")

	assert.False(t, EvaluateGuess(g, "p2", "pengui"))
	assert.False(t, EvaluateGuess(g, "p1", "penguin"), "drawer never guesses")

	g.GuessedPlayers = []string{"p2"}
	assert.False(t, EvaluateGuess(g, "p2", "penguin"), "one correct guess per turn")

	g = activeStatus()
	g.SelectedWord = ""
	assert.False(t, EvaluateGuess(g, "p2", "penguin"), "no word selected yet")

	g = activeStatus()
	g.IsGameActive = false
	assert.False(t, EvaluateGuess(g, "p2", "penguin"))
}

func TestApplyGuessIdempotent(t *testing.T) {
	g := activeStatus()

	next := ApplyGuess(g, "p2", 50)
	assert.Equal(t, []string{"p2"}, next.GuessedPlayers)
	assert.Equal(t, 50, next.PlayerScores["p2"])
	assert.Empty(t, g.GuessedPlayers, "input snapshot untouched")

	// Replaying the same guess must not double-score
	again := ApplyGuess(next, "p2", 50)
	assert.Equal(t, []string{"p2"}, again.GuessedPlayers)
	assert.Equal(t, 50, again.PlayerScores["p2"])
}

func TestAllGuessed(t *testing.T) {
	participants := []redis_models.Participant{
		{ID: "p1", Name: "Ana", IsOwner: true},
		{ID: "p2", Name: "Bruno"},
		{ID: "p3", Name: "Clara"},
	}

	g := activeStatus()
	assert.False(t, AllGuessed(g, participants))

	g.GuessedPlayers = []string{"p2"}
	assert.False(t, AllGuessed(g, participants))

	g.GuessedPlayers = []string{"p2", "p3"}
	assert.True(t, AllGuessed(g, participants))

	g.SelectedWord = ""
	assert.False(t, AllGuessed(g, participants), "selection phase can't end by guessing")
}

func TestMatchesSecretWord(t *testing.T) {
	g := activeStatus()
	assert.True(t, MatchesSecretWord(g, "Penguin "))
	assert.False(t, MatchesSecretWord(g, "penguins"))

	g.SelectedWord = ""
	assert.False(t, MatchesSecretWord(g, ""))
}
