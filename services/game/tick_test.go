package game

import (
	redis_models "Trazo/models/redis"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextTickSelectionCountdown(t *testing.T) {
	g := NewGameStatus(threeParticipants(), testSettings, testPool)

	next := NextTick(g, testSettings)
	assert.Equal(t, 9, next.WordSelectionTime)
	assert.Equal(t, 90, next.TimeRemaining, "drawing clock waits for the selection phase")
	assert.Equal(t, 10, g.WordSelectionTime, "input snapshot untouched")
}

func TestNextTickDrawingCountdown(t *testing.T) {
	g := NewGameStatus(threeParticipants(), testSettings, testPool)
	g, ok := ApplySelection(g, testSettings, "penguin")
	assert.True(t, ok)

	next := NextTick(g, testSettings)
	assert.Equal(t, 89, next.TimeRemaining)
	assert.Empty(t, next.RevealedHints)
}

func TestNextTickFiresHintAtTrigger(t *testing.T) {
	g := NewGameStatus(threeParticipants(), testSettings, testPool)
	g, _ = ApplySelection(g, testSettings, "penguin")
	g.TimeRemaining = 60 // first trigger for drawTime=90, hints=2

	next := NextTick(g, testSettings)
	assert.Len(t, next.RevealedHints, 1)
	assert.Equal(t, 30, next.NextHintTime)
	assert.Equal(t, 59, next.TimeRemaining)

	// Off the trigger instant nothing is revealed
	next = NextTick(next, testSettings)
	assert.Len(t, next.RevealedHints, 1)
}

func TestNextTickHintCapRespected(t *testing.T) {
	settings := testSettings
	settings.Hints = 1
	g := NewGameStatus(threeParticipants(), settings, testPool)
	g, _ = ApplySelection(g, settings, "ox")
	g.RevealedHints = []int{0}
	g.TimeRemaining = g.NextHintTime

	// len(revealed) already equals the configured hint count
	next := NextTick(g, settings)
	assert.Len(t, next.RevealedHints, 1)
}

func TestNextTickFullyRevealedWordSkips(t *testing.T) {
	g := NewGameStatus(threeParticipants(), testSettings, testPool)
	g, _ = ApplySelection(g, testSettings, "ox")
	g.RevealedHints = []int{0, 1}
	g.TimeRemaining = 60

	next := NextTick(g, testSettings)
	assert.Equal(t, []int{0, 1}, next.RevealedHints)
	assert.Equal(t, 59, next.TimeRemaining, "clock keeps running")
}

func TestNextTickNoWordNoHints(t *testing.T) {
	g := NewGameStatus(threeParticipants(), testSettings, testPool)
	g.WordSelectionTime = 0 // countdown lapsed without a pick
	g.TimeRemaining = 60
	g.NextHintTime = 60

	next := NextTick(g, testSettings)
	assert.Empty(t, next.RevealedHints)
	assert.Equal(t, 59, next.TimeRemaining)
}

func TestNextTickIdleGame(t *testing.T) {
	g := &redis_models.GameStatus{TimeRemaining: 30, WordSelectionTime: 5}
	next := NextTick(g, testSettings)
	assert.Equal(t, 30, next.TimeRemaining, "idle game does not tick")
	assert.Equal(t, 5, next.WordSelectionTime)
}

func TestApplySelection(t *testing.T) {
	g := NewGameStatus(threeParticipants(), testSettings, testPool)
	g.WordSelectionTime = 4
	g.GuessedPlayers = []string{"stale"}
	g.RevealedHints = []int{3}

	next, ok := ApplySelection(g, testSettings, "penguin")
	assert.True(t, ok)
	assert.Equal(t, "penguin", next.SelectedWord)
	assert.Zero(t, next.WordSelectionTime)
	assert.Equal(t, 90, next.TimeRemaining)
	assert.Empty(t, next.RevealedHints)
	assert.Empty(t, next.GuessedPlayers)
	assert.Equal(t, 60, next.NextHintTime)

	// Selecting again is rejected for the rest of the turn
	_, ok = ApplySelection(next, testSettings, "other")
	assert.False(t, ok)

	_, ok = ApplySelection(g, testSettings, "")
	assert.False(t, ok)
}
