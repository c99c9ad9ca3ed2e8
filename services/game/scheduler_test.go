package game

import (
	redis_models "Trazo/models/redis"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

var testSettings = redis_models.GameSettings{
	MaxPlayers: 8,
	DrawTime:   90,
	Rounds:     2,
	WordCount:  3,
	Hints:      2,
}

var testPool = []string{"cat", "dog", "fish", "bird", "house"}

func threeParticipants() []redis_models.Participant {
	return []redis_models.Participant{
		{ID: "p1", Name: "Ana", IsOwner: true},
		{ID: "p2", Name: "Bruno"},
		{ID: "p3", Name: "Clara"},
	}
}

func TestNewGameStatus(t *testing.T) {
	participants := threeParticipants()
	g := NewGameStatus(participants, testSettings, testPool)

	assert.True(t, g.IsGameActive)
	assert.Equal(t, 1, g.CurrentRound)
	assert.Equal(t, 2, g.TotalRounds)
	assert.Equal(t, "p1", g.CurrentDrawer)
	assert.Empty(t, g.CompletedDrawers)
	assert.Equal(t, 10, g.WordSelectionTime)
	assert.Empty(t, g.SelectedWord)
	assert.Len(t, g.AvailableWords, 3)
	assert.Equal(t, 90, g.TimeRemaining)
	assert.Equal(t, map[string]int{"p1": 0, "p2": 0, "p3": 0}, g.PlayerScores)
}

func TestAdvanceTurnRotation(t *testing.T) {
	participants := threeParticipants()
	g := NewGameStatus(participants, testSettings, testPool)

	next, msg := AdvanceTurn(g, participants, testSettings, testPool)
	assert.Equal(t, "p2", next.CurrentDrawer)
	assert.Equal(t, []string{"p1"}, next.CompletedDrawers)
	assert.Equal(t, 1, next.CurrentRound)
	assert.Equal(t, 10, next.WordSelectionTime)
	assert.Equal(t, 90, next.TimeRemaining)
	assert.Empty(t, next.SelectedWord)
	assert.Empty(t, next.GuessedPlayers)
	assert.Empty(t, next.RevealedHints)
	assert.Equal(t, "Bruno is now choosing a word!", msg)

	next, msg = AdvanceTurn(next, participants, testSettings, testPool)
	assert.Equal(t, "p3", next.CurrentDrawer)
	assert.Equal(t, []string{"p1", "p2"}, next.CompletedDrawers)
	assert.Equal(t, "Clara is now choosing a word!", msg)

	// Third advance completes the round: back to the first participant
	next, msg = AdvanceTurn(next, participants, testSettings, testPool)
	assert.Equal(t, "p1", next.CurrentDrawer)
	assert.Equal(t, 2, next.CurrentRound)
	assert.Empty(t, next.CompletedDrawers, "completed drawers reset on round advance")
	assert.Equal(t, "Round 2 begins! Ana is now choosing a word!", msg)
}

func TestAdvanceTurnIdempotent(t *testing.T) {
	participants := threeParticipants()
	g := NewGameStatus(participants, testSettings, testPool)

	first, _ := AdvanceTurn(g, participants, testSettings, testPool)
	second, _ := AdvanceTurn(g, participants, testSettings, testPool)

	// Same input snapshot (a retried commit) must yield the same outcome
	assert.Equal(t, first.CompletedDrawers, second.CompletedDrawers)
	assert.Equal(t, first.CurrentDrawer, second.CurrentDrawer)
	assert.Equal(t, first.CurrentRound, second.CurrentRound)
}

func TestFullGameTurnCount(t *testing.T) {
	for _, n := range []int{1, 2, 4} {
		for _, rounds := range []int{1, 3} {
			t.Run(fmt.Sprintf("%dp_%dr", n, rounds), func(t *testing.T) {
				participants := make([]redis_models.Participant, n)
				for i := range participants {
					participants[i] = redis_models.Participant{
						ID:   fmt.Sprintf("p%d", i+1),
						Name: fmt.Sprintf("Player%d", i+1),
					}
				}
				settings := testSettings
				settings.Rounds = rounds

				g := NewGameStatus(participants, settings, testPool)
				seen := make(map[string]bool)
				turns := 0
				for g.IsGameActive {
					key := fmt.Sprintf("%d/%s", g.CurrentRound, g.CurrentDrawer)
					assert.False(t, seen[key], "duplicate (round, drawer) pair %s", key)
					seen[key] = true
					turns++
					assert.LessOrEqual(t, turns, n*rounds, "game failed to terminate")
					g, _ = AdvanceTurn(g, participants, settings, testPool)
				}

				assert.Equal(t, n*rounds, turns)
				assert.Equal(t, rounds, g.CurrentRound, "round number holds at the last played round")
				assert.Empty(t, g.CurrentDrawer)
				assert.Zero(t, g.TimeRemaining)
				assert.Empty(t, g.AvailableWords)
				assert.Len(t, g.PlayerScores, n, "scores retained after game over")
			})
		}
	}
}

func TestAdvanceTurnDropsDepartedParticipants(t *testing.T) {
	participants := threeParticipants()
	g := NewGameStatus(participants, testSettings, testPool)
	g, _ = AdvanceTurn(g, participants, testSettings, testPool) // p2 draws now

	// Bruno leaves mid-turn; advancing re-derives order from the
	// remaining members.
	remaining := []redis_models.Participant{participants[0], participants[2]}
	next, _ := AdvanceTurn(g, remaining, testSettings, testPool)

	assert.Equal(t, "p3", next.CurrentDrawer)
	assert.Equal(t, []string{"p1"}, next.CompletedDrawers, "departed drawers don't linger in the set")
}

func TestAdvanceTurnJoinerEntersRotation(t *testing.T) {
	participants := threeParticipants()
	g := NewGameStatus(participants, testSettings, testPool)
	g, _ = AdvanceTurn(g, participants, testSettings, testPool)
	g, _ = AdvanceTurn(g, participants, testSettings, testPool) // p3 draws now

	joined := append(threeParticipants(), redis_models.Participant{ID: "p4", Name: "Diego"})
	next, msg := AdvanceTurn(g, joined, testSettings, testPool)

	assert.Equal(t, "p4", next.CurrentDrawer, "mid-game joiner is reached at the end of the pass")
	assert.Equal(t, 1, next.CurrentRound)
	assert.Equal(t, "Diego is now choosing a word!", msg)
}
