package game

import (
	game_constants "Trazo/constants/game"
	redis_models "Trazo/models/redis"
	"fmt"
)

// NewGameStatus builds the state for a freshly started game: round 1, the
// first participant draws, all scores zeroed, word selection countdown
// armed. The caller samples offered words from the resolved pool.
func NewGameStatus(participants []redis_models.Participant, s redis_models.GameSettings, pool []string) *redis_models.GameStatus {
	scores := make(map[string]int, len(participants))
	for _, p := range participants {
		scores[p.ID] = 0
	}

	return &redis_models.GameStatus{
		IsGameActive:      true,
		CurrentRound:      1,
		TotalRounds:       s.Rounds,
		CurrentDrawer:     participants[0].ID,
		CompletedDrawers:  []string{},
		WordSelectionTime: game_constants.WordSelectionSeconds,
		SelectedWord:      "",
		AvailableWords:    SampleWords(pool, s.WordCount),
		TimeRemaining:     s.DrawTime,
		RevealedHints:     []int{},
		NextHintTime:      0,
		GuessedPlayers:    []string{},
		PlayerScores:      scores,
	}
}

// AdvanceTurn ends the current drawer's turn and computes the next state:
// the next drawer in participant order, the next round when everyone has
// drawn, or game over when the rounds are exhausted. Returns the new
// status plus the announcement to publish after a successful commit.
//
// The computation is idempotent: completed drawers form a set, and turn
// order is re-derived from the participant list passed in, so replaying
// the same input (a retried write, an ownership change between attempts)
// yields the same output.
func AdvanceTurn(g *redis_models.GameStatus, participants []redis_models.Participant, s redis_models.GameSettings, pool []string) (*redis_models.GameStatus, string) {
	next := g.Clone()
	next.AddCompletedDrawer(g.CurrentDrawer)

	// Drop completions of participants who have since left, so a shrunk
	// room can still finish its rounds.
	completed := make([]string, 0, len(next.CompletedDrawers))
	for _, id := range next.CompletedDrawers {
		for _, p := range participants {
			if p.ID == id {
				completed = append(completed, id)
				break
			}
		}
	}
	next.CompletedDrawers = completed

	remaining := make([]redis_models.Participant, 0, len(participants))
	for _, p := range participants {
		if !next.HasCompleted(p.ID) {
			remaining = append(remaining, p)
		}
	}

	if len(remaining) > 0 {
		// Same round, next drawer in insertion order
		drawer := remaining[0]
		resetTurn(next, s, pool)
		next.CurrentDrawer = drawer.ID
		return next, fmt.Sprintf("%s is now choosing a word!", drawer.Name)
	}

	newRound := g.CurrentRound + 1
	if newRound > g.TotalRounds {
		// Game over. CurrentRound deliberately stays at the last played
		// round instead of the attempted rounds+1; scores are retained
		// for the final scoreboard.
		next.IsGameActive = false
		next.CurrentDrawer = ""
		next.TimeRemaining = 0
		next.CompletedDrawers = []string{}
		next.WordSelectionTime = 0
		next.SelectedWord = ""
		next.AvailableWords = []string{}
		next.GuessedPlayers = []string{}
		next.RevealedHints = []int{}
		next.NextHintTime = 0
		return next, "Game Over!"
	}

	drawer := participants[0]
	resetTurn(next, s, pool)
	next.CurrentRound = newRound
	next.CompletedDrawers = []string{}
	next.CurrentDrawer = drawer.ID
	return next, fmt.Sprintf("Round %d begins! %s is now choosing a word!", newRound, drawer.Name)
}

// resetTurn arms the per-turn fields for a new drawer.
func resetTurn(g *redis_models.GameStatus, s redis_models.GameSettings, pool []string) {
	g.TimeRemaining = s.DrawTime
	g.WordSelectionTime = game_constants.WordSelectionSeconds
	g.SelectedWord = ""
	g.AvailableWords = SampleWords(pool, s.WordCount)
	g.GuessedPlayers = []string{}
	g.RevealedHints = []int{}
	g.NextHintTime = 0
}
