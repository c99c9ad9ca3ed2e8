package game

import (
	redis_models "Trazo/models/redis"
)

// ApplySelection records the drawer's chosen word and arms the drawing
// phase: countdown reset to the full draw time, hints cleared, first hint
// instant scheduled, guesses cleared. Returns ok=false when a word is
// already selected for this turn (a retried or stale call), leaving the
// input untouched.
//
// Caller identity is not checked here; the driver only invokes this for
// the client whose participant id matches CurrentDrawer.
func ApplySelection(g *redis_models.GameStatus, s redis_models.GameSettings, word string) (*redis_models.GameStatus, bool) {
	if word == "" || !g.IsGameActive || g.SelectedWord != "" {
		return nil, false
	}

	next := g.Clone()
	next.SelectedWord = word
	next.WordSelectionTime = 0
	next.TimeRemaining = s.DrawTime
	next.RevealedHints = []int{}
	next.GuessedPlayers = []string{}
	next.NextHintTime = 0
	if times := HintTimes(s.DrawTime, s.Hints); len(times) > 0 {
		next.NextHintTime = times[0]
	}
	return next, true
}
