package game

import (
	redis_models "Trazo/models/redis"
)

// NextTick computes the candidate state one second after g. It is a pure
// function of the snapshot: a client that missed ticks resynchronizes
// simply by computing from the next snapshot it observes.
//
// Order of phases matches the turn lifecycle: word selection countdown
// first, then the drawing countdown with hint reveals. Expiry itself
// (TimeRemaining at 0) is not handled here; the driver turns that into an
// AdvanceTurn.
func NextTick(g *redis_models.GameStatus, s redis_models.GameSettings) *redis_models.GameStatus {
	next := g.Clone()
	if !g.IsGameActive {
		return next
	}

	if g.WordSelectionTime > 0 {
		next.WordSelectionTime--
		return next
	}

	if g.TimeRemaining > 0 {
		if g.SelectedWord != "" && g.NextHintTime == g.TimeRemaining && len(g.RevealedHints) < s.Hints {
			if pos, ok := RandomUnrevealedPosition(g.SelectedWord, g.RevealedHints); ok {
				next.RevealedHints = append(next.RevealedHints, pos)
			}
			// Even when every letter is already disclosed the schedule
			// still moves on to the next instant.
			next.NextHintTime = NextHintAfter(HintTimes(s.DrawTime, s.Hints), g.TimeRemaining)
		}
		next.TimeRemaining--
	}

	return next
}
