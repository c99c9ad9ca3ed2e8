package handlers

import (
	redis_models "Trazo/models/redis"
	"Trazo/services/game"

	"github.com/gin-gonic/gin"
)

// RoomStatePayload builds the per-viewer projection of a room document.
// The secret word never leaves the server for anyone but the drawer:
// guessers get the masked form, and the offered word list is drawer-only.
func RoomStatePayload(state *redis_models.RoomState, viewerID string) gin.H {
	g := &state.Game
	isDrawer := viewerID == g.CurrentDrawer

	word := g.SelectedWord
	if !isDrawer {
		word = game.MaskedWord(g.SelectedWord, g.RevealedHints)
	}

	var available []string
	if isDrawer {
		available = g.AvailableWords
	}

	participants := make([]gin.H, 0, len(state.Participants))
	for _, p := range state.Participants {
		participants = append(participants, gin.H{
			"id":       p.ID,
			"name":     p.Name,
			"is_owner": p.IsOwner,
		})
	}

	return gin.H{
		"room_id":      state.RoomID,
		"settings":     state.Settings,
		"participants": participants,
		"game": gin.H{
			"is_game_active":      g.IsGameActive,
			"current_round":       g.CurrentRound,
			"total_rounds":        g.TotalRounds,
			"current_drawer":      g.CurrentDrawer,
			"completed_drawers":   g.CompletedDrawers,
			"word_selection_time": g.WordSelectionTime,
			"word":                word,
			"available_words":     available,
			"time_remaining":      g.TimeRemaining,
			"revealed_hints":      g.RevealedHints,
			"guessed_players":     g.GuessedPlayers,
			"player_scores":       g.PlayerScores,
		},
	}
}
