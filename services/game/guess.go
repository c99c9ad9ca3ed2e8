package game

import (
	game_constants "Trazo/constants/game"
	redis_models "Trazo/models/redis"
	"math"
	"strings"
)

// GuessScore awards points for a correct guess: ceil(timeRemaining /
// drawTime * 100). Faster guesses score higher, bounded in (0, 100].
func GuessScore(timeRemaining, drawTime int) int {
	if drawTime <= 0 {
		return 0
	}
	score := int(math.Ceil(float64(timeRemaining) / float64(drawTime) * game_constants.MaxGuessScore))
	if score > game_constants.MaxGuessScore {
		score = game_constants.MaxGuessScore
	}
	return score
}

// MatchesSecretWord reports whether a chat message text equals the secret
// word, case-insensitively after trimming. Used both for guess evaluation
// and to suppress the word from the public chat feed.
func MatchesSecretWord(g *redis_models.GameStatus, text string) bool {
	if g.SelectedWord == "" {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(text), strings.TrimSpace(g.SelectedWord))
}

// EvaluateGuess reports whether a chat message counts as a correct guess:
// game active, word selected, sender is not the drawer, sender has not
// guessed this turn, and the text matches the word.
func EvaluateGuess(g *redis_models.GameStatus, senderId, text string) bool {
	if !g.IsGameActive || g.SelectedWord == "" {
		return false
	}
	if senderId == g.CurrentDrawer || g.HasGuessed(senderId) {
		return false
	}
	return MatchesSecretWord(g, text)
}

// ApplyGuess returns a new status with the sender recorded as having
// guessed and the points added to their score. Idempotent for an already
// recorded sender: membership is a set and the score is only bumped when
// the sender is newly added.
func ApplyGuess(g *redis_models.GameStatus, senderId string, points int) *redis_models.GameStatus {
	next := g.Clone()
	if next.HasGuessed(senderId) {
		return next
	}
	next.AddGuessedPlayer(senderId)
	if next.PlayerScores == nil {
		next.PlayerScores = make(map[string]int)
	}
	next.PlayerScores[senderId] += points
	return next
}

// AllGuessed reports whether every non-drawer participant has guessed
// correctly this turn. Requires a selected word, so a turn can't end
// during the selection countdown.
func AllGuessed(g *redis_models.GameStatus, participants []redis_models.Participant) bool {
	if !g.IsGameActive || g.SelectedWord == "" {
		return false
	}
	return len(g.GuessedPlayers) >= len(participants)-1
}
