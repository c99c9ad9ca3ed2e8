package redis

// GameStatus is the state of one in-progress (or idle) game. One instance
// lives inside each room's replicated document; every connected client
// derives its view from the last snapshot it observed, and all transitions
// are computed from that snapshot rather than from local counters.
//
// The "sets" below travel as JSON arrays but must be treated with set
// semantics: a retried transition re-adds the same element and the result
// has to come out identical (see AddCompletedDrawer / AddGuessedPlayer).
type GameStatus struct {
	IsGameActive      bool           `json:"is_game_active"`
	CurrentRound      int            `json:"current_round"`
	TotalRounds       int            `json:"total_rounds"`
	CurrentDrawer     string         `json:"current_drawer,omitempty"` // participant id, empty when idle
	CompletedDrawers  []string       `json:"completed_drawers"`
	WordSelectionTime int            `json:"word_selection_time"` // seconds left to pick, 0 = selection over
	SelectedWord      string         `json:"selected_word,omitempty"`
	AvailableWords    []string       `json:"available_words"`
	TimeRemaining     int            `json:"time_remaining"`
	RevealedHints     []int          `json:"revealed_hints"` // letter indices of SelectedWord
	NextHintTime      int            `json:"next_hint_time"` // TimeRemaining value of the next hint, 0 = none pending
	GuessedPlayers    []string       `json:"guessed_players"`
	PlayerScores      map[string]int `json:"player_scores"`
}

// Clone returns a deep copy, so tick computations never mutate the snapshot
// they were derived from.
func (g *GameStatus) Clone() *GameStatus {
	c := *g
	c.CompletedDrawers = append([]string(nil), g.CompletedDrawers...)
	c.AvailableWords = append([]string(nil), g.AvailableWords...)
	c.RevealedHints = append([]int(nil), g.RevealedHints...)
	c.GuessedPlayers = append([]string(nil), g.GuessedPlayers...)
	c.PlayerScores = make(map[string]int, len(g.PlayerScores))
	for id, score := range g.PlayerScores {
		c.PlayerScores[id] = score
	}
	return &c
}

// AddCompletedDrawer inserts the drawer id if not already present. Idempotent
// so a retried advance can't double-count a turn.
func (g *GameStatus) AddCompletedDrawer(id string) {
	if id == "" || containsString(g.CompletedDrawers, id) {
		return
	}
	g.CompletedDrawers = append(g.CompletedDrawers, id)
}

// AddGuessedPlayer inserts the player id if not already present.
func (g *GameStatus) AddGuessedPlayer(id string) {
	if id == "" || containsString(g.GuessedPlayers, id) {
		return
	}
	g.GuessedPlayers = append(g.GuessedPlayers, id)
}

func (g *GameStatus) HasCompleted(id string) bool {
	return containsString(g.CompletedDrawers, id)
}

func (g *GameStatus) HasGuessed(id string) bool {
	return containsString(g.GuessedPlayers, id)
}

func (g *GameStatus) HintRevealed(pos int) bool {
	for _, p := range g.RevealedHints {
		if p == pos {
			return true
		}
	}
	return false
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
