package redis

// GameSettings is room-scoped configuration, supplied by the settings editor
// and read-only to the game core. Changes are only honored between games.
type GameSettings struct {
	MaxPlayers  int    `json:"max_players"`
	DrawTime    int    `json:"draw_time"` // seconds per drawing turn
	Rounds      int    `json:"rounds"`
	WordCount   int    `json:"word_count"` // words offered to the drawer
	Hints       int    `json:"hints"`
	CustomWords string `json:"custom_words"` // comma-separated, may be empty
}

// Participant is one room member. Array order in RoomState defines turn
// order; membership itself is managed outside the game core.
type Participant struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	IsOwner bool   `json:"is_owner"`
}

// RoomState is the replicated document for one room, stored as JSON under
// "room:{id}:state". It is the only shared mutable resource the game core
// touches; every write is followed by a publish so subscribed clients pick
// up the new snapshot.
type RoomState struct {
	RoomID       string        `json:"room_id"`
	Settings     GameSettings  `json:"settings"`
	Participants []Participant `json:"participants"`
	Game         GameStatus    `json:"game"`
}

// Owner returns the participant flagged as owner, or nil. Writer authority
// is derived from this on every tick, never cached, so an ownership
// transfer between ticks re-targets the committing client automatically.
func (r *RoomState) Owner() *Participant {
	for i := range r.Participants {
		if r.Participants[i].IsOwner {
			return &r.Participants[i]
		}
	}
	return nil
}

// Participant returns the member with the given id, or nil.
func (r *RoomState) Participant(id string) *Participant {
	for i := range r.Participants {
		if r.Participants[i].ID == id {
			return &r.Participants[i]
		}
	}
	return nil
}

// IsOwner reports whether the given participant id is the room owner in
// this snapshot.
func (r *RoomState) IsOwner(id string) bool {
	p := r.Participant(id)
	return p != nil && p.IsOwner
}

// Clone deep-copies the document.
func (r *RoomState) Clone() *RoomState {
	c := *r
	c.Participants = append([]Participant(nil), r.Participants...)
	c.Game = *r.Game.Clone()
	return &c
}
