package game

import (
	redis_models "Trazo/models/redis"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"
)

// Driver is one client's view of a room's game: it subscribes to the
// replicated document, runs a one-second tick over the latest observed
// snapshot, and commits transitions back to the store, but only when its
// participant is the room owner. Non-owner drivers run the identical
// computation and discard the write, trusting replication to correct any
// drift.
//
// There is exactly one Driver per connected client. Drivers share no
// memory; two drivers in the same process still talk only through the
// store, the same way two browsers would.
type Driver struct {
	store     Store
	words     WordSource
	sink      MessageSink
	announcer *Announcer

	roomID   string
	playerID string

	// Interval between ticks, 1s in production. Tests drive Tick directly.
	Interval time.Duration

	// OnGameOver, when set, runs once on the owner's driver after a game
	// reaches its terminal state, with the final document.
	OnGameOver func(*redis_models.RoomState)

	// Re-entrancy guard: a slow commit must not let a second tick start a
	// concurrent advance. Released unconditionally via defer.
	processing atomic.Bool

	mu         sync.Mutex
	latest     *redis_models.RoomState
	pool       []string // word pool for the running game, resolved lazily
	autoPicked bool     // auto-pick fired for the current selection countdown

	stop        chan struct{}
	stopOnce    sync.Once
	unsubscribe func()
}

func NewDriver(store Store, words WordSource, sink MessageSink, roomID, playerID string) *Driver {
	return &Driver{
		store:     store,
		words:     words,
		sink:      sink,
		announcer: NewAnnouncer(sink, roomID),
		roomID:    roomID,
		playerID:  playerID,
		Interval:  time.Second,
		stop:      make(chan struct{}),
	}
}

// Start subscribes to the room and begins ticking. The first snapshot is
// read directly so the driver never acts on a nil view.
func (d *Driver) Start() error {
	state, err := d.store.GetRoomState(d.roomID)
	if err != nil {
		return fmt.Errorf("error reading initial room state: %v", err)
	}
	d.observe(state)

	unsubscribe, err := d.store.SubscribeRoom(d.roomID, d.observe)
	if err != nil {
		return fmt.Errorf("error subscribing to room %s: %v", d.roomID, err)
	}
	d.unsubscribe = unsubscribe

	go d.run()
	return nil
}

// Stop cancels the local timer and the store subscription. Leaving a room
// must always end up here; a stopped driver commits nothing further.
func (d *Driver) Stop() {
	d.stopOnce.Do(func() {
		close(d.stop)
		if d.unsubscribe != nil {
			d.unsubscribe()
		}
		d.announcer.Stop()
	})
}

func (d *Driver) run() {
	ticker := time.NewTicker(d.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-d.stop:
			return
		case <-ticker.C:
			d.Tick()
		}
	}
}

// Snapshot returns the last observed replicated document.
func (d *Driver) Snapshot() *redis_models.RoomState {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.latest == nil {
		return nil
	}
	return d.latest.Clone()
}

// observe records a freshly replicated snapshot and reacts to the edges
// that are event-driven rather than tick-driven: the all-guessed turn end
// and the game-over hook.
func (d *Driver) observe(state *redis_models.RoomState) {
	d.mu.Lock()
	prev := d.latest
	d.latest = state
	// A new selection countdown re-arms the auto-pick.
	if state.Game.WordSelectionTime > 1 {
		d.autoPicked = false
	}
	if !state.Game.IsGameActive {
		d.pool = nil
	}
	d.mu.Unlock()

	if prev != nil && prev.Game.IsGameActive && !state.Game.IsGameActive {
		if d.OnGameOver != nil && state.IsOwner(d.playerID) {
			go d.OnGameOver(state.Clone())
		}
		return
	}

	// Everyone guessed: end the turn now instead of waiting out the clock.
	// Every client detects this; only the owner commits the advance.
	if state.IsOwner(d.playerID) && AllGuessed(&state.Game, state.Participants) {
		go d.tryAdvance("all_guessed")
	}
}

// Tick advances the driver's view by one second. The whole tick runs under
// the re-entrancy guard: overlapping ticks (a slow commit, a concurrent
// all-guessed advance) become no-ops instead of duplicate transitions.
func (d *Driver) Tick() {
	if !d.processing.CompareAndSwap(false, true) {
		return
	}
	defer d.processing.Store(false)
	d.tickLocked()
}

func (d *Driver) tickLocked() {
	snap := d.Snapshot()
	if snap == nil || !snap.Game.IsGameActive {
		return
	}
	g := &snap.Game

	// Drawer-side auto-pick: the countdown is about to lapse and no word
	// was chosen, so the drawer's own client picks the first offer. The
	// autoPicked flag makes this fire at most once per countdown.
	if g.WordSelectionTime == 1 && g.SelectedWord == "" &&
		g.CurrentDrawer == d.playerID && len(g.AvailableWords) > 0 {
		d.mu.Lock()
		fire := !d.autoPicked
		d.autoPicked = true
		d.mu.Unlock()
		if fire {
			if err := d.SelectWord(g.AvailableWords[0]); err != nil {
				log.Printf("[TICK-ERROR] Room %s: auto-pick failed: %v", d.roomID, err)
			}
			return
		}
	}

	next := NextTick(g, snap.Settings)

	if !snap.IsOwner(d.playerID) {
		// Same computation as the owner for a smooth local display, but
		// the write is discarded; the next replicated snapshot corrects
		// any drift.
		return
	}

	if AllGuessed(g, snap.Participants) {
		d.advance(snap, "all_guessed")
		return
	}

	if g.WordSelectionTime == 0 && g.TimeRemaining == 0 {
		d.advance(snap, "time_expired")
		return
	}

	if err := d.store.CommitGameStatus(d.roomID, next); err != nil {
		// Transient store failure: the local state was not advanced, so
		// the next tick recomputes the same transition and retries.
		log.Printf("[TICK-ERROR] Room %s: commit failed, retrying next tick: %v", d.roomID, err)
	}
}

// tryAdvance is the event-driven entry into advance, sharing the guard
// with the tick loop.
func (d *Driver) tryAdvance(reason string) {
	if !d.processing.CompareAndSwap(false, true) {
		return
	}
	defer d.processing.Store(false)

	snap := d.Snapshot()
	if snap == nil || !snap.Game.IsGameActive || !snap.IsOwner(d.playerID) {
		return
	}
	if reason == "all_guessed" && !AllGuessed(&snap.Game, snap.Participants) {
		return
	}
	d.advance(snap, reason)
}

// advance ends the current turn. Caller must hold the processing guard and
// have verified ownership.
func (d *Driver) advance(snap *redis_models.RoomState, reason string) {
	next, message := AdvanceTurn(&snap.Game, snap.Participants, snap.Settings, d.wordPool(snap.Settings))
	if reason == "all_guessed" {
		message = "Everyone has guessed correctly! " + message
	}

	if err := d.store.CommitGameStatus(d.roomID, next); err != nil {
		// Not advanced locally either; the next tick retries and the set
		// semantics of CompletedDrawers keep the retry idempotent.
		log.Printf("[ADVANCE-ERROR] Room %s: commit failed, retrying next tick: %v", d.roomID, err)
		return
	}

	log.Printf("[ADVANCE] Room %s: %s (reason=%s)", d.roomID, message, reason)
	d.announcer.Announce(message)
}

// StartGame begins a new game. Only the room owner may trigger it; anyone
// else's call is silently ignored, as is starting while a game runs.
func (d *Driver) StartGame() error {
	snap := d.Snapshot()
	if snap == nil || !snap.IsOwner(d.playerID) || snap.Game.IsGameActive {
		return nil
	}
	if len(snap.Participants) == 0 {
		return nil
	}

	defaults, err := d.words.GetDefaultWords()
	if err != nil {
		// Degrade to custom words only rather than refusing to start.
		log.Printf("[START-ERROR] Room %s: no default words: %v", d.roomID, err)
		defaults = nil
	}
	pool := ResolveWordPool(defaults, snap.Settings.CustomWords)
	if len(pool) == 0 {
		log.Printf("[START-ERROR] Room %s: empty word pool", d.roomID)
	}

	d.mu.Lock()
	d.pool = pool
	d.autoPicked = false
	d.mu.Unlock()

	status := NewGameStatus(snap.Participants, snap.Settings, pool)
	if err := d.store.CommitGameStatus(d.roomID, status); err != nil {
		return fmt.Errorf("error starting game: %v", err)
	}

	first := snap.Participants[0]
	text := fmt.Sprintf("Game is starting! First round begins. %s is now choosing a word to draw!", first.Name)
	if err := d.sink.AppendSystemMessage(d.roomID, text); err != nil {
		log.Printf("[START-ERROR] Room %s: announce failed: %v", d.roomID, err)
	}
	return nil
}

// SelectWord commits this client's word choice. This is the one sanctioned
// exception to single-writer commits: only the drawer can authentically
// originate the choice, and at most one client holds the drawer id at a
// time. Calls from anyone but the current drawer, or after a word is
// already set, are no-ops.
func (d *Driver) SelectWord(word string) error {
	snap := d.Snapshot()
	if snap == nil || snap.Game.CurrentDrawer != d.playerID {
		return nil
	}

	next, ok := ApplySelection(&snap.Game, snap.Settings, word)
	if !ok {
		return nil
	}
	if err := d.store.CommitGameStatus(d.roomID, next); err != nil {
		return fmt.Errorf("error committing word selection: %v", err)
	}

	name := d.playerID
	if p := snap.Participant(d.playerID); p != nil {
		name = p.Name
	}
	if err := d.sink.AppendSystemMessage(d.roomID, fmt.Sprintf("%s has selected a word to draw!", name)); err != nil {
		log.Printf("[SELECT-ERROR] Room %s: announce failed: %v", d.roomID, err)
	}
	return nil
}

// SubmitGuess evaluates a chat message from this client as a guess.
// A correct guess commits only the sender's own guessedPlayers membership
// and score delta (sender-owned fields, same narrow exception shape as
// word selection): the store merges them into its latest document, so this
// client's possibly-stale view of the countdown never travels with the
// write. Returns the points awarded and whether the guess was correct.
func (d *Driver) SubmitGuess(text string) (int, bool, error) {
	snap := d.Snapshot()
	if snap == nil {
		return 0, false, nil
	}
	g := &snap.Game
	if !EvaluateGuess(g, d.playerID, text) {
		return 0, false, nil
	}

	points := GuessScore(g.TimeRemaining, snap.Settings.DrawTime)
	if err := d.store.CommitGuess(d.roomID, d.playerID, points); err != nil {
		return 0, false, fmt.Errorf("error committing guess: %v", err)
	}

	name := d.playerID
	if p := snap.Participant(d.playerID); p != nil {
		name = p.Name
	}
	if err := d.sink.AppendSystemMessage(d.roomID, fmt.Sprintf("%s guessed the word! (+%d points)", name, points)); err != nil {
		log.Printf("[GUESS-ERROR] Room %s: announce failed: %v", d.roomID, err)
	}
	return points, true, nil
}

// wordPool returns the pool for the running game. A driver that became
// owner mid-game (ownership transfer) never ran StartGame, so the pool is
// re-resolved from the word source and settings on demand.
func (d *Driver) wordPool(s redis_models.GameSettings) []string {
	d.mu.Lock()
	pool := d.pool
	d.mu.Unlock()
	if pool != nil {
		return pool
	}

	defaults, err := d.words.GetDefaultWords()
	if err != nil {
		log.Printf("[POOL-ERROR] Room %s: no default words: %v", d.roomID, err)
	}
	pool = ResolveWordPool(defaults, s.CustomWords)

	d.mu.Lock()
	d.pool = pool
	d.mu.Unlock()
	return pool
}
