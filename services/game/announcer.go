package game

import (
	game_constants "Trazo/constants/game"
	"log"
	"sync"
	"time"
)

// Announcer publishes system status lines to a room's chat with a short
// debounce: announcements landing within the window are coalesced and only
// the latest one is written, so rapid successive transitions don't flood
// the log. Delivery is fire-and-forget; a failed append is logged and
// dropped.
type Announcer struct {
	sink   MessageSink
	roomID string
	delay  time.Duration

	mu    sync.Mutex
	timer *time.Timer
}

func NewAnnouncer(sink MessageSink, roomID string) *Announcer {
	return &Announcer{
		sink:   sink,
		roomID: roomID,
		delay:  game_constants.AnnounceDebounceMillis * time.Millisecond,
	}
}

// Announce schedules text for publication, replacing any announcement
// still waiting in the debounce window.
func (a *Announcer) Announce(text string) {
	if text == "" {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.timer != nil {
		a.timer.Stop()
	}
	a.timer = time.AfterFunc(a.delay, func() {
		if err := a.sink.AppendSystemMessage(a.roomID, text); err != nil {
			log.Printf("[ANNOUNCE-ERROR] Room %s: %v", a.roomID, err)
		}
	})
}

// Stop cancels any pending announcement.
func (a *Announcer) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
}
