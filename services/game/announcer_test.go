package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAnnouncerCoalescesBursts(t *testing.T) {
	sink := &fakeSink{}
	a := NewAnnouncer(sink, "room1")
	a.delay = 20 * time.Millisecond
	defer a.Stop()

	a.Announce("first")
	a.Announce("second")
	a.Announce("third")

	assert.Eventually(t, func() bool {
		return len(sink.messages()) == 1
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, []string{"third"}, sink.messages(), "only the latest of a burst survives")

	// A later announcement outside the window goes through on its own
	a.Announce("fourth")
	assert.Eventually(t, func() bool {
		return len(sink.messages()) == 2
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, "fourth", sink.messages()[1])
}

func TestAnnouncerStopCancelsPending(t *testing.T) {
	sink := &fakeSink{}
	a := NewAnnouncer(sink, "room1")
	a.delay = 20 * time.Millisecond

	a.Announce("never sent")
	a.Stop()

	time.Sleep(50 * time.Millisecond)
	assert.Empty(t, sink.messages())
}

func TestAnnouncerIgnoresEmptyText(t *testing.T) {
	sink := &fakeSink{}
	a := NewAnnouncer(sink, "room1")
	a.delay = time.Millisecond
	defer a.Stop()

	a.Announce("")
	time.Sleep(20 * time.Millisecond)
	assert.Empty(t, sink.messages())
}
