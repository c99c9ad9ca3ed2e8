package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHintTimes(t *testing.T) {
	// drawTime=90, hints=2 -> interval 30, triggers at 60 and 30
	assert.Equal(t, []int{60, 30}, HintTimes(90, 2))

	// Uneven division floors the interval: 70/4 = 17
	assert.Equal(t, []int{53, 36, 19}, HintTimes(70, 3))

	assert.Empty(t, HintTimes(90, 0))
	assert.Empty(t, HintTimes(0, 2))
}

func TestNextHintAfter(t *testing.T) {
	times := []int{60, 30}
	assert.Equal(t, 60, NextHintAfter(times, 90))
	assert.Equal(t, 30, NextHintAfter(times, 60))
	assert.Equal(t, 0, NextHintAfter(times, 30), "no trigger below the last one")
	assert.Equal(t, 0, NextHintAfter(nil, 90))
}

func TestRandomUnrevealedPosition(t *testing.T) {
	pos, ok := RandomUnrevealedPosition("cat", []int{0, 2})
	assert.True(t, ok)
	assert.Equal(t, 1, pos, "only index 1 is left")

	_, ok = RandomUnrevealedPosition("cat", []int{0, 1, 2})
	assert.False(t, ok, "fully revealed word has nothing to disclose")

	_, ok = RandomUnrevealedPosition("", nil)
	assert.False(t, ok)

	pos, ok = RandomUnrevealedPosition("house", nil)
	assert.True(t, ok)
	assert.GreaterOrEqual(t, pos, 0)
	assert.Less(t, pos, 5)
}

func TestMaskedWord(t *testing.T) {
	assert.Equal(t, "_ _ _", MaskedWord("cat", nil))
	assert.Equal(t, "c _ t", MaskedWord("cat", []int{0, 2}))
	assert.Equal(t, "c a t", MaskedWord("cat", []int{0, 1, 2}))
	assert.Equal(t, "", MaskedWord("", nil))
}
