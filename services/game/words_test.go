package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveWordPool(t *testing.T) {
	defaults := []string{"cat", "dog"}

	pool := ResolveWordPool(defaults, "house, boat ,  , plane,")
	assert.Equal(t, []string{"cat", "dog", "house", "boat", "plane"}, pool)

	assert.Equal(t, defaults, ResolveWordPool(defaults, ""))
	assert.Empty(t, ResolveWordPool(nil, " , ,"))
}

func TestSampleWords(t *testing.T) {
	pool := []string{"a", "b", "c", "d", "e"}

	sample := SampleWords(pool, 3)
	assert.Len(t, sample, 3)
	seen := make(map[string]bool)
	for _, w := range sample {
		assert.Contains(t, pool, w)
		assert.False(t, seen[w], "sampling is without replacement")
		seen[w] = true
	}

	// Pool smaller than the requested count is returned whole
	assert.Len(t, SampleWords([]string{"x"}, 3), 1)

	assert.Empty(t, SampleWords(nil, 3))
	assert.Empty(t, SampleWords(pool, 0))

	// The input order must never be disturbed
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, pool)
}
