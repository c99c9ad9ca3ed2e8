package game

import (
	"math/rand"
	"strings"
)

// ResolveWordPool combines the default word list with the room's custom
// words (comma-separated, trimmed, empties dropped). Called once per game
// start; an empty result is a data-quality problem, not an error.
func ResolveWordPool(defaults []string, customWords string) []string {
	pool := append([]string(nil), defaults...)
	for _, w := range strings.Split(customWords, ",") {
		w = strings.TrimSpace(w)
		if w != "" {
			pool = append(pool, w)
		}
	}
	return pool
}

// SampleWords picks count distinct words from the pool uniformly at random
// (shuffle-and-slice). A pool smaller than count is returned whole.
func SampleWords(pool []string, count int) []string {
	if count <= 0 || len(pool) == 0 {
		return []string{}
	}
	shuffled := append([]string(nil), pool...)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if count > len(shuffled) {
		count = len(shuffled)
	}
	return shuffled[:count]
}
