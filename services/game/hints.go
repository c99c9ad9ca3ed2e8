package game

import (
	"math/rand"
	"strings"
)

// HintTimes divides drawTime into numHints+1 equal integer intervals and
// returns the TimeRemaining values at which each hint fires, descending.
// With no hints or no draw time there is nothing to schedule.
func HintTimes(drawTime, numHints int) []int {
	if drawTime <= 0 || numHints <= 0 {
		return []int{}
	}
	interval := drawTime / (numHints + 1)
	times := make([]int, 0, numHints)
	for k := 1; k <= numHints; k++ {
		times = append(times, drawTime-interval*k)
	}
	return times
}

// NextHintAfter returns the first trigger instant strictly below the
// current TimeRemaining, or 0 when none remain.
func NextHintAfter(times []int, timeRemaining int) int {
	for _, t := range times {
		if t < timeRemaining {
			return t
		}
	}
	return 0
}

// RandomUnrevealedPosition picks a uniformly random letter index of word
// that is not yet revealed. ok is false when every position is disclosed.
func RandomUnrevealedPosition(word string, revealed []int) (pos int, ok bool) {
	letters := []rune(word)
	if len(letters) == 0 {
		return 0, false
	}
	revealedSet := make(map[int]bool, len(revealed))
	for _, p := range revealed {
		revealedSet[p] = true
	}
	available := make([]int, 0, len(letters))
	for i := range letters {
		if !revealedSet[i] {
			available = append(available, i)
		}
	}
	if len(available) == 0 {
		return 0, false
	}
	return available[rand.Intn(len(available))], true
}

// MaskedWord renders the word for guessers: revealed letters shown, the
// rest replaced by underscores, separated by spaces.
func MaskedWord(word string, revealed []int) string {
	letters := []rune(word)
	if len(letters) == 0 {
		return ""
	}
	revealedSet := make(map[int]bool, len(revealed))
	for _, p := range revealed {
		revealedSet[p] = true
	}
	parts := make([]string, len(letters))
	for i, letter := range letters {
		if revealedSet[i] {
			parts[i] = string(letter)
		} else {
			parts[i] = "_"
		}
	}
	return strings.Join(parts, " ")
}
