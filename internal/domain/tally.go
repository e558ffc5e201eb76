package domain

import (
	"cmp"
	"slices"
)

// MoodCount is one row of a trend tally.
type MoodCount struct {
	Mood  string
	Count int
}

// Tally counts entries per exact mood string.
func Tally(entries []MoodEntry) map[string]int {
	counts := make(map[string]int)
	for _, e := range entries {
		counts[e.Mood]++
	}

	return counts
}

// SortedTally returns the tally ordered by count, highest first.
// Equal counts are ordered by mood so output is stable.
func SortedTally(entries []MoodEntry) []MoodCount {
	counts := Tally(entries)

	rows := make([]MoodCount, 0, len(counts))
	for mood, n := range counts {
		rows = append(rows, MoodCount{Mood: mood, Count: n})
	}

	slices.SortFunc(rows, func(a, b MoodCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Mood, b.Mood)
	})

	return rows
}
