package domain

import (
	"fmt"
	"time"
)

// DateLayout is the canonical ISO calendar date format used as the entry key.
const DateLayout = "2006-01-02"

// DefaultMoods is the mood vocabulary offered by the shell.
// The store accepts any non-empty mood.
var DefaultMoods = []string{"😊", "😔", "😡", "😌", "😎", "😭", "😴"}

// MoodEntry is one journal record: a date, a mood symbol and a note.
// Entries are immutable once stored.
type MoodEntry struct {
	// ID is assigned by the store and never reused. Zero until stored.
	ID int64

	// Date is the calendar date in DateLayout form. Unique per store.
	Date string

	// Mood is a short symbolic label such as an emoji.
	Mood string

	// Note is free text and may be empty.
	Note string
}

// FormatDate renders t as a canonical entry date.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a canonical entry date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date %q: %w", s, err)
	}

	return t, nil
}

// IsCanonicalDate reports whether s is a valid date already in DateLayout form.
func IsCanonicalDate(s string) bool {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return false
	}

	return t.Format(DateLayout) == s
}
