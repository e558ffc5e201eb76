package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsCanonicalDate(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"2024-01-01", true},
		{"2024-02-29", true},
		{"2023-02-29", false},
		{"2024-1-01", false},
		{"01/02/2024", false},
		{"2024-01-01T00:00:00Z", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsCanonicalDate(tt.input))
		})
	}
}

func TestParseAndFormatDate(t *testing.T) {
	d, err := ParseDate("2024-01-03")
	require.NoError(t, err)
	assert.Equal(t, time.January, d.Month())
	assert.Equal(t, "2024-01-03", FormatDate(d))

	_, err = ParseDate("yesterday")
	require.Error(t, err)
}

func TestCreateOutcome(t *testing.T) {
	created := CreatedOutcome(MoodEntry{ID: 7, Date: "2024-01-01", Mood: "😊"})
	assert.True(t, created.IsCreated())
	assert.False(t, created.IsDuplicate())
	assert.NoError(t, created.Err())
	assert.Equal(t, "created", created.Status.String())

	dup := DuplicateDateOutcome("2024-01-01")
	assert.True(t, dup.IsDuplicate())
	assert.Equal(t, "duplicate_date", dup.Status.String())
	assert.Zero(t, dup.Entry.ID)
	require.ErrorIs(t, dup.Err(), ErrDuplicateDate)

	assert.Equal(t, "unknown", CreateStatus(0).String())
}
