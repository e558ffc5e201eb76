package cli

import (
	"errors"

	"github.com/jsamuelsen/mood-journal/internal/domain"
)

// Exit codes returned by the moodjournal binary.
const (
	ExitOK         = 0
	ExitFailure    = 1
	ExitValidation = 2
)

var (
	// ErrUsage is returned for unknown commands and bad flags.
	ErrUsage = errors.New("usage error")

	// ErrUnhealthy is returned by doctor when a check fails.
	ErrUnhealthy = errors.New("journal is unhealthy")

	// ErrInternal is returned when a command panics.
	ErrInternal = errors.New("internal error")
)

// ExitCode maps an error from Shell.Run to a process exit code. Duplicate
// dates and missing entries are reported as messages and never reach here.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case domain.IsValidation(err):
		return ExitValidation
	default:
		return ExitFailure
	}
}
