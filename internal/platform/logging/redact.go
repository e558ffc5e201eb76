package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// Bearer/basic credentials that may end up in config dumps.
var (
	bearerPattern    = regexp.MustCompile(`(?i)^bearer\s+.+$`)
	basicAuthPattern = regexp.MustCompile(`(?i)^basic\s+.+$`)
)

// DefaultRedactOptions returns the masq options used by every handler.
// Journal text is private, so note fields are masked wherever they appear.
func DefaultRedactOptions() []masq.Option {
	return []masq.Option{
		masq.WithFieldName("note"),
		masq.WithFieldName("Note"),
		masq.WithFieldName("journal_entry"),

		masq.WithFieldName("password"),
		masq.WithFieldName("token"),
		masq.WithFieldName("api_key"),
		masq.WithFieldName("authorization"),

		masq.WithFieldPrefix("secret"),
		masq.WithFieldPrefix("private"),

		masq.WithRegex(bearerPattern),
		masq.WithRegex(basicAuthPattern),
	}
}

// NewReplaceAttr creates a slog ReplaceAttr func that redacts sensitive
// values, extended with opts.
func NewReplaceAttr(opts ...masq.Option) func(groups []string, a slog.Attr) slog.Attr {
	allOpts := append(DefaultRedactOptions(), opts...)
	return masq.New(allOpts...)
}
