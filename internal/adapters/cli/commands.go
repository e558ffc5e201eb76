package cli

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jsamuelsen/mood-journal/internal/app"
	"github.com/jsamuelsen/mood-journal/internal/domain"
	"github.com/jsamuelsen/mood-journal/internal/ports"
)

// Messages shown to the user.
const (
	msgSaved         = "Mood entry saved successfully!"
	msgDuplicate     = "You have already saved an entry for this date!"
	msgNoEntries     = "No mood entries found!"
	msgNoTrendData   = "No mood entries found for analysis!"
	msgNoEntryForFmt = "No mood entry found for %s!"
)

func (s *Shell) add(ctx context.Context, args []string) error {
	moods := s.svc.Moods()

	fs := s.flags("add")
	date := fs.String("date", s.svc.Today(), "entry date, YYYY-MM-DD")
	mood := fs.String("mood", moods[0], "mood, one of "+strings.Join(moods, " "))
	note := fs.String("note", "", "journal entry text")

	if err := parse(fs, args); err != nil {
		return err
	}

	outcome, err := s.svc.Record(ctx, app.RecordRequest{
		Date: *date,
		Mood: *mood,
		Note: strings.TrimSpace(*note),
	})
	if err != nil {
		return err
	}

	if outcome.IsDuplicate() {
		fmt.Fprintln(s.out, s.styles.failure.Render(msgDuplicate))
		return nil
	}

	fmt.Fprintln(s.out, s.styles.success.Render(msgSaved))

	return nil
}

func (s *Shell) history(ctx context.Context, args []string) error {
	if err := parse(s.flags("history"), args); err != nil {
		return err
	}

	entries, err := s.svc.History(ctx)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Fprintln(s.out, s.styles.info.Render(msgNoEntries))
		return nil
	}

	fmt.Fprintln(s.out, s.styles.header.Render("Mood History"))

	rule := s.styles.separator.Render(strings.Repeat("-", separatorWidth))
	for _, e := range entries {
		fmt.Fprintf(s.out, "%s %s\n", s.styles.label.Render("Date:"), e.Date)
		fmt.Fprintf(s.out, "%s %s\n", s.styles.label.Render("Mood:"), e.Mood)
		fmt.Fprintf(s.out, "%s %s\n", s.styles.label.Render("Entry:"), e.Note)
		fmt.Fprintln(s.out, rule)
	}

	return nil
}

func (s *Shell) trends(ctx context.Context, args []string) error {
	if err := parse(s.flags("trends"), args); err != nil {
		return err
	}

	counts, err := s.svc.Trends(ctx)
	if err != nil {
		return err
	}

	if len(counts) == 0 {
		fmt.Fprintln(s.out, s.styles.info.Render(msgNoTrendData))
		return nil
	}

	fmt.Fprintln(s.out, s.styles.header.Render("Mood Trends"))

	for _, c := range counts {
		fmt.Fprintf(s.out, "%s: %d times\n", c.Mood, c.Count)
	}

	return nil
}

func (s *Shell) search(ctx context.Context, args []string) error {
	fs := s.flags("search")
	date := fs.String("date", s.svc.Today(), "date to look up, YYYY-MM-DD")

	if err := parse(fs, args); err != nil {
		return err
	}

	entry, found, err := s.svc.Search(ctx, *date)
	if err != nil {
		return err
	}

	if !found {
		fmt.Fprintln(s.out, s.styles.info.Render(fmt.Sprintf(msgNoEntryForFmt, *date)))
		return nil
	}

	fmt.Fprintln(s.out, s.styles.header.Render("Entry for "+entry.Date))
	fmt.Fprintf(s.out, "%s %s\n\n", s.styles.label.Render("Mood:"), entry.Mood)
	fmt.Fprintln(s.out, s.styles.label.Render("Journal Entry:"))
	fmt.Fprintln(s.out, entry.Note)

	return nil
}

func (s *Shell) moods(_ context.Context, args []string) error {
	if err := parse(s.flags("moods"), args); err != nil {
		return err
	}

	for _, m := range s.svc.Moods() {
		fmt.Fprintln(s.out, m)
	}

	return nil
}

func (s *Shell) export(ctx context.Context, args []string) error {
	fs := s.flags("export")
	out := fs.String("out", DefaultExportPath, "spreadsheet to write")

	if err := parse(fs, args); err != nil {
		return err
	}

	entries, err := s.svc.History(ctx)
	if err != nil {
		return err
	}

	if err := writeWorkbook(*out, entries, domain.SortedTally(entries)); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "exported journal",
		slog.String("path", *out),
		slog.Int("entries", len(entries)),
	)
	fmt.Fprintln(s.out, s.styles.success.Render(fmt.Sprintf("Exported %d entries to %s", len(entries), *out)))

	return nil
}

func (s *Shell) doctor(ctx context.Context, args []string) error {
	if err := parse(s.flags("doctor"), args); err != nil {
		return err
	}

	result := s.health.CheckAll(ctx)

	for _, name := range result.Names() {
		check := result.Checks[name]

		line := fmt.Sprintf("%s: %s (%s)", name, check.Status, check.Duration.Round(time.Microsecond))
		if check.Message != "" {
			line += " " + check.Message
		}

		if check.Status == ports.HealthStatusHealthy {
			fmt.Fprintln(s.out, s.styles.success.Render(line))
		} else {
			fmt.Fprintln(s.out, s.styles.failure.Render(line))
		}
	}

	if result.Status != ports.HealthStatusHealthy {
		return ErrUnhealthy
	}

	fmt.Fprintln(s.out, s.styles.success.Render("journal is healthy"))

	return nil
}
