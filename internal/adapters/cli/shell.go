// Package cli is the journal's command shell. It parses subcommands, calls
// the journal service and renders results as text.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"runtime/debug"
	"slices"
	"strings"

	"github.com/jsamuelsen/mood-journal/internal/app"
	"github.com/jsamuelsen/mood-journal/internal/platform/logging"
	"github.com/jsamuelsen/mood-journal/internal/ports"
)

// DefaultExportPath is where export writes without --out.
const DefaultExportPath = "mood_journal.xlsx"

// Config contains the shell's dependencies.
type Config struct {
	Service *app.JournalService
	Health  ports.HealthRegistry

	// Out receives command output. Usage and flag errors go to ErrOut.
	Out    io.Writer
	ErrOut io.Writer

	Logger *slog.Logger
}

// Shell dispatches subcommands.
type Shell struct {
	svc    *app.JournalService
	health ports.HealthRegistry
	out    io.Writer
	errOut io.Writer
	styles styles
	logger *slog.Logger
}

type command struct {
	name    string
	summary string
	run     func(s *Shell, ctx context.Context, args []string) error
}

var commands = []command{
	{"add", "record a mood for a date", (*Shell).add},
	{"history", "list every entry, most recent first", (*Shell).history},
	{"trends", "count entries per mood", (*Shell).trends},
	{"search", "show the entry for a date", (*Shell).search},
	{"moods", "list the mood vocabulary", (*Shell).moods},
	{"export", "write history and trends to a spreadsheet", (*Shell).export},
	{"doctor", "check that the journal is usable", (*Shell).doctor},
}

// New creates a shell. It panics without a service.
func New(cfg Config) *Shell {
	if cfg.Service == nil {
		panic("cli: Config.Service is required")
	}

	out := cfg.Out
	if out == nil {
		out = io.Discard
	}

	errOut := cfg.ErrOut
	if errOut == nil {
		errOut = out
	}

	health := cfg.Health
	if health == nil {
		health = ports.NewHealthRegistry()
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Shell{
		svc:    cfg.Service,
		health: health,
		out:    out,
		errOut: errOut,
		styles: newStyles(out),
		logger: logger.With(slog.String("component", "cli.Shell")),
	}
}

// CommandName returns the subcommand args would run, or "" for none.
func CommandName(args []string) string {
	if len(args) == 0 {
		return ""
	}

	return args[0]
}

// Run executes the subcommand named by args[0] with the remaining args.
func (s *Shell) Run(ctx context.Context, args []string) error {
	name := CommandName(args)
	if name == "" || name == "help" || name == "-h" || name == "--help" {
		s.usage(s.out)
		return nil
	}

	idx := slices.IndexFunc(commands, func(c command) bool { return c.name == name })
	if idx < 0 {
		s.usage(s.errOut)
		return fmt.Errorf("%w: unknown command %q", ErrUsage, name)
	}

	ctx = logging.WithCommand(ctx, name)
	logging.FromContext(ctx).DebugContext(ctx, "running command")

	err := s.runRecovered(ctx, commands[idx], args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}

	return err
}

// runRecovered turns a panic inside a command into ErrInternal, logging the
// stack at ERROR level.
func (s *Shell) runRecovered(ctx context.Context, c command, args []string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			logging.FromContext(ctx).ErrorContext(ctx, "panic recovered",
				slog.Any("error", r),
				slog.String("stack", string(debug.Stack())),
			)

			err = fmt.Errorf("%w: %s failed unexpectedly", ErrInternal, c.name)
		}
	}()

	return c.run(s, ctx, args)
}

// flags creates a FlagSet that reports errors instead of exiting.
func (s *Shell) flags(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(s.errOut)

	return fs
}

// parse wraps flag errors in ErrUsage and rejects stray arguments.
func parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}

		return fmt.Errorf("%w: %s: %v", ErrUsage, fs.Name(), err)
	}

	if fs.NArg() > 0 {
		return fmt.Errorf("%w: %s: unexpected arguments %s", ErrUsage, fs.Name(), strings.Join(fs.Args(), " "))
	}

	return nil
}

func (s *Shell) usage(w io.Writer) {
	fmt.Fprintln(w, s.styles.header.Render("Mood Journal"))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage: moodjournal <command> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")

	for _, c := range commands {
		fmt.Fprintf(w, "  %-8s %s\n", c.name, c.summary)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, `Run "moodjournal <command> -h" for the command's flags.`)
}
