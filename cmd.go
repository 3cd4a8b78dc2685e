package linebreak

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

// Exit codes returned by ExecArgs.
const (
	ExitSuccess     = 0
	ExitWriteError  = 1
	ExitInvalidArgs = 2
)

// DefaultName is the name the command is installed under.
const DefaultName = "linebreak"

// Version is printed by --version. Release builds set it with
//
//	-ldflags "-X github.com/nesv/linebreak.Version=x.y.z"
var Version = "1.0.0"

const description = `Prints a line of characters to fill a line with.
Intended to be used with a file-watching tool,
eg: 'watchexec -- "linebreak && go test ./..."'.`

// Cmd is the linebreak command-line interface.
type Cmd struct {
	// The name of the command, as shown in usage messages.
	Name string

	// A short description, shown at the top of the help message.
	Description string

	// Printed by --version.
	Version string

	// The flag set command lines are parsed against. Created by New.
	Flags *pflag.FlagSet

	// Where the line, help and version go. Defaults to os.Stdout.
	Stdout io.Writer

	// Where errors and log records go. Defaults to os.Stderr.
	Stderr io.Writer

	// If nil, a text logger writing to Stderr is created on first use. Its
	// level is Warn, or Debug when --verbose is given.
	Logger *slog.Logger

	level slog.LevelVar
}

// New returns a *Cmd with the linebreak flags registered, writing to the
// process's standard streams.
func New(name string) *Cmd {
	c := &Cmd{
		Name:        name,
		Description: description,
		Version:     Version,
		Flags:       newFlagSet(name),
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
	}
	c.level.Set(slog.LevelWarn)
	return c
}

// Usage returns the one-line usage message.
func (c *Cmd) Usage() string {
	return fmt.Sprintf("Usage: %s [ignored] [options]", c.Name)
}

// Help returns the usage message followed by a description of every flag.
func (c *Cmd) Help() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n%s\n", c.Usage(), c.Description)

	b.WriteString("\nArguments\n")
	tw := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "  ignored\tThe first trailing argument is ignored, to be compatible with\n")
	fmt.Fprintf(tw, "  \tsubcommand invocation.\n")
	tw.Flush()

	b.WriteString("\nFlags\n")
	if c.Flags != nil {
		b.WriteString(c.Flags.FlagUsages())
	}
	return strings.TrimRight(b.String(), "\n")
}

// Exec is short-hand for
//
//	os.Exit(c.ExecArgs(os.Args[1:]))
func (c *Cmd) Exec() {
	os.Exit(c.ExecArgs(os.Args[1:]))
}

// ExecArgs parses args, carries out what they ask for, and returns the exit
// code the process should terminate with. Nothing is written to Stdout
// when args are rejected.
func (c *Cmd) ExecArgs(args []string) int {
	res := c.Parse(args)
	if res.Verbose {
		c.level.Set(slog.LevelDebug)
	}
	log := c.logger()
	log.Debug("parsed arguments", "args", args, "result", res.Kind)

	switch res.Kind {
	case KindHelp:
		return c.print(c.Help())

	case KindVersion:
		return c.print(c.Version)

	case KindError:
		log.Debug("rejected arguments", "error", res.Err)
		c.printError(res.Err)
		return ExitInvalidArgs

	case KindParsed:
		cfg := res.Config
		log.Debug("printing line",
			"text", cfg.FillText,
			"length", cfg.MaxLength,
			"prefix", cfg.Prefix,
			"suffix", cfg.Suffix,
		)
		if _, err := cfg.WriteTo(c.stdout()); err != nil {
			fmt.Fprintln(c.stderr(), "error:", errors.Wrap(err, "write line"))
			return ExitWriteError
		}
		return ExitSuccess
	}

	panic(fmt.Sprintf("unhandled parse result %v", res.Kind))
}

func (c *Cmd) print(s string) int {
	if _, err := fmt.Fprintln(c.stdout(), s); err != nil {
		fmt.Fprintln(c.stderr(), "error:", err)
		return ExitWriteError
	}
	return ExitSuccess
}

// printError reports a rejected command line, along with the usage message.
func (c *Cmd) printError(err error) {
	var perr *ParseError
	if errors.As(err, &perr) {
		fmt.Fprintln(c.stderr(), "parse error:", err)
	} else {
		fmt.Fprintln(c.stderr(), err)
	}
	fmt.Fprintln(c.stderr(), c.Usage())
}

func (c *Cmd) logger() *slog.Logger {
	if c.Logger == nil {
		c.Logger = slog.New(slog.NewTextHandler(c.stderr(), &slog.HandlerOptions{
			Level: &c.level,
		}))
	}
	return c.Logger
}

func (c *Cmd) stdout() io.Writer {
	if c.Stdout == nil {
		return os.Stdout
	}
	return c.Stdout
}

func (c *Cmd) stderr() io.Writer {
	if c.Stderr == nil {
		return os.Stderr
	}
	return c.Stderr
}
