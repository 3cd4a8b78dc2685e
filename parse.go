package linebreak

import (
	"io"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

// Kind identifies what a command line asked for.
type Kind int

const (
	// KindParsed means a line should be printed with Result.Config.
	KindParsed Kind = iota

	// KindHelp means --help was given.
	KindHelp

	// KindVersion means --version was given.
	KindVersion

	// KindError means the command line was rejected; see Result.Err.
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindParsed:
		return "parsed"
	case KindHelp:
		return "help"
	case KindVersion:
		return "version"
	case KindError:
		return "error"
	}
	return "unknown"
}

// Result is the outcome of parsing a command line.
type Result struct {
	Kind Kind

	// Only meaningful when Kind is KindParsed.
	Config Config

	// Set by --verbose.
	Verbose bool

	// Either a *ParseError or a *ValidationError. Only set when Kind is
	// KindError.
	Err error
}

// errStop aborts flag parsing once a terminal flag has been seen.
var errStop = errors.New("stop parsing")

func newFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.SortFlags = false

	fs.StringP("text", "t", DefaultFillText, "Set the `text` or character to fill the line with.")
	fs.StringP("char", "c", "", "Set a single `char` to fill the line with.")
	fs.UintP("length", "n", DefaultMaxLength, "The maximum length of the filled line.")
	fs.StringP("prefix", "p", DefaultPrefix, "Text to print before the line.")
	fs.StringP("suffix", "s", DefaultSuffix, "Text to print after the line.")
	fs.BoolP("verbose", "v", false, "Log the resolved configuration to standard error.")
	fs.Bool("version", false, "Show the SemVer version of this tool.")
	fs.BoolP("help", "h", false, "Show this help message.")
	return fs
}

// Parse parses a command line (without the program name) using a fresh
// linebreak command.
func Parse(args []string) Result {
	return New(DefaultName).Parse(args)
}

// Parse parses args against c.Flags.
//
// Flags are handled in the order they appear. The first --help or
// --version ends parsing, and nothing after it is looked at. When both
// --text and --char are given, the last one wins. A single positional
// argument is accepted and ignored, so that linebreak can be invoked as a
// subcommand of another tool.
//
// A Cmd's flag set can only be parsed once.
func (c *Cmd) Parse(args []string) Result {
	if c.Flags == nil {
		c.Flags = newFlagSet(c.Name)
	}

	var (
		res  = Result{Kind: KindParsed}
		cfg  = DefaultConfig()
		verr error
	)
	err := c.Flags.ParseAll(args, func(flag *pflag.Flag, value string) error {
		// pflag reads uints in base 0, so the canonical form is stored.
		switch flag.Name {
		case "char":
			r, err := ParseChar(value)
			if err != nil {
				verr = err
				return err
			}
			cfg.FillText = string(r)
			value = cfg.FillText
		case "length":
			n, err := ParseLength(value)
			if err != nil {
				verr = err
				return err
			}
			cfg.MaxLength = n
			value = strconv.FormatUint(uint64(n), 10)
		}

		if err := c.Flags.Set(flag.Name, value); err != nil {
			return err
		}

		switch flag.Name {
		case "text":
			cfg.FillText = value
		case "prefix":
			cfg.Prefix = value
		case "suffix":
			cfg.Suffix = value
		case "verbose":
			res.Verbose, _ = c.Flags.GetBool("verbose")
		case "help":
			if on, _ := c.Flags.GetBool("help"); on {
				res.Kind = KindHelp
				return errStop
			}
		case "version":
			if on, _ := c.Flags.GetBool("version"); on {
				res.Kind = KindVersion
				return errStop
			}
		}
		return nil
	})

	switch {
	case res.Kind != KindParsed:
		return res
	case verr != nil:
		return Result{Kind: KindError, Verbose: res.Verbose, Err: verr}
	case err != nil:
		return Result{Kind: KindError, Verbose: res.Verbose, Err: &ParseError{err: err}}
	case c.Flags.NArg() > 1:
		return Result{
			Kind:    KindError,
			Verbose: res.Verbose,
			Err:     &ParseError{err: errors.Errorf("unexpected argument: %q", c.Flags.Arg(1))},
		}
	}

	if err := cfg.Validate(); err != nil {
		return Result{Kind: KindError, Verbose: res.Verbose, Err: err}
	}
	res.Config = cfg
	return res
}
