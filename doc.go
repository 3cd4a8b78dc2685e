// Package linebreak prints a separator line: a fill token repeated up to a
// maximum length, framed by a prefix and a suffix.
//
// It is meant to be run between iterations of a file-watching development
// loop, so that the output of each run is easy to tell apart:
//
//	$ watchexec -- 'linebreak && go test ./...'
//
// The package is usable as a library as well. A Config describes a single
// line, and Cmd wraps the command-line surface around it:
//
//	cfg := linebreak.DefaultConfig()
//	cfg.FillText = "-"
//	cfg.MaxLength = 40
//	fmt.Println(cfg.Render())
//
// Flags are parsed with github.com/spf13/pflag, so both the POSIX short form
// (-n 40) and the long form (--length=40) are accepted.
package linebreak
