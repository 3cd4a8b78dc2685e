package linebreak

import (
	"strconv"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// Default values used when the corresponding flag is not given.
const (
	DefaultFillText  = "="
	DefaultMaxLength = 80
	DefaultPrefix    = "\n"
	DefaultSuffix    = "\n"
)

// MaxLineLength is the largest accepted maximum line length.
const MaxLineLength = 1 << 20

// Config describes a single separator line.
type Config struct {
	// The text repeated to build the line body. Must not be empty.
	FillText string

	// The maximum length of the line body, in bytes.
	MaxLength uint

	// Printed verbatim before the line body.
	Prefix string

	// Printed verbatim after the line body.
	Suffix string
}

// DefaultConfig returns the configuration used when no flags are given: 80
// '=' characters on a line of their own.
func DefaultConfig() Config {
	return Config{
		FillText:  DefaultFillText,
		MaxLength: DefaultMaxLength,
		Prefix:    DefaultPrefix,
		Suffix:    DefaultSuffix,
	}
}

// Validate reports whether c can be used to build a line.
func (c Config) Validate() error {
	if c.FillText == "" {
		return &ValidationError{
			Flag: "text",
			err:  errors.New("fill text must not be empty"),
		}
	}
	return nil
}

// ParseChar returns the only character in s. It is an error for s to be
// empty, or to hold more than one character.
func ParseChar(s string) (rune, error) {
	if n := utf8.RuneCountInString(s); n != 1 {
		return 0, &ValidationError{
			Flag:  "char",
			Value: s,
			err:   errors.Errorf("invalid character given: %q (expected exactly one character, got %d)", s, n),
		}
	}
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size <= 1 {
		return 0, &ValidationError{
			Flag:  "char",
			Value: s,
			err:   errors.Errorf("invalid character given: %q (not valid UTF-8)", s),
		}
	}
	return r, nil
}

// ParseLength parses s as a base 10 maximum line length, no larger than
// MaxLineLength. Leading zeros are allowed.
func ParseLength(s string) (uint, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		if ne, ok := err.(*strconv.NumError); ok {
			err = ne.Err
		}
		return 0, &ValidationError{
			Flag:  "length",
			Value: s,
			err:   errors.Wrapf(err, "invalid length given: %s", s),
		}
	}
	if n > MaxLineLength {
		return 0, &ValidationError{
			Flag:  "length",
			Value: s,
			err:   errors.Errorf("invalid length given: %s (maximum is %d)", s, MaxLineLength),
		}
	}
	return uint(n), nil
}
