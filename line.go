package linebreak

import (
	"fmt"
	"io"
	"strings"
)

// Line returns fill repeated as many times as fits within max bytes. A fill
// token is never split, so the result may be shorter than max. An empty fill
// yields an empty line. max is capped at MaxLineLength.
func Line(fill string, max uint) string {
	if fill == "" {
		return ""
	}
	if max > MaxLineLength {
		max = MaxLineLength
	}
	return strings.Repeat(fill, int(max/uint(len(fill))))
}

// Render returns the prefix, the line body and the suffix.
func (c Config) Render() string {
	return c.Prefix + Line(c.FillText, c.MaxLength) + c.Suffix
}

// WriteTo writes the rendered line to w, followed by a newline.
func (c Config) WriteTo(w io.Writer) (int64, error) {
	n, err := fmt.Fprintln(w, c.Render())
	return int64(n), err
}
