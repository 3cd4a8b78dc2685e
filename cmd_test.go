package linebreak

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCmd() (*Cmd, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	c := New("linebreak")
	c.Version = "1.2.3"
	c.Stdout = &stdout
	c.Stderr = &stderr
	return c, &stdout, &stderr
}

func TestExecArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "defaults", args: nil, want: "\n" + strings.Repeat("=", 80) + "\n\n"},
		{name: "text", args: []string{"--length", "5", "--text", "ab"}, want: "\nabab\n\n"},
		{name: "char", args: []string{"--char", "x", "-n", "3"}, want: "\nxxx\n\n"},
		{name: "bare", args: []string{"-p", "", "-s", "", "-n", "4", "-t", "-"}, want: "----\n"},
		{name: "short line", args: []string{"-t", "abc", "-n", "2", "-p", "<", "-s", ">"}, want: "<>\n"},
		{name: "leading zero length", args: []string{"-n", "010", "-p", "", "-s", ""}, want: "==========\n"},
		{name: "subcommand positional", args: []string{"linebreak", "-n", "1"}, want: "\n=\n\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, stdout, stderr := newTestCmd()
			require.Equal(t, ExitSuccess, c.ExecArgs(tt.args))
			assert.Equal(t, tt.want, stdout.String())
			assert.Empty(t, stderr.String())
		})
	}
}

func TestExecArgsVersion(t *testing.T) {
	c, stdout, _ := newTestCmd()
	require.Equal(t, ExitSuccess, c.ExecArgs([]string{"--version"}))
	assert.Equal(t, "1.2.3\n", stdout.String())
}

func TestExecArgsHelp(t *testing.T) {
	c, stdout, stderr := newTestCmd()
	require.Equal(t, ExitSuccess, c.ExecArgs([]string{"-n", "3", "-h"}))

	out := stdout.String()
	assert.True(t, strings.HasPrefix(out, "Usage: linebreak [ignored] [options]\n\n"), out)
	for _, flag := range []string{"--text", "--char", "--length", "--prefix", "--suffix", "--verbose", "--version", "--help"} {
		assert.Contains(t, out, flag)
	}
	assert.Contains(t, out, "ignored")
	assert.NotContains(t, out, "===")
	assert.Empty(t, stderr.String())
}

func TestExecArgsRejected(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{name: "bad length", args: []string{"--length", "foo"}, wantErr: "invalid length given: foo: invalid syntax\n"},
		{name: "empty char", args: []string{"--char", ""}, wantErr: `invalid character given: ""`},
		{name: "two chars", args: []string{"--char", "ab"}, wantErr: `invalid character given: "ab"`},
		{name: "huge length", args: []string{"-n", "18446744073709551615"}, wantErr: "invalid length given: 18446744073709551615 (maximum is 1048576)\n"},
		{name: "empty text", args: []string{"-t", ""}, wantErr: "fill text must not be empty\n"},
		{name: "unknown flag", args: []string{"--bogus"}, wantErr: "parse error: unknown flag: --bogus\n"},
		{name: "surplus positional", args: []string{"a", "b"}, wantErr: `parse error: unexpected argument: "b"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, stdout, stderr := newTestCmd()
			require.Equal(t, ExitInvalidArgs, c.ExecArgs(tt.args))
			assert.Empty(t, stdout.String())
			assert.Contains(t, stderr.String(), tt.wantErr)
			assert.True(t, strings.HasSuffix(stderr.String(), "Usage: linebreak [ignored] [options]\n"), stderr.String())
		})
	}
}

func TestExecArgsVerbose(t *testing.T) {
	c, stdout, stderr := newTestCmd()
	require.Equal(t, ExitSuccess, c.ExecArgs([]string{"-v", "-n", "2"}))
	assert.Equal(t, "\n==\n\n", stdout.String())

	logs := stderr.String()
	assert.Contains(t, logs, "level=DEBUG")
	assert.Contains(t, logs, `msg="printing line"`)
	assert.Contains(t, logs, "length=2")
}

func TestExecArgsQuietByDefault(t *testing.T) {
	c, _, stderr := newTestCmd()
	require.Equal(t, ExitSuccess, c.ExecArgs([]string{"-n", "2"}))
	assert.NotContains(t, stderr.String(), "level=")
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestExecArgsWriteError(t *testing.T) {
	c, _, stderr := newTestCmd()
	c.Stdout = failWriter{}

	require.Equal(t, ExitWriteError, c.ExecArgs(nil))
	assert.Equal(t, "error: write line: disk full\n", stderr.String())
}

func TestCmdWithoutNew(t *testing.T) {
	var stdout bytes.Buffer
	c := &Cmd{Name: "sep", Stdout: &stdout, Stderr: &bytes.Buffer{}}

	require.Equal(t, ExitSuccess, c.ExecArgs([]string{"-n", "3", "-t", "*"}))
	assert.Equal(t, "\n***\n\n", stdout.String())
	assert.Equal(t, "Usage: sep [ignored] [options]", c.Usage())
}
