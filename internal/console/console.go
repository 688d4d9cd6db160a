// Package console provides line-oriented terminal input and output.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// SeparatorWidth is the number of dashes in a section separator.
const SeparatorWidth = 50

const clearSequence = "\x1b[H\x1b[2J"

// Console reads answers one line at a time and writes plain text output.
// Write errors are sticky and surface on the next read.
type Console struct {
	in    *bufio.Reader
	out   io.Writer
	clear bool
	err   error
}

// New returns a Console. When clear is false, Clear is a no-op.
func New(in io.Reader, out io.Writer, clear bool) *Console {
	return &Console{in: bufio.NewReader(in), out: out, clear: clear}
}

// Write implements io.Writer and records the first write error.
func (c *Console) Write(p []byte) (int, error) {
	if c.err != nil {
		return 0, c.err
	}
	n, err := c.out.Write(p)
	if err != nil {
		c.err = err
	}
	return n, err
}

// Err returns the first write error, if any.
func (c *Console) Err() error {
	return c.err
}

// Println writes the arguments followed by a newline.
func (c *Console) Println(args ...any) {
	_, _ = fmt.Fprintln(c, args...)
}

// Printf writes formatted output.
func (c *Console) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(c, format, args...)
}

// Separator writes a line of dashes.
func (c *Console) Separator() {
	c.Println(strings.Repeat("-", SeparatorWidth))
}

// Clear wipes the terminal when clearing is enabled.
func (c *Console) Clear() {
	if !c.clear {
		return
	}
	_, _ = io.WriteString(c, clearSequence)
}

// ReadLine blocks until a full line is available and returns it without the
// line terminator. A final unterminated line is returned before io.EOF.
func (c *Console) ReadLine() (string, error) {
	if c.err != nil {
		return "", c.err
	}
	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Ask prints the question and returns the lowercased, trimmed answer.
func (c *Console) Ask(question string) (string, error) {
	c.Println(question)
	line, err := c.ReadLine()
	if err != nil {
		return "", err
	}
	return strings.ToLower(strings.TrimSpace(line)), nil
}
