package console

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestReadLineStripsTerminators(t *testing.T) {
	c := New(strings.NewReader("Yes\r\nno\nlast"), io.Discard, false)
	for _, want := range []string{"Yes", "no", "last"} {
		got, err := c.ReadLine()
		if err != nil {
			t.Fatalf("read line: %v", err)
		}
		if got != want {
			t.Fatalf("expected %q, got %q", want, got)
		}
	}
	if _, err := c.ReadLine(); !errors.Is(err, io.EOF) {
		t.Fatalf("expected EOF, got %v", err)
	}
}

func TestAskLowercases(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader("  New York City \n"), &out, false)
	got, err := c.Ask("Which city?")
	if err != nil {
		t.Fatalf("ask: %v", err)
	}
	if got != "new york city" {
		t.Fatalf("unexpected answer %q", got)
	}
	if out.String() != "Which city?\n" {
		t.Fatalf("unexpected prompt output %q", out.String())
	}
}

func TestClearOnlyWhenEnabled(t *testing.T) {
	var out bytes.Buffer
	New(strings.NewReader(""), &out, false).Clear()
	if out.Len() != 0 {
		t.Fatalf("expected no output when clearing is disabled, got %q", out.String())
	}
	New(strings.NewReader(""), &out, true).Clear()
	if out.String() != clearSequence {
		t.Fatalf("expected clear sequence, got %q", out.String())
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestWriteErrorSurfacesOnRead(t *testing.T) {
	c := New(strings.NewReader("yes\n"), failingWriter{}, false)
	c.Separator()
	if _, err := c.ReadLine(); err == nil || err.Error() != "broken pipe" {
		t.Fatalf("expected sticky write error, got %v", err)
	}
}
