package tui

import (
	"bytes"
	"errors"
	"testing"
)

type failingWriter struct {
	err error
}

func (w failingWriter) Write(p []byte) (int, error) {
	return 0, w.err
}

func TestANSIDisplay_Clear(t *testing.T) {
	var buf bytes.Buffer
	display := NewANSIDisplay(&buf, false)

	if err := display.Clear(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got := buf.String(); got != "\x1b[2J\x1b[H" {
		t.Errorf("Expected the clear-and-home sequence, got %q", got)
	}
}

func TestANSIDisplay_WriteFrame(t *testing.T) {
	t.Run("cooked mode keeps newlines", func(t *testing.T) {
		var buf bytes.Buffer
		display := NewANSIDisplay(&buf, false)

		if err := display.WriteFrame("ab\ncd\n"); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if got := buf.String(); got != "ab\ncd\n" {
			t.Errorf("Expected the frame unchanged, got %q", got)
		}
	})

	t.Run("raw mode rewrites line endings", func(t *testing.T) {
		var buf bytes.Buffer
		display := NewANSIDisplay(&buf, true)

		if err := display.WriteFrame("ab\ncd\n"); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if got := buf.String(); got != "ab\r\ncd\r\n" {
			t.Errorf("Expected CRLF line endings, got %q", got)
		}
	})
}

func TestANSIDisplay_WriteErrors(t *testing.T) {
	sink := errors.New("terminal gone")
	display := NewANSIDisplay(failingWriter{err: sink}, false)

	if err := display.Clear(); !errors.Is(err, sink) {
		t.Errorf("Expected the writer error from Clear, got %v", err)
	}
	if err := display.WriteFrame("frame"); !errors.Is(err, sink) {
		t.Errorf("Expected the writer error from WriteFrame, got %v", err)
	}
}
