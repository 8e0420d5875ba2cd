package tui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/termgames/snake/game/engine"
)

// keyCtrlC is the byte a raw-mode terminal delivers for Ctrl-C
const keyCtrlC = 0x03

// KeyReader is the capability a front-end needs from an input source. The
// readers below also satisfy the session package's interface of the same
// shape.
type KeyReader interface {
	ReadCommand() (engine.Command, error)
	Close() error
}

// mapKeyByte decodes one key byte into a player command. The map is
// case-sensitive; unmapped bytes produce CommandNone so stray input never
// interrupts play.
func mapKeyByte(b byte) engine.Command {
	switch b {
	case 'w':
		return engine.Command{Type: engine.CommandMove, Direction: engine.DirUp}
	case 's':
		return engine.Command{Type: engine.CommandMove, Direction: engine.DirDown}
	case 'a':
		return engine.Command{Type: engine.CommandMove, Direction: engine.DirLeft}
	case 'd':
		return engine.Command{Type: engine.CommandMove, Direction: engine.DirRight}
	case 'q', keyCtrlC:
		return engine.Command{Type: engine.CommandQuit}
	}
	return engine.Command{Type: engine.CommandNone}
}

// RawKeyReader reads single key presses from a terminal switched into raw
// mode. Close restores the terminal state saved when the reader was opened;
// callers must ensure Close runs before anything else writes to the terminal
// in cooked mode.
type RawKeyReader struct {
	f        *os.File
	oldState *term.State
	buf      [1]byte
}

// NewRawKeyReader switches f into raw mode and returns a reader over it
func NewRawKeyReader(f *os.File) (*RawKeyReader, error) {
	oldState, err := term.MakeRaw(int(f.Fd()))
	if err != nil {
		return nil, fmt.Errorf("enter raw mode: %w", err)
	}
	return &RawKeyReader{f: f, oldState: oldState}, nil
}

// ReadCommand blocks until one key byte arrives and decodes it
func (r *RawKeyReader) ReadCommand() (engine.Command, error) {
	if _, err := r.f.Read(r.buf[:]); err != nil {
		return engine.Command{Type: engine.CommandNone}, err
	}
	return mapKeyByte(r.buf[0]), nil
}

// Close restores the saved terminal state. It is safe to call twice.
func (r *RawKeyReader) Close() error {
	if r.oldState == nil {
		return nil
	}
	state := r.oldState
	r.oldState = nil
	return term.Restore(int(r.f.Fd()), state)
}

// LineKeyReader is the cooked-mode fallback: the player types a key and
// presses enter. The first byte of each line is mapped; blank lines are
// CommandNone.
type LineKeyReader struct {
	r *bufio.Reader
}

// NewLineKeyReader creates a line reader over r
func NewLineKeyReader(r io.Reader) *LineKeyReader {
	return &LineKeyReader{r: bufio.NewReader(r)}
}

// ReadCommand reads one line and decodes its first byte. A final line
// without a newline is still decoded; the stream error surfaces on the next
// call.
func (l *LineKeyReader) ReadCommand() (engine.Command, error) {
	line, err := l.r.ReadString('\n')
	if len(line) == 0 && err != nil {
		return engine.Command{Type: engine.CommandNone}, err
	}
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return engine.Command{Type: engine.CommandNone}, nil
	}
	return mapKeyByte(line[0]), nil
}

// Close is a no-op; the line reader owns no terminal state
func (l *LineKeyReader) Close() error {
	return nil
}

// OpenKeyReader picks the best reader for f: raw single-key input when f is
// an interactive terminal, buffered line input otherwise. The returned label
// names the chosen variant so the caller can log a raw-mode fallback; the
// game starts either way.
func OpenKeyReader(f *os.File) (KeyReader, string) {
	if term.IsTerminal(int(f.Fd())) {
		r, err := NewRawKeyReader(f)
		if err == nil {
			return r, "raw single-key"
		}
		return NewLineKeyReader(f), fmt.Sprintf("line (raw mode unavailable: %v)", err)
	}
	return NewLineKeyReader(f), "line (not a terminal)"
}
