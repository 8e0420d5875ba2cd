package tui

import (
	"io"
	"strings"
)

// csiClear erases the screen and homes the cursor
var csiClear = []byte("\x1b[2J\x1b[H")

// ANSIDisplay repaints a terminal with ANSI control sequences. With crlf set
// it rewrites frame line endings to \r\n for raw-mode terminals, where output
// post-processing is off and a bare \n does not return the carriage.
type ANSIDisplay struct {
	w    io.Writer
	crlf bool
}

// NewANSIDisplay creates a display writing to w
func NewANSIDisplay(w io.Writer, crlf bool) *ANSIDisplay {
	return &ANSIDisplay{w: w, crlf: crlf}
}

// Clear erases the screen and moves the cursor to the top-left corner
func (d *ANSIDisplay) Clear() error {
	_, err := d.w.Write(csiClear)
	return err
}

// WriteFrame writes one rendered frame
func (d *ANSIDisplay) WriteFrame(frame string) error {
	if d.crlf {
		frame = strings.ReplaceAll(frame, "\n", "\r\n")
	}
	_, err := io.WriteString(d.w, frame)
	return err
}
