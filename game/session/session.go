package session

import (
	"context"
	"fmt"

	"github.com/termgames/snake/game/engine"
)

// Status represents the lifecycle state of an interactive game session
type Status string

const (
	StatusRunning Status = "running"
	StatusLost    Status = "lost"
	StatusQuit    Status = "quit"
)

// String returns the status as a plain word for logs and summaries
func (s Status) String() string {
	return string(s)
}

// KeyReader supplies one decoded player command per call. Readers block until
// input is available; a read error ends the session instead of looping.
type KeyReader interface {
	ReadCommand() (engine.Command, error)
	Close() error
}

// Display is the terminal surface the session draws on.
type Display interface {
	Clear() error
	WriteFrame(frame string) error
}

// RenderFunc turns a game state into a complete text frame.
type RenderFunc func(st *engine.GameState) string

// Outcome summarizes a finished session. Note is empty in normal play and
// carries the environment note when the session ended on a degraded input or
// display, so the caller can log it after the terminal is restored.
type Outcome struct {
	Status  Status `json:"status"`
	Score   int    `json:"score"`
	Level   int    `json:"level"`
	Length  int    `json:"length"`
	Ticks   int    `json:"ticks"`
	Cause   string `json:"cause,omitempty"`
	Message string `json:"message,omitempty"`
	Note    string `json:"note,omitempty"`
}

// Session drives one interactive game: it owns the read-steer-advance-render
// loop and the running/lost/quit state machine. The engine holds the rules;
// the session only orchestrates. Sessions are single-threaded and single-use.
type Session struct {
	engine  engine.Engine
	input   KeyReader
	display Display
	render  RenderFunc
	status  Status
	note    string
}

// New creates a session over an engine and its terminal collaborators. The
// caller keeps ownership of the reader and closes it after Run returns.
func New(eng engine.Engine, input KeyReader, display Display, render RenderFunc) (*Session, error) {
	if eng == nil {
		return nil, fmt.Errorf("session: engine is required")
	}
	if input == nil {
		return nil, fmt.Errorf("session: key reader is required")
	}
	if display == nil {
		return nil, fmt.Errorf("session: display is required")
	}
	if render == nil {
		return nil, fmt.Errorf("session: render func is required")
	}

	return &Session{
		engine:  eng,
		input:   input,
		display: display,
		render:  render,
		status:  StatusRunning,
	}, nil
}

// Status returns the session's current lifecycle state
func (s *Session) Status() Status {
	return s.status
}

// Run plays the game to completion and returns the outcome. The loop renders
// the starting board once, then repeats: read one command, steer, advance,
// render. Quitting stops before the advance, so the snake never moves on a
// quit. Context cancellation is honored between ticks and treated as a quit.
func (s *Session) Run(ctx context.Context) Outcome {
	s.renderFrame()

	for s.status == StatusRunning {
		select {
		case <-ctx.Done():
			s.status = StatusQuit
			s.note = fmt.Sprintf("interrupted: %v", ctx.Err())
			continue
		default:
		}

		cmd, err := s.input.ReadCommand()
		if err != nil {
			// A dead input stream ends the game cleanly
			s.status = StatusQuit
			s.note = fmt.Sprintf("input closed: %v", err)
			continue
		}

		s.Tick(cmd)
	}

	// The lost path already rendered its final frame inside Tick, with the
	// pre-collision snake and the crash message. The quit path still owes one.
	if s.status == StatusQuit {
		s.engine.GetState().Message = s.engine.GetConfig().Messages.Quit
		s.renderFrame()
	}

	return s.outcome()
}

// Tick plays exactly one loop iteration for an already-read command and
// returns the tick's event. Exported so tests and tools can script command
// sequences without a reader; Run uses it for every iteration.
func (s *Session) Tick(cmd engine.Command) engine.Event {
	if s.status != StatusRunning {
		return engine.Event{Type: engine.EventNone}
	}

	switch cmd.Type {
	case engine.CommandQuit:
		s.status = StatusQuit
		return engine.Event{Type: engine.EventNone}
	case engine.CommandMove:
		// Unknown directions are rejected by the engine; the held heading
		// then carries the tick, same as a none command
		s.engine.SetDirection(cmd.Direction)
	}

	event := s.engine.Advance()
	if event.Type == engine.EventCollided {
		s.status = StatusLost
	}

	s.renderFrame()
	return event
}

// renderFrame clears the display and draws the current state. Display
// failures flip the session to quit; there is nobody watching a broken
// terminal.
func (s *Session) renderFrame() {
	if err := s.display.Clear(); err != nil {
		s.degradeDisplay(err)
		return
	}
	if err := s.display.WriteFrame(s.render(s.engine.GetState())); err != nil {
		s.degradeDisplay(err)
	}
}

func (s *Session) degradeDisplay(err error) {
	if s.status == StatusRunning {
		s.status = StatusQuit
	}
	if s.note == "" {
		s.note = fmt.Sprintf("display failed: %v", err)
	}
}

// outcome snapshots the finished game for the caller's summary
func (s *Session) outcome() Outcome {
	st := s.engine.GetState()
	return Outcome{
		Status:  s.status,
		Score:   s.engine.GetScore(),
		Level:   s.engine.GetLevel(),
		Length:  s.engine.GetSnakeLength(),
		Ticks:   s.engine.GetTickCount(),
		Cause:   st.Cause,
		Message: st.Message,
		Note:    s.note,
	}
}
