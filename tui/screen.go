package tui

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/termgames/snake/game/engine"
)

// Styles for the full-screen mode. The palette follows the original's
// graphical front-end: green snake, yellow items.
var (
	styleDefault = tcell.StyleDefault
	styleSnake   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleItem    = tcell.StyleDefault.Foreground(tcell.ColorYellow)
)

// restartHint is shown under the frame once the game is over
const restartHint = "Press r to restart or q to leave."

// RunScreen drives the engine on a fixed cadence inside a tcell full-screen
// session. Key presses steer between ticks; after a lost game the board stays
// up until the player restarts or leaves. The terminal is restored before
// RunScreen returns.
func RunScreen(eng engine.Engine, config *engine.GameConfig) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	cadence := time.Duration(config.TickMillis) * time.Millisecond
	if cadence <= 0 {
		cadence = engine.DefaultTickMillis * time.Millisecond
	}
	ticker := time.NewTicker(cadence)
	defer ticker.Stop()

	render := NewRenderer(config)
	drawFrame(screen, screenFrame(eng, render))

	running := true
	for running {
		select {
		case ev := <-events:
			switch e := ev.(type) {
			case *tcell.EventKey:
				running = handleScreenKey(eng, e)
			case *tcell.EventResize:
				screen.Sync()
			}
		case <-ticker.C:
			if !eng.IsGameOver() {
				eng.Advance()
			}
		}
		drawFrame(screen, screenFrame(eng, render))
	}

	return nil
}

// handleScreenKey applies one key event to the engine. It returns false once
// the player asked to leave. Arrow keys mirror wasd; r restarts a finished
// game.
func handleScreenKey(eng engine.Engine, e *tcell.EventKey) bool {
	switch e.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		eng.SetDirection(engine.DirUp)
	case tcell.KeyDown:
		eng.SetDirection(engine.DirDown)
	case tcell.KeyLeft:
		eng.SetDirection(engine.DirLeft)
	case tcell.KeyRight:
		eng.SetDirection(engine.DirRight)
	case tcell.KeyRune:
		switch e.Rune() {
		case 'q':
			return false
		case 'w':
			eng.SetDirection(engine.DirUp)
		case 's':
			eng.SetDirection(engine.DirDown)
		case 'a':
			eng.SetDirection(engine.DirLeft)
		case 'd':
			eng.SetDirection(engine.DirRight)
		case 'r':
			if eng.IsGameOver() {
				eng.Reset()
			}
		}
	}
	return true
}

// screenFrame renders the current state, appending the restart hint once the
// game is over.
func screenFrame(eng engine.Engine, render *Renderer) string {
	frame := render.Frame(eng.GetState())
	if eng.IsGameOver() {
		frame += restartHint + "\n"
	}
	return frame
}

// drawFrame paints a rendered frame onto the screen, one cell per rune
func drawFrame(screen tcell.Screen, frame string) {
	screen.Clear()
	x, y := 0, 0
	for _, r := range frame {
		if r == '\n' {
			x, y = 0, y+1
			continue
		}
		style := styleDefault
		switch r {
		case SnakeGlyph:
			style = styleSnake
		case ItemGlyph:
			style = styleItem
		}
		screen.SetContent(x, y, r, nil, style)
		x++
	}
	screen.Show()
}
