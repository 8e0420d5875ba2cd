// Package tui renders the snake game in a terminal and decodes key presses
// into player commands.
//
// The tui package handles:
//   - Rendering game states as printable frames (Renderer)
//   - Repainting a terminal between frames (ANSIDisplay)
//   - Reading key presses in raw or cooked mode (RawKeyReader, LineKeyReader)
//   - An animated full-screen mode on a fixed tick cadence (RunScreen)
//
// Frame Layout:
//
// A frame is the bordered board, a status line, and the current game message
// when one is set. The board is Height+2 lines of Width+2 runes: '+' corners,
// '-' and '|' edges, '@' for every snake cell, '*' for items. The same state
// always renders to the same string, which keeps the renderer trivial to test.
//
// Input:
//
// OpenKeyReader probes stdin once at startup. On an interactive terminal it
// switches to raw mode and reads single key presses; anywhere else it falls
// back to reading lines, so the game stays playable over pipes and dumb
// terminals. The key map is w/a/s/d to steer, q (or Ctrl-C in raw mode) to
// quit; every other key is a no-op command that lets the snake keep its
// heading.
//
// The turn-based front-end wires these pieces into a session:
//
//	reader, variant := tui.OpenKeyReader(os.Stdin)
//	defer reader.Close()
//	display := tui.NewANSIDisplay(os.Stdout, variant == "raw single-key")
//	render := tui.NewRenderer(cfg)
//	sess, err := session.New(eng, reader, display, render.Frame)
//
// RunScreen is the self-contained alternative: it owns the terminal via
// tcell, paces the engine with a ticker instead of blocking reads, and adds
// arrow-key steering and an r-to-restart key after a lost game.
package tui
