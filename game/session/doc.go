// Package session drives one interactive snake game over a terminal.
//
// The session package implements:
//   - The read-steer-advance-render game loop
//   - The running/lost/quit state machine
//   - Clean termination on quit keys, collisions, closed input and
//     context cancellation
//   - Outcome summaries for the caller's end-of-game report
//
// Core Types:
//
// Session owns one game from the first frame to the last. It is handed an
// engine plus three collaborators declared in this package: a KeyReader that
// blocks for one decoded command per call, a Display that clears and writes
// text frames, and a RenderFunc that turns a game state into a frame. The
// tui package provides the production implementations; tests supply scripted
// fakes.
//
// Loop Semantics:
//
// Run renders the starting board once, then repeats read, steer, advance,
// render until the game leaves the running state. A quit command stops the
// loop before the advance, so the snake never moves on a quit. A collision
// flips the session to lost after its final frame is drawn. Both endings are
// normal terminations.
//
// Pacing:
//
// The loop has no timer. Each tick is paced by the blocking command read, so
// the player sets the speed. The animated front-end paces the same engine
// with a ticker instead and does not use this package's loop.
//
// Usage:
//
//	eng, err := engine.NewEngine(config)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	sess, err := session.New(eng, reader, display, tui.Frame)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	outcome := sess.Run(ctx)
//	fmt.Printf("final score %d at level %d\n", outcome.Score, outcome.Level)
package session
