// Package engine provides the core game logic for the terminal snake game.
//
// The engine package implements the game mechanics including:
//   - Board model and per-tick snake movement
//   - Wall and self collision detection
//   - Item spawning with a bounded, board-aware placement strategy
//   - Score and the score-derived level
//   - Tick history and game state management
//   - Configuration loading and validation
//
// Core Types:
//
// The Engine interface defines the main contract for game operations,
// implemented by GameEngine. GameState represents the current game state,
// while GameConfig defines the game rules loaded from JSON files. All
// coordinates are board-interior positions; the wall is the implicit ring
// around the interior and exists only for rendering and collision.
//
// Usage:
//
//	config, err := engine.LoadConfigByName("configs", "classic")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	game, err := engine.NewEngine(config)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Steer and play one tick
//	game.SetDirection(engine.DirUp)
//	event := game.Advance()
//	state := game.GetState()
//
// Game Rules:
//
// The snake starts as a single cell and advances one cell per tick in its
// current direction. Entering a cell holding an item grows the snake by one
// segment, raises the score, and respawns items up to the configured target.
// Hitting the wall or the snake's own body ends the game. Entering the cell
// the tail is vacating on the same tick is legal. The level is derived from
// the score and never changes the rules.
package engine
