package engine

import (
	"fmt"
	"math/rand"
	"time"
)

// Engine provides the main interface for game operations
type Engine interface {
	// Game state management
	GetState() *GameState
	SetState(state *GameState) error
	Reset() *GameState
	IsGameOver() bool
	GetScore() int
	GetLevel() int
	GetSnakeLength() int
	GetTickCount() int

	// Tick operations
	Advance() Event
	SetDirection(d Direction) bool
	CanAdvance(d Direction) bool
	GetPossibleMoves() []Direction
	BulkAdvance(dirs []Direction) []Event

	// Configuration
	GetConfig() *GameConfig
	SetConfig(config *GameConfig) error

	// History
	GetTickHistory() []TickRecord
	GetLastTick() *TickRecord
}

// GameEngine implements the Engine interface
type GameEngine struct {
	state  *GameState
	config *GameConfig
	rng    *rand.Rand
}

// NewEngine creates a new game engine with the provided configuration.
// Empty pacing fields and messages are filled from the defaults before
// validation, so presets only need the structural fields.
func NewEngine(config *GameConfig) (*GameEngine, error) {
	ApplyConfigDefaults(config)
	if err := ValidateGameConfig(config); err != nil {
		return nil, err
	}

	rng := newRNG(config.Seed)
	engine := &GameEngine{
		config: config,
		state:  InitGameStateFromConfig(config, rng),
		rng:    rng,
	}

	return engine, nil
}

// NewEngineWithDefaults creates a new game engine with the default configuration
func NewEngineWithDefaults() *GameEngine {
	config := DefaultConfig()
	rng := newRNG(config.Seed)
	return &GameEngine{
		config: config,
		state:  InitGameStateFromConfig(config, rng),
		rng:    rng,
	}
}

// newRNG builds the engine's random source. Seed 0 means "different every run".
func newRNG(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// GetState returns the current game state
func (e *GameEngine) GetState() *GameState {
	return e.state
}

// SetState replaces the game state (used by tests to script exact boards)
func (e *GameEngine) SetState(state *GameState) error {
	if state == nil {
		return fmt.Errorf("state cannot be nil")
	}
	e.state = state
	return nil
}

// Reset rebuilds the game from its configuration: fresh single-cell snake,
// fresh items, score zero. A configured seed reproduces the same initial
// item layout on every reset.
func (e *GameEngine) Reset() *GameState {
	e.rng = newRNG(e.config.Seed)
	e.state = InitGameStateFromConfig(e.config, e.rng)
	return e.state
}

// IsGameOver returns whether the game is over
func (e *GameEngine) IsGameOver() bool {
	return e.state.GameOver
}

// GetScore returns the current score
func (e *GameEngine) GetScore() int {
	return e.state.Score
}

// GetLevel returns the current level, derived from the score
func (e *GameEngine) GetLevel() int {
	return LevelForScore(e.state.Score, e.config.LevelStep)
}

// GetSnakeLength returns the number of snake segments
func (e *GameEngine) GetSnakeLength() int {
	return len(e.state.Snake)
}

// GetTickCount returns how many ticks have been played
func (e *GameEngine) GetTickCount() int {
	return e.state.TickCount
}

// Advance plays one tick in the current direction
func (e *GameEngine) Advance() Event {
	return e.state.AdvanceSnake(e.config, e.rng)
}

// SetDirection steers the snake for subsequent ticks. Reversal input is
// accepted: with three or more segments reversing collides on the next tick,
// with fewer the backtrack is legal because the tail vacates. Returns false
// for invalid directions or a finished game.
func (e *GameEngine) SetDirection(d Direction) bool {
	if e.state.GameOver || !d.IsValid() {
		return false
	}
	e.state.Direction = d
	return true
}

// CanAdvance checks whether a tick in the given direction would survive
func (e *GameEngine) CanAdvance(d Direction) bool {
	if e.state.GameOver || !d.IsValid() {
		return false
	}
	return e.state.CanMoveTo(e.state.Head().Translate(d))
}

// GetPossibleMoves returns all directions the snake could take this tick
// without colliding
func (e *GameEngine) GetPossibleMoves() []Direction {
	directions := []Direction{DirUp, DirDown, DirLeft, DirRight}
	var possible []Direction

	for _, dir := range directions {
		if e.CanAdvance(dir) {
			possible = append(possible, dir)
		}
	}

	return possible
}

// BulkAdvance steers and ticks once per given direction, stopping early at
// game over. At most MaxBulkTicks directions are applied.
func (e *GameEngine) BulkAdvance(dirs []Direction) []Event {
	if len(dirs) > MaxBulkTicks {
		dirs = dirs[:MaxBulkTicks]
	}

	events := make([]Event, 0, len(dirs))
	for _, dir := range dirs {
		if e.IsGameOver() {
			break
		}
		e.SetDirection(dir)
		events = append(events, e.Advance())
	}

	return events
}

// GetConfig returns the current game configuration
func (e *GameEngine) GetConfig() *GameConfig {
	return e.config
}

// SetConfig sets a new game configuration and resets the game
func (e *GameEngine) SetConfig(config *GameConfig) error {
	ApplyConfigDefaults(config)
	if err := ValidateGameConfig(config); err != nil {
		return err
	}

	e.config = config
	e.rng = newRNG(config.Seed)
	e.state = InitGameStateFromConfig(config, e.rng)
	return nil
}

// GetTickHistory returns the complete tick history
func (e *GameEngine) GetTickHistory() []TickRecord {
	return e.state.TickHistory
}

// GetLastTick returns the most recent tick record, or nil if none
func (e *GameEngine) GetLastTick() *TickRecord {
	if len(e.state.TickHistory) == 0 {
		return nil
	}
	return &e.state.TickHistory[len(e.state.TickHistory)-1]
}
