package engine

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ValidateGameConfig validates a game configuration for correctness and playability
func ValidateGameConfig(config *GameConfig) error {
	// Validate required fields
	if config.Name == "" {
		return fmt.Errorf("config validation: name is required")
	}
	if config.Description == "" {
		return fmt.Errorf("config validation: description is required")
	}

	// Validate board dimensions
	if config.Width < MinBoardSize || config.Width > MaxBoardSize {
		return fmt.Errorf("config validation: width must be between %d and %d, got %d", MinBoardSize, MaxBoardSize, config.Width)
	}
	if config.Height < MinBoardSize || config.Height > MaxBoardSize {
		return fmt.Errorf("config validation: height must be between %d and %d, got %d", MinBoardSize, MaxBoardSize, config.Height)
	}

	// Validate item count. One interior cell always belongs to the snake, so
	// the target can never cover the whole board.
	maxItems := config.Width*config.Height - 1
	if config.NumItems < MinItems || config.NumItems > maxItems {
		return fmt.Errorf("config validation: num_items must be between %d and %d for a %dx%d board, got %d",
			MinItems, maxItems, config.Width, config.Height, config.NumItems)
	}

	// Validate start cell and direction
	board := Board{Width: config.Width, Height: config.Height}
	if !board.InBounds(Position{X: config.StartX, Y: config.StartY}) {
		return fmt.Errorf("config validation: start position (%d,%d) is outside the %dx%d interior",
			config.StartX, config.StartY, config.Width, config.Height)
	}
	if !config.StartDirection.IsValid() {
		return fmt.Errorf("config validation: start_direction must be one of up, down, left, right, got '%s'", config.StartDirection)
	}

	// Validate scoring
	if config.Reward < 1 {
		return fmt.Errorf("config validation: reward must be at least 1, got %d", config.Reward)
	}
	if config.LevelStep < 1 {
		return fmt.Errorf("config validation: level_step must be at least 1, got %d", config.LevelStep)
	}

	// Validate pacing
	if config.TickMillis < MinTickMillis || config.TickMillis > MaxTickMillis {
		return fmt.Errorf("config validation: tick_ms must be between %d and %d, got %d", MinTickMillis, MaxTickMillis, config.TickMillis)
	}

	// Validate messages
	if config.Messages.Welcome == "" {
		return fmt.Errorf("config validation: messages.welcome is required")
	}
	if config.Messages.WallCrash == "" {
		return fmt.Errorf("config validation: messages.wall_crash is required")
	}
	if config.Messages.SelfCrash == "" {
		return fmt.Errorf("config validation: messages.self_crash is required")
	}
	if config.Messages.GameOver == "" {
		return fmt.Errorf("config validation: messages.game_over is required")
	}

	return nil
}

// ApplyConfigDefaults fills pacing fields and messages a preset left empty.
// Structural fields (board size, item count, start cell) are never defaulted
// here; validation rejects them when out of range.
func ApplyConfigDefaults(config *GameConfig) {
	if config.StartDirection == "" {
		config.StartDirection = DefaultStartDirection
	}
	if config.Reward == 0 {
		config.Reward = DefaultReward
	}
	if config.LevelStep == 0 {
		config.LevelStep = DefaultLevelStep
	}
	if config.TickMillis == 0 {
		config.TickMillis = DefaultTickMillis
	}
	if config.Messages.Welcome == "" {
		config.Messages.Welcome = "Welcome to Snake! Steer with w/a/s/d, quit with q."
	}
	if config.Messages.Ate == "" {
		config.Messages.Ate = "Yum!"
	}
	if config.Messages.WallCrash == "" {
		config.Messages.WallCrash = "You hit the wall!"
	}
	if config.Messages.SelfCrash == "" {
		config.Messages.SelfCrash = "You bit yourself!"
	}
	if config.Messages.Quit == "" {
		config.Messages.Quit = "Thanks for playing!"
	}
	if config.Messages.GameOver == "" {
		config.Messages.GameOver = "You died!"
	}
}

// DefaultConfig returns the built-in playable configuration: the documented
// 20x10 board with three items, start cell (3,1) heading right.
func DefaultConfig() *GameConfig {
	config := &GameConfig{
		Name:           "classic",
		Description:    "Classic snake: 20x10 board with three items in play",
		Width:          DefaultWidth,
		Height:         DefaultHeight,
		NumItems:       DefaultNumItems,
		StartX:         DefaultStartX,
		StartY:         DefaultStartY,
		StartDirection: DefaultStartDirection,
		Reward:         DefaultReward,
		LevelStep:      DefaultLevelStep,
		TickMillis:     DefaultTickMillis,
	}
	ApplyConfigDefaults(config)
	return config
}

// LoadGameConfig loads a game configuration from a JSON file
func LoadGameConfig(filename string) (*GameConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var config GameConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	ApplyConfigDefaults(&config)

	// Validate the loaded configuration
	if err := ValidateGameConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// LoadConfigByName loads a game configuration by name from the given directory
func LoadConfigByName(configDir, configName string) (*GameConfig, error) {
	// Add .json extension if not present
	if !strings.HasSuffix(configName, ".json") {
		configName = configName + ".json"
	}

	configPath := filepath.Join(configDir, configName)

	// Check if config file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file '%s' not found", configName)
	}

	// Load and parse the config
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %v", configName, err)
	}

	var config GameConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file '%s': %v", configName, err)
	}

	ApplyConfigDefaults(&config)

	// Validate the config
	if err := ValidateGameConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid config '%s': %v", configName, err)
	}

	return &config, nil
}

// InitGameStateFromConfig creates a new game state using the provided
// configuration. A nil config falls back to DefaultConfig. The rng drives the
// initial item spawn; a nil rng is seeded from the clock.
func InitGameStateFromConfig(config *GameConfig, rng *rand.Rand) *GameState {
	if config == nil {
		config = DefaultConfig()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	state := &GameState{
		Board:       Board{Width: config.Width, Height: config.Height},
		Snake:       []Position{{X: config.StartX, Y: config.StartY}},
		Items:       []Position{},
		Direction:   config.StartDirection,
		Score:       0,
		Message:     config.Messages.Welcome,
		GameOver:    false,
		ConfigName:  config.Name,
		TickHistory: []TickRecord{},
		TickCount:   0,
	}

	state.ReplenishItems(config, rng)

	return state
}

// abs returns the absolute value of x
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
