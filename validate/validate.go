// Command validate provides a small CLI that validates the snake preset JSON
// files in a config directory. It checks:
//   - JSON structure and required fields
//   - Board dimensions and item count against the engine's limits
//   - Start cell placement, including a heading that survives the first tick
//   - Scoring and pacing ranges
//
// Unlike the engine's validator, which stops at the first problem, this tool
// accumulates every problem in a file so a broken preset can be fixed in one
// pass. It exits non-zero if any preset is invalid, which makes it usable as
// a commit gate.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/termgames/snake/game/engine"
)

var configDir = flag.String("config-dir", "configs", "Directory containing game config presets")

// ValidationResult captures the outcome of validating a single file.
// If Valid is true, Errors contains informational messages; otherwise it
// accumulates the validation errors that were found.
type ValidationResult struct {
	File   string
	Valid  bool
	Errors []string
}

// validatePreset loads and validates a single preset JSON file. Defaults are
// filled the same way the loader fills them, so a preset that plays also
// passes the gate.
func validatePreset(filePath string) ValidationResult {
	result := ValidationResult{
		File:   filepath.Base(filePath),
		Valid:  true,
		Errors: []string{},
	}
	fail := func(format string, args ...any) {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf(format, args...))
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		fail("Failed to read file: %v", err)
		return result
	}

	var config engine.GameConfig
	if err := json.Unmarshal(data, &config); err != nil {
		fail("Invalid JSON: %v", err)
		return result
	}
	engine.ApplyConfigDefaults(&config)

	// Required fields
	if config.Name == "" {
		fail("Missing required field: name")
	}
	if config.Description == "" {
		fail("Missing required field: description")
	}

	// Board dimensions
	if config.Width < engine.MinBoardSize || config.Width > engine.MaxBoardSize {
		fail("width must be between %d and %d, got %d", engine.MinBoardSize, engine.MaxBoardSize, config.Width)
	}
	if config.Height < engine.MinBoardSize || config.Height > engine.MaxBoardSize {
		fail("height must be between %d and %d, got %d", engine.MinBoardSize, engine.MaxBoardSize, config.Height)
	}

	// Item pressure. One interior cell always belongs to the snake.
	maxItems := config.Width*config.Height - 1
	if config.NumItems < engine.MinItems {
		fail("num_items must be at least %d, got %d", engine.MinItems, config.NumItems)
	} else if maxItems > 0 && config.NumItems > maxItems {
		fail("num_items %d cannot fit a %dx%d board (max %d)", config.NumItems, config.Width, config.Height, maxItems)
	}

	// Start cell and heading
	board := engine.Board{Width: config.Width, Height: config.Height}
	start := engine.Position{X: config.StartX, Y: config.StartY}
	if !board.InBounds(start) {
		fail("start position (%d,%d) is outside the %dx%d interior", config.StartX, config.StartY, config.Width, config.Height)
	}
	if !config.StartDirection.IsValid() {
		fail("start_direction must be one of up, down, left, right, got '%s'", config.StartDirection)
	} else if board.InBounds(start) && !board.InBounds(start.Translate(config.StartDirection)) {
		fail("first tick crashes into the wall: start (%d,%d) heading %s", config.StartX, config.StartY, config.StartDirection)
	}

	// Scoring
	if config.Reward < 1 {
		fail("reward must be at least 1, got %d", config.Reward)
	}
	if config.LevelStep < 1 {
		fail("level_step must be at least 1, got %d", config.LevelStep)
	}

	// Pacing
	if config.TickMillis < engine.MinTickMillis || config.TickMillis > engine.MaxTickMillis {
		fail("tick_ms must be between %d and %d, got %d", engine.MinTickMillis, engine.MaxTickMillis, config.TickMillis)
	}

	// Add informational data. Messages need no check here: defaults fill
	// any the file leaves empty.
	if result.Valid {
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Name: %s", config.Name))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Board: %dx%d (%d interior cells)", config.Width, config.Height, board.CellCount()))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Items: %d in play", config.NumItems))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Start: (%d,%d) heading %s", config.StartX, config.StartY, config.StartDirection))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Scoring: %d per item, level up every %d points", config.Reward, config.LevelStep))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Cadence: %dms", config.TickMillis))
	}

	return result
}

// main scans the config directory for *.json files and validates each one,
// printing a concise report and exiting with non-zero status if any are
// invalid.
func main() {
	flag.Parse()

	files, err := filepath.Glob(filepath.Join(*configDir, "*.json"))
	if err != nil {
		fmt.Printf("Error finding config files: %v\n", err)
		os.Exit(1)
	}

	allValid := true
	for _, file := range files {
		result := validatePreset(file)

		fmt.Printf("\n%s %s\n", strings.Repeat("=", 20), result.File)

		if result.Valid {
			fmt.Println("✅ VALID")
			for _, info := range result.Errors {
				fmt.Println("  " + info)
			}
		} else {
			fmt.Println("❌ INVALID")
			allValid = false
			for _, err := range result.Errors {
				fmt.Println("  ❌ " + err)
			}
		}
	}

	fmt.Printf("\n%s\n", strings.Repeat("=", 40))
	if allValid {
		fmt.Println("✅ All configurations are valid!")
	} else {
		fmt.Println("❌ Some configurations have errors")
		os.Exit(1)
	}
}
