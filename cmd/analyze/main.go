// Command analyze prints quick, human-readable heuristics about the snake
// presets in a config directory. It summarizes board dimensions, item
// pressure, the start cell's breathing room, and pacing, and flags presets
// that would play badly. With -write-defaults it first writes the shipped
// presets into the directory, which bootstraps a fresh install.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/termgames/snake/game/config"
	"github.com/termgames/snake/game/engine"
)

var (
	configDir     = flag.String("config-dir", "configs", "Directory containing game config presets")
	writeDefaults = flag.Bool("write-defaults", false, "Write the shipped presets before analyzing")
)

func main() {
	flag.Parse()

	if *writeDefaults {
		if err := bootstrapDefaults(*configDir); err != nil {
			fmt.Printf("Error writing default presets: %v\n", err)
			os.Exit(1)
		}
	}

	failures, err := analyzeDir(*configDir)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	if failures > 0 {
		fmt.Printf("\n%d preset(s) failed validation\n", failures)
		os.Exit(1)
	}
}

// analyzeDir loads every .json preset in dir and prints a report for each.
// It returns how many presets failed to load or validate.
func analyzeDir(dir string) (int, error) {
	manager, err := config.NewManager(dir)
	if err != nil {
		return 0, fmt.Errorf("failed to open config directory: %w", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("failed to read config directory: %w", err)
	}

	failures := 0
	seen := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		seen++
		fmt.Printf("\n=== Analyzing %s ===\n", entry.Name())

		gameConfig, err := manager.LoadConfig(strings.TrimSuffix(entry.Name(), ".json"))
		if err != nil {
			fmt.Printf("⚠️  INVALID: %v\n", err)
			failures++
			continue
		}
		analyzeConfig(gameConfig)
	}

	if seen == 0 {
		fmt.Printf("No presets found in %s\n", dir)
	}
	return failures, nil
}

// analyzeConfig prints the report for one loaded preset
func analyzeConfig(gameConfig *engine.GameConfig) {
	board := engine.Board{Width: gameConfig.Width, Height: gameConfig.Height}
	density := engine.ItemDensity(gameConfig)

	fmt.Printf("Name: %s\n", gameConfig.Name)
	fmt.Printf("Board: %d x %d (%d interior cells)\n", gameConfig.Width, gameConfig.Height, board.CellCount())
	fmt.Printf("Items: %d in play (%.1f%% of the interior)\n", gameConfig.NumItems, density*100)
	fmt.Printf("Start: (%d, %d) heading %s\n", gameConfig.StartX, gameConfig.StartY, gameConfig.StartDirection)
	fmt.Printf("Scoring: %d per item, level up every %d points\n", gameConfig.Reward, gameConfig.LevelStep)
	fmt.Printf("Cadence: one tick every %dms in animated mode\n", gameConfig.TickMillis)

	// A probe engine answers the positional questions: how much room the
	// first tick has and how far the nearest spawn landed.
	probe, err := engine.NewEngine(gameConfig)
	if err != nil {
		fmt.Printf("⚠️  Probe engine failed: %v\n", err)
		return
	}
	moves := probe.GetPossibleMoves()
	fmt.Printf("Safe directions from start: %d (%s)\n", len(moves), joinDirections(moves))
	if pos, dist, found := engine.FindNearestItem(probe.GetState()); found {
		fmt.Printf("Nearest item this spawn: (%d, %d), %d moves away\n", pos.X, pos.Y, dist)
	}

	warnings := configWarnings(gameConfig, len(moves))
	if len(warnings) == 0 {
		fmt.Printf("✅ No warnings\n")
		return
	}
	for _, warning := range warnings {
		fmt.Printf("⚠️  WARNING: %s\n", warning)
	}
}

// configWarnings collects the heuristics that make a preset unpleasant to
// play. safeMoves is the number of surviving directions on the first tick.
func configWarnings(gameConfig *engine.GameConfig, safeMoves int) []string {
	var warnings []string

	if density := engine.ItemDensity(gameConfig); density >= 0.25 {
		warnings = append(warnings, fmt.Sprintf("crowded board: items cover %.0f%% of the interior", density*100))
	}
	if onEdge(gameConfig) {
		warnings = append(warnings, fmt.Sprintf("start cell (%d,%d) touches the wall", gameConfig.StartX, gameConfig.StartY))
	}
	if gameConfig.TickMillis < 50 {
		warnings = append(warnings, fmt.Sprintf("a %dms cadence is hard to steer", gameConfig.TickMillis))
	}
	if safeMoves < 2 {
		warnings = append(warnings, fmt.Sprintf("only %d safe direction(s) on the first tick", safeMoves))
	}

	return warnings
}

// onEdge reports whether the start cell touches the wall ring
func onEdge(gameConfig *engine.GameConfig) bool {
	return gameConfig.StartX == 0 || gameConfig.StartY == 0 ||
		gameConfig.StartX == gameConfig.Width-1 || gameConfig.StartY == gameConfig.Height-1
}

func joinDirections(dirs []engine.Direction) string {
	names := make([]string, len(dirs))
	for i, d := range dirs {
		names[i] = string(d)
	}
	return strings.Join(names, ", ")
}

// bootstrapDefaults writes the shipped presets into dir so a fresh install
// has something to play
func bootstrapDefaults(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	manager, err := config.NewManager(dir)
	if err != nil {
		return err
	}

	for _, preset := range shippedPresets() {
		if err := manager.SaveConfig(preset.Name, preset); err != nil {
			return fmt.Errorf("failed to write preset %q: %w", preset.Name, err)
		}
		fmt.Printf("Wrote %s\n", filepath.Join(dir, preset.Name+".json"))
	}
	return nil
}

// shippedPresets returns the presets the repository ships under configs/
func shippedPresets() []*engine.GameConfig {
	dense := &engine.GameConfig{
		Name:        "dense",
		Description: "Crowded 20x10 board with twenty items in play for fast scoring",
		Width:       20,
		Height:      10,
		NumItems:    20,
		StartX:      3,
		StartY:      1,
		TickMillis:  100,
	}
	pocket := &engine.GameConfig{
		Name:        "pocket",
		Description: "Pocket-sized 5x5 board for quick games",
		Width:       5,
		Height:      5,
		NumItems:    2,
		StartX:      2,
		StartY:      2,
		LevelStep:   3,
		TickMillis:  150,
	}
	engine.ApplyConfigDefaults(dense)
	engine.ApplyConfigDefaults(pocket)

	return []*engine.GameConfig{engine.DefaultConfig(), dense, pocket}
}
