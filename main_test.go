package main

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/termgames/snake/game/engine"
)

func TestConstants(t *testing.T) {
	if Version == "" {
		t.Error("Version should not be empty")
	}
	if AppName == "" {
		t.Error("AppName should not be empty")
	}

	expectedVersion := "1.0.0"
	if Version != expectedVersion {
		t.Errorf("Expected version %s, got %s", expectedVersion, Version)
	}

	expectedAppName := "Snake"
	if AppName != expectedAppName {
		t.Errorf("Expected app name %s, got %s", expectedAppName, AppName)
	}
}

func TestFlagDefaults(t *testing.T) {
	if *configDir == "" {
		t.Error("Config directory should have a default value")
	}

	// Override flags default to zero so presets keep their own numbers
	if *boardWidth != 0 || *boardHght != 0 || *numItems != 0 {
		t.Errorf("Expected zero board overrides by default, got %d/%d/%d", *boardWidth, *boardHght, *numItems)
	}
	if *seed != 0 {
		t.Errorf("Expected zero seed by default, got %d", *seed)
	}
}

// writeTestPreset drops a minimal valid preset into dir; defaults fill the
// pacing fields and messages when it is loaded.
func writeTestPreset(t *testing.T, dir, name string, width, height int) {
	t.Helper()
	content := fmt.Sprintf(`{
		"name": %q,
		"description": "Preset written by a test",
		"width": %d,
		"height": %d,
		"num_items": 2,
		"start_x": 2,
		"start_y": 2
	}`, name, width, height)
	if err := os.WriteFile(filepath.Join(dir, name+".json"), []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write preset: %v", err)
	}
}

// setFlags points the CLI flags at test values and restores them on cleanup
func setFlags(t *testing.T, dir, name string) {
	t.Helper()
	origDir, origName := *configDir, *configName
	origWidth, origHeight, origItems, origSeed := *boardWidth, *boardHght, *numItems, *seed
	t.Cleanup(func() {
		*configDir, *configName = origDir, origName
		*boardWidth, *boardHght, *numItems, *seed = origWidth, origHeight, origItems, origSeed
	})
	*configDir = dir
	*configName = name
	*boardWidth, *boardHght, *numItems, *seed = 0, 0, 0, 0
}

func TestInitializeGame(t *testing.T) {
	dir := t.TempDir()
	writeTestPreset(t, dir, "arena", 12, 8)
	setFlags(t, dir, "arena")

	eng, gameConfig, err := initializeGame()
	if err != nil {
		t.Fatalf("Failed to initialize game: %v", err)
	}

	if eng == nil {
		t.Fatal("Expected an engine to be initialized")
	}
	if gameConfig.Name != "arena" {
		t.Errorf("Expected preset 'arena', got %q", gameConfig.Name)
	}
	if gameConfig.Width != 12 || gameConfig.Height != 8 {
		t.Errorf("Expected a 12x8 board, got %dx%d", gameConfig.Width, gameConfig.Height)
	}
	if gameConfig.TickMillis != engine.DefaultTickMillis {
		t.Errorf("Expected the default tick cadence to be filled in, got %d", gameConfig.TickMillis)
	}

	state := eng.GetState()
	if state.Board.Width != 12 || state.Board.Height != 8 {
		t.Errorf("Expected the engine to play the preset board, got %dx%d", state.Board.Width, state.Board.Height)
	}
}

func TestInitializeGame_DefaultPreset(t *testing.T) {
	dir := t.TempDir()
	writeTestPreset(t, dir, "classic", 10, 10)
	setFlags(t, dir, "")

	_, gameConfig, err := initializeGame()
	if err != nil {
		t.Fatalf("Failed to initialize game: %v", err)
	}

	if gameConfig.Name != "classic" {
		t.Errorf("Expected the manager's default preset, got %q", gameConfig.Name)
	}
}

func TestInitializeGame_MissingConfigDir(t *testing.T) {
	t.Run("falls back to built-in defaults without a preset name", func(t *testing.T) {
		setFlags(t, "/non/existent/path", "")

		_, gameConfig, err := initializeGame()
		if err != nil {
			t.Fatalf("Expected the built-in fallback, got error: %v", err)
		}
		if gameConfig.Width != engine.DefaultWidth || gameConfig.Height != engine.DefaultHeight {
			t.Errorf("Expected the built-in %dx%d board, got %dx%d",
				engine.DefaultWidth, engine.DefaultHeight, gameConfig.Width, gameConfig.Height)
		}
	})

	t.Run("fails when a preset was asked for by name", func(t *testing.T) {
		setFlags(t, "/non/existent/path", "dense")

		_, _, err := initializeGame()
		if err == nil {
			t.Error("Expected an error for a named preset without a config directory")
		}
	})
}

func TestInitializeGame_Overrides(t *testing.T) {
	dir := t.TempDir()
	writeTestPreset(t, dir, "arena", 12, 8)
	setFlags(t, dir, "arena")
	*boardWidth = 30
	*boardHght = 15
	*numItems = 9
	*seed = 42

	_, gameConfig, err := initializeGame()
	if err != nil {
		t.Fatalf("Failed to initialize game: %v", err)
	}

	if gameConfig.Width != 30 || gameConfig.Height != 15 {
		t.Errorf("Expected the overridden 30x15 board, got %dx%d", gameConfig.Width, gameConfig.Height)
	}
	if gameConfig.NumItems != 9 {
		t.Errorf("Expected 9 items, got %d", gameConfig.NumItems)
	}
	if gameConfig.Seed != 42 {
		t.Errorf("Expected seed 42, got %d", gameConfig.Seed)
	}
}

func TestInitializeGame_OverridesDoNotTouchThePreset(t *testing.T) {
	dir := t.TempDir()
	writeTestPreset(t, dir, "arena", 12, 8)
	setFlags(t, dir, "arena")
	*boardWidth = 30

	if _, _, err := initializeGame(); err != nil {
		t.Fatalf("Failed to initialize game: %v", err)
	}

	// A fresh load of the same file must still see the preset's own width
	reloaded, err := engine.LoadConfigByName(dir, "arena")
	if err != nil {
		t.Fatalf("Failed to reload preset: %v", err)
	}
	if reloaded.Width != 12 {
		t.Errorf("Expected the preset file to keep width 12, got %d", reloaded.Width)
	}
}

func TestInitializeGame_InvalidOverride(t *testing.T) {
	dir := t.TempDir()
	writeTestPreset(t, dir, "arena", 12, 8)
	setFlags(t, dir, "arena")
	*boardWidth = 3 // below the minimum board size

	_, _, err := initializeGame()
	if err == nil {
		t.Error("Expected a validation error for an undersized board")
	}
}
