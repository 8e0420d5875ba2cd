// Command snake plays the classic snake game in the terminal.
//
// It supports two modes:
//  1. "play" (default) – turn-based play over stdin/stdout; the game advances
//     one tick per key press
//  2. "tui" – animated full-screen play on a fixed tick cadence
//
// Flags control the config directory, preset selection, board overrides,
// debug logging, and version output. Presets live as JSON files in the config
// directory and can be inspected with the analyze tool.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/termgames/snake/game/config"
	"github.com/termgames/snake/game/engine"
	"github.com/termgames/snake/game/session"
	"github.com/termgames/snake/tui"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "Snake"
)

// Configuration flags control which preset is played and how the game starts.
var (
	configDir  = flag.String("config-dir", getConfigDirDefault(), "Directory containing game config presets")
	configName = flag.String("config", getConfigNameDefault(), "Preset to play (empty = the manager's default)")
	boardWidth = flag.Int("width", 0, "Board width override (0 = preset value)")
	boardHght  = flag.Int("height", 0, "Board height override (0 = preset value)")
	numItems   = flag.Int("items", 0, "Item target override (0 = preset value)")
	seed       = flag.Int64("seed", 0, "Item spawner seed (0 = seed from the clock)")
	debug      = flag.Bool("debug", false, "Enable debug logging")
	version    = flag.Bool("version", false, "Show version information")
)

// getConfigDirDefault returns the default configuration directory.
// It first honors the SNAKE_CONFIG_DIR environment variable, then falls back
// to "configs".
func getConfigDirDefault() string {
	if dir := os.Getenv("SNAKE_CONFIG_DIR"); dir != "" {
		return dir
	}
	return "configs"
}

// getConfigNameDefault returns the preset named by SNAKE_CONFIG, if any
func getConfigNameDefault() string {
	return os.Getenv("SNAKE_CONFIG")
}

func init() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [OPTIONS] [MODE]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "%s v%s\n\n", AppName, Version)
		fmt.Fprintf(os.Stderr, "Available modes:\n")
		fmt.Fprintf(os.Stderr, "  play             Turn-based play, one tick per key press (default)\n")
		fmt.Fprintf(os.Stderr, "  tui              Animated full-screen play\n")
		fmt.Fprintf(os.Stderr, "  screen           Alias for tui\n")
		fmt.Fprintf(os.Stderr, "\nControls: w/a/s/d to steer, q to quit. The tui mode also takes\n")
		fmt.Fprintf(os.Stderr, "arrow keys and r to restart after a lost game.\n")
		fmt.Fprintf(os.Stderr, "\nOptions:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s                        # Play the default preset\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -config dense          # Play the dense preset\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -width 30 -height 15   # Override the board size\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -seed 42 tui           # Reproducible item spawns, animated\n", os.Args[0])
	}
}

// main parses flags, builds the engine, and starts the selected mode.
func main() {
	// Load .env file if it exists (ignore error if not found)
	if err := godotenv.Load(); err != nil {
		// Only log if it's not a "file not found" error
		if !os.IsNotExist(err) {
			log.Printf("Warning: Error loading .env file: %v", err)
		}
	}

	flag.Parse()

	// Show version if requested
	if *version {
		fmt.Printf("%s v%s\n", AppName, Version)
		os.Exit(0)
	}

	// Setup logging
	if *debug {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	} else {
		log.SetFlags(log.LstdFlags)
	}

	// Determine mode from command
	args := flag.Args()
	mode := "play" // default
	if len(args) > 0 {
		mode = args[0]
	}

	eng, gameConfig, err := initializeGame()
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}

	if *debug {
		log.Printf("Starting %s v%s (mode: %s, config: %s, board: %dx%d)",
			AppName, Version, mode, gameConfig.Name, gameConfig.Width, gameConfig.Height)
	}

	// Quit cleanly on SIGINT/SIGTERM between ticks. In raw mode Ctrl-C
	// arrives as a key byte instead and quits through the key map.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch mode {
	case "play":
		outcome, err := runPlay(ctx, eng, gameConfig)
		if err != nil {
			log.Fatalf("Failed to start game: %v", err)
		}
		printOutcome(outcome)

	case "tui", "screen":
		if err := tui.RunScreen(eng, gameConfig); err != nil {
			log.Printf("Full-screen mode unavailable (%v), falling back to turn-based play", err)
			outcome, err := runPlay(ctx, eng, gameConfig)
			if err != nil {
				log.Fatalf("Failed to start game: %v", err)
			}
			printOutcome(outcome)
		}

	default:
		log.Fatalf("Unknown mode: %s. Use 'play' (default) or 'tui'", mode)
	}
}

// initializeGame resolves the preset and overrides into a validated engine
func initializeGame() (engine.Engine, *engine.GameConfig, error) {
	gameConfig, err := resolveConfig()
	if err != nil {
		return nil, nil, err
	}

	applyOverrides(gameConfig)

	eng, err := engine.NewEngine(gameConfig)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create engine: %w", err)
	}

	return eng, gameConfig, nil
}

// resolveConfig loads the selected preset. A missing config directory only
// fails the run when a preset was asked for by name; otherwise the built-in
// defaults keep the game playable. The returned config is a private copy, so
// flag overrides never leak into the manager's cache.
func resolveConfig() (*engine.GameConfig, error) {
	manager, err := config.NewManager(*configDir)
	if err != nil {
		if *configName != "" {
			return nil, fmt.Errorf("failed to open config directory: %w", err)
		}
		log.Printf("Config directory unavailable (%v), using built-in defaults", err)
		return engine.DefaultConfig(), nil
	}

	var gameConfig *engine.GameConfig
	if *configName != "" {
		gameConfig, err = manager.LoadConfig(*configName)
		if err != nil {
			return nil, fmt.Errorf("failed to load config %q: %w", *configName, err)
		}
	} else {
		gameConfig = manager.GetDefault()
	}

	cfgCopy := *gameConfig
	return &cfgCopy, nil
}

// applyOverrides folds the board override flags into the config. Zero values
// keep the preset's numbers; the engine validates the result.
func applyOverrides(gameConfig *engine.GameConfig) {
	if *boardWidth > 0 {
		gameConfig.Width = *boardWidth
	}
	if *boardHght > 0 {
		gameConfig.Height = *boardHght
	}
	if *numItems > 0 {
		gameConfig.NumItems = *numItems
	}
	if *seed != 0 {
		gameConfig.Seed = *seed
	}
}

// runPlay wires the turn-based front-end over stdin/stdout and plays one
// game. The key reader owns the terminal state; it is restored before the
// outcome is returned.
func runPlay(ctx context.Context, eng engine.Engine, gameConfig *engine.GameConfig) (session.Outcome, error) {
	reader, variant := tui.OpenKeyReader(os.Stdin)
	defer reader.Close()

	rawMode := strings.HasPrefix(variant, "raw")
	if !rawMode {
		log.Printf("Input: %s. Type a key and press enter to steer.", variant)
	}

	display := tui.NewANSIDisplay(os.Stdout, rawMode)
	render := tui.NewRenderer(gameConfig)

	sess, err := session.New(eng, reader, display, render.Frame)
	if err != nil {
		return session.Outcome{}, fmt.Errorf("failed to create session: %w", err)
	}

	return sess.Run(ctx), nil
}

// printOutcome writes the end-of-game summary. It runs after the key reader
// restored the terminal, so plain newlines are safe again.
func printOutcome(outcome session.Outcome) {
	fmt.Println()
	if outcome.Message != "" {
		fmt.Println(outcome.Message)
	}
	fmt.Printf("Final score: %d (level %d, length %d, %d ticks)\n",
		outcome.Score, outcome.Level, outcome.Length, outcome.Ticks)
	if outcome.Cause != "" {
		fmt.Printf("Cause: %s collision\n", outcome.Cause)
	}
	if outcome.Note != "" {
		log.Printf("Session note: %s", outcome.Note)
	}
}
