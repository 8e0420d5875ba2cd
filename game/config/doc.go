// Package config provides configuration management for the snake game.
//
// The config package handles:
//   - Loading game configurations from JSON files
//   - Configuration validation and caching
//   - Default configuration management
//   - Configuration discovery and listing
//
// Configuration Format:
//
// Game configurations are stored as JSON files in the configs directory.
// Each configuration defines:
//   - Board dimensions (interior width and height)
//   - Item target kept on the board
//   - Start cell and heading of the snake
//   - Scoring parameters (reward per item, points per level)
//   - Tick cadence for the animated front-end
//   - Game messages for various events
//
// Available Configurations:
//
// The package ships with several presets:
//   - classic: the 20x10 board with three items in play
//   - dense: a crowded board for fast scoring
//   - pocket: the smallest legal board
//
// Usage:
//
//	manager, err := config.NewManager("configs")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Load specific configuration
//	gameConfig, err := manager.LoadConfig("dense")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Get default configuration
//	defaultConfig := manager.GetDefault()
//
//	// List available configurations
//	configs, err := manager.ListConfigs()
//
// Loaded configurations are cached; RefreshCache picks up files edited on
// disk. Missing pacing fields and messages are filled from the defaults
// before validation, so presets only need the structural fields.
package config
