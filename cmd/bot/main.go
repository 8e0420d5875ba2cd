// Command bot plays complete snake games against the engine in-process and
// reports how they went. It is a demo and soak tool: a greedy strategy chases
// the nearest item over safe moves only, so games end when the snake boxes
// itself in or the tick cap fires, and the summary shows what scores the
// presets give up under mechanical play.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/termgames/snake/game/config"
	"github.com/termgames/snake/game/engine"
)

var (
	configDir  = flag.String("config-dir", getConfigDirDefault(), "Directory containing game config presets")
	configName = flag.String("config", os.Getenv("SNAKE_CONFIG"), "Preset to play (empty = the manager's default)")
	seed       = flag.Int64("seed", 0, "Item spawner seed (0 = seed from the clock)")
	games      = flag.Int("games", 10, "Number of games to play")
	maxTicks   = flag.Int("max-ticks", 2000, "Tick cap per game")
	delayMs    = flag.Int("delay", 0, "Delay between ticks in milliseconds, for watching along")
	verbose    = flag.Bool("v", false, "Log every item eaten")
)

func getConfigDirDefault() string {
	if dir := os.Getenv("SNAKE_CONFIG_DIR"); dir != "" {
		return dir
	}
	return "configs"
}

// gameResult captures how one bot game ended
type gameResult struct {
	Score  int
	Level  int
	Length int
	Ticks  int
	Ending string
}

// Endings a bot game can reach. The strategy only takes safe moves, so crash
// endings indicate an engine or strategy bug and are worth noticing in logs.
const (
	endedBoxedIn = "boxed in"
	endedTickCap = "tick cap"
)

func main() {
	flag.Parse()

	eng, gameConfig, err := buildEngine()
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}

	log.Printf("Playing %d game(s) of %q (%dx%d board, %d items in play)",
		*games, gameConfig.Name, gameConfig.Width, gameConfig.Height, gameConfig.NumItems)

	strategy := NewGreedyStrategy()
	results := make([]gameResult, 0, *games)

	for attempt := 1; attempt <= *games; attempt++ {
		if attempt > 1 {
			eng.Reset()
		}
		strategy.Reset()

		result := playGame(eng, strategy, *maxTicks)
		results = append(results, result)

		log.Printf("Game %d/%d: score=%d level=%d length=%d ticks=%d (%s)",
			attempt, *games, result.Score, result.Level, result.Length, result.Ticks, result.Ending)
	}

	best, mean := summarize(results)
	log.Printf("Done: best score %d, mean score %.1f over %d game(s)", best, mean, len(results))
}

// buildEngine resolves the preset exactly like the main game does, then folds
// in the seed flag so soak runs are reproducible.
func buildEngine() (engine.Engine, *engine.GameConfig, error) {
	gameConfig, err := resolveConfig()
	if err != nil {
		return nil, nil, err
	}

	if *seed != 0 {
		gameConfig.Seed = *seed
	}

	eng, err := engine.NewEngine(gameConfig)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create engine: %w", err)
	}
	return eng, gameConfig, nil
}

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

// playGame runs one game to its end: a terminal event, no safe moves left, or
// the tick cap. The engine must be freshly initialized or reset.
func playGame(eng engine.Engine, strategy *GreedyStrategy, tickCap int) gameResult {
	ending := endedTickCap

	for tick := 0; tick < tickCap; tick++ {
		direction, ok := strategy.NextMove(eng)
		if !ok {
			ending = endedBoxedIn
			break
		}

		eng.SetDirection(direction)
		event := eng.Advance()

		switch event.Type {
		case engine.EventAte:
			if *verbose {
				log.Printf("  ate item at (%d,%d), score now %d", event.Item.X, event.Item.Y, eng.GetScore())
			}
		case engine.EventCollided:
			ending = eng.GetState().Cause + " crash"
		}

		if eng.IsGameOver() {
			break
		}
		if *delayMs > 0 {
			time.Sleep(time.Duration(*delayMs) * time.Millisecond)
		}
	}

	return gameResult{
		Score:  eng.GetScore(),
		Level:  eng.GetLevel(),
		Length: eng.GetSnakeLength(),
		Ticks:  eng.GetTickCount(),
		Ending: ending,
	}
}

// summarize returns the best and mean score over the played games
func summarize(results []gameResult) (best int, mean float64) {
	if len(results) == 0 {
		return 0, 0
	}

	total := 0
	for _, r := range results {
		total += r.Score
		if r.Score > best {
			best = r.Score
		}
	}
	return best, float64(total) / float64(len(results))
}
