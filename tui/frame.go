package tui

import (
	"fmt"
	"strings"

	"github.com/termgames/snake/game/engine"
)

// Glyphs used by the frame renderer. Tests pin these; the board border is
// presentational but the snake and item glyphs are part of the game's look.
const (
	SnakeGlyph  rune = '@'
	ItemGlyph   rune = '*'
	EmptyGlyph  rune = ' '
	CornerGlyph rune = '+'
	HorizGlyph  rune = '-'
	VertGlyph   rune = '|'
)

// Renderer builds printable frames from game states. It carries the level
// step from the active config so the status line agrees with Engine.GetLevel.
type Renderer struct {
	levelStep int
}

// NewRenderer creates a renderer for the given config. A nil config or a
// non-positive level step falls back to the default step.
func NewRenderer(config *engine.GameConfig) *Renderer {
	step := engine.DefaultLevelStep
	if config != nil && config.LevelStep > 0 {
		step = config.LevelStep
	}
	return &Renderer{levelStep: step}
}

// Frame renders the complete frame for a state: a bordered (Height+2) by
// (Width+2) grid, a status line, and the state message when one is set.
// Every line ends in a newline. The function is pure; the same state always
// produces the same string.
func (r *Renderer) Frame(st *engine.GameState) string {
	width, height := st.Board.Width, st.Board.Height

	// Items first so the snake wins should the two ever overlap.
	cells := make(map[engine.Position]rune, len(st.Snake)+len(st.Items))
	for _, item := range st.Items {
		cells[item] = ItemGlyph
	}
	for _, segment := range st.Snake {
		cells[segment] = SnakeGlyph
	}

	var sb strings.Builder
	sb.Grow((width + 3) * (height + 3))

	border := borderLine(width)
	sb.WriteString(border)
	for y := 0; y < height; y++ {
		sb.WriteRune(VertGlyph)
		for x := 0; x < width; x++ {
			glyph, ok := cells[engine.Position{X: x, Y: y}]
			if !ok {
				glyph = EmptyGlyph
			}
			sb.WriteRune(glyph)
		}
		sb.WriteRune(VertGlyph)
		sb.WriteByte('\n')
	}
	sb.WriteString(border)

	fmt.Fprintf(&sb, "Score: %d - Level: %d\n", st.Score, engine.LevelForScore(st.Score, r.levelStep))
	if st.Message != "" {
		sb.WriteString(st.Message)
		sb.WriteByte('\n')
	}

	return sb.String()
}

func borderLine(width int) string {
	return string(CornerGlyph) + strings.Repeat(string(HorizGlyph), width) + string(CornerGlyph) + "\n"
}
