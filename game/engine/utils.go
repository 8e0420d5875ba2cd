package engine

// LevelForScore derives the display level from the score: level 1 at score
// zero, one level up per levelStep points. A levelStep below 1 falls back to
// the default step.
func LevelForScore(score, levelStep int) int {
	if levelStep < 1 {
		levelStep = DefaultLevelStep
	}
	if score < 0 {
		score = 0
	}
	return 1 + score/levelStep
}

// ManhattanDistance calculates the Manhattan distance between two positions
func ManhattanDistance(from, to Position) int {
	return abs(from.X-to.X) + abs(from.Y-to.Y)
}

// FindNearestItem finds the item closest to the snake's head and returns its
// position and distance
func FindNearestItem(state *GameState) (Position, int, bool) {
	minDistance := -1
	var nearestPos Position
	found := false

	head := state.Head()
	for _, item := range state.Items {
		distance := ManhattanDistance(head, item)
		if minDistance == -1 || distance < minDistance {
			minDistance = distance
			nearestPos = item
			found = true
		}
	}

	return nearestPos, minDistance, found
}

// CountFreeCells counts the interior cells not taken by the snake or an item
func CountFreeCells(state *GameState) int {
	return state.Board.CellCount() - len(state.Snake) - len(state.Items)
}

// ItemDensity returns the configured item target as a fraction of the
// interior cells, for crowding reports
func ItemDensity(config *GameConfig) float64 {
	cells := config.Width * config.Height
	if cells == 0 {
		return 0
	}
	return float64(config.NumItems) / float64(cells)
}
