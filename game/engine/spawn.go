package engine

import "math/rand"

// SpawnItems picks up to target free cells for new items. Free cells are the
// board interior minus occupied. Placement is random, but the attempt count is
// capped; once the cap is hit, or when no more free cells than target remain,
// the remaining picks come from a shuffled sweep of the free cells, so the
// call terminates even on a packed board. The result never overlaps occupied
// and holds no duplicates. Fewer than target positions (including none) is a
// normal outcome on a crowded board.
func SpawnItems(rng *rand.Rand, board Board, occupied map[Position]bool, target int) []Position {
	if target <= 0 {
		return nil
	}
	free := board.CellCount() - len(occupied)
	if free <= 0 {
		return nil
	}
	if target >= free {
		cells := freeCells(board, occupied)
		rng.Shuffle(len(cells), func(i, j int) { cells[i], cells[j] = cells[j], cells[i] })
		return cells
	}

	spawned := make([]Position, 0, target)
	taken := make(map[Position]bool, target)
	for attempts := 0; len(spawned) < target && attempts < SpawnAttemptsPerItem*target; attempts++ {
		pos := Position{X: rng.Intn(board.Width), Y: rng.Intn(board.Height)}
		if occupied[pos] || taken[pos] {
			continue
		}
		spawned = append(spawned, pos)
		taken[pos] = true
	}
	if len(spawned) < target {
		// Attempt budget exhausted; sweep the remaining free cells instead
		cells := make([]Position, 0, free-len(spawned))
		for _, pos := range freeCells(board, occupied) {
			if !taken[pos] {
				cells = append(cells, pos)
			}
		}
		rng.Shuffle(len(cells), func(i, j int) { cells[i], cells[j] = cells[j], cells[i] })
		for _, pos := range cells {
			if len(spawned) == target {
				break
			}
			spawned = append(spawned, pos)
		}
	}
	return spawned
}

// freeCells enumerates the unoccupied interior cells in row-major order
func freeCells(board Board, occupied map[Position]bool) []Position {
	cells := make([]Position, 0, board.CellCount()-len(occupied))
	for y := 0; y < board.Height; y++ {
		for x := 0; x < board.Width; x++ {
			pos := Position{X: x, Y: y}
			if !occupied[pos] {
				cells = append(cells, pos)
			}
		}
	}
	return cells
}
