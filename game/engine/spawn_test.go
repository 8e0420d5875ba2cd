package engine

import (
	"math/rand"
	"testing"
)

func TestSpawnItems_CountAndPlacement(t *testing.T) {
	board := Board{Width: 20, Height: 10}
	occupied := map[Position]bool{
		{X: 3, Y: 1}: true,
		{X: 4, Y: 1}: true,
	}

	spawned := SpawnItems(testRNG(), board, occupied, 5)
	if len(spawned) != 5 {
		t.Fatalf("Expected 5 items, got %d", len(spawned))
	}

	seen := map[Position]bool{}
	for _, pos := range spawned {
		if !board.InBounds(pos) {
			t.Errorf("Item (%d,%d) out of bounds", pos.X, pos.Y)
		}
		if occupied[pos] {
			t.Errorf("Item (%d,%d) placed on an occupied cell", pos.X, pos.Y)
		}
		if seen[pos] {
			t.Errorf("Item (%d,%d) duplicated", pos.X, pos.Y)
		}
		seen[pos] = true
	}
}

func TestSpawnItems_ZeroTarget(t *testing.T) {
	board := Board{Width: 5, Height: 5}

	if got := SpawnItems(testRNG(), board, nil, 0); got != nil {
		t.Errorf("Expected nil for zero target, got %v", got)
	}
	if got := SpawnItems(testRNG(), board, nil, -1); got != nil {
		t.Errorf("Expected nil for negative target, got %v", got)
	}
}

func TestSpawnItems_FullBoard(t *testing.T) {
	board := Board{Width: 5, Height: 5}
	occupied := map[Position]bool{}
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			occupied[Position{X: x, Y: y}] = true
		}
	}

	spawned := SpawnItems(testRNG(), board, occupied, 3)
	if len(spawned) != 0 {
		t.Errorf("Expected no items on a full board, got %d", len(spawned))
	}
}

func TestSpawnItems_Exhaustion(t *testing.T) {
	// All but two cells occupied: asking for more returns exactly the free ones
	board := Board{Width: 5, Height: 5}
	occupied := map[Position]bool{}
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			occupied[Position{X: x, Y: y}] = true
		}
	}
	delete(occupied, Position{X: 0, Y: 0})
	delete(occupied, Position{X: 4, Y: 4})

	spawned := SpawnItems(testRNG(), board, occupied, 10)
	if len(spawned) != 2 {
		t.Fatalf("Expected 2 items on a nearly full board, got %d", len(spawned))
	}

	got := map[Position]bool{}
	for _, pos := range spawned {
		got[pos] = true
	}
	if !got[Position{X: 0, Y: 0}] || !got[Position{X: 4, Y: 4}] {
		t.Errorf("Expected exactly the free cells (0,0) and (4,4), got %v", spawned)
	}
}

func TestSpawnItems_TerminatesWhenCrowded(t *testing.T) {
	// Leave a thin margin of free cells; random placement will mostly miss,
	// forcing the sweep fallback. The call must still fill the target.
	board := Board{Width: 10, Height: 10}
	occupied := map[Position]bool{}
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if y == 9 && x >= 5 {
				continue
			}
			occupied[Position{X: x, Y: y}] = true
		}
	}

	spawned := SpawnItems(testRNG(), board, occupied, 4)
	if len(spawned) != 4 {
		t.Fatalf("Expected 4 items, got %d", len(spawned))
	}
	seen := map[Position]bool{}
	for _, pos := range spawned {
		if occupied[pos] || seen[pos] {
			t.Errorf("Bad placement at (%d,%d)", pos.X, pos.Y)
		}
		seen[pos] = true
	}
}

func TestSpawnItems_Deterministic(t *testing.T) {
	board := Board{Width: 20, Height: 10}

	first := SpawnItems(rand.New(rand.NewSource(42)), board, nil, 5)
	second := SpawnItems(rand.New(rand.NewSource(42)), board, nil, 5)

	if len(first) != len(second) {
		t.Fatalf("Expected equal lengths, got %d and %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("Position %d differs: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestFreeCells(t *testing.T) {
	board := Board{Width: 5, Height: 5}
	occupied := map[Position]bool{
		{X: 0, Y: 0}: true,
		{X: 2, Y: 2}: true,
	}

	cells := freeCells(board, occupied)
	if len(cells) != 23 {
		t.Errorf("Expected 23 free cells, got %d", len(cells))
	}
	// Row-major order: the first free cell on row 0 is (1,0)
	if cells[0] != (Position{X: 1, Y: 0}) {
		t.Errorf("Expected first free cell (1,0), got %v", cells[0])
	}
	for _, pos := range cells {
		if occupied[pos] {
			t.Errorf("Occupied cell (%d,%d) listed as free", pos.X, pos.Y)
		}
	}
}
