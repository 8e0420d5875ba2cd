package engine

import (
	"math/rand"
	"time"
)

// Head returns the snake's head position
func (gs *GameState) Head() Position {
	return gs.Snake[0]
}

// Tail returns the snake's last segment
func (gs *GameState) Tail() Position {
	return gs.Snake[len(gs.Snake)-1]
}

// HasItemAt reports whether an item occupies pos
func (gs *GameState) HasItemAt(pos Position) bool {
	return gs.itemIndexAt(pos) >= 0
}

func (gs *GameState) itemIndexAt(pos Position) int {
	for i, item := range gs.Items {
		if item == pos {
			return i
		}
	}
	return -1
}

// OccupiedCells returns the set of cells taken by the snake body and the items
func (gs *GameState) OccupiedCells() map[Position]bool {
	occupied := make(map[Position]bool, len(gs.Snake)+len(gs.Items))
	for _, seg := range gs.Snake {
		occupied[seg] = true
	}
	for _, item := range gs.Items {
		occupied[item] = true
	}
	return occupied
}

// CanMoveTo checks if the snake's head may enter the specified cell on the
// next tick
func (gs *GameState) CanMoveTo(pos Position) bool {
	if !gs.Board.InBounds(pos) {
		return false
	}
	// On a plain move the tail cell vacates during the same tick, so entering
	// it is legal. Eating keeps the tail in place, but items never overlap the
	// body, so a cell holding an item can't be a body cell anyway.
	body := gs.Snake
	if !gs.HasItemAt(pos) && len(body) > 0 {
		body = body[:len(body)-1]
	}
	for _, seg := range body {
		if seg == pos {
			return false
		}
	}
	return true
}

// AdvanceSnake advances the snake one cell in the state's current direction
// and reports the outcome. On a collision the body is left untouched so the
// final frame renders the last valid state.
func (gs *GameState) AdvanceSnake(config *GameConfig, rng *rand.Rand) Event {
	if gs.GameOver {
		return Event{Type: EventNone}
	}

	from := gs.Head()
	next := from.Translate(gs.Direction)

	// Wall collision ends the game; there is no wrap-around
	if !gs.Board.InBounds(next) {
		gs.GameOver = true
		gs.Cause = CauseWall
		gs.Message = config.Messages.WallCrash
		gs.AddTickToHistory(gs.Direction, EventCollided, from, next)
		return Event{Type: EventCollided}
	}

	if !gs.CanMoveTo(next) {
		gs.GameOver = true
		gs.Cause = CauseSelf
		gs.Message = config.Messages.SelfCrash
		gs.AddTickToHistory(gs.Direction, EventCollided, from, next)
		return Event{Type: EventCollided}
	}

	if idx := gs.itemIndexAt(next); idx >= 0 {
		// Grow: new head in front, tail stays put this tick
		gs.Snake = append([]Position{next}, gs.Snake...)
		gs.Items[idx] = gs.Items[len(gs.Items)-1]
		gs.Items = gs.Items[:len(gs.Items)-1]
		gs.Score += config.Reward
		gs.Message = config.Messages.Ate
		gs.ReplenishItems(config, rng)
		gs.AddTickToHistory(gs.Direction, EventAte, from, next)
		return Event{Type: EventAte, Item: next}
	}

	// Plain move: shift every segment toward the head
	copy(gs.Snake[1:], gs.Snake)
	gs.Snake[0] = next
	gs.Message = ""
	gs.AddTickToHistory(gs.Direction, EventMoved, from, next)
	return Event{Type: EventMoved}
}

// ReplenishItems tops the item set back up to the configured target. Spawning
// fewer than requested is normal when the board is nearly full.
func (gs *GameState) ReplenishItems(config *GameConfig, rng *rand.Rand) int {
	need := config.NumItems - len(gs.Items)
	if need <= 0 {
		return 0
	}
	spawned := SpawnItems(rng, gs.Board, gs.OccupiedCells(), need)
	gs.Items = append(gs.Items, spawned...)
	return len(spawned)
}

// AddTickToHistory appends one tick to the game's history and bumps the
// tick counter
func (gs *GameState) AddTickToHistory(direction Direction, event EventType, from, to Position) {
	entry := TickRecord{
		Tick:      gs.TickCount + 1,
		Direction: direction,
		Event:     event,
		From:      from,
		To:        to,
		Score:     gs.Score,
		Timestamp: time.Now().Unix(),
	}
	gs.TickHistory = append(gs.TickHistory, entry)
	gs.TickCount++
}
