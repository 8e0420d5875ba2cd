package main

import (
	"github.com/termgames/snake/game/engine"
)

// Scoring weights for GreedyStrategy.NextMove. Distance dominates so the bot
// chases items; the visit penalty outgrows it on re-walked cells so the bot
// cannot orbit a spot forever; the hold-course bonus only breaks exact ties.
const (
	distanceWeight  = 4
	holdCourseBonus = 1
)

// GreedyStrategy steers toward the nearest item over safe moves only
type GreedyStrategy struct {
	visitedCells map[engine.Position]int
}

func NewGreedyStrategy() *GreedyStrategy {
	return &GreedyStrategy{
		visitedCells: make(map[engine.Position]int),
	}
}

// Reset clears the visited-cell history for a fresh game
func (s *GreedyStrategy) Reset() {
	s.visitedCells = make(map[engine.Position]int)
}

// NextMove picks the safe direction that best closes the gap to the nearest
// item. Returns false when no safe direction exists, meaning the snake is
// boxed in and the next tick would be fatal whichever way it turns.
func (s *GreedyStrategy) NextMove(eng engine.Engine) (engine.Direction, bool) {
	state := eng.GetState()
	head := state.Head()
	s.visitedCells[head]++

	moves := eng.GetPossibleMoves()
	if len(moves) == 0 {
		return "", false
	}

	target, _, hasTarget := engine.FindNearestItem(state)

	best := moves[0]
	bestScore := moveScore(s, state, moves[0], target, hasTarget)
	for _, dir := range moves[1:] {
		if score := moveScore(s, state, dir, target, hasTarget); score < bestScore {
			best = dir
			bestScore = score
		}
	}

	return best, true
}

func moveScore(s *GreedyStrategy, state *engine.GameState, dir engine.Direction, target engine.Position, hasTarget bool) int {
	next := state.Head().Translate(dir)

	score := 0
	if hasTarget {
		score = engine.ManhattanDistance(next, target) * distanceWeight
	}
	score += s.visitedCells[next]
	if dir == state.Direction {
		score -= holdCourseBonus
	}

	return score
}
