// Package pathfind defines the step protocol and sentinel errors shared by
// both pathfinders.
package pathfind

import (
	"errors"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors for pathfinder construction and search.
var (
	// ErrNilGrid indicates a nil *grid.Grid was passed to a constructor.
	ErrNilGrid = errors.New("pathfind: grid is nil")

	// ErrMissingEndpoint indicates the grid has no start or no end point set.
	ErrMissingEndpoint = errors.New("pathfind: grid is missing a start or end point")

	// ErrNoPathFound indicates uniform-cost search exhausted its open set
	// without reaching the end point (the end is sealed off by walls).
	ErrNoPathFound = errors.New("pathfind: no path between start and end")
)

// StepKind tags a StepResult.
type StepKind int

const (
	// StepContinue means the search advanced one position; Pos holds it.
	StepContinue StepKind = iota
	// StepDone means the end point has been reached; the sequence is over.
	StepDone
	// StepStuck means no further move is possible; the sequence is over
	// without reaching the end.
	StepStuck
)

// StepResult is the outcome of one Advance call: a tagged
// Continue(Position) | Done | Stuck value replacing exception-driven
// iteration termination. Pos is meaningful only when Kind is StepContinue.
type StepResult struct {
	Kind StepKind
	Pos  grid.Position
}

// Pathfinder is the capability both strategies expose: advance the search by
// one step and report the outcome. Not safe for concurrent use.
type Pathfinder interface {
	Advance() StepResult
}

// stepContinue builds a Continue result for p.
func stepContinue(p grid.Position) StepResult {
	return StepResult{Kind: StepContinue, Pos: p}
}

// stepDone and stepStuck are the two terminal results.
var (
	stepDone  = StepResult{Kind: StepDone}
	stepStuck = StepResult{Kind: StepStuck}
)

// endpoints pulls the start/end pair out of g, enforcing the shared
// constructor preconditions.
func endpoints(g *grid.Grid) (start, end grid.Position, err error) {
	if g == nil {
		return start, end, ErrNilGrid
	}
	start, ok := g.Start()
	if !ok {
		return start, end, ErrMissingEndpoint
	}
	end, ok = g.End()
	if !ok {
		return start, end, ErrMissingEndpoint
	}

	return start, end, nil
}
