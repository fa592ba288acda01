package human

import "sudoku-engine/pkg/constants"

// ============================================================================
// Solver - Fixed-Point Driver (C11)
// ============================================================================
//
// The driver invokes techniques in strict difficulty order; the first
// technique that changes state restarts the pass from the cheapest
// technique. It terminates when a full pass produces no change, when the
// board is filled and valid, or when the restart budget runs out, and
// reports which of these happened as a status string.
//
// For board state, see board.go. For technique implementations, see
// basic.go, sets.go, intersections.go, fish.go, wings.go, rectangle.go and
// chains.go.
//
// ============================================================================

// Solver holds the technique registry and the per-technique usage counters
// for a single puzzle run.
type Solver struct {
	registry *TechniqueRegistry
	counts   map[Technique]int
}

// NewSolver creates a solver with the default technique registry.
func NewSolver() *Solver {
	return &Solver{
		registry: NewTechniqueRegistry(),
		counts:   make(map[Technique]int),
	}
}

// NewSolverWithRegistry creates a solver around a caller-supplied registry,
// for tests that isolate a single technique.
func NewSolverWithRegistry(registry *TechniqueRegistry) *Solver {
	return &Solver{
		registry: registry,
		counts:   make(map[Technique]int),
	}
}

// Registry returns the technique registry for external configuration.
func (s *Solver) Registry() *TechniqueRegistry {
	return s.registry
}

// SetTechniqueEnabled enables or disables a technique by tag.
func (s *Solver) SetTechniqueEnabled(tag Technique, enabled bool) bool {
	return s.registry.SetEnabled(tag, enabled)
}

// Counts returns the per-technique usage counters accumulated by the most
// recent Solve call.
func (s *Solver) Counts() map[Technique]int {
	return s.counts
}

// Solve runs the fixed-point loop against b until no enabled technique
// reports a change, or the restart budget is exhausted. It returns the
// terminal status: StatusCompleted if the board ends up solved,
// StatusStalled if a fixed point was reached with unsolved cells remaining,
// or StatusMaxStepsReached if the restart budget ran out first.
func (s *Solver) Solve(b BoardInterface) string {
	techniques := s.registry.Ordered()
	s.counts = make(map[Technique]int)

	for restarts := 0; restarts < constants.MaxSolverSteps; restarts++ {
		changed := false
		for _, t := range techniques {
			if t.Detector(b) {
				s.counts[t.Tag]++
				changed = true
				break
			}
		}
		if !changed {
			if isSolved(b) {
				return constants.StatusCompleted
			}
			return constants.StatusStalled
		}
		if isSolved(b) {
			return constants.StatusCompleted
		}
	}
	return constants.StatusMaxStepsReached
}

func isSolved(b BoardInterface) bool {
	for i := 0; i < 81; i++ {
		if b.GetCell(i) == 0 {
			return false
		}
	}
	return isValid(b)
}

func isValid(b BoardInterface) bool {
	for _, house := range Houses {
		var seen Candidates
		for _, idx := range house {
			digit := b.GetCell(idx)
			if digit == 0 {
				continue
			}
			if seen.Has(digit) {
				return false
			}
			seen = seen.Set(digit)
		}
	}
	return true
}
