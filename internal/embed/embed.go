// Package embed exposes the solving engine to another runtime as a small,
// dependency-free surface: a puzzle string in, a fixed statistics vector
// (optionally paired with the final grid) out.
package embed

import (
	"sudoku-engine/internal/sudoku/human"
)

// Stats is the fixed-length statistics vector the embedding surface
// returns: [is_filled, naked_pair, hidden_pair, naked_triple, naked_quad,
// x_wing, y_wing, rectangle_elim, xyz_wing].
type Stats struct {
	IsFilled      int
	NakedPair     int
	HiddenPair    int
	NakedTriple   int
	NakedQuad     int
	XWing         int
	YWing         int
	RectangleElim int
	XYZWing       int
}

// Slice renders Stats in the fixed vector order.
func (s Stats) Slice() []int {
	return []int{
		s.IsFilled, s.NakedPair, s.HiddenPair, s.NakedTriple, s.NakedQuad,
		s.XWing, s.YWing, s.RectangleElim, s.XYZWing,
	}
}

// Solve parses an 81-character puzzle string, runs the solver to its fixed
// point, and returns the statistics vector. When returnGrid is true, the
// final 81-cell grid (row-major, 0 = still unsolved) is returned alongside.
func Solve(puzzle string, returnGrid bool) (Stats, []int, error) {
	b, err := human.ParseBoard(puzzle)
	if err != nil {
		return Stats{}, nil, err
	}

	solver := human.NewSolver()
	solver.Solve(b)
	counts := solver.Counts()

	filled := 0
	if b.IsFilled() {
		filled = 1
	}

	stats := Stats{
		IsFilled:      filled,
		NakedPair:     counts[human.NakedPair],
		HiddenPair:    counts[human.HiddenPair],
		NakedTriple:   counts[human.NakedTriple],
		NakedQuad:     counts[human.NakedQuad],
		XWing:         counts[human.XWing],
		YWing:         counts[human.YWing],
		RectangleElim: counts[human.RectangleElim],
		XYZWing:       counts[human.XYZWing],
	}

	var grid []int
	if returnGrid {
		grid = b.GetCells()
	}
	return stats, grid, nil
}

// IsValid reports whether a row-major 81-cell grid has no duplicate digit
// within any row, column, or box.
func IsValid(grid []int) bool {
	if len(grid) != 81 {
		return false
	}
	for _, house := range human.Houses {
		var seen human.Candidates
		for _, idx := range house {
			digit := grid[idx]
			if digit == 0 {
				continue
			}
			if digit < 1 || digit > 9 {
				return false
			}
			if seen.Has(digit) {
				return false
			}
			seen = seen.Set(digit)
		}
	}
	return true
}

// IsFilled reports whether every cell of a row-major 81-cell grid is nonzero.
func IsFilled(grid []int) bool {
	if len(grid) != 81 {
		return false
	}
	for _, digit := range grid {
		if digit == 0 {
			return false
		}
	}
	return true
}
