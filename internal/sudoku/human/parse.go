package human

import "fmt"

// ParseBoard builds a Board from an 81-character puzzle string of '0'..'9',
// where '0' marks an unsolved cell. It initialises candidates for every
// unsolved cell and then runs Basic Elimination once to prune the initial
// givens, per the construction contract in spec.md section 4.1.
func ParseBoard(puzzle string) (*Board, error) {
	if len(puzzle) != 81 {
		return nil, fmt.Errorf("puzzle string must be 81 characters, got %d", len(puzzle))
	}

	givens := make([]int, 81)
	for i, ch := range puzzle {
		if ch < '0' || ch > '9' {
			return nil, fmt.Errorf("puzzle string must contain only digits '0'-'9', found %q at position %d", ch, i)
		}
		givens[i] = int(ch - '0')
	}

	b := NewBoard(givens)
	BasicElimination(b)
	return b, nil
}
