package human

// ============================================================================
// Board - Sudoku Puzzle State
// ============================================================================
//
// Board is the dual representation every technique reads and writes: the
// filled grid and the per-cell candidate sets. SetCell and RemoveCandidate
// are the only functions that mutate it, which keeps the invariants local to
// this file:
//
//   - G[r][c] != 0  <=>  M[r][c] == empty
//   - for every unsolved cell, no peer holds a digit still listed as a
//     candidate of that cell
//
// For grid/peer utilities, see peers.go. For the driver loop, see solver.go.
//
// ============================================================================

// Board represents the Sudoku board state with candidates
type Board struct {
	Cells      [81]int        // 0 for empty, 1-9 for filled
	Candidates [81]Candidates // possible values for each unsolved cell (bitmask)
}

// ============================================================================
// Constructors
// ============================================================================

// NewBoard creates a board from 81 givens (0 = unsolved) and initializes
// candidates for every unsolved cell. It does not run Basic Elimination;
// callers that want the construction contract from spec.md section 4.1
// (init candidates, then run Basic Elimination once) should use ParseBoard.
func NewBoard(givens []int) *Board {
	b := &Board{}
	for i := 0; i < 81; i++ {
		b.Cells[i] = givens[i]
	}
	b.InitCandidates()
	return b
}

// ============================================================================
// Candidate Management
// ============================================================================

// InitCandidates populates candidates for every unsolved cell from scratch,
// based on the current filled cells. Solved cells get an empty candidate set.
func (b *Board) InitCandidates() {
	for i := 0; i < 81; i++ {
		if b.Cells[i] == 0 {
			var cands Candidates
			for d := 1; d <= 9; d++ {
				if b.canPlace(i, d) {
					cands = cands.Set(d)
				}
			}
			b.Candidates[i] = cands
		} else {
			b.Candidates[i] = 0
		}
	}
}

// canPlace checks if a digit can be placed at idx (no conflicts in row/col/box)
func (b *Board) canPlace(idx, digit int) bool {
	row, col := idx/9, idx%9

	for c := 0; c < 9; c++ {
		if b.Cells[row*9+c] == digit {
			return false
		}
	}

	for r := 0; r < 9; r++ {
		if b.Cells[r*9+col] == digit {
			return false
		}
	}

	boxRow, boxCol := (row/3)*3, (col/3)*3
	for r := boxRow; r < boxRow+3; r++ {
		for c := boxCol; c < boxCol+3; c++ {
			if b.Cells[r*9+c] == digit {
				return false
			}
		}
	}

	return true
}

// ============================================================================
// Cell Mutation — the only write paths
// ============================================================================

// SetCell places a digit, clears the cell's own candidates, and removes the
// digit from every peer's candidate set. Constant in the size of the 20 peers.
func (b *Board) SetCell(idx, digit int) {
	b.Cells[idx] = digit
	b.Candidates[idx] = 0

	ForEachPeer(idx, func(peerIdx int) {
		b.Candidates[peerIdx] = b.Candidates[peerIdx].Clear(digit)
	})
}

// RemoveCandidate clears a single candidate bit from an unsolved cell.
// Reports whether the bit was actually set (and thus whether this counts as
// a change for the driver's monotone-progress invariant). It does not
// propagate further — propagation is the driver's job.
func (b *Board) RemoveCandidate(idx, digit int) bool {
	if b.Candidates[idx].Has(digit) {
		b.Candidates[idx] = b.Candidates[idx].Clear(digit)
		return true
	}
	return false
}

// ============================================================================
// Board State Queries
// ============================================================================

// IsFilled returns true if every cell holds a nonzero digit.
func (b *Board) IsFilled() bool {
	for i := 0; i < 81; i++ {
		if b.Cells[i] == 0 {
			return false
		}
	}
	return true
}

// IsSolved returns true if the board is both filled and valid. Delegates to
// the interface-based helper in solver.go so the two never drift apart.
func (b *Board) IsSolved() bool {
	return isSolved(b)
}

// IsValid checks that no house (row, column, or box) holds the same nonzero
// digit twice. Delegates to the interface-based helper in solver.go.
func (b *Board) IsValid() bool {
	return isValid(b)
}

// ============================================================================
// Cloning and Export
// ============================================================================

// Clone creates a deep copy of the board.
func (b *Board) Clone() *Board {
	nb := &Board{}
	copy(nb.Cells[:], b.Cells[:])
	copy(nb.Candidates[:], b.Candidates[:])
	return nb
}

// GetCells returns cells as a slice (for the embedding surface / JSON output).
func (b *Board) GetCells() []int {
	result := make([]int, 81)
	copy(result, b.Cells[:])
	return result
}

// GetCandidates returns candidates as a 2D slice, one sorted digit slice per cell.
func (b *Board) GetCandidates() [][]int {
	result := make([][]int, 81)
	for i := 0; i < 81; i++ {
		result[i] = b.Candidates[i].ToSlice()
	}
	return result
}

// ============================================================================
// Query Helpers used by set/fish techniques
// ============================================================================

// CellsWithCandidateRange returns all unsolved cell indices with between min
// and max candidates (inclusive).
func (b *Board) CellsWithCandidateRange(min, max int) []int {
	var cells []int
	for i := 0; i < 81; i++ {
		if b.Cells[i] != 0 {
			continue
		}
		count := b.Candidates[i].Count()
		if count >= min && count <= max {
			cells = append(cells, i)
		}
	}
	return cells
}

// ============================================================================
// BoardInterface Implementation
// ============================================================================

// GetCell returns the digit at the given cell index (0 = empty, 1-9 = filled)
func (b *Board) GetCell(idx int) int {
	return b.Cells[idx]
}

// GetCandidatesAt returns the candidates bitmask for the given cell index.
func (b *Board) GetCandidatesAt(idx int) Candidates {
	return b.Candidates[idx]
}

// CloneBoard creates a deep copy of the board, returning BoardInterface.
// Used by single-digit coloring to simulate a hypothesis without mutating
// the real state.
func (b *Board) CloneBoard() BoardInterface {
	return b.Clone()
}
