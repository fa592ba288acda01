package human

import "testing"

func emptyGivens() []int {
	return make([]int, 81)
}

func TestNewBoardInitCandidates(t *testing.T) {
	givens := emptyGivens()
	givens[0] = 5 // r0c0 = 5
	b := NewBoard(givens)

	if b.Cells[0] != 5 {
		t.Fatalf("expected cell 0 to hold 5, got %d", b.Cells[0])
	}
	if !b.Candidates[0].IsEmpty() {
		t.Fatalf("expected solved cell to have no candidates, got %v", b.Candidates[0])
	}

	// r0c1 is a row peer of r0c0 and should not have 5 as a candidate.
	if b.Candidates[1].Has(5) {
		t.Fatalf("expected peer cell to exclude digit 5")
	}
	// r3c3, outside row/col/box of r0c0, should still have 5.
	if !b.Candidates[IndexOf(3, 3)].Has(5) {
		t.Fatalf("expected unrelated cell to retain digit 5 as a candidate")
	}
}

func TestSetCellClearsPeers(t *testing.T) {
	b := NewBoard(emptyGivens())
	b.SetCell(IndexOf(4, 4), 7)

	if b.Cells[IndexOf(4, 4)] != 7 {
		t.Fatalf("expected center cell set to 7")
	}
	if !b.Candidates[IndexOf(4, 4)].IsEmpty() {
		t.Fatalf("expected solved cell to have no candidates left")
	}
	if b.Candidates[IndexOf(4, 0)].Has(7) {
		t.Fatalf("expected row peer to lose candidate 7")
	}
	if b.Candidates[IndexOf(0, 4)].Has(7) {
		t.Fatalf("expected column peer to lose candidate 7")
	}
	if b.Candidates[IndexOf(3, 3)].Has(7) {
		t.Fatalf("expected box peer to lose candidate 7")
	}
	if !b.Candidates[IndexOf(8, 8)].Has(7) {
		t.Fatalf("expected unrelated cell to keep candidate 7")
	}
}

func TestRemoveCandidateReportsChange(t *testing.T) {
	b := NewBoard(emptyGivens())
	idx := IndexOf(0, 0)

	if !b.RemoveCandidate(idx, 3) {
		t.Fatalf("expected first removal of 3 to report a change")
	}
	if b.RemoveCandidate(idx, 3) {
		t.Fatalf("expected second removal of 3 to report no change")
	}
}

func TestIsFilledAndIsValid(t *testing.T) {
	b := NewBoard(emptyGivens())
	if b.IsFilled() {
		t.Fatalf("empty board should not be filled")
	}
	if !b.IsValid() {
		t.Fatalf("empty board should be valid")
	}

	b.SetCell(IndexOf(0, 0), 1)
	// SetCell does not itself enforce row/col/box uniqueness, so placing the
	// same digit at a row peer produces a duplicate IsValid must catch.
	b.SetCell(IndexOf(0, 1), 1)
	if b.IsValid() {
		t.Fatalf("expected board with duplicate row digit to be invalid")
	}
}

func TestBoardClone(t *testing.T) {
	b := NewBoard(emptyGivens())
	b.SetCell(IndexOf(0, 0), 9)
	clone := b.Clone()

	if clone.Cells[0] != 9 {
		t.Fatalf("expected clone to carry over cell state")
	}
	clone.SetCell(IndexOf(1, 1), 2)
	if b.Cells[IndexOf(1, 1)] != 0 {
		t.Fatalf("expected mutating the clone to leave the original untouched")
	}
}

func TestCellsWithCandidateRange(t *testing.T) {
	b := NewBoard(emptyGivens())
	b.SetCell(IndexOf(0, 0), 1)

	cells := b.CellsWithCandidateRange(1, 9)
	for _, idx := range cells {
		if idx == IndexOf(0, 0) {
			t.Fatalf("expected solved cell to be excluded from candidate-range query")
		}
	}
	if len(cells) != 80 {
		t.Fatalf("expected 80 unsolved cells, got %d", len(cells))
	}
}
