package human

import "testing"

func TestNakedSingleDetect(t *testing.T) {
	b := NewBoard(emptyGivens())
	idx := IndexOf(0, 0)
	// Strip every candidate but 6 by hand.
	for d := 1; d <= 9; d++ {
		if d != 6 {
			b.RemoveCandidate(idx, d)
		}
	}

	if !NakedSingleDetect(b) {
		t.Fatalf("expected a naked single to be found")
	}
	if b.Cells[idx] != 6 {
		t.Fatalf("expected cell to be set to 6, got %d", b.Cells[idx])
	}
	if NakedSingleDetect(b) {
		t.Fatalf("expected no further naked single on a clean board")
	}
}

func TestHiddenSingleDetect(t *testing.T) {
	b := NewBoard(emptyGivens())
	row0 := RowIndices[0]
	// Remove 9 as a candidate from every row-0 cell except the last one, so
	// 9 becomes a hidden single confined to that cell within the row.
	for _, idx := range row0[:8] {
		b.RemoveCandidate(idx, 9)
	}

	if !HiddenSingleDetect(b) {
		t.Fatalf("expected a hidden single to be found")
	}
	if b.Cells[row0[8]] != 9 {
		t.Fatalf("expected the last row-0 cell to be set to 9, got %d", b.Cells[row0[8]])
	}
}

func TestBasicEliminationRemovesPeerDigits(t *testing.T) {
	givens := emptyGivens()
	givens[IndexOf(0, 0)] = 4
	b := NewBoard(givens)
	// NewBoard already runs InitCandidates (which itself excludes peer
	// digits), so re-running BasicElimination should report no change.
	if BasicElimination(b) {
		t.Fatalf("expected no change: InitCandidates already applied basic elimination")
	}

	// Introduce a stale candidate manually, then confirm the pass repairs it.
	b.Candidates[IndexOf(0, 1)] = b.Candidates[IndexOf(0, 1)].Set(4)
	if !BasicElimination(b) {
		t.Fatalf("expected basic elimination to remove the reintroduced candidate")
	}
	if b.Candidates[IndexOf(0, 1)].Has(4) {
		t.Fatalf("expected candidate 4 to be removed from the row peer")
	}
}
