package human

import "testing"

func TestXWingDetect(t *testing.T) {
	b := NewBoard(emptyGivens())
	d := 4

	// Confine digit 4 within rows 0 and 3 to columns 2 and 6 only, forming a
	// classic X-Wing; every other row keeps the full candidate set.
	keepCols := map[int]bool{2: true, 6: true}
	for _, row := range []int{0, 3} {
		for _, idx := range RowIndices[row] {
			if !keepCols[ColOf(idx)] {
				b.RemoveCandidate(idx, d)
			}
		}
	}

	detect := FishDetect(2, XWing)
	if !detect(b) {
		t.Fatalf("expected an X-Wing to be found")
	}
	// Column 2 outside rows 0 and 3 should lose digit 4.
	if b.Candidates[IndexOf(1, 2)].Has(d) {
		t.Fatalf("expected candidate %d removed from column 2 outside the wing rows", d)
	}
	// Rows 0 and 3 themselves still carry 4 at the wing columns.
	if !b.Candidates[IndexOf(0, 2)].Has(d) {
		t.Fatalf("expected the wing cell itself to retain its candidate")
	}
}

func TestFishDetectNoFalsePositive(t *testing.T) {
	b := NewBoard(emptyGivens())
	detect := FishDetect(2, XWing)
	if detect(b) {
		t.Fatalf("expected no X-Wing on a blank board")
	}
}
