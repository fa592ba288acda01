package human

import "testing"

// stripExcept removes digit d from every cell in house except the ones
// listed in keep.
func stripExcept(b *Board, house []int, d int, keep ...int) {
	keepSet := make(map[int]bool, len(keep))
	for _, idx := range keep {
		keepSet[idx] = true
	}
	for _, idx := range house {
		if !keepSet[idx] {
			b.RemoveCandidate(idx, d)
		}
	}
}

func TestXChainDetect(t *testing.T) {
	b := NewBoard(emptyGivens())
	d := 4

	// A 4-cell chain: start--strong--v1--weak--v2--strong--v3, with row 0
	// holding the strong link start/v1 and row 6 holding the strong link
	// v2/v3. v1-v2 share column 8 as the connecting weak link. target
	// shares column 0 with both start and v3, so it is eliminated once the
	// chain closes.
	start := IndexOf(0, 0)
	v1 := IndexOf(0, 8)
	v2 := IndexOf(6, 8)
	v3 := IndexOf(6, 0)
	target := IndexOf(3, 0)

	keep := map[int]bool{start: true, v1: true, v2: true, v3: true, target: true}
	for idx := 0; idx < 81; idx++ {
		if !keep[idx] {
			b.RemoveCandidate(idx, d)
		}
	}

	if !XChainDetect(b) {
		t.Fatalf("expected an X-Chain to be found")
	}
	if b.Candidates[target].Has(d) {
		t.Fatalf("expected digit %d removed from the cell peering both chain endpoints", d)
	}
}

func TestXChainDetectNoFalsePositiveOnBlankBoard(t *testing.T) {
	b := NewBoard(emptyGivens())
	if XChainDetect(b) {
		t.Fatalf("expected no X-Chain on a blank board")
	}
}

func TestXYChainDetect(t *testing.T) {
	b := NewBoard(emptyGivens())

	// start{1,2} --(2)-- c1{2,3} --(3)-- c2{3,1}: a 3-cell XY-Chain on
	// candidate 1, eliminating 1 from any cell peering both start and c2.
	start := IndexOf(0, 0)
	c1 := IndexOf(0, 4)
	c2 := IndexOf(4, 4)
	target := IndexOf(4, 0)

	setExactCandidates(b, start, 1, 2)
	setExactCandidates(b, c1, 2, 3)
	setExactCandidates(b, c2, 3, 1)
	// Give target extra candidates so it is never itself eligible as a
	// bivalue chain link, only as an elimination target.
	setExactCandidates(b, target, 1, 5, 6)

	if !XYChainDetect(b) {
		t.Fatalf("expected an XY-Chain to be found")
	}
	if b.Candidates[target].Has(1) {
		t.Fatalf("expected digit 1 removed from the cell peering both chain endpoints")
	}
}

func TestXYChainDetectNoFalsePositiveOnBlankBoard(t *testing.T) {
	b := NewBoard(emptyGivens())
	if XYChainDetect(b) {
		t.Fatalf("expected no XY-Chain on a blank board")
	}
}

func TestSingleColoringDetect(t *testing.T) {
	b := NewBoard(emptyGivens())
	d := 5

	// idx is a peer (via row 0) of the only other digit-5 candidate in
	// column 5. Tentatively placing d at idx clears it from that column-5
	// cell, leaving column 5 with no candidate and no placement for d — an
	// immediate contradiction, so d is eliminated from idx.
	idx := IndexOf(0, 0)
	onlyOther := IndexOf(0, 5)
	stripExcept(b, ColIndices[5], d, onlyOther)

	if !SingleColoringDetect(b) {
		t.Fatalf("expected single-digit coloring to find a contradiction")
	}
	if b.Candidates[idx].Has(d) {
		t.Fatalf("expected digit %d removed from the hypothesis cell", d)
	}
}

func TestSingleColoringDetectNoFalsePositiveOnBlankBoard(t *testing.T) {
	b := NewBoard(emptyGivens())
	if SingleColoringDetect(b) {
		t.Fatalf("expected no contradiction on a blank board")
	}
}
