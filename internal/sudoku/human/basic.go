package human

// ============================================================================
// Basic techniques (C5)
// ============================================================================

// BasicElimination removes, from every unsolved cell's candidate set, any
// digit already present in that cell's row, column, or box. Reports true if
// the pass changed anything.
func BasicElimination(b BoardInterface) bool {
	changed := false
	for i := 0; i < 81; i++ {
		if b.GetCell(i) != 0 {
			continue
		}
		ForEachPeer(i, func(peerIdx int) {
			if digit := b.GetCell(peerIdx); digit != 0 {
				if b.RemoveCandidate(i, digit) {
					changed = true
				}
			}
		})
	}
	return changed
}

// NakedSingleDetect places the digit at the first unsolved cell whose
// candidate set has exactly one member.
func NakedSingleDetect(b BoardInterface) bool {
	for i := 0; i < 81; i++ {
		if b.GetCell(i) != 0 {
			continue
		}
		if digit, ok := b.GetCandidatesAt(i).Only(); ok {
			b.SetCell(i, digit)
			return true
		}
	}
	return false
}

// HiddenSingleDetect finds, per house, a digit that has exactly one unsolved
// cell still admitting it, and places it there.
func HiddenSingleDetect(b BoardInterface) bool {
	for _, house := range Houses {
		for d := 1; d <= 9; d++ {
			candidateCell := -1
			count := 0
			for _, idx := range house {
				if b.GetCell(idx) != 0 {
					continue
				}
				if b.GetCandidatesAt(idx).Has(d) {
					count++
					candidateCell = idx
				}
			}
			if count == 1 {
				b.SetCell(candidateCell, d)
				return true
			}
		}
	}
	return false
}
