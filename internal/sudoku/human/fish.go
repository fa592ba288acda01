package human

// ============================================================================
// Fish techniques (C8, fish half)
// ============================================================================
//
// X-Wing is the k=2 case of the generalised fish pattern; Swordfish (k=3)
// and Jellyfish (k=4) share the same search, disabled by default per
// spec.md section 4.4.
//
// ============================================================================

// FishDetect returns a detector for a fish of size k: k rows (resp. columns)
// whose digit-d candidates all fall within the same k columns (resp. rows);
// the digit is then removed from those columns (resp. rows) in every other
// row (resp. column).
func FishDetect(k int, tag Technique) func(BoardInterface) bool {
	return func(b BoardInterface) bool {
		for d := 1; d <= 9; d++ {
			if fishPass(b, d, k, RowIndices[:], ColOf, IndexOf) {
				return true
			}
			if fishPass(b, d, k, ColIndices[:], RowOf, func(col, row int) int { return IndexOf(row, col) }) {
				return true
			}
		}
		return false
	}
}

// fishPass runs one orientation of the fish search. lines is RowIndices (or
// ColIndices); crossOf maps a cell index to its column (or row) coordinate;
// indexAt rebuilds a cell index from (line number, cross coordinate).
func fishPass(b BoardInterface, d, k int, lines [][]int, crossOf func(int) int, indexAt func(line, cross int) int) bool {
	var pool []int // line numbers with 1..k candidate positions for d
	positions := make(map[int][]int, len(lines))
	for lineNum, cells := range lines {
		var cross []int
		for _, idx := range cells {
			if b.GetCell(idx) == 0 && b.GetCandidatesAt(idx).Has(d) {
				cross = append(cross, crossOf(idx))
			}
		}
		if len(cross) >= 2 && len(cross) <= k {
			pool = append(pool, lineNum)
			positions[lineNum] = cross
		}
	}
	if len(pool) < k {
		return false
	}

	for _, combo := range cellCombinations(pool, k) {
		crossSet := make(map[int]bool)
		for _, lineNum := range combo {
			for _, cross := range positions[lineNum] {
				crossSet[cross] = true
			}
		}
		if len(crossSet) != k {
			continue
		}

		inCombo := make(map[int]bool, k)
		for _, lineNum := range combo {
			inCombo[lineNum] = true
		}

		changed := false
		for lineNum := range lines {
			if inCombo[lineNum] {
				continue
			}
			for cross := range crossSet {
				idx := indexAt(lineNum, cross)
				if b.GetCell(idx) == 0 && b.RemoveCandidate(idx, d) {
					changed = true
				}
			}
		}
		if changed {
			return true
		}
	}
	return false
}
