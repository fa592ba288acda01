package human

// ============================================================================
// Set techniques (C6)
// ============================================================================
//
// Naked pairs/triples/quads share one generic k-combination search. Hidden
// pairs have a specialised two-digit path (mirroring the original engine,
// which hand-writes the pair case separately from the generic triple/quad
// case); hidden triples/quads share a second generic search over digit
// combinations.
//
// ============================================================================

// NakedSetDetect returns a detector for a naked set of size k: within one
// house, k unsolved cells whose combined candidates number exactly k, with
// those candidates then removed from every other unsolved cell in the house.
func NakedSetDetect(k int, tag Technique) func(BoardInterface) bool {
	return func(b BoardInterface) bool {
		for _, house := range Houses {
			var pool []int
			for _, idx := range house {
				if b.GetCell(idx) != 0 {
					continue
				}
				count := b.GetCandidatesAt(idx).Count()
				if count >= 2 && count <= k {
					pool = append(pool, idx)
				}
			}
			if len(pool) < k {
				continue
			}
			for _, combo := range cellCombinations(pool, k) {
				var union Candidates
				for _, idx := range combo {
					union = union.Union(b.GetCandidatesAt(idx))
				}
				if union.Count() != k {
					continue
				}
				changed := false
				digits := union.ToSlice()
				for _, idx := range house {
					if b.GetCell(idx) != 0 || inCombo(combo, idx) {
						continue
					}
					for _, d := range digits {
						if b.RemoveCandidate(idx, d) {
							changed = true
						}
					}
				}
				if changed {
					return true
				}
			}
		}
		return false
	}
}

// HiddenPairDetect finds two digits confined, within one house, to exactly
// the same two unsolved cells, then strips every other candidate from those
// two cells. It checks the "truly hidden" condition (at least one of the two
// cells has a candidate outside the pair) so a naked pair is never
// double-counted as a hidden one.
func HiddenPairDetect(b BoardInterface) bool {
	for _, house := range Houses {
		for d1 := 1; d1 <= 8; d1++ {
			for d2 := d1 + 1; d2 <= 9; d2++ {
				var cells []int
				for _, idx := range house {
					if b.GetCell(idx) != 0 {
						continue
					}
					if b.GetCandidatesAt(idx).Has(d1) || b.GetCandidatesAt(idx).Has(d2) {
						cells = append(cells, idx)
					}
				}
				if len(cells) != 2 {
					continue
				}
				if !b.GetCandidatesAt(cells[0]).Has(d1) || !b.GetCandidatesAt(cells[0]).Has(d2) {
					continue
				}
				if !b.GetCandidatesAt(cells[1]).Has(d1) || !b.GetCandidatesAt(cells[1]).Has(d2) {
					continue
				}
				trulyHidden := b.GetCandidatesAt(cells[0]).Count() > 2 || b.GetCandidatesAt(cells[1]).Count() > 2
				if !trulyHidden {
					continue
				}
				changed := false
				pair := Candidates(0).Set(d1).Set(d2)
				for _, idx := range cells {
					for _, d := range b.GetCandidatesAt(idx).ToSlice() {
						if !pair.Has(d) {
							if b.RemoveCandidate(idx, d) {
								changed = true
							}
						}
					}
				}
				if changed {
					return true
				}
			}
		}
	}
	return false
}

// HiddenSetDetect returns a detector for a hidden set of size k (k = 3 or
// 4): within one house, k digits confined to exactly k unsolved cells, all k
// digits actually present among those cells, and at least one cell carrying
// a candidate outside the set (truly hidden, not merely naked).
func HiddenSetDetect(k int, tag Technique) func(BoardInterface) bool {
	return func(b BoardInterface) bool {
		for _, house := range Houses {
			for _, combo := range digitCombinations(k) {
				var comboMask Candidates
				for _, d := range combo {
					comboMask = comboMask.Set(d)
				}

				var cells []int
				for _, idx := range house {
					if b.GetCell(idx) != 0 {
						continue
					}
					if b.GetCandidatesAt(idx).Intersect(comboMask) != 0 {
						cells = append(cells, idx)
					}
				}
				if len(cells) != k {
					continue
				}

				var present Candidates
				trulyHidden := false
				for _, idx := range cells {
					present = present.Union(b.GetCandidatesAt(idx).Intersect(comboMask))
					if b.GetCandidatesAt(idx).Subtract(comboMask) != 0 {
						trulyHidden = true
					}
				}
				if present.Count() != k || !trulyHidden {
					continue
				}

				changed := false
				for _, idx := range cells {
					for _, d := range b.GetCandidatesAt(idx).ToSlice() {
						if !comboMask.Has(d) {
							if b.RemoveCandidate(idx, d) {
								changed = true
							}
						}
					}
				}
				if changed {
					return true
				}
			}
		}
		return false
	}
}

// cellCombinations returns every k-sized subset of items, as index lists.
func cellCombinations(items []int, k int) [][]int {
	var out [][]int
	var combo []int
	var rec func(start int)
	rec = func(start int) {
		if len(combo) == k {
			picked := make([]int, k)
			copy(picked, combo)
			out = append(out, picked)
			return
		}
		for i := start; i < len(items); i++ {
			combo = append(combo, items[i])
			rec(i + 1)
			combo = combo[:len(combo)-1]
		}
	}
	rec(0)
	return out
}

// digitCombinations returns every k-sized subset of {1..9}.
func digitCombinations(k int) [][]int {
	digits := []int{1, 2, 3, 4, 5, 6, 7, 8, 9}
	return cellCombinations(digits, k)
}

func inCombo(combo []int, idx int) bool {
	for _, c := range combo {
		if c == idx {
			return true
		}
	}
	return false
}
