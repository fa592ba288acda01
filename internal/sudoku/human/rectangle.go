package human

// ============================================================================
// Rectangle elimination (C9)
// ============================================================================
//
// A hinge cell carries digit d as a candidate. Three sub-patterns are
// tried, each built around a fourth corner implied by the hinge's row and
// column strong/weak links; box-distinctness of hinge + both wings + the
// fourth corner is mandatory in every pattern.
//
// ============================================================================

// RectangleEliminationDetect tries all three rectangle-elimination
// sub-patterns for every candidate at every unsolved cell.
func RectangleEliminationDetect(b BoardInterface) bool {
	for hinge := 0; hinge < 81; hinge++ {
		if b.GetCell(hinge) != 0 {
			continue
		}
		r0, c0 := RowOf(hinge), ColOf(hinge)

		for d := 1; d <= 9; d++ {
			if !b.GetCandidatesAt(hinge).Has(d) {
				continue
			}

			var rowPositions, colPositions []int
			for _, idx := range RowIndices[r0] {
				if b.GetCell(idx) == 0 && b.GetCandidatesAt(idx).Has(d) {
					rowPositions = append(rowPositions, idx)
				}
			}
			for _, idx := range ColIndices[c0] {
				if b.GetCell(idx) == 0 && b.GetCandidatesAt(idx).Has(d) {
					colPositions = append(colPositions, idx)
				}
			}

			if len(rowPositions) == 2 && len(colPositions) > 2 {
				if strongRowWeakCol(b, hinge, d, r0, c0, rowPositions, colPositions) {
					return true
				}
			}
			if len(colPositions) == 2 && len(rowPositions) > 2 {
				if strongColWeakRow(b, hinge, d, r0, c0, rowPositions, colPositions) {
					return true
				}
			}
			if len(rowPositions) == 2 && len(colPositions) == 2 {
				if twoStrongLinks(b, hinge, d, rowPositions, colPositions) {
					return true
				}
			}
		}
	}
	return false
}

// strongRowWeakCol: hinge's row is a strong link (exactly two d-candidates),
// its column is weak (more than two). For each weak candidate in the
// column, the fourth corner sits at (weak's row, strong partner's column);
// if the four cells fall in four distinct boxes and the fourth corner's box
// confines all its d-candidates to the weak candidate's row or the strong
// partner's column, the weak candidate can be eliminated.
func strongRowWeakCol(b BoardInterface, hinge, d, r0, c0 int, rowPositions, colPositions []int) bool {
	strongColPartner := otherOf(rowPositions, hinge)
	c1 := ColOf(strongColPartner)

	for _, weak := range colPositions {
		if weak == hinge {
			continue
		}
		r1 := RowOf(weak)
		fourth := IndexOf(r1, c1)

		if !fourDistinctBoxes(hinge, strongColPartner, weak, fourth) {
			continue
		}
		if !boxConfinedTo(b, d, BoxOf(fourth), []int{r1}, []int{c1}) {
			continue
		}
		if b.GetCandidatesAt(weak).Count() > 1 && b.RemoveCandidate(weak, d) {
			return true
		}
	}
	return false
}

// strongColWeakRow is the row/column mirror of strongRowWeakCol.
func strongColWeakRow(b BoardInterface, hinge, d, r0, c0 int, rowPositions, colPositions []int) bool {
	strongRowPartner := otherOf(colPositions, hinge)
	r1 := RowOf(strongRowPartner)

	for _, weak := range rowPositions {
		if weak == hinge {
			continue
		}
		c1 := ColOf(weak)
		fourth := IndexOf(r1, c1)

		if !fourDistinctBoxes(hinge, strongRowPartner, weak, fourth) {
			continue
		}
		if !boxConfinedTo(b, d, BoxOf(fourth), []int{r1}, []int{c1}) {
			continue
		}
		if b.GetCandidatesAt(weak).Count() > 1 && b.RemoveCandidate(weak, d) {
			return true
		}
	}
	return false
}

// twoStrongLinks: the hinge has a strong link in both its row and its
// column. If some box outside the hinge/wing boxes confines all of its
// d-candidates to the four lines bounding the rectangle (the hinge's row
// and column, and the wings' row and column), both wings can be
// eliminated. Unlike the single-strong-link patterns, confinement here
// must be checked against all four lines, not just the fourth corner's
// own row/column (tech_recelim.cpp's "Two Strong Links Pattern").
func twoStrongLinks(b BoardInterface, hinge, d int, rowPositions, colPositions []int) bool {
	r0, c0 := RowOf(hinge), ColOf(hinge)
	strongColPartner := otherOf(rowPositions, hinge)
	strongRowPartner := otherOf(colPositions, hinge)
	r1, c1 := RowOf(strongRowPartner), ColOf(strongColPartner)
	fourth := IndexOf(r1, c1)

	if !fourDistinctBoxes(hinge, strongColPartner, strongRowPartner, fourth) {
		return false
	}

	hingeBoxes := map[int]bool{
		BoxOf(hinge): true, BoxOf(strongColPartner): true, BoxOf(strongRowPartner): true,
	}
	for box := 0; box < 9; box++ {
		if hingeBoxes[box] {
			continue
		}
		if boxConfinedTo(b, d, box, []int{r0, r1}, []int{c0, c1}) && boxHasCandidate(b, d, box) {
			changed := false
			if b.GetCandidatesAt(strongColPartner).Count() > 1 && b.RemoveCandidate(strongColPartner, d) {
				changed = true
			}
			if b.GetCandidatesAt(strongRowPartner).Count() > 1 && b.RemoveCandidate(strongRowPartner, d) {
				changed = true
			}
			if changed {
				return true
			}
		}
	}
	return false
}

func otherOf(positions []int, exclude int) int {
	for _, idx := range positions {
		if idx != exclude {
			return idx
		}
	}
	return -1
}

func fourDistinctBoxes(a, b, c, d int) bool {
	boxes := map[int]bool{BoxOf(a): true, BoxOf(b): true, BoxOf(c): true, BoxOf(d): true}
	return len(boxes) == 4
}

// boxConfinedTo reports whether every unsolved d-candidate in box lies on
// one of the given rows or one of the given columns.
func boxConfinedTo(b BoardInterface, d, box int, rows, cols []int) bool {
	for _, idx := range BoxIndices[box] {
		if b.GetCell(idx) == 0 && b.GetCandidatesAt(idx).Has(d) {
			if !containsInt(rows, RowOf(idx)) && !containsInt(cols, ColOf(idx)) {
				return false
			}
		}
	}
	return true
}

func containsInt(values []int, v int) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}

func boxHasCandidate(b BoardInterface, d, box int) bool {
	for _, idx := range BoxIndices[box] {
		if b.GetCell(idx) == 0 && b.GetCandidatesAt(idx).Has(d) {
			return true
		}
	}
	return false
}
