package human

// ============================================================================
// Intersection removal (C7)
// ============================================================================

// PointingPairsDetect finds a digit whose candidates within a box are all
// confined to a single row or column, and removes it from that row's or
// column's cells outside the box.
func PointingPairsDetect(b BoardInterface) bool {
	for box := 0; box < 9; box++ {
		for d := 1; d <= 9; d++ {
			var positions []int
			for _, idx := range BoxIndices[box] {
				if b.GetCell(idx) == 0 && b.GetCandidatesAt(idx).Has(d) {
					positions = append(positions, idx)
				}
			}
			if len(positions) < 2 || len(positions) > 3 {
				continue
			}

			sameRow := true
			row := RowOf(positions[0])
			for _, idx := range positions[1:] {
				if RowOf(idx) != row {
					sameRow = false
					break
				}
			}
			if sameRow {
				changed := false
				for _, idx := range RowIndices[row] {
					if BoxOf(idx) == box {
						continue
					}
					if b.GetCell(idx) == 0 && b.RemoveCandidate(idx, d) {
						changed = true
					}
				}
				if changed {
					return true
				}
			}

			sameCol := true
			col := ColOf(positions[0])
			for _, idx := range positions[1:] {
				if ColOf(idx) != col {
					sameCol = false
					break
				}
			}
			if sameCol {
				changed := false
				for _, idx := range ColIndices[col] {
					if BoxOf(idx) == box {
						continue
					}
					if b.GetCell(idx) == 0 && b.RemoveCandidate(idx, d) {
						changed = true
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

// BoxLineDetect finds a digit whose candidates within a row or column are
// all confined to a single box, and removes it from that box's cells
// outside the row/column.
func BoxLineDetect(b BoardInterface) bool {
	for row := 0; row < 9; row++ {
		if detectBoxLineInLine(b, RowIndices[row], BoxOf) {
			return true
		}
	}
	for col := 0; col < 9; col++ {
		if detectBoxLineInLine(b, ColIndices[col], BoxOf) {
			return true
		}
	}
	return false
}

func detectBoxLineInLine(b BoardInterface, line []int, boxOf func(int) int) bool {
	for d := 1; d <= 9; d++ {
		var positions []int
		for _, idx := range line {
			if b.GetCell(idx) == 0 && b.GetCandidatesAt(idx).Has(d) {
				positions = append(positions, idx)
			}
		}
		if len(positions) < 2 || len(positions) > 3 {
			continue
		}

		box := boxOf(positions[0])
		sameBox := true
		for _, idx := range positions[1:] {
			if boxOf(idx) != box {
				sameBox = false
				break
			}
		}
		if !sameBox {
			continue
		}

		lineSet := make(map[int]bool, len(line))
		for _, idx := range line {
			lineSet[idx] = true
		}

		changed := false
		for _, idx := range BoxIndices[box] {
			if lineSet[idx] {
				continue
			}
			if b.GetCell(idx) == 0 && b.RemoveCandidate(idx, d) {
				changed = true
			}
		}
		if changed {
			return true
		}
	}
	return false
}
