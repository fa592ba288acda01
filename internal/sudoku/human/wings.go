package human

// ============================================================================
// Wings (C8, wing half)
// ============================================================================

// YWingDetect finds a bivalue pivot {a,b} with two bivalue wings {a,c} and
// {b,c}, each peering with the pivot, and removes c from every cell that
// peers with both wings and is distinct from all three cells.
func YWingDetect(b BoardInterface) bool {
	for pivot := 0; pivot < 81; pivot++ {
		if b.GetCell(pivot) != 0 || b.GetCandidatesAt(pivot).Count() != 2 {
			continue
		}
		pair := b.GetCandidatesAt(pivot).ToSlice()
		a, bb := pair[0], pair[1]

		for _, w1 := range Peers[pivot] {
			if b.GetCell(w1) != 0 || b.GetCandidatesAt(w1).Count() != 2 || w1 == pivot {
				continue
			}
			w1c := b.GetCandidatesAt(w1)

			var shared, other, c int
			switch {
			case w1c.Has(a) && !w1c.Has(bb):
				shared, other = a, bb
			case w1c.Has(bb) && !w1c.Has(a):
				shared, other = bb, a
			default:
				continue
			}
			cDigits := w1c.Subtract(Candidates(0).Set(shared)).ToSlice()
			if len(cDigits) != 1 {
				continue
			}
			c = cDigits[0]

			for _, w2 := range Peers[pivot] {
				if w2 == w1 || b.GetCell(w2) != 0 || b.GetCandidatesAt(w2).Count() != 2 {
					continue
				}
				w2c := b.GetCandidatesAt(w2)
				if !w2c.Has(other) || !w2c.Has(c) || w2c.Has(shared) {
					continue
				}

				changed := false
				for idx2 := 0; idx2 < 81; idx2++ {
					if idx2 == pivot || idx2 == w1 || idx2 == w2 {
						continue
					}
					if b.GetCell(idx2) != 0 || !b.GetCandidatesAt(idx2).Has(c) {
						continue
					}
					if ArePeers(idx2, w1) && ArePeers(idx2, w2) {
						if b.RemoveCandidate(idx2, c) {
							changed = true
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

// XYZWingDetect finds a trivalue pivot {a,b,c} with two bivalue wings, one
// sharing {a,c} and the other {b,c}, both peering with the pivot, and
// removes c from every cell peering with the pivot and both wings.
func XYZWingDetect(b BoardInterface) bool {
	for pivot := 0; pivot < 81; pivot++ {
		if b.GetCell(pivot) != 0 || b.GetCandidatesAt(pivot).Count() != 3 {
			continue
		}
		triple := b.GetCandidatesAt(pivot).ToSlice()

		for ci := 0; ci < 3; ci++ {
			c := triple[ci]
			others := make([]int, 0, 2)
			for j := 0; j < 3; j++ {
				if j != ci {
					others = append(others, triple[j])
				}
			}
			p, q := others[0], others[1]

			for _, w1 := range Peers[pivot] {
				if b.GetCell(w1) != 0 || b.GetCandidatesAt(w1).Count() != 2 {
					continue
				}
				w1c := b.GetCandidatesAt(w1)
				if !w1c.Has(p) || !w1c.Has(c) {
					continue
				}

				for _, w2 := range Peers[pivot] {
					if w2 == w1 || b.GetCell(w2) != 0 || b.GetCandidatesAt(w2).Count() != 2 {
						continue
					}
					w2c := b.GetCandidatesAt(w2)
					if !w2c.Has(q) || !w2c.Has(c) {
						continue
					}

					changed := false
					for idx2 := 0; idx2 < 81; idx2++ {
						if idx2 == pivot || idx2 == w1 || idx2 == w2 {
							continue
						}
						if b.GetCell(idx2) != 0 || !b.GetCandidatesAt(idx2).Has(c) {
							continue
						}
						if ArePeers(idx2, pivot) && ArePeers(idx2, w1) && ArePeers(idx2, w2) {
							if b.RemoveCandidate(idx2, c) {
								changed = true
							}
						}
					}
					if changed {
						return true
					}
				}
			}
		}
	}
	return false
}
