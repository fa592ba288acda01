package human

// ============================================================================
// Chains & coloring (C10)
// ============================================================================
//
// All chain techniques rebuild their link graph fresh on every call; nothing
// is persisted across driver passes.
//
// ============================================================================

const maxChainLinks = 20

// XChainDetect builds the strong/weak link graph for each digit and
// searches for an X-Chain: alternating strong/weak links starting strong;
// once the chain has at least 3 links and the last was strong, any cell
// outside the chain that still carries the digit and peers with both
// endpoints is eliminated.
func XChainDetect(b BoardInterface) bool {
	for d := 1; d <= 9; d++ {
		strongAdj := buildStrongLinks(b, d)
		for start := 0; start < 81; start++ {
			if b.GetCell(start) != 0 || !b.GetCandidatesAt(start).Has(d) {
				continue
			}
			visited := map[int]bool{start: true}
			if xChainDFS(b, d, strongAdj, []int{start}, visited, false) {
				return true
			}
		}
	}
	return false
}

func xChainDFS(b BoardInterface, d int, strongAdj map[int][]int, path []int, visited map[int]bool, lastWasStrong bool) bool {
	if len(path) > maxChainLinks {
		return false
	}
	cur := path[len(path)-1]

	var candidates []int
	if lastWasStrong {
		for _, v := range Peers[cur] {
			if b.GetCell(v) == 0 && b.GetCandidatesAt(v).Has(d) && !visited[v] {
				candidates = append(candidates, v)
			}
		}
	} else {
		for _, v := range strongAdj[cur] {
			if !visited[v] {
				candidates = append(candidates, v)
			}
		}
	}

	for _, next := range candidates {
		isStrongEdge := !lastWasStrong
		newPath := append(append([]int{}, path...), next)

		if len(newPath)-1 >= 3 && isStrongEdge {
			if eliminateChainEnds(b, d, newPath, path[0], next) {
				return true
			}
		}

		visited[next] = true
		if xChainDFS(b, d, strongAdj, newPath, visited, isStrongEdge) {
			return true
		}
		delete(visited, next)
	}
	return false
}

// buildStrongLinks returns, per cell carrying digit d, the cells it shares a
// strong link with: the containing house has exactly two unsolved cells
// still admitting d. Box strong links are only added when the two cells
// share neither a row nor a column (otherwise the row/column pass already
// captured the link).
func buildStrongLinks(b BoardInterface, d int) map[int][]int {
	adj := make(map[int][]int)
	add := func(u, v int) {
		adj[u] = append(adj[u], v)
		adj[v] = append(adj[v], u)
	}

	withD := func(cells []int) []int {
		var out []int
		for _, idx := range cells {
			if b.GetCell(idx) == 0 && b.GetCandidatesAt(idx).Has(d) {
				out = append(out, idx)
			}
		}
		return out
	}

	for _, cells := range RowIndices {
		if c := withD(cells); len(c) == 2 {
			add(c[0], c[1])
		}
	}
	for _, cells := range ColIndices {
		if c := withD(cells); len(c) == 2 {
			add(c[0], c[1])
		}
	}
	for _, cells := range BoxIndices {
		if c := withD(cells); len(c) == 2 && !AreRowPeers(c[0], c[1]) && !AreColPeers(c[0], c[1]) {
			add(c[0], c[1])
		}
	}
	return adj
}

// eliminateChainEnds removes d from every cell outside the chain path that
// still carries d and peers with both chain endpoints.
func eliminateChainEnds(b BoardInterface, d int, path []int, start, end int) bool {
	inPath := make(map[int]bool, len(path))
	for _, idx := range path {
		inPath[idx] = true
	}

	changed := false
	for idx := 0; idx < 81; idx++ {
		if inPath[idx] || b.GetCell(idx) != 0 || !b.GetCandidatesAt(idx).Has(d) {
			continue
		}
		if ArePeers(idx, start) && ArePeers(idx, end) {
			if b.RemoveCandidate(idx, d) {
				changed = true
			}
		}
	}
	return changed
}

// XYChainDetect searches for a chain of bivalue cells joined by external
// weak links on a shared candidate, starting and ending on the same
// candidate x; after at least 3 links, x is eliminated from any cell
// peering with both endpoints.
func XYChainDetect(b BoardInterface) bool {
	for start := 0; start < 81; start++ {
		if b.GetCell(start) != 0 || b.GetCandidatesAt(start).Count() != 2 {
			continue
		}
		pair := b.GetCandidatesAt(start).ToSlice()
		for _, x := range pair {
			carry := pair[0]
			if carry == x {
				carry = pair[1]
			}
			visited := map[int]bool{start: true}
			if xyChainDFS(b, start, x, carry, []int{start}, visited) {
				return true
			}
		}
	}
	return false
}

func xyChainDFS(b BoardInterface, start, x, carryDigit int, path []int, visited map[int]bool) bool {
	if len(path) > maxChainLinks {
		return false
	}
	cur := path[len(path)-1]

	for _, next := range Peers[cur] {
		if visited[next] || b.GetCell(next) != 0 || b.GetCandidatesAt(next).Count() != 2 {
			continue
		}
		nc := b.GetCandidatesAt(next)
		if !nc.Has(carryDigit) {
			continue
		}
		other := nc.Subtract(Candidates(0).Set(carryDigit)).ToSlice()
		if len(other) != 1 {
			continue
		}
		newPath := append(append([]int{}, path...), next)

		if len(newPath) >= 3 && other[0] == x {
			if eliminateChainEnds(b, x, newPath, start, next) {
				return true
			}
		}

		visited[next] = true
		if xyChainDFS(b, start, x, other[0], newPath, visited) {
			return true
		}
		delete(visited, next)
	}
	return false
}

// SingleColoringDetect tests, for each digit and each cell still carrying
// it, whether tentatively placing the digit there leads to a contradiction
// (a house left with neither a placement of the digit nor any remaining
// candidate for it). On contradiction the digit is eliminated from the
// original cell.
func SingleColoringDetect(b BoardInterface) bool {
	for d := 1; d <= 9; d++ {
		for idx := 0; idx < 81; idx++ {
			if b.GetCell(idx) != 0 || !b.GetCandidatesAt(idx).Has(d) {
				continue
			}
			if testColoringHypothesis(b, idx, d) {
				if b.RemoveCandidate(idx, d) {
					return true
				}
			}
		}
	}
	return false
}

func testColoringHypothesis(b BoardInterface, idx, d int) bool {
	clone := b.CloneBoard()
	clone.SetCell(idx, d)

	for {
		if hasColoringContradiction(clone, d) {
			return true
		}
		progressed := false
		for _, house := range Houses {
			placed := false
			count := 0
			candidate := -1
			for _, cidx := range house {
				if clone.GetCell(cidx) == d {
					placed = true
					break
				}
				if clone.GetCell(cidx) == 0 && clone.GetCandidatesAt(cidx).Has(d) {
					count++
					candidate = cidx
				}
			}
			if !placed && count == 1 {
				clone.SetCell(candidate, d)
				progressed = true
			}
		}
		if !progressed {
			break
		}
	}
	return hasColoringContradiction(clone, d)
}

func hasColoringContradiction(b BoardInterface, d int) bool {
	for _, house := range Houses {
		placed := false
		count := 0
		for _, idx := range house {
			if b.GetCell(idx) == d {
				placed = true
				break
			}
			if b.GetCell(idx) == 0 && b.GetCandidatesAt(idx).Has(d) {
				count++
			}
		}
		if !placed && count == 0 {
			return true
		}
	}
	return false
}
