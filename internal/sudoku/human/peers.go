package human

// Precomputed peer relationships for efficiency
var (
	// Peers contains all peer indices for each cell (row + col + box peers, excluding self)
	Peers [81][]int

	// RowPeers contains peer indices within the same row for each cell
	RowPeers [81][]int

	// ColPeers contains peer indices within the same column for each cell
	ColPeers [81][]int

	// BoxPeers contains peer indices within the same box for each cell
	BoxPeers [81][]int

	// RowIndices maps row number to all cell indices in that row
	RowIndices [9][]int

	// ColIndices maps column number to all cell indices in that column
	ColIndices [9][]int

	// BoxIndices maps box number to all cell indices in that box
	BoxIndices [9][]int

	// Houses collects rows, cols and boxes as one slice of 27 groups, in that
	// order, for techniques that treat all houses uniformly.
	Houses [27][]int
)

func init() {
	initializePeers()
}

// initializePeers precomputes all peer relationships
func initializePeers() {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			idx := r*9 + c
			RowIndices[r] = append(RowIndices[r], idx)
			ColIndices[c] = append(ColIndices[c], idx)

			boxNum := (r/3)*3 + c/3
			BoxIndices[boxNum] = append(BoxIndices[boxNum], idx)
		}
	}

	for r := 0; r < 9; r++ {
		Houses[r] = RowIndices[r]
		Houses[9+r] = ColIndices[r]
		Houses[18+r] = BoxIndices[r]
	}

	for i := 0; i < 81; i++ {
		row, col := i/9, i%9
		boxNum := (row/3)*3 + col/3

		peerSet := make(map[int]bool)

		for _, idx := range RowIndices[row] {
			if idx != i {
				RowPeers[i] = append(RowPeers[i], idx)
				peerSet[idx] = true
			}
		}

		for _, idx := range ColIndices[col] {
			if idx != i {
				ColPeers[i] = append(ColPeers[i], idx)
				peerSet[idx] = true
			}
		}

		for _, idx := range BoxIndices[boxNum] {
			if idx != i {
				BoxPeers[i] = append(BoxPeers[i], idx)
				peerSet[idx] = true
			}
		}

		for peerIdx := range peerSet {
			Peers[i] = append(Peers[i], peerIdx)
		}
	}
}

// Cell coordinate helpers

// RowOf returns the row number (0-8) for a cell index
func RowOf(idx int) int {
	return idx / 9
}

// ColOf returns the column number (0-8) for a cell index
func ColOf(idx int) int {
	return idx % 9
}

// BoxOf returns the box number (0-8) for a cell index
func BoxOf(idx int) int {
	row, col := idx/9, idx%9
	return (row/3)*3 + col/3
}

// IndexOf returns the cell index for given row and column
func IndexOf(row, col int) int {
	return row*9 + col
}

// Peer relationship checks

// AreRowPeers returns true if two cells are in the same row
func AreRowPeers(idx1, idx2 int) bool {
	return RowOf(idx1) == RowOf(idx2)
}

// AreColPeers returns true if two cells are in the same column
func AreColPeers(idx1, idx2 int) bool {
	return ColOf(idx1) == ColOf(idx2)
}

// AreBoxPeers returns true if two cells are in the same box
func AreBoxPeers(idx1, idx2 int) bool {
	return BoxOf(idx1) == BoxOf(idx2)
}

// ArePeers returns true if two cells can see each other (same row, col, or
// box) and are not the same cell. This is the can_see predicate.
func ArePeers(idx1, idx2 int) bool {
	if idx1 == idx2 {
		return false
	}
	return AreRowPeers(idx1, idx2) || AreColPeers(idx1, idx2) || AreBoxPeers(idx1, idx2)
}

// ForEachPeer calls fn for each peer of idx (row + col + box peers)
func ForEachPeer(idx int, fn func(peerIdx int)) {
	for _, peerIdx := range Peers[idx] {
		fn(peerIdx)
	}
}

// ForEachHouse calls fn for each of the 27 houses (rows, then cols, then
// boxes), passing its nine cell indices.
func ForEachHouse(fn func(cells []int)) {
	for _, h := range Houses {
		fn(h)
	}
}
