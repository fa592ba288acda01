package human

// ============================================================================
// BoardInterface - Abstract Board Operations for Techniques
// ============================================================================
//
// BoardInterface defines the operations that solving techniques need from a
// board. This decouples techniques from the concrete Board implementation,
// enabling:
// - Better testability (mock boards)
// - Clear contract for what techniques actually need
//
// ============================================================================

// BoardInterface defines the board operations needed by solving techniques.
// Every technique expresses its effect exclusively through SetCell and
// RemoveCandidate; these two methods are the only write paths into the
// engine's state.
type BoardInterface interface {
	// Cell state queries
	GetCell(idx int) int                // Returns 0 for empty, 1-9 for filled
	GetCandidatesAt(idx int) Candidates // Returns candidate bitmask for cell

	// Mutation — the only write paths
	SetCell(idx, digit int)
	RemoveCandidate(idx, digit int) bool

	// CloneBoard returns a deep copy, used by techniques that must simulate
	// a hypothesis (single-digit coloring) without touching the real state.
	CloneBoard() BoardInterface
}

// Compile-time check that Board implements BoardInterface
var _ BoardInterface = (*Board)(nil)
