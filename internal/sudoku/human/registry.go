package human

// ============================================================================
// TechniqueRegistry - Ordered, Enable-Gated Technique List
// ============================================================================
//
// The driver (solver.go) iterates the registry in its declared order; the
// first technique that reports "changed" restarts the pass from the top.
// Order is fixed by spec.md section 4.4's difficulty progression, not by
// where a technique happens to be defined in this package.
//
// ============================================================================

// TechniqueDescriptor holds metadata about a solving technique: its tag, a
// predicate that mutates the board and reports whether it made progress, and
// whether it is currently enabled.
type TechniqueDescriptor struct {
	Tag      Technique
	Detector func(b BoardInterface) bool
	Enabled  bool
}

// TechniqueRegistry holds all available techniques in driver execution order.
type TechniqueRegistry struct {
	order []*TechniqueDescriptor
	byTag map[Technique]*TechniqueDescriptor
}

// NewTechniqueRegistry builds the registry with the default enabled/disabled
// split from spec.md section 4.4.
func NewTechniqueRegistry() *TechniqueRegistry {
	r := &TechniqueRegistry{byTag: make(map[Technique]*TechniqueDescriptor)}

	r.register(BasicElim, BasicElimination, true)
	r.register(NakedSingle, NakedSingleDetect, true)
	r.register(HiddenSingle, HiddenSingleDetect, true)
	r.register(NakedPair, NakedSetDetect(2, NakedPair), true)
	r.register(HiddenPair, HiddenPairDetect, true)
	r.register(NakedTriple, NakedSetDetect(3, NakedTriple), true)
	r.register(HiddenTriple, HiddenSetDetect(3, HiddenTriple), false)
	r.register(NakedQuad, NakedSetDetect(4, NakedQuad), true)
	r.register(HiddenQuad, HiddenSetDetect(4, HiddenQuad), false)
	r.register(PointingPairsTag, PointingPairsDetect, true)
	r.register(BoxLine, BoxLineDetect, true)
	r.register(XWing, FishDetect(2, XWing), true)
	r.register(Swordfish, FishDetect(3, Swordfish), false)
	r.register(Jellyfish, FishDetect(4, Jellyfish), false)
	r.register(YWing, YWingDetect, true)
	r.register(RectangleElim, RectangleEliminationDetect, true)
	r.register(XYZWing, XYZWingDetect, true)
	r.register(XChain, XChainDetect, false)
	r.register(XYChain, XYChainDetect, false)
	r.register(SingleColoring, SingleColoringDetect, false)

	// Declared for counter/registry completeness (spec.md section 3's fixed
	// tag enumeration) but with no registered detector: the original source
	// either stubs these or marks them "not working ?" — see DESIGN.md OQ-2.
	r.declareOnly(ChuteRemotePair)
	r.declareOnly(SimpleColoring)
	r.declareOnly(XCycle)
	r.declareOnly(DiscontinuousNiceLoop)
	r.declareOnly(ContinuousNiceLoop)

	return r
}

func (r *TechniqueRegistry) register(tag Technique, detect func(BoardInterface) bool, enabled bool) {
	d := &TechniqueDescriptor{Tag: tag, Detector: detect, Enabled: enabled}
	r.order = append(r.order, d)
	r.byTag[tag] = d
}

// declareOnly registers a tag with no detector, so counters and
// SetTechniqueEnabled can still reference it without panicking.
func (r *TechniqueRegistry) declareOnly(tag Technique) {
	r.byTag[tag] = &TechniqueDescriptor{Tag: tag, Detector: nil, Enabled: false}
}

// Ordered returns the enabled techniques with a registered detector, in
// driver execution order.
func (r *TechniqueRegistry) Ordered() []*TechniqueDescriptor {
	out := make([]*TechniqueDescriptor, 0, len(r.order))
	for _, d := range r.order {
		if d.Enabled && d.Detector != nil {
			out = append(out, d)
		}
	}
	return out
}

// SetEnabled enables or disables a technique by tag. Returns false if the
// tag is unknown.
func (r *TechniqueRegistry) SetEnabled(tag Technique, enabled bool) bool {
	d, ok := r.byTag[tag]
	if !ok {
		return false
	}
	d.Enabled = enabled
	return true
}

// IsEnabled reports whether a tag is currently enabled.
func (r *TechniqueRegistry) IsEnabled(tag Technique) bool {
	d, ok := r.byTag[tag]
	return ok && d.Enabled
}
