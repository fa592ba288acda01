package human

// Technique names a solving technique by a fixed tag, mirroring the
// tech_names table of the original engine this package descends from: a
// constant array indexed by tag, never mutated at runtime.
type Technique string

const (
	BasicElim             Technique = "BASIC_ELIM"
	NakedSingle           Technique = "NAKED_SINGLE"
	HiddenSingle          Technique = "HIDDEN_SINGLE"
	NakedPair             Technique = "NAKED_PAIR"
	HiddenPair            Technique = "HIDDEN_PAIR"
	NakedTriple           Technique = "NAKED_TRIPLE"
	HiddenTriple          Technique = "HIDDEN_TRIPLE"
	NakedQuad             Technique = "NAKED_QUAD"
	HiddenQuad            Technique = "HIDDEN_QUAD"
	PointingPairsTag      Technique = "POINTING_PAIRS"
	BoxLine               Technique = "BOX_LINE"
	XWing                 Technique = "X_WING"
	ChuteRemotePair       Technique = "CHUTE_REMOTE_PAIR"
	Swordfish             Technique = "SWORDFISH"
	YWing                 Technique = "Y_WING"
	RectangleElim         Technique = "RECTANGLE_ELIM"
	XYZWing               Technique = "XYZ_WING"
	Jellyfish             Technique = "JELLYFISH"
	SimpleColoring        Technique = "SIMPLE_COLORING"
	XCycle                Technique = "X_CYCLE"
	SingleColoring        Technique = "SINGLE_COLORING"
	XChain                Technique = "X_CHAIN"
	XYChain               Technique = "XY_CHAIN"
	DiscontinuousNiceLoop Technique = "DISCONTINUOUS_NICE_LOOP"
	ContinuousNiceLoop    Technique = "CONTINUOUS_NICE_LOOP"
)

// TechniqueNames is the display-name table, indexed by tag. Carried over
// from the original engine's global tech_names array.
var TechniqueNames = map[Technique]string{
	BasicElim:             "Basic Elimination",
	NakedSingle:           "Naked Single",
	HiddenSingle:          "Hidden Single",
	NakedPair:             "Naked Pair",
	HiddenPair:            "Hidden Pair",
	NakedTriple:           "Naked Triple",
	HiddenTriple:          "Hidden Triple",
	NakedQuad:             "Naked Quad",
	HiddenQuad:            "Hidden Quad",
	PointingPairsTag:      "Pointing Pairs",
	BoxLine:               "Box-Line Reduction",
	XWing:                 "X-Wing",
	ChuteRemotePair:       "Chute Remote Pairs",
	Swordfish:             "Swordfish",
	YWing:                 "Y-Wing",
	RectangleElim:         "Rectangle Elimination",
	XYZWing:               "XYZ-Wing",
	Jellyfish:             "Jellyfish",
	SimpleColoring:        "Simple Coloring",
	XCycle:                "X-Cycles",
	SingleColoring:        "Single-Digit Coloring",
	XChain:                "X-Chain",
	XYChain:               "XY-Chain",
	DiscontinuousNiceLoop: "Discontinuous Nice Loop",
	ContinuousNiceLoop:    "Continuous Nice Loop",
}

// AllTechniques lists every tag in the fixed enumeration, in the same order
// TechniqueNames/tech_names historically listed them. Used by the
// single-puzzle CLI to print its usage counts in a stable order.
var AllTechniques = []Technique{
	BasicElim, NakedSingle, HiddenSingle,
	NakedPair, HiddenPair, NakedTriple, HiddenTriple, NakedQuad, HiddenQuad,
	PointingPairsTag, BoxLine,
	XWing, ChuteRemotePair, Swordfish, YWing, RectangleElim, XYZWing, Jellyfish,
	SimpleColoring, XCycle, SingleColoring, XChain, XYChain,
	DiscontinuousNiceLoop, ContinuousNiceLoop,
}
