package human

import "testing"

func TestRegistryDefaultEnabledSet(t *testing.T) {
	r := NewTechniqueRegistry()

	enabledByDefault := []Technique{
		BasicElim, NakedSingle, HiddenSingle, NakedPair, HiddenPair,
		NakedTriple, NakedQuad, PointingPairsTag, BoxLine, XWing,
		YWing, RectangleElim, XYZWing,
	}
	for _, tag := range enabledByDefault {
		if !r.IsEnabled(tag) {
			t.Fatalf("expected %s to be enabled by default", tag)
		}
	}

	disabledByDefault := []Technique{
		HiddenTriple, HiddenQuad, Swordfish, Jellyfish,
		XChain, XYChain, SingleColoring,
	}
	for _, tag := range disabledByDefault {
		if r.IsEnabled(tag) {
			t.Fatalf("expected %s to be disabled by default", tag)
		}
	}
}

func TestRegistryUndetectedTagsAreNeverOrdered(t *testing.T) {
	r := NewTechniqueRegistry()
	undetected := []Technique{
		ChuteRemotePair, SimpleColoring, XCycle,
		DiscontinuousNiceLoop, ContinuousNiceLoop,
	}
	for _, tag := range undetected {
		r.SetEnabled(tag, true)
	}
	for _, d := range r.Ordered() {
		for _, tag := range undetected {
			if d.Tag == tag {
				t.Fatalf("expected %s to never appear in Ordered(), even when enabled", tag)
			}
		}
	}
}

func TestRegistrySetEnabledUnknownTag(t *testing.T) {
	r := NewTechniqueRegistry()
	if r.SetEnabled(Technique("NOT_A_TAG"), true) {
		t.Fatalf("expected SetEnabled to report false for an unknown tag")
	}
}

func TestRegistryOrderedRespectsDisabling(t *testing.T) {
	r := NewTechniqueRegistry()
	r.SetEnabled(NakedPair, false)
	for _, d := range r.Ordered() {
		if d.Tag == NakedPair {
			t.Fatalf("expected NakedPair to be excluded from Ordered() once disabled")
		}
	}
}
