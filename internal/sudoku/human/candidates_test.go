package human

import "testing"

func TestCandidatesSetHasClear(t *testing.T) {
	var c Candidates
	c = c.Set(3).Set(7)

	if !c.Has(3) || !c.Has(7) {
		t.Fatalf("expected 3 and 7 to be set, got %v", c)
	}
	if c.Has(5) {
		t.Fatalf("did not expect 5 to be set, got %v", c)
	}

	c = c.Clear(3)
	if c.Has(3) {
		t.Fatalf("expected 3 to be cleared, got %v", c)
	}
}

func TestCandidatesCountAndOnly(t *testing.T) {
	c := NewCandidates([]int{4})
	if c.Count() != 1 {
		t.Fatalf("expected count 1, got %d", c.Count())
	}
	digit, ok := c.Only()
	if !ok || digit != 4 {
		t.Fatalf("expected Only() = (4, true), got (%d, %v)", digit, ok)
	}

	c = c.Set(5)
	if _, ok := c.Only(); ok {
		t.Fatalf("expected Only() to fail with two candidates")
	}
}

func TestCandidatesSetBoundary(t *testing.T) {
	var c Candidates
	c = c.Set(0).Set(10)
	if !c.IsEmpty() {
		t.Fatalf("expected out-of-range digits to be ignored, got %v", c)
	}
}

func TestAllCandidates(t *testing.T) {
	all := AllCandidates()
	if all.Count() != 9 {
		t.Fatalf("expected 9 candidates, got %d", all.Count())
	}
	for d := 1; d <= 9; d++ {
		if !all.Has(d) {
			t.Fatalf("expected digit %d to be a candidate", d)
		}
	}
}

func TestCandidatesUnionIntersectSubtract(t *testing.T) {
	a := NewCandidates([]int{1, 2, 3})
	bb := NewCandidates([]int{2, 3, 4})

	if u := a.Union(bb); u.Count() != 4 {
		t.Fatalf("expected union of size 4, got %d", u.Count())
	}
	if i := a.Intersect(bb); i.Count() != 2 || !i.Has(2) || !i.Has(3) {
		t.Fatalf("expected intersection {2,3}, got %v", i)
	}
	if s := a.Subtract(bb); s.Count() != 1 || !s.Has(1) {
		t.Fatalf("expected subtract to leave {1}, got %v", s)
	}
}

func TestCandidatesToSliceOrdered(t *testing.T) {
	c := NewCandidates([]int{9, 1, 5})
	got := c.ToSlice()
	want := []int{1, 5, 9}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}
