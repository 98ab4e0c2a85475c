package vecmap

import "testing"

func TestOccupied_MarkAndCheck(t *testing.T) {
	o := NewOccupied(100, 100, 0)

	box := R(10, 10, 20, 20)
	if o.Check(box) {
		t.Fatal("fresh tracker reports occupied")
	}

	o.Mark(box)
	if !o.Check(box) {
		t.Fatal("marked region not occupied")
	}
	if !o.Check(R(15, 15, 30, 30)) {
		t.Error("partially overlapping region not occupied")
	}
	if o.Check(R(50, 50, 60, 60)) {
		t.Error("disjoint region occupied")
	}
}

func TestOccupied_Monotonic(t *testing.T) {
	o := NewOccupied(100, 100, 0)
	box := R(10, 10, 20, 20)
	o.Mark(box)

	// Later marks with disjoint regions must not release earlier ones.
	o.Mark(R(40, 40, 50, 50))
	o.Mark(R(70, 70, 80, 80))
	if !o.Check(box) {
		t.Error("region released by later disjoint marks")
	}
}

func TestOccupied_OverlapTolerance(t *testing.T) {
	o := NewOccupied(100, 100, 3)
	o.Mark(R(10, 10, 20, 20))

	// The marked footprint shrinks by the tolerance on every side, so
	// a probe riding the original edge finds free space.
	if o.Check(R(8, 8, 12, 12)) {
		t.Error("edge region occupied despite tolerance")
	}
	if !o.Check(R(14, 14, 16, 16)) {
		t.Error("center region not occupied")
	}
}

func TestOccupied_NilPermitsEverything(t *testing.T) {
	var o *Occupied
	if o.Check(R(0, 0, 1000, 1000)) {
		t.Error("nil tracker reports occupied")
	}
	o.Mark(R(0, 0, 1000, 1000)) // must not panic
	if o.Check(R(0, 0, 1000, 1000)) {
		t.Error("nil tracker retained a mark")
	}
}

func TestOccupied_OffCanvasClipped(t *testing.T) {
	o := NewOccupied(50, 50, 0)
	o.Mark(R(-10, -10, 5, 5))
	if !o.Check(R(0, 0, 2, 2)) {
		t.Error("on-canvas part of mark lost")
	}
	if o.Check(R(-100, -100, -50, -50)) {
		t.Error("fully off-canvas region occupied")
	}
}
