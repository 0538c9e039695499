package ballz

import "testing"

func TestXorShiftKnownSequence(t *testing.T) {
	// First two outputs for seed 1, computed by hand from the 13/17/5
	// shift triple.
	r := NewXorShift(1)

	if got := r.Uint32(); got != 270369 {
		t.Errorf("First output for seed 1: got %d, want 270369", got)
	}
	if got := r.Uint32(); got != 67634689 {
		t.Errorf("Second output for seed 1: got %d, want 67634689", got)
	}
}

func TestXorShiftZeroSeed(t *testing.T) {
	// Zero is a fixed point of xorshift, so seed 0 must behave as seed 1.
	r0 := NewXorShift(0)
	r1 := NewXorShift(1)

	for i := 0; i < 100; i++ {
		if v0, v1 := r0.Uint32(), r1.Uint32(); v0 != v1 {
			t.Fatalf("Seed 0 diverged from seed 1 at draw %d: %d vs %d", i, v0, v1)
		}
	}
}

func TestXorShiftFloatRange(t *testing.T) {
	r := NewXorShift(42)

	for i := 0; i < 10000; i++ {
		v := r.Float()
		if v < 0 || v >= 1 {
			t.Fatalf("Float out of [0,1) at draw %d: %v", i, v)
		}
	}
}

func TestXorShiftDeterminism(t *testing.T) {
	a := NewXorShift(12345)
	b := NewXorShift(12345)

	for i := 0; i < 1000; i++ {
		if va, vb := a.Uint32(), b.Uint32(); va != vb {
			t.Fatalf("Same-seed generators diverged at draw %d: %d vs %d", i, va, vb)
		}
	}
}

func TestXorShiftIntnBounds(t *testing.T) {
	r := NewXorShift(7)

	for i := 0; i < 10000; i++ {
		v := r.Intn(7)
		if v < 0 || v >= 7 {
			t.Fatalf("Intn(7) out of range at draw %d: %d", i, v)
		}
	}

	if got := r.Intn(0); got != 0 {
		t.Errorf("Intn(0): got %d, want 0", got)
	}
	if got := r.Intn(-3); got != 0 {
		t.Errorf("Intn(-3): got %d, want 0", got)
	}
}

func TestXorShiftStreamIndependence(t *testing.T) {
	// The placement and fx streams use adjacent seeds; draining one must
	// not affect the other.
	placement := NewXorShift(100)
	fx := NewXorShift(101)

	reference := NewXorShift(100)
	for i := 0; i < 50; i++ {
		fx.Uint32()
	}
	for i := 0; i < 100; i++ {
		if vp, vr := placement.Uint32(), reference.Uint32(); vp != vr {
			t.Fatalf("Placement stream perturbed by fx draws at %d: %d vs %d", i, vp, vr)
		}
	}
}
