package variation

import "testing"

func TestSeededReproducible(t *testing.T) {
	a := NewSeeded(99)
	b := NewSeeded(99)
	for i := 0; i < 100; i++ {
		if av, bv := a.Float(), b.Float(); av != bv {
			t.Fatalf("draw %d diverged: %g vs %g", i, av, bv)
		}
	}
}

func TestRangeBounds(t *testing.T) {
	src := NewSeeded(1)
	for i := 0; i < 1000; i++ {
		v := Range(src, -2, 3)
		if v < -2 || v > 3 {
			t.Fatalf("Range out of bounds: %g", v)
		}
	}
}

func TestJitterBounds(t *testing.T) {
	src := NewSeeded(2)
	for i := 0; i < 1000; i++ {
		v := Jitter(src, 10, 0.1)
		if v < 9 || v > 11 {
			t.Fatalf("Jitter(10, 0.1) out of bounds: %g", v)
		}
	}
}

func TestAsymmetryAndSizeMulBounds(t *testing.T) {
	src := NewSeeded(3)
	for i := 0; i < 1000; i++ {
		if v := Asymmetry(src); v < 0.9 || v > 1.1 {
			t.Fatalf("Asymmetry out of bounds: %g", v)
		}
		if v := SizeMul(src); v < 0.85 || v > 1.5 {
			t.Fatalf("SizeMul out of bounds: %g", v)
		}
	}
}

func TestChanceExtremes(t *testing.T) {
	src := NewSeeded(4)
	for i := 0; i < 100; i++ {
		if Chance(src, 0) {
			t.Fatal("Chance(0) must never hit")
		}
		if !Chance(src, 1) {
			t.Fatal("Chance(1) must always hit")
		}
	}
}
