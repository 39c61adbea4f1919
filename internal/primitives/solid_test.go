package primitives

import "testing"

func TestSphereHeightInvariant(t *testing.T) {
	for _, r := range []float32{0.01, 0.24, 1, 7.5} {
		s := Sphere(r)
		if s.Height != 2*r {
			t.Errorf("Sphere(%g).Height = %g, want %g", r, s.Height, 2*r)
		}
	}
}

func TestCapsuleHeightClamp(t *testing.T) {
	tests := []struct {
		name       string
		radius     float32
		height     float32
		wantHeight float32
	}{
		{"tall capsule keeps height", 0.1, 0.5, 0.5},
		{"short capsule clamps to diameter", 0.1, 0.05, 0.2},
		{"exact diameter unchanged", 0.1, 0.2, 0.2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Capsule(tt.radius, tt.height)
			if s.Height != tt.wantHeight {
				t.Errorf("Capsule(%g, %g).Height = %g, want %g", tt.radius, tt.height, s.Height, tt.wantHeight)
			}
		})
	}
}

func TestConstructorPanics(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
	}{
		{"sphere zero radius", func() { Sphere(0) }},
		{"sphere negative radius", func() { Sphere(-1) }},
		{"capsule zero radius", func() { Capsule(0, 1) }},
		{"cylinder both radii zero", func() { Cylinder(0, 0, 1) }},
		{"cylinder negative radius", func() { Cylinder(-0.1, 0.2, 1) }},
		{"cylinder zero height", func() { Cylinder(0.1, 0.1, 0) }},
		{"box zero width", func() { Box(0, 1, 1) }},
		{"torus tube too fat", func() { Torus(0.5, 0.5) }},
		{"torus zero inner", func() { Torus(0, 1) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			tt.fn()
		})
	}
}

func TestConeAllowsOneZeroRadius(t *testing.T) {
	up := Cylinder(0, 0.2, 0.5)
	if up.TopRadius != 0 || up.BottomRadius != 0.2 {
		t.Errorf("upward cone radii = %g/%g", up.TopRadius, up.BottomRadius)
	}
	down := Cylinder(0.2, 0, 0.5)
	if down.TopRadius != 0.2 || down.BottomRadius != 0 {
		t.Errorf("downward cone radii = %g/%g", down.TopRadius, down.BottomRadius)
	}
}

func TestTessellated(t *testing.T) {
	s := Tessellated(Sphere(1), 16, 8)
	if s.Segments != 16 || s.Rings != 8 {
		t.Errorf("Tessellated counts = %d/%d, want 16/8", s.Segments, s.Rings)
	}

	// Box carries no tessellation and passes through untouched.
	b := Tessellated(Box(1, 1, 1), 2, 1)
	if b.Segments != 0 || b.Rings != 0 {
		t.Errorf("box tessellation = %d/%d, want 0/0", b.Segments, b.Rings)
	}

	defer func() {
		if recover() == nil {
			t.Error("expected panic for degenerate tessellation")
		}
	}()
	Tessellated(Sphere(1), 2, 1)
}

func TestDefaultsMatchHighDetail(t *testing.T) {
	s := Sphere(1)
	if s.Segments != 32 || s.Rings != 16 {
		t.Errorf("default tessellation = %d/%d, want 32/16", s.Segments, s.Rings)
	}
}
