package eyes

import "testing"

const eps = 1e-5

func close(a, b float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < eps
}

func TestComputeHumanoid(t *testing.T) {
	// Goblin head: radius 0.21 with the baseline humanoid preset.
	g := Compute(0.21, Humanoid, 1)
	if !close(g.EyeRadius, 0.0399) {
		t.Errorf("EyeRadius = %g, want 0.0399", g.EyeRadius)
	}
	if !close(g.PupilRadius, 0.0189) {
		t.Errorf("PupilRadius = %g, want 0.0189", g.PupilRadius)
	}
	if !close(g.EyeZ, 0.1596) {
		t.Errorf("EyeZ = %g, want 0.1596", g.EyeZ)
	}
	if !close(g.EyeX, 0.0735) {
		t.Errorf("EyeX = %g, want 0.0735", g.EyeX)
	}
	if !close(g.PupilZ, g.EyeZ+g.EyeRadius*0.7) {
		t.Errorf("PupilZ = %g, want eye front %g", g.PupilZ, g.EyeZ+g.EyeRadius*0.7)
	}
}

func TestComputeClamp(t *testing.T) {
	// A preset whose forward ratio is below its size ratio must be pushed out to
	// the eye radius; one above must be left alone.
	tests := []struct {
		name    string
		p       Proportions
		clamped bool
	}{
		{"sunken eye clamps", Proportions{EyeRadiusRatio: 0.5, EyeZRatio: 0.2}, true},
		{"normal eye untouched", Proportions{EyeRadiusRatio: 0.2, EyeZRatio: 0.7}, false},
		{"boundary exact", Proportions{EyeRadiusRatio: 0.3, EyeZRatio: 0.3}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := Compute(1, tt.p, 1)
			if tt.clamped {
				if !close(g.EyeZ, g.EyeRadius) {
					t.Errorf("EyeZ = %g, want clamped to EyeRadius %g", g.EyeZ, g.EyeRadius)
				}
			} else if !close(g.EyeZ, tt.p.EyeZRatio) {
				t.Errorf("EyeZ = %g, want unclamped %g", g.EyeZ, tt.p.EyeZRatio)
			}
		})
	}
}

func TestComputePresetsVisible(t *testing.T) {
	// Every shipped preset must keep the eye at or in front of the head pole at
	// any head size.
	presets := map[string]Proportions{
		"humanoid": Humanoid,
		"cute":     Cute,
		"menacing": Menacing,
		"beast":    Beast,
		"arachnid": Arachnid,
	}
	for name, p := range presets {
		t.Run(name, func(t *testing.T) {
			for _, headR := range []float32{0.05, 0.21, 1.4} {
				g := Compute(headR, p, 1)
				if g.EyeZ < g.EyeRadius-eps {
					t.Errorf("headR %g: EyeZ %g < EyeRadius %g", headR, g.EyeZ, g.EyeRadius)
				}
				if g.PupilZ <= g.EyeZ {
					t.Errorf("headR %g: pupil %g must sit in front of eye center %g", headR, g.PupilZ, g.EyeZ)
				}
				if g.PupilRadius >= g.EyeRadius {
					t.Errorf("headR %g: pupil radius %g must be smaller than eye %g", headR, g.PupilRadius, g.EyeRadius)
				}
			}
		})
	}
}

func TestComputeScale(t *testing.T) {
	base := Compute(0.2, Humanoid, 1)
	doubled := Compute(0.2, Humanoid, 2)
	if !close(doubled.EyeRadius, base.EyeRadius*2) {
		t.Errorf("scale 2 EyeRadius = %g, want %g", doubled.EyeRadius, base.EyeRadius*2)
	}
	// Non-positive scale falls back to 1.
	fallback := Compute(0.2, Humanoid, -3)
	if !close(fallback.EyeRadius, base.EyeRadius) {
		t.Errorf("negative scale EyeRadius = %g, want %g", fallback.EyeRadius, base.EyeRadius)
	}
}
