package primitives

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestMeshKeyCylinderTaper(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Solid
		sameMesh bool
	}{
		{"straight cylinders share", Cylinder(0.3, 0.3, 1), Cylinder(0.1, 0.1, 2), true},
		{"taper differs from straight", Cylinder(0.1, 0.3, 1), Cylinder(0.3, 0.3, 1), false},
		{"different ratios differ", Cylinder(0.1, 0.3, 1), Cylinder(0.2, 0.3, 1), false},
		{"same ratio shares", Cylinder(0.1, 0.3, 1), Cylinder(0.2, 0.6, 2), true},
		{"cone differs from taper", Cylinder(0, 0.3, 1), Cylinder(0.1, 0.3, 1), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ka, kb := meshKey(tt.a), meshKey(tt.b)
			if (ka == kb) != tt.sameMesh {
				t.Errorf("meshKey(%+v) = %q, meshKey(%+v) = %q, want same=%v", tt.a, ka, tt.b, kb, tt.sameMesh)
			}
		})
	}
}

func TestFrustumGeometry(t *testing.T) {
	const (
		bottomR  = float32(0.5)
		topR     = float32(0.25)
		segments = int32(8)
	)
	verts, norms, uvs := frustumGeometry(bottomR, topR, segments)

	wantTri := 4 * int(segments)
	if len(verts) != wantTri*9 {
		t.Fatalf("vertex floats = %d, want %d", len(verts), wantTri*9)
	}
	if len(norms) != len(verts) {
		t.Fatalf("normal floats = %d, want %d", len(norms), len(verts))
	}
	if len(uvs) != wantTri*6 {
		t.Fatalf("uv floats = %d, want %d", len(uvs), wantTri*6)
	}

	const eps = 1e-5
	for i := 0; i < len(verts); i += 3 {
		x, y, z := verts[i], verts[i+1], verts[i+2]
		r := math32.Sqrt(x*x + z*z)
		switch y {
		case 0:
			if r > eps && math32.Abs(r-bottomR) > eps {
				t.Fatalf("vertex %d: bottom ring radius %g, want 0 or %g", i/3, r, bottomR)
			}
		case 1:
			if r > eps && math32.Abs(r-topR) > eps {
				t.Fatalf("vertex %d: top ring radius %g, want 0 or %g", i/3, r, topR)
			}
		default:
			t.Fatalf("vertex %d: y = %g, want 0 or 1", i/3, y)
		}

		nx, ny, nz := norms[i], norms[i+1], norms[i+2]
		if l := math32.Sqrt(nx*nx + ny*ny + nz*nz); math32.Abs(l-1) > eps {
			t.Fatalf("vertex %d: normal length %g", i/3, l)
		}
		if math32.Abs(ny) < 1-eps && ny <= 0 {
			// Bottom ring is wider, so side normals must tilt upward.
			t.Fatalf("vertex %d: side normal y = %g, want > 0", i/3, ny)
		}
	}

	// The first side triangle must wind counter-clockwise around its outward
	// normal so backface culling keeps the outside visible.
	e1 := [3]float32{verts[3] - verts[0], verts[4] - verts[1], verts[5] - verts[2]}
	e2 := [3]float32{verts[6] - verts[0], verts[7] - verts[1], verts[8] - verts[2]}
	cross := [3]float32{
		e1[1]*e2[2] - e1[2]*e2[1],
		e1[2]*e2[0] - e1[0]*e2[2],
		e1[0]*e2[1] - e1[1]*e2[0],
	}
	if dot := cross[0]*norms[0] + cross[1]*norms[1] + cross[2]*norms[2]; dot <= 0 {
		t.Errorf("first side triangle winds away from its normal (dot %g)", dot)
	}
}
