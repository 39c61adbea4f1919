// Package primitives defines the parametric solids creature builders compose
// (sphere, capsule, cylinder, box, torus) and a mesh cache that turns them into
// GPU meshes for the preview renderer.
package primitives

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Kind tags the solid variant.
type Kind int

const (
	KindSphere Kind = iota
	KindCapsule
	KindCylinder
	KindBox
	KindTorus
)

// String returns the lowercase kind name.
func (k Kind) String() string {
	switch k {
	case KindSphere:
		return "sphere"
	case KindCapsule:
		return "capsule"
	case KindCylinder:
		return "cylinder"
	case KindBox:
		return "box"
	case KindTorus:
		return "torus"
	}
	return "unknown"
}

// defaultSegments and defaultRings are the tessellation counts a solid carries
// before a LOD pass overrides them (matches the High tier).
const (
	defaultSegments = 32
	defaultRings    = 16
)

// Solid is a parametric primitive. Which fields are meaningful depends on Kind:
// Radius+Height for sphere/capsule, TopRadius/BottomRadius/Height for cylinder,
// Size for box, InnerRadius/OuterRadius for torus. Segments and Rings control
// tessellation for the round kinds.
//
// Spheres must keep Height == 2*Radius or they render squashed; the constructors
// enforce that by deriving Height, so builders can never get it wrong.
type Solid struct {
	Kind         Kind
	Radius       float32
	Height       float32
	TopRadius    float32
	BottomRadius float32
	Size         rl.Vector3
	InnerRadius  float32
	OuterRadius  float32
	Segments     int32
	Rings        int32
}

func mustPositive(name string, v float32) {
	if v <= 0 {
		panic(fmt.Sprintf("primitives: %s must be > 0, got %g", name, v))
	}
}

// Sphere returns a sphere solid. Height is derived as 2*radius.
func Sphere(radius float32) Solid {
	mustPositive("sphere radius", radius)
	return Solid{Kind: KindSphere, Radius: radius, Height: 2 * radius, Segments: defaultSegments, Rings: defaultRings}
}

// Capsule returns a capsule solid. The two hemispherical caps need 2*radius of
// height between them, so height is clamped up to that minimum.
func Capsule(radius, height float32) Solid {
	mustPositive("capsule radius", radius)
	mustPositive("capsule height", height)
	if height < 2*radius {
		height = 2 * radius
	}
	return Solid{Kind: KindCapsule, Radius: radius, Height: height, Segments: defaultSegments, Rings: defaultRings}
}

// Cylinder returns a cylinder (or cone when one radius is near zero) solid.
// One of topRadius/bottomRadius may be zero; both zero is degenerate.
func Cylinder(topRadius, bottomRadius, height float32) Solid {
	if topRadius < 0 || bottomRadius < 0 || topRadius+bottomRadius == 0 {
		panic(fmt.Sprintf("primitives: cylinder radii must be >= 0 and not both zero, got %g/%g", topRadius, bottomRadius))
	}
	mustPositive("cylinder height", height)
	return Solid{Kind: KindCylinder, TopRadius: topRadius, BottomRadius: bottomRadius, Height: height, Segments: defaultSegments, Rings: defaultRings}
}

// Box returns an axis-aligned box solid with the given extents.
func Box(width, height, depth float32) Solid {
	mustPositive("box width", width)
	mustPositive("box height", height)
	mustPositive("box depth", depth)
	return Solid{Kind: KindBox, Size: rl.NewVector3(width, height, depth)}
}

// Torus returns a torus solid. innerRadius is the tube radius, outerRadius the
// ring radius from center to tube center; the tube must fit inside the ring.
func Torus(innerRadius, outerRadius float32) Solid {
	mustPositive("torus inner radius", innerRadius)
	mustPositive("torus outer radius", outerRadius)
	if innerRadius >= outerRadius {
		panic(fmt.Sprintf("primitives: torus inner radius %g must be < outer radius %g", innerRadius, outerRadius))
	}
	return Solid{Kind: KindTorus, InnerRadius: innerRadius, OuterRadius: outerRadius, Segments: defaultSegments, Rings: defaultRings}
}

// Tessellated returns s with the given segment/ring counts. Box ignores
// tessellation; the zero counts it carries are left alone.
func Tessellated(s Solid, segments, rings int32) Solid {
	if s.Kind == KindBox {
		return s
	}
	if segments < 3 || rings < 2 {
		panic(fmt.Sprintf("primitives: tessellation %d/%d too low", segments, rings))
	}
	s.Segments = segments
	s.Rings = rings
	return s
}
