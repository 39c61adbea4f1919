// Package eyes maps a head radius to concrete eye and pupil placement through
// named archetype presets. Presets differ mainly in eye size and forward offset:
// bigger, further-forward eyes read better at distance, at the cost of protruding
// past the head surface for the rounder archetypes.
package eyes

// Proportions is a preset of eye-sizing ratios, all relative to head radius.
type Proportions struct {
	EyeRadiusRatio   float32 // eyeball radius / head radius
	PupilRadiusRatio float32 // pupil radius / head radius
	EyeYRatio        float32 // vertical offset above head center / head radius
	EyeXSpacing      float32 // lateral offset from head center / head radius
	EyeZRatio        float32 // forward offset from head center / head radius
}

// The five archetypes. Humanoid is the baseline; Cute pushes eye size up and the
// forward offset down (big shallow-set eyes); Menacing and Beast go smaller and
// deeper-forward; Arachnid is sized for clusters of secondary eyes.
var (
	Humanoid = Proportions{EyeRadiusRatio: 0.19, PupilRadiusRatio: 0.09, EyeYRatio: 0.12, EyeXSpacing: 0.35, EyeZRatio: 0.76}
	Cute     = Proportions{EyeRadiusRatio: 0.24, PupilRadiusRatio: 0.13, EyeYRatio: 0.10, EyeXSpacing: 0.38, EyeZRatio: 0.70}
	Menacing = Proportions{EyeRadiusRatio: 0.17, PupilRadiusRatio: 0.07, EyeYRatio: 0.16, EyeXSpacing: 0.33, EyeZRatio: 0.78}
	Beast    = Proportions{EyeRadiusRatio: 0.15, PupilRadiusRatio: 0.06, EyeYRatio: 0.18, EyeXSpacing: 0.40, EyeZRatio: 0.80}
	Arachnid = Proportions{EyeRadiusRatio: 0.16, PupilRadiusRatio: 0.08, EyeYRatio: 0.14, EyeXSpacing: 0.28, EyeZRatio: 0.75}
)

// pupilProtrusion places the pupil slightly in front of the eyeball surface so it
// stays visible instead of z-fighting with the eye sphere.
const pupilProtrusion = 0.7

// Geometry is the absolute eye placement for one head, in the head's local space.
// EyeX is the magnitude of the lateral offset; builders negate it for the left eye.
type Geometry struct {
	EyeRadius   float32
	PupilRadius float32
	EyeY        float32
	EyeX        float32
	EyeZ        float32
	PupilZ      float32
}

// Compute scales the preset's ratios by headRadius (and an overall size scale) into
// absolute offsets. The forward clamp is one-directional: if the eye center would
// sit behind the head's front pole (EyeZ < EyeRadius), it is pushed out to
// EyeZ == EyeRadius so some eye surface is always visible. Nothing prevents the eye
// from protruding in front of the head; that is intentional stylization.
func Compute(headRadius float32, p Proportions, scale float32) Geometry {
	if scale <= 0 {
		scale = 1
	}
	r := headRadius * scale
	g := Geometry{
		EyeRadius:   r * p.EyeRadiusRatio,
		PupilRadius: r * p.PupilRadiusRatio,
		EyeY:        r * p.EyeYRatio,
		EyeX:        r * p.EyeXSpacing,
		EyeZ:        r * p.EyeZRatio,
	}
	if g.EyeZ < g.EyeRadius {
		g.EyeZ = g.EyeRadius
	}
	g.PupilZ = g.EyeZ + g.EyeRadius*pupilProtrusion
	return g
}
