// Package anatomy holds the body-proportion math shared by every creature builder:
// attachment-point derivation from a torso primitive's dimensions, and the overlap
// distance that lets adjacent primitives interpenetrate instead of showing a seam.
package anatomy

// shoulderRatio and hipRatio place the arm and leg attachment heights at ±30% of the
// torso's scaled height, measured from its center.
const (
	shoulderRatio = 0.3
	hipRatio      = 0.3
)

// DefaultOverlapFraction is the standard interpenetration fraction between two
// adjacent primitives (head/neck, torso/head, spine segments). 15–25% of the smaller
// connecting dimension hides the seam; 20% is the house value.
const DefaultOverlapFraction = 0.2

// BodyGeometry derives attachment coordinates from a torso primitive's center,
// radius, height, and vertical scale. It is computed once per builder invocation
// and never stored; all fields are set at construction.
type BodyGeometry struct {
	CenterY float32
	Radius  float32
	Height  float32
	ScaleY  float32
}

// Compute returns the BodyGeometry for a primitive centered at centerY with the
// given radius, height, and vertical scale. Pass scaleY 1 for unscaled bodies.
func Compute(centerY, radius, height, scaleY float32) BodyGeometry {
	return BodyGeometry{CenterY: centerY, Radius: radius, Height: height, ScaleY: scaleY}
}

// Top returns the Y of the primitive's upper surface.
func (g BodyGeometry) Top() float32 {
	return g.CenterY + g.Height*g.ScaleY/2
}

// Bottom returns the Y of the primitive's lower surface.
func (g BodyGeometry) Bottom() float32 {
	return g.CenterY - g.Height*g.ScaleY/2
}

// ShoulderY returns the arm attachment height, 30% of the scaled height above center.
func (g BodyGeometry) ShoulderY() float32 {
	return g.CenterY + g.Height*g.ScaleY*shoulderRatio
}

// HipY returns the leg attachment height, 30% of the scaled height below center.
func (g BodyGeometry) HipY() float32 {
	return g.CenterY - g.Height*g.ScaleY*hipRatio
}

// EffectiveRadius returns the horizontal reach of the body under a lateral scale,
// used to place shoulder and hip joints just outside the torso surface.
func (g BodyGeometry) EffectiveRadius(scaleX float32) float32 {
	return g.Radius * scaleX
}

// Overlap returns how far two adjacent primitives must be pushed into each other to
// avoid a visible gap in the silhouette: smallerDim * fraction. Callers pass the
// smaller of the two connecting dimensions (typically the neck or joint radius).
// Linear in both arguments; Overlap(d, 0) == 0 and Overlap(d, 1) == d.
func Overlap(smallerDim, fraction float32) float32 {
	return smallerDim * fraction
}

// DefaultOverlap returns Overlap with the standard 20% fraction.
func DefaultOverlap(smallerDim float32) float32 {
	return Overlap(smallerDim, DefaultOverlapFraction)
}
