package creatures

import (
	"monsterforge/internal/anatomy"
	"monsterforge/internal/eyes"
	"monsterforge/internal/lod"
	"monsterforge/internal/logger"
	"monsterforge/internal/palette"
	"monsterforge/internal/primitives"
	"monsterforge/internal/scenegraph"
	"monsterforge/internal/variation"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// HandNodeName is the conventional name of the weapon/item attachment node under
// each arm. Equipment code finds it with limb.Find(HandNodeName).
const HandNodeName = "Hand"

// ctx carries one build's shared state through a builder and its helpers.
// Builders work in unit creature space; the root node carries the size scale.
type ctx struct {
	root   *scenegraph.Node
	lod    lod.Level
	rng    variation.Source
	color  *rl.Color
	log    *logger.Logger
	noDefs bool
	limbs  *Limbs
}

// tess applies the build's LOD tessellation to a solid.
func (c *ctx) tess(s primitives.Solid) primitives.Solid {
	return primitives.Tessellated(s, lod.Segments(c.lod), lod.Rings(c.lod))
}

func (c *ctx) sphere(r float32) primitives.Solid {
	return c.tess(primitives.Sphere(r))
}

func (c *ctx) capsule(r, h float32) primitives.Solid {
	return c.tess(primitives.Capsule(r, h))
}

func (c *ctx) cylinder(top, bottom, h float32) primitives.Solid {
	return c.tess(primitives.Cylinder(top, bottom, h))
}

func (c *ctx) torus(inner, outer float32) primitives.Solid {
	return c.tess(primitives.Torus(inner, outer))
}

// solidAt is the one-line primitive placement every builder leans on.
func (c *ctx) solidAt(parent *scenegraph.Node, name string, s primitives.Solid, x, y, z float32, color rl.Color) *scenegraph.Node {
	return parent.Child(name).WithSolid(s).At(x, y, z).Shaded(color)
}

// joint adds a connector sphere bridging two overlapped primitives (shoulders,
// hips, necks). Joints are set dressing; they are never limb handles.
func (c *ctx) joint(parent *scenegraph.Node, name string, r, x, y, z float32, color rl.Color) *scenegraph.Node {
	return c.solidAt(parent, name, c.sphere(r), x, y, z, color)
}

// headOn places a head sphere above a body so the neck seam is hidden: the head
// center sits at body top + head radius - overlap(neckRadius), with a neck joint
// sphere bridging the gap. Returns the head node and registers it as Limbs.Head.
func (c *ctx) headOn(g anatomy.BodyGeometry, headR, neckR float32, color rl.Color) *scenegraph.Node {
	headY := g.Top() + headR - anatomy.DefaultOverlap(neckR)
	c.joint(c.root, "Neck", neckR, 0, g.Top(), 0, color)
	head := c.solidAt(c.root, "Head", c.sphere(headR), 0, headY, 0, color)
	c.limbs.Head = head
	return head
}

// eyePair adds left/right eye and pupil spheres to a head node using the given
// archetype proportions. Eye placement is in the head's local space; +Z is the
// creature's facing direction.
func (c *ctx) eyePair(head *scenegraph.Node, headR float32, p eyes.Proportions, eyeColor, pupilColor rl.Color) {
	g := eyes.Compute(headR, p, 1)
	for _, side := range []float32{-1, 1} {
		name := "LeftEye"
		if side > 0 {
			name = "RightEye"
		}
		eye := c.solidAt(head, name, c.sphere(g.EyeRadius), side*g.EyeX, g.EyeY, g.EyeZ, eyeColor)
		c.solidAt(eye, "Pupil", c.sphere(g.PupilRadius), 0, 0, g.PupilZ-g.EyeZ, pupilColor)
	}
}

// eyeRow adds n evenly spaced eyes across the head front (arachnid clusters).
func (c *ctx) eyeRow(head *scenegraph.Node, headR float32, n int, eyeColor rl.Color) {
	g := eyes.Compute(headR, eyes.Arachnid, 1)
	if n < 2 {
		n = 2
	}
	span := g.EyeX * 2
	for i := 0; i < n; i++ {
		x := -span/2 + span*float32(i)/float32(n-1)
		r := g.EyeRadius * 0.7
		if i == n/2 || i == n/2-1 {
			r = g.EyeRadius // center pair stays full size
		}
		c.solidAt(head, "Eye", c.sphere(r), x, g.EyeY, g.EyeZ, eyeColor)
	}
}

// arm builds one arm pivoting at the shoulder: a shoulder joint on the torso, an
// arm node at (side*reach, shoulderY) whose capsule hangs downward, and a Hand
// sphere at the tip carrying the named attachment point. side is -1 or +1.
// Registers the node as Limbs.LeftArm/RightArm and returns it.
func (c *ctx) arm(g anatomy.BodyGeometry, side, armR, armLen float32, color rl.Color) *scenegraph.Node {
	reach := g.EffectiveRadius(1) + armR - anatomy.DefaultOverlap(armR)
	c.joint(c.root, "Shoulder", armR*1.3, side*g.EffectiveRadius(1), g.ShoulderY(), 0, color)

	name := "LeftArm"
	if side > 0 {
		name = "RightArm"
	}
	armNode := c.root.Child(name).At(side*reach, g.ShoulderY(), 0)
	c.solidAt(armNode, "UpperArm", c.capsule(armR, armLen), 0, -armLen/2, 0, color)
	c.solidAt(armNode, HandNodeName, c.sphere(armR*1.15), 0, -armLen, 0, color)
	if side > 0 {
		c.limbs.RightArm = armNode
	} else {
		c.limbs.LeftArm = armNode
	}
	return armNode
}

// leg builds one leg pivoting at the hip, mirroring arm. Registers the node as
// Limbs.LeftLeg/RightLeg and returns it.
func (c *ctx) leg(g anatomy.BodyGeometry, side, legR, legLen, stance float32, color rl.Color) *scenegraph.Node {
	c.joint(c.root, "Hip", legR*1.3, side*stance, g.HipY(), 0, color)

	name := "LeftLeg"
	if side > 0 {
		name = "RightLeg"
	}
	legNode := c.root.Child(name).At(side*stance, g.HipY(), 0)
	c.solidAt(legNode, "Thigh", c.capsule(legR, legLen), 0, -legLen/2, 0, color)
	c.solidAt(legNode, "Foot", c.sphere(legR*1.2), 0, -legLen, legR*0.5, color)
	if side > 0 {
		c.limbs.RightLeg = legNode
	} else {
		c.limbs.LeftLeg = legNode
	}
	return legNode
}

// quadLegs builds four stubby legs for a horizontal-bodied creature. Front pair
// registers as arms, back pair as legs, preserving the limb contract for the
// animation layer's gait code.
func (c *ctx) quadLegs(bodyY, halfLen, stance, legR, legLen float32, color rl.Color) {
	for _, fz := range []float32{1, -1} {
		for _, side := range []float32{-1, 1} {
			name := quadLimbName(side, fz)
			legNode := c.root.Child(name).At(side*stance, bodyY, fz*halfLen)
			c.joint(legNode, "LegJoint", legR*1.25, 0, 0, 0, color)
			c.solidAt(legNode, "LegBone", c.capsule(legR, legLen), 0, -legLen/2, 0, color)
			if c.lod.AtLeast(lod.Medium) {
				c.solidAt(legNode, "Paw", c.sphere(legR*1.15), 0, -legLen, legR*0.4, color)
			}
			switch {
			case fz > 0 && side < 0:
				c.limbs.LeftArm = legNode
			case fz > 0 && side > 0:
				c.limbs.RightArm = legNode
			case fz < 0 && side < 0:
				c.limbs.LeftLeg = legNode
			default:
				c.limbs.RightLeg = legNode
			}
		}
	}
}

func quadLimbName(side, fz float32) string {
	switch {
	case fz > 0 && side < 0:
		return "FrontLeftLeg"
	case fz > 0 && side > 0:
		return "FrontRightLeg"
	case fz < 0 && side < 0:
		return "BackLeftLeg"
	default:
		return "BackRightLeg"
	}
}

// weaponAt hangs a simple hafted weapon under an arm's Hand node: a cylinder
// haft plus a head solid. Registers the weapon node as Limbs.Weapon.
func (c *ctx) weaponAt(arm *scenegraph.Node, haftLen, haftR float32, head primitives.Solid, color, headColor rl.Color) *scenegraph.Node {
	hand := arm.Find(HandNodeName)
	if hand == nil {
		hand = arm
	}
	w := hand.Child("Weapon").Rotated(math32.Pi/2, 0, 0)
	c.solidAt(w, "Haft", c.cylinder(haftR, haftR, haftLen), 0, haftLen/2, 0, color)
	c.solidAt(w, "WeaponHead", head, 0, haftLen, 0, headColor)
	c.limbs.Weapon = w
	return w
}

// torchAt hangs a torch under an arm's Hand node: a short haft and an ember
// sphere. Registers the torch node as Limbs.Torch.
func (c *ctx) torchAt(arm *scenegraph.Node, color rl.Color) *scenegraph.Node {
	hand := arm.Find(HandNodeName)
	if hand == nil {
		hand = arm
	}
	t := hand.Child("Torch")
	c.solidAt(t, "Haft", c.cylinder(0.015, 0.015, 0.14), 0, 0.07, 0, rl.NewColor(92, 64, 40, 255))
	c.solidAt(t, "Ember", c.sphere(0.035), 0, 0.16, 0, color)
	c.limbs.Torch = t
	return t
}

// earPair adds pointed ears with independent asymmetric scaling so the pair
// never mirrors exactly.
func (c *ctx) earPair(head *scenegraph.Node, headR, earLen float32, color rl.Color) {
	for _, side := range []float32{-1, 1} {
		name := "LeftEar"
		if side > 0 {
			name = "RightEar"
		}
		stretch := variation.Asymmetry(c.rng)
		ear := c.solidAt(head, name, c.cylinder(0, headR*0.22, earLen), side*headR*0.75, headR*0.55, 0, color)
		ear.Rotated(0, 0, -side*0.5).Scaled(1, stretch, 1)
	}
}

// spikesAlong adds n small cone spikes along the +Y surface of a span on Z.
func (c *ctx) spikesAlong(parent *scenegraph.Node, n int, y, zFrom, zTo, spikeR, spikeLen float32, color rl.Color) {
	for i := 0; i < n; i++ {
		t := float32(i) / float32(maxi(n-1, 1))
		z := zFrom + (zTo-zFrom)*t
		c.solidAt(parent, "Spike", c.cylinder(0, spikeR, spikeLen), 0, y, z, color)
	}
}

func maxi(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// defaultPalettes for builders that share a family look.
var (
	goblinPalette = palette.Palette{
		Skin:   rl.NewColor(96, 160, 72, 255),
		Accent: rl.NewColor(140, 110, 70, 255),
		Eye:    rl.NewColor(250, 240, 200, 255),
		Pupil:  rl.NewColor(30, 30, 30, 255),
		Detail: rl.NewColor(220, 210, 180, 255),
	}
	bonePalette = palette.Palette{
		Skin:   rl.NewColor(222, 214, 190, 255),
		Accent: rl.NewColor(180, 170, 150, 255),
		Eye:    rl.NewColor(255, 80, 40, 255),
		Pupil:  rl.NewColor(20, 10, 10, 255),
		Detail: rl.NewColor(120, 110, 95, 255),
	}
)
