package creatures

import (
	"monsterforge/internal/anatomy"
	"monsterforge/internal/eyes"
	"monsterforge/internal/lod"
	"monsterforge/internal/palette"
	"monsterforge/internal/primitives"
	"monsterforge/internal/scenegraph"
	"monsterforge/internal/variation"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// tailChain appends a chain of shrinking sphere segments behind a body, each
// overlapped into the previous so the tail silhouette is continuous. Segments
// nest, so the whole tail swings from the returned pivot node.
func (c *ctx) tailChain(fromY, fromZ, baseR float32, segments int, droop float32, color rl.Color) *scenegraph.Node {
	tail := c.root.Child("Tail").At(0, fromY, fromZ)
	parent := tail
	r := baseR
	for i := 0; i < segments; i++ {
		step := 2*r - anatomy.DefaultOverlap(r)
		parent = c.solidAt(parent, "TailSeg", c.sphere(r), 0, -droop, -step, color)
		r *= 0.78
	}
	return tail
}

// Dungeon rat: low capsule body on four stub legs, cone snout, bead eyes, and a
// long bald tail.
func buildDungeonRat(c *ctx) {
	base := palette.Palette{
		Skin:   rl.NewColor(120, 105, 95, 255),
		Accent: rl.NewColor(190, 150, 150, 255),
		Eye:    rl.NewColor(20, 16, 16, 255),
		Pupil:  rl.NewColor(0, 0, 0, 255),
		Detail: rl.NewColor(230, 225, 215, 255),
	}
	pal := c.resolvePalette("dungeon_rat", base)

	bodyR := variation.Jitter(c.rng, 0.13, 0.1)
	bodyLen := bodyR * 2.6
	bodyY := float32(0.16)
	body := c.solidAt(c.root, "Body", c.capsule(bodyR, bodyLen), 0, bodyY, 0, pal.Skin)
	body.Rotated(math32.Pi/2, 0, 0) // capsule axis along Z

	headR := bodyR * 0.72
	headZ := bodyLen/2 + headR - anatomy.DefaultOverlap(headR)
	head := c.solidAt(c.root, "Head", c.sphere(headR), 0, bodyY+headR*0.25, headZ, pal.Skin)
	c.limbs.Head = head
	c.solidAt(head, "Snout", c.cylinder(0, headR*0.55, headR*1.1), 0, -headR*0.1, headR*0.9, pal.Accent).
		Rotated(math32.Pi/2, 0, 0)
	c.eyePair(head, headR, eyes.Beast, pal.Eye, pal.Pupil)
	c.earPair(head, headR, headR*0.4, pal.Accent)
	if c.lod.AtLeast(lod.High) {
		for _, side := range []float32{-1, 1} {
			c.solidAt(head, "Whisker", c.cylinder(0.003, 0.003, headR*1.2),
				side*headR*0.5, -headR*0.15, headR*0.85, pal.Detail).Rotated(0, 0, side*math32.Pi/2.2)
		}
	}

	c.quadLegs(bodyY-bodyR*0.4, bodyLen*0.32, bodyR*0.8, bodyR*0.22, bodyR*0.7, pal.Skin)
	c.tailChain(bodyY, -bodyLen/2, bodyR*0.35, 4, 0.01, pal.Accent)
}

// Wolf: bigger quadruped with a boxy muzzle, mane wedge over the shoulders, and
// an upswept tail.
func buildWolf(c *ctx) {
	base := palette.Palette{
		Skin:   rl.NewColor(105, 100, 95, 255),
		Accent: rl.NewColor(70, 65, 62, 255),
		Eye:    rl.NewColor(235, 180, 60, 255),
		Pupil:  rl.NewColor(15, 12, 10, 255),
		Detail: rl.NewColor(235, 230, 220, 255),
	}
	pal := c.resolvePalette("wolf", base)

	bodyR := float32(0.2)
	bodyLen := float32(0.62)
	bodyY := float32(0.42)
	c.solidAt(c.root, "Body", c.capsule(bodyR, bodyLen), 0, bodyY, 0, pal.Skin).Rotated(math32.Pi/2, 0, 0)
	c.solidAt(c.root, "Mane", c.sphere(bodyR*1.15), 0, bodyY+bodyR*0.2, bodyLen*0.22, pal.Accent).Scaled(1, 0.9, 0.8)

	headR := float32(0.13)
	head := c.solidAt(c.root, "Head", c.sphere(headR), 0, bodyY+bodyR*0.55, bodyLen/2+headR-anatomy.DefaultOverlap(headR), pal.Skin)
	c.limbs.Head = head
	c.solidAt(head, "Muzzle", primitives.Box(headR*0.8, headR*0.6, headR*1.2), 0, -headR*0.2, headR*0.95, pal.Skin)
	c.eyePair(head, headR, eyes.Beast, pal.Eye, pal.Pupil)
	c.earPair(head, headR, headR*0.5, pal.Skin)
	if c.lod.AtLeast(lod.High) {
		for _, side := range []float32{-1, 1} {
			c.solidAt(head, "Fang", c.cylinder(0, headR*0.07, headR*0.18),
				side*headR*0.28, -headR*0.5, headR*1.2, pal.Detail).Rotated(math32.Pi, 0, 0)
		}
	}

	c.quadLegs(bodyY-bodyR*0.5, bodyLen*0.34, bodyR*0.75, 0.05, 0.3, pal.Skin)
	c.tailChain(bodyY+bodyR*0.3, -bodyLen/2, 0.06, 4, -0.015, pal.Accent)
}

// Lizard: low-slung body, long tapering tail, crest spikes along the spine at
// Medium and above.
func buildLizard(c *ctx) {
	base := palette.Palette{
		Skin:   rl.NewColor(80, 140, 70, 255),
		Accent: rl.NewColor(160, 180, 80, 255),
		Eye:    rl.NewColor(250, 210, 70, 255),
		Pupil:  rl.NewColor(20, 25, 10, 255),
		Detail: rl.NewColor(60, 100, 55, 255),
	}
	pal := c.resolvePalette("lizard", base)

	bodyR := float32(0.16)
	bodyLen := float32(0.56)
	bodyY := float32(0.2)
	c.solidAt(c.root, "Body", c.capsule(bodyR, bodyLen), 0, bodyY, 0, pal.Skin).
		Rotated(math32.Pi/2, 0, 0).Scaled(1.1, 0.85, 1)
	c.solidAt(c.root, "Throat", c.sphere(bodyR*0.6), 0, bodyY-bodyR*0.25, bodyLen*0.38, pal.Accent)

	headR := float32(0.11)
	head := c.solidAt(c.root, "Head", c.sphere(headR), 0, bodyY+bodyR*0.2, bodyLen/2+headR-anatomy.DefaultOverlap(headR), pal.Skin)
	head.Scaled(0.95, 0.8, 1.25)
	c.limbs.Head = head
	c.eyePair(head, headR, eyes.Beast, pal.Eye, pal.Pupil)
	if c.lod.AtLeast(lod.High) {
		for _, side := range []float32{-1, 1} {
			c.solidAt(head, "Nostril", c.sphere(headR*0.09), side*headR*0.3, headR*0.1, headR*1.05, pal.Detail)
		}
	}

	c.quadLegs(bodyY-bodyR*0.3, bodyLen*0.33, bodyR*0.95, 0.035, 0.13, pal.Skin)
	c.tailChain(bodyY, -bodyLen/2, bodyR*0.7, 5, 0.008, pal.Skin)

	if c.lod.AtLeast(lod.Medium) {
		c.spikesAlong(c.root, 5, bodyY+bodyR*0.8, bodyLen*0.38, -bodyLen*0.38, 0.025, 0.07, pal.Detail)
	}
}

// Badlama: long-necked pack beast. Neck is a three-segment sphere chain ending
// in a small smug head; spits at things in-game, so the head is the only limb
// the animation layer really works.
func buildBadlama(c *ctx) {
	base := palette.Palette{
		Skin:   rl.NewColor(200, 175, 140, 255),
		Accent: rl.NewColor(170, 140, 105, 255),
		Eye:    rl.NewColor(60, 45, 35, 255),
		Pupil:  rl.NewColor(15, 10, 8, 255),
		Detail: rl.NewColor(235, 225, 210, 255),
	}
	pal := c.resolvePalette("badlama", base)

	bodyR := float32(0.2)
	bodyLen := float32(0.5)
	bodyY := float32(0.55)
	c.solidAt(c.root, "Body", c.capsule(bodyR, bodyLen), 0, bodyY, 0, pal.Skin).Rotated(math32.Pi/2, 0, 0)

	// Neck: stacked spheres leaning forward, each overlapped into the last.
	neckR := float32(0.07)
	neckBase := c.root.Child("NeckBase").At(0, bodyY+bodyR*0.6, bodyLen*0.38)
	parent := neckBase
	for i := 0; i < 3; i++ {
		seg := c.solidAt(parent, "NeckSeg", c.sphere(neckR), 0, 2*neckR-anatomy.DefaultOverlap(neckR), neckR*0.35, pal.Skin)
		parent = seg
	}
	headR := float32(0.1)
	head := c.solidAt(parent, "Head", c.sphere(headR), 0, headR+neckR-anatomy.DefaultOverlap(neckR), headR*0.3, pal.Skin)
	head.Scaled(0.9, 0.95, 1.3)
	c.limbs.Head = head
	c.eyePair(head, headR, eyes.Cute, pal.Eye, pal.Pupil)
	c.earPair(head, headR, headR*0.5, pal.Skin)
	if c.lod.AtLeast(lod.Medium) {
		c.solidAt(head, "Muzzle", c.sphere(headR*0.5), 0, -headR*0.2, headR*1.0, pal.Accent)
	}

	c.quadLegs(bodyY-bodyR*0.5, bodyLen*0.32, bodyR*0.7, 0.045, 0.38, pal.Skin)
	c.tailChain(bodyY+bodyR*0.2, -bodyLen/2, 0.05, 2, 0.01, pal.Accent)
}

// Spider: cephalothorax + abdomen with four leg pairs, each leg a two-segment
// bent limb. The front pair registers as arms and the rear pair as legs so the
// animation layer can drive a skitter cycle through the standard handles.
func buildSpider(c *ctx) {
	base := palette.Palette{
		Skin:   rl.NewColor(45, 40, 38, 255),
		Accent: rl.NewColor(90, 30, 30, 255),
		Eye:    rl.NewColor(200, 30, 30, 255),
		Pupil:  rl.NewColor(0, 0, 0, 255),
		Detail: rl.NewColor(120, 110, 100, 255),
	}
	pal := c.resolvePalette("spider", base)
	c.spiderBody(pal, 1)
}

// spiderBody is shared with the spider queen, which rebuilds it at a larger
// scale with extra decoration.
func (c *ctx) spiderBody(pal palette.Palette, sizeMul float32) {
	thoraxR := 0.14 * sizeMul
	abdomenR := 0.2 * sizeMul
	bodyY := 0.3 * sizeMul

	thorax := c.solidAt(c.root, "Thorax", c.sphere(thoraxR), 0, bodyY, thoraxR*0.6, pal.Skin)
	c.solidAt(c.root, "Abdomen", c.sphere(abdomenR), 0, bodyY+abdomenR*0.15,
		-(thoraxR+abdomenR-anatomy.DefaultOverlap(thoraxR)), pal.Accent).Scaled(1, 0.95, 1.2)

	// The thorax doubles as the head: eye cluster on its front face.
	c.limbs.Head = thorax
	c.eyeRow(thorax, thoraxR, 6, pal.Eye)
	if c.lod.AtLeast(lod.Medium) {
		for _, side := range []float32{-1, 1} {
			c.solidAt(thorax, "Fang", c.cylinder(0, thoraxR*0.16, thoraxR*0.5),
				side*thoraxR*0.3, -thoraxR*0.5, thoraxR*0.8, pal.Detail).Rotated(math32.Pi, 0, 0)
		}
	}

	// Four leg pairs fanned along the thorax. Two-segment legs: femur up, tibia
	// down to the ground.
	legR := 0.025 * sizeMul
	femur := 0.22 * sizeMul
	tibia := 0.26 * sizeMul
	for i := 0; i < 4; i++ {
		fan := (float32(i) - 1.5) * 0.45
		for _, side := range []float32{-1, 1} {
			legNode := c.root.Child(spiderLegName(i, side)).At(side*thoraxR*0.9, bodyY, thoraxR*0.6-float32(i)*0.04*sizeMul)
			legNode.Rotated(0, fan*side, 0)
			c.solidAt(legNode, "Femur", c.capsule(legR, femur), side*femur/2, femur*0.3, 0, pal.Skin).
				Rotated(0, 0, side*math32.Pi/2.6)
			knee := c.solidAt(legNode, "Knee", c.sphere(legR*1.3), side*femur*0.9, femur*0.55, 0, pal.Skin)
			c.solidAt(knee, "Tibia", c.capsule(legR*0.85, tibia), side*tibia*0.25, -tibia/2, 0, pal.Skin).
				Rotated(0, 0, -side*0.35)
			switch {
			case i == 0 && side < 0:
				c.limbs.LeftArm = legNode
			case i == 0 && side > 0:
				c.limbs.RightArm = legNode
			case i == 3 && side < 0:
				c.limbs.LeftLeg = legNode
			case i == 3 && side > 0:
				c.limbs.RightLeg = legNode
			}
		}
	}
}

func spiderLegName(pair int, side float32) string {
	names := [4]string{"Front", "Mid1", "Mid2", "Back"}
	if side < 0 {
		return names[pair] + "LeftLeg"
	}
	return names[pair] + "RightLeg"
}

// Bat: floating flyer. Wings are flattened scaled spheres pivoting at the
// shoulders and register as arms; there are no legs to build.
func buildBat(c *ctx) {
	base := palette.Palette{
		Skin:   rl.NewColor(70, 60, 80, 255),
		Accent: rl.NewColor(45, 38, 52, 255),
		Eye:    rl.NewColor(255, 220, 90, 255),
		Pupil:  rl.NewColor(10, 8, 8, 255),
		Detail: rl.NewColor(180, 170, 190, 255),
	}
	pal := c.resolvePalette("bat", base)

	bodyR := float32(0.11)
	bodyY := float32(0.85) // hovers well off the floor
	g := anatomy.Compute(bodyY, bodyR, 2*bodyR, 1.1)
	c.solidAt(c.root, "Body", c.sphere(bodyR), 0, bodyY, 0, pal.Skin).Scaled(1, 1.1, 0.9)

	headR := bodyR * 0.8
	head := c.headOn(g, headR, bodyR*0.4, pal.Skin)
	c.eyePair(head, headR, eyes.Cute, pal.Eye, pal.Pupil)
	c.earPair(head, headR, headR*0.7, pal.Skin)

	wingSpan := float32(0.3)
	for _, side := range []float32{-1, 1} {
		name := "LeftWing"
		if side > 0 {
			name = "RightWing"
		}
		wing := c.root.Child(name).At(side*bodyR*0.9, bodyY+bodyR*0.2, 0)
		c.solidAt(wing, "Membrane", c.sphere(wingSpan/2), side*wingSpan/2, 0, 0, pal.Accent).
			Scaled(1.4, 0.12, 0.8)
		if c.lod.AtLeast(lod.Medium) {
			c.solidAt(wing, "WingClaw", c.sphere(0.02), side*wingSpan*1.1, 0.02, 0.02, pal.Detail)
		}
		if side > 0 {
			c.limbs.RightArm = wing
		} else {
			c.limbs.LeftArm = wing
		}
	}
	if c.lod.AtLeast(lod.High) {
		for _, side := range []float32{-1, 1} {
			c.solidAt(c.root, "FootClaw", c.sphere(0.018), side*bodyR*0.4, bodyY-bodyR, 0, pal.Detail)
		}
	}
}

// Crawler killer: segmented burrower. Body is a shrinking chain of sphere
// segments; the head segment carries mandibles and the first and last stub
// pairs register as arms/legs.
func buildCrawlerKiller(c *ctx) {
	base := palette.Palette{
		Skin:   rl.NewColor(140, 90, 60, 255),
		Accent: rl.NewColor(100, 60, 40, 255),
		Eye:    rl.NewColor(250, 250, 230, 255),
		Pupil:  rl.NewColor(30, 20, 15, 255),
		Detail: rl.NewColor(60, 40, 30, 255),
	}
	pal := c.resolvePalette("crawler_killer", base)

	segments := 5
	if !c.lod.AtLeast(lod.Medium) {
		segments = 4
	}
	segR := float32(0.13)
	bodyY := segR
	z := float32(0.3)
	headR := segR * 1.2
	head := c.solidAt(c.root, "Head", c.sphere(headR), 0, bodyY+headR*0.15, z+headR, pal.Skin)
	c.limbs.Head = head
	c.eyePair(head, headR, eyes.Menacing, pal.Eye, pal.Pupil)
	for _, side := range []float32{-1, 1} {
		c.solidAt(head, "Mandible", c.cylinder(0, headR*0.2, headR*0.7),
			side*headR*0.5, -headR*0.3, headR*0.85, pal.Detail).Rotated(math32.Pi/1.8, -side*0.4, 0)
	}

	r := segR
	for i := 0; i < segments; i++ {
		c.solidAt(c.root, "BodySeg", c.sphere(r), 0, bodyY, z, pal.Skin)
		// Stub feet under each segment; first and last pair are the limb handles.
		for _, side := range []float32{-1, 1} {
			stub := c.root.Child("Stub").At(side*r*0.8, bodyY-r*0.6, z)
			c.solidAt(stub, "StubFoot", c.capsule(r*0.2, r*0.55), 0, -r*0.3, 0, pal.Accent)
			switch {
			case i == 0 && side < 0:
				c.limbs.LeftArm = stub
			case i == 0 && side > 0:
				c.limbs.RightArm = stub
			case i == segments-1 && side < 0:
				c.limbs.LeftLeg = stub
			case i == segments-1 && side > 0:
				c.limbs.RightLeg = stub
			}
		}
		next := r * 0.88
		z -= r + next - anatomy.DefaultOverlap(next)
		r = next
	}
	if c.lod.AtLeast(lod.High) {
		c.spikesAlong(c.root, segments, bodyY+segR*0.8, 0.3, z+segR, 0.02, 0.05, pal.Detail)
	}
}
