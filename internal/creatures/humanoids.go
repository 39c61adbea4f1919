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

// Goblin torso dimensions. Shared by the shaman/thrower variants and scaled up
// by the warlord boss.
const (
	goblinTorsoR  = 0.24
	goblinTorsoY  = 0.5
	goblinTorsoSY = 1.2
	goblinHeadR   = 0.21
	goblinNeckR   = 0.08
	goblinArmR    = 0.055
	goblinArmLen  = 0.26
	goblinLegR    = 0.07
	goblinLegLen  = 0.3
	goblinStance  = 0.12
)

// goblinCore builds the shared goblin body (torso, head, ears, arms, legs) and
// returns the head node and body geometry for variant decoration.
func (c *ctx) goblinCore(pal palette.Palette) (head *ctxHead, g anatomy.BodyGeometry) {
	g = anatomy.Compute(goblinTorsoY, goblinTorsoR, 2*goblinTorsoR, goblinTorsoSY)
	torso := c.solidAt(c.root, "Torso", c.sphere(goblinTorsoR), 0, goblinTorsoY, 0, pal.Skin)
	torso.Scaled(1, goblinTorsoSY, 1)
	if c.lod.AtLeast(lod.Medium) {
		c.solidAt(torso, "Belly", c.sphere(goblinTorsoR*0.7), 0, -goblinTorsoR*0.2, goblinTorsoR*0.45, pal.Accent)
	}

	h := c.headOn(g, goblinHeadR, goblinNeckR, pal.Skin)
	h.Scaled(variation.Asymmetry(c.rng), 1, 1)
	c.eyePair(h, goblinHeadR, eyes.Humanoid, pal.Eye, pal.Pupil)
	c.earPair(h, goblinHeadR, goblinHeadR*0.55, pal.Skin)
	if c.lod.AtLeast(lod.High) {
		// Nose and a crooked pair of lower teeth only at full detail.
		c.solidAt(h, "Nose", c.sphere(goblinHeadR*0.18), 0, -goblinHeadR*0.08, goblinHeadR*0.92, pal.Skin)
		for _, side := range []float32{-1, 1} {
			c.solidAt(h, "Tooth", c.cylinder(0, goblinHeadR*0.06, goblinHeadR*0.16),
				side*goblinHeadR*0.22, -goblinHeadR*0.42, goblinHeadR*0.8, pal.Detail)
		}
	}

	c.arm(g, -1, goblinArmR, goblinArmLen, pal.Skin)
	c.arm(g, 1, goblinArmR, goblinArmLen, pal.Skin)
	c.leg(g, -1, goblinLegR, goblinLegLen, goblinStance, pal.Skin)
	c.leg(g, 1, goblinLegR, goblinLegLen, goblinStance, pal.Skin)
	return &ctxHead{node: h, radius: goblinHeadR}, g
}

// ctxHead pairs a head node with its radius so variants can decorate it without
// re-deriving dimensions.
type ctxHead struct {
	node   *scenegraph.Node
	radius float32
}

func buildGoblin(c *ctx) {
	pal := c.resolvePalette("goblin", goblinPalette)
	_, _ = c.goblinCore(pal)
	// Standard goblins carry a crude club in the right hand.
	c.weaponAt(c.limbs.RightArm, 0.22, 0.02, c.sphere(0.05), rl.NewColor(110, 82, 50, 255), rl.NewColor(96, 70, 44, 255))
}

func buildGoblinShaman(c *ctx) {
	base := goblinPalette
	base.Skin = rl.NewColor(110, 140, 160, 255) // sickly blue-grey cast
	pal := c.resolvePalette("goblin_shaman", base)
	head, _ := c.goblinCore(pal)

	// Staff in the right hand, torch in the left; the orb glows regardless of LOD.
	c.weaponAt(c.limbs.RightArm, 0.34, 0.016, c.sphere(0.045), rl.NewColor(80, 60, 40, 255), rl.NewColor(120, 220, 255, 255))
	c.torchAt(c.limbs.LeftArm, rl.NewColor(255, 160, 40, 255))

	if c.lod.AtLeast(lod.Medium) {
		// Bone headdress: a ring of small spikes around the crown.
		n := 5
		for i := 0; i < n; i++ {
			a := 2 * math32.Pi * float32(i) / float32(n)
			c.solidAt(head.node, "HeaddressSpike", c.cylinder(0, 0.02, 0.09),
				math32.Sin(a)*head.radius*0.7, head.radius*0.75, math32.Cos(a)*head.radius*0.7, pal.Detail)
		}
	}
}

func buildGoblinThrower(c *ctx) {
	pal := c.resolvePalette("goblin_thrower", goblinPalette)
	_, g := c.goblinCore(pal)

	// Satchel of rocks on the hip; a held rock is the thrower's "weapon".
	c.solidAt(c.root, "Satchel", c.sphere(0.09), -g.EffectiveRadius(1)*0.8, g.HipY(), -0.1, rl.NewColor(120, 95, 60, 255)).
		Scaled(1, 0.8, 1)
	hand := c.limbs.RightArm.Find(HandNodeName)
	rock := hand.Child("Weapon")
	c.solidAt(rock, "Rock", c.sphere(0.055), 0, 0, 0, rl.NewColor(130, 130, 135, 255))
	c.limbs.Weapon = rock
}

// Skeleton ribcage torso with bone limbs. Proportions run taller and thinner
// than the goblin family.
func buildSkeleton(c *ctx) {
	pal := c.resolvePalette("skeleton", bonePalette)

	spineR := float32(0.035)
	spineH := float32(0.52)
	spineY := float32(0.62)
	g := anatomy.Compute(spineY, 0.2, spineH, 1)

	c.solidAt(c.root, "Spine", c.cylinder(spineR, spineR, spineH), 0, spineY, 0, pal.Skin)
	// Ribs: three torus hoops around the spine, one fewer below Medium.
	ribs := 3
	if !c.lod.AtLeast(lod.Medium) {
		ribs = 2
	}
	for i := 0; i < ribs; i++ {
		y := g.ShoulderY() - float32(i)*0.09
		rr := 0.16 - float32(i)*0.015
		c.solidAt(c.root, "Rib", c.torus(0.022, rr), 0, y, 0, pal.Skin)
	}
	c.solidAt(c.root, "Pelvis", c.sphere(0.11), 0, g.HipY(), 0, pal.Skin).Scaled(1.25, 0.6, 0.9)

	headR := float32(0.16)
	head := c.headOn(g, headR, 0.05, pal.Skin)
	c.eyePair(head, headR, eyes.Menacing, pal.Eye, pal.Pupil)
	if c.lod.AtLeast(lod.High) {
		c.solidAt(head, "Jaw", c.sphere(headR*0.55), 0, -headR*0.6, headR*0.25, pal.Skin).Scaled(1.1, 0.5, 0.9)
		for i := 0; i < 4; i++ {
			x := -headR*0.3 + headR*0.2*float32(i)
			c.solidAt(head, "Tooth", c.cylinder(0, headR*0.05, headR*0.12), x, -headR*0.45, headR*0.78, pal.Detail)
		}
	}

	c.arm(g, -1, 0.035, 0.3, pal.Skin)
	c.arm(g, 1, 0.035, 0.3, pal.Skin)
	c.leg(g, -1, 0.04, 0.36, 0.09, pal.Skin)
	c.leg(g, 1, 0.04, 0.36, 0.09, pal.Skin)

	// Rusty sword.
	c.weaponAt(c.limbs.RightArm, 0.3, 0.014, primitives.Box(0.07, 0.2, 0.02), rl.NewColor(140, 120, 100, 255), rl.NewColor(150, 140, 125, 255))
}

// Mushroom: stout cap-and-stalk body with stubby limbs. The cap droops to one
// side by a random tilt.
func buildMushroom(c *ctx) {
	base := palette.Palette{
		Skin:   rl.NewColor(230, 220, 200, 255),
		Accent: rl.NewColor(190, 60, 60, 255),
		Eye:    rl.NewColor(40, 35, 30, 255),
		Pupil:  rl.NewColor(10, 10, 10, 255),
		Detail: rl.NewColor(250, 245, 235, 255),
	}
	pal := c.resolvePalette("mushroom", base)

	stalkR := float32(0.14)
	stalkH := float32(0.38)
	g := anatomy.Compute(stalkH/2, stalkR, stalkH, 1)
	c.solidAt(c.root, "Stalk", c.cylinder(stalkR*0.85, stalkR, stalkH), 0, stalkH/2, 0, pal.Skin)

	capR := float32(0.26)
	tilt := variation.Range(c.rng, -0.2, 0.2)
	cap := c.solidAt(c.root, "Cap", c.sphere(capR), 0, g.Top()+capR*0.35-anatomy.DefaultOverlap(capR*0.35), 0, pal.Accent)
	cap.Scaled(1.15, 0.62, 1.15).Rotated(0, 0, tilt)
	c.limbs.Head = cap
	if c.lod.AtLeast(lod.Medium) {
		// Cap spots.
		for i := 0; i < 4; i++ {
			a := variation.Range(c.rng, 0, 2*math32.Pi)
			d := variation.Range(c.rng, 0.3, 0.8) * capR
			c.solidAt(cap, "Spot", c.sphere(capR*0.12), math32.Sin(a)*d, capR*0.45, math32.Cos(a)*d, pal.Detail)
		}
	}

	// Face goes on the cap so it follows the head bob.
	c.eyePair(c.limbs.Head, capR*0.8, eyes.Cute, pal.Eye, pal.Pupil)

	c.arm(g, -1, 0.04, 0.14, pal.Skin)
	c.arm(g, 1, 0.04, 0.14, pal.Skin)
	c.leg(g, -1, 0.05, 0.1, 0.08, pal.Skin)
	c.leg(g, 1, 0.05, 0.1, 0.08, pal.Skin)
}

// FleshGolem: massive box torso with mismatched stitched-on limbs; arms longer
// than its legs.
func buildFleshGolem(c *ctx) {
	base := palette.Palette{
		Skin:   rl.NewColor(150, 120, 110, 255),
		Accent: rl.NewColor(110, 80, 90, 255),
		Eye:    rl.NewColor(240, 220, 120, 255),
		Pupil:  rl.NewColor(20, 20, 20, 255),
		Detail: rl.NewColor(60, 55, 60, 255),
	}
	pal := c.resolvePalette("flesh_golem", base)

	torsoW, torsoH, torsoD := float32(0.56), float32(0.6), float32(0.34)
	torsoY := float32(0.75)
	g := anatomy.Compute(torsoY, torsoW/2, torsoH, 1)
	c.solidAt(c.root, "Torso", primitives.Box(torsoW, torsoH, torsoD), 0, torsoY, 0, pal.Skin)
	// Mismatched shoulder slabs: one side bulkier than the other.
	bulk := variation.Asymmetry(c.rng)
	c.solidAt(c.root, "ShoulderSlabL", c.sphere(0.14), -torsoW/2, g.ShoulderY(), 0, pal.Accent).Scaled(bulk, 0.8, 1)
	c.solidAt(c.root, "ShoulderSlabR", c.sphere(0.14), torsoW/2, g.ShoulderY(), 0, pal.Accent).Scaled(2-bulk, 0.8, 1)

	headR := float32(0.15)
	head := c.headOn(g, headR, 0.09, pal.Skin)
	c.eyePair(head, headR, eyes.Menacing, pal.Eye, pal.Pupil)
	if c.lod.AtLeast(lod.Medium) {
		// Neck bolts.
		for _, side := range []float32{-1, 1} {
			c.solidAt(head, "Bolt", c.cylinder(0.02, 0.02, 0.07), side*headR*1.05, -headR*0.4, 0, pal.Detail).
				Rotated(0, 0, math32.Pi/2)
		}
	}

	c.arm(g, -1, 0.09, 0.5, pal.Skin)
	c.arm(g, 1, 0.09, 0.5, pal.Skin)
	c.leg(g, -1, 0.1, 0.3, 0.16, pal.Accent)
	c.leg(g, 1, 0.1, 0.3, 0.16, pal.Accent)

	if c.lod.AtLeast(lod.High) {
		// Stitch seams across the torso front.
		for i := 0; i < 3; i++ {
			y := torsoY - 0.15 + float32(i)*0.15
			c.solidAt(c.root, "Stitch", primitives.Box(0.3, 0.015, 0.015), 0, y, torsoD/2, pal.Detail)
		}
	}
}

// LivingArmor: an empty suit — box cuirass, floating gauntlets and sabatons, a
// helm with a glowing visor slit instead of eyes.
func buildLivingArmor(c *ctx) {
	base := palette.Palette{
		Skin:   rl.NewColor(150, 155, 165, 255),
		Accent: rl.NewColor(110, 115, 125, 255),
		Eye:    rl.NewColor(90, 200, 255, 255),
		Pupil:  rl.NewColor(90, 200, 255, 255),
		Detail: rl.NewColor(200, 170, 90, 255),
	}
	pal := c.resolvePalette("living_armor", base)

	torsoY := float32(0.78)
	g := anatomy.Compute(torsoY, 0.22, 0.5, 1)
	c.solidAt(c.root, "Cuirass", primitives.Box(0.44, 0.5, 0.3), 0, torsoY, 0, pal.Skin)
	c.solidAt(c.root, "Pauldrons", c.torus(0.05, 0.26), 0, g.ShoulderY(), 0, pal.Accent)

	helmR := float32(0.14)
	helm := c.headOn(g, helmR, 0.07, pal.Skin)
	c.solidAt(helm, "Visor", primitives.Box(helmR*1.4, helmR*0.22, helmR*0.3), 0, 0, helmR*0.85, pal.Eye)
	if c.lod.AtLeast(lod.Medium) {
		c.solidAt(helm, "Plume", c.cylinder(0, 0.035, 0.16), 0, helmR*0.95, -helmR*0.2, pal.Detail)
	}

	c.arm(g, -1, 0.055, 0.3, pal.Accent)
	c.arm(g, 1, 0.055, 0.3, pal.Accent)
	c.leg(g, -1, 0.06, 0.34, 0.12, pal.Accent)
	c.leg(g, 1, 0.06, 0.34, 0.12, pal.Accent)

	c.weaponAt(c.limbs.RightArm, 0.32, 0.015, primitives.Box(0.08, 0.24, 0.02), pal.Accent, pal.Skin)
}

// PlagueBearer: hunched, bloated humanoid; boils gated to High, a tattered
// hood always present.
func buildPlagueBearer(c *ctx) {
	base := palette.Palette{
		Skin:   rl.NewColor(130, 140, 90, 255),
		Accent: rl.NewColor(90, 100, 60, 255),
		Eye:    rl.NewColor(230, 230, 140, 255),
		Pupil:  rl.NewColor(40, 45, 20, 255),
		Detail: rl.NewColor(180, 175, 120, 255),
	}
	pal := c.resolvePalette("plague_bearer", base)

	torsoR := float32(0.27)
	torsoY := float32(0.48)
	g := anatomy.Compute(torsoY, torsoR, 2*torsoR, 1.05)
	torso := c.solidAt(c.root, "Torso", c.sphere(torsoR), 0, torsoY, 0, pal.Skin)
	torso.Scaled(1.1, 1.05, 0.95).Rotated(0.18, 0, 0) // hunch forward

	headR := float32(0.15)
	head := c.headOn(g, headR, 0.07, pal.Skin)
	c.solidAt(head, "Hood", c.sphere(headR*1.25), 0, headR*0.15, -headR*0.2, pal.Accent).Scaled(1, 1.1, 1.05)
	c.eyePair(head, headR, eyes.Menacing, pal.Eye, pal.Pupil)

	c.arm(g, -1, 0.05, 0.3, pal.Skin)
	c.arm(g, 1, 0.05, 0.3, pal.Skin)
	c.leg(g, -1, 0.065, 0.26, 0.11, pal.Skin)
	c.leg(g, 1, 0.065, 0.26, 0.11, pal.Skin)

	if c.lod.AtLeast(lod.High) {
		for i := 0; i < 5; i++ {
			a := variation.Range(c.rng, 0, 2*math32.Pi)
			h := variation.Range(c.rng, -0.5, 0.6) * torsoR
			c.solidAt(torso, "Boil", c.sphere(torsoR*variation.Range(c.rng, 0.1, 0.18)),
				math32.Sin(a)*torsoR*0.9, h, math32.Cos(a)*torsoR*0.9, pal.Detail)
		}
	}
	c.torchAt(c.limbs.LeftArm, rl.NewColor(170, 230, 90, 255)) // plague brazier
}

// ShadowStalker: gaunt silhouette, elongated limbs, no weapon; wisps trail off
// the shoulders at Medium+.
func buildShadowStalker(c *ctx) {
	base := palette.Palette{
		Skin:   rl.NewColor(35, 30, 50, 255),
		Accent: rl.NewColor(60, 50, 90, 255),
		Eye:    rl.NewColor(255, 255, 255, 255),
		Pupil:  rl.NewColor(200, 40, 255, 255),
		Detail: rl.NewColor(90, 70, 140, 255),
	}
	pal := c.resolvePalette("shadow_stalker", base)

	torsoY := float32(0.7)
	g := anatomy.Compute(torsoY, 0.14, 0.55, 1)
	c.solidAt(c.root, "Torso", c.capsule(0.14, 0.55), 0, torsoY, 0, pal.Skin)

	headR := float32(0.12)
	head := c.headOn(g, headR, 0.05, pal.Skin)
	c.eyePair(head, headR, eyes.Menacing, pal.Eye, pal.Pupil)

	c.arm(g, -1, 0.035, 0.42, pal.Skin)
	c.arm(g, 1, 0.035, 0.42, pal.Skin)
	c.leg(g, -1, 0.04, 0.44, 0.08, pal.Skin)
	c.leg(g, 1, 0.04, 0.44, 0.08, pal.Skin)

	if c.lod.AtLeast(lod.Medium) {
		for _, side := range []float32{-1, 1} {
			c.solidAt(c.root, "Wisp", c.sphere(0.05), side*0.2, g.ShoulderY()+0.1, -0.08, pal.Accent).
				Scaled(0.7, variation.Range(c.rng, 1.2, 1.8), 0.7)
		}
	}
}
