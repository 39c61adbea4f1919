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

// amplify scales the whole creature root. Boss builders call this after the base
// body is assembled; decorations added afterwards still use unit-space
// coordinates since they live under the same root.
func (c *ctx) amplify(mul float32) {
	c.root.Scale = rl.Vector3Scale(c.root.Scale, mul)
}

// crown adds a ring of spikes around a head node.
func (c *ctx) crown(head *scenegraph.Node, headR float32, spikes int, color rl.Color) {
	c.solidAt(head, "CrownBand", c.torus(headR*0.08, headR*0.75), 0, headR*0.6, 0, color)
	for i := 0; i < spikes; i++ {
		a := 2 * math32.Pi * float32(i) / float32(spikes)
		c.solidAt(head, "CrownSpike", c.cylinder(0, headR*0.09, headR*0.35),
			math32.Sin(a)*headR*0.7, headR*0.72, math32.Cos(a)*headR*0.7, color)
	}
}

// Goblin warlord ("boss_goblin"): the goblin body at war scale, with a spiked
// crown, battle scars, and a proper axe instead of a club.
func buildGoblinWarlord(c *ctx) {
	base := goblinPalette
	base.Skin = rl.NewColor(120, 140, 60, 255)
	base.Accent = rl.NewColor(160, 60, 50, 255)
	pal := c.resolvePalette("goblin_warlord", base)

	head, g := c.goblinCore(pal)
	c.amplify(1.6)

	if c.lod.AtLeast(lod.Medium) {
		c.crown(head.node, head.radius, 5, rl.NewColor(212, 175, 55, 255))
		// Battle scar across the torso.
		c.solidAt(c.root, "Scar", primitives.Box(0.02, goblinTorsoR*1.1, 0.02),
			goblinTorsoR*0.4, goblinTorsoY, goblinTorsoR*0.85, pal.Accent).Rotated(0, 0, 0.5)
	}
	c.weaponAt(c.limbs.RightArm, 0.3, 0.022, primitives.Box(0.16, 0.1, 0.03),
		rl.NewColor(90, 70, 45, 255), rl.NewColor(170, 170, 175, 255))
	// Shoulder plate on the weapon side.
	c.solidAt(c.root, "Pauldron", c.sphere(0.1), g.EffectiveRadius(1), g.ShoulderY()+0.03, 0, rl.NewColor(110, 110, 115, 255)).
		Scaled(1.2, 0.7, 1.2)
}

// Skeleton lord: the skeleton at throne scale with a crown, ember eyes already
// in the bone palette, and a cape slab behind the ribs.
func buildSkeletonLord(c *ctx) {
	buildSkeleton(c)
	c.amplify(1.8)

	headR := float32(0.16) // matches the base skeleton head
	if c.limbs.Head != nil && c.lod.AtLeast(lod.Medium) {
		c.crown(c.limbs.Head, headR, 6, rl.NewColor(212, 175, 55, 255))
	}
	c.solidAt(c.root, "Cape", primitives.Box(0.34, 0.5, 0.02), 0, 0.62, -0.14, rl.NewColor(70, 25, 30, 255)).
		Rotated(0.08, 0, 0)
	if c.lod.AtLeast(lod.High) {
		// Floating soul flames around the shoulders.
		for _, side := range []float32{-1, 1} {
			c.solidAt(c.root, "SoulFlame", c.cylinder(0, 0.035, 0.1), side*0.3, 0.85, -0.05, rl.NewColor(120, 220, 200, 255))
		}
	}
}

// Dragon king: serpentine boss. The body is a chain of shrinking segments from
// chest to tail tip; four clawed legs, bat-style wings, horned head with
// menacing eyes. Preserves the standard limb contract: wings are the arms.
func buildDragonKing(c *ctx) {
	base := palette.Palette{
		Skin:   rl.NewColor(150, 40, 40, 255),
		Accent: rl.NewColor(220, 140, 50, 255),
		Eye:    rl.NewColor(255, 220, 80, 255),
		Pupil:  rl.NewColor(20, 10, 5, 255),
		Detail: rl.NewColor(240, 230, 200, 255),
	}
	pal := c.resolvePalette("dragon_king", base)

	chestR := float32(0.3)
	chestY := float32(0.55)
	chestZ := float32(0.25)
	g := anatomy.Compute(chestY, chestR, 2*chestR, 1)
	c.solidAt(c.root, "Chest", c.sphere(chestR), 0, chestY, chestZ, pal.Skin).Scaled(1, 1, 1.15)
	c.solidAt(c.root, "BellyPlate", c.sphere(chestR*0.8), 0, chestY-chestR*0.25, chestZ+chestR*0.35, pal.Accent).
		Scaled(1, 0.9, 0.9)

	// Spine: shrinking segments swinging from the chest down to the tail tip.
	segs := 6
	if !c.lod.AtLeast(lod.Medium) {
		segs = 4
	}
	parent := c.root.Child("Tail").At(0, chestY, chestZ-chestR)
	r := chestR * 0.75
	for i := 0; i < segs; i++ {
		step := 2*r - anatomy.DefaultOverlap(r)
		parent = c.solidAt(parent, "SpineSeg", c.sphere(r), 0, -0.02, -step, pal.Skin)
		r *= 0.8
	}
	c.solidAt(parent, "TailSpade", c.cylinder(0, 0.07, 0.16), 0, 0, -0.1, pal.Accent).Rotated(-math32.Pi/2, 0, 0)

	// Neck and horned head.
	neckR := float32(0.1)
	neck := c.root.Child("NeckBase").At(0, g.Top()-anatomy.DefaultOverlap(neckR), chestZ+chestR*0.5)
	c.solidAt(neck, "NeckSeg", c.capsule(neckR, 0.3), 0, 0.12, 0.08, pal.Skin).Rotated(0.5, 0, 0)
	headR := float32(0.16)
	head := c.solidAt(neck, "Head", c.sphere(headR), 0, 0.3, 0.2, pal.Skin)
	head.Scaled(0.95, 0.9, 1.3)
	c.limbs.Head = head
	c.solidAt(head, "Snout", c.capsule(headR*0.45, headR*1.2), 0, -headR*0.15, headR*0.95, pal.Skin).
		Rotated(math32.Pi/2, 0, 0)
	c.eyePair(head, headR, eyes.Menacing, pal.Eye, pal.Pupil)
	for _, side := range []float32{-1, 1} {
		stretch := variation.Asymmetry(c.rng)
		c.solidAt(head, "Horn", c.cylinder(0, headR*0.18, headR*1.1),
			side*headR*0.5, headR*0.6, -headR*0.3, pal.Detail).Rotated(-0.6, 0, side*0.25).Scaled(1, stretch, 1)
	}
	if c.lod.AtLeast(lod.High) {
		for _, side := range []float32{-1, 1} {
			c.solidAt(head, "Nostril", c.sphere(headR*0.08), side*headR*0.25, 0, headR*1.5, pal.Pupil)
			c.solidAt(head, "BrowHorn", c.cylinder(0, headR*0.08, headR*0.4),
				side*headR*0.75, headR*0.25, 0, pal.Detail).Rotated(0, 0, side*1.1)
		}
	}

	// Wings: membrane slabs on arm-style pivots.
	for _, side := range []float32{-1, 1} {
		name := "LeftArm"
		if side > 0 {
			name = "RightArm"
		}
		wing := c.root.Child(name).At(side*chestR*0.9, g.ShoulderY()+0.1, chestZ)
		c.solidAt(wing, "WingArm", c.capsule(0.035, 0.4), side*0.2, 0.12, 0, pal.Skin).Rotated(0, 0, side*math32.Pi/2.4)
		c.solidAt(wing, "Membrane", c.sphere(0.3), side*0.45, 0.05, -0.05, pal.Accent).Scaled(1.4, 0.08, 1)
		if side > 0 {
			c.limbs.RightArm = wing
		} else {
			c.limbs.LeftArm = wing
		}
	}

	// Clawed legs under the chest.
	for _, side := range []float32{-1, 1} {
		name := "LeftLeg"
		if side > 0 {
			name = "RightLeg"
		}
		legNode := c.root.Child(name).At(side*chestR*0.7, g.HipY(), chestZ)
		c.joint(legNode, "HipJoint", 0.08, 0, 0, 0, pal.Skin)
		c.solidAt(legNode, "Haunch", c.capsule(0.07, 0.3), 0, -0.15, 0, pal.Skin)
		if c.lod.AtLeast(lod.Medium) {
			for i := 0; i < 3; i++ {
				x := (float32(i) - 1) * 0.05
				c.solidAt(legNode, "Claw", c.cylinder(0, 0.02, 0.07), x, -0.32, 0.07, pal.Detail).Rotated(math32.Pi/1.6, 0, 0)
			}
		}
		if side > 0 {
			c.limbs.RightLeg = legNode
		} else {
			c.limbs.LeftLeg = legNode
		}
	}

	c.amplify(2.2)
}

// Spider queen: the spider body at brood scale with a crown on the thorax and
// egg sacs clustered under the abdomen.
func buildSpiderQueen(c *ctx) {
	base := palette.Palette{
		Skin:   rl.NewColor(30, 28, 35, 255),
		Accent: rl.NewColor(120, 30, 60, 255),
		Eye:    rl.NewColor(230, 50, 80, 255),
		Pupil:  rl.NewColor(0, 0, 0, 255),
		Detail: rl.NewColor(200, 190, 180, 255),
	}
	pal := c.resolvePalette("spider_queen", base)

	c.spiderBody(pal, 1.4)
	c.amplify(1.7)

	if c.limbs.Head != nil && c.lod.AtLeast(lod.Medium) {
		c.crown(c.limbs.Head, 0.14*1.4, 5, rl.NewColor(212, 175, 55, 255))
	}
	if c.lod.AtLeast(lod.Medium) {
		for i := 0; i < 3; i++ {
			a := variation.Range(c.rng, 0, 2*math32.Pi)
			c.solidAt(c.root, "EggSac", c.sphere(variation.Jitter(c.rng, 0.07, 0.2)),
				math32.Sin(a)*0.15, 0.08, -0.45+math32.Cos(a)*0.08, pal.Detail)
		}
	}
}

// The Butcher: a slab of a humanoid in a stained apron, hook in one hand,
// cleaver in the other.
func buildTheButcher(c *ctx) {
	base := palette.Palette{
		Skin:   rl.NewColor(190, 140, 120, 255),
		Accent: rl.NewColor(120, 50, 50, 255),
		Eye:    rl.NewColor(240, 230, 220, 255),
		Pupil:  rl.NewColor(30, 15, 15, 255),
		Detail: rl.NewColor(150, 150, 155, 255),
	}
	pal := c.resolvePalette("the_butcher", base)

	torsoR := float32(0.3)
	torsoY := float32(0.62)
	g := anatomy.Compute(torsoY, torsoR, 2*torsoR, 1.1)
	c.solidAt(c.root, "Torso", c.sphere(torsoR), 0, torsoY, 0, pal.Skin).Scaled(1.15, 1.1, 1)
	// Apron: a flat slab down the front.
	c.solidAt(c.root, "Apron", primitives.Box(torsoR*1.4, torsoR*2.2, 0.02), 0, torsoY-torsoR*0.4, torsoR*0.95, pal.Accent)

	headR := float32(0.16)
	head := c.headOn(g, headR, 0.1, pal.Skin)
	c.eyePair(head, headR, eyes.Menacing, pal.Eye, pal.Pupil)
	if c.lod.AtLeast(lod.High) {
		// Face hood stitched over one eye.
		c.solidAt(head, "HoodPatch", c.sphere(headR*0.45), headR*0.35, headR*0.12, headR*0.75, pal.Accent).Scaled(1, 1, 0.4)
	}

	c.arm(g, -1, 0.085, 0.36, pal.Skin)
	c.arm(g, 1, 0.085, 0.36, pal.Skin)
	c.leg(g, -1, 0.1, 0.34, 0.16, pal.Skin)
	c.leg(g, 1, 0.1, 0.34, 0.16, pal.Skin)

	// Cleaver right, hook left on a chain.
	c.weaponAt(c.limbs.RightArm, 0.2, 0.02, primitives.Box(0.05, 0.22, 0.015), rl.NewColor(95, 70, 50, 255), pal.Detail)
	if hook := c.limbs.LeftArm.Find(HandNodeName); hook != nil {
		c.solidAt(hook, "Hook", c.torus(0.015, 0.05), 0, -0.08, 0, pal.Detail).Rotated(0, math32.Pi/2, 0)
	}

	c.amplify(1.9)
}

// Mordecai: the lich. Robed cone body instead of legs (the robe hem counts as
// both leg handles), hood, staff with a skull topper.
func buildMordecai(c *ctx) {
	base := palette.Palette{
		Skin:   rl.NewColor(60, 55, 80, 255),
		Accent: rl.NewColor(100, 90, 140, 255),
		Eye:    rl.NewColor(130, 255, 170, 255),
		Pupil:  rl.NewColor(10, 40, 20, 255),
		Detail: rl.NewColor(222, 214, 190, 255),
	}
	pal := c.resolvePalette("mordecai", base)

	robeH := float32(0.85)
	g := anatomy.Compute(robeH*0.62, 0.2, robeH*0.7, 1)
	c.solidAt(c.root, "Robe", c.cylinder(0.1, 0.3, robeH), 0, robeH/2, 0, pal.Skin)
	c.solidAt(c.root, "Shoulders", c.sphere(0.16), 0, robeH*0.92, 0, pal.Accent).Scaled(1.4, 0.6, 0.9)

	headR := float32(0.13)
	// Skull floats just above the collar, hood behind it.
	head := c.solidAt(c.root, "Head", c.sphere(headR), 0, robeH+headR-anatomy.DefaultOverlap(0.06), 0, pal.Detail)
	c.limbs.Head = head
	c.solidAt(head, "Hood", c.sphere(headR*1.3), 0, headR*0.2, -headR*0.35, pal.Skin).Scaled(1, 1.15, 1)
	c.eyePair(head, headR, eyes.Menacing, pal.Eye, pal.Pupil)

	c.arm(g, -1, 0.045, 0.3, pal.Skin)
	c.arm(g, 1, 0.045, 0.3, pal.Skin)
	// Robe hem pivots stand in for leg handles so the float-bob animation works.
	c.limbs.LeftLeg = c.root.Child("LeftLeg").At(-0.12, 0.05, 0)
	c.limbs.RightLeg = c.root.Child("RightLeg").At(0.12, 0.05, 0)

	c.weaponAt(c.limbs.RightArm, 0.42, 0.016, c.sphere(0.06), rl.NewColor(50, 40, 35, 255), pal.Detail)
	c.torchAt(c.limbs.LeftArm, rl.NewColor(130, 255, 170, 255))

	if c.lod.AtLeast(lod.Medium) {
		// Rune motes circling the robe.
		for i := 0; i < 5; i++ {
			a := 2 * math32.Pi * float32(i) / 5
			c.solidAt(c.root, "Rune", primitives.Box(0.03, 0.04, 0.01),
				math32.Sin(a)*0.32, variation.Range(c.rng, 0.3, 0.7), math32.Cos(a)*0.32, pal.Eye).Rotated(0, a, 0)
		}
	}
	c.amplify(1.6)
}

// Mongo: a dim giant. Goblin proportions blown up with a too-small head, stone
// club, and a belt of trophy skulls.
func buildMongo(c *ctx) {
	base := goblinPalette
	base.Skin = rl.NewColor(160, 130, 100, 255)
	base.Accent = rl.NewColor(120, 90, 70, 255)
	pal := c.resolvePalette("mongo", base)

	head, g := c.goblinCore(pal)
	// Shrink just the head back down: a giant with goblin-sized wits.
	head.node.Scale = rl.Vector3Scale(head.node.Scale, 0.75)
	c.amplify(2.4)

	c.weaponAt(c.limbs.RightArm, 0.34, 0.03, c.sphere(0.09), rl.NewColor(100, 75, 50, 255), rl.NewColor(130, 130, 135, 255))
	if c.lod.AtLeast(lod.Medium) {
		// Trophy skull belt.
		for i := 0; i < 3; i++ {
			a := -0.6 + 0.6*float32(i)
			c.solidAt(c.root, "TrophySkull", c.sphere(0.05),
				math32.Sin(a)*g.EffectiveRadius(1)*0.95, g.HipY()+0.02, math32.Cos(a)*g.EffectiveRadius(1)*0.95, bonePalette.Skin)
		}
	}
}
