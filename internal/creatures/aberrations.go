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

// Slime: the default creature and the fallback for unknown keys. A squashed
// translucent blob with a crown nub for a head and two pseudopod arms; it oozes
// rather than walks, so it builds no legs.
func buildSlime(c *ctx) {
	base := palette.Palette{
		Skin:   rl.NewColor(90, 200, 120, 200),
		Accent: rl.NewColor(60, 160, 95, 220),
		Eye:    rl.NewColor(255, 255, 255, 255),
		Pupil:  rl.NewColor(25, 40, 25, 255),
		Detail: rl.NewColor(140, 230, 160, 180),
	}
	pal := c.resolvePalette("slime", base)

	blobR := variation.Jitter(c.rng, 0.26, 0.12)
	blobY := blobR * 0.7
	g := anatomy.Compute(blobY, blobR, 2*blobR, 0.75)
	blob := c.solidAt(c.root, "Blob", c.sphere(blobR), 0, blobY, 0, pal.Skin)
	blob.Scaled(1.15, 0.75, 1.15)

	// Crown nub stands in for a head so the bob animation has a handle.
	nubR := blobR * 0.45
	head := c.solidAt(c.root, "Head", c.sphere(nubR), 0, g.Top()+nubR-anatomy.DefaultOverlap(nubR), 0, pal.Accent)
	c.limbs.Head = head
	c.eyePair(blob, blobR*0.9, eyes.Cute, pal.Eye, pal.Pupil)

	// Pseudopods: droopy side blobs that flex as arms.
	for _, side := range []float32{-1, 1} {
		name := "LeftArm"
		if side > 0 {
			name = "RightArm"
		}
		pod := c.root.Child(name).At(side*blobR*0.95, blobY+blobR*0.1, 0)
		c.solidAt(pod, "Pseudopod", c.sphere(blobR*0.3), side*blobR*0.15, 0, 0, pal.Skin).
			Scaled(1.3, 0.7, 0.9)
		if side > 0 {
			c.limbs.RightArm = pod
		} else {
			c.limbs.LeftArm = pod
		}
	}

	if c.lod.AtLeast(lod.Medium) {
		// Suspended bubbles inside the body.
		for i := 0; i < 3; i++ {
			a := variation.Range(c.rng, 0, 2*math32.Pi)
			d := variation.Range(c.rng, 0.2, 0.6) * blobR
			c.solidAt(blob, "Bubble", c.sphere(blobR*variation.Range(c.rng, 0.08, 0.16)),
				math32.Sin(a)*d, variation.Range(c.rng, -0.2, 0.4)*blobR, math32.Cos(a)*d, pal.Detail)
		}
	}
}

// Eye tyrant: a floating eyeball. The body is the head; eye stalks register as
// arms so the animation layer can wave them. No legs.
func buildEyeTyrant(c *ctx) {
	base := palette.Palette{
		Skin:   rl.NewColor(150, 90, 130, 255),
		Accent: rl.NewColor(110, 60, 95, 255),
		Eye:    rl.NewColor(240, 240, 230, 255),
		Pupil:  rl.NewColor(160, 30, 30, 255),
		Detail: rl.NewColor(200, 160, 190, 255),
	}
	pal := c.resolvePalette("eye", base)

	bodyR := float32(0.22)
	bodyY := float32(0.9)
	body := c.solidAt(c.root, "Head", c.sphere(bodyR), 0, bodyY, 0, pal.Skin)
	c.limbs.Head = body

	// The single great eye, front and center, deliberately oversized.
	g := eyes.Compute(bodyR, eyes.Cute, 1.6)
	iris := c.solidAt(body, "GreatEye", c.sphere(g.EyeRadius), 0, 0, g.EyeZ, pal.Eye)
	c.solidAt(iris, "Pupil", c.sphere(g.PupilRadius*1.4), 0, 0, g.PupilZ-g.EyeZ, pal.Pupil)

	// Eye stalks arc over the crown; count drops with LOD.
	stalks := 6
	if !c.lod.AtLeast(lod.High) {
		stalks = 4
	}
	if !c.lod.AtLeast(lod.Medium) {
		stalks = 2
	}
	for i := 0; i < stalks; i++ {
		a := math32.Pi * (0.15 + 0.7*float32(i)/float32(stalks-1))
		x := math32.Cos(a) * bodyR
		y := math32.Sin(a) * bodyR
		stalk := c.root.Child("Stalk").At(x, bodyY+y*0.8, -bodyR*0.2)
		stalkLen := bodyR * variation.Range(c.rng, 0.5, 0.8)
		c.solidAt(stalk, "StalkStem", c.capsule(bodyR*0.06, stalkLen), 0, stalkLen/2, 0, pal.Accent)
		c.solidAt(stalk, "StalkEye", c.sphere(bodyR*0.11), 0, stalkLen+bodyR*0.04, 0, pal.Eye)
		if i == 0 {
			c.limbs.LeftArm = stalk
		}
		if i == stalks-1 {
			c.limbs.RightArm = stalk
		}
	}

	if c.lod.AtLeast(lod.High) {
		// Toothy grin under the eye.
		for i := 0; i < 5; i++ {
			x := -bodyR*0.4 + bodyR*0.2*float32(i)
			c.solidAt(body, "Tooth", c.cylinder(0, bodyR*0.05, bodyR*0.12), x, -bodyR*0.55, bodyR*0.78, pal.Detail).
				Rotated(math32.Pi, 0, 0)
		}
	}
}

// Mimic: a treasure chest with teeth. Lid is the head (it snaps open in the
// attack animation); tongue tip is the weapon handle; stubby feet are the legs
// and two lid-corner tendrils the arms.
func buildMimic(c *ctx) {
	base := palette.Palette{
		Skin:   rl.NewColor(130, 90, 50, 255),
		Accent: rl.NewColor(95, 65, 40, 255),
		Eye:    rl.NewColor(250, 230, 90, 255),
		Pupil:  rl.NewColor(20, 15, 10, 255),
		Detail: rl.NewColor(235, 225, 210, 255),
	}
	pal := c.resolvePalette("mimic", base)

	w, h, d := float32(0.5), float32(0.3), float32(0.36)
	baseY := float32(0.2)
	c.solidAt(c.root, "Chest", primitives.Box(w, h, d), 0, baseY, 0, pal.Skin)
	if c.lod.AtLeast(lod.Medium) {
		c.solidAt(c.root, "Band", primitives.Box(w*1.02, h*0.2, d*1.02), 0, baseY, 0, pal.Detail)
	}

	// Lid, pivoted at the back edge so rotating it yawns the mouth open.
	lid := c.root.Child("Head").At(0, baseY+h/2, -d/2).Rotated(-0.35, 0, 0)
	c.solidAt(lid, "LidBox", primitives.Box(w, h*0.4, d), 0, h*0.2, d/2, pal.Skin)
	c.limbs.Head = lid
	c.eyePair(lid, w*0.35, eyes.Menacing, pal.Eye, pal.Pupil)

	// Teeth line both jaws.
	teeth := 6
	if !c.lod.AtLeast(lod.Medium) {
		teeth = 0
	}
	for i := 0; i < teeth; i++ {
		x := -w*0.38 + w*0.76*float32(i)/float32(teeth-1)
		c.solidAt(lid, "UpperTooth", c.cylinder(0, 0.022, 0.06), x, 0, d*0.95, pal.Detail).Rotated(math32.Pi, 0, 0)
		c.solidAt(c.root, "LowerTooth", c.cylinder(0, 0.022, 0.06), x, baseY+h/2, d/2*0.95, pal.Detail)
	}

	// Tongue lolls out the front; the tip is the grab point.
	tongue := c.root.Child("Weapon").At(0, baseY+h*0.3, d/2)
	c.solidAt(tongue, "TongueBase", c.capsule(0.04, 0.2), 0, -0.04, 0.1, rl.NewColor(200, 90, 110, 255)).
		Rotated(math32.Pi/2.3, 0, 0)
	c.limbs.Weapon = tongue

	// Corner tendrils as arms, stub feet as legs.
	for _, side := range []float32{-1, 1} {
		armName := "LeftArm"
		legName := "LeftLeg"
		if side > 0 {
			armName = "RightArm"
			legName = "RightLeg"
		}
		tendril := c.root.Child(armName).At(side*w/2, baseY+h/2, 0)
		c.solidAt(tendril, "Tendril", c.capsule(0.025, 0.18), side*0.06, 0.06, 0, pal.Accent).
			Rotated(0, 0, -side*math32.Pi/3)
		foot := c.root.Child(legName).At(side*w*0.3, baseY-h/2, 0)
		c.solidAt(foot, "FootPad", c.sphere(0.05), 0, 0, 0, pal.Accent).Scaled(1, 0.6, 1.2)
		if side > 0 {
			c.limbs.RightArm = tendril
			c.limbs.RightLeg = foot
		} else {
			c.limbs.LeftArm = tendril
			c.limbs.LeftLeg = foot
		}
	}
}

// Lava elemental: molten humanoid torso rising from a cooled rock ring; magma
// cracks glow through the crust at Medium+.
func buildLavaElemental(c *ctx) {
	base := palette.Palette{
		Skin:   rl.NewColor(60, 45, 40, 255),
		Accent: rl.NewColor(255, 120, 30, 255),
		Eye:    rl.NewColor(255, 230, 120, 255),
		Pupil:  rl.NewColor(255, 160, 40, 255),
		Detail: rl.NewColor(255, 90, 20, 255),
	}
	pal := c.resolvePalette("lava_elemental", base)

	torsoR := float32(0.24)
	torsoY := float32(0.6)
	g := anatomy.Compute(torsoY, torsoR, 2*torsoR, 1.15)
	c.solidAt(c.root, "Torso", c.sphere(torsoR), 0, torsoY, 0, pal.Skin).Scaled(1, 1.15, 0.95)
	// Cooled rock ring where the body meets the lava pool.
	c.solidAt(c.root, "Ring", c.torus(0.05, torsoR*1.2), 0, 0.1, 0, pal.Skin)
	c.solidAt(c.root, "Pool", c.cylinder(torsoR*1.15, torsoR*1.25, 0.06), 0, 0.03, 0, pal.Accent)

	headR := float32(0.14)
	head := c.headOn(g, headR, 0.08, pal.Skin)
	c.eyePair(head, headR, eyes.Menacing, pal.Eye, pal.Pupil)
	if c.lod.AtLeast(lod.Medium) {
		c.solidAt(head, "Flame", c.cylinder(0, headR*0.5, headR*0.9), 0, headR*0.9, 0, pal.Detail)
	}

	c.arm(g, -1, 0.07, 0.3, pal.Skin)
	c.arm(g, 1, 0.07, 0.3, pal.Skin)
	// Magma fists replace the standard hand spheres' color.
	for _, armNode := range []*scenegraph.Node{c.limbs.LeftArm, c.limbs.RightArm} {
		if hand := armNode.Find(HandNodeName); hand != nil {
			hand.Shaded(pal.Accent)
			hand.Scale = rl.NewVector3(1.4, 1.4, 1.4)
		}
	}
	// Rises from the pool: no legs, but the pool anchors it so it is not a flyer.
	c.limbs.LeftLeg = c.root.Child("LeftLeg").At(-torsoR*0.5, 0.06, 0)
	c.limbs.RightLeg = c.root.Child("RightLeg").At(torsoR*0.5, 0.06, 0)

	if c.lod.AtLeast(lod.Medium) {
		for i := 0; i < 4; i++ {
			a := variation.Range(c.rng, 0, 2*math32.Pi)
			c.solidAt(c.root, "Crack", primitives.Box(0.02, 0.18, 0.02),
				math32.Sin(a)*torsoR*0.8, torsoY, math32.Cos(a)*torsoR*0.8, pal.Detail).Rotated(0, a, 0.3)
		}
	}
}

// Void spawn: a floating tear in space. Dark core, orbit ring, grasping wisp
// arms; no legs.
func buildVoidSpawn(c *ctx) {
	base := palette.Palette{
		Skin:   rl.NewColor(20, 15, 35, 255),
		Accent: rl.NewColor(90, 40, 160, 255),
		Eye:    rl.NewColor(200, 160, 255, 255),
		Pupil:  rl.NewColor(255, 255, 255, 255),
		Detail: rl.NewColor(60, 30, 110, 255),
	}
	pal := c.resolvePalette("void_spawn", base)

	coreR := float32(0.18)
	coreY := float32(0.95)
	core := c.solidAt(c.root, "Head", c.sphere(coreR), 0, coreY, 0, pal.Skin)
	c.limbs.Head = core
	c.solidAt(c.root, "OrbitRing", c.torus(0.03, coreR*1.5), 0, coreY, 0, pal.Accent).Rotated(0.4, 0, 0.2)

	g := eyes.Compute(coreR, eyes.Arachnid, 1)
	// Three eyes in a vertical arc on the core.
	for i := -1; i <= 1; i++ {
		c.solidAt(core, "Eye", c.sphere(g.EyeRadius*0.8), 0, float32(i)*g.EyeY*1.6, g.EyeZ, pal.Eye)
	}

	for _, side := range []float32{-1, 1} {
		name := "LeftArm"
		if side > 0 {
			name = "RightArm"
		}
		wisp := c.root.Child(name).At(side*coreR*1.1, coreY-coreR*0.3, 0)
		wispLen := variation.Jitter(c.rng, 0.3, 0.15)
		c.solidAt(wisp, "WispArm", c.capsule(0.03, wispLen), side*0.05, -wispLen/2, 0.05, pal.Accent).
			Rotated(0.2, 0, side*0.3)
		c.solidAt(wisp, "WispTip", c.sphere(0.035), side*0.08, -wispLen, 0.09, pal.Detail)
		if side > 0 {
			c.limbs.RightArm = wisp
		} else {
			c.limbs.LeftArm = wisp
		}
	}

	if c.lod.AtLeast(lod.Medium) {
		// Motes orbiting below the core.
		for i := 0; i < 4; i++ {
			a := variation.Range(c.rng, 0, 2*math32.Pi)
			d := coreR * variation.Range(c.rng, 1.4, 2)
			c.solidAt(c.root, "Mote", c.sphere(0.02), math32.Sin(a)*d, coreY-variation.Range(c.rng, 0.1, 0.4), math32.Cos(a)*d, pal.Detail)
		}
	}
}
