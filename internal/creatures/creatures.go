// Package creatures assembles creature meshes from primitive solids. Each creature
// kind has one builder that composes a torso, head, limbs, and joint connectors
// under a caller-supplied parent node and reports the animatable sub-nodes back
// through Limbs. Dispatch is by creature kind, reached through a case-folded alias
// table so spawn tables can use any of a creature's historical keys.
package creatures

import (
	"fmt"
	"strings"
	"sync/atomic"

	"monsterforge/internal/lod"
	"monsterforge/internal/logger"
	"monsterforge/internal/palette"
	"monsterforge/internal/scenegraph"
	"monsterforge/internal/variation"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Kind enumerates every creature builder. Keeping this a closed enum (instead of
// raw string dispatch) means the builder table is exhaustive at compile time; the
// string surface lives only in the alias table.
type Kind int

const (
	KindSlime Kind = iota // also the fallback for unknown keys
	KindDungeonRat
	KindGoblin
	KindGoblinShaman
	KindGoblinThrower
	KindSpider
	KindMushroom
	KindBat
	KindSkeleton
	KindWolf
	KindLizard
	KindEye
	KindBadlama
	KindCrawlerKiller
	KindShadowStalker
	KindMimic
	KindFleshGolem
	KindLivingArmor
	KindPlagueBearer
	KindLavaElemental
	KindVoidSpawn
	KindGoblinWarlord
	KindSkeletonLord
	KindDragonKing
	KindSpiderQueen
	KindTheButcher
	KindMordecai
	KindMongo
	kindCount
)

// kindNames holds the canonical key for each kind.
var kindNames = [kindCount]string{
	KindSlime:         "slime",
	KindDungeonRat:    "dungeon_rat",
	KindGoblin:        "goblin",
	KindGoblinShaman:  "goblin_shaman",
	KindGoblinThrower: "goblin_thrower",
	KindSpider:        "spider",
	KindMushroom:      "mushroom",
	KindBat:           "bat",
	KindSkeleton:      "skeleton",
	KindWolf:          "wolf",
	KindLizard:        "lizard",
	KindEye:           "eye",
	KindBadlama:       "badlama",
	KindCrawlerKiller: "crawler_killer",
	KindShadowStalker: "shadow_stalker",
	KindMimic:         "mimic",
	KindFleshGolem:    "flesh_golem",
	KindLivingArmor:   "living_armor",
	KindPlagueBearer:  "plague_bearer",
	KindLavaElemental: "lava_elemental",
	KindVoidSpawn:     "void_spawn",
	KindGoblinWarlord: "goblin_warlord",
	KindSkeletonLord:  "skeleton_lord",
	KindDragonKing:    "dragon_king",
	KindSpiderQueen:   "spider_queen",
	KindTheButcher:    "the_butcher",
	KindMordecai:      "mordecai",
	KindMongo:         "mongo",
}

// String returns the canonical key for k.
func (k Kind) String() string {
	if k < 0 || k >= kindCount {
		return "slime"
	}
	return kindNames[k]
}

// aliases maps every accepted key (including the canonical ones) to a kind.
// Boss keys keep their old spawn-table spellings.
var aliases = func() map[string]Kind {
	m := make(map[string]Kind, 64)
	for k := Kind(0); k < kindCount; k++ {
		m[kindNames[k]] = k
	}
	extra := map[string]Kind{
		"rat":           KindDungeonRat,
		"giant_rat":     KindDungeonRat,
		"gobbo":         KindGoblin,
		"shaman":        KindGoblinShaman,
		"thrower":       KindGoblinThrower,
		"cave_spider":   KindSpider,
		"sporeling":     KindMushroom,
		"cave_bat":      KindBat,
		"dire_wolf":     KindWolf,
		"lizardman":     KindLizard,
		"floating_eye":  KindEye,
		"eyeball":       KindEye,
		"lama":          KindBadlama,
		"crawler":       KindCrawlerKiller,
		"stalker":       KindShadowStalker,
		"golem":         KindFleshGolem,
		"living_armour": KindLivingArmor,
		"plaguebearer":  KindPlagueBearer,
		"lava":          KindLavaElemental,
		"elemental":     KindLavaElemental,
		"void":          KindVoidSpawn,
		"boss_goblin":   KindGoblinWarlord,
		"goblin_king":   KindGoblinWarlord,
		"boss_skeleton": KindSkeletonLord,
		"skeleton_king": KindSkeletonLord,
		"boss_dragon":   KindDragonKing,
		"dragon":        KindDragonKing,
		"boss_spider":   KindSpiderQueen,
		"spider_boss":   KindSpiderQueen,
		"butcher":       KindTheButcher,
		"boss_butcher":  KindTheButcher,
		"boss_mordecai": KindMordecai,
		"boss_mongo":    KindMongo,
	}
	for key, k := range extra {
		m[key] = k
	}
	return m
}()

// Resolve maps a creature key (case-insensitive) to its kind. ok is false for
// unknown keys; callers that want the degrade-gracefully behavior use Build,
// which falls back to the slime builder.
func Resolve(typeKey string) (Kind, bool) {
	k, ok := aliases[strings.ToLower(strings.TrimSpace(typeKey))]
	return k, ok
}

// Keys returns every accepted creature key, canonical and alias, unordered.
func Keys() []string {
	out := make([]string, 0, len(aliases))
	for k := range aliases {
		out = append(out, k)
	}
	return out
}

// Kinds returns all creature kinds in enum order.
func Kinds() []Kind {
	out := make([]Kind, 0, kindCount)
	for k := Kind(0); k < kindCount; k++ {
		out = append(out, k)
	}
	return out
}

// Legless reports whether k is a flying/floating archetype that builds without
// leg nodes. The animation layer must tolerate nil LeftLeg/RightLeg for these.
func (k Kind) Legless() bool {
	switch k {
	case KindSlime, KindBat, KindEye, KindVoidSpawn:
		return true
	}
	return false
}

// Limbs is the builder output contract: non-owning handles into the tree built
// under the caller's parent node. The animation layer mutates the transforms of
// these nodes each frame; it never replaces the references, and the scene graph
// remains the sole owner of the nodes.
type Limbs struct {
	Head     *scenegraph.Node
	LeftArm  *scenegraph.Node
	RightArm *scenegraph.Node
	LeftLeg  *scenegraph.Node
	RightLeg *scenegraph.Node
	Weapon   *scenegraph.Node
	Torch    *scenegraph.Node
}

// defaultLevel is the process-wide detail level used when a build has no LOD
// override. Set once at startup from engine prefs; atomic so parallel spawners
// can read it safely.
var defaultLevel atomic.Int32

func init() {
	defaultLevel.Store(int32(lod.High))
}

// SetDefaultLevel sets the process-wide detail level for builds without a
// WithLOD override.
func SetDefaultLevel(l lod.Level) {
	if l.Valid() {
		defaultLevel.Store(int32(l))
	}
}

// Option configures a single Build call.
type Option func(*options)

type options struct {
	color  *rl.Color
	lodSet bool
	lod    lod.Level
	scale  float32
	src    variation.Source
	log    *logger.Logger
	noDefs bool
}

// WithColor overrides the creature's skin color.
func WithColor(c rl.Color) Option {
	return func(o *options) {
		cc := c
		o.color = &cc
	}
}

// WithLOD overrides the process-wide detail level for this build.
func WithLOD(l lod.Level) Option {
	return func(o *options) {
		o.lod = l
		o.lodSet = true
	}
}

// WithScale multiplies the creature's overall size. Must be > 0.
func WithScale(s float32) Option {
	return func(o *options) {
		o.scale = s
	}
}

// WithRandom supplies the variation source. Builds with the same source seed and
// options produce identical geometry; without this option each build draws from a
// fresh time-seeded source.
func WithRandom(src variation.Source) Option {
	return func(o *options) {
		o.src = src
	}
}

// WithLogger routes fallback and asset-override warnings to log.
func WithLogger(log *logger.Logger) Option {
	return func(o *options) {
		o.log = log
	}
}

// WithoutDefs skips the assets/creatures YAML palette overrides. Tests use this
// so geometry never depends on files in the working directory.
func WithoutDefs() Option {
	return func(o *options) {
		o.noDefs = true
	}
}

// Build constructs the creature identified by typeKey under parent and returns
// its animatable limb handles. Unknown keys degrade to the slime builder (logged
// when a logger is supplied) rather than failing; an error is returned only for
// malformed options: non-positive scale or an out-of-range LOD level.
//
// The build is a single synchronous pass; nothing is retained by this package
// after it returns.
func Build(parent *scenegraph.Node, typeKey string, opts ...Option) (*Limbs, error) {
	o := options{scale: 1}
	for _, opt := range opts {
		opt(&o)
	}
	if o.scale <= 0 {
		return nil, fmt.Errorf("creatures: scale must be > 0, got %g", o.scale)
	}
	if !o.lodSet {
		o.lod = lod.Level(defaultLevel.Load())
	}
	if !o.lod.Valid() {
		return nil, fmt.Errorf("creatures: invalid detail level %d", o.lod)
	}
	if parent == nil {
		return nil, fmt.Errorf("creatures: nil parent node")
	}
	if o.src == nil {
		o.src = variation.New()
	}

	kind, ok := Resolve(typeKey)
	if !ok {
		if o.log != nil {
			o.log.Log(fmt.Sprintf("unknown creature key %q, building slime", typeKey))
		}
		kind = KindSlime
	}
	return BuildKind(parent, kind, opts...)
}

// BuildKind is Build for callers that already hold a resolved Kind.
func BuildKind(parent *scenegraph.Node, kind Kind, opts ...Option) (*Limbs, error) {
	o := options{scale: 1}
	for _, opt := range opts {
		opt(&o)
	}
	if o.scale <= 0 {
		return nil, fmt.Errorf("creatures: scale must be > 0, got %g", o.scale)
	}
	if !o.lodSet {
		o.lod = lod.Level(defaultLevel.Load())
	}
	if !o.lod.Valid() {
		return nil, fmt.Errorf("creatures: invalid detail level %d", o.lod)
	}
	if parent == nil {
		return nil, fmt.Errorf("creatures: nil parent node")
	}
	if kind < 0 || kind >= kindCount {
		kind = KindSlime
	}
	if o.src == nil {
		o.src = variation.New()
	}

	c := &ctx{
		lod:    o.lod,
		rng:    o.src,
		color:  o.color,
		log:    o.log,
		noDefs: o.noDefs,
		limbs:  &Limbs{},
	}
	c.root = parent.Child(kind.String())
	// Caller scale times the per-build size wobble.
	size := o.scale * variation.SizeMul(o.src)
	c.root.Scaled(size, size, size)
	builderFor(kind)(c)
	return c.limbs, nil
}

// builderFor returns the builder for a kind. The switch is total over the enum.
func builderFor(k Kind) func(*ctx) {
	switch k {
	case KindSlime:
		return buildSlime
	case KindDungeonRat:
		return buildDungeonRat
	case KindGoblin:
		return buildGoblin
	case KindGoblinShaman:
		return buildGoblinShaman
	case KindGoblinThrower:
		return buildGoblinThrower
	case KindSpider:
		return buildSpider
	case KindMushroom:
		return buildMushroom
	case KindBat:
		return buildBat
	case KindSkeleton:
		return buildSkeleton
	case KindWolf:
		return buildWolf
	case KindLizard:
		return buildLizard
	case KindEye:
		return buildEyeTyrant
	case KindBadlama:
		return buildBadlama
	case KindCrawlerKiller:
		return buildCrawlerKiller
	case KindShadowStalker:
		return buildShadowStalker
	case KindMimic:
		return buildMimic
	case KindFleshGolem:
		return buildFleshGolem
	case KindLivingArmor:
		return buildLivingArmor
	case KindPlagueBearer:
		return buildPlagueBearer
	case KindLavaElemental:
		return buildLavaElemental
	case KindVoidSpawn:
		return buildVoidSpawn
	case KindGoblinWarlord:
		return buildGoblinWarlord
	case KindSkeletonLord:
		return buildSkeletonLord
	case KindDragonKing:
		return buildDragonKing
	case KindSpiderQueen:
		return buildSpiderQueen
	case KindTheButcher:
		return buildTheButcher
	case KindMordecai:
		return buildMordecai
	case KindMongo:
		return buildMongo
	}
	return buildSlime
}

// resolvePalette layers a builder's default palette with the optional YAML
// override for key, then the explicit color override, then the per-build hue
// and lightness jitter. A def that carries a size multiplier also scales the
// build root, so boss variants built on a base body inherit the base def's size.
func (c *ctx) resolvePalette(key string, base palette.Palette) palette.Palette {
	if !c.noDefs {
		def, err := palette.LoadDef(key)
		if err != nil {
			if c.log != nil {
				c.log.Log(fmt.Sprintf("creature def %s: %v", key, err))
			}
		} else {
			if def.Size > 0 {
				c.root.Scale = rl.Vector3Scale(c.root.Scale, def.Size)
			}
			if merged, err := palette.Apply(base, def); err == nil {
				base = merged
			} else if c.log != nil {
				c.log.Log(fmt.Sprintf("creature def %s: %v", key, err))
			}
		}
	}
	if c.color != nil {
		base.Skin = *c.color
	}
	return palette.VaryAll(c.rng, base)
}
