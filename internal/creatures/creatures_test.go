package creatures

import (
	"fmt"
	"os"
	"strings"
	"testing"

	"monsterforge/internal/anatomy"
	"monsterforge/internal/lod"
	"monsterforge/internal/logger"
	"monsterforge/internal/scenegraph"
	"monsterforge/internal/variation"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func testOpts(extra ...Option) []Option {
	opts := []Option{
		WithoutDefs(),
		WithRandom(variation.NewSeeded(1)),
		WithLOD(lod.High),
	}
	return append(opts, extra...)
}

func TestResolve(t *testing.T) {
	tests := []struct {
		key  string
		want Kind
		ok   bool
	}{
		{"goblin", KindGoblin, true},
		{"GOBLIN", KindGoblin, true},
		{"  slime ", KindSlime, true},
		{"rat", KindDungeonRat, true},
		{"boss_goblin", KindGoblinWarlord, true},
		{"skeleton_lord", KindSkeletonLord, true},
		{"dragon", KindDragonKing, true},
		{"butcher", KindTheButcher, true},
		{"floating_eye", KindEye, true},
		{"gelatinous_dodecahedron", KindSlime, false},
		{"", KindSlime, false},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, ok := Resolve(tt.key)
			if ok != tt.ok {
				t.Fatalf("Resolve(%q) ok = %v, want %v", tt.key, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("Resolve(%q) = %v, want %v", tt.key, got, tt.want)
			}
		})
	}
}

func TestEveryKeyResolves(t *testing.T) {
	for _, key := range Keys() {
		if _, ok := Resolve(key); !ok {
			t.Errorf("advertised key %q does not resolve", key)
		}
	}
}

func TestBuildUnknownKeyFallsBackToSlime(t *testing.T) {
	log := logger.New()
	root := scenegraph.NewRoot("world")
	limbs, err := Build(root, "definitely_not_a_creature", testOpts(WithLogger(log))...)
	if err != nil {
		t.Fatalf("unknown key must not error, got %v", err)
	}
	if limbs.Head == nil {
		t.Error("fallback slime must still have a head")
	}
	if len(root.Children()) != 1 || root.Children()[0].Name != "slime" {
		t.Errorf("fallback must build under a slime root, got %v", root.Children())
	}
	joined := strings.Join(log.Lines(), "\n")
	if !strings.Contains(joined, "unknown creature key") {
		t.Errorf("fallback must be logged, got %q", joined)
	}
}

func TestUnknownKeyMatchesSlime(t *testing.T) {
	build := func(key string) []string {
		root := scenegraph.NewRoot("world")
		if _, err := Build(root, key,
			WithoutDefs(), WithRandom(variation.NewSeeded(11)), WithLOD(lod.Medium)); err != nil {
			t.Fatalf("Build %q: %v", key, err)
		}
		return snapshot(root)
	}
	a, b := build("slime"), build("who_knows")
	if len(a) != len(b) {
		t.Fatalf("node counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("fallback diverges from slime at node %d:\n%s\n%s", i, a[i], b[i])
		}
	}
}

func TestBuildOptionErrors(t *testing.T) {
	root := scenegraph.NewRoot("world")
	tests := []struct {
		name   string
		parent *scenegraph.Node
		opts   []Option
	}{
		{"nil parent", nil, testOpts()},
		{"zero scale", root, testOpts(WithScale(0))},
		{"negative scale", root, testOpts(WithScale(-2))},
		{"invalid lod", root, []Option{WithoutDefs(), WithLOD(lod.Level(9))}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Build(tt.parent, "goblin", tt.opts...); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestLimbContractAllKinds(t *testing.T) {
	for _, kind := range Kinds() {
		for _, level := range []lod.Level{lod.Low, lod.Medium, lod.High} {
			t.Run(fmt.Sprintf("%s_%s", kind, level), func(t *testing.T) {
				root := scenegraph.NewRoot("world")
				limbs, err := BuildKind(root, kind,
					WithoutDefs(), WithRandom(variation.NewSeeded(3)), WithLOD(level))
				if err != nil {
					t.Fatalf("BuildKind: %v", err)
				}
				if limbs.Head == nil {
					t.Error("every creature needs a Head handle")
				}
				if limbs.LeftArm == nil || limbs.RightArm == nil {
					t.Error("every creature needs both arm handles")
				}
				if kind.Legless() {
					if limbs.LeftLeg != nil || limbs.RightLeg != nil {
						t.Error("legless kinds must not register leg handles")
					}
				} else if limbs.LeftLeg == nil || limbs.RightLeg == nil {
					t.Error("walking kinds need both leg handles")
				}
				if root.SolidCount() == 0 {
					t.Error("build produced no geometry")
				}
			})
		}
	}
}

func TestLODReducesGeometry(t *testing.T) {
	counts := map[lod.Level]int{}
	for _, level := range []lod.Level{lod.Low, lod.Medium, lod.High} {
		root := scenegraph.NewRoot("world")
		if _, err := BuildKind(root, KindGoblin,
			WithoutDefs(), WithRandom(variation.NewSeeded(5)), WithLOD(level)); err != nil {
			t.Fatalf("BuildKind: %v", err)
		}
		counts[level] = root.SolidCount()
	}
	if !(counts[lod.Low] < counts[lod.Medium] && counts[lod.Medium] < counts[lod.High]) {
		t.Errorf("solid counts must grow with detail: low %d, medium %d, high %d",
			counts[lod.Low], counts[lod.Medium], counts[lod.High])
	}
}

// snapshot flattens a tree into comparable lines of name, position, and scale.
func snapshot(root *scenegraph.Node) []string {
	var out []string
	root.Walk(func(n *scenegraph.Node, _ rl.Matrix) {
		out = append(out, fmt.Sprintf("%s %.5f,%.5f,%.5f %.5f,%.5f,%.5f",
			n.Name, n.Position.X, n.Position.Y, n.Position.Z, n.Scale.X, n.Scale.Y, n.Scale.Z))
	})
	return out
}

func TestFixedSeedDeterminism(t *testing.T) {
	build := func() []string {
		root := scenegraph.NewRoot("world")
		if _, err := Build(root, "goblin_shaman",
			WithoutDefs(), WithRandom(variation.NewSeeded(77)), WithLOD(lod.High)); err != nil {
			t.Fatalf("Build: %v", err)
		}
		return snapshot(root)
	}
	a, b := build(), build()
	if len(a) != len(b) {
		t.Fatalf("node counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("node %d differs:\n%s\n%s", i, a[i], b[i])
		}
	}
}

func TestDifferentSeedsVary(t *testing.T) {
	build := func(seed int64) []string {
		root := scenegraph.NewRoot("world")
		if _, err := Build(root, "goblin", testOpts(WithRandom(variation.NewSeeded(seed)))...); err != nil {
			t.Fatalf("Build: %v", err)
		}
		return snapshot(root)
	}
	a, b := build(1), build(2)
	same := len(a) == len(b)
	if same {
		for i := range a {
			if a[i] != b[i] {
				same = false
				break
			}
		}
	}
	if same {
		t.Error("different seeds produced identical geometry")
	}
}

func TestGoblinHeadSeam(t *testing.T) {
	root := scenegraph.NewRoot("world")
	limbs, err := Build(root, "goblin", testOpts()...)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	// Torso top is 0.788; the head center sits one head radius above it minus
	// the neck overlap, so the silhouette never shows a gap.
	g := anatomy.Compute(0.5, 0.24, 0.48, 1.2)
	wantY := g.Top() + 0.21 - anatomy.DefaultOverlap(0.08)
	if d := limbs.Head.Position.Y - wantY; d > 1e-5 || d < -1e-5 {
		t.Errorf("head Y = %g, want %g", limbs.Head.Position.Y, wantY)
	}
	headBottom := limbs.Head.Position.Y - 0.21
	if headBottom > g.Top() {
		t.Errorf("head bottom %g must dip below torso top %g", headBottom, g.Top())
	}
}

func TestHandAttachmentPoint(t *testing.T) {
	root := scenegraph.NewRoot("world")
	limbs, err := Build(root, "goblin", testOpts()...)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	hand := limbs.RightArm.Find(HandNodeName)
	if hand == nil {
		t.Fatal("right arm must carry a Hand node")
	}
	if limbs.Weapon == nil {
		t.Fatal("goblin carries a club")
	}
	// The weapon hangs under the hand so swinging the arm carries it along.
	for p := limbs.Weapon; p != nil; p = p.Parent() {
		if p == hand {
			return
		}
	}
	t.Error("weapon must be parented under the Hand node")
}

func TestBuildScaleAppliedAtRoot(t *testing.T) {
	ref := scenegraph.NewRoot("world")
	if _, err := Build(ref, "goblin", testOpts()...); err != nil {
		t.Fatalf("Build: %v", err)
	}
	root := scenegraph.NewRoot("world")
	if _, err := Build(root, "goblin", testOpts(WithScale(2))...); err != nil {
		t.Fatalf("Build: %v", err)
	}
	a, b := ref.Children()[0].Scale, root.Children()[0].Scale
	if b.X != 2*a.X || b.Y != 2*a.Y || b.Z != 2*a.Z {
		t.Errorf("scale 2 root = %v, want double of %v", b, a)
	}
}

func TestSizeVariationBounds(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		root := scenegraph.NewRoot("world")
		opts := []Option{WithoutDefs(), WithRandom(variation.NewSeeded(seed)), WithLOD(lod.Low)}
		if _, err := Build(root, "goblin", opts...); err != nil {
			t.Fatalf("Build seed %d: %v", seed, err)
		}
		s := root.Children()[0].Scale
		if s.X < 0.85 || s.X > 1.5 {
			t.Errorf("seed %d: root scale %g outside the size variation range", seed, s.X)
		}
		if s.X != s.Y || s.Y != s.Z {
			t.Errorf("seed %d: size variation must stay uniform, got %v", seed, s)
		}
	}
}

func TestDefSizeScalesRoot(t *testing.T) {
	chdirTemp(t)
	if err := os.MkdirAll("assets/creatures", 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile("assets/creatures/goblin.yaml", []byte("size: 1.5\n"), 0644); err != nil {
		t.Fatal(err)
	}

	ref := scenegraph.NewRoot("world")
	if _, err := Build(ref, "goblin", testOpts()...); err != nil {
		t.Fatalf("Build without defs: %v", err)
	}
	root := scenegraph.NewRoot("world")
	opts := []Option{WithRandom(variation.NewSeeded(1)), WithLOD(lod.High)}
	if _, err := Build(root, "goblin", opts...); err != nil {
		t.Fatalf("Build with def: %v", err)
	}
	a, b := ref.Children()[0].Scale, root.Children()[0].Scale
	if b.Y != 1.5*a.Y {
		t.Errorf("def size 1.5 gave root scale %g, want %g", b.Y, 1.5*a.Y)
	}
}

func TestBossesAreBiggerThanBases(t *testing.T) {
	rootScale := func(kind Kind) float32 {
		root := scenegraph.NewRoot("world")
		if _, err := BuildKind(root, kind, testOpts()...); err != nil {
			t.Fatalf("BuildKind %v: %v", kind, err)
		}
		return root.Children()[0].Scale.Y
	}
	pairs := []struct{ boss, base Kind }{
		{KindGoblinWarlord, KindGoblin},
		{KindSkeletonLord, KindSkeleton},
		{KindSpiderQueen, KindSpider},
	}
	for _, p := range pairs {
		if bs, rs := rootScale(p.boss), rootScale(p.base); bs <= rs {
			t.Errorf("%v scale %g must exceed %v scale %g", p.boss, bs, p.base, rs)
		}
	}
}

func TestWithColorOverridesSkin(t *testing.T) {
	root := scenegraph.NewRoot("world")
	// WithColor pins the skin before the hue jitter; the torso color must not be
	// the default goblin green family.
	if _, err := Build(root, "goblin", append(testOpts(), WithColor(rl.NewColor(200, 30, 30, 255)))...); err != nil {
		t.Fatalf("Build: %v", err)
	}
	torso := root.Find("Torso")
	if torso == nil {
		t.Fatal("goblin must have a Torso node")
	}
	if torso.Color.R <= torso.Color.G {
		t.Errorf("red skin override lost: torso color %v", torso.Color)
	}
}

func TestSetDefaultLevel(t *testing.T) {
	defer SetDefaultLevel(lod.High)

	SetDefaultLevel(lod.Low)
	root := scenegraph.NewRoot("world")
	if _, err := Build(root, "goblin", WithoutDefs(), WithRandom(variation.NewSeeded(1))); err != nil {
		t.Fatalf("Build: %v", err)
	}
	low := root.SolidCount()

	SetDefaultLevel(lod.Level(42)) // invalid, ignored
	root2 := scenegraph.NewRoot("world")
	if _, err := Build(root2, "goblin", WithoutDefs(), WithRandom(variation.NewSeeded(1))); err != nil {
		t.Fatalf("Build: %v", err)
	}
	if root2.SolidCount() != low {
		t.Error("invalid SetDefaultLevel must not change the default")
	}
}

func TestKindString(t *testing.T) {
	if KindGoblin.String() != "goblin" {
		t.Errorf("KindGoblin = %q", KindGoblin.String())
	}
	if Kind(-1).String() != "slime" || Kind(999).String() != "slime" {
		t.Error("out-of-range kinds stringify as slime")
	}
}

// chdirTemp switches into a fresh temp dir for the test, restoring the
// previous working directory on cleanup (t.Chdir needs Go 1.24+).
func chdirTemp(t *testing.T) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(old) })
}
