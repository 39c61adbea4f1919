package scenegraph

import (
	"testing"

	"monsterforge/internal/primitives"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const eps = 1e-4

func closeV(a, b rl.Vector3) bool {
	d := rl.Vector3Subtract(a, b)
	return rl.Vector3Length(d) < eps
}

func worldOrigin(t *testing.T, root *Node, name string) rl.Vector3 {
	t.Helper()
	var got rl.Vector3
	found := false
	root.Walk(func(n *Node, world rl.Matrix) {
		if n.Name == name {
			got = rl.Vector3Transform(rl.Vector3Zero(), world)
			found = true
		}
	})
	if !found {
		t.Fatalf("node %q not reached by Walk", name)
	}
	return got
}

func TestWalkAccumulatesTranslation(t *testing.T) {
	root := NewRoot("root").At(1, 0, 0)
	root.Child("torso").At(0, 2, 0).Child("head").At(0, 1, 0)

	if got := worldOrigin(t, root, "head"); !closeV(got, rl.NewVector3(1, 3, 0)) {
		t.Errorf("head world origin = %v, want (1,3,0)", got)
	}
}

func TestWalkParentScaleAppliesToChildOffset(t *testing.T) {
	root := NewRoot("root").Scaled(2, 2, 2)
	root.Child("limb").At(0, 1, 0)

	if got := worldOrigin(t, root, "limb"); !closeV(got, rl.NewVector3(0, 2, 0)) {
		t.Errorf("limb world origin = %v, want (0,2,0)", got)
	}
}

func TestWalkParentRotationAppliesToChildOffset(t *testing.T) {
	// Rotate the parent a quarter turn about Y: a child at +Z swings to +X.
	root := NewRoot("root").Rotated(0, rl.Pi/2, 0)
	root.Child("eye").At(0, 0, 1)

	if got := worldOrigin(t, root, "eye"); !closeV(got, rl.NewVector3(1, 0, 0)) {
		t.Errorf("eye world origin = %v, want (1,0,0)", got)
	}
}

func TestFind(t *testing.T) {
	root := NewRoot("root")
	arm := root.Child("RightArm")
	arm.Child("UpperArm")
	hand := arm.Child("Hand")

	if got := root.Find("Hand"); got != hand {
		t.Errorf("Find(Hand) = %v, want the hand node", got)
	}
	if got := arm.Find("Hand"); got != hand {
		t.Error("Find must work from any subtree root")
	}
	if got := root.Find("Tentacle"); got != nil {
		t.Errorf("Find of a missing name = %v, want nil", got)
	}
}

func TestDetach(t *testing.T) {
	root := NewRoot("root")
	a := root.Child("a")
	b := root.Child("b")

	a.Detach()
	if len(root.Children()) != 1 || root.Children()[0] != b {
		t.Fatalf("after detach, children = %v", root.Children())
	}
	if a.Parent() != nil {
		t.Error("detached node must have nil parent")
	}
	// Detaching a root is a no-op.
	root.Detach()
}

func TestCounts(t *testing.T) {
	root := NewRoot("root")
	torso := root.Child("torso").WithSolid(primitives.Sphere(0.5))
	torso.Child("joint").WithSolid(primitives.Sphere(0.1))
	root.Child("pivot") // transform only, no solid

	if got := root.Count(); got != 4 {
		t.Errorf("Count = %d, want 4", got)
	}
	if got := root.SolidCount(); got != 2 {
		t.Errorf("SolidCount = %d, want 2", got)
	}
}

func TestWithSolidCopies(t *testing.T) {
	s := primitives.Sphere(0.5)
	n := NewRoot("n").WithSolid(s)
	s.Radius = 9
	if n.Solid.Radius != 0.5 {
		t.Errorf("node solid radius = %g, want the value at attach time", n.Solid.Radius)
	}
}
