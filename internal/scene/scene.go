// Package scene owns the preview camera, the editor grid, and the draw pass
// over the creature scene graph.
package scene

import (
	"monsterforge/internal/primitives"
	"monsterforge/internal/scenegraph"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	gridExtent     = 50
	gridMinorStep  = 1
	gridMajorStep  = 10
	gridMinorAlpha = 50
	gridMajorAlpha = 120
	axisLineAlpha  = 160
)

// lightDir is the direction to the key light, normalized-ish; the shader
// normalizes per fragment.
var lightDir = rl.NewVector3(0.5, 1, 0.5)

// Scene is the 3D viewport: a free camera, an optional grid, and a root node
// whose subtree is drawn through the solid registry each frame.
type Scene struct {
	Camera      rl.Camera3D
	GridVisible bool
	Root        *scenegraph.Node

	reg *primitives.Registry
}

// New returns a scene with a fresh root node and default camera.
// Camera: position (8,6,10), target at creature chest height, up (0,1,0), fovy 45°.
func New() *Scene {
	s := &Scene{
		Root: scenegraph.NewRoot("world"),
		reg:  primitives.NewRegistry(),
	}
	s.Camera.Position = rl.NewVector3(8, 6, 10)
	s.Camera.Target = rl.NewVector3(0, 0.6, 0)
	s.Camera.Up = rl.NewVector3(0, 1, 0)
	s.Camera.Fovy = 45
	s.Camera.Projection = rl.CameraPerspective
	s.GridVisible = true
	return s
}

// SetGridVisible sets whether the editor grid is drawn.
func (s *Scene) SetGridVisible(visible bool) {
	s.GridVisible = visible
}

// Update runs once per frame. Uses raylib UpdateCamera with CameraFree so the
// user can fly around the gallery.
func (s *Scene) Update() {
	rl.UpdateCamera(&s.Camera, rl.CameraFree)
}

// Draw renders the grid (when visible) and every solid in the scene graph.
// Must be called inside BeginDrawing/EndDrawing.
func (s *Scene) Draw() {
	rl.BeginMode3D(s.Camera)

	if s.GridVisible {
		drawEditorGrid()
	}

	s.reg.SetView(s.Camera.Position, lightDir)
	s.Root.Walk(func(n *scenegraph.Node, world rl.Matrix) {
		if n.Solid != nil {
			s.reg.Draw(*n.Solid, world, n.Color)
		}
	})

	rl.EndMode3D()
}

// drawEditorGrid draws an infinite-style grid on the XZ plane with major/minor lines and axis lines.
// Reuses start/end vectors to avoid per-frame allocations in the hot loop.
func drawEditorGrid() {
	minor := rl.NewColor(128, 128, 128, gridMinorAlpha)
	major := rl.NewColor(160, 160, 160, gridMajorAlpha)
	axisX := rl.NewColor(220, 80, 80, axisLineAlpha)
	axisY := rl.NewColor(80, 220, 80, axisLineAlpha)
	axisZ := rl.NewColor(80, 80, 220, axisLineAlpha)

	var start, end rl.Vector3
	for x := -gridExtent; x <= gridExtent; x += gridMinorStep {
		c := major
		if x%gridMajorStep != 0 {
			c = minor
		}
		start.X, start.Y, start.Z = float32(x), 0, float32(-gridExtent)
		end.X, end.Y, end.Z = float32(x), 0, float32(gridExtent)
		rl.DrawLine3D(start, end, c)
	}
	for z := -gridExtent; z <= gridExtent; z += gridMinorStep {
		c := major
		if z%gridMajorStep != 0 {
			c = minor
		}
		start.X, start.Y, start.Z = float32(-gridExtent), 0, float32(z)
		end.X, end.Y, end.Z = float32(gridExtent), 0, float32(z)
		rl.DrawLine3D(start, end, c)
	}

	// Axis lines through origin (X=red, Y=green, Z=blue)
	start.X, start.Y, start.Z = float32(-gridExtent), 0, 0
	end.X, end.Y, end.Z = float32(gridExtent), 0, 0
	rl.DrawLine3D(start, end, axisX)
	start.X, start.Y, start.Z = 0, float32(-gridExtent), 0
	end.X, end.Y, end.Z = 0, float32(gridExtent), 0
	rl.DrawLine3D(start, end, axisY)
	start.X, start.Y, start.Z = 0, 0, float32(-gridExtent)
	end.X, end.Y, end.Z = 0, 0, float32(gridExtent)
	rl.DrawLine3D(start, end, axisZ)
}
