// Command preview opens a window with one of every creature laid out on a
// grid. Fly the camera with the raylib free-camera controls.
//
// Keys: R rebuilds the gallery with a fresh variation seed, 1/2/3 switch the
// detail level (low/medium/high), G toggles the grid, F and M toggle the FPS
// and memory overlays.
package main

import (
	"fmt"

	"monsterforge/internal/creatures"
	"monsterforge/internal/debug"
	"monsterforge/internal/engineconfig"
	"monsterforge/internal/graphics"
	"monsterforge/internal/lod"
	"monsterforge/internal/logger"
	"monsterforge/internal/scene"
	"monsterforge/internal/scenegraph"
	"monsterforge/internal/spawn"
	"monsterforge/internal/variation"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type app struct {
	scn     *scene.Scene
	log     *logger.Logger
	dbg     *debug.Debug
	prefs   engineconfig.EnginePrefs
	level   lod.Level
	seed    int64
	gallery *galleryState
}

type galleryState struct {
	node    *scenegraph.Node
	entries []spawn.GalleryEntry
}

func main() {
	log := logger.New()
	prefs, _ := engineconfig.Load()

	a := &app{
		scn:   scene.New(),
		log:   log,
		dbg:   debug.New(),
		prefs: prefs,
		level: prefs.LOD(),
		seed:  1,
	}
	a.dbg.SetShowFPS(prefs.ShowFPS)
	a.dbg.SetShowMemAlloc(prefs.ShowMemAlloc)
	a.scn.SetGridVisible(prefs.GridVisible)
	creatures.SetDefaultLevel(a.level)

	a.rebuild()

	graphics.Run("monsterforge preview", a.update, a.draw)
}

// rebuild tears down the current gallery subtree and builds a fresh one with
// the current seed and detail level.
func (a *app) rebuild() {
	if a.gallery != nil {
		a.gallery.node.Detach()
	}
	root := a.scn.Root.Child("gallery")
	entries, err := spawn.Gallery(root, spawn.GalleryOptions{
		Build: []creatures.Option{
			creatures.WithLOD(a.level),
			creatures.WithRandom(variation.NewSeeded(a.seed)),
		},
	})
	if err != nil {
		a.log.Log(fmt.Sprintf("gallery build: %v", err))
	}
	a.gallery = &galleryState{node: root, entries: entries}
	a.log.Log(fmt.Sprintf("built gallery: %d creatures, %s detail, seed %d",
		len(entries), a.level, a.seed))
}

func (a *app) update() {
	a.scn.Update()

	switch {
	case rl.IsKeyPressed(rl.KeyR):
		a.seed++
		a.rebuild()
	case rl.IsKeyPressed(rl.KeyOne):
		a.setLevel(lod.Low)
	case rl.IsKeyPressed(rl.KeyTwo):
		a.setLevel(lod.Medium)
	case rl.IsKeyPressed(rl.KeyThree):
		a.setLevel(lod.High)
	case rl.IsKeyPressed(rl.KeyG):
		a.scn.GridVisible = !a.scn.GridVisible
		a.prefs.GridVisible = a.scn.GridVisible
		a.savePrefs()
	case rl.IsKeyPressed(rl.KeyF):
		a.dbg.ShowFPS = !a.dbg.ShowFPS
		a.prefs.ShowFPS = a.dbg.ShowFPS
		a.savePrefs()
	case rl.IsKeyPressed(rl.KeyM):
		a.dbg.ShowMemAlloc = !a.dbg.ShowMemAlloc
		a.prefs.ShowMemAlloc = a.dbg.ShowMemAlloc
		a.savePrefs()
	}
}

func (a *app) setLevel(l lod.Level) {
	if l == a.level {
		return
	}
	a.level = l
	creatures.SetDefaultLevel(l)
	a.prefs.DetailLevel = l.String()
	a.savePrefs()
	a.rebuild()
}

func (a *app) savePrefs() {
	if err := engineconfig.Save(a.prefs); err != nil {
		a.log.Log(fmt.Sprintf("save prefs: %v", err))
	}
}

func (a *app) draw() {
	a.scn.Draw()
	a.dbg.Draw()
}
