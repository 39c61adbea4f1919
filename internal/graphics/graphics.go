package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

const (
	windowWidth  = 1600
	windowHeight = 900
)

// Run starts the window and main loop. Each frame it calls update (e.g. camera input), then clears the screen and calls draw.
// This keeps the graphics layer separate from the gallery scene content.
func Run(title string, update, draw func()) {
	rl.SetConfigFlags(rl.FlagMsaa4xHint)
	rl.InitWindow(windowWidth, windowHeight, title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(60)

	for !rl.WindowShouldClose() {
		update()

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(24, 26, 32, 255))
		draw()
		rl.EndDrawing()
	}
}
