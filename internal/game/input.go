package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"seminarbot/internal/controller"
	"seminarbot/internal/engine"
)

var bindings = []struct {
	key   int32
	logic controller.Key
}{
	{rl.KeyW, controller.KeyForward},
	{rl.KeyS, controller.KeyBack},
	{rl.KeyA, controller.KeyLeft},
	{rl.KeyD, controller.KeyRight},
	{rl.KeyLeftShift, controller.KeySprint},
	{rl.KeyE, controller.KeyInteract},
}

// pollInput forwards key edges and mouse motion to the controller. Edges
// are forwarded even when input is not accepted so releases are never lost.
func (g *Game) pollInput(sim engine.SimulationContext) {
	c := g.World.Controller
	for _, b := range bindings {
		if rl.IsKeyPressed(b.key) {
			c.KeyDown(sim, b.logic)
		}
		if rl.IsKeyReleased(b.key) {
			c.KeyUp(b.logic)
		}
	}
	if sim.InputFocused {
		d := rl.GetMouseDelta()
		c.Look(sim, d.X, d.Y)
	}
}
