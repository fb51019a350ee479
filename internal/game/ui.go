package game

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"seminarbot/internal/inventory"
	"seminarbot/internal/world"
)

const (
	hintDistance = 2.5
	slotSize     = 48
)

func (g *Game) DrawUI() {
	g.drawCrosshair()
	g.drawStamina()
	g.drawSlots()
	g.drawHint()

	if text, ok := g.HUD.Notice(); ok {
		drawCenteredText(text, int32(rl.GetScreenHeight())/3, 28, rl.RayWhite)
	}
	if g.won {
		drawCenteredText("You made it out.", int32(rl.GetScreenHeight())/2-60, 48, rl.Gold)
	}

	if g.DebugMode {
		c := g.World.Controller
		rl.DrawFPS(10, 10)
		rl.DrawText(fmt.Sprintf("Pos: (%.2f, %.2f, %.2f)", c.Position.X, c.Position.Y, c.Position.Z), 10, 35, 16, rl.Green)
		rl.DrawText(fmt.Sprintf("Speed: %.2f / %.2f  %s", c.Speed(), c.AllowedSpeed(), c.SprintState()), 10, 55, 16, rl.Green)
		rl.DrawText(fmt.Sprintf("Stamina: %.0f ms", c.Stamina()), 10, 75, 16, rl.Green)
		rl.DrawText(fmt.Sprintf("Update: %.2f ms  Draw: %.2f ms  Culled: %d", g.updateMs, g.drawMs, g.renderer.culled), 10, 95, 16, rl.Lime)
		g.drawTuning(10, 125)
	}

	switch {
	case g.prompt.open:
		g.drawEndCodePrompt()
	case g.paused:
		g.drawPauseMenu()
	}
}

func (g *Game) drawCrosshair() {
	cx := int32(rl.GetScreenWidth()) / 2
	cy := int32(rl.GetScreenHeight()) / 2
	rl.DrawLine(cx-6, cy, cx+6, cy, rl.RayWhite)
	rl.DrawLine(cx, cy-6, cx, cy+6, rl.RayWhite)
}

func (g *Game) drawStamina() {
	const w, h = 220, 14
	x := int32(20)
	y := int32(rl.GetScreenHeight()) - 40
	rl.DrawRectangle(x, y, w, h, rl.Fade(rl.Black, 0.5))
	fill := int32(g.HUD.Stamina() / 100 * w)
	rl.DrawRectangle(x, y, fill, h, rl.SkyBlue)
	rl.DrawRectangleLines(x, y, w, h, rl.RayWhite)
}

func (g *Game) drawSlots() {
	sw := int32(rl.GetScreenWidth())
	y := int32(rl.GetScreenHeight()) - slotSize - 20
	for i, v := range g.HUD.Slots() {
		x := sw - int32(inventory.Capacity-i)*(slotSize+8) - 12
		rl.DrawRectangle(x, y, slotSize, slotSize, rl.Fade(rl.Black, 0.5))
		rl.DrawRectangleLines(x, y, slotSize, slotSize, rl.RayWhite)
		if v != "" {
			tw := rl.MeasureText(v, 24)
			rl.DrawText(v, x+(slotSize-tw)/2, y+12, 24, rl.Gold)
		}
	}
}

func (g *Game) drawHint() {
	if g.paused || g.prompt.open {
		return
	}
	target, ok := g.World.LookTarget(hintDistance)
	if !ok {
		return
	}
	verb := "pick up"
	if target.Kind == world.TargetDoor {
		verb = "use"
	}
	drawCenteredText(fmt.Sprintf("[E] %s %s", verb, target.Name), int32(rl.GetScreenHeight())/2+30, 20, rl.RayWhite)
}

func drawCenteredText(text string, y, size int32, color rl.Color) {
	w := rl.MeasureText(text, size)
	rl.DrawText(text, (int32(rl.GetScreenWidth())-w)/2, y, size, color)
}
