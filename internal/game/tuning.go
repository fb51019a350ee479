package game

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"seminarbot/internal/controller"
)

// tuningSlider edits one controller field live from the debug overlay.
type tuningSlider struct {
	label    string
	format   string
	min, max float32
	field    func(*controller.Config) *float32
}

// Ranges stay inside what controller.Config.Validate accepts.
var tuningSliders = []tuningSlider{
	{"Sensitivity", "%.4f", 0.0001, 0.01, func(c *controller.Config) *float32 { return &c.PointerSensitivity }},
	{"Max speed", "%.1f", 0.1, 10, func(c *controller.Config) *float32 { return &c.MaxSpeed }},
	{"Decay", "%.3f", 0, 0.999, func(c *controller.Config) *float32 { return &c.Decay }},
	{"Acceleration", "%.0f", 1, 100, func(c *controller.Config) *float32 { return &c.Acceleration }},
}

// drawTuning draws the sliders at (x, y). They take the mouse only while
// the cursor is visible, i.e. from the pause menu.
func (g *Game) drawTuning(x, y float32) {
	cfg := g.World.Controller.Config()
	changed := false
	for i, s := range tuningSliders {
		v := s.field(&cfg)
		rowY := y + float32(i)*26
		rl.DrawText(s.label, int32(x), int32(rowY)+3, 16, rl.Green)
		bounds := rl.Rectangle{X: x + 110, Y: rowY, Width: 160, Height: 20}
		next := gui.Slider(bounds, "", fmt.Sprintf(s.format, *v), *v, s.min, s.max)
		if next != *v {
			*v = next
			changed = true
		}
	}
	if !changed {
		return
	}
	if err := g.World.Controller.SetConfig(cfg); err != nil {
		g.log.WithError(err).Warn("tuning rejected")
	}
}
