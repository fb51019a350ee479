package game

import (
	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const endCodeMaxLen = 16

// Colors
var (
	colorBgDark      = rl.NewColor(25, 25, 32, 240)
	colorBgElement   = rl.NewColor(45, 45, 58, 255)
	colorBgHover     = rl.NewColor(60, 60, 78, 255)
	colorAccent      = rl.NewColor(200, 160, 90, 255)
	colorTextPrimary = rl.NewColor(235, 235, 240, 255)
)

type endCodePrompt struct {
	open bool
	text string
}

func applyMenuStyle() {
	gui.SetStyle(gui.DEFAULT, gui.BACKGROUND_COLOR, gui.NewColorPropertyValue(colorBgDark))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_NORMAL, gui.NewColorPropertyValue(colorBgElement))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_FOCUSED, gui.NewColorPropertyValue(colorBgHover))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_PRESSED, gui.NewColorPropertyValue(colorAccent))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(colorTextPrimary))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_FOCUSED, gui.NewColorPropertyValue(colorTextPrimary))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_FOCUSED, gui.NewColorPropertyValue(colorAccent))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 20)
}

func (g *Game) openPrompt() {
	if g.prompt.open {
		return
	}
	g.prompt = endCodePrompt{open: true}
	g.World.Controller.ReleaseAll()
	g.cursor.Enable()
}

func (g *Game) closePrompt() {
	g.prompt = endCodePrompt{}
	g.cursor.Disable()
}

func (g *Game) submitPrompt() {
	if g.World.SubmitEndCode(g.prompt.text) {
		g.log.Info("doors unlocked")
	}
	g.closePrompt()
}

func centered(w, h float32) rl.Rectangle {
	sw := float32(rl.GetScreenWidth())
	sh := float32(rl.GetScreenHeight())
	return rl.Rectangle{X: (sw - w) / 2, Y: (sh - h) / 2, Width: w, Height: h}
}

func (g *Game) drawPauseMenu() {
	rl.DrawRectangle(0, 0, int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()), rl.Fade(rl.Black, 0.5))

	title, label := "Paused", "Resume"
	if !g.started {
		title, label = g.cfg.Window.Title, "Start"
	}
	panel := centered(260, 170)
	gui.Panel(panel, title)

	resume := rl.Rectangle{X: panel.X + 30, Y: panel.Y + 45, Width: panel.Width - 60, Height: 40}
	if gui.Button(resume, label) {
		g.resume()
	}
	quit := resume
	quit.Y += 55
	if gui.Button(quit, "Quit") {
		g.quit = true
	}
}

func (g *Game) drawEndCodePrompt() {
	rl.DrawRectangle(0, 0, int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()), rl.Fade(rl.Black, 0.5))

	panel := centered(320, 180)
	gui.Panel(panel, "Enter the code")

	box := rl.Rectangle{X: panel.X + 20, Y: panel.Y + 50, Width: panel.Width - 40, Height: 40}
	if gui.TextBox(box, &g.prompt.text, endCodeMaxLen, true) {
		// TextBox reports true when Enter is pressed
		g.submitPrompt()
		return
	}

	half := (panel.Width - 50) / 2
	ok := rl.Rectangle{X: panel.X + 20, Y: panel.Y + 115, Width: half, Height: 40}
	if gui.Button(ok, "Unlock") {
		g.submitPrompt()
		return
	}
	cancel := ok
	cancel.X += half + 10
	if gui.Button(cancel, "Cancel") {
		g.closePrompt()
	}
}
