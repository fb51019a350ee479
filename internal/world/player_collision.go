package world

import (
	"seminarbot/internal/audio"
	"seminarbot/internal/physics"
)

// resolvePlayer pushes the player sphere out of walls and door leaves. The
// door boxes are read fresh every tick, so a door that just swung open no
// longer blocks.
func (w *World) resolvePlayer() {
	w.Physics.Update(&w.Controller.Position)
}

func (w *World) checkWin() {
	if w.won || w.win.IsEmpty() {
		return
	}
	if !physics.CheckCollision(w.Controller.Position, w.win, w.Physics.Radius).Collision {
		return
	}
	w.won = true
	w.cues.Play(audio.CueWin)
	w.log.WithField("items", w.inventory.Len()).Info("player reached the exit")
	w.OnWin.Invoke()
}
