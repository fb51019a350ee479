package controller

import (
	"github.com/chewxy/math32"

	"seminarbot/internal/engine"
)

const (
	halfPi = math32.Pi / 2
	twoPi  = math32.Pi * 2
)

// Look applies a pointer-motion delta in pixels. Pitch is clamped to
// [-π/2, π/2] so the camera never flips; yaw wraps into [0, 2π).
func (c *Controller) Look(sim engine.SimulationContext, dx, dy float32) {
	if !c.acceptsInput(sim) {
		return
	}
	c.pitch -= dy * c.cfg.PointerSensitivity
	c.yaw -= dx * c.cfg.PointerSensitivity

	if math32.IsNaN(c.pitch) {
		c.pitch = 0
	}
	if c.pitch > halfPi {
		c.pitch = halfPi
	}
	if c.pitch < -halfPi {
		c.pitch = -halfPi
	}
	c.yaw = wrapAngle(c.yaw)
	c.updateRotation()
}

func wrapAngle(a float32) float32 {
	if math32.IsNaN(a) || math32.IsInf(a, 0) {
		return 0
	}
	a = math32.Mod(math32.Mod(a, twoPi)+twoPi, twoPi)
	// float32 rounding can land exactly on 2π for tiny negative inputs
	if a >= twoPi {
		a = 0
	}
	return a
}
