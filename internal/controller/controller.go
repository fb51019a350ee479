// Package controller turns player input into a first-person pose.
package controller

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"seminarbot/internal/audio"
	"seminarbot/internal/engine"
)

// Controller owns the player's pose, velocity and stamina. Position is
// exported because the physics resolver corrects it in place after Update.
type Controller struct {
	Position rl.Vector3
	Velocity rl.Vector3

	// OnInteract fires with the current position on each interact key press.
	OnInteract engine.EventWithArg[rl.Vector3]

	cfg  Config
	cues audio.Player
	keys keySet

	yaw      float32
	pitch    float32
	rotation rl.Quaternion

	sprintState    SprintState
	stamina        float32 // ms of sprint left
	recoveryFactor float32
	clockMs        float64 // integrated simulation time
	timeoutAtMs    float64
}

func New(cfg Config, cues audio.Player) *Controller {
	if cues == nil {
		cues = audio.Nop{}
	}
	return &Controller{
		cfg:            cfg,
		cues:           cues,
		rotation:       rl.QuaternionIdentity(),
		stamina:        cfg.SprintDurationMaxMs,
		recoveryFactor: cfg.StaminaRecoveryFactor,
	}
}

func (c *Controller) Config() Config { return c.cfg }

// SetConfig swaps the tuning in place; the next Update uses it. An invalid
// config is rejected and the current one kept. Stamina is clamped to the
// new maximum.
func (c *Controller) SetConfig(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	c.cfg = cfg
	if c.stamina > cfg.SprintDurationMaxMs {
		c.stamina = cfg.SprintDurationMaxMs
	}
	return nil
}

// Spawn places the controller at pos facing yaw, at rest.
func (c *Controller) Spawn(pos rl.Vector3, yaw float32) {
	c.Position = pos
	c.Velocity = rl.Vector3{}
	c.yaw = wrapAngle(yaw)
	c.pitch = 0
	c.updateRotation()
}

func (c *Controller) Yaw() float32             { return c.yaw }
func (c *Controller) Pitch() float32           { return c.pitch }
func (c *Controller) Rotation() rl.Quaternion  { return c.rotation }
func (c *Controller) Stamina() float32         { return c.stamina }
func (c *Controller) SprintState() SprintState { return c.sprintState }
func (c *Controller) Held(k Key) bool          { return c.keys.held(k) }
func (c *Controller) Speed() float32           { return rl.Vector3Length(c.Velocity) }

// AllowedSpeed is the current speed cap.
func (c *Controller) AllowedSpeed() float32 {
	if c.sprintState == Sprinting {
		return c.cfg.MaxSpeed
	}
	return c.cfg.WalkSpeed()
}

// StaminaPercent is the stamina bar fill in [0, 100].
func (c *Controller) StaminaPercent() float32 {
	return c.stamina / c.cfg.SprintDurationMaxMs * 100
}

// LookDirection is the unit view vector including pitch.
func (c *Controller) LookDirection() rl.Vector3 {
	return rl.Vector3RotateByQuaternion(rl.Vector3{Z: -1}, c.rotation)
}

func (c *Controller) acceptsInput(sim engine.SimulationContext) bool {
	return !c.cfg.InputGatedByFocus || sim.InputFocused
}

// KeyDown records a press. Interact fires OnInteract once per press while
// input is accepted; held-key repeats do not fire again.
func (c *Controller) KeyDown(sim engine.SimulationContext, k Key) {
	wasHeld := c.keys.held(k)
	c.keys.set(k, true)
	if k == KeyInteract && !wasHeld && c.acceptsInput(sim) {
		c.OnInteract.Invoke(c.Position)
	}
}

func (c *Controller) KeyUp(k Key) {
	c.keys.set(k, false)
}

// ReleaseAll clears every held key, e.g. when the window loses focus.
func (c *Controller) ReleaseAll() {
	c.keys = keySet{}
}

// directions returns the horizontal forward and right unit vectors. Pitch is
// ignored so movement stays on the ground plane.
func (c *Controller) directions() (forward, right rl.Vector3) {
	sin, cos := math32.Sincos(c.yaw)
	forward = rl.Vector3{X: -sin, Y: 0, Z: -cos}
	right = rl.Vector3{X: cos, Y: 0, Z: -sin}
	return
}

// Update advances the controller by dt seconds. It is a no-op while paused
// or for dt <= 0 (and NaN); dt above MaxDeltaTime is clamped.
func (c *Controller) Update(sim engine.SimulationContext, dt float32) {
	if sim.Paused || !(dt > 0) {
		return
	}
	if dt > c.cfg.MaxDeltaTime {
		dt = c.cfg.MaxDeltaTime
	}
	elapsedMs := dt * 1000
	c.clockMs += float64(elapsedMs)

	accepting := c.acceptsInput(sim)
	moving := accepting && c.keys.anyMovement()
	sprintHeld := accepting && c.keys.held(KeySprint)

	// Map held keys to the acceleration direction.
	forward, right := c.directions()
	var acc rl.Vector3
	if accepting {
		if c.keys.held(KeyForward) {
			acc = rl.Vector3Add(acc, forward)
		}
		if c.keys.held(KeyBack) {
			acc = rl.Vector3Subtract(acc, forward)
		}
		if c.keys.held(KeyRight) {
			acc = rl.Vector3Add(acc, right)
		}
		if c.keys.held(KeyLeft) {
			acc = rl.Vector3Subtract(acc, right)
		}
	}
	c.Velocity = rl.Vector3Add(c.Velocity, rl.Vector3Scale(acc, dt*c.cfg.Acceleration))

	if !moving {
		decay := math32.Exp(dt * math32.Log(1-c.cfg.Decay))
		c.Velocity = rl.Vector3Scale(c.Velocity, decay)
		c.recoveryFactor = c.cfg.StaminaRecoveryFactor * c.cfg.IdleRecoveryBoost
	} else {
		c.recoveryFactor = c.cfg.StaminaRecoveryFactor
		if sprintHeld {
			c.sprint(elapsedMs)
		}
		if sprintHeld && c.sprintState == Sprinting {
			c.cues.Play(audio.CueFootstepSprint)
		} else {
			c.cues.Play(audio.CueFootstepWalk)
		}
	}

	if !sprintHeld {
		c.rest(elapsedMs)
	}

	// Limit speed to the current cap.
	if speed := rl.Vector3Length(c.Velocity); speed > c.AllowedSpeed() {
		c.Velocity = rl.Vector3Scale(c.Velocity, c.AllowedSpeed()/speed)
	}

	c.Position = rl.Vector3Add(c.Position, rl.Vector3Scale(c.Velocity, dt))
	c.updateRotation()
}

// updateRotation composes yaw about world up with pitch about the yawed
// local X axis, in that order.
func (c *Controller) updateRotation() {
	yaw := rl.QuaternionFromAxisAngle(rl.Vector3{Y: 1}, c.yaw)
	pitch := rl.QuaternionFromAxisAngle(rl.Vector3{X: 1}, c.pitch)
	c.rotation = rl.QuaternionMultiply(yaw, pitch)
}
