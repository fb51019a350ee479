package controller

// SprintState is the stamina state machine's current state.
type SprintState int

const (
	Walking SprintState = iota
	Sprinting
	SprintDepleted
	// TimedOut follows a depletion when a sprint timeout is configured;
	// neither sprinting nor recovery happens until it elapses.
	TimedOut
)

func (s SprintState) String() string {
	switch s {
	case Walking:
		return "walking"
	case Sprinting:
		return "sprinting"
	case SprintDepleted:
		return "depleted"
	case TimedOut:
		return "timed_out"
	}
	return "unknown"
}

// sprint runs while a movement key and the sprint key are both held.
func (c *Controller) sprint(elapsedMs float32) {
	switch c.sprintState {
	case Walking:
		// The engaging tick does not drain.
		if c.stamina > 0 {
			c.sprintState = Sprinting
		}
	case Sprinting:
		c.stamina -= elapsedMs
		if c.stamina <= 0 {
			c.deplete()
		}
	case SprintDepleted:
		c.deplete()
	case TimedOut:
		if c.timeoutElapsed() {
			c.sprintState = Walking
		}
	}
}

func (c *Controller) deplete() {
	c.stamina = 0
	c.sprintState = SprintDepleted
	// Holding the key keeps pushing the timeout back.
	c.timeoutAtMs = c.clockMs
}

// rest runs on every tick the sprint key is not held.
func (c *Controller) rest(elapsedMs float32) {
	switch c.sprintState {
	case Sprinting:
		c.sprintState = Walking
	case SprintDepleted:
		if _, ok := c.cfg.sprintTimeout(); ok {
			c.sprintState = TimedOut
		} else {
			c.sprintState = Walking
		}
	}

	if c.sprintState == TimedOut {
		if !c.timeoutElapsed() {
			return
		}
		c.sprintState = Walking
	}

	c.stamina += elapsedMs * c.recoveryFactor
	if c.stamina > c.cfg.SprintDurationMaxMs {
		c.stamina = c.cfg.SprintDurationMaxMs
	}
}

func (c *Controller) timeoutElapsed() bool {
	timeout, ok := c.cfg.sprintTimeout()
	if !ok {
		return true
	}
	return c.clockMs-c.timeoutAtMs >= float64(timeout)
}
