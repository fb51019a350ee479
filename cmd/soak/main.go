// Soak test that drives the simulation headless with random input and
// checks the movement invariants every tick.
package main

import (
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/chewxy/math32"
	"github.com/sirupsen/logrus"

	"seminarbot/internal/audio"
	"seminarbot/internal/config"
	"seminarbot/internal/controller"
	"seminarbot/internal/engine"
	"seminarbot/internal/hud"
	"seminarbot/internal/level"
	"seminarbot/internal/world"
)

var errInvariant = errors.New("invariant violated")

type report struct {
	Ticks      int
	Doors      int
	Pickups    int
	Sprinting  int
	Depletions int
	Won        bool
	Elapsed    time.Duration
}

func main() {
	configPath := flag.String("config", "", "path to the YAML config")
	levelPath := flag.String("level", "", "level file, overrides the config")
	ticks := flag.Int("ticks", 200000, "number of simulation ticks")
	seed := flag.Int64("seed", 42, "random seed")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logrus.WithError(err).Fatal("could not load config")
	}
	if *levelPath != "" {
		cfg.Level = *levelPath
	}
	log := cfg.Logger(os.Stderr)

	lvl, err := level.Load(cfg.Level)
	if err != nil {
		log.WithError(err).Fatal("could not load level")
	}
	w, err := world.New(lvl, cfg, world.Deps{Log: log, Cues: audio.NewRecorder(), HUD: hud.NewState(nil)})
	if err != nil {
		log.WithError(err).Fatal("could not build world")
	}

	r, err := soak(w, *ticks, rand.New(rand.NewSource(*seed)))
	fields := logrus.Fields{
		"ticks":      r.Ticks,
		"doors":      r.Doors,
		"pickups":    r.Pickups,
		"sprinting":  r.Sprinting,
		"depletions": r.Depletions,
		"won":        r.Won,
		"elapsed":    r.Elapsed.Round(time.Millisecond),
	}
	if err != nil {
		log.WithFields(fields).WithError(err).Fatal("soak failed")
	}
	log.WithFields(fields).Info("soak passed")
}

// soak runs ticks random frames against w. It stops at the first broken
// invariant.
func soak(w *world.World, ticks int, rng *rand.Rand) (report, error) {
	var r report
	start := time.Now()
	c := w.Controller
	cfg := c.Config()
	sim := engine.Running()
	prev := c.SprintState()

	for i := 0; i < ticks; i++ {
		r.Ticks++

		// Occasionally toggle focus or pause.
		switch rng.Intn(500) {
		case 0:
			sim.Paused = !sim.Paused
		case 1:
			sim.InputFocused = !sim.InputFocused
		}

		k := controller.Key(rng.Intn(6))
		switch rng.Intn(4) {
		case 0:
			c.KeyDown(sim, k)
		case 1:
			c.KeyUp(k)
		}
		if rng.Intn(200) == 0 {
			d, p := w.Interact()
			r.Doors += d
			r.Pickups += p
		}
		c.Look(sim, rng.Float32()*40-20, rng.Float32()*40-20)

		dt := rng.Float32() * 0.05
		if rng.Intn(1000) == 0 {
			dt = 2 // a long stall
		}
		w.Update(sim, dt)

		state := c.SprintState()
		if state == controller.Sprinting {
			r.Sprinting++
		}
		if state == controller.SprintDepleted && prev != controller.SprintDepleted {
			r.Depletions++
		}
		prev = state

		if err := check(c, cfg); err != nil {
			r.Elapsed = time.Since(start)
			return r, fmt.Errorf("tick %d: %w", i, err)
		}
	}
	r.Won = w.Won()
	r.Elapsed = time.Since(start)
	return r, nil
}

func check(c *controller.Controller, cfg controller.Config) error {
	switch {
	case c.Stamina() < 0 || c.Stamina() > cfg.SprintDurationMaxMs:
		return fmt.Errorf("%w: stamina %v outside [0, %v]", errInvariant, c.Stamina(), cfg.SprintDurationMaxMs)
	case c.Speed() > c.AllowedSpeed()+1e-3:
		return fmt.Errorf("%w: speed %v above cap %v", errInvariant, c.Speed(), c.AllowedSpeed())
	case c.Pitch() < -math32.Pi/2 || c.Pitch() > math32.Pi/2:
		return fmt.Errorf("%w: pitch %v", errInvariant, c.Pitch())
	case c.Yaw() < 0 || c.Yaw() >= 2*math32.Pi:
		return fmt.Errorf("%w: yaw %v", errInvariant, c.Yaw())
	case math32.IsNaN(c.Position.X) || math32.IsNaN(c.Position.Y) || math32.IsNaN(c.Position.Z):
		return fmt.Errorf("%w: position is NaN", errInvariant)
	}
	return nil
}
