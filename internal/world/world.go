// Package world is the simulation: it builds doors and items from a loaded
// level and runs the per-frame tick and the interaction dispatcher.
package world

import (
	"fmt"
	"strings"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/sirupsen/logrus"

	"seminarbot/internal/audio"
	"seminarbot/internal/config"
	"seminarbot/internal/controller"
	"seminarbot/internal/engine"
	"seminarbot/internal/entity"
	"seminarbot/internal/hud"
	"seminarbot/internal/inventory"
	"seminarbot/internal/level"
	"seminarbot/internal/physics"
)

// WrongCodeText is shown when a submitted end code does not match.
const WrongCodeText = "Wrong code."

// Deps are the world's collaborators. Nil fields get silent defaults.
type Deps struct {
	Log  logrus.FieldLogger
	Cues audio.Player
	HUD  hud.Sink
}

type World struct {
	Level      *level.Level
	Scene      *engine.Scene
	Controller *controller.Controller
	Physics    *physics.PhysicsWorld

	// OnWin fires once, on the tick the player first enters the win zone.
	OnWin engine.Event

	dispatcher *Dispatcher
	inventory  *inventory.Inventory
	doors      []*entity.Door
	items      []*entity.Item
	win        physics.AABB
	won        bool
	doorCfg    config.DoorConfig

	log  logrus.FieldLogger
	cues audio.Player
	hud  hud.Sink
}

func New(lvl *level.Level, cfg config.Config, deps Deps) (*World, error) {
	if lvl == nil {
		return nil, fmt.Errorf("new world: %w", level.ErrNoSpawn)
	}
	if err := cfg.Controller.Validate(); err != nil {
		return nil, fmt.Errorf("new world: %w", err)
	}
	if deps.Log == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		deps.Log = l
	}
	if deps.Cues == nil {
		deps.Cues = audio.Nop{}
	}
	if deps.HUD == nil {
		deps.HUD = hud.NewState(nil)
	}

	w := &World{
		Level:      lvl,
		Scene:      lvl.Scene,
		Controller: controller.New(cfg.Controller, deps.Cues),
		Physics:    physics.NewPhysicsWorld(cfg.Physics.Radius),
		inventory:  inventory.New(),
		win:        lvl.Win,
		doorCfg:    cfg.Doors,
		log:        deps.Log,
		cues:       deps.Cues,
		hud:        deps.HUD,
	}

	for _, def := range lvl.Doors {
		opts := entity.DoorOptions{
			SwingAngle:     cfg.Doors.SwingAngle,
			Locked:         def.Class.Locked,
			Forbidden:      def.Class.Forbidden,
			NoticeDuration: cfg.Doors.NoticeDuration(),
		}
		if def.Class.Left {
			opts.Swing = entity.SwingLeft
		}
		w.doors = append(w.doors, entity.NewDoor(def.Node, opts, deps.Cues, deps.HUD))
	}
	for _, dual := range lvl.Duals {
		entity.MakeDualDoor(w.doors[dual.Primary], w.doors[dual.Secondary])
	}
	for _, def := range lvl.Items {
		w.items = append(w.items, entity.NewItem(def.Node, def.Value, deps.Cues))
	}

	w.Physics.AddFixed(lvl.Fixed...)
	for _, d := range w.doors {
		w.Physics.AddDynamic(d)
	}

	w.dispatcher = &Dispatcher{
		Doors:        w.doors,
		Items:        w.items,
		DoorDistance: cfg.Interaction.DoorDistance,
		ItemDistance: cfg.Interaction.ItemDistance,
		Scene:        w.Scene,
		Inventory:    w.inventory,
		HUD:          deps.HUD,
		Log:          deps.Log,
	}
	w.Controller.OnInteract.AddListener(func(pos rl.Vector3) {
		w.dispatcher.Dispatch(pos)
	})

	w.Controller.Spawn(lvl.Spawn, lvl.SpawnYaw)
	w.hud.SetStamina(w.Controller.StaminaPercent())

	w.log.WithFields(logrus.Fields{
		"level": lvl.Name,
		"doors": len(w.doors),
		"items": len(w.items),
		"fixed": len(lvl.Fixed),
	}).Info("world ready")
	return w, nil
}

func (w *World) Doors() []*entity.Door           { return w.doors }
func (w *World) Items() []*entity.Item           { return w.items }
func (w *World) Inventory() *inventory.Inventory { return w.inventory }
func (w *World) Won() bool                       { return w.won }

// Update runs one frame: movement, collision, HUD and the win check.
// Nothing moves while paused.
func (w *World) Update(sim engine.SimulationContext, dt float32) {
	if sim.Paused || !(dt > 0) {
		return
	}
	w.Controller.Update(sim, dt)
	w.resolvePlayer()
	w.hud.SetStamina(w.Controller.StaminaPercent())
	w.checkWin()
}

// Interact runs the dispatcher at the player's position, as the interact
// key does.
func (w *World) Interact() (doors, items int) {
	return w.dispatcher.Dispatch(w.Controller.Position)
}

// SubmitEndCode compares text with the code built from picked-up items and
// unlocks every door on a match. An empty code never matches.
func (w *World) SubmitEndCode(text string) bool {
	code := w.inventory.Code()
	if code == "" || strings.TrimSpace(text) != code {
		w.hud.ShowNotice(WrongCodeText, w.noticeDuration())
		w.log.WithField("code", text).Debug("end code rejected")
		return false
	}
	for _, d := range w.doors {
		d.Unlock()
	}
	w.log.Info("end code accepted, doors unlocked")
	return true
}

// noticeDuration falls back to the door default when notices are configured
// with no duration.
func (w *World) noticeDuration() time.Duration {
	if d := w.doorCfg.NoticeDuration(); d > 0 {
		return d
	}
	return entity.DefaultNoticeDuration
}
