// Package game is the raylib host: window, input, menus, rendering and
// audio around the simulation world.
package game

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/sirupsen/logrus"

	"seminarbot/internal/assets"
	"seminarbot/internal/audio"
	"seminarbot/internal/config"
	"seminarbot/internal/engine"
	"seminarbot/internal/hud"
	"seminarbot/internal/level"
	"seminarbot/internal/world"
)

type Game struct {
	World     *world.World
	HUD       *hud.State
	DebugMode bool

	cfg      config.Config
	log      logrus.FieldLogger
	audio    *audio.Manager
	renderer *Renderer
	palette  *assets.Palette
	cursor   cursor

	paused  bool
	started bool
	prompt  endCodePrompt
	focused bool
	won     bool
	quit    bool

	// Debug timing (ms)
	updateMs float64
	drawMs   float64
}

// New builds the world for lvl. Audio is opened here when enabled; cues
// that fail to load are logged and stay silent.
func New(cfg config.Config, lvl *level.Level, log logrus.FieldLogger) (*Game, error) {
	g := &Game{
		HUD:    hud.NewState(nil),
		cfg:    cfg,
		log:    log,
		cursor: rlCursor{},
		// the start menu is the pause menu before the first Start
		paused: true,
	}

	palette, err := assets.LoadPalette(cfg.Materials)
	if err != nil {
		log.WithError(err).Warn("using default materials")
		palette = assets.DefaultPalette()
	}
	g.palette = palette

	var cues audio.Player = audio.Nop{}
	if cfg.Audio.Enabled {
		g.audio = audio.NewManager()
		for name, cue := range cfg.Audio.Cues {
			c, _ := audio.ParseCue(name)
			if err := g.audio.Load(c, cue.Path, cue.Volume); err != nil {
				log.WithError(err).Warn("audio cue unavailable")
			}
		}
		cues = g.audio
	}

	w, err := world.New(lvl, cfg, world.Deps{Log: log, Cues: cues, HUD: g.HUD})
	if err != nil {
		g.Close()
		return nil, fmt.Errorf("new game: %w", err)
	}
	g.World = w
	w.OnWin.AddListener(func() { g.won = true })
	return g, nil
}

func (g *Game) Run() {
	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagWindowResizable)
	rl.InitWindow(g.cfg.Window.Width, g.cfg.Window.Height, g.cfg.Window.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(g.cfg.Window.TargetFPS)
	// Escape opens the pause menu instead of closing the window.
	rl.SetExitKey(rl.KeyNull)
	g.focused = true

	g.renderer = NewRenderer(g.World, g.palette)
	defer g.renderer.Unload()
	applyMenuStyle()

	for !rl.WindowShouldClose() && !g.quit {
		g.Update()
		g.Draw()
	}
}

// Close releases the audio device.
func (g *Game) Close() {
	if g.audio != nil {
		g.audio.Close()
		g.audio = nil
	}
}

func (g *Game) sim() engine.SimulationContext {
	return engine.SimulationContext{
		Paused:       g.paused || g.prompt.open,
		InputFocused: g.focused && !g.paused && !g.prompt.open,
	}
}

func (g *Game) Update() {
	updateStart := time.Now()
	deltaTime := rl.GetFrameTime()

	if rl.IsKeyPressed(rl.KeyEscape) {
		switch {
		case g.prompt.open:
			g.closePrompt()
		case !g.started:
			// only the Start button leaves the start menu
		case g.paused:
			g.resume()
		default:
			g.pause()
		}
	}
	if rl.IsKeyPressed(rl.KeyF1) {
		g.DebugMode = !g.DebugMode
	}

	g.trackFocus(rl.IsWindowFocused())
	if g.HUD.TakeEndCodeRequest() {
		g.openPrompt()
	}

	sim := g.sim()
	g.pollInput(sim)
	g.World.Update(sim, deltaTime)

	g.updateMs = float64(time.Since(updateStart).Microseconds()) / 1000.0
}

// trackFocus drops every held key when the window loses focus and opens
// the pause menu if the player was in game. Regaining focus does not resume.
func (g *Game) trackFocus(focused bool) {
	if g.focused && !focused {
		g.World.Controller.ReleaseAll()
		if !g.paused && !g.prompt.open {
			g.pause()
		}
	}
	g.focused = focused
}

func (g *Game) pause() {
	g.paused = true
	g.World.Controller.ReleaseAll()
	g.cursor.Enable()
	g.setPlayMode(false)
	g.log.Debug("paused")
}

func (g *Game) resume() {
	g.paused = false
	g.started = true
	g.cursor.Disable()
	g.setPlayMode(true)
	g.log.Debug("resumed")
}

// cursor shows the pointer for menus and captures it for mouse look.
type cursor interface {
	Enable()
	Disable()
}

type rlCursor struct{}

func (rlCursor) Enable()  { rl.EnableCursor() }
func (rlCursor) Disable() { rl.DisableCursor() }

func (g *Game) setPlayMode(enabled bool) {
	if g.audio != nil {
		g.audio.SetPlayMode(enabled)
	}
}

func (g *Game) camera() rl.Camera3D {
	c := g.World.Controller
	return rl.Camera3D{
		Position:   c.Position,
		Target:     rl.Vector3Add(c.Position, c.LookDirection()),
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       g.cfg.Window.FOV,
		Projection: rl.CameraPerspective,
	}
}

func (g *Game) Draw() {
	camera := g.camera()
	aspect := float32(rl.GetScreenWidth()) / float32(rl.GetScreenHeight())

	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(20, 20, 30, 255))

	drawStart := time.Now()
	rl.BeginMode3D(camera)
	g.renderer.Draw(camera, aspect, g.World.Scene)
	if g.DebugMode {
		g.renderer.DrawDebug(g.World)
	}
	rl.EndMode3D()
	g.drawMs = float64(time.Since(drawStart).Microseconds()) / 1000.0

	g.DrawUI()
	rl.EndDrawing()
}
