package game

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"

	"seminarbot/internal/config"
	"seminarbot/internal/controller"
	"seminarbot/internal/level"
)

type fakeCursor struct {
	visible bool
}

func (c *fakeCursor) Enable()  { c.visible = true }
func (c *fakeCursor) Disable() { c.visible = false }

func newTestGame(t *testing.T) (*Game, *fakeCursor) {
	t.Helper()
	lvl, err := level.Parse([]byte(rendererLevel))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	cfg := config.Default()
	cfg.Materials = ""
	log := logrus.New()
	log.SetOutput(io.Discard)

	g, err := New(cfg, lvl, log)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	cur := &fakeCursor{visible: true}
	g.cursor = cur
	g.focused = true
	return g, cur
}

func TestGameStartsOnStartMenu(t *testing.T) {
	g, _ := newTestGame(t)
	if !g.paused || g.started {
		t.Errorf("Expected the start menu, got paused=%v started=%v", g.paused, g.started)
	}
	if sim := g.sim(); !sim.Paused || sim.InputFocused {
		t.Errorf("Expected a paused simulation without input, got %+v", sim)
	}
}

func TestStartCapturesCursor(t *testing.T) {
	g, cur := newTestGame(t)
	g.resume()
	if g.paused || !g.started {
		t.Errorf("Expected the game running, got paused=%v started=%v", g.paused, g.started)
	}
	if cur.visible {
		t.Errorf("Expected the cursor captured for mouse look")
	}
	if sim := g.sim(); sim.Paused || !sim.InputFocused {
		t.Errorf("Expected a running focused simulation, got %+v", sim)
	}
}

func TestFocusLossPauses(t *testing.T) {
	g, cur := newTestGame(t)
	g.resume()
	g.World.Controller.KeyDown(g.sim(), controller.KeyForward)

	g.trackFocus(false)
	if !g.paused {
		t.Fatalf("Expected losing focus to open the pause menu")
	}
	if !cur.visible {
		t.Errorf("Expected the cursor released")
	}
	if g.World.Controller.Held(controller.KeyForward) {
		t.Errorf("Expected held keys released")
	}

	g.trackFocus(true)
	if !g.paused {
		t.Errorf("Expected regaining focus to leave the game paused")
	}
}

func TestFocusLossKeepsPromptOpen(t *testing.T) {
	g, _ := newTestGame(t)
	g.resume()
	g.openPrompt()

	g.trackFocus(false)
	if g.paused {
		t.Errorf("Expected the end-code prompt to stay in front of the pause menu")
	}
	if !g.prompt.open {
		t.Errorf("Expected the prompt still open")
	}
}

func TestFocusLossOnStartMenu(t *testing.T) {
	g, _ := newTestGame(t)
	g.trackFocus(false)
	if !g.paused || g.started {
		t.Errorf("Expected to stay on the start menu, got paused=%v started=%v", g.paused, g.started)
	}
}

func TestTuningRangesValidate(t *testing.T) {
	for _, s := range tuningSliders {
		for _, v := range []float32{s.min, s.max} {
			cfg := controller.DefaultConfig()
			*s.field(&cfg) = v
			if err := cfg.Validate(); err != nil {
				t.Errorf("%s: expected %v to validate, got %v", s.label, v, err)
			}
		}
	}
}
