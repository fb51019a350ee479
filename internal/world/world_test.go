package world

import (
	"testing"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"seminarbot/internal/audio"
	"seminarbot/internal/config"
	"seminarbot/internal/controller"
	"seminarbot/internal/engine"
	"seminarbot/internal/entity"
	"seminarbot/internal/hud"
	"seminarbot/internal/level"
)

const testLevel = `{
  "name": "test",
  "nodes": [
    {"name": "Player", "position": [0, 1.6, 3]},
    {"name": "Door_Main", "position": [0, 1.05, -3]},
    {"name": "Door_Hall_A", "position": [0, 1.05, -10]},
    {"name": "Door_Hall_Left_B", "position": [2, 1.05, -10]},
    {"name": "Door_Locked_Exit", "position": [10, 1.05, 0], "rotation": [0, 90, 0]},
    {"name": "Door_Forbidden_Store", "position": [-10, 1.05, 0]},
    {"name": "Note_1", "position": [3, 0.8, 0], "value": 4},
    {"name": "Note_2", "position": [3, 0.8, 5], "value": 2},
    {"name": "Item_Key", "position": [-3, 0.8, 5]},
    {"name": "Exit", "position": [20, 1, 0], "size": [2, 2, 2]}
  ],
  "aabbs": [
    {"min": [-4.086603, 0, -5], "max": [-4, 2.5, 5]}
  ]
}`

type fixture struct {
	w   *World
	rec *audio.Recorder
	hud *hud.State
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	lvl, err := level.Parse([]byte(testLevel))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	rec := audio.NewRecorder()
	h := hud.NewState(nil)
	w, err := New(lvl, config.Default(), Deps{Cues: rec, HUD: h})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return fixture{w: w, rec: rec, hud: h}
}

func (f fixture) door(t *testing.T, name string) *entity.Door {
	t.Helper()
	for _, d := range f.w.Doors() {
		if d.Name() == name {
			return d
		}
	}
	t.Fatalf("door %s not found", name)
	return nil
}

func (f fixture) moveTo(x, y, z float32) {
	f.w.Controller.Position = rl.Vector3{X: x, Y: y, Z: z}
}

func TestNewSpawnsPlayer(t *testing.T) {
	f := newFixture(t)
	if f.w.Controller.Position != (rl.Vector3{X: 0, Y: 1.6, Z: 3}) {
		t.Errorf("Expected spawn position, got %v", f.w.Controller.Position)
	}
	if len(f.w.Doors()) != 5 || len(f.w.Items()) != 3 {
		t.Errorf("Expected 5 doors and 3 items, got %d and %d", len(f.w.Doors()), len(f.w.Items()))
	}
	if len(f.w.Physics.Dynamic) != 5 {
		t.Errorf("Expected every door registered as a dynamic collider, got %d", len(f.w.Physics.Dynamic))
	}
	if f.hud.Stamina() != 100 {
		t.Errorf("Expected a full stamina bar, got %v", f.hud.Stamina())
	}
}

func TestNewRejectsBadControllerConfig(t *testing.T) {
	lvl, _ := level.Parse([]byte(testLevel))
	cfg := config.Default()
	cfg.Controller.Decay = 1
	if _, err := New(lvl, cfg, Deps{}); err == nil {
		t.Errorf("Expected an error for an invalid controller config")
	}
}

func TestWallPushesPlayer(t *testing.T) {
	f := newFixture(t)
	f.moveTo(-3.8, 1.6, 0)
	f.w.Update(engine.Running(), 1.0/60)
	if x := f.w.Controller.Position.X; x < -3.7001 || x > -3.6999 {
		t.Errorf("Expected player pushed to x=-3.7, got %v", x)
	}
}

func TestClosedDoorBlocksOpenDoorDoesNot(t *testing.T) {
	f := newFixture(t)
	main := f.door(t, "Door_Main")

	// Walk into the closed leaf from the front.
	f.moveTo(0, 1.6, -2.8)
	f.w.Update(engine.Running(), 1.0/60)
	if z := f.w.Controller.Position.Z; z < -2.614 {
		t.Errorf("Expected the closed door to push the player back, got z=%v", z)
	}

	f.moveTo(0, 1.6, -1.5)
	f.w.Interact()
	if !main.Opened() {
		t.Fatalf("Expected the door to open")
	}
	f.moveTo(-0.5, 1.6, -3)
	f.w.Update(engine.Running(), 1.0/60)
	if pos := f.w.Controller.Position; pos.X != -0.5 || pos.Z != -3 {
		t.Errorf("Expected to stand in the open doorway, got %v", pos)
	}
}

func TestInteractKeyOpensDoor(t *testing.T) {
	f := newFixture(t)
	f.moveTo(0, 1.6, -1.5)

	f.w.Controller.KeyDown(engine.Running(), controller.KeyInteract)
	if !f.door(t, "Door_Main").Opened() {
		t.Fatalf("Expected the interact key to open the door")
	}
	if f.rec.Count(audio.CueDoorOpen) != 1 {
		t.Errorf("Expected one door-open cue, got %d", f.rec.Count(audio.CueDoorOpen))
	}

	// Holding the key does not toggle it back.
	f.w.Controller.KeyDown(engine.Running(), controller.KeyInteract)
	if !f.door(t, "Door_Main").Opened() {
		t.Errorf("Expected auto-repeat to leave the door open")
	}
}

func TestOutOfReachDoesNothing(t *testing.T) {
	f := newFixture(t)
	doors, items := f.w.Interact()
	if doors != 0 || items != 0 {
		t.Errorf("Expected nothing in reach at spawn, got %d doors %d items", doors, items)
	}
}

func TestDualDoorSingleTrigger(t *testing.T) {
	f := newFixture(t)
	f.moveTo(2, 1.6, -7.5)

	doors, _ := f.w.Interact()
	if doors != 1 {
		t.Errorf("Expected a single trigger for the two-leaf doorway, got %d", doors)
	}
	if !f.door(t, "Door_Hall_A").Opened() || !f.door(t, "Door_Hall_Left_B").Opened() {
		t.Errorf("Expected both leaves open")
	}
	if f.rec.Count(audio.CueDoorOpen) != 1 {
		t.Errorf("Expected one door-open cue, got %d", f.rec.Count(audio.CueDoorOpen))
	}
}

func TestForbiddenDoorShowsNotice(t *testing.T) {
	f := newFixture(t)
	f.moveTo(-10, 1.6, 2.5)
	f.w.Interact()

	if f.door(t, "Door_Forbidden_Store").Opened() {
		t.Errorf("Expected the forbidden door to stay shut")
	}
	if text, ok := f.hud.Notice(); !ok || text != entity.ForbiddenText {
		t.Errorf("Expected forbidden notice, got %q %v", text, ok)
	}
	if len(f.rec.Events()) != 0 {
		t.Errorf("Expected no cues, got %v", f.rec.Events())
	}
}

func TestPickupAndEndCode(t *testing.T) {
	f := newFixture(t)
	exit := f.door(t, "Door_Locked_Exit")

	// Locked door asks for the code.
	f.moveTo(7.5, 1.6, 0)
	f.w.Interact()
	if exit.Opened() || !f.hud.TakeEndCodeRequest() {
		t.Fatalf("Expected an end-code prompt for the locked door")
	}
	if f.w.SubmitEndCode("") {
		t.Errorf("Expected an empty code never to match")
	}

	// Pick up both notes in order 1, 2.
	f.moveTo(3, 1.6, 0.5)
	if _, items := f.w.Interact(); items != 1 {
		t.Fatalf("Expected to pick up one item, got %d", items)
	}
	f.moveTo(3, 1.6, 5.5)
	f.w.Interact()

	note := f.w.Items()[0]
	if !note.PickedUp() || f.w.Scene.Contains(note.Node) {
		t.Errorf("Expected Note_1 picked up and removed from the scene")
	}
	if f.hud.Slot(0) != "4" || f.hud.Slot(1) != "2" {
		t.Errorf("Expected HUD slots 4 and 2, got %v", f.hud.Slots())
	}
	if f.rec.Count(audio.CuePickup) != 2 {
		t.Errorf("Expected two pickup cues, got %d", f.rec.Count(audio.CuePickup))
	}

	// Picking up again is a no-op.
	if _, items := f.w.Interact(); items != 0 {
		t.Errorf("Expected no second pickup, got %d", items)
	}

	if f.w.SubmitEndCode("24") {
		t.Errorf("Expected the wrong order to be rejected")
	}
	if text, _ := f.hud.Notice(); text != WrongCodeText {
		t.Errorf("Expected wrong-code notice, got %q", text)
	}
	if !f.w.SubmitEndCode(" 42 ") {
		t.Fatalf("Expected code 42 to be accepted")
	}
	for _, d := range f.w.Doors() {
		if !d.Unlocked() {
			t.Errorf("Expected %s unlocked", d.Name())
		}
	}

	f.moveTo(7.5, 1.6, 0)
	f.w.Interact()
	if !exit.Opened() {
		t.Errorf("Expected the exit door to open after the code")
	}
}

func TestValuelessItemSlot(t *testing.T) {
	f := newFixture(t)
	f.moveTo(-3, 1.6, 5.5)
	f.w.Interact()
	if f.hud.Slot(0) != "?" {
		t.Errorf("Expected ? for an item without a value, got %q", f.hud.Slot(0))
	}
	if f.w.Inventory().Code() != "" {
		t.Errorf("Expected no code contribution, got %q", f.w.Inventory().Code())
	}
}

func TestWinOnce(t *testing.T) {
	f := newFixture(t)
	wins := 0
	f.w.OnWin.AddListener(func() { wins++ })

	f.w.Update(engine.Running(), 1.0/60)
	if f.w.Won() {
		t.Fatalf("Expected no win at spawn")
	}

	f.moveTo(20, 1, 0)
	f.w.Update(engine.Running(), 1.0/60)
	f.w.Update(engine.Running(), 1.0/60)
	if !f.w.Won() || wins != 1 {
		t.Errorf("Expected exactly one win, got won=%v wins=%d", f.w.Won(), wins)
	}
	if f.rec.Count(audio.CueWin) != 1 {
		t.Errorf("Expected one win cue, got %d", f.rec.Count(audio.CueWin))
	}
}

func TestPausedUpdateIsNoOp(t *testing.T) {
	f := newFixture(t)
	f.moveTo(-3.8, 1.6, 0)
	f.w.Update(engine.SimulationContext{Paused: true, InputFocused: true}, 0.1)
	if f.w.Controller.Position.X != -3.8 {
		t.Errorf("Expected no collision resolution while paused, got %v", f.w.Controller.Position)
	}
}

func TestUpdateDrivesStaminaBar(t *testing.T) {
	f := newFixture(t)
	sim := engine.Running()
	f.w.Controller.KeyDown(sim, controller.KeyForward)
	f.w.Controller.KeyDown(sim, controller.KeySprint)
	for i := 0; i < 11; i++ {
		f.w.Update(sim, 0.1)
	}
	// 10 draining ticks of 100ms out of 5000ms.
	if got := f.hud.Stamina(); got < 79.9 || got > 80.1 {
		t.Errorf("Expected the bar at 80%%, got %v", got)
	}
}

func TestLookTarget(t *testing.T) {
	f := newFixture(t)
	f.w.Controller.Spawn(rl.Vector3{X: 0, Y: 1.05, Z: 0}, 0)

	target, ok := f.w.LookTarget(5)
	if !ok || target.Kind != TargetDoor || target.Name != "Door_Main" {
		t.Fatalf("Expected to look at Door_Main, got %+v %v", target, ok)
	}
	if target.Distance < 2.9 || target.Distance > 2.92 {
		t.Errorf("Expected distance ~2.913, got %v", target.Distance)
	}

	if _, ok := f.w.LookTarget(2); ok {
		t.Errorf("Expected nothing within 2 units")
	}
}

func TestWrongCodeNoticeWithZeroDuration(t *testing.T) {
	lvl, err := level.Parse([]byte(testLevel))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	now := time.Unix(0, 0)
	h := hud.NewState(func() time.Time { return now })
	cfg := config.Default()
	cfg.Doors.NoticeMs = 0
	w, err := New(lvl, cfg, Deps{HUD: h})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	w.SubmitEndCode("nope")
	if text, ok := h.Notice(); !ok || text != WrongCodeText {
		t.Fatalf("Expected the wrong-code notice to be visible, got %q %v", text, ok)
	}
	now = now.Add(entity.DefaultNoticeDuration - time.Millisecond)
	if _, ok := h.Notice(); !ok {
		t.Errorf("Expected the notice to last the default duration")
	}
	now = now.Add(time.Millisecond)
	if _, ok := h.Notice(); ok {
		t.Errorf("Expected the notice to expire after the default duration")
	}
}
