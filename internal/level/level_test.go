package level

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const testLevel = `{
  "name": "test",
  "nodes": [
    {"name": "Room"},
    {"name": "Player", "position": [0, 1.6, 3], "rotation": [0, 90, 0]},
    {"name": "Wall_Back", "parent": "Room", "position": [0, 1.25, -5], "size": [8, 2.5, 0.2]},
    {"name": "Door_Main_A", "position": [-1, 1.05, -2]},
    {"name": "Door_Main_Left_B", "position": [1, 1.05, -2]},
    {"name": "Door_Locked_Exit", "position": [3, 1.05, 0], "rotation": [0, 90, 0]},
    {"name": "Note_1", "position": [2, 0.8, 1], "value": 4},
    {"name": "Item_Key", "position": [-2, 0.8, 1]},
    {"name": "Exit", "position": [5, 1, 0], "size": [1, 2, 2]},
    {"name": "Lamp", "position": [0, 2, 0], "size": [0.3, 0.3, 0.3]}
  ],
  "aabbs": [
    {"min": [-4.086603, 0, -5], "max": [-4, 2.5, 5]}
  ]
}`

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-4
}

func TestParseLevel(t *testing.T) {
	lvl, err := Parse([]byte(testLevel))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if lvl.Spawn != (rl.Vector3{X: 0, Y: 1.6, Z: 3}) {
		t.Errorf("Expected spawn at (0,1.6,3), got %v", lvl.Spawn)
	}
	if !near(lvl.SpawnYaw, math.Pi/2) {
		t.Errorf("Expected spawn yaw π/2, got %v", lvl.SpawnYaw)
	}

	if len(lvl.Fixed) != 2 {
		t.Fatalf("Expected 2 fixed boxes (wall + explicit), got %d", len(lvl.Fixed))
	}
	wall := lvl.Fixed[0]
	if !near(wall.Min.Z, -5.1) || !near(wall.Max.Y, 2.5) {
		t.Errorf("Unexpected wall box %+v", wall)
	}
	if lvl.Fixed[1].Min.X != -4.086603 {
		t.Errorf("Expected the explicit left wall, got %+v", lvl.Fixed[1])
	}

	if len(lvl.Doors) != 3 {
		t.Fatalf("Expected 3 doors, got %d", len(lvl.Doors))
	}
	if len(lvl.Duals) != 1 || lvl.Duals[0] != (Dual{Primary: 0, Secondary: 1}) {
		t.Errorf("Expected one dual pairing 0/1, got %v", lvl.Duals)
	}
	if !lvl.Doors[2].Class.Locked {
		t.Errorf("Expected the exit door to start locked")
	}

	if len(lvl.Items) != 2 {
		t.Fatalf("Expected 2 items, got %d", len(lvl.Items))
	}
	if lvl.Items[0].Value == nil || *lvl.Items[0].Value != 4 {
		t.Errorf("Expected Note_1 value 4")
	}
	if lvl.Items[1].Value != nil {
		t.Errorf("Expected Item_Key without a value")
	}

	if lvl.Win.IsEmpty() || !near(lvl.Win.Min.X, 4.5) {
		t.Errorf("Expected win zone from the Exit node, got %+v", lvl.Win)
	}
	if len(lvl.Scene.Nodes) != 10 {
		t.Errorf("Expected 10 scene nodes, got %d", len(lvl.Scene.Nodes))
	}
	if _, ok := lvl.Shapes[lvl.Scene.FindByName("Lamp")]; !ok {
		t.Errorf("Expected decor shapes kept for rendering")
	}
}

func TestParseNoSpawn(t *testing.T) {
	_, err := Parse([]byte(`{"nodes": [{"name": "Wall_A", "size": [1,1,1]}]}`))
	if !errors.Is(err, ErrNoSpawn) {
		t.Errorf("Expected ErrNoSpawn, got %v", err)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"bad json", `{"nodes": [`},
		{"unknown parent", `{"nodes": [{"name": "Player", "parent": "Nope"}]}`},
		{"duplicate", `{"nodes": [{"name": "Player"}, {"name": "Player"}]}`},
		{"unnamed", `{"nodes": [{"name": ""}]}`},
		{"cycle", `{"nodes": [{"name": "Player"}, {"name": "A", "parent": "B"}, {"name": "B", "parent": "A"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.data)); err == nil {
				t.Errorf("Expected an error")
			}
		})
	}
}

func TestUnpairedLeafIsSingleDoor(t *testing.T) {
	lvl, err := Parse([]byte(`{"nodes": [{"name": "Player"}, {"name": "Door_Side_A"}]}`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(lvl.Doors) != 1 || len(lvl.Duals) != 0 {
		t.Errorf("Expected a lone door without pairing, got %d doors %v", len(lvl.Doors), lvl.Duals)
	}
}

func TestParentTransformApplies(t *testing.T) {
	lvl, err := Parse([]byte(`{"nodes": [
		{"name": "Player"},
		{"name": "Room", "position": [10, 0, 0]},
		{"name": "Wall_1", "parent": "Room", "size": [2, 2, 2]}
	]}`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if !near(lvl.Fixed[0].Min.X, 9) || !near(lvl.Fixed[0].Max.X, 11) {
		t.Errorf("Expected wall offset by its parent, got %+v", lvl.Fixed[0])
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "level.json")
	if err := os.WriteFile(path, []byte(testLevel), 0o644); err != nil {
		t.Fatal(err)
	}
	lvl, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if lvl.Name != "test" {
		t.Errorf("Expected name test, got %q", lvl.Name)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Errorf("Expected an error for a missing file")
	}
}

func TestLoadShippedLevel(t *testing.T) {
	lvl, err := Load("../../assets/levels/seminar.json")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(lvl.Items) != 4 {
		t.Errorf("Expected 4 notes, got %d", len(lvl.Items))
	}
	if len(lvl.Doors) != 4 || len(lvl.Duals) != 1 {
		t.Errorf("Expected 4 doors with one two-leaf pair, got %d doors %d pairs", len(lvl.Doors), len(lvl.Duals))
	}
	if lvl.Win.IsEmpty() {
		t.Errorf("Expected a win zone")
	}
	// The hallway walls sit under a parent offset to z=-7.
	found := false
	for _, box := range lvl.Fixed {
		if near(box.Min.Z, -9.086603) {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected the hallway end wall at z=-9")
	}
}
