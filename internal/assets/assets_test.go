package assets

import (
	"os"
	"path/filepath"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestDefaultPalette(t *testing.T) {
	p := DefaultPalette()
	if c := p.Material(Door).Color; c != rl.Brown {
		t.Errorf("Expected door to be brown, got %v", c)
	}
	if c := p.Material("nothing").Color; c != rl.Beige {
		t.Errorf("Expected unknown key to fall back to decor, got %v", c)
	}
}

func TestLoadPaletteOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "materials.json")
	data := `{"door": {"color": "Blue"}, "win": {"color": "Green", "alpha": 0.5}}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	p, err := LoadPalette(path)
	if err != nil {
		t.Fatalf("LoadPalette failed: %v", err)
	}
	if c := p.Material(Door).Color; c != rl.Blue {
		t.Errorf("Expected door to be blue, got %v", c)
	}
	if c := p.Material(Win).Color; c != rl.Fade(rl.Green, 0.5) {
		t.Errorf("Expected faded green win zone, got %v", c)
	}
	if c := p.Material(Item).Color; c != rl.Gold {
		t.Errorf("Expected untouched item color, got %v", c)
	}
}

func TestLoadPaletteErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte(`{"door": {"color": "Chartreuse"}}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadPalette(bad); err == nil {
		t.Error("Expected error for unknown color name")
	}
	if _, err := LoadPalette(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("Expected error for missing file")
	}
	if _, err := LoadPalette(""); err != nil {
		t.Errorf("Expected defaults for empty path, got %v", err)
	}
}

func TestShippedPalette(t *testing.T) {
	if _, err := LoadPalette("../../assets/materials.json"); err != nil {
		t.Errorf("Expected shipped palette to load, got %v", err)
	}
}
