// Package assets holds the flat material palette boxes are drawn with.
package assets

import (
	"encoding/json"
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Material keys looked up by the renderer.
const (
	Decor         = "decor"
	Fixed         = "fixed"
	Door          = "door"
	DoorLocked    = "door_locked"
	DoorForbidden = "door_forbidden"
	Item          = "item"
	Win           = "win"
)

// Material defines the surface of a box
type Material struct {
	Name  string
	Color rl.Color
}

// materialDef is the JSON format of one palette entry
type materialDef struct {
	Color string   `json:"color"`
	Alpha *float32 `json:"alpha"`
}

var colorByName = map[string]rl.Color{
	"Red":       rl.Red,
	"Blue":      rl.Blue,
	"Green":     rl.Green,
	"Purple":    rl.Purple,
	"Orange":    rl.Orange,
	"Yellow":    rl.Yellow,
	"Gold":      rl.Gold,
	"White":     rl.White,
	"Gray":      rl.Gray,
	"LightGray": rl.LightGray,
	"DarkGray":  rl.DarkGray,
	"Black":     rl.Black,
	"Pink":      rl.Pink,
	"Maroon":    rl.Maroon,
	"Brown":     rl.Brown,
	"Beige":     rl.Beige,
	"SkyBlue":   rl.SkyBlue,
	"DarkBlue":  rl.DarkBlue,
	"Lime":      rl.Lime,
	"DarkGreen": rl.DarkGreen,
}

// LookupColor returns a raylib color from a name string
func LookupColor(name string) (rl.Color, bool) {
	c, ok := colorByName[name]
	return c, ok
}

type Palette struct {
	materials map[string]Material
}

func DefaultPalette() *Palette {
	p := &Palette{materials: make(map[string]Material)}
	p.set(Decor, rl.Beige)
	p.set(Fixed, rl.LightGray)
	p.set(Door, rl.Brown)
	p.set(DoorLocked, rl.Maroon)
	p.set(DoorForbidden, rl.DarkGray)
	p.set(Item, rl.Gold)
	p.set(Win, rl.Fade(rl.Lime, 0.3))
	return p
}

func (p *Palette) set(key string, c rl.Color) {
	p.materials[key] = Material{Name: key, Color: c}
}

// LoadPalette overlays the JSON object at path on the default palette. An
// empty path yields the defaults.
func LoadPalette(path string) (*Palette, error) {
	p := DefaultPalette()
	if path == "" {
		return p, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("read palette: %w", err)
	}
	return p, p.parse(data)
}

func (p *Palette) parse(data []byte) error {
	var defs map[string]materialDef
	if err := json.Unmarshal(data, &defs); err != nil {
		return fmt.Errorf("parse palette: %w", err)
	}
	for key, def := range defs {
		c, ok := LookupColor(def.Color)
		if !ok {
			return fmt.Errorf("material %q: unknown color %q", key, def.Color)
		}
		if def.Alpha != nil {
			c = rl.Fade(c, *def.Alpha)
		}
		p.set(key, c)
	}
	return nil
}

// Material falls back to the decor entry for unknown keys.
func (p *Palette) Material(key string) Material {
	if m, ok := p.materials[key]; ok {
		return m
	}
	return p.materials[Decor]
}
