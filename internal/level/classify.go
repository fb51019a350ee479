package level

import "strings"

type Kind int

const (
	KindDecor Kind = iota
	KindFixed
	KindDoor
	KindItem
	KindSpawn
	KindWin
)

func (k Kind) String() string {
	switch k {
	case KindDecor:
		return "decor"
	case KindFixed:
		return "fixed"
	case KindDoor:
		return "door"
	case KindItem:
		return "item"
	case KindSpawn:
		return "spawn"
	case KindWin:
		return "win"
	}
	return "unknown"
}

// Class is what a node's name says about it.
type Class struct {
	Kind Kind

	// door flags
	Forbidden bool
	Locked    bool
	Left      bool
	// Leaf is 'A' or 'B' for one half of a two-leaf doorway, 0 otherwise.
	// Both halves share Base, which ignores the swing side.
	Leaf byte
	Base string
}

var fixedPrefixes = []string{"Wall", "Floor", "Ceiling", "Table", "Pillar", "Room"}

// Classify maps a node name to its role. It is the only place in the game
// that inspects names.
func Classify(name string) Class {
	switch {
	case strings.Contains(name, "Door"):
		c := Class{
			Kind:      KindDoor,
			Forbidden: strings.Contains(name, "Forbidden"),
			Locked:    strings.Contains(name, "Locked"),
			Left:      strings.Contains(name, "Left"),
			Base:      name,
		}
		if base, ok := strings.CutSuffix(name, "_A"); ok {
			c.Leaf, c.Base = 'A', strings.ReplaceAll(base, "_Left", "")
		} else if base, ok := strings.CutSuffix(name, "_B"); ok {
			c.Leaf, c.Base = 'B', strings.ReplaceAll(base, "_Left", "")
		}
		return c
	case strings.Contains(name, "Note"), strings.Contains(name, "Item"):
		return Class{Kind: KindItem}
	case name == "Camera_Orientation", name == "Player":
		return Class{Kind: KindSpawn}
	case strings.Contains(name, "Exit"), strings.Contains(name, "WinZone"):
		return Class{Kind: KindWin}
	}
	for _, p := range fixedPrefixes {
		if strings.HasPrefix(name, p) {
			return Class{Kind: KindFixed}
		}
	}
	return Class{Kind: KindDecor}
}
