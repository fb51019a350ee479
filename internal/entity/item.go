package entity

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"seminarbot/internal/audio"
	"seminarbot/internal/engine"
	"seminarbot/internal/physics"
)

// tall trigger so notes lying on shelves are reachable from the floor
var itemInteractionBox = physics.AABB{
	Min: rl.Vector3{X: -0.25, Y: -0.33, Z: -0.25},
	Max: rl.Vector3{X: 0.25, Y: 24.67, Z: 0.25},
}

// Item is a collectible. Once picked up it stays picked up.
type Item struct {
	Node *engine.Node

	value       int
	hasValue    bool
	pickedUp    bool
	interaction physics.AABB

	cues audio.Player
}

// NewItem creates an item. value is the digit group it contributes to the
// end-code, or nil for items that are only collected.
func NewItem(node *engine.Node, value *int, cues audio.Player) *Item {
	if cues == nil {
		cues = audio.Nop{}
	}
	it := &Item{
		Node: node,
		cues: cues,
	}
	if value != nil {
		it.value = *value
		it.hasValue = true
	}
	it.interaction = physics.TransformAABB(itemInteractionBox, node.WorldMatrix())
	return it
}

func (i *Item) Name() string                  { return i.Node.Name }
func (i *Item) PickedUp() bool                { return i.pickedUp }
func (i *Item) Value() (int, bool)            { return i.value, i.hasValue }
func (i *Item) InteractionAABB() physics.AABB { return i.interaction }

// Pickup marks the item as collected and plays its cue. It returns true only
// for the call that did the transition.
func (i *Item) Pickup() bool {
	if i.pickedUp {
		return false
	}
	i.pickedUp = true
	i.cues.Play(audio.CuePickup)
	return true
}
