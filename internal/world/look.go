package world

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"seminarbot/internal/physics"
)

type TargetKind int

const (
	TargetDoor TargetKind = iota + 1
	TargetItem
)

// Target is what the crosshair rests on.
type Target struct {
	Kind     TargetKind
	Name     string
	Distance float32
}

// LookTarget casts the view ray against door leaves and items still in the
// scene and returns the nearest hit within maxDistance.
func (w *World) LookTarget(maxDistance float32) (Target, bool) {
	origin := w.Controller.Position
	dir := w.Controller.LookDirection()

	var best Target
	found := false
	consider := func(kind TargetKind, name string, box physics.AABB) {
		hit, ok := physics.RaycastAABB(origin, dir, box, maxDistance)
		if !ok || (found && hit.Distance >= best.Distance) {
			return
		}
		best = Target{Kind: kind, Name: name, Distance: hit.Distance}
		found = true
	}

	for _, d := range w.doors {
		consider(TargetDoor, d.Name(), d.CollisionAABB())
	}
	for _, it := range w.items {
		if it.PickedUp() {
			continue
		}
		consider(TargetItem, it.Name(), physics.TransformAABB(itemShape, it.Node.WorldMatrix()))
	}
	return best, found
}

// itemShape is the visible body of an item, much smaller than its trigger.
var itemShape = physics.NewAABBFromCenter(rl.Vector3{}, rl.Vector3{X: 0.3, Y: 0.05, Z: 0.4})
