package world

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/sirupsen/logrus"

	"seminarbot/internal/engine"
	"seminarbot/internal/entity"
	"seminarbot/internal/hud"
	"seminarbot/internal/inventory"
	"seminarbot/internal/physics"
)

// Dispatcher routes an interact press to every door and item in reach.
type Dispatcher struct {
	Doors        []*entity.Door
	Items        []*entity.Item
	DoorDistance float32
	ItemDistance float32

	Scene     *engine.Scene
	Inventory *inventory.Inventory
	HUD       hud.Sink
	Log       logrus.FieldLogger
}

// Dispatch changes the state of each door whose trigger is within
// DoorDistance of pos and picks up each item within ItemDistance. It
// returns how many of each it touched.
func (d *Dispatcher) Dispatch(pos rl.Vector3) (doors, items int) {
	for _, door := range d.Doors {
		if physics.CheckCollision(pos, door.InteractionAABB(), d.DoorDistance).Collision {
			door.ChangeState()
			doors++
		}
	}
	for _, item := range d.Items {
		if item.PickedUp() {
			continue
		}
		if !physics.CheckCollision(pos, item.InteractionAABB(), d.ItemDistance).Collision {
			continue
		}
		if !item.Pickup() {
			continue
		}
		items++
		d.collect(item)
	}
	return doors, items
}

func (d *Dispatcher) collect(item *entity.Item) {
	if d.Scene != nil {
		d.Scene.RemoveNode(item.Node)
	}
	value, ok := item.Value()
	if d.Inventory != nil {
		if slot, added := d.Inventory.Add(item.Name(), value, ok); added && d.HUD != nil {
			d.HUD.SetSlot(slot, inventory.SlotText(value, ok))
		}
	}
	if d.Log != nil {
		d.Log.Infof("picked up %s", item.Name())
	}
}
