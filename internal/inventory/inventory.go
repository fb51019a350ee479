// Package inventory keeps the items the player has picked up, in pickup
// order, and derives the HUD slots and the end code from them.
package inventory

import (
	"strconv"
	"strings"

	"github.com/elliotchance/orderedmap/v2"
)

// Capacity is the number of HUD slots. Further pickups still count toward
// the code.
const Capacity = 4

// EmptySlot is shown for an item that carries no value.
const EmptySlot = "?"

type entry struct {
	value int
	ok    bool
}

type Inventory struct {
	items *orderedmap.OrderedMap[string, entry]
}

func New() *Inventory {
	return &Inventory{items: orderedmap.NewOrderedMap[string, entry]()}
}

// Add records a pickup and returns its slot index. Adding a name twice is
// ignored and reports added=false.
func (inv *Inventory) Add(name string, value int, ok bool) (slot int, added bool) {
	if _, exists := inv.items.Get(name); exists {
		return -1, false
	}
	slot = inv.items.Len()
	inv.items.Set(name, entry{value: value, ok: ok})
	return slot, true
}

func (inv *Inventory) Has(name string) bool {
	_, ok := inv.items.Get(name)
	return ok
}

func (inv *Inventory) Len() int {
	return inv.items.Len()
}

// Names lists picked-up items in pickup order.
func (inv *Inventory) Names() []string {
	names := make([]string, 0, inv.items.Len())
	for el := inv.items.Front(); el != nil; el = el.Next() {
		names = append(names, el.Key)
	}
	return names
}

// Slots returns the display string of the first Capacity items.
func (inv *Inventory) Slots() []string {
	slots := make([]string, 0, Capacity)
	for el := inv.items.Front(); el != nil && len(slots) < Capacity; el = el.Next() {
		slots = append(slots, display(el.Value))
	}
	return slots
}

// Code concatenates the values of every valued item in pickup order.
func (inv *Inventory) Code() string {
	var b strings.Builder
	for el := inv.items.Front(); el != nil; el = el.Next() {
		if el.Value.ok {
			b.WriteString(strconv.Itoa(el.Value.value))
		}
	}
	return b.String()
}

func display(e entry) string {
	if !e.ok {
		return EmptySlot
	}
	return strconv.Itoa(e.value)
}

// SlotText is the HUD text for a single pickup.
func SlotText(value int, ok bool) string {
	return display(entry{value: value, ok: ok})
}
