// Package entity holds the interactive world objects: doors and items.
package entity

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"seminarbot/internal/audio"
	"seminarbot/internal/engine"
	"seminarbot/internal/physics"
)

// Prompter is the UI collaborator doors talk to.
type Prompter interface {
	// ShowNotice displays text for d, then clears it.
	ShowNotice(text string, d time.Duration)
	// RequestEndCode asks the UI to open the end-code prompt.
	RequestEndCode()
}

type Swing int

const (
	SwingRight Swing = iota
	SwingLeft
)

const (
	DefaultSwingAngle     = 160 // degrees
	DefaultNoticeDuration = 2 * time.Second
	ForbiddenText         = "This door will not open."
)

// DefaultOpenOffset is the translation a right-swinging, unrotated leaf
// makes when it opens, so it pivots around its hinge instead of its center.
var DefaultOpenOffset = rl.Vector3{X: 0.87, Y: 0, Z: 0.21}

var (
	// trigger volume; proximity to it lets the player use the door
	doorInteractionBox = physics.AABB{
		Min: rl.Vector3{X: -1, Y: -1.05, Z: -2},
		Max: rl.Vector3{X: 1, Y: 1.05, Z: 2},
	}
	// physical leaf; its world box changes shape between open and closed
	doorCollisionBox = physics.AABB{
		Min: rl.Vector3{X: -0.9, Y: -1.05, Z: -0.086603},
		Max: rl.Vector3{X: 0.9, Y: 1.05, Z: 0.086603},
	}
)

type DoorOptions struct {
	Swing          Swing
	SwingAngle     float32    // degrees, 0 means DefaultSwingAngle
	OpenOffset     rl.Vector3 // zero means DefaultOpenOffset
	Locked         bool
	Forbidden      bool
	NoticeDuration time.Duration
}

type Door struct {
	Node *engine.Node

	opened    bool
	unlocked  bool
	forbidden bool
	silent    bool

	movement rl.Vector3
	angle    float32 // radians, positive when opening

	localInteraction physics.AABB
	localCollision   physics.AABB
	interaction      physics.AABB
	collision        physics.AABB

	partner        *Door
	noticeDuration time.Duration

	cues audio.Player
	ui   Prompter
}

// NewDoor derives the door's open movement from its swing side and initial
// orientation, and computes its world boxes from the node's current transform.
func NewDoor(node *engine.Node, opts DoorOptions, cues audio.Player, ui Prompter) *Door {
	if cues == nil {
		cues = audio.Nop{}
	}
	angle := opts.SwingAngle
	if angle == 0 {
		angle = DefaultSwingAngle
	}
	offset := opts.OpenOffset
	if offset == (rl.Vector3{}) {
		offset = DefaultOpenOffset
	}
	if opts.Swing == SwingLeft {
		offset.X = -offset.X
		angle = -angle
	}
	notice := opts.NoticeDuration
	if notice <= 0 {
		notice = DefaultNoticeDuration
	}

	d := &Door{
		Node:             node,
		unlocked:         !opts.Locked,
		forbidden:        opts.Forbidden,
		movement:         rl.Vector3RotateByQuaternion(offset, node.Transform.Rotation),
		angle:            angle * rl.Deg2rad,
		localInteraction: doorInteractionBox,
		localCollision:   doorCollisionBox,
		noticeDuration:   notice,
		cues:             cues,
		ui:               ui,
	}
	d.refreshAABBs()
	return d
}

func (d *Door) Name() string                  { return d.Node.Name }
func (d *Door) Opened() bool                  { return d.opened }
func (d *Door) Unlocked() bool                { return d.unlocked }
func (d *Door) Forbidden() bool               { return d.forbidden }
func (d *Door) Movement() rl.Vector3          { return d.movement }
func (d *Door) Partner() *Door                { return d.partner }
func (d *Door) InteractionAABB() physics.AABB { return d.interaction }

// CollisionAABB implements physics.Collider.
func (d *Door) CollisionAABB() physics.AABB { return d.collision }

func (d *Door) Unlock() { d.unlocked = true }
func (d *Door) Lock()   { d.unlocked = false }

// Forbid marks the door as permanently unusable. There is no way back.
func (d *Door) Forbid() { d.forbidden = true }

// ChangeState is the door's reaction to the interact key.
func (d *Door) ChangeState() {
	switch {
	case d.forbidden:
		if d.ui != nil {
			d.ui.ShowNotice(ForbiddenText, d.noticeDuration)
		}
	case d.unlocked:
		d.toggle()
		if d.partner != nil && d.partner.opened != d.opened {
			d.partner.toggle()
		}
	default:
		if d.ui != nil {
			d.ui.RequestEndCode()
		}
	}
}

func (d *Door) toggle() {
	if d.opened {
		d.Node.RotateY(-d.angle)
		d.Node.Translate(rl.Vector3Negate(d.movement))
		if !d.silent {
			d.cues.Stop(audio.CueDoorOpen)
			d.cues.Play(audio.CueDoorClose)
		}
	} else {
		d.Node.RotateY(d.angle)
		d.Node.Translate(d.movement)
		if !d.silent {
			d.cues.Stop(audio.CueDoorClose)
			d.cues.Play(audio.CueDoorOpen)
		}
	}
	d.opened = !d.opened
	d.refreshAABBs()
}

func (d *Door) refreshAABBs() {
	m := d.Node.WorldMatrix()
	d.interaction = physics.TransformAABB(d.localInteraction, m)
	d.collision = physics.TransformAABB(d.localCollision, m)
}

// MakeDualDoor joins two leaves of one doorway. The primary's trigger grows
// to cover the secondary leaf, the secondary loses its trigger and its cues,
// and using the primary swings both leaves.
func MakeDualDoor(primary, secondary *Door) {
	if primary == nil || secondary == nil || primary == secondary {
		return
	}
	inv := rl.MatrixInvert(primary.Node.WorldMatrix())
	offset := rl.Vector3Transform(secondary.Node.WorldPosition(), inv)

	primary.localInteraction = primary.localInteraction.Union(primary.localInteraction.Translate(offset))
	secondary.localInteraction = physics.EmptyAABB()
	secondary.silent = true

	primary.partner = secondary
	secondary.partner = primary

	primary.refreshAABBs()
	secondary.refreshAABBs()
}
