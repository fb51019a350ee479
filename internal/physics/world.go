package physics

import rl "github.com/gen2brain/raylib-go/raylib"

// DefaultCollisionRadius is the radius of the player sphere.
const DefaultCollisionRadius = 0.3

// Collider is anything owning a collision box that may change between frames.
type Collider interface {
	CollisionAABB() AABB
}

// PhysicsWorld keeps the player sphere outside solid geometry.
type PhysicsWorld struct {
	Radius  float32
	Fixed   []AABB     // static level geometry, computed once at load
	Dynamic []Collider // doors; queried every frame so moved boxes are never stale
}

func NewPhysicsWorld(radius float32) *PhysicsWorld {
	if radius <= 0 {
		radius = DefaultCollisionRadius
	}
	return &PhysicsWorld{
		Radius:  radius,
		Fixed:   make([]AABB, 0),
		Dynamic: make([]Collider, 0),
	}
}

func (p *PhysicsWorld) AddFixed(boxes ...AABB) {
	p.Fixed = append(p.Fixed, boxes...)
}

func (p *PhysicsWorld) AddDynamic(c Collider) {
	p.Dynamic = append(p.Dynamic, c)
}

// Update resolves pos against every fixed box, then every dynamic box, in order.
// Each resolution sees the position produced by the previous one.
func (p *PhysicsWorld) Update(pos *rl.Vector3) {
	if pos == nil {
		return
	}
	for _, box := range p.Fixed {
		*pos = ResolveSphere(*pos, box, p.Radius)
	}
	for _, c := range p.Dynamic {
		*pos = ResolveSphere(*pos, c.CollisionAABB(), p.Radius)
	}
}

// Colliding reports whether the sphere at pos touches any box.
func (p *PhysicsWorld) Colliding(pos rl.Vector3) bool {
	for _, box := range p.Fixed {
		if CheckCollision(pos, box, p.Radius).Collision {
			return true
		}
	}
	for _, c := range p.Dynamic {
		if CheckCollision(pos, c.CollisionAABB(), p.Radius).Collision {
			return true
		}
	}
	return false
}
