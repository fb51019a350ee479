package physics

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// CollisionResult is the outcome of a sphere-vs-box proximity test.
type CollisionResult struct {
	Collision bool
	Distance  float32
}

// ClosestPoint clamps p into the box on every axis.
func ClosestPoint(p rl.Vector3, box AABB) rl.Vector3 {
	return rl.Vector3{
		X: rl.Clamp(p.X, box.Min.X, box.Max.X),
		Y: rl.Clamp(p.Y, box.Min.Y, box.Max.Y),
		Z: rl.Clamp(p.Z, box.Min.Z, box.Max.Z),
	}
}

// IntersectDistance returns the Euclidean distance from center to the
// closest point of box. It is zero when center is inside the box.
func IntersectDistance(center rl.Vector3, box AABB) float32 {
	closest := ClosestPoint(center, box)
	dx := closest.X - center.X
	dy := closest.Y - center.Y
	dz := closest.Z - center.Z
	return math32.Sqrt(dx*dx + dy*dy + dz*dz)
}

// CheckCollision tests a sphere of the given radius centered at point
// against box. Touching (distance == radius) counts as a collision.
// Empty boxes never collide.
func CheckCollision(point rl.Vector3, box AABB, radius float32) CollisionResult {
	if box.IsEmpty() {
		return CollisionResult{Distance: math32.Inf(1)}
	}
	d := IntersectDistance(point, box)
	return CollisionResult{Collision: d <= radius, Distance: d}
}

// ResolveSphere pushes center out of box and returns the corrected center.
//
// The push is applied per axis: on every axis where the center lies outside
// [min, max] it is moved away from the box by the penetration depth. This is
// an approximation of a minimum translation vector and can under-resolve at
// corners or when the center is already inside the box.
func ResolveSphere(center rl.Vector3, box AABB, radius float32) rl.Vector3 {
	res := CheckCollision(center, box, radius)
	if !res.Collision {
		return center
	}
	depth := radius - res.Distance

	out := center
	out.X = pushAxis(center.X, box.Min.X, box.Max.X, depth)
	out.Y = pushAxis(center.Y, box.Min.Y, box.Max.Y, depth)
	out.Z = pushAxis(center.Z, box.Min.Z, box.Max.Z, depth)
	return out
}

func pushAxis(v, lo, hi, depth float32) float32 {
	if v < lo {
		return v - depth
	}
	if v > hi {
		return v + depth
	}
	return v
}
