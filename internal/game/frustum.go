package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"seminarbot/internal/physics"
)

const (
	nearPlane float32 = 0.05
	farPlane  float32 = 500.0
)

// Frustum represents the 6 planes of a view frustum for culling
type Frustum struct {
	planes [6]Plane // left, right, bottom, top, near, far
}

// Plane represents a plane in 3D space (ax + by + cz + d = 0)
type Plane struct {
	normal   rl.Vector3
	distance float32
}

// ExtractFrustum extracts frustum planes from the camera's view-projection
// matrix (Gribb/Hartmann).
func ExtractFrustum(camera rl.Camera3D, aspect float32) Frustum {
	view := rl.MatrixLookAt(camera.Position, camera.Target, camera.Up)
	proj := rl.MatrixPerspective(camera.Fovy*rl.Deg2rad, aspect, nearPlane, farPlane)
	vp := rl.MatrixMultiply(view, proj)

	rows := [6][4]float32{
		{vp.M3 + vp.M0, vp.M7 + vp.M4, vp.M11 + vp.M8, vp.M15 + vp.M12},  // left
		{vp.M3 - vp.M0, vp.M7 - vp.M4, vp.M11 - vp.M8, vp.M15 - vp.M12},  // right
		{vp.M3 + vp.M1, vp.M7 + vp.M5, vp.M11 + vp.M9, vp.M15 + vp.M13},  // bottom
		{vp.M3 - vp.M1, vp.M7 - vp.M5, vp.M11 - vp.M9, vp.M15 - vp.M13},  // top
		{vp.M3 + vp.M2, vp.M7 + vp.M6, vp.M11 + vp.M10, vp.M15 + vp.M14}, // near
		{vp.M3 - vp.M2, vp.M7 - vp.M6, vp.M11 - vp.M10, vp.M15 - vp.M14}, // far
	}

	var f Frustum
	for i, r := range rows {
		f.planes[i] = normalizePlane(Plane{
			normal:   rl.Vector3{X: r[0], Y: r[1], Z: r[2]},
			distance: r[3],
		})
	}
	return f
}

func normalizePlane(p Plane) Plane {
	length := rl.Vector3Length(p.normal)
	if length == 0 {
		return p
	}
	return Plane{
		normal:   rl.Vector3Scale(p.normal, 1.0/length),
		distance: p.distance / length,
	}
}

// ContainsAABB reports whether any part of box may be visible. It tests the
// corner furthest along each plane normal.
func (f *Frustum) ContainsAABB(box physics.AABB) bool {
	if box.IsEmpty() {
		return false
	}
	for i := range f.planes {
		n := f.planes[i].normal
		p := box.Min
		if n.X >= 0 {
			p.X = box.Max.X
		}
		if n.Y >= 0 {
			p.Y = box.Max.Y
		}
		if n.Z >= 0 {
			p.Z = box.Max.Z
		}
		if rl.Vector3DotProduct(n, p)+f.planes[i].distance < 0 {
			return false
		}
	}
	return true
}

// ContainsPoint tests if a point is inside the frustum
func (f *Frustum) ContainsPoint(point rl.Vector3) bool {
	for i := range f.planes {
		if rl.Vector3DotProduct(f.planes[i].normal, point)+f.planes[i].distance < 0 {
			return false
		}
	}
	return true
}
