package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"seminarbot/internal/assets"
	"seminarbot/internal/engine"
	"seminarbot/internal/entity"
	"seminarbot/internal/level"
	"seminarbot/internal/physics"
	"seminarbot/internal/world"
)

// Renderer draws every sized scene node as a box. There are no meshes or
// textures; the level file only carries box extents.
type Renderer struct {
	cube    rl.Model
	shapes  map[*engine.Node]physics.AABB
	palette *assets.Palette
	doors   map[*engine.Node]*entity.Door

	// culled counts the boxes skipped by the last Draw
	culled int
}

// NewRenderer needs an open window for the cube mesh upload.
func NewRenderer(w *world.World, palette *assets.Palette) *Renderer {
	r := newRenderer(w, palette)
	r.cube = rl.LoadModelFromMesh(rl.GenMeshCube(1, 1, 1))
	return r
}

func newRenderer(w *world.World, palette *assets.Palette) *Renderer {
	r := &Renderer{
		shapes:  w.Level.Shapes,
		palette: palette,
		doors:   make(map[*engine.Node]*entity.Door),
	}
	for _, d := range w.Doors() {
		r.doors[d.Node] = d
	}
	return r
}

func (r *Renderer) Draw(camera rl.Camera3D, aspect float32, scene *engine.Scene) {
	frustum := ExtractFrustum(camera, aspect)
	r.culled = 0

	for _, n := range scene.Nodes {
		shape, ok := r.shapes[n]
		if !ok {
			continue
		}
		m := n.WorldMatrix()
		if !frustum.ContainsAABB(physics.TransformAABB(shape, m)) {
			r.culled++
			continue
		}

		size := shape.Size()
		center := shape.Center()
		local := rl.MatrixMultiply(
			rl.MatrixScale(size.X, size.Y, size.Z),
			rl.MatrixTranslate(center.X, center.Y, center.Z),
		)
		r.cube.Transform = rl.MatrixMultiply(local, m)
		color := r.palette.Material(r.materialKey(n)).Color
		rl.DrawModel(r.cube, rl.Vector3Zero(), 1.0, color)
		rl.DrawModelWires(r.cube, rl.Vector3Zero(), 1.0, rl.Fade(rl.Black, 0.3))
	}
}

// DrawDebug outlines every collision and trigger box.
func (r *Renderer) DrawDebug(w *world.World) {
	for _, box := range w.Physics.Fixed {
		drawBox(box, rl.Green)
	}
	for _, d := range w.Doors() {
		drawBox(d.CollisionAABB(), rl.Red)
		drawBox(d.InteractionAABB(), rl.Orange)
	}
	for _, it := range w.Items() {
		if !it.PickedUp() {
			drawBox(it.InteractionAABB(), rl.Yellow)
		}
	}
	drawBox(w.Level.Win, rl.Lime)
}

func (r *Renderer) Unload() {
	rl.UnloadModel(r.cube)
}

func drawBox(box physics.AABB, color rl.Color) {
	if box.IsEmpty() {
		return
	}
	rl.DrawBoundingBox(rl.BoundingBox{Min: box.Min, Max: box.Max}, color)
}

// materialKey reads doors from their live state so an unlocked door stops
// looking locked.
func (r *Renderer) materialKey(n *engine.Node) string {
	if d, ok := r.doors[n]; ok {
		return doorMaterialKey(d)
	}
	return classMaterialKey(level.Classify(n.Name))
}

func doorMaterialKey(d *entity.Door) string {
	switch {
	case d.Forbidden():
		return assets.DoorForbidden
	case !d.Unlocked():
		return assets.DoorLocked
	}
	return assets.Door
}

func classMaterialKey(c level.Class) string {
	switch c.Kind {
	case level.KindFixed:
		return assets.Fixed
	case level.KindDoor:
		switch {
		case c.Forbidden:
			return assets.DoorForbidden
		case c.Locked:
			return assets.DoorLocked
		}
		return assets.Door
	case level.KindItem:
		return assets.Item
	case level.KindWin:
		return assets.Win
	}
	return assets.Decor
}
