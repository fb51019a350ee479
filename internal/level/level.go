// Package level loads a level file into a scene graph and sorts its nodes
// into the pieces the world needs: spawn, fixed collision, doors, items and
// the win zone.
package level

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"seminarbot/internal/engine"
	"seminarbot/internal/physics"
)

var ErrNoSpawn = errors.New("level has no spawn node")

// --- JSON types ---

type File struct {
	Name  string    `json:"name"`
	Nodes []NodeDef `json:"nodes"`
	// AABBs are extra fixed boxes in world space.
	AABBs []BoxDef `json:"aabbs,omitempty"`
	Win   *BoxDef  `json:"win,omitempty"`
}

type NodeDef struct {
	Name     string      `json:"name"`
	Parent   string      `json:"parent,omitempty"`
	Position [3]float32  `json:"position"`
	Rotation [3]float32  `json:"rotation"` // Euler degrees
	Scale    [3]float32  `json:"scale"`
	Size     *[3]float32 `json:"size,omitempty"` // box extents in local space
	Value    *int        `json:"value,omitempty"`
}

type BoxDef struct {
	Min [3]float32 `json:"min"`
	Max [3]float32 `json:"max"`
}

func (b BoxDef) AABB() physics.AABB {
	return physics.AABB{Min: vec(b.Min), Max: vec(b.Max)}
}

// --- Assembled level ---

type Door struct {
	Node  *engine.Node
	Class Class
}

type Item struct {
	Node  *engine.Node
	Value *int
}

// Dual pairs two door leaves by index into Level.Doors.
type Dual struct {
	Primary, Secondary int
}

type Level struct {
	Name  string
	Scene *engine.Scene

	Spawn    rl.Vector3
	SpawnYaw float32

	Fixed []physics.AABB
	Doors []Door
	Duals []Dual
	Items []Item
	// Win is empty when the level has no win zone.
	Win physics.AABB

	// Shapes keeps the local box of every sized node for rendering.
	Shapes map[*engine.Node]physics.AABB
}

// --- Loading ---

func Load(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Level, error) {
	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse level: %w", err)
	}
	return Build(f)
}

// Build assembles a level from an already decoded file.
func Build(f File) (*Level, error) {
	lvl := &Level{
		Name:   f.Name,
		Scene:  engine.NewScene(f.Name),
		Win:    physics.EmptyAABB(),
		Shapes: make(map[*engine.Node]physics.AABB),
	}

	byName := make(map[string]*engine.Node, len(f.Nodes))
	for _, def := range f.Nodes {
		if def.Name == "" {
			return nil, errors.New("build level: node without a name")
		}
		if _, dup := byName[def.Name]; dup {
			return nil, fmt.Errorf("build level: duplicate node %q", def.Name)
		}
		n := newNode(def)
		byName[def.Name] = n
		lvl.Scene.AddNode(n)
		if def.Size != nil {
			lvl.Shapes[n] = physics.NewAABBFromCenter(rl.Vector3{}, vec(*def.Size))
		}
	}

	for _, def := range f.Nodes {
		if def.Parent == "" {
			continue
		}
		parent, ok := byName[def.Parent]
		if !ok {
			return nil, fmt.Errorf("build level: node %q has unknown parent %q", def.Name, def.Parent)
		}
		parent.AddChild(byName[def.Name])
	}
	if err := checkCycles(lvl.Scene.Nodes); err != nil {
		return nil, err
	}

	spawned := false
	leaves := make(map[string][2]int)
	for _, def := range f.Nodes {
		n := byName[def.Name]
		class := Classify(def.Name)
		switch class.Kind {
		case KindSpawn:
			if spawned {
				continue
			}
			spawned = true
			lvl.Spawn = n.WorldPosition()
			lvl.SpawnYaw = yawOf(n.WorldRotation())
		case KindFixed:
			if box, ok := lvl.Shapes[n]; ok {
				lvl.Fixed = append(lvl.Fixed, physics.TransformAABB(box, n.WorldMatrix()))
			}
		case KindDoor:
			lvl.Doors = append(lvl.Doors, Door{Node: n, Class: class})
			if class.Leaf != 0 {
				pair, seen := leaves[class.Base]
				if !seen {
					pair = [2]int{-1, -1}
				}
				pair[class.Leaf-'A'] = len(lvl.Doors) - 1
				leaves[class.Base] = pair
			}
		case KindItem:
			lvl.Items = append(lvl.Items, Item{Node: n, Value: def.Value})
		case KindWin:
			if box, ok := lvl.Shapes[n]; ok {
				lvl.Win = lvl.Win.Union(physics.TransformAABB(box, n.WorldMatrix()))
			}
		}
	}
	if !spawned {
		return nil, ErrNoSpawn
	}

	for _, def := range f.Nodes {
		class := Classify(def.Name)
		if class.Leaf != 'A' {
			continue
		}
		if pair := leaves[class.Base]; pair[0] >= 0 && pair[1] >= 0 {
			lvl.Duals = append(lvl.Duals, Dual{Primary: pair[0], Secondary: pair[1]})
		}
	}

	for _, b := range f.AABBs {
		lvl.Fixed = append(lvl.Fixed, b.AABB())
	}
	if f.Win != nil {
		lvl.Win = lvl.Win.Union(f.Win.AABB())
	}

	return lvl, nil
}

func newNode(def NodeDef) *engine.Node {
	n := engine.NewNode(def.Name)
	n.Transform.Position = vec(def.Position)
	n.Transform.Rotation = rl.QuaternionFromEuler(
		def.Rotation[0]*rl.Deg2rad,
		def.Rotation[1]*rl.Deg2rad,
		def.Rotation[2]*rl.Deg2rad,
	)
	// Default scale to 1 if zero
	if def.Scale != [3]float32{} {
		n.Transform.Scale = vec(def.Scale)
	}
	return n
}

func checkCycles(nodes []*engine.Node) error {
	for _, n := range nodes {
		steps := 0
		for p := n.Parent; p != nil; p = p.Parent {
			if p == n || steps > len(nodes) {
				return fmt.Errorf("build level: parent cycle at node %q", n.Name)
			}
			steps++
		}
	}
	return nil
}

// yawOf extracts the heading of a rotation, with yaw 0 facing -Z.
func yawOf(q rl.Quaternion) float32 {
	f := rl.Vector3RotateByQuaternion(rl.Vector3{Z: -1}, q)
	return math32.Atan2(-f.X, -f.Z)
}

func vec(a [3]float32) rl.Vector3 {
	return rl.Vector3{X: a[0], Y: a[1], Z: a[2]}
}
