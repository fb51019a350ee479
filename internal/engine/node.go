package engine

import (
	"sync/atomic"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var nextUID atomic.Uint64

type Transform struct {
	Position rl.Vector3
	Rotation rl.Quaternion
	Scale    rl.Vector3
}

// Matrix returns the local transform: scale, then rotation, then translation.
func (t Transform) Matrix() rl.Matrix {
	scale := rl.MatrixScale(t.Scale.X, t.Scale.Y, t.Scale.Z)
	rot := rl.QuaternionToMatrix(t.Rotation)
	trans := rl.MatrixTranslate(t.Position.X, t.Position.Y, t.Position.Z)
	return rl.MatrixMultiply(rl.MatrixMultiply(scale, rot), trans)
}

// Node is a scene-graph entry. Doors and items keep a pointer to their node
// and are the only writers of its transform after load.
type Node struct {
	UID       uint64
	Name      string
	Transform Transform
	Scene     *Scene
	Parent    *Node
	Children  []*Node
}

func NewNode(name string) *Node {
	return &Node{
		UID:  nextUID.Add(1),
		Name: name,
		Transform: Transform{
			Position: rl.Vector3{},
			Rotation: rl.QuaternionIdentity(),
			Scale:    rl.Vector3{X: 1, Y: 1, Z: 1},
		},
		Children: make([]*Node, 0),
	}
}

func (n *Node) AddChild(child *Node) {
	if child.Parent != nil {
		child.Parent.RemoveChild(child)
	}
	child.Parent = n
	n.Children = append(n.Children, child)
}

func (n *Node) RemoveChild(child *Node) {
	for i, c := range n.Children {
		if c == child {
			n.Children = append(n.Children[:i], n.Children[i+1:]...)
			child.Parent = nil
			return
		}
	}
}

// WorldMatrix resolves the parent chain.
func (n *Node) WorldMatrix() rl.Matrix {
	local := n.Transform.Matrix()
	if n.Parent == nil {
		return local
	}
	return rl.MatrixMultiply(local, n.Parent.WorldMatrix())
}

func (n *Node) WorldPosition() rl.Vector3 {
	return rl.Vector3Transform(rl.Vector3{}, n.WorldMatrix())
}

// WorldRotation composes rotations up the parent chain.
func (n *Node) WorldRotation() rl.Quaternion {
	if n.Parent == nil {
		return n.Transform.Rotation
	}
	return rl.QuaternionMultiply(n.Parent.WorldRotation(), n.Transform.Rotation)
}

// Translate moves the node in its parent's space.
func (n *Node) Translate(offset rl.Vector3) {
	n.Transform.Position = rl.Vector3Add(n.Transform.Position, offset)
}

// RotateY applies a local rotation about the node's own Y axis.
func (n *Node) RotateY(angle float32) {
	yaw := rl.QuaternionFromAxisAngle(rl.Vector3{Y: 1}, angle)
	n.Transform.Rotation = rl.QuaternionNormalize(rl.QuaternionMultiply(n.Transform.Rotation, yaw))
}
