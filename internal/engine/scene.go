package engine

type Scene struct {
	Name  string
	Nodes []*Node

	uidMap map[uint64]*Node
}

func NewScene(name string) *Scene {
	return &Scene{
		Name:   name,
		Nodes:  make([]*Node, 0),
		uidMap: make(map[uint64]*Node),
	}
}

func (s *Scene) AddNode(n *Node) {
	if s.uidMap == nil {
		s.uidMap = make(map[uint64]*Node)
	}
	n.Scene = s
	s.Nodes = append(s.Nodes, n)
	s.uidMap[n.UID] = n
}

// RemoveNode drops n and all of its descendants from the scene so they are
// no longer rendered. The parent links stay intact so transforms still resolve.
func (s *Scene) RemoveNode(n *Node) {
	for _, c := range n.Children {
		s.RemoveNode(c)
	}
	for i, obj := range s.Nodes {
		if obj == n {
			s.Nodes = append(s.Nodes[:i], s.Nodes[i+1:]...)
			break
		}
	}
	delete(s.uidMap, n.UID)
	if n.Scene == s {
		n.Scene = nil
	}
}

func (s *Scene) Contains(n *Node) bool {
	_, ok := s.uidMap[n.UID]
	return ok
}

func (s *Scene) FindByUID(uid uint64) *Node {
	return s.uidMap[uid]
}

func (s *Scene) FindByName(name string) *Node {
	for _, n := range s.Nodes {
		if n.Name == name {
			return n
		}
	}
	return nil
}
