package controller

// Key is a logical input, independent of the physical binding.
type Key int

const (
	KeyForward Key = iota
	KeyBack
	KeyLeft
	KeyRight
	KeySprint
	KeyInteract
	keyCount
)

func (k Key) String() string {
	switch k {
	case KeyForward:
		return "forward"
	case KeyBack:
		return "back"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeySprint:
		return "sprint"
	case KeyInteract:
		return "interact"
	}
	return "unknown"
}

type keySet [keyCount]bool

func (s *keySet) set(k Key, down bool) {
	if k >= 0 && k < keyCount {
		s[k] = down
	}
}

func (s *keySet) held(k Key) bool {
	return k >= 0 && k < keyCount && s[k]
}

func (s *keySet) anyMovement() bool {
	return s[KeyForward] || s[KeyBack] || s[KeyLeft] || s[KeyRight]
}
