// Package audio plays the game's one-shot sound cues.
package audio

import "fmt"

// Cue identifies a sound the simulation asks for. Playback is fire-and-forget.
type Cue int

const (
	CueFootstepWalk Cue = iota
	CueFootstepSprint
	CueDoorOpen
	CueDoorClose
	CuePickup
	CueWin
	cueCount
)

var cueNames = [...]string{
	CueFootstepWalk:   "footstep_walk",
	CueFootstepSprint: "footstep_sprint",
	CueDoorOpen:       "door_open",
	CueDoorClose:      "door_close",
	CuePickup:         "pickup",
	CueWin:            "win",
}

func (c Cue) String() string {
	if c < 0 || c >= cueCount {
		return fmt.Sprintf("Cue(%d)", int(c))
	}
	return cueNames[c]
}

// ParseCue maps a config key such as "door_open" to its Cue.
func ParseCue(name string) (Cue, bool) {
	for i, n := range cueNames {
		if n == name {
			return Cue(i), true
		}
	}
	return 0, false
}

// Cues lists every cue in declaration order.
func Cues() []Cue {
	out := make([]Cue, 0, cueCount)
	for c := Cue(0); c < cueCount; c++ {
		out = append(out, c)
	}
	return out
}

// Player is the sink the simulation plays cues through.
// Play on a cue that is already sounding does not restart it.
type Player interface {
	Play(c Cue)
	Stop(c Cue)
}

// Nop discards every cue.
type Nop struct{}

func (Nop) Play(Cue) {}
func (Nop) Stop(Cue) {}
