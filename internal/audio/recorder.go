package audio

import "sync"

// Recorder is an in-memory Player. It keeps every Play and Stop call in
// order and tracks which cues are sounding. The headless soak runner and
// the package tests use it in place of the raylib Manager.
type Recorder struct {
	mu      sync.Mutex
	events  []Event
	playing map[Cue]bool
}

type Event struct {
	Cue  Cue
	Stop bool
}

func NewRecorder() *Recorder {
	return &Recorder{playing: make(map[Cue]bool)}
}

func (r *Recorder) Play(c Cue) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, Event{Cue: c})
	r.playing[c] = true
}

func (r *Recorder) Stop(c Cue) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, Event{Cue: c, Stop: true})
	r.playing[c] = false
}

// Count returns how many times c was played.
func (r *Recorder) Count(c Cue) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, e := range r.events {
		if e.Cue == c && !e.Stop {
			n++
		}
	}
	return n
}

func (r *Recorder) Playing(c Cue) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.playing[c]
}

func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
	r.playing = make(map[Cue]bool)
}
