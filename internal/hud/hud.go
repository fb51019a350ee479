// Package hud holds what the heads-up display shows. The simulation writes
// through Sink; the raylib host reads a State each frame and draws it.
package hud

import (
	"time"

	"seminarbot/internal/inventory"
)

type Sink interface {
	SetStamina(percent float32)
	SetSlot(i int, value string)
	ShowNotice(text string, d time.Duration)
	RequestEndCode()
}

// State is a headless Sink. Notices clear themselves once their duration
// has passed on the injected clock.
type State struct {
	now func() time.Time

	stamina     float32
	slots       [inventory.Capacity]string
	notice      string
	noticeUntil time.Time
	endCode     bool
}

// NewState returns an empty HUD. A nil clock means time.Now.
func NewState(now func() time.Time) *State {
	if now == nil {
		now = time.Now
	}
	return &State{now: now, stamina: 100}
}

func (s *State) SetStamina(percent float32) {
	switch {
	case percent < 0:
		percent = 0
	case percent > 100:
		percent = 100
	}
	s.stamina = percent
}

func (s *State) Stamina() float32 { return s.stamina }

// SetSlot ignores indexes past the visible slots.
func (s *State) SetSlot(i int, value string) {
	if i < 0 || i >= len(s.slots) {
		return
	}
	s.slots[i] = value
}

func (s *State) Slot(i int) string {
	if i < 0 || i >= len(s.slots) {
		return ""
	}
	return s.slots[i]
}

func (s *State) Slots() []string {
	return s.slots[:]
}

// ShowNotice replaces any visible notice.
func (s *State) ShowNotice(text string, d time.Duration) {
	s.notice = text
	s.noticeUntil = s.now().Add(d)
}

// Notice returns the visible notice, if any.
func (s *State) Notice() (string, bool) {
	if s.notice == "" {
		return "", false
	}
	if !s.now().Before(s.noticeUntil) {
		s.notice = ""
		return "", false
	}
	return s.notice, true
}

func (s *State) RequestEndCode() {
	s.endCode = true
}

// TakeEndCodeRequest reports and clears a pending end-code prompt.
func (s *State) TakeEndCodeRequest() bool {
	req := s.endCode
	s.endCode = false
	return req
}
