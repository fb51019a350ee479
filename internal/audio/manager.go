package audio

import (
	"fmt"
	"sync"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type source struct {
	sound       rl.Sound
	volume      float32
	playing     bool
	wantsToPlay bool // Play was called while play mode was off
}

// Manager plays cues through raylib's audio device.
type Manager struct {
	mu       sync.Mutex
	sources  map[Cue]*source
	playMode bool
}

// NewManager opens the audio device. Call Close when done.
func NewManager() *Manager {
	rl.InitAudioDevice()
	return &Manager{
		sources:  make(map[Cue]*source),
		playMode: true,
	}
}

// Load binds a sound file to a cue. volume is in percent, like the HUD's
// stamina bar, and is clamped to [0, 100].
func (m *Manager) Load(c Cue, path string, volume float32) error {
	sound := rl.LoadSound(path)
	if !rl.IsSoundValid(sound) {
		return fmt.Errorf("load %s cue from %q: invalid sound", c, path)
	}
	v := rl.Clamp(volume, 0, 100) / 100
	rl.SetSoundVolume(sound, v)

	m.mu.Lock()
	defer m.mu.Unlock()
	if old, ok := m.sources[c]; ok {
		rl.UnloadSound(old.sound)
	}
	m.sources[c] = &source{sound: sound, volume: v}
	return nil
}

func (m *Manager) Play(c Cue) {
	m.mu.Lock()
	defer m.mu.Unlock()

	src, ok := m.sources[c]
	if !ok {
		return
	}
	if !m.playMode {
		src.wantsToPlay = true
		return
	}
	if rl.IsSoundPlaying(src.sound) {
		return
	}
	rl.PlaySound(src.sound)
	src.playing = true
}

// Stop halts a cue and rewinds it.
func (m *Manager) Stop(c Cue) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if src, ok := m.sources[c]; ok {
		rl.StopSound(src.sound)
		src.playing = false
		src.wantsToPlay = false
	}
}

// SetPlayMode pauses or resumes every cue. The game turns play mode off
// while the pause menu is open.
func (m *Manager) SetPlayMode(enabled bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.playMode == enabled {
		return
	}
	m.playMode = enabled
	for _, src := range m.sources {
		switch {
		case enabled && src.wantsToPlay:
			rl.PlaySound(src.sound)
			src.playing = true
			src.wantsToPlay = false
		case enabled && src.playing:
			rl.ResumeSound(src.sound)
		case !enabled && src.playing:
			rl.PauseSound(src.sound)
		}
	}
}

// Close unloads every sound and shuts the device down.
func (m *Manager) Close() {
	m.mu.Lock()
	for _, src := range m.sources {
		rl.UnloadSound(src.sound)
	}
	m.sources = nil
	m.mu.Unlock()
	rl.CloseAudioDevice()
}
