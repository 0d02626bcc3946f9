// Package audio synthesizes the game's sound cues with beep.
// When no audio device is available the manager stays silent.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// SoundManager plays cues for game events.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewSoundManager creates a silent manager; call Initialize to open the device.
func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: core.ClampF(volume, 0, 1),
	}
}

// Initialize opens the speaker. On error the manager stays silent and usable.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	// Initialize speaker with sample rate and buffer size
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*50)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Enabled reports whether cues are audible.
func (sm *SoundManager) Enabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Cleanup stops all sounds and closes the device.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	sm.initialized = false
}

// Play mixes a cue into the output. Silent managers ignore it.
func (sm *SoundManager) Play(c Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	s := NewCue(c, sampleRate, sm.volume)
	if s == nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// CueFor maps a game event to its sound, if it has one.
func CueFor(e core.Event) (Cue, bool) {
	switch e.Kind {
	case core.EventFlap:
		return CueFlap, true
	case core.EventScore:
		return CuePoint, true
	case core.EventNewHighScore:
		return CueRecord, true
	case core.EventCollision:
		return CueHit, true
	default:
		return 0, false
	}
}

// HandleEvents plays the cue of every event that has one.
func (sm *SoundManager) HandleEvents(events []core.Event) {
	for _, e := range events {
		if c, ok := CueFor(e); ok {
			sm.Play(c)
		}
	}
}
