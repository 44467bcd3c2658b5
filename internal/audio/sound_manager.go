package audio

import (
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"go-reverse-td/internal/event"
)

// SoundManager plays short cues for simulation events. Until Initialize
// succeeds every call is a no-op, so headless hosts can subscribe it freely.
type SoundManager struct {
	mu           sync.Mutex
	mixer        *beep.Mixer
	initialized  bool
	muted        bool
	masterVolume float64
}

func NewSoundManager(masterVolume float64) *SoundManager {
	return &SoundManager{mixer: &beep.Mixer{}, masterVolume: masterVolume}
}

// Initialize открывает аудиоустройство и запускает микшер.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// ToggleMute включает/выключает звук и возвращает новое состояние.
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = !sm.muted
	return sm.muted
}

// Play queues a sound on the mixer.
func (sm *SoundManager) Play(t SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}
	s, err := NewSound(t, sm.masterVolume)
	if err != nil {
		log.Printf("Sound: %v", err)
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// OnEvent реализует event.Listener.
func (sm *SoundManager) OnEvent(e event.Event) {
	if t, ok := SoundFor(e); ok {
		sm.Play(t)
	}
}

// SoundFor maps an event to its cue. Shots and status messages are silent.
func SoundFor(e event.Event) (SoundType, bool) {
	switch e.Type {
	case event.UnitSpawned:
		return SoundSpawn, true
	case event.SpawnRejected:
		return SoundReject, true
	case event.UnitEscaped:
		return SoundEscape, true
	case event.UnitDestroyed:
		return SoundKill, true
	case event.GameOver:
		if data, ok := e.Data.(event.GameOverData); ok && data.Victory {
			return SoundVictory, true
		}
		return SoundDefeat, true
	}
	return 0, false
}
