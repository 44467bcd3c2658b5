package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

const sampleRate = beep.SampleRate(44100)

// SoundType — звуковой эффект игры
type SoundType int

const (
	SoundSpawn SoundType = iota
	SoundReject
	SoundEscape
	SoundKill
	SoundVictory
	SoundDefeat
)

// note is one sine tone of a sound.
type note struct {
	freq     float64
	duration time.Duration
	volume   float64
}

var sounds = map[SoundType][]note{
	SoundSpawn:   {{660, 60 * time.Millisecond, 0.35}, {880, 60 * time.Millisecond, 0.35}},
	SoundReject:  {{140, 150 * time.Millisecond, 0.5}},
	SoundEscape:  {{988, 50 * time.Millisecond, 0.3}, {1319, 90 * time.Millisecond, 0.3}},
	SoundKill:    {{220, 80 * time.Millisecond, 0.4}, {165, 120 * time.Millisecond, 0.3}},
	SoundVictory: {{523, 120 * time.Millisecond, 0.4}, {659, 120 * time.Millisecond, 0.4}, {784, 240 * time.Millisecond, 0.4}},
	SoundDefeat:  {{392, 160 * time.Millisecond, 0.4}, {330, 160 * time.Millisecond, 0.4}, {262, 320 * time.Millisecond, 0.4}},
}

// NewSound builds a finite streamer for the effect.
func NewSound(t SoundType, masterVolume float64) (beep.Streamer, error) {
	notes, ok := sounds[t]
	if !ok {
		return nil, fmt.Errorf("unknown sound %d", t)
	}
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		tone, err := generators.SineTone(sampleRate, n.freq)
		if err != nil {
			return nil, fmt.Errorf("tone %.0fHz: %w", n.freq, err)
		}
		parts = append(parts, newVolume(beep.Take(sampleRate.N(n.duration), tone), n.volume*masterVolume))
	}
	return beep.Seq(parts...), nil
}

// math.Log2(0) is -Inf, so zero volume maps to a silent stream.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
