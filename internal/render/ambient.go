// internal/render/ambient.go
package render

import (
	"math"

	"go-reverse-td/internal/config"
	"go-reverse-td/internal/utils"
)

// Firefly — светлячок фоновой декорации
type Firefly struct {
	X, Y   float64
	Radius float64
	Phase  float64
	Speed  float64
	Drift  float64
}

// CanopyRing: кольцо "кроны" на фоне, неподвижное.
type CanopyRing struct {
	X, Y      float64
	Radius    float64
	Thickness float64
	Alpha     float64
}

// Ambient holds decoration that moves independently of the simulation.
type Ambient struct {
	Fireflies []Firefly
	Rings     []CanopyRing
}

// NewAmbient seeds the decoration from rng.
func NewAmbient(rng *utils.PRNGService) *Ambient {
	a := &Ambient{
		Fireflies: make([]Firefly, config.FireflyCount),
		Rings:     make([]CanopyRing, config.CanopyRingCount),
	}
	for i := range a.Fireflies {
		a.Fireflies[i] = Firefly{
			X:      rng.Range(0, config.DesignWidth),
			Y:      rng.Range(0, config.DesignHeight),
			Radius: rng.Range(1.8, 4.0),
			Phase:  rng.Range(0, 2*math.Pi),
			Speed:  rng.Range(0.4, 1.15),
			Drift:  rng.Range(18, 44),
		}
	}
	for i := range a.Rings {
		a.Rings[i] = CanopyRing{
			X:         rng.Range(0, config.DesignWidth),
			Y:         rng.Range(60, config.DesignHeight-60),
			Radius:    rng.Range(40, 200),
			Thickness: rng.Range(1, 4),
			Alpha:     rng.Range(0.05, 0.15),
		}
	}
	return a
}

// Update drifts the fireflies. Ones that leave the field re-enter on the
// opposite side.
func (a *Ambient) Update(dt float64) {
	for i := range a.Fireflies {
		f := &a.Fireflies[i]
		f.Phase += dt * f.Speed
		f.X += math.Cos(f.Phase*1.6) * f.Drift * dt
		f.Y += math.Sin(f.Phase) * f.Drift * 0.6 * dt

		if f.X < -40 {
			f.X = config.DesignWidth + 40
		}
		if f.X > config.DesignWidth+40 {
			f.X = -40
		}
		if f.Y < 40 {
			f.Y = config.DesignHeight - 60
		}
		if f.Y > config.DesignHeight-40 {
			f.Y = 60
		}
	}
}

// Intensity: яркость мерцания в диапазоне [0.2, 0.7].
func (f Firefly) Intensity() float64 {
	return 0.45 + math.Sin(f.Phase*2)*0.25
}
