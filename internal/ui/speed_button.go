// internal/ui/speed_button.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"go-reverse-td/internal/config"
	"go-reverse-td/pkg/render"
)

// SpeedButton переключает множитель скорости симуляции x1 / x2 / x4.
type SpeedButton struct {
	X, Y           float32
	Size           float32
	LastClickTime  time.Time
	LastToggleTime time.Time
	StateColors    []color.RGBA
	CurrentState   int
}

func NewSpeedButton(x, y, size float32, stateColors []color.RGBA) *SpeedButton {
	return &SpeedButton{
		X:           x,
		Y:           y,
		Size:        size,
		StateColors: stateColors,
	}
}

// Multiplier возвращает текущий множитель скорости.
func (b *SpeedButton) Multiplier() int {
	return config.SpeedMultipliers[b.CurrentState%len(config.SpeedMultipliers)]
}

// Contains использует круг для определения попадания, так как форма сложная.
func (b *SpeedButton) Contains(x, y int) bool {
	dx, dy := float32(x)-b.X, float32(y)-b.Y
	r := b.Size * 1.5
	return dx*dx+dy*dy <= r*r
}

// CanToggle отсекает двойные клики.
func (b *SpeedButton) CanToggle(now time.Time) bool {
	return now.Sub(b.LastToggleTime) >= config.ClickCooldown*time.Millisecond
}

func (b *SpeedButton) ToggleState(now time.Time) {
	b.CurrentState = (b.CurrentState + 1) % len(config.SpeedMultipliers)
	b.LastClickTime = now
	b.LastToggleTime = now
}

func (b *SpeedButton) Draw(screen *ebiten.Image, painter *render.PathPainter, now time.Time) {
	size := b.Size * float32(clickScale(now.Sub(b.LastClickTime)))
	clr := b.StateColors[b.CurrentState%len(b.StateColors)]

	height := size * 1.2
	width := size
	offset := width * 0.8

	for _, shift := range []float32{0, offset} {
		tri := []render.Point{
			{X: b.X - width + shift, Y: b.Y - height/2},
			{X: b.X + shift, Y: b.Y},
			{X: b.X - width + shift, Y: b.Y + height/2},
		}
		painter.FillPolygon(screen, tri, clr)
		painter.StrokePolygon(screen, tri, 1, config.TowerStrokeColor)
	}
}

// clickScale: короткая "пульсация" после клика.
func clickScale(since time.Duration) float64 {
	return 1.0 + 0.3*math.Exp(-since.Seconds()*8)
}
