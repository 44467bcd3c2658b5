// internal/ui/pause_button.go
package ui

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-reverse-td/internal/config"
	"go-reverse-td/pkg/render"
)

// PauseButton рисует "||" во время игры и "▶" на паузе.
type PauseButton struct {
	X, Y           float32
	Size           float32
	LastClickTime  time.Time
	LastToggleTime time.Time
	IsPaused       bool
	PauseColor     color.RGBA
	PlayColor      color.RGBA
}

func NewPauseButton(x, y, size float32, pauseColor, playColor color.RGBA) *PauseButton {
	return &PauseButton{
		X:          x,
		Y:          y,
		Size:       size,
		PauseColor: pauseColor,
		PlayColor:  playColor,
	}
}

func (b *PauseButton) Contains(x, y int) bool {
	dx, dy := float32(x)-b.X, float32(y)-b.Y
	return dx*dx+dy*dy <= b.Size*b.Size*2
}

func (b *PauseButton) CanToggle(now time.Time) bool {
	return now.Sub(b.LastToggleTime) >= config.ClickCooldown*time.Millisecond
}

func (b *PauseButton) TogglePause(now time.Time) {
	b.IsPaused = !b.IsPaused
	b.LastClickTime = now
	b.LastToggleTime = now
}

func (b *PauseButton) SetPaused(paused bool) {
	b.IsPaused = paused
}

func (b *PauseButton) Draw(screen *ebiten.Image, painter *render.PathPainter, now time.Time) {
	size := b.Size * float32(clickScale(now.Sub(b.LastClickTime)))

	if b.IsPaused {
		tri := []render.Point{
			{X: b.X - size, Y: b.Y - size*1.2},
			{X: b.X - size, Y: b.Y + size*1.2},
			{X: b.X + size, Y: b.Y},
		}
		painter.FillPolygon(screen, tri, b.PlayColor)
		painter.StrokePolygon(screen, tri, 1, config.TowerStrokeColor)
		return
	}

	width := size * 0.6
	height := size * 2.0
	spacing := size * 0.4
	for _, x := range []float32{b.X - width - spacing/2, b.X + spacing/2} {
		vector.DrawFilledRect(screen, x, b.Y-height/2, width, height, b.PauseColor, true)
		vector.StrokeRect(screen, x, b.Y-height/2, width, height, 1, config.TowerStrokeColor, true)
	}
}
