// internal/ui/status_toast.go
package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-reverse-td/internal/config"
	"go-reverse-td/pkg/render"
)

// StatusToast показывает последнее сообщение статуса. Новое сообщение
// заменяет старое и перезапускает таймер.
type StatusToast struct {
	X, Y      int
	text      string
	remaining float64
	sticky    bool
}

func NewStatusToast(x, y int) *StatusToast {
	return &StatusToast{X: x, Y: y}
}

// Show выводит текст на config.StatusDuration секунд; sticky держит его
// до Clear.
func (s *StatusToast) Show(text string, sticky bool) {
	s.text = text
	s.remaining = config.StatusDuration
	s.sticky = sticky
}

func (s *StatusToast) Clear() {
	s.text = ""
	s.remaining = 0
	s.sticky = false
}

func (s *StatusToast) Update(dt float64) {
	if s.text == "" || s.sticky {
		return
	}
	s.remaining -= dt
	if s.remaining <= 0 {
		s.Clear()
	}
}

// Text возвращает видимое сообщение или "".
func (s *StatusToast) Text() string { return s.text }

func (s *StatusToast) Draw(screen *ebiten.Image, face font.Face) {
	if s.text == "" {
		return
	}
	w := float32(font.MeasureString(face, s.text).Ceil() + 24)
	vector.DrawFilledRect(screen, float32(s.X)-w/2, float32(s.Y)-16, w, 24, render.WithAlpha(config.PanelColor, 220), true)
	drawCentered(screen, face, s.text, s.X, s.Y+1, config.TextAccentColor)
}
