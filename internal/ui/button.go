// internal/ui/button.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-reverse-td/internal/config"
)

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	X, Y, W, H float32
	Label      string
	Caption    string // вторая строка, например стоимость
	Color      color.RGBA
	Enabled    bool
}

// NewButton создает новую кнопку.
func NewButton(x, y, w, h float32, label string) *Button {
	return &Button{X: x, Y: y, W: w, H: h, Label: label, Color: config.ButtonColor, Enabled: true}
}

// Contains проверяет, попадает ли точка в кнопку.
func (b *Button) Contains(x, y int) bool {
	fx, fy := float32(x), float32(y)
	return fx >= b.X && fx <= b.X+b.W && fy >= b.Y && fy <= b.Y+b.H
}

// Draw отрисовывает кнопку. Недоступная кнопка рисуется приглушённой.
func (b *Button) Draw(screen *ebiten.Image, face font.Face, hover bool) {
	bg := b.Color
	switch {
	case !b.Enabled:
		bg = config.ButtonDimColor
	case hover:
		bg = config.ButtonHoverColor
	}
	vector.DrawFilledRect(screen, b.X, b.Y, b.W, b.H, bg, true)
	vector.StrokeRect(screen, b.X, b.Y, b.W, b.H, 2, config.TowerStrokeColor, true)

	textColor := color.Color(config.TextLightColor)
	if !b.Enabled {
		textColor = config.ButtonTextDim
	}
	cx := int(b.X + b.W/2)
	if b.Caption == "" {
		drawCentered(screen, face, b.Label, cx, int(b.Y+b.H/2)+4, textColor)
		return
	}
	drawCentered(screen, face, b.Label, cx, int(b.Y+b.H/2)-3, textColor)
	drawCentered(screen, face, b.Caption, cx, int(b.Y+b.H/2)+13, config.TextAccentColor)
}

func drawCentered(screen *ebiten.Image, face font.Face, s string, cx, y int, c color.Color) {
	bounds := text.BoundString(face, s)
	text.Draw(screen, s, face, cx-(bounds.Max.X-bounds.Min.X)/2, y, c)
}
