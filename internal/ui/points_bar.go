// internal/ui/points_bar.go
package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-reverse-td/internal/config"
)

const (
	pointsBarWidth  = 180
	pointsBarHeight = 12
	borderWidth     = 1
)

// PointsBar отображает очки командования относительно потолка.
type PointsBar struct {
	X, Y float32
}

func NewPointsBar(x, y float32) *PointsBar {
	return &PointsBar{X: x, Y: y}
}

// FillWidth: ширина заполненной части внутри обводки.
func FillWidth(points, limit float64) float32 {
	if limit <= 0 || points <= 0 {
		return 0
	}
	ratio := points / limit
	if ratio > 1.0 {
		ratio = 1.0
	}
	return float32(float64(pointsBarWidth-borderWidth*2) * ratio)
}

func (p *PointsBar) Draw(screen *ebiten.Image, face font.Face, points, limit float64) {
	vector.StrokeRect(screen, p.X, p.Y, pointsBarWidth, pointsBarHeight, borderWidth, config.TowerStrokeColor, true)
	if w := FillWidth(points, limit); w > 0 {
		vector.DrawFilledRect(screen, p.X+borderWidth, p.Y+borderWidth, w, pointsBarHeight-borderWidth*2, config.ProjectileColor, true)
	}
	label := fmt.Sprintf("Harvest %d / %d", int(points), int(limit))
	text.Draw(screen, label, face, int(p.X), int(p.Y)-4, config.TextLightColor)
}
