// internal/ui/escape_indicator.go
package ui

import (
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-reverse-td/internal/config"
)

const (
	EscapeCols          = 10
	EscapeCircleRadius  = 5.0
	EscapeCircleSpacing = 3.0
)

// EscapeIndicator отображает сбежавших юнитов в виде сетки кружков.
type EscapeIndicator struct {
	X, Y float32
}

func NewEscapeIndicator(x, y float32) *EscapeIndicator {
	return &EscapeIndicator{X: x, Y: y}
}

// Cell возвращает центр кружка j.
func (i *EscapeIndicator) Cell(j int) (float32, float32) {
	row, col := j/EscapeCols, j%EscapeCols
	step := float32(EscapeCircleRadius*2 + EscapeCircleSpacing)
	return i.X + float32(col)*step + EscapeCircleRadius, i.Y + float32(row)*step + EscapeCircleRadius
}

func (i *EscapeIndicator) Draw(screen *ebiten.Image, face font.Face, escaped, target int) {
	for j := 0; j < target; j++ {
		x, y := i.Cell(j)
		if j < escaped {
			vector.DrawFilledCircle(screen, x, y, EscapeCircleRadius, config.GoalGlowColor, true)
		}
		vector.StrokeCircle(screen, x, y, EscapeCircleRadius, 1, config.TowerStrokeColor, true)
	}
	label := "Escaped " + strconv.Itoa(escaped) + "/" + strconv.Itoa(target)
	text.Draw(screen, label, face, int(i.X), int(i.Y)-4, config.TextLightColor)
}
