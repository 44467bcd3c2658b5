// internal/render/scene.go
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"go-reverse-td/internal/app"
	"go-reverse-td/internal/component"
	"go-reverse-td/internal/config"
	"go-reverse-td/internal/defs"
	"go-reverse-td/internal/utils"
	pkgrender "go-reverse-td/pkg/render"
)

const backgroundBands = 24

// Scene draws a snapshot onto the design plane. It keeps only decoration
// state; everything else comes from the snapshot.
type Scene struct {
	path    defs.Path
	points  []pkgrender.Point
	ambient *Ambient
	painter *pkgrender.PathPainter
	face    font.Face
}

func NewScene(path defs.Path, rng *utils.PRNGService) *Scene {
	points := make([]pkgrender.Point, len(path))
	for i, w := range path {
		points[i] = pkgrender.Point{X: float32(w.X), Y: float32(w.Y)}
	}
	return &Scene{
		path:    path,
		points:  points,
		ambient: NewAmbient(rng),
		face:    basicfont.Face7x13,
	}
}

// Face возвращает шрифт сцены для остального UI.
func (s *Scene) Face() font.Face { return s.face }

// Painter отдаёт общий PathPainter сцены (создаётся при первой отрисовке).
func (s *Scene) Painter() *pkgrender.PathPainter {
	if s.painter == nil {
		s.painter = pkgrender.NewPathPainter()
	}
	return s.painter
}

func (s *Scene) Update(dt float64) {
	s.ambient.Update(dt)
}

// Draw renders the field, entities and, for a finished run, the overlay.
func (s *Scene) Draw(screen *ebiten.Image, snap app.Snapshot) {
	s.drawBackground(screen)
	s.drawFireflies(screen)
	s.drawPath(screen)
	s.drawTowers(screen, snap.Towers)
	s.drawUnits(screen, snap.Units)
	for _, p := range snap.Projectiles {
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(p.Radius), config.ProjectileColor, true)
	}
	if snap.Over {
		s.drawOverlay(screen, snap.Outcome)
	}
}

func (s *Scene) drawBackground(screen *ebiten.Image) {
	bandH := float32(config.DesignHeight) / backgroundBands
	for i := 0; i < backgroundBands; i++ {
		t := float64(i) / float64(backgroundBands-1)
		c := color.RGBA{
			R: uint8(utils.Lerp(float64(config.BackgroundTop.R), float64(config.BackgroundBottom.R), t)),
			G: uint8(utils.Lerp(float64(config.BackgroundTop.G), float64(config.BackgroundBottom.G), t)),
			B: uint8(utils.Lerp(float64(config.BackgroundTop.B), float64(config.BackgroundBottom.B), t)),
			A: 255,
		}
		vector.DrawFilledRect(screen, 0, float32(i)*bandH, config.DesignWidth, bandH+1, c, false)
	}
	for _, r := range s.ambient.Rings {
		c := pkgrender.WithAlpha(config.RingColor, uint8(r.Alpha*255))
		vector.StrokeCircle(screen, float32(r.X), float32(r.Y), float32(r.Radius), float32(r.Thickness), c, true)
	}
}

func (s *Scene) drawFireflies(screen *ebiten.Image) {
	for _, f := range s.ambient.Fireflies {
		a := uint8(utils.Clamp(f.Intensity(), 0, 1) * 160)
		vector.DrawFilledCircle(screen, float32(f.X), float32(f.Y), float32(f.Radius*2), pkgrender.WithAlpha(config.FireflyColor, a/3), true)
		vector.DrawFilledCircle(screen, float32(f.X), float32(f.Y), float32(f.Radius), pkgrender.WithAlpha(config.FireflyColor, a), true)
	}
}

func (s *Scene) drawPath(screen *ebiten.Image) {
	painter := s.Painter()
	painter.StrokePolyline(screen, s.points, config.PathOuterWidth, config.PathShadowColor)
	painter.StrokePolyline(screen, s.points, config.PathInnerWidth, config.PathColor)

	start, goal := s.path.Start(), s.path.Goal()
	vector.DrawFilledCircle(screen, float32(start.X), float32(start.Y), 38, pkgrender.WithAlpha(config.StartGlowColor, 90), true)
	vector.DrawFilledCircle(screen, float32(start.X), float32(start.Y), 18, config.StartGlowColor, true)
	vector.DrawFilledCircle(screen, float32(goal.X), float32(goal.Y), 46, pkgrender.WithAlpha(config.GoalGlowColor, 90), true)
	vector.DrawFilledCircle(screen, float32(goal.X), float32(goal.Y), 22, config.GoalGlowColor, true)
}

func (s *Scene) drawTowers(screen *ebiten.Image, towers []app.TowerView) {
	for _, t := range towers {
		x, y := float32(t.X), float32(t.Y)
		vector.StrokeCircle(screen, x, y, float32(t.Range), 1, config.TowerRangeColor, true)
		vector.DrawFilledCircle(screen, x, y, config.TowerBaseRadius, config.TowerBaseColor, true)
		vector.DrawFilledCircle(screen, x, y, config.TowerBodyRadius, config.TowerColor, true)
		vector.StrokeCircle(screen, x, y, config.TowerBodyRadius, 2, config.TowerStrokeColor, true)

		// Ядро светлеет по мере перезарядки.
		charge := 1.0
		if t.FireRate > 0 && t.Cooldown > 0 {
			charge = 1 - utils.Clamp(t.Cooldown*t.FireRate, 0, 1)
		}
		vector.DrawFilledCircle(screen, x, y, float32(4+4*charge), pkgrender.WithAlpha(config.ProjectileColor, uint8(100+155*charge)), true)
	}
}

func (s *Scene) drawUnits(screen *ebiten.Image, units []app.UnitView) {
	for _, u := range units {
		x, y, r := float32(u.X), float32(u.Y), float32(u.Radius)
		vector.DrawFilledCircle(screen, x, y, r+4, pkgrender.WithAlpha(u.Color, 60), true)
		vector.DrawFilledCircle(screen, x, y, r, u.Color, true)
		vector.StrokeCircle(screen, x, y, r, 2, pkgrender.DarkenColor(u.Color), true)

		barX, barY, barW := x-r, y-r-config.HealthBarOffsetY, 2*r
		vector.DrawFilledRect(screen, barX, barY, barW, config.HealthBarHeight, config.HealthBarBack, false)
		if fill := HealthBarWidth(u, float64(barW)); fill > 0 {
			vector.DrawFilledRect(screen, barX, barY, float32(fill), config.HealthBarHeight, config.HealthBarColor, false)
		}
	}
}

// HealthBarWidth: ширина заполненной части полоски здоровья.
func HealthBarWidth(u app.UnitView, full float64) float64 {
	return u.HealthFraction() * full
}

func (s *Scene) drawOverlay(screen *ebiten.Image, outcome component.Outcome) {
	vector.DrawFilledRect(screen, 0, 0, config.DesignWidth, config.DesignHeight, config.OverlayColor, false)

	title, detail := OverlayText(outcome)
	midY := config.DesignHeight / 2
	DrawCenteredText(screen, s.face, title, config.DesignWidth/2, midY-12, config.TextAccentColor)
	DrawCenteredText(screen, s.face, detail, config.DesignWidth/2, midY+22, config.TextLightColor)
	DrawCenteredText(screen, s.face, config.OverlayRestartHint, config.DesignWidth/2, midY+52, config.TextLightColor)
}

// OverlayText returns the headline and detail for a finished run.
func OverlayText(outcome component.Outcome) (string, string) {
	if outcome == component.OutcomeVictory {
		return config.OverlayVictoryTitle, config.OverlayVictoryDetail
	}
	return config.OverlayDefeatTitle, config.OverlayDefeatDetail
}

// DrawCenteredText рисует строку с центром в (cx, baseline y).
func DrawCenteredText(screen *ebiten.Image, face font.Face, s string, cx, y int, c color.Color) {
	w := font.MeasureString(face, s).Ceil()
	text.Draw(screen, s, face, cx-w/2, y, c)
}
