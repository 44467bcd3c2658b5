// pkg/render/polygon.go
package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Point: вершина ломаной в экранных координатах.
type Point struct {
	X, Y float32
}

// PathPainter заливает и обводит произвольные ломаные через DrawTriangles.
// Буферы вершин переиспользуются между вызовами.
type PathPainter struct {
	whiteImg *ebiten.Image
	vs       []ebiten.Vertex
	is       []uint16
}

func NewPathPainter() *PathPainter {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return &PathPainter{
		whiteImg: img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
		vs:       make([]ebiten.Vertex, 0, 64),
		is:       make([]uint16, 0, 96),
	}
}

// FillPolygon заливает замкнутый многоугольник.
func (p *PathPainter) FillPolygon(dst *ebiten.Image, pts []Point, clr color.RGBA) {
	if len(pts) < 3 {
		return
	}
	path := buildPath(pts, true)
	p.vs, p.is = path.AppendVerticesAndIndicesForFilling(p.vs[:0], p.is[:0])
	p.draw(dst, clr)
}

// StrokePolyline обводит незамкнутую ломаную со скруглёнными стыками.
func (p *PathPainter) StrokePolyline(dst *ebiten.Image, pts []Point, width float32, clr color.RGBA) {
	if len(pts) < 2 {
		return
	}
	path := buildPath(pts, false)
	p.vs, p.is = path.AppendVerticesAndIndicesForStroke(p.vs[:0], p.is[:0], &vector.StrokeOptions{
		Width:    width,
		LineJoin: vector.LineJoinRound,
		LineCap:  vector.LineCapRound,
	})
	p.draw(dst, clr)
}

// StrokePolygon обводит замкнутый многоугольник.
func (p *PathPainter) StrokePolygon(dst *ebiten.Image, pts []Point, width float32, clr color.RGBA) {
	if len(pts) < 3 {
		return
	}
	path := buildPath(pts, true)
	p.vs, p.is = path.AppendVerticesAndIndicesForStroke(p.vs[:0], p.is[:0], &vector.StrokeOptions{
		Width:    width,
		LineJoin: vector.LineJoinMiter,
	})
	p.draw(dst, clr)
}

func (p *PathPainter) draw(dst *ebiten.Image, clr color.RGBA) {
	for i := range p.vs {
		p.vs[i].SrcX = 1
		p.vs[i].SrcY = 1
		p.vs[i].ColorR = float32(clr.R) / 255
		p.vs[i].ColorG = float32(clr.G) / 255
		p.vs[i].ColorB = float32(clr.B) / 255
		p.vs[i].ColorA = float32(clr.A) / 255
	}
	dst.DrawTriangles(p.vs, p.is, p.whiteImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

func buildPath(pts []Point, closed bool) *vector.Path {
	var path vector.Path
	path.MoveTo(pts[0].X, pts[0].Y)
	for _, pt := range pts[1:] {
		path.LineTo(pt.X, pt.Y)
	}
	if closed {
		path.Close()
	}
	return &path
}
