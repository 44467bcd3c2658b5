// component/movement.go
package component

import "math"

// Position: компонент позиции в координатах плоскости 900×600
type Position struct {
	X, Y float64
}

// DistanceTo возвращает евклидово расстояние до другой точки.
func (p Position) DistanceTo(o Position) float64 {
	return math.Hypot(o.X-p.X, o.Y-p.Y)
}

// StepTowards moves p by travel units along the straight line to target.
// The caller guarantees that the distance to target is positive.
func (p *Position) StepTowards(target Position, dist, travel float64) {
	p.X += (target.X - p.X) / dist * travel
	p.Y += (target.Y - p.Y) / dist * travel
}
