// internal/defs/types.go
package defs

import "math"

// Waypoint is an immutable point of the unit route in design-space units.
type Waypoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// DistanceTo returns the Euclidean distance between two waypoints.
func (w Waypoint) DistanceTo(o Waypoint) float64 {
	return math.Hypot(o.X-w.X, o.Y-w.Y)
}

// Path is the fixed route: index 0 is the spawn, the last index is the escape point.
type Path []Waypoint

// Start возвращает точку появления юнитов.
func (p Path) Start() Waypoint {
	return p[0]
}

// Goal возвращает точку побега.
func (p Path) Goal() Waypoint {
	return p[len(p)-1]
}

// Length: суммарная длина маршрута.
func (p Path) Length() float64 {
	total := 0.0
	for i := 1; i < len(p); i++ {
		total += p[i-1].DistanceTo(p[i])
	}
	return total
}
