// component/unit.go
package component

import (
	"image/color"

	"go-reverse-td/internal/defs"
)

// Unit — юнит игрока, идущий по маршруту.
type Unit struct {
	TypeID    string
	Name      string
	Position  Position
	PathIndex int // Индекс последней достигнутой точки маршрута
	Speed     float64
	Health    float64
	MaxHealth float64
	Radius    float64
	Color     color.RGBA
	Alive     bool
}

// NewUnit создаёт юнит в стартовой точке маршрута.
func NewUnit(t defs.UnitType, start defs.Waypoint, c color.RGBA) *Unit {
	return &Unit{
		TypeID:    t.ID,
		Name:      t.Name,
		Position:  Position{X: start.X, Y: start.Y},
		Speed:     t.Speed,
		Health:    t.Health,
		MaxHealth: t.Health,
		Radius:    t.Radius,
		Color:     c,
		Alive:     true,
	}
}

// Advance moves the unit toward its next waypoint at Speed units per second.
// At most one waypoint transition happens per call; a unit standing on the
// final waypoint escapes instead and Advance reports true exactly once.
func (u *Unit) Advance(path defs.Path, dt float64) (escaped bool) {
	if !u.Alive {
		return false
	}
	if u.PathIndex+1 >= len(path) {
		u.Alive = false
		return true
	}

	next := Position{X: path[u.PathIndex+1].X, Y: path[u.PathIndex+1].Y}
	dist := u.Position.DistanceTo(next)
	if dist == 0 {
		u.PathIndex++
		return false
	}

	travel := u.Speed * dt
	if travel >= dist {
		u.Position = next
		u.PathIndex++
	} else {
		u.Position.StepTowards(next, dist, travel)
	}
	return false
}

// TakeDamage вычитает урон. Отрицательное здоровье не ограничивается,
// значение имеет только флаг Alive.
func (u *Unit) TakeDamage(amount float64) {
	u.Health -= amount
	if u.Health <= 0 {
		u.Alive = false
	}
}

// Progress: очко прогресса для выбора цели башней.
func (u *Unit) Progress(distance, epsilon float64) float64 {
	return float64(u.PathIndex) + distance*epsilon
}
