// component/tower.go
package component

import "go-reverse-td/internal/defs"

// Tower — стационарная башня, стреляющая по юнитам.
type Tower struct {
	Position        Position
	Range           float64
	FireRate        float64 // Скорострельность (выстрелов в секунду)
	Cooldown        float64 // Оставшееся время до следующего выстрела, может уходить в минус
	ProjectileSpeed float64
	Damage          float64
}

// NewTower строит башню из размещения профиля сложности.
func NewTower(p defs.TowerPlacement) *Tower {
	stats := p.Options.Resolve()
	return &Tower{
		Position:        Position{X: p.X, Y: p.Y},
		Range:           stats.Range,
		FireRate:        stats.FireRate,
		ProjectileSpeed: stats.ProjectileSpeed,
		Damage:          stats.Damage,
	}
}

// Ready reports whether the cooldown has run out.
func (t *Tower) Ready() bool {
	return t.Cooldown <= 0
}

// ResetCooldown вызывается сразу после выстрела.
func (t *Tower) ResetCooldown() {
	t.Cooldown = 1 / t.FireRate
}

// InRange проверяет, достаёт ли башня до точки, и возвращает расстояние.
func (t *Tower) InRange(p Position) (float64, bool) {
	d := t.Position.DistanceTo(p)
	return d, d <= t.Range
}
