// internal/component/projectile.go
package component

import (
	"go-reverse-td/internal/config"
	"go-reverse-td/internal/types"
)

// Projectile представляет летящий самонаводящийся снаряд.
// TargetID — слабая ссылка, цель каждый тик ищется заново.
type Projectile struct {
	Position Position
	TargetID types.EntityID
	Speed    float64
	Damage   float64
	Radius   float64
	Active   bool
}

// NewProjectile создаёт снаряд в точке origin, нацеленный на target.
// Урон берётся как есть: башня с явным damage 0 стреляет безвредно.
// Неположительная скорость заменяется значением по умолчанию.
func NewProjectile(origin Position, target types.EntityID, speed, damage float64) *Projectile {
	if speed <= 0 {
		speed = config.DefaultProjectileSpeed
	}
	return &Projectile{
		Position: origin,
		TargetID: target,
		Speed:    speed,
		Damage:   damage,
		Radius:   config.ProjectileRadius,
		Active:   true,
	}
}

// Advance moves the projectile toward target's current position. Contact
// and overshoot both count as arrival: damage is applied once and the
// projectile deactivates. A nil or dead target deactivates it without damage.
func (p *Projectile) Advance(target *Unit, dt float64) (hit bool) {
	if !p.Active {
		return false
	}
	if target == nil || !target.Alive {
		p.Active = false
		return false
	}

	dist := p.Position.DistanceTo(target.Position)
	travel := p.Speed * dt
	if dist <= target.Radius+p.Radius || travel >= dist {
		target.TakeDamage(p.Damage)
		p.Active = false
		return true
	}

	p.Position.StepTowards(target.Position, dist, travel)
	return false
}
