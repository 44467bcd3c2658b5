// internal/defs/towers.go
package defs

import "go-reverse-td/internal/config"

// TowerOptions are the per-tower overrides of a difficulty layout.
// A nil field falls back to its default:
//
//	Range           config.DefaultTowerRange           (180)
//	FireRate        config.DefaultTowerFireRate        (1.2 shots/sec)
//	ProjectileSpeed config.DefaultTowerProjectileSpeed (320)
//	Damage          config.DefaultTowerDamage          (30)
type TowerOptions struct {
	Range           *float64 `json:"range,omitempty"`
	FireRate        *float64 `json:"fire_rate,omitempty"`
	ProjectileSpeed *float64 `json:"projectile_speed,omitempty"`
	Damage          *float64 `json:"damage,omitempty"`
}

// TowerStats: итоговые параметры башни после применения значений по умолчанию.
type TowerStats struct {
	Range           float64
	FireRate        float64
	ProjectileSpeed float64
	Damage          float64
}

// TowerPlacement places one tower of a difficulty layout.
type TowerPlacement struct {
	X       float64      `json:"x"`
	Y       float64      `json:"y"`
	Options TowerOptions `json:"options"`
}

// Resolve заполняет пропущенные поля значениями по умолчанию.
func (o TowerOptions) Resolve() TowerStats {
	return TowerStats{
		Range:           orDefault(o.Range, config.DefaultTowerRange),
		FireRate:        orDefault(o.FireRate, config.DefaultTowerFireRate),
		ProjectileSpeed: orDefault(o.ProjectileSpeed, config.DefaultTowerProjectileSpeed),
		Damage:          orDefault(o.Damage, config.DefaultTowerDamage),
	}
}

func orDefault(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}
