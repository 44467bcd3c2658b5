package entity

import (
	"go-reverse-td/internal/component"
	"go-reverse-td/internal/types"
)

// ECS хранит активные сущности забега. Каждая таблица дополнена списком id
// в порядке создания, чтобы обход был детерминированным.
type ECS struct {
	NextID      types.EntityID
	Units       map[types.EntityID]*component.Unit
	Towers      map[types.EntityID]*component.Tower
	Projectiles map[types.EntityID]*component.Projectile

	unitOrder       []types.EntityID
	towerOrder      []types.EntityID
	projectileOrder []types.EntityID
}

func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		Units:       make(map[types.EntityID]*component.Unit),
		Towers:      make(map[types.EntityID]*component.Tower),
		Projectiles: make(map[types.EntityID]*component.Projectile),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// AddUnit регистрирует юнит и возвращает его id.
func (ecs *ECS) AddUnit(u *component.Unit) types.EntityID {
	id := ecs.NewEntity()
	ecs.Units[id] = u
	ecs.unitOrder = append(ecs.unitOrder, id)
	return id
}

// AddTower регистрирует башню.
func (ecs *ECS) AddTower(t *component.Tower) types.EntityID {
	id := ecs.NewEntity()
	ecs.Towers[id] = t
	ecs.towerOrder = append(ecs.towerOrder, id)
	return id
}

// AddProjectile регистрирует снаряд.
func (ecs *ECS) AddProjectile(p *component.Projectile) types.EntityID {
	id := ecs.NewEntity()
	ecs.Projectiles[id] = p
	ecs.projectileOrder = append(ecs.projectileOrder, id)
	return id
}

// Unit resolves a weak handle. It returns nil once the unit has been swept.
func (ecs *ECS) Unit(id types.EntityID) *component.Unit {
	return ecs.Units[id]
}

// UnitIDs returns unit ids in spawn order. The slice is shared; callers must
// not hold it across a Sweep.
func (ecs *ECS) UnitIDs() []types.EntityID { return ecs.unitOrder }

// TowerIDs returns tower ids in placement order.
func (ecs *ECS) TowerIDs() []types.EntityID { return ecs.towerOrder }

// ProjectileIDs returns projectile ids in firing order.
func (ecs *ECS) ProjectileIDs() []types.EntityID { return ecs.projectileOrder }

// Sweep removes every unit that is no longer alive and every inactive
// projectile in one pass. Towers are never removed mid-run.
func (ecs *ECS) Sweep() (removedUnits, removedProjectiles int) {
	kept := ecs.unitOrder[:0]
	for _, id := range ecs.unitOrder {
		if ecs.Units[id].Alive {
			kept = append(kept, id)
			continue
		}
		delete(ecs.Units, id)
		removedUnits++
	}
	ecs.unitOrder = kept

	keptProj := ecs.projectileOrder[:0]
	for _, id := range ecs.projectileOrder {
		if ecs.Projectiles[id].Active {
			keptProj = append(keptProj, id)
			continue
		}
		delete(ecs.Projectiles, id)
		removedProjectiles++
	}
	ecs.projectileOrder = keptProj
	return removedUnits, removedProjectiles
}

// Clear удаляет все сущности. Счётчик id не сбрасывается, чтобы старые
// ссылки не совпали с новыми сущностями.
func (ecs *ECS) Clear() {
	clear(ecs.Units)
	clear(ecs.Towers)
	clear(ecs.Projectiles)
	ecs.unitOrder = nil
	ecs.towerOrder = nil
	ecs.projectileOrder = nil
}
