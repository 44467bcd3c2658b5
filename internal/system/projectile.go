// internal/system/projectile.go
package system

import (
	"go-reverse-td/internal/entity"
	"go-reverse-td/internal/event"
	"go-reverse-td/internal/interfaces"
)

// ProjectileSystem управляет движением снарядов и нанесением урона
type ProjectileSystem struct {
	ecs             *entity.ECS
	game            interfaces.GameContext
	eventDispatcher *event.Dispatcher
}

func NewProjectileSystem(ecs *entity.ECS, game interfaces.GameContext, eventDispatcher *event.Dispatcher) *ProjectileSystem {
	return &ProjectileSystem{ecs: ecs, game: game, eventDispatcher: eventDispatcher}
}

func (s *ProjectileSystem) Update(deltaTime float64) {
	for _, id := range s.ecs.ProjectileIDs() {
		proj := s.ecs.Projectiles[id]
		// Цель ищем по id каждый тик: юнит мог быть уже удалён.
		target := s.ecs.Unit(proj.TargetID)
		if !proj.Advance(target, deltaTime) {
			continue
		}
		if !target.Alive {
			// Убитых не удаляем сразу: это сделает Sweep в конце тика.
			s.eventDispatcher.Dispatch(event.Event{
				Type: event.UnitDestroyed,
				Time: s.game.Elapsed(),
				Data: unitData(proj.TargetID, target),
			})
		}
	}
}
