package system

import (
	"math"

	"go-reverse-td/internal/component"
	"go-reverse-td/internal/config"
	"go-reverse-td/internal/entity"
	"go-reverse-td/internal/event"
	"go-reverse-td/internal/interfaces"
	"go-reverse-td/internal/types"
)

// CombatSystem управляет атакой башен
type CombatSystem struct {
	ecs             *entity.ECS
	game            interfaces.GameContext
	eventDispatcher *event.Dispatcher
}

func NewCombatSystem(ecs *entity.ECS, game interfaces.GameContext, eventDispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{ecs: ecs, game: game, eventDispatcher: eventDispatcher}
}

func (s *CombatSystem) Update(deltaTime float64) {
	for _, id := range s.ecs.TowerIDs() {
		s.updateTower(id, s.ecs.Towers[id], deltaTime)
	}
}

func (s *CombatSystem) updateTower(id types.EntityID, tower *component.Tower, deltaTime float64) {
	tower.Cooldown -= deltaTime
	// Пока идёт перезарядка или забег окончен, цели даже не ищем.
	if !tower.Ready() || s.game.IsOver() {
		return
	}

	targetID, ok := s.SelectTarget(tower)
	if !ok {
		// Перезарядку не сбрасываем: башня проверит цели на следующем тике.
		return
	}
	s.createProjectile(id, tower, targetID)
	tower.ResetCooldown()
}

// SelectTarget returns the alive in-range unit with the highest progress
// score. PathIndex dominates; distance only breaks ties between units on the
// same segment.
func (s *CombatSystem) SelectTarget(tower *component.Tower) (types.EntityID, bool) {
	var target types.EntityID
	best := math.Inf(-1)
	for _, id := range s.ecs.UnitIDs() {
		unit := s.ecs.Units[id]
		if !unit.Alive {
			continue
		}
		distance, inRange := tower.InRange(unit.Position)
		if !inRange {
			continue
		}
		if progress := unit.Progress(distance, config.ProgressEpsilon); progress > best {
			best = progress
			target = id
		}
	}
	return target, target != 0
}

func (s *CombatSystem) createProjectile(towerID types.EntityID, tower *component.Tower, targetID types.EntityID) {
	proj := component.NewProjectile(tower.Position, targetID, tower.ProjectileSpeed, tower.Damage)
	projID := s.ecs.AddProjectile(proj)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.ProjectileFired,
		Time: s.game.Elapsed(),
		Data: event.FireData{TowerID: towerID, ProjectileID: projID, TargetID: targetID},
	})
}
