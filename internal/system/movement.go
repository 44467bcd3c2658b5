// internal/system/movement.go
package system

import (
	"go-reverse-td/internal/component"
	"go-reverse-td/internal/defs"
	"go-reverse-td/internal/entity"
	"go-reverse-td/internal/event"
	"go-reverse-td/internal/interfaces"
)

// MovementSystem двигает юнитов по маршруту и считает побеги.
type MovementSystem struct {
	ecs             *entity.ECS
	path            defs.Path
	run             *component.RunState
	game            interfaces.GameContext
	eventDispatcher *event.Dispatcher
}

func NewMovementSystem(ecs *entity.ECS, path defs.Path, run *component.RunState, game interfaces.GameContext, eventDispatcher *event.Dispatcher) *MovementSystem {
	return &MovementSystem{ecs: ecs, path: path, run: run, game: game, eventDispatcher: eventDispatcher}
}

func (s *MovementSystem) Update(deltaTime float64) {
	for _, id := range s.ecs.UnitIDs() {
		unit := s.ecs.Units[id]
		if !unit.Advance(s.path, deltaTime) {
			continue
		}

		s.run.Escaped++
		s.eventDispatcher.Dispatch(event.Event{Type: event.UnitEscaped, Time: s.run.Elapsed, Data: unitData(id, unit)})
		if s.run.Escaped >= s.run.Target {
			s.game.EndGame(component.OutcomeVictory)
		}
	}
}
