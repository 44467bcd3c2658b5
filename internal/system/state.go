package system

import (
	"fmt"
	"log"
	"math"

	"go-reverse-td/internal/component"
	"go-reverse-td/internal/config"
	"go-reverse-td/internal/entity"
	"go-reverse-td/internal/event"
)

// StateSystem владеет переходом Running → Over и подсказкой при простое.
type StateSystem struct {
	ecs             *entity.ECS
	run             *component.RunState
	economy         *component.Economy
	eventDispatcher *event.Dispatcher
	cheapestCost    float64
	defeatCheck     func() bool
}

func NewStateSystem(ecs *entity.ECS, run *component.RunState, economy *component.Economy, eventDispatcher *event.Dispatcher, cheapestCost float64) *StateSystem {
	return &StateSystem{
		ecs:             ecs,
		run:             run,
		economy:         economy,
		eventDispatcher: eventDispatcher,
		cheapestCost:    cheapestCost,
	}
}

// SetDefeatCheck installs a host-provided defeat condition, evaluated once
// per tick after the sweep. nil removes it.
func (s *StateSystem) SetDefeatCheck(check func() bool) {
	s.defeatCheck = check
}

// Reset возвращает счётчики забега к начальным значениям.
func (s *StateSystem) Reset(target int) {
	*s.run = component.RunState{
		Target:    target,
		LastNudge: math.Inf(-1),
	}
}

func (s *StateSystem) IsOver() bool     { return s.run.Over }
func (s *StateSystem) Elapsed() float64 { return s.run.Elapsed }

// EndGame latches the run as over. Only the first call has an effect; it
// reports whether this call performed the transition.
func (s *StateSystem) EndGame(outcome component.Outcome) bool {
	if s.run.Over {
		return false
	}
	s.run.Over = true
	s.run.Outcome = outcome

	msg := config.MsgDefeat
	if outcome == component.OutcomeVictory {
		msg = config.MsgVictory
	}
	log.Printf("Run over: %s after %.1fs, escaped %d/%d", outcome, s.run.Elapsed, s.run.Escaped, s.run.Target)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.GameOver,
		Time: s.run.Elapsed,
		Data: event.GameOverData{Victory: outcome == component.OutcomeVictory, Escaped: s.run.Escaped, Message: msg},
	})
	s.Status(msg)
	return true
}

// Status отправляет подсказку игроку. Текст не форматируется.
func (s *StateSystem) Status(text string) {
	s.eventDispatcher.Dispatch(event.Event{Type: event.StatusMessage, Time: s.run.Elapsed, Data: event.StatusData{Text: text}})
}

// Statusf форматирует подсказку по шаблону.
func (s *StateSystem) Statusf(format string, args ...interface{}) {
	s.Status(fmt.Sprintf(format, args...))
}

// Update проверяет внешнее условие поражения и подсказку при простое.
func (s *StateSystem) Update(deltaTime float64) {
	if !s.run.Over && s.defeatCheck != nil && s.defeatCheck() {
		s.EndGame(component.OutcomeDefeat)
	}

	if s.run.Over || len(s.ecs.UnitIDs()) > 0 || s.economy.Points >= s.cheapestCost {
		return
	}
	if s.run.Elapsed-s.run.LastNudge >= config.NudgeCooldown {
		s.Status(config.MsgNudge)
		s.run.LastNudge = s.run.Elapsed
	}
}
