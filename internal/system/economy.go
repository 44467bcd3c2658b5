package system

import (
	"go-reverse-td/internal/component"
	"go-reverse-td/internal/interfaces"
)

// EconomySystem восстанавливает очки командования.
type EconomySystem struct {
	economy *component.Economy
	game    interfaces.GameContext
}

func NewEconomySystem(economy *component.Economy, game interfaces.GameContext) *EconomySystem {
	return &EconomySystem{economy: economy, game: game}
}

func (s *EconomySystem) Update(deltaTime float64) {
	if s.game.IsOver() {
		return
	}
	s.economy.Regenerate(deltaTime)
}
