// internal/interfaces/game_context.go
package interfaces

import "go-reverse-td/internal/component"

// GameContext: то, что системам нужно знать о забеге, не импортируя app.
type GameContext interface {
	IsOver() bool
	EndGame(outcome component.Outcome) bool
	Elapsed() float64
}
