// internal/state/pause_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"go-reverse-td/internal/config"
	"go-reverse-td/internal/render"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState замораживает игру: предыдущее состояние рисуется, но не
// обновляется.
type PauseState struct {
	stateMachine  *StateMachine
	previousState *GameState
}

func NewPauseState(sm *StateMachine, prev *GameState) *PauseState {
	return &PauseState{stateMachine: sm, previousState: prev}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	unpause := inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		unpause = unpause || s.previousState.pause.Contains(x, y)
	}
	if unpause {
		s.Resume()
	}
}

// Resume возвращает управление игре.
func (s *PauseState) Resume() {
	now := s.previousState.now()
	s.previousState.pause.LastClickTime = now
	s.previousState.pause.LastToggleTime = now
	s.stateMachine.SetState(s.previousState)
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previousState.Draw(screen)

	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor, false)
	render.DrawCenteredText(screen, basicfont.Face7x13, "PAUSED", config.ScreenWidth/2, config.ScreenHeight/2-10, config.TextAccentColor)
	render.DrawCenteredText(screen, basicfont.Face7x13, "P or Esc to resume", config.ScreenWidth/2, config.ScreenHeight/2+14, config.TextLightColor)
}

func (s *PauseState) Exit() {}
