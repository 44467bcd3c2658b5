// internal/state/menu_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font/basicfont"

	"go-reverse-td/internal/app"
	"go-reverse-td/internal/config"
	"go-reverse-td/internal/render"
	"go-reverse-td/internal/ui"
)

// MenuState: выбор сложности. Выбор сохраняется и перезапускает забег.
type MenuState struct {
	sm      *StateMachine
	game    *app.Game
	next    State
	buttons []*ui.Button
}

func NewMenuState(sm *StateMachine, game *app.Game, next State) *MenuState {
	m := &MenuState{sm: sm, game: game, next: next}
	y := float32(200)
	for _, d := range game.Library.DifficultyList {
		b := ui.NewButton(config.ScreenWidth/2-160, y, 320, 48, d.Label)
		b.Caption = d.Description
		m.buttons = append(m.buttons, b)
		y += 64
	}
	return m
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	keys := []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5}
	for i, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			m.Choose(i)
			return
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		m.sm.SetState(m.next)
		return
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		for i, b := range m.buttons {
			if b.Contains(x, y) {
				m.Choose(i)
				return
			}
		}
	}
}

// Choose выбирает i-ю сложность и возвращается в игру.
func (m *MenuState) Choose(i int) {
	list := m.game.Library.DifficultyList
	if i < 0 || i >= len(list) {
		return
	}
	m.game.SelectDifficulty(list[i].ID)
	m.sm.SetState(m.next)
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundTop)
	face := basicfont.Face7x13
	render.DrawCenteredText(screen, face, "Reverse Tower Defense", config.ScreenWidth/2, 120, config.TextAccentColor)
	render.DrawCenteredText(screen, face, "Choose a difficulty (1-3), Esc to go back", config.ScreenWidth/2, 150, config.TextLightColor)

	current := m.game.Difficulty().ID
	mx, my := ebiten.CursorPosition()
	for i, b := range m.buttons {
		b.Color = config.ButtonColor
		if m.game.Library.DifficultyList[i].ID == current {
			b.Color = config.ButtonHoverColor
		}
		b.Draw(screen, face, b.Contains(mx, my))
	}
}

func (m *MenuState) Exit() {}
