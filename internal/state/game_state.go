// internal/state/game_state.go
package state

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-reverse-td/internal/app"
	"go-reverse-td/internal/audio"
	"go-reverse-td/internal/config"
	"go-reverse-td/internal/defs"
	"go-reverse-td/internal/event"
	"go-reverse-td/internal/render"
	"go-reverse-td/internal/ui"
	"go-reverse-td/internal/utils"
)

const (
	unitButtonW   = 150
	unitButtonH   = 44
	unitButtonGap = 12
)

var unitKeys = []ebiten.Key{
	ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5,
	ebiten.Key6, ebiten.Key7, ebiten.Key8, ebiten.Key9,
}

// GameState — состояние игры. Рисует забег, переводит ввод в запросы к игре
// и тикает симуляцию с выбранным множителем скорости.
type GameState struct {
	sm     *StateMachine
	game   *app.Game
	sounds *audio.SoundManager

	scene       *render.Scene
	toast       *ui.StatusToast
	pointsBar   *ui.PointsBar
	escapes     *ui.EscapeIndicator
	speed       *ui.SpeedButton
	pause       *ui.PauseButton
	unitButtons []*ui.Button
	restart     *ui.Button
	menu        *ui.Button

	now func() time.Time
}

// NewGameState подписывает состояние на события игры. sounds может быть nil.
func NewGameState(sm *StateMachine, game *app.Game, sounds *audio.SoundManager) *GameState {
	g := &GameState{
		sm:        sm,
		game:      game,
		sounds:    sounds,
		scene:     render.NewScene(game.Library.Path, utils.NewPRNGService(time.Now().UnixNano())),
		toast:     ui.NewStatusToast(config.DesignWidth/2, 40),
		pointsBar: ui.NewPointsBar(24, config.DesignHeight+30),
		escapes:   ui.NewEscapeIndicator(24, config.DesignHeight+64),
		speed:     ui.NewSpeedButton(config.ScreenWidth-config.SpeedButtonMargin-40, config.SpeedButtonMargin, config.SpeedButtonSize, config.SpeedButtonColors),
		pause:     ui.NewPauseButton(config.ScreenWidth-config.SpeedButtonMargin, config.SpeedButtonMargin, config.SpeedButtonSize*0.8, config.PauseColor, config.PlayColor),
		restart:   ui.NewButton(config.DesignWidth/2-80, config.DesignHeight/2+70, 160, 36, "Rally again"),
		now:       time.Now,
	}

	x := float32(230)
	for i, u := range game.Library.UnitList {
		if i >= len(unitKeys) {
			break
		}
		b := ui.NewButton(x, config.DesignHeight+28, unitButtonW, unitButtonH, fmt.Sprintf("%d  %s", i+1, u.Name))
		b.Caption = fmt.Sprintf("%d pts", int(u.Cost))
		b.Color = game.UnitColor(u.ID)
		g.unitButtons = append(g.unitButtons, b)
		x += unitButtonW + unitButtonGap
	}
	g.menu = ui.NewButton(config.ScreenWidth-124, config.DesignHeight+62, 100, 26, "Difficulty")

	game.EventDispatcher.Subscribe(event.StatusMessage, g)
	game.EventDispatcher.Subscribe(event.RunReset, g)
	return g
}

// OnEvent реализует event.Listener.
func (g *GameState) OnEvent(e event.Event) {
	switch e.Type {
	case event.StatusMessage:
		// Итоговое сообщение держится до рестарта.
		g.toast.Show(e.Data.(event.StatusData).Text, g.game.IsOver())
	case event.RunReset:
		g.toast.Clear()
	}
}

func (g *GameState) Enter() {
	g.pause.SetPaused(false)
}

func (g *GameState) Update(deltaTime float64) {
	g.toast.Update(deltaTime)
	g.scene.Update(deltaTime)

	for i, key := range unitKeys {
		if inpututil.IsKeyJustPressed(key) {
			g.SpawnSlot(i)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) && g.game.IsOver() {
		g.game.Restart()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		g.sm.RequestQuit()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) && g.sounds != nil {
		g.sounds.ToggleMute()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		g.openMenu()
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.openPause()
		return
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if g.HandleClick(x, y) {
			return
		}
	}

	g.Advance(deltaTime)
}

// Advance тикает игру Multiplier раз; после конца забега симуляция стоит.
func (g *GameState) Advance(deltaTime float64) {
	dt := app.ClampDelta(deltaTime)
	for i := 0; i < g.speed.Multiplier() && !g.game.IsOver(); i++ {
		g.game.Tick(dt)
	}
}

// SpawnSlot отправляет юнит i-й кнопки.
func (g *GameState) SpawnSlot(i int) {
	units := g.game.Library.UnitList
	if i < 0 || i >= len(units) {
		return
	}
	err := g.game.SpawnUnit(units[i].ID)
	if err != nil && !errors.Is(err, app.ErrInsufficientPoints) && !errors.Is(err, app.ErrRunOver) {
		log.Printf("spawn %s: %v", units[i].ID, err)
	}
}

// HandleClick обрабатывает клик. Возвращает true, если состояние сменилось
// и текущий кадр дальше обрабатывать не нужно.
func (g *GameState) HandleClick(x, y int) bool {
	now := g.now()
	switch {
	case g.pause.Contains(x, y):
		if g.pause.CanToggle(now) {
			g.pause.TogglePause(now)
			g.openPause()
			return true
		}
	case g.speed.Contains(x, y):
		if g.speed.CanToggle(now) {
			g.speed.ToggleState(now)
		}
	case g.menu.Contains(x, y):
		g.openMenu()
		return true
	case g.game.IsOver() && g.restart.Contains(x, y):
		g.game.Restart()
	default:
		for i, b := range g.unitButtons {
			if b.Contains(x, y) {
				g.SpawnSlot(i)
				break
			}
		}
	}
	return false
}

func (g *GameState) openPause() {
	g.pause.SetPaused(true)
	g.sm.SetState(NewPauseState(g.sm, g))
}

func (g *GameState) openMenu() {
	g.sm.SetState(NewMenuState(g.sm, g.game, g))
}

// UnitTooltip: подсказка к кнопке юнита.
func UnitTooltip(u defs.UnitType) string {
	tip := fmt.Sprintf("speed %.0f  health %.0f", u.Speed, u.Health)
	if u.Role != "" {
		tip += "  " + u.Role
	}
	return tip
}

// Toast отдаёт текущий текст статуса (для тестов и отладки).
func (g *GameState) Toast() string { return g.toast.Text() }

func (g *GameState) Draw(screen *ebiten.Image) {
	snap := g.game.Snapshot()
	face := g.scene.Face()
	g.scene.Draw(screen, snap)

	vector.DrawFilledRect(screen, 0, config.DesignHeight, config.ScreenWidth, config.PanelHeight, config.PanelColor, false)
	g.pointsBar.Draw(screen, face, snap.Points, snap.Cap)
	g.escapes.Draw(screen, face, snap.Escaped, snap.Target)

	mx, my := ebiten.CursorPosition()
	hovered := -1
	for i, b := range g.unitButtons {
		b.Enabled = !snap.Over && snap.Points >= g.game.Library.UnitList[i].Cost
		hover := b.Contains(mx, my)
		if hover {
			hovered = i
		}
		b.Draw(screen, face, hover)
	}
	if hovered >= 0 {
		b := g.unitButtons[hovered]
		tip := UnitTooltip(g.game.Library.UnitList[hovered])
		vector.DrawFilledRect(screen, b.X, b.Y-26, b.W+60, 20, config.OverlayColor, false)
		text.Draw(screen, tip, face, int(b.X)+6, int(b.Y)-12, config.TextLightColor)
	}
	g.menu.Caption = ""
	g.menu.Draw(screen, face, g.menu.Contains(mx, my))
	render.DrawCenteredText(screen, face, snap.DifficultyLabel, int(g.menu.X+g.menu.W/2), config.DesignHeight+20, config.TextAccentColor)

	now := g.now()
	g.speed.Draw(screen, g.scene.Painter(), now)
	g.pause.Draw(screen, g.scene.Painter(), now)
	g.toast.Draw(screen, face)

	if snap.Over {
		g.restart.Draw(screen, face, g.restart.Contains(mx, my))
	}
}

func (g *GameState) Exit() {
	// Подписки живут столько же, сколько игра.
}
