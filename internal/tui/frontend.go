// internal/tui/frontend.go
package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"go-reverse-td/internal/app"
	"go-reverse-td/internal/audio"
	"go-reverse-td/internal/component"
	"go-reverse-td/internal/config"
	"go-reverse-td/internal/event"
)

const (
	hudRows   = 4
	frameTime = 16 * time.Millisecond // ~60 FPS
)

var (
	stylePath       = tcell.StyleDefault.Foreground(tcell.NewRGBColor(122, 228, 173))
	styleTower      = tcell.StyleDefault.Foreground(tcell.NewRGBColor(214, 255, 229)).Bold(true)
	styleProjectile = tcell.StyleDefault.Foreground(tcell.NewRGBColor(244, 214, 87))
	styleHUD        = tcell.StyleDefault.Foreground(tcell.NewRGBColor(236, 255, 245))
	styleAccent     = tcell.StyleDefault.Foreground(tcell.NewRGBColor(252, 227, 138)).Bold(true)
	styleDim        = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// Frontend draws a game into a terminal and turns keys into game requests.
// It only reads snapshots; all decisions stay in the game.
type Frontend struct {
	screen tcell.Screen
	game   *app.Game
	sounds *audio.SoundManager

	status      string
	statusUntil float64 // в секундах реального времени с запуска
	clock       float64
	paused      bool
}

// New creates a frontend. sounds may be nil.
func New(screen tcell.Screen, game *app.Game, sounds *audio.SoundManager) *Frontend {
	f := &Frontend{screen: screen, game: game, sounds: sounds}
	game.EventDispatcher.Subscribe(event.StatusMessage, f)
	game.EventDispatcher.Subscribe(event.RunReset, f)
	return f
}

// OnEvent реализует event.Listener: показывает сообщения статуса.
func (f *Frontend) OnEvent(e event.Event) {
	switch e.Type {
	case event.StatusMessage:
		f.showStatus(e.Data.(event.StatusData).Text)
		if f.game.IsOver() {
			// Итоговое сообщение держится до рестарта.
			f.statusUntil = -1
		}
	case event.RunReset:
		f.status = ""
		f.statusUntil = 0
	}
}

func (f *Frontend) showStatus(text string) {
	f.status = text
	f.statusUntil = f.clock + config.StatusDuration
}

// Advance moves the frontend clock and ticks the game unless it is paused
// or the run is over.
func (f *Frontend) Advance(dt float64) {
	f.clock += dt
	if f.statusUntil >= 0 && f.clock > f.statusUntil {
		f.status = ""
	}
	if f.paused || f.game.IsOver() {
		return
	}
	f.game.Tick(app.ClampDelta(dt))
}

// HandleKey processes one key press. It returns false when the user quits.
func (f *Frontend) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRune:
		return f.HandleRune(ev.Rune())
	}
	return true
}

// HandleRune applies the keyboard bindings: 1..9 send units in definition
// order, r restarts a finished run, d cycles difficulty, p pauses, m mutes
// and q quits.
func (f *Frontend) HandleRune(r rune) bool {
	units := f.game.Library.UnitList
	switch {
	case r >= '1' && r <= '9':
		i := int(r - '1')
		if i < len(units) {
			// Отказ уже озвучен сообщением статуса.
			if err := f.game.SpawnUnit(units[i].ID); err != nil && !errors.Is(err, app.ErrInsufficientPoints) && !errors.Is(err, app.ErrRunOver) {
				f.showStatus(err.Error())
			}
		}
	case r == 'r' || r == 'R':
		if f.game.IsOver() {
			f.game.Restart()
		}
	case r == 'd' || r == 'D':
		f.game.SelectDifficulty(f.nextDifficulty())
	case r == 'p' || r == 'P':
		f.paused = !f.paused
	case r == 'm' || r == 'M':
		if f.sounds != nil {
			f.sounds.ToggleMute()
		}
	case r == 'q' || r == 'Q':
		return false
	}
	return true
}

func (f *Frontend) nextDifficulty() string {
	list := f.game.Library.DifficultyList
	current := f.game.Difficulty().ID
	for i, d := range list {
		if d.ID == current {
			return list[(i+1)%len(list)].ID
		}
	}
	return list[0].ID
}

// Run is the main loop: input from a polling goroutine, a fixed ticker for
// simulation and drawing.
func (f *Frontend) Run() {
	ticker := time.NewTicker(frameTime)
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)
	eventChan := f.pollEvents(done)

	last := time.Now()
	for {
		select {
		case ev, ok := <-eventChan:
			if !ok {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !f.HandleKey(ev) {
					return
				}
			case *tcell.EventResize:
				f.screen.Sync()
			}
		case now := <-ticker.C:
			f.Advance(now.Sub(last).Seconds())
			last = now
			f.Draw()
		}
	}
}

// pollEvents forwards screen events until the screen is finalized or done
// is closed.
func (f *Frontend) pollEvents(done <-chan struct{}) <-chan tcell.Event {
	eventChan := make(chan tcell.Event, 100)
	go func() {
		defer close(eventChan)
		for {
			ev := f.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-done:
				return
			}
		}
	}()
	return eventChan
}

// project maps a design-plane point to a cell of the field area.
func project(x, y float64, w, fieldH int) (int, int) {
	cx := int(x / config.DesignWidth * float64(w))
	cy := int(y / config.DesignHeight * float64(fieldH))
	if cx >= w {
		cx = w - 1
	}
	if cy >= fieldH {
		cy = fieldH - 1
	}
	if cx < 0 {
		cx = 0
	}
	if cy < 0 {
		cy = 0
	}
	return cx, cy
}

// Draw renders the current snapshot.
func (f *Frontend) Draw() {
	s := f.game.Snapshot()
	w, h := f.screen.Size()
	fieldH := h - hudRows
	f.screen.Clear()
	if w <= 0 || fieldH <= 0 {
		f.screen.Show()
		return
	}

	f.drawPath(w, fieldH)
	for _, t := range s.Towers {
		x, y := project(t.X, t.Y, w, fieldH)
		f.screen.SetContent(x, y, 'T', nil, styleTower)
	}
	for _, u := range s.Units {
		x, y := project(u.X, u.Y, w, fieldH)
		style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(u.Color.R), int32(u.Color.G), int32(u.Color.B)))
		if u.HealthFraction() < 0.35 {
			style = style.Dim(true)
		}
		f.screen.SetContent(x, y, unitGlyph(u.TypeID), nil, style)
	}
	for _, p := range s.Projectiles {
		x, y := project(p.X, p.Y, w, fieldH)
		f.screen.SetContent(x, y, '*', nil, styleProjectile)
	}

	f.drawHUD(s, w, fieldH)
	if s.Over {
		f.drawOverlay(s, w, fieldH)
	}
	f.screen.Show()
}

func (f *Frontend) drawPath(w, fieldH int) {
	path := f.game.Library.Path
	for i := 0; i+1 < len(path); i++ {
		a, b := path[i], path[i+1]
		steps := int(a.DistanceTo(b)/4) + 1
		for k := 0; k <= steps; k++ {
			t := float64(k) / float64(steps)
			x, y := project(a.X+(b.X-a.X)*t, a.Y+(b.Y-a.Y)*t, w, fieldH)
			f.screen.SetContent(x, y, '·', nil, stylePath)
		}
	}
	sx, sy := project(path.Start().X, path.Start().Y, w, fieldH)
	f.screen.SetContent(sx, sy, 'S', nil, styleAccent)
	gx, gy := project(path.Goal().X, path.Goal().Y, w, fieldH)
	f.screen.SetContent(gx, gy, 'G', nil, styleAccent)
}

func (f *Frontend) drawHUD(s app.Snapshot, w, top int) {
	line1 := fmt.Sprintf("Harvest %3.0f/%-3.0f  Escaped %d/%d  Time %5.1fs  %s",
		s.Points, s.Cap, s.Escaped, s.Target, s.Elapsed, s.DifficultyLabel)
	if f.paused {
		line1 += "  [paused]"
	}
	drawText(f.screen, 0, top, w, line1, styleHUD)

	var legend []string
	for i, u := range f.game.Library.UnitList {
		legend = append(legend, fmt.Sprintf("%d %s (%.0f)", i+1, u.Name, u.Cost))
	}
	drawText(f.screen, 0, top+1, w, strings.Join(legend, "  "), styleHUD)
	drawText(f.screen, 0, top+2, w, "d difficulty  p pause  m mute  r restart  q quit", styleDim)
	if f.status != "" {
		drawText(f.screen, 0, top+3, w, f.status, styleAccent)
	}
}

func (f *Frontend) drawOverlay(s app.Snapshot, w, fieldH int) {
	title, detail := config.OverlayDefeatTitle, config.OverlayDefeatDetail
	if s.Outcome == component.OutcomeVictory {
		title, detail = config.OverlayVictoryTitle, config.OverlayVictoryDetail
	}
	mid := fieldH / 2
	for i, line := range []string{title, detail, config.OverlayRestartHint} {
		style := styleHUD
		if i == 0 {
			style = styleAccent
		}
		x := (w - len(line)) / 2
		if x < 0 {
			x = 0
		}
		drawText(f.screen, x, mid-1+i, w, line, style)
	}
}

func drawText(screen tcell.Screen, x, y, maxW int, text string, style tcell.Style) {
	for _, r := range text {
		if x >= maxW {
			return
		}
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func unitGlyph(typeID string) rune {
	if typeID == "" {
		return '?'
	}
	return rune(typeID[0])
}
