package state

import (
	"math"
	"strings"
	"testing"
	"time"

	"go-reverse-td/internal/app"
	"go-reverse-td/internal/component"
	"go-reverse-td/internal/defs"
)

func newTestState(t *testing.T) (*StateMachine, *GameState) {
	t.Helper()
	sm := NewStateMachine()
	gs := NewGameState(sm, app.NewGame(defs.Default()), nil)
	fixed := time.Unix(1000, 0)
	gs.now = func() time.Time { return fixed }
	sm.SetState(gs)
	return sm, gs
}

func TestSpawnSlotSendsUnit(t *testing.T) {
	_, gs := newTestState(t)
	gs.SpawnSlot(0)

	if n := len(gs.game.ECS.UnitIDs()); n != 1 {
		t.Fatalf("units = %d, want 1", n)
	}
	if gs.game.Economy.Points != 30 {
		t.Fatalf("points = %v, want 30", gs.game.Economy.Points)
	}
	if gs.Toast() != "Seed Runner underway!" {
		t.Fatalf("toast = %q", gs.Toast())
	}

	gs.SpawnSlot(2) // 90 pts, only 30 left
	if n := len(gs.game.ECS.UnitIDs()); n != 1 {
		t.Fatal("rejected spawn created a unit")
	}
	gs.SpawnSlot(7) // нет такой кнопки
}

func TestClickOnUnitButton(t *testing.T) {
	_, gs := newTestState(t)
	b := gs.unitButtons[0]
	gs.HandleClick(int(b.X)+5, int(b.Y)+5)
	if n := len(gs.game.ECS.UnitIDs()); n != 1 {
		t.Fatalf("units = %d, want 1", n)
	}
}

func TestAdvanceUsesSpeedMultiplier(t *testing.T) {
	_, gs := newTestState(t)
	gs.Advance(0.05)
	if math.Abs(gs.game.Run.Elapsed-0.05) > 1e-9 {
		t.Fatalf("elapsed = %v, want 0.05", gs.game.Run.Elapsed)
	}

	gs.speed.ToggleState(gs.now()) // x2
	gs.Advance(0.05)
	if math.Abs(gs.game.Run.Elapsed-0.15) > 1e-9 {
		t.Fatalf("elapsed = %v, want 0.15", gs.game.Run.Elapsed)
	}

	gs.Advance(5) // dt режется до 0.1
	if math.Abs(gs.game.Run.Elapsed-0.35) > 1e-9 {
		t.Fatalf("elapsed = %v, want 0.35", gs.game.Run.Elapsed)
	}
}

func TestAdvanceStopsAfterGameOver(t *testing.T) {
	_, gs := newTestState(t)
	gs.game.EndGame(component.OutcomeDefeat)
	before := gs.game.Run.Elapsed
	gs.Advance(0.1)
	if gs.game.Run.Elapsed != before {
		t.Fatal("simulation ticked after game over")
	}
	if gs.Toast() == "" {
		t.Fatal("final status should stay on screen")
	}
	gs.toast.Update(10)
	if gs.Toast() == "" {
		t.Fatal("final status expired before restart")
	}
}

func TestRestartButtonOnlyWhenOver(t *testing.T) {
	_, gs := newTestState(t)
	runID := gs.game.RunID()
	rx, ry := int(gs.restart.X)+5, int(gs.restart.Y)+5

	gs.HandleClick(rx, ry)
	if gs.game.RunID() != runID {
		t.Fatal("restart accepted while the run is live")
	}

	gs.game.EndGame(component.OutcomeVictory)
	gs.HandleClick(rx, ry)
	if gs.game.RunID() == runID || gs.game.IsOver() {
		t.Fatal("restart click ignored after game over")
	}
	if gs.Toast() != "" {
		t.Fatalf("toast survived the reset: %q", gs.Toast())
	}
}

func TestPauseRoundTrip(t *testing.T) {
	sm, gs := newTestState(t)
	if !gs.HandleClick(int(gs.pause.X), int(gs.pause.Y)) {
		t.Fatal("pause click should switch state")
	}
	ps, ok := sm.Current().(*PauseState)
	if !ok {
		t.Fatalf("current state = %T, want *PauseState", sm.Current())
	}
	if !gs.pause.IsPaused {
		t.Fatal("pause button should show play")
	}

	ps.Resume()
	if sm.Current() != gs {
		t.Fatal("resume did not return to the game")
	}
	if gs.pause.IsPaused {
		t.Fatal("pause button still paused")
	}
}

func TestMenuSelectsDifficulty(t *testing.T) {
	sm, gs := newTestState(t)
	if !gs.HandleClick(int(gs.menu.X)+5, int(gs.menu.Y)+5) {
		t.Fatal("menu click should switch state")
	}
	menu, ok := sm.Current().(*MenuState)
	if !ok {
		t.Fatalf("current state = %T, want *MenuState", sm.Current())
	}
	if len(menu.buttons) != len(gs.game.Library.DifficultyList) {
		t.Fatalf("menu shows %d buttons", len(menu.buttons))
	}

	menu.Choose(2)
	if got := gs.game.Difficulty().ID; got != "veteran" {
		t.Fatalf("difficulty = %q, want veteran", got)
	}
	if sm.Current() != gs {
		t.Fatal("menu did not return to the game")
	}

	menu.Choose(99)
	if got := gs.game.Difficulty().ID; got != "veteran" {
		t.Fatal("out of range choice changed difficulty")
	}
}

func TestUnitTooltip(t *testing.T) {
	scout, _ := defs.Default().Unit("scout")
	tip := UnitTooltip(scout)
	if !strings.HasPrefix(tip, "speed 120  health 35") {
		t.Fatalf("tooltip = %q", tip)
	}
	if scout.Role != "" && !strings.HasSuffix(tip, scout.Role) {
		t.Fatalf("tooltip %q misses role %q", tip, scout.Role)
	}
}
