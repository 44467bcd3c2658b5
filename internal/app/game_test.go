package app

import (
	"errors"
	"testing"

	"go-reverse-td/internal/component"
	"go-reverse-td/internal/config"
	"go-reverse-td/internal/defs"
	"go-reverse-td/internal/event"
	"go-reverse-td/internal/storage"
)

// testGame bundles a game with a recorder of every dispatched event.
type testGame struct {
	*Game
	events []event.Event
}

func newTestGame(t *testing.T, lib *defs.Library, opts ...Option) *testGame {
	t.Helper()
	if lib == nil {
		lib = defs.Default()
	}
	d := event.NewDispatcher()
	tg := &testGame{}
	d.SubscribeAll(event.ListenerFunc(func(e event.Event) { tg.events = append(tg.events, e) }))
	tg.Game = NewGame(lib, append([]Option{WithDispatcher(d)}, opts...)...)
	return tg
}

func (tg *testGame) statuses() []string {
	var out []string
	for _, e := range tg.events {
		if e.Type == event.StatusMessage {
			out = append(out, e.Data.(event.StatusData).Text)
		}
	}
	return out
}

func (tg *testGame) lastStatus() string {
	s := tg.statuses()
	if len(s) == 0 {
		return ""
	}
	return s[len(s)-1]
}

// shortLibrary is a two-waypoint track without towers; one unit type.
func shortLibrary(t *testing.T, start, regen float64, target int) *defs.Library {
	t.Helper()
	lib, err := defs.Parse([]byte(`{
		"path": [{"x": 0, "y": 0}, {"x": 100, "y": 0}],
		"units": [{"id": "scout", "name": "Seed Runner", "speed": 100, "health": 35, "radius": 10, "color": "#7ae4ad", "cost": 10}],
		"default_difficulty": "test",
		"difficulties": [{"id": "test", "label": "Test", "command_points": {"start": ` + ftoa(start) + `, "regen": ` + ftoa(regen) + `}, "target_escaped": ` + itoa(target) + `}]
	}`))
	if err != nil {
		t.Fatalf("parse test library: %v", err)
	}
	return lib
}

type failingStore struct{}

func (failingStore) Get(string) (string, bool) { return "", false }
func (failingStore) Set(string, string) error  { return errors.New("disk full") }

func TestNewGameUsesDefaultDifficulty(t *testing.T) {
	g := newTestGame(t, nil)
	s := g.Snapshot()
	if s.DifficultyID != "standard" || s.Points != 60 || s.Target != 20 {
		t.Fatalf("unexpected initial run: %s points=%v target=%d", s.DifficultyID, s.Points, s.Target)
	}
	if len(s.Towers) != 5 || len(s.Units) != 0 {
		t.Fatalf("towers=%d units=%d", len(s.Towers), len(s.Units))
	}
	if s.RunID == "" {
		t.Fatal("run id not assigned")
	}
}

func TestNewGameReadsPreference(t *testing.T) {
	tests := []struct {
		stored string
		want   string
		points float64
	}{
		{"recruit", "recruit", 80},
		{"veteran", "veteran", 50},
		{"nightmare", "standard", 60},
	}
	for _, tt := range tests {
		t.Run(tt.stored, func(t *testing.T) {
			store := storage.NewMemoryStore()
			_ = store.Set(config.PreferenceKey, tt.stored)
			g := newTestGame(t, nil, WithStore(store))
			if g.Difficulty().ID != tt.want || g.Economy.Points != tt.points {
				t.Fatalf("difficulty %s points %v, want %s %v", g.Difficulty().ID, g.Economy.Points, tt.want, tt.points)
			}
		})
	}
}

func TestSpawnUnitDeductsAndAnnounces(t *testing.T) {
	g := newTestGame(t, nil)
	if err := g.SpawnUnit("scout"); err != nil {
		t.Fatalf("SpawnUnit: %v", err)
	}
	s := g.Snapshot()
	if s.Points != 30 {
		t.Fatalf("points = %v, want 30", s.Points)
	}
	if len(s.Units) != 1 || s.Units[0].X != 40 || s.Units[0].Y != 560 || s.Units[0].PathIndex != 0 {
		t.Fatalf("unit not at the path start: %+v", s.Units)
	}
	if got := g.lastStatus(); got != "Seed Runner underway!" {
		t.Fatalf("status = %q", got)
	}
}

func TestSpawnUnitRejectsWhenPointsShort(t *testing.T) {
	g := newTestGame(t, nil)
	err := g.SpawnUnit("tank") // 90 > 60
	if !errors.Is(err, ErrInsufficientPoints) {
		t.Fatalf("err = %v, want ErrInsufficientPoints", err)
	}
	if g.Economy.Points != 60 || len(g.ECS.UnitIDs()) != 0 {
		t.Fatal("rejected spawn changed the state")
	}
	if got := g.lastStatus(); got != "Not enough harvest points to send a Grove Sentinel." {
		t.Fatalf("status = %q", got)
	}
}

func TestSpawnUnitRejectsUnknownType(t *testing.T) {
	g := newTestGame(t, nil)
	before := len(g.events)
	if err := g.SpawnUnit("dragon"); !errors.Is(err, ErrUnknownUnitType) {
		t.Fatalf("err = %v", err)
	}
	if g.Economy.Points != 60 || len(g.events) != before {
		t.Fatal("unknown type must be ignored silently")
	}
}

func TestSpawnUnitRejectsAfterGameOver(t *testing.T) {
	g := newTestGame(t, nil)
	g.EndGame(component.OutcomeDefeat)
	before := len(g.events)
	if err := g.SpawnUnit("scout"); !errors.Is(err, ErrRunOver) {
		t.Fatalf("err = %v", err)
	}
	if g.Economy.Points != 60 || len(g.ECS.UnitIDs()) != 0 || len(g.events) != before {
		t.Fatal("spawn after game over changed the state")
	}
}

func TestSelectDifficultyResetsAndPersists(t *testing.T) {
	store := storage.NewMemoryStore()
	g := newTestGame(t, nil, WithStore(store))
	_ = g.SpawnUnit("scout")
	for i := 0; i < 30; i++ {
		g.Tick(0.05)
	}
	oldRun := g.RunID()

	g.SelectDifficulty("veteran")
	s := g.Snapshot()
	if s.DifficultyID != "veteran" || s.Points != 50 || s.Target != 25 {
		t.Fatalf("run not reset to veteran: %+v", s)
	}
	if len(s.Units) != 0 || len(s.Projectiles) != 0 || len(s.Towers) != 5 {
		t.Fatalf("entities not reset: units=%d projectiles=%d towers=%d", len(s.Units), len(s.Projectiles), len(s.Towers))
	}
	if s.Escaped != 0 || s.Elapsed != 0 || s.Over {
		t.Fatalf("counters not reset: %+v", s)
	}
	if s.RunID == oldRun {
		t.Fatal("run id kept across reset")
	}
	if v, _ := store.Get(config.PreferenceKey); v != "veteran" {
		t.Fatalf("stored preference = %q", v)
	}
}

func TestSelectUnknownDifficultyFallsBack(t *testing.T) {
	store := storage.NewMemoryStore()
	g := newTestGame(t, nil, WithStore(store))
	g.SelectDifficulty("nightmare")
	if g.Difficulty().ID != "standard" {
		t.Fatalf("difficulty = %s", g.Difficulty().ID)
	}
	if v, _ := store.Get(config.PreferenceKey); v != "standard" {
		t.Fatalf("stored preference = %q", v)
	}
}

func TestSelectDifficultySurvivesStoreFailure(t *testing.T) {
	g := newTestGame(t, nil, WithStore(failingStore{}))
	g.SelectDifficulty("recruit")
	if g.Difficulty().ID != "recruit" || g.Economy.Points != 80 {
		t.Fatal("write failure must not block the switch")
	}
}

func TestRestartKeepsDifficulty(t *testing.T) {
	g := newTestGame(t, nil)
	g.SelectDifficulty("recruit")
	_ = g.SpawnUnit("bruiser")
	g.EndGame(component.OutcomeDefeat)

	g.Restart()
	if g.IsOver() || g.Difficulty().ID != "recruit" || g.Economy.Points != 80 {
		t.Fatalf("restart: over=%v difficulty=%s points=%v", g.IsOver(), g.Difficulty().ID, g.Economy.Points)
	}
}

func TestUnitEscapeWinsRun(t *testing.T) {
	g := newTestGame(t, shortLibrary(t, 10, 0, 1))
	if err := g.SpawnUnit("scout"); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 50 && !g.IsOver(); i++ {
		g.Tick(0.1)
	}
	s := g.Snapshot()
	if !s.Over || s.Outcome != component.OutcomeVictory || s.Escaped != 1 {
		t.Fatalf("run = over:%v outcome:%v escaped:%d", s.Over, s.Outcome, s.Escaped)
	}
	if len(s.Units) != 0 {
		t.Fatal("escaped unit not swept")
	}
	if got := g.lastStatus(); got != config.MsgVictory {
		t.Fatalf("status = %q", got)
	}
}

func TestTimeLimitDeclaresDefeat(t *testing.T) {
	g := newTestGame(t, shortLibrary(t, 0, 0, 1), WithDefeatRule(TimeLimit(1)))
	for i := 0; i < 5; i++ {
		g.Tick(0.1)
	}
	if g.IsOver() {
		t.Fatal("defeat before the limit")
	}
	for i := 0; i < 15; i++ {
		g.Tick(0.1)
	}
	if !g.IsOver() || g.Run.Outcome != component.OutcomeDefeat {
		t.Fatalf("outcome = %v", g.Run.Outcome)
	}

	g.SetDefeatRule(nil)
	g.Restart()
	for i := 0; i < 20; i++ {
		g.Tick(0.1)
	}
	if g.IsOver() {
		t.Fatal("rule removal ignored")
	}
}

func TestIdleNudge(t *testing.T) {
	g := newTestGame(t, shortLibrary(t, 0, 0, 1))
	g.Tick(0.1)
	if got := g.lastStatus(); got != config.MsgNudge {
		t.Fatalf("status = %q, want nudge", got)
	}
}

func TestEconomyRegeneratesToCap(t *testing.T) {
	g := newTestGame(t, nil)
	for i := 0; i < 200; i++ {
		g.Tick(0.1)
	}
	if g.Economy.Points != config.CommandPointCap {
		t.Fatalf("points = %v, want cap", g.Economy.Points)
	}
}

func TestGamesAreIndependent(t *testing.T) {
	a := newTestGame(t, nil)
	b := newTestGame(t, nil)
	_ = a.SpawnUnit("scout")
	a.Tick(0.1)
	if len(b.ECS.UnitIDs()) != 0 || b.Economy.Points != 60 || b.Run.Elapsed != 0 {
		t.Fatal("state leaked between games")
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	g := newTestGame(t, nil)
	_ = g.SpawnUnit("scout")
	s := g.Snapshot()
	s.Units[0].X = -1
	if g.ECS.Units[g.ECS.UnitIDs()[0]].Position.X == -1 {
		t.Fatal("snapshot aliases the simulation")
	}
	if s.Units[0].HealthFraction() != 1 {
		t.Fatalf("health fraction = %v", s.Units[0].HealthFraction())
	}
}

func TestClampDelta(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{-0.5, 0},
		{0.016, 0.016},
		{0.1, 0.1},
		{2.5, config.MaxDeltaTime},
	}
	for _, tt := range tests {
		if got := ClampDelta(tt.in); got != tt.want {
			t.Errorf("ClampDelta(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
