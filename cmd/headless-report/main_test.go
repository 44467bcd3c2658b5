package main

import (
	"strconv"
	"strings"
	"testing"

	"go-reverse-td/internal/defs"
)

func towerlessLibrary(t *testing.T, start, regen float64, target int) *defs.Library {
	t.Helper()
	lib, err := defs.Parse([]byte(`{
		"path": [{"x": 0, "y": 0}, {"x": 100, "y": 0}],
		"units": [{"id": "scout", "name": "Seed Runner", "speed": 100, "health": 35, "radius": 10, "color": "#7ae4ad", "cost": 10}],
		"default_difficulty": "test",
		"difficulties": [{"id": "test", "label": "Test", "command_points": {"start": ` +
		strconv.FormatFloat(start, 'f', -1, 64) + `, "regen": ` + strconv.FormatFloat(regen, 'f', -1, 64) +
		`}, "target_escaped": ` + strconv.Itoa(target) + `}]
	}`))
	if err != nil {
		t.Fatalf("parse test library: %v", err)
	}
	return lib
}

func testConfig() runConfig {
	return runConfig{difficulty: "test", strategy: "greedy", seed: 1, maxTime: 60, dt: 0.05}
}

func TestRunOnceVictoryWithoutTowers(t *testing.T) {
	rs, err := runOnce(towerlessLibrary(t, 50, 10, 3), 1, testConfig())
	if err != nil {
		t.Fatalf("runOnce: %v", err)
	}
	if rs.outcome != "victory" {
		t.Fatalf("outcome = %s, want victory", rs.outcome)
	}
	if rs.escaped < 3 || rs.destroyed != 0 {
		t.Fatalf("escaped=%d destroyed=%d", rs.escaped, rs.destroyed)
	}
	if rs.runID == "" || rs.firstEscape <= 0 {
		t.Fatalf("missing run id or first escape: %+v", rs)
	}
}

func TestRunOnceTimeLimitDefeat(t *testing.T) {
	cfg := testConfig()
	cfg.timeLimit = 1
	rs, err := runOnce(towerlessLibrary(t, 0, 0, 100), 1, cfg)
	if err != nil {
		t.Fatalf("runOnce: %v", err)
	}
	if rs.outcome != "defeat" {
		t.Fatalf("outcome = %s, want defeat", rs.outcome)
	}
	if rs.elapsed < 1 || rs.elapsed > 1.2 {
		t.Fatalf("elapsed = %v, want just past the limit", rs.elapsed)
	}
}

func TestRunOnceTimeout(t *testing.T) {
	cfg := testConfig()
	cfg.maxTime = 2
	rs, err := runOnce(towerlessLibrary(t, 0, 0, 100), 1, cfg)
	if err != nil {
		t.Fatalf("runOnce: %v", err)
	}
	if rs.outcome != "timeout" {
		t.Fatalf("outcome = %s, want timeout", rs.outcome)
	}
}

func TestRunOnceIsDeterministicPerSeed(t *testing.T) {
	lib := defs.Default()
	cfg := runConfig{difficulty: "recruit", strategy: "weighted", seed: 7, timeLimit: 60, maxTime: 60, dt: 0.05}

	a, err := runOnce(lib, 1, cfg)
	if err != nil {
		t.Fatalf("runOnce: %v", err)
	}
	b, err := runOnce(lib, 1, cfg)
	if err != nil {
		t.Fatalf("runOnce: %v", err)
	}
	if a.outcome != b.outcome || a.spawned != b.spawned || a.escaped != b.escaped || a.destroyed != b.destroyed {
		t.Fatalf("same seed diverged:\n%+v\n%+v", a, b)
	}
	if a.runID == b.runID {
		t.Fatal("run ids should differ between runs")
	}
}

func TestRunOnceUnknownStrategy(t *testing.T) {
	cfg := testConfig()
	cfg.strategy = "turtle"
	if _, err := runOnce(towerlessLibrary(t, 50, 10, 3), 1, cfg); err == nil {
		t.Fatal("expected error for unknown strategy")
	}
}

func TestSelectDifficulties(t *testing.T) {
	lib := defs.Default()
	all, err := selectDifficulties(lib, "all")
	if err != nil || len(all) != 3 || all[0] != "recruit" {
		t.Fatalf("all = %v, %v", all, err)
	}
	one, err := selectDifficulties(lib, "veteran")
	if err != nil || len(one) != 1 || one[0] != "veteran" {
		t.Fatalf("veteran = %v, %v", one, err)
	}
	if _, err := selectDifficulties(lib, "nightmare"); err == nil {
		t.Fatal("expected error for unknown difficulty")
	}
}

func TestAggregateByDifficulty(t *testing.T) {
	all := []runStats{
		{difficulty: "veteran", outcome: "defeat", elapsed: 60, destroyed: 10, escaped: 5, spawned: 15},
		{difficulty: "recruit", outcome: "victory", elapsed: 40, destroyed: 2, escaped: 15, spawned: 17},
		{difficulty: "recruit", outcome: "defeat", elapsed: 60, destroyed: 6, escaped: 9, spawned: 15},
	}
	got := aggregateByDifficulty(all)
	if len(got) != 2 || got[0].difficulty != "recruit" {
		t.Fatalf("groups = %+v", got)
	}
	r := got[0]
	if r.runs != 2 || r.wins != 1 || r.winRate() != 0.5 {
		t.Fatalf("recruit = %+v", r)
	}
	if r.meanElapsed != 50 || r.meanKills != 4 || r.meanEscapes != 12 || r.meanSpawned != 16 {
		t.Fatalf("recruit means = %+v", r)
	}
	if got[1].winRate() != 0 {
		t.Fatalf("veteran win rate = %v", got[1].winRate())
	}
}

func TestPrintAggregate(t *testing.T) {
	var sb strings.Builder
	printAggregate(&sb, []runStats{{difficulty: "standard", outcome: "victory", elapsed: 30}})
	if !strings.Contains(sb.String(), "win_rate=100%") {
		t.Fatalf("report = %q", sb.String())
	}
}
