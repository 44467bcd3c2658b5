package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/atotto/clipboard"

	"go-reverse-td/internal/app"
	"go-reverse-td/internal/bot"
	"go-reverse-td/internal/defs"
	"go-reverse-td/internal/event"
	"go-reverse-td/internal/report"
	"go-reverse-td/internal/storage"
	"go-reverse-td/internal/utils"
)

type runStats struct {
	runIndex   int
	seed       int64
	difficulty string
	strategy   string
	runID      string

	outcome     string
	elapsed     float64
	target      int
	spawned     int
	rejected    int
	escaped     int
	destroyed   int
	firstEscape float64

	log *report.RunLog
}

type runConfig struct {
	difficulty string
	strategy   string
	seed       int64
	timeLimit  float64
	maxTime    float64
	dt         float64
	verbose    bool
}

func main() {
	var runs int
	var seedBase int64
	var seedStep int64
	var difficulty string
	var strategy string
	var timeLimit float64
	var maxTime float64
	var dt float64
	var defsPath string
	var copyReport bool
	var verbose bool

	flag.IntVar(&runs, "runs", 5, "number of headless runs per difficulty")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.StringVar(&difficulty, "difficulty", "all", "difficulty id, or \"all\"")
	flag.StringVar(&strategy, "strategy", "greedy", "bot strategy ("+strings.Join(bot.Names(), ", ")+")")
	flag.Float64Var(&timeLimit, "time-limit", 180, "declare defeat after this many seconds (0 disables)")
	flag.Float64Var(&maxTime, "max-time", 900, "abandon a run that is still going after this many seconds")
	flag.Float64Var(&dt, "dt", 0.05, "fixed simulation step, seconds")
	flag.StringVar(&defsPath, "defs", "", "path to a definitions JSON file (built-in library if empty)")
	flag.BoolVar(&copyReport, "copy", false, "copy the report to the clipboard")
	flag.BoolVar(&verbose, "verbose", false, "print the full event log of every run")
	flag.Parse()

	// Системы пишут в log на каждый забег; в отчёте это шум.
	log.SetOutput(io.Discard)

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if dt <= 0 || dt > 0.1 {
		fmt.Println("error: -dt must be in (0, 0.1]")
		return
	}

	lib := defs.Default()
	if defsPath != "" {
		var err error
		if lib, err = defs.LoadLibrary(defsPath); err != nil {
			fmt.Printf("error: %v\n", err)
			os.Exit(1)
		}
	}
	difficulties, err := selectDifficulties(lib, difficulty)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	if _, err := bot.NewStrategy(strategy, lib, utils.NewPRNGService(seedBase)); err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}

	var out strings.Builder
	fmt.Fprintf(&out, "=== Headless Run Report ===\n")
	fmt.Fprintf(&out, "strategy=%s runs=%d dt=%.3f time_limit=%.0f seed_base=%d seed_step=%d\n\n",
		strategy, runs, dt, timeLimit, seedBase, seedStep)

	var all []runStats
	for _, d := range difficulties {
		for i := 0; i < runs; i++ {
			cfg := runConfig{
				difficulty: d,
				strategy:   strategy,
				seed:       seedBase + int64(i)*seedStep,
				timeLimit:  timeLimit,
				maxTime:    maxTime,
				dt:         dt,
				verbose:    verbose,
			}
			rs, err := runOnce(lib, i+1, cfg)
			if err != nil {
				fmt.Printf("error: %v\n", err)
				return
			}
			all = append(all, rs)
			printRun(&out, rs)
			if verbose {
				out.WriteString(rs.log.Format())
			}
		}
	}
	printAggregate(&out, all)

	fmt.Print(out.String())
	if copyReport {
		if err := clipboard.WriteAll(out.String()); err != nil {
			fmt.Printf("warning: clipboard unavailable: %v\n", err)
		} else {
			fmt.Println("(report copied to clipboard)")
		}
	}
}

func selectDifficulties(lib *defs.Library, id string) ([]string, error) {
	if id == "all" {
		ids := make([]string, 0, len(lib.DifficultyList))
		for _, d := range lib.DifficultyList {
			ids = append(ids, d.ID)
		}
		return ids, nil
	}
	if _, ok := lib.Difficulty(id); !ok {
		return nil, fmt.Errorf("unknown difficulty %q", id)
	}
	return []string{id}, nil
}

// runOnce plays one run to the end (or to maxTime) with a bot.
func runOnce(lib *defs.Library, runIndex int, cfg runConfig) (runStats, error) {
	strategy, err := bot.NewStrategy(cfg.strategy, lib, utils.NewPRNGService(cfg.seed))
	if err != nil {
		return runStats{}, err
	}

	dispatcher := event.NewDispatcher()
	runLog := report.NewRunLog(cfg.verbose)
	dispatcher.SubscribeAll(runLog)

	opts := []app.Option{app.WithDispatcher(dispatcher), app.WithStore(storage.NewMemoryStore())}
	if cfg.timeLimit > 0 {
		opts = append(opts, app.WithDefeatRule(app.TimeLimit(cfg.timeLimit)))
	}
	game := app.NewGame(lib, opts...)
	game.SelectDifficulty(cfg.difficulty)

	player := bot.NewPlayer(strategy)
	for !game.IsOver() && game.Run.Elapsed < cfg.maxTime {
		if err := player.Act(game); err != nil && !errors.Is(err, app.ErrInsufficientPoints) {
			return runStats{}, fmt.Errorf("run %d: %w", runIndex, err)
		}
		game.Tick(cfg.dt)
	}

	return collectStats(runIndex, cfg, game.Snapshot(), runLog), nil
}

func collectStats(runIndex int, cfg runConfig, snap app.Snapshot, runLog *report.RunLog) runStats {
	outcome := "timeout"
	if snap.Over {
		outcome = snap.Outcome.String()
	}
	return runStats{
		runIndex:    runIndex,
		seed:        cfg.seed,
		difficulty:  cfg.difficulty,
		strategy:    cfg.strategy,
		runID:       runLog.RunID(),
		outcome:     outcome,
		elapsed:     snap.Elapsed,
		target:      snap.Target,
		spawned:     runLog.Count("spawn", "unit_spawned"),
		rejected:    runLog.Count("spawn", "rejected"),
		escaped:     runLog.Count("unit", "escaped"),
		destroyed:   runLog.Count("unit", "destroyed"),
		firstEscape: runLog.FirstTime("unit", "escaped"),
		log:         runLog,
	}
}

func printRun(w io.Writer, rs runStats) {
	fmt.Fprintf(w, "--- %s run %d (seed=%d id=%s) ---\n", rs.difficulty, rs.runIndex, rs.seed, rs.runID)
	fmt.Fprintf(w, "outcome=%s elapsed=%.1fs escaped=%d/%d\n", rs.outcome, rs.elapsed, rs.escaped, rs.target)
	fmt.Fprintf(w, "event_totals: spawned=%d rejected=%d destroyed=%d first_escape=%.1f\n\n",
		rs.spawned, rs.rejected, rs.destroyed, rs.firstEscape)
}

type aggregate struct {
	difficulty  string
	runs        int
	wins        int
	meanElapsed float64
	meanKills   float64
	meanEscapes float64
	meanSpawned float64
}

func (a aggregate) winRate() float64 {
	if a.runs == 0 {
		return 0
	}
	return float64(a.wins) / float64(a.runs)
}

// aggregateByDifficulty groups runs by difficulty, sorted by id.
func aggregateByDifficulty(all []runStats) []aggregate {
	groups := map[string]*aggregate{}
	for _, rs := range all {
		g, ok := groups[rs.difficulty]
		if !ok {
			g = &aggregate{difficulty: rs.difficulty}
			groups[rs.difficulty] = g
		}
		g.runs++
		if rs.outcome == "victory" {
			g.wins++
		}
		g.meanElapsed += rs.elapsed
		g.meanKills += float64(rs.destroyed)
		g.meanEscapes += float64(rs.escaped)
		g.meanSpawned += float64(rs.spawned)
	}

	out := make([]aggregate, 0, len(groups))
	for _, g := range groups {
		n := float64(g.runs)
		g.meanElapsed /= n
		g.meanKills /= n
		g.meanEscapes /= n
		g.meanSpawned /= n
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].difficulty < out[j].difficulty })
	return out
}

func printAggregate(w io.Writer, all []runStats) {
	fmt.Fprintf(w, "=== Aggregate ===\n")
	for _, a := range aggregateByDifficulty(all) {
		fmt.Fprintf(w, "%-10s runs=%d win_rate=%.0f%% mean_time=%.1fs mean_kills=%.1f mean_escapes=%.1f mean_spawned=%.1f\n",
			a.difficulty, a.runs, a.winRate()*100, a.meanElapsed, a.meanKills, a.meanEscapes, a.meanSpawned)
	}
}
