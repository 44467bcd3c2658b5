package report

import (
	"fmt"
	"strings"

	"go-reverse-td/internal/event"
)

// Entry is one recorded event of a run.
type Entry struct {
	Time     float64
	Category string // run, spawn, unit, tower, status
	Key      string
	Value    string
	NumVal   float64
}

// String formats the entry as a fixed-width log line.
//
//	[t=012.40] unit     escaped          Seed Runner
func (e Entry) String() string {
	return fmt.Sprintf("[t=%06.2f] %-8s %-16s %s", e.Time, e.Category, e.Key, e.Value)
}

// RunLog records dispatcher events as machine-readable entries. It is
// unbounded; a reset clears it, so it only ever describes the current run.
type RunLog struct {
	entries []Entry
	runID   string
	verbose bool
}

// NewRunLog creates a RunLog. With verbose set, shots and status messages
// are recorded too.
func NewRunLog(verbose bool) *RunLog {
	return &RunLog{verbose: verbose}
}

// OnEvent реализует event.Listener.
func (l *RunLog) OnEvent(e event.Event) {
	switch e.Type {
	case event.RunReset:
		data := e.Data.(event.ResetData)
		l.entries = l.entries[:0]
		l.runID = data.RunID
		l.Add(e.Time, "run", "reset", data.Difficulty, 0)
	case event.UnitSpawned:
		data := e.Data.(event.UnitData)
		l.Add(e.Time, "spawn", "unit_spawned", data.Name, float64(data.ID))
	case event.SpawnRejected:
		data := e.Data.(event.UnitData)
		l.Add(e.Time, "spawn", "rejected", data.Name, 0)
	case event.UnitEscaped:
		data := e.Data.(event.UnitData)
		l.Add(e.Time, "unit", "escaped", data.Name, float64(data.ID))
	case event.UnitDestroyed:
		data := e.Data.(event.UnitData)
		l.Add(e.Time, "unit", "destroyed", data.Name, float64(data.ID))
	case event.ProjectileFired:
		if l.verbose {
			data := e.Data.(event.FireData)
			l.Add(e.Time, "tower", "fired", fmt.Sprintf("tower %d → unit %d", data.TowerID, data.TargetID), float64(data.TowerID))
		}
	case event.StatusMessage:
		if l.verbose {
			l.Add(e.Time, "status", "message", e.Data.(event.StatusData).Text, 0)
		}
	case event.GameOver:
		data := e.Data.(event.GameOverData)
		outcome := "defeat"
		if data.Victory {
			outcome = "victory"
		}
		l.Add(e.Time, "run", "game_over", outcome, float64(data.Escaped))
	}
}

// Add records a new entry.
func (l *RunLog) Add(time float64, category, key, value string, numVal float64) {
	l.entries = append(l.entries, Entry{Time: time, Category: category, Key: key, Value: value, NumVal: numVal})
}

func (l *RunLog) Entries() []Entry { return l.entries }
func (l *RunLog) RunID() string    { return l.runID }

// Filter returns entries matching the given category and/or key.
// Pass empty string to match any value for that field.
func (l *RunLog) Filter(category, key string) []Entry {
	var out []Entry
	for _, e := range l.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Count returns how many entries match category and key.
func (l *RunLog) Count(category, key string) int {
	return len(l.Filter(category, key))
}

// LastOf returns the most recent entry matching category+key.
func (l *RunLog) LastOf(category, key string) (Entry, bool) {
	entries := l.Filter(category, key)
	if len(entries) == 0 {
		return Entry{}, false
	}
	return entries[len(entries)-1], true
}

// FirstTime: время первого подходящего события или -1.
func (l *RunLog) FirstTime(category, key string) float64 {
	for _, e := range l.entries {
		if e.Category == category && e.Key == key {
			return e.Time
		}
	}
	return -1
}

// Format returns the full log as a single string.
func (l *RunLog) Format() string {
	var sb strings.Builder
	for _, e := range l.entries {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Summary returns the run totals on one line.
func (l *RunLog) Summary() string {
	outcome := "running"
	if last, ok := l.LastOf("run", "game_over"); ok {
		outcome = last.Value
	}
	return fmt.Sprintf("run=%s outcome=%s spawned=%d rejected=%d escaped=%d destroyed=%d first_escape=%.1f",
		l.runID, outcome,
		l.Count("spawn", "unit_spawned"), l.Count("spawn", "rejected"),
		l.Count("unit", "escaped"), l.Count("unit", "destroyed"),
		l.FirstTime("unit", "escaped"))
}
