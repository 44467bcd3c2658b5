package component

// Outcome — итог забега
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeVictory
	OutcomeDefeat
)

func (o Outcome) String() string {
	switch o {
	case OutcomeVictory:
		return "victory"
	case OutcomeDefeat:
		return "defeat"
	default:
		return "running"
	}
}

// RunState — счётчики забега. Over работает как защёлка и меняется только false→true.
type RunState struct {
	Escaped   int
	Target    int
	Elapsed   float64
	LastNudge float64
	Over      bool
	Outcome   Outcome
}
