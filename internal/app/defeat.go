package app

import "go-reverse-td/internal/component"

// DefeatRule decides, from the run counters, whether the player has lost.
// The core never declares defeat on its own.
type DefeatRule func(run component.RunState) bool

// TimeLimit is lost once the run lasts the given number of seconds without
// reaching the escape goal.
func TimeLimit(seconds float64) DefeatRule {
	return func(run component.RunState) bool {
		return run.Elapsed >= seconds
	}
}
