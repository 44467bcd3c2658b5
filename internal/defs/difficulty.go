// internal/defs/difficulty.go
package defs

// CommandPointSettings: стартовый запас и скорость восстановления очков командования.
type CommandPointSettings struct {
	Start float64 `json:"start"`
	Regen float64 `json:"regen"` // в секунду
}

// DifficultyProfile is a named bundle of economy, tower layout and escape goal.
// It is selected once per run; switching profiles resets the run.
type DifficultyProfile struct {
	ID            string               `json:"id"`
	Label         string               `json:"label"`
	Description   string               `json:"description"`
	CommandPoints CommandPointSettings `json:"command_points"`
	TargetEscaped int                  `json:"target_escaped"`
	Towers        []TowerPlacement     `json:"towers"`
}
