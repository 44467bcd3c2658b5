// internal/defs/units.go
package defs

// UnitType holds all the static data for a kind of unit the player can send.
type UnitType struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Speed  float64 `json:"speed"`  // units per second
	Health float64 `json:"health"` // max health
	Radius float64 `json:"radius"`
	Color  string  `json:"color"` // "#rrggbb"
	Cost   float64 `json:"cost"`  // command points
	Role   string  `json:"role"`
}
