package app

import (
	"image/color"

	"go-reverse-td/internal/component"
	"go-reverse-td/internal/types"
)

// UnitView: то, что фронтенду нужно знать о юните.
type UnitView struct {
	ID        types.EntityID
	TypeID    string
	Name      string
	X, Y      float64
	Radius    float64
	Color     color.RGBA
	Health    float64
	MaxHealth float64
	PathIndex int
}

type TowerView struct {
	ID       types.EntityID
	X, Y     float64
	Range    float64
	Cooldown float64
	FireRate float64
}

type ProjectileView struct {
	ID     types.EntityID
	X, Y   float64
	Radius float64
	Active bool
}

// Snapshot is a read-only copy of the run for presentation. It holds no
// references into the simulation.
type Snapshot struct {
	RunID                 string
	DifficultyID          string
	DifficultyLabel       string
	DifficultyDescription string

	Units       []UnitView
	Towers      []TowerView
	Projectiles []ProjectileView

	Points  float64
	Cap     float64
	Escaped int
	Target  int
	Elapsed float64
	Over    bool
	Outcome component.Outcome
}

// Snapshot копирует текущее состояние в порядке создания сущностей.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		RunID:                 g.runID,
		DifficultyID:          g.difficulty.ID,
		DifficultyLabel:       g.difficulty.Label,
		DifficultyDescription: g.difficulty.Description,
		Points:                g.Economy.Points,
		Cap:                   g.Economy.Cap,
		Escaped:               g.Run.Escaped,
		Target:                g.Run.Target,
		Elapsed:               g.Run.Elapsed,
		Over:                  g.Run.Over,
		Outcome:               g.Run.Outcome,
	}

	s.Units = make([]UnitView, 0, len(g.ECS.UnitIDs()))
	for _, id := range g.ECS.UnitIDs() {
		u := g.ECS.Units[id]
		s.Units = append(s.Units, UnitView{
			ID: id, TypeID: u.TypeID, Name: u.Name,
			X: u.Position.X, Y: u.Position.Y, Radius: u.Radius, Color: u.Color,
			Health: u.Health, MaxHealth: u.MaxHealth, PathIndex: u.PathIndex,
		})
	}
	s.Towers = make([]TowerView, 0, len(g.ECS.TowerIDs()))
	for _, id := range g.ECS.TowerIDs() {
		t := g.ECS.Towers[id]
		s.Towers = append(s.Towers, TowerView{
			ID: id, X: t.Position.X, Y: t.Position.Y,
			Range: t.Range, Cooldown: t.Cooldown, FireRate: t.FireRate,
		})
	}
	s.Projectiles = make([]ProjectileView, 0, len(g.ECS.ProjectileIDs()))
	for _, id := range g.ECS.ProjectileIDs() {
		p := g.ECS.Projectiles[id]
		s.Projectiles = append(s.Projectiles, ProjectileView{
			ID: id, X: p.Position.X, Y: p.Position.Y, Radius: p.Radius, Active: p.Active,
		})
	}
	return s
}

// HealthFraction: доля здоровья для полоски над юнитом.
func (u UnitView) HealthFraction() float64 {
	if u.MaxHealth <= 0 {
		return 0
	}
	f := u.Health / u.MaxHealth
	if f < 0 {
		return 0
	}
	return f
}
