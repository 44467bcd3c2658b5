// internal/app/game.go
package app

import (
	"errors"
	"fmt"
	"image/color"
	"log"

	"github.com/google/uuid"

	"go-reverse-td/internal/component"
	"go-reverse-td/internal/config"
	"go-reverse-td/internal/defs"
	"go-reverse-td/internal/entity"
	"go-reverse-td/internal/event"
	"go-reverse-td/internal/storage"
	"go-reverse-td/internal/system"
	"go-reverse-td/pkg/render"
)

var (
	ErrRunOver            = errors.New("run is over")
	ErrUnknownUnitType    = errors.New("unknown unit type")
	ErrInsufficientPoints = errors.New("not enough command points")
)

var fallbackUnitColor = color.RGBA{200, 200, 200, 255}

// Game holds the run state and wires the systems together. A Game is owned
// by a single goroutine; independent Game values share nothing.
type Game struct {
	Library          *defs.Library
	ECS              *entity.ECS
	Economy          *component.Economy
	Run              *component.RunState
	EventDispatcher  *event.Dispatcher
	StateSystem      *system.StateSystem
	MovementSystem   *system.MovementSystem
	CombatSystem     *system.CombatSystem
	ProjectileSystem *system.ProjectileSystem
	EconomySystem    *system.EconomySystem

	store      storage.Store
	difficulty defs.DifficultyProfile
	runID      string
	defeatRule DefeatRule
	unitColors map[string]color.RGBA
}

// Option настраивает Game при создании.
type Option func(*Game)

// WithStore задаёт хранилище настроек. По умолчанию используется память.
func WithStore(s storage.Store) Option {
	return func(g *Game) { g.store = s }
}

// WithDispatcher lets the host share a dispatcher created before the game.
func WithDispatcher(d *event.Dispatcher) Option {
	return func(g *Game) { g.EventDispatcher = d }
}

// WithDefeatRule installs a defeat condition checked once per tick.
func WithDefeatRule(rule DefeatRule) Option {
	return func(g *Game) { g.defeatRule = rule }
}

// NewGame builds a game from the definitions and starts the first run with
// the persisted difficulty (or the default one).
func NewGame(lib *defs.Library, opts ...Option) *Game {
	if lib == nil {
		panic("library cannot be nil")
	}

	g := &Game{
		Library: lib,
		ECS:     entity.NewECS(),
		Economy: &component.Economy{Cap: config.CommandPointCap},
		Run:     &component.RunState{},
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.EventDispatcher == nil {
		g.EventDispatcher = event.NewDispatcher()
	}
	if g.store == nil {
		g.store = storage.NewMemoryStore()
	}

	g.unitColors = make(map[string]color.RGBA, len(lib.UnitList))
	for _, u := range lib.UnitList {
		g.unitColors[u.ID] = render.MustParseHexColor(u.Color, fallbackUnitColor)
	}

	g.StateSystem = system.NewStateSystem(g.ECS, g.Run, g.Economy, g.EventDispatcher, lib.CheapestUnitCost())
	g.MovementSystem = system.NewMovementSystem(g.ECS, lib.Path, g.Run, g.StateSystem, g.EventDispatcher)
	g.CombatSystem = system.NewCombatSystem(g.ECS, g.StateSystem, g.EventDispatcher)
	g.ProjectileSystem = system.NewProjectileSystem(g.ECS, g.StateSystem, g.EventDispatcher)
	g.EconomySystem = system.NewEconomySystem(g.Economy, g.StateSystem)
	g.SetDefeatRule(g.defeatRule)

	g.difficulty = lib.ResolveDifficulty(g.loadPreference())
	g.reset()
	return g
}

// Tick advances the simulation by dt seconds. Callers clamp dt with
// ClampDelta first.
func (g *Game) Tick(dt float64) {
	g.Run.Elapsed += dt
	g.EconomySystem.Update(dt)
	g.MovementSystem.Update(dt)
	g.CombatSystem.Update(dt)
	g.ProjectileSystem.Update(dt)
	g.ECS.Sweep()
	g.StateSystem.Update(dt)
}

// SpawnUnit sends a unit of the given type to the start of the path.
// A rejected request leaves the state untouched.
func (g *Game) SpawnUnit(typeID string) error {
	if g.Run.Over {
		return fmt.Errorf("spawn %q: %w", typeID, ErrRunOver)
	}
	t, ok := g.Library.Unit(typeID)
	if !ok {
		return fmt.Errorf("spawn %q: %w", typeID, ErrUnknownUnitType)
	}
	if !g.Economy.Spend(t.Cost) {
		g.EventDispatcher.Dispatch(event.Event{
			Type: event.SpawnRejected,
			Time: g.Run.Elapsed,
			Data: event.UnitData{TypeID: t.ID, Name: t.Name},
		})
		g.StateSystem.Statusf(config.MsgNotEnoughPoints, t.Name)
		return fmt.Errorf("spawn %s (cost %.0f, have %.0f): %w", t.Name, t.Cost, g.Economy.Points, ErrInsufficientPoints)
	}

	u := component.NewUnit(t, g.Library.Path.Start(), g.unitColors[t.ID])
	id := g.ECS.AddUnit(u)
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.UnitSpawned,
		Time: g.Run.Elapsed,
		Data: event.UnitData{ID: id, TypeID: t.ID, Name: t.Name},
	})
	g.StateSystem.Statusf(config.MsgUnitUnderway, t.Name)
	return nil
}

// SelectDifficulty switches the profile, persists the choice and resets the
// run. An unknown id selects the default profile.
func (g *Game) SelectDifficulty(id string) {
	g.difficulty = g.Library.ResolveDifficulty(id)
	if err := g.store.Set(config.PreferenceKey, g.difficulty.ID); err != nil {
		log.Printf("Failed to save difficulty preference: %v", err)
	}
	g.reset()
}

// Restart начинает забег заново с текущей сложностью.
func (g *Game) Restart() {
	g.reset()
}

// EndGame forces the run to end. Only the first transition counts.
func (g *Game) EndGame(outcome component.Outcome) bool {
	return g.StateSystem.EndGame(outcome)
}

// SetDefeatRule replaces the host defeat condition. nil disables it.
func (g *Game) SetDefeatRule(rule DefeatRule) {
	g.defeatRule = rule
	if rule == nil {
		g.StateSystem.SetDefeatCheck(nil)
		return
	}
	g.StateSystem.SetDefeatCheck(func() bool { return rule(*g.Run) })
}

func (g *Game) Difficulty() defs.DifficultyProfile { return g.difficulty }
func (g *Game) RunID() string                      { return g.runID }
func (g *Game) IsOver() bool                       { return g.Run.Over }

// UnitColor возвращает цвет типа юнита.
func (g *Game) UnitColor(typeID string) color.RGBA {
	if c, ok := g.unitColors[typeID]; ok {
		return c
	}
	return fallbackUnitColor
}

func (g *Game) reset() {
	g.ECS.Clear()
	*g.Economy = component.Economy{
		Points: g.difficulty.CommandPoints.Start,
		Regen:  g.difficulty.CommandPoints.Regen,
		Cap:    config.CommandPointCap,
	}
	g.StateSystem.Reset(g.difficulty.TargetEscaped)
	for _, p := range g.difficulty.Towers {
		g.ECS.AddTower(component.NewTower(p))
	}
	g.runID = uuid.NewString()

	log.Printf("Run %s started: difficulty %s, %d towers, goal %d", g.runID, g.difficulty.ID, len(g.difficulty.Towers), g.difficulty.TargetEscaped)
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.RunReset,
		Data: event.ResetData{RunID: g.runID, Difficulty: g.difficulty.ID},
	})
}

func (g *Game) loadPreference() string {
	id, ok := g.store.Get(config.PreferenceKey)
	if !ok {
		return config.DefaultDifficulty
	}
	return id
}

// ClampDelta ограничивает шаг кадра: отрицательный dt превращается в 0,
// слишком большой обрезается до config.MaxDeltaTime.
func ClampDelta(dt float64) float64 {
	if dt < 0 {
		return 0
	}
	if dt > config.MaxDeltaTime {
		return config.MaxDeltaTime
	}
	return dt
}
