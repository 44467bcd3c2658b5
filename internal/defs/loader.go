// internal/defs/loader.go
package defs

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
)

//go:embed data/library.json
var embeddedLibrary []byte

// Library holds every data table of the game: the path, the unit types and
// the difficulty profiles. It is read-only after loading.
type Library struct {
	Path              Path                `json:"path"`
	UnitList          []UnitType          `json:"units"`
	DifficultyList    []DifficultyProfile `json:"difficulties"`
	DefaultDifficulty string              `json:"default_difficulty"`
	SpawnTables       []SpawnTable        `json:"spawn_tables"`

	units        map[string]UnitType
	difficulties map[string]DifficultyProfile
}

// Default возвращает встроенную библиотеку определений.
// Встроенные данные проверены тестами, поэтому ошибка здесь означает битую сборку.
func Default() *Library {
	lib, err := Parse(embeddedLibrary)
	if err != nil {
		panic(fmt.Sprintf("embedded definitions are invalid: %v", err))
	}
	return lib
}

// LoadLibrary reads a definitions file and builds a Library from it.
func LoadLibrary(path string) (*Library, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definitions file: %w", err)
	}
	lib, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("failed to load definitions from %s: %w", path, err)
	}
	log.Printf("Loaded %d unit types and %d difficulty profiles from %s", len(lib.UnitList), len(lib.DifficultyList), path)
	return lib, nil
}

// Parse decodes and validates library JSON.
func Parse(data []byte) (*Library, error) {
	var lib Library
	if err := json.Unmarshal(data, &lib); err != nil {
		return nil, fmt.Errorf("failed to unmarshal definitions: %w", err)
	}
	if err := lib.validate(); err != nil {
		return nil, err
	}

	lib.units = make(map[string]UnitType, len(lib.UnitList))
	for _, u := range lib.UnitList {
		lib.units[u.ID] = u
	}
	lib.difficulties = make(map[string]DifficultyProfile, len(lib.DifficultyList))
	for _, d := range lib.DifficultyList {
		lib.difficulties[d.ID] = d
	}
	return &lib, nil
}

func (l *Library) validate() error {
	var errs []error
	if len(l.Path) < 2 {
		errs = append(errs, fmt.Errorf("path needs at least 2 waypoints, got %d", len(l.Path)))
	}
	if len(l.UnitList) == 0 {
		errs = append(errs, errors.New("no unit types defined"))
	}
	seen := make(map[string]bool)
	for _, u := range l.UnitList {
		switch {
		case u.ID == "":
			errs = append(errs, errors.New("unit type without id"))
		case seen[u.ID]:
			errs = append(errs, fmt.Errorf("duplicate unit type %q", u.ID))
		}
		seen[u.ID] = true
		if u.Speed <= 0 || u.Health <= 0 || u.Radius <= 0 {
			errs = append(errs, fmt.Errorf("unit type %q: speed, health and radius must be positive", u.ID))
		}
		if u.Cost < 0 {
			errs = append(errs, fmt.Errorf("unit type %q: negative cost", u.ID))
		}
	}

	profiles := make(map[string]bool)
	for _, d := range l.DifficultyList {
		if d.ID == "" || profiles[d.ID] {
			errs = append(errs, fmt.Errorf("difficulty id %q is empty or duplicated", d.ID))
		}
		profiles[d.ID] = true
		if d.TargetEscaped <= 0 {
			errs = append(errs, fmt.Errorf("difficulty %q: target_escaped must be positive", d.ID))
		}
		for i, t := range d.Towers {
			stats := t.Options.Resolve()
			if stats.FireRate <= 0 || stats.Range < 0 || stats.ProjectileSpeed <= 0 || stats.Damage < 0 {
				errs = append(errs, fmt.Errorf("difficulty %q: tower %d has invalid options", d.ID, i))
			}
		}
	}
	if !profiles[l.DefaultDifficulty] {
		errs = append(errs, fmt.Errorf("default difficulty %q is not defined", l.DefaultDifficulty))
	}

	for _, table := range l.SpawnTables {
		for _, e := range table.Entries {
			if !seen[e.UnitID] {
				errs = append(errs, fmt.Errorf("spawn table %q references unknown unit %q", table.Strategy, e.UnitID))
			}
		}
	}
	return errors.Join(errs...)
}

// Unit возвращает тип юнита по id.
func (l *Library) Unit(id string) (UnitType, bool) {
	u, ok := l.units[id]
	return u, ok
}

// Difficulty возвращает профиль сложности по id.
func (l *Library) Difficulty(id string) (DifficultyProfile, bool) {
	d, ok := l.difficulties[id]
	return d, ok
}

// ResolveDifficulty returns the profile for id, substituting the default
// profile for an unknown id.
func (l *Library) ResolveDifficulty(id string) DifficultyProfile {
	if d, ok := l.difficulties[id]; ok {
		return d
	}
	return l.difficulties[l.DefaultDifficulty]
}

// CheapestUnitCost: стоимость самого дешёвого юнита.
func (l *Library) CheapestUnitCost() float64 {
	cheapest := l.UnitList[0].Cost
	for _, u := range l.UnitList[1:] {
		if u.Cost < cheapest {
			cheapest = u.Cost
		}
	}
	return cheapest
}

// SpawnTable возвращает таблицу выбора для стратегии.
func (l *Library) SpawnTable(strategy string) (SpawnTable, bool) {
	for _, t := range l.SpawnTables {
		if t.Strategy == strategy {
			return t, true
		}
	}
	return SpawnTable{}, false
}
