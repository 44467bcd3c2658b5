// internal/bot/bot.go
package bot

import (
	"errors"
	"fmt"
	"sort"

	"go-reverse-td/internal/app"
	"go-reverse-td/internal/defs"
	"go-reverse-td/internal/utils"
)

var ErrUnknownStrategy = errors.New("unknown strategy")

// Strategy выбирает, кого отправить следующим. ok=false: ждать.
type Strategy interface {
	Name() string
	Choose(s app.Snapshot) (unitID string, ok bool)
}

// Names lists the strategies NewStrategy understands.
func Names() []string { return []string{"greedy", "swarm", "weighted"} }

// NewStrategy builds a strategy by name. rng is only used by "weighted".
func NewStrategy(name string, lib *defs.Library, rng *utils.PRNGService) (Strategy, error) {
	units := sortedByCost(lib.UnitList)
	switch name {
	case "greedy":
		return &Greedy{units: units}, nil
	case "swarm":
		return &Swarm{unit: units[0]}, nil
	case "weighted":
		table, ok := lib.SpawnTable("weighted")
		if !ok {
			return nil, fmt.Errorf("no spawn table for %q", name)
		}
		costs := make(map[string]float64, len(units))
		for _, u := range units {
			costs[u.ID] = u.Cost
		}
		return &Weighted{table: table, costs: costs, rng: rng}, nil
	}
	return nil, fmt.Errorf("%q: %w", name, ErrUnknownStrategy)
}

func sortedByCost(units []defs.UnitType) []defs.UnitType {
	out := append([]defs.UnitType(nil), units...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Cost < out[j].Cost })
	return out
}

// Greedy sends the most expensive unit it can afford right now.
type Greedy struct {
	units []defs.UnitType // по возрастанию стоимости
}

func (b *Greedy) Name() string { return "greedy" }

func (b *Greedy) Choose(s app.Snapshot) (string, bool) {
	for i := len(b.units) - 1; i >= 0; i-- {
		if b.units[i].Cost <= s.Points {
			return b.units[i].ID, true
		}
	}
	return "", false
}

// Swarm sends only the cheapest unit, as soon as it is affordable.
type Swarm struct {
	unit defs.UnitType
}

func (b *Swarm) Name() string { return "swarm" }

func (b *Swarm) Choose(s app.Snapshot) (string, bool) {
	if b.unit.Cost <= s.Points {
		return b.unit.ID, true
	}
	return "", false
}

// Weighted draws the next unit from the spawn table and saves up for it.
type Weighted struct {
	table   defs.SpawnTable
	costs   map[string]float64
	rng     *utils.PRNGService
	pending string
}

func (b *Weighted) Name() string { return "weighted" }

func (b *Weighted) Choose(s app.Snapshot) (string, bool) {
	if b.pending == "" {
		b.pending = b.rng.ChooseWeighted(b.table.Entries)
	}
	if b.costs[b.pending] > s.Points {
		return "", false
	}
	id := b.pending
	b.pending = ""
	return id, true
}

// Player drives a game with a strategy, one decision per Act.
type Player struct {
	strategy Strategy
	spawned  int
}

func NewPlayer(strategy Strategy) *Player {
	return &Player{strategy: strategy}
}

// Act asks the strategy for a unit and sends it.
func (p *Player) Act(g *app.Game) error {
	if g.IsOver() {
		return nil
	}
	id, ok := p.strategy.Choose(g.Snapshot())
	if !ok {
		return nil
	}
	if err := g.SpawnUnit(id); err != nil {
		return fmt.Errorf("%s bot: %w", p.strategy.Name(), err)
	}
	p.spawned++
	return nil
}

func (p *Player) Spawned() int { return p.spawned }
