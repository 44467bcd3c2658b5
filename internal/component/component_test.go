package component

import (
	"image/color"
	"math"
	"testing"

	"go-reverse-td/internal/defs"
)

const tolerance = 1e-9

func scoutType() defs.UnitType {
	return defs.UnitType{ID: "scout", Name: "Seed Runner", Speed: 120, Health: 35, Radius: 10, Cost: 30}
}

func testPath() defs.Path {
	return defs.Path{{X: 40, Y: 560}, {X: 40, Y: 420}, {X: 220, Y: 420}}
}

func TestUnitAdvanceSnapsToWaypoint(t *testing.T) {
	path := testPath()
	u := NewUnit(scoutType(), path.Start(), color.RGBA{})

	d := path[0].DistanceTo(path[1])
	if escaped := u.Advance(path, d/120+0.01); escaped {
		t.Fatal("unit should not escape on the first segment")
	}
	if u.PathIndex != 1 {
		t.Fatalf("PathIndex = %d, want 1", u.PathIndex)
	}
	if math.Abs(u.Position.X-path[1].X) > tolerance || math.Abs(u.Position.Y-path[1].Y) > tolerance {
		t.Fatalf("position = %+v, want waypoint %+v", u.Position, path[1])
	}
}

func TestUnitAdvanceMovesPartially(t *testing.T) {
	path := testPath()
	u := NewUnit(scoutType(), path.Start(), color.RGBA{})

	u.Advance(path, 0.5) // 60 units straight up
	if u.PathIndex != 0 {
		t.Fatalf("PathIndex = %d, want 0", u.PathIndex)
	}
	if math.Abs(u.Position.Y-500) > tolerance || math.Abs(u.Position.X-40) > tolerance {
		t.Fatalf("position = %+v, want (40,500)", u.Position)
	}
}

func TestUnitAdvanceAtMostOneTransitionPerCall(t *testing.T) {
	path := testPath()
	u := NewUnit(scoutType(), path.Start(), color.RGBA{})

	prev := u.PathIndex
	for i := 0; i < 50 && u.Alive; i++ {
		u.Advance(path, 100) // far more than the whole path
		if u.PathIndex < prev || u.PathIndex > prev+1 {
			t.Fatalf("PathIndex jumped from %d to %d", prev, u.PathIndex)
		}
		prev = u.PathIndex
	}
}

func TestUnitZeroDistanceAdvancesIndexWithoutMoving(t *testing.T) {
	path := defs.Path{{X: 10, Y: 10}, {X: 10, Y: 10}, {X: 50, Y: 10}}
	u := NewUnit(scoutType(), path.Start(), color.RGBA{})

	u.Advance(path, 0.01)
	if u.PathIndex != 1 {
		t.Fatalf("PathIndex = %d, want 1", u.PathIndex)
	}
	if u.Position != (Position{X: 10, Y: 10}) {
		t.Fatalf("unit moved to %+v", u.Position)
	}
}

func TestUnitEscapesExactlyOnce(t *testing.T) {
	path := testPath()
	u := NewUnit(scoutType(), path.Start(), color.RGBA{})
	u.PathIndex = len(path) - 1
	u.Position = Position{X: path.Goal().X, Y: path.Goal().Y}

	if !u.Advance(path, 0.016) {
		t.Fatal("unit at the final waypoint should escape")
	}
	if u.Alive {
		t.Fatal("escaped unit must not be alive")
	}
	if u.Advance(path, 0.016) {
		t.Fatal("escape reported twice")
	}
}

func TestUnitTakeDamage(t *testing.T) {
	u := NewUnit(scoutType(), defs.Waypoint{}, color.RGBA{})
	u.TakeDamage(20)
	if !u.Alive || u.Health != 15 {
		t.Fatalf("after 20 damage: alive=%v health=%v", u.Alive, u.Health)
	}
	u.TakeDamage(15)
	if u.Alive {
		t.Fatal("unit at 0 health must die")
	}
}

func TestProjectileHitsStationaryTarget(t *testing.T) {
	target := NewUnit(scoutType(), defs.Waypoint{}, color.RGBA{})
	p := NewProjectile(Position{}, 1, 1000, 15)

	if !p.Advance(target, 0.1) {
		t.Fatal("expected a hit")
	}
	if target.Health != 35-15 {
		t.Fatalf("health = %v, want 20", target.Health)
	}
	if p.Active {
		t.Fatal("projectile should deactivate on impact")
	}
}

func TestProjectileIgnoresDeadTarget(t *testing.T) {
	target := NewUnit(scoutType(), defs.Waypoint{}, color.RGBA{})
	target.TakeDamage(100)
	health := target.Health
	p := NewProjectile(Position{}, 1, 1000, 15)

	if p.Advance(target, 0.1) {
		t.Fatal("dead target must not be hit")
	}
	if target.Health != health {
		t.Fatal("damage applied twice")
	}
	if p.Active {
		t.Fatal("projectile should deactivate")
	}

	p2 := NewProjectile(Position{}, 2, 1000, 15)
	p2.Advance(nil, 0.1)
	if p2.Active {
		t.Fatal("projectile with a vanished target should deactivate")
	}
}

func TestProjectileHomesOnTarget(t *testing.T) {
	target := NewUnit(scoutType(), defs.Waypoint{X: 300, Y: 0}, color.RGBA{})
	p := NewProjectile(Position{}, 1, 100, 10)

	if p.Advance(target, 0.5) {
		t.Fatal("should not hit yet")
	}
	if math.Abs(p.Position.X-50) > tolerance || p.Position.Y != 0 {
		t.Fatalf("position = %+v, want (50,0)", p.Position)
	}

	target.Position = Position{X: 50, Y: 200}
	p.Advance(target, 0.5)
	if math.Abs(p.Position.Y-50) > tolerance || math.Abs(p.Position.X-50) > tolerance {
		t.Fatalf("projectile did not follow the target: %+v", p.Position)
	}
}

func TestProjectileOvershootCountsAsArrival(t *testing.T) {
	target := NewUnit(scoutType(), defs.Waypoint{X: 100, Y: 0}, color.RGBA{})
	p := NewProjectile(Position{}, 1, 1000, 5)
	if !p.Advance(target, 0.1) {
		t.Fatal("travel 100 >= distance 100 should hit")
	}
}

func TestProjectileDefaults(t *testing.T) {
	p := NewProjectile(Position{}, 1, 0, 12)
	if p.Speed != 300 || p.Damage != 12 || p.Radius != 4 {
		t.Fatalf("defaults not applied: %+v", p)
	}
}

func TestTowerZeroDamageOverrideIsKept(t *testing.T) {
	zero := 0.0
	tw := NewTower(defs.TowerPlacement{Options: defs.TowerOptions{Damage: &zero}})
	if tw.Damage != 0 {
		t.Fatalf("resolved tower damage = %v, want 0", tw.Damage)
	}

	target := NewUnit(scoutType(), defs.Waypoint{}, color.RGBA{})
	p := NewProjectile(tw.Position, 1, tw.ProjectileSpeed, tw.Damage)
	if p.Damage != 0 {
		t.Fatalf("projectile damage = %v, want the tower's 0", p.Damage)
	}
	if !p.Advance(target, 0.1) {
		t.Fatal("expected a hit")
	}
	if target.Health != target.MaxHealth || !target.Alive {
		t.Fatalf("harmless hit changed the target: health=%v alive=%v", target.Health, target.Alive)
	}
}

func TestEconomyRegenerate(t *testing.T) {
	e := Economy{Points: 60, Regen: 12, Cap: 200}
	e.Regenerate(1.0)
	if e.Points != 72 {
		t.Fatalf("points = %v, want 72", e.Points)
	}

	e.Points = 195
	e.Regenerate(1.0)
	if e.Points != 200 {
		t.Fatalf("points = %v, want cap 200", e.Points)
	}
}

func TestEconomySpend(t *testing.T) {
	e := Economy{Points: 50, Cap: 200}
	if e.Spend(55) {
		t.Fatal("spent more than available")
	}
	if e.Points != 50 {
		t.Fatal("failed spend changed points")
	}
	if !e.Spend(30) || e.Points != 20 {
		t.Fatalf("spend 30: points = %v", e.Points)
	}
}

func TestTowerCooldown(t *testing.T) {
	tw := NewTower(defs.TowerPlacement{X: 0, Y: 0})
	if !tw.Ready() {
		t.Fatal("new tower should be ready")
	}
	tw.ResetCooldown()
	if math.Abs(tw.Cooldown-1/1.2) > tolerance {
		t.Fatalf("cooldown = %v", tw.Cooldown)
	}
	if _, ok := tw.InRange(Position{X: 180}); !ok {
		t.Error("distance equal to range must be in range")
	}
	if _, ok := tw.InRange(Position{X: 180.5}); ok {
		t.Error("distance beyond range must be out of range")
	}
}

func TestOutcomeString(t *testing.T) {
	if OutcomeVictory.String() != "victory" || OutcomeDefeat.String() != "defeat" || OutcomeNone.String() != "running" {
		t.Fatal("unexpected outcome names")
	}
}
