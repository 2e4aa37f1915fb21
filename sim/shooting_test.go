package sim

import (
	"testing"

	"github.com/wg-forge/hextanks-client/game"
)

func newShootingFixture() (*game.Bus, *game.Map, *ShootingSystem, *TankRegistry) {
	m := game.NewMap(5, "test", game.MapContent{})
	bus := game.NewBus()
	offsets := game.BuildPathingOffsets(m.Size())
	shooting := NewShootingSystem(m, bus, offsets, nil, nil)
	registry := NewTankRegistry(bus)
	return bus, m, shooting, registry
}

func TestCurvedShootingOptionsWithinRange(t *testing.T) {
	_, _, shooting, registry := newShootingFixture()

	spg := game.NewTank("spg", game.SPG, 1, game.Cube{})
	enemy := game.NewTank("enemy", game.MediumTank, 2, game.Cube{X: 3, Y: -1, Z: -2})
	registry.Add(spg)
	registry.Add(enemy)

	if game.Distance(spg.Position.Current, enemy.Position.Current) != 3 {
		t.Fatalf("fixture distance = %d, want 3", game.Distance(spg.Position.Current, enemy.Position.Current))
	}

	options := shooting.ShootingOptions("spg")
	if len(options) != 1 {
		t.Fatalf("want 1 shooting option at range 3, got %d", len(options))
	}
	if options[0].TankIDs[0] != "enemy" {
		t.Errorf("target = %q, want enemy", options[0].TankIDs[0])
	}
}

func TestCanAttackBlocksSameOwner(t *testing.T) {
	_, _, shooting, registry := newShootingFixture()

	spg := game.NewTank("spg", game.SPG, 1, game.Cube{})
	ally := game.NewTank("ally", game.MediumTank, 1, game.Cube{X: 3, Y: -1, Z: -2})
	registry.Add(spg)
	registry.Add(ally)

	if options := shooting.ShootingOptions("spg"); len(options) != 0 {
		t.Errorf("should not be able to target own-owner tanks, got %d options", len(options))
	}
}

func TestNeutralityRuleBlocksThirdPartyAfterAttack(t *testing.T) {
	_, _, shooting, registry := newShootingFixture()

	attacker := game.NewTank("attacker", game.AntiTankSPG, 1, game.Cube{})
	victim := game.NewTank("victim", game.MediumTank, 2, game.Cube{X: 1, Y: 0, Z: -1})
	bystander := game.NewTank("bystander", game.HeavyTank, 3, game.Cube{X: 1, Y: -1, Z: 0})
	registry.Add(attacker)
	registry.Add(victim)
	registry.Add(bystander)

	shooting.ApplyShot("attacker", victim.Position.Current)

	if !shooting.canAttack(2, "attacker", 1) {
		t.Error("victim should be allowed to retaliate against its attacker")
	}
	if shooting.canAttack(3, "victim", 2) {
		t.Error("a third player should not be able to pile onto an already-attacked tank")
	}
}

func TestApplyShotConsumesRangeBonus(t *testing.T) {
	_, _, shooting, registry := newShootingFixture()

	spg := game.NewTank("spg", game.SPG, 1, game.Cube{})
	enemy := game.NewTank("enemy", game.MediumTank, 2, game.Cube{X: 3, Y: -1, Z: -2})
	registry.Add(spg)
	registry.Add(enemy)

	game.AddRangeBonus(spg.Shooting)
	if !spg.Shooting.RangeBonusActive() {
		t.Fatal("range bonus should be active after AddRangeBonus")
	}

	shooting.ApplyShot("spg", enemy.Position.Current)

	if spg.Shooting.RangeBonusActive() {
		t.Error("range bonus should be consumed after firing")
	}
}

func TestRankTargetsEmptyOptions(t *testing.T) {
	_, _, shooting, _ := newShootingFixture()
	pos, rank := shooting.RankTargets(nil)
	if pos != (game.Cube{}) || rank != -1 {
		t.Errorf("RankTargets(nil) = (%v, %d), want ({}, -1)", pos, rank)
	}
}

func TestRankTargetsPrefersMultiHit(t *testing.T) {
	_, _, shooting, registry := newShootingFixture()

	atSpg := game.NewTank("atspg", game.AntiTankSPG, 1, game.Cube{})
	t1 := game.NewTank("t1", game.LightTank, 2, game.Cube{X: 1, Y: -1, Z: 0})
	t2 := game.NewTank("t2", game.LightTank, 2, game.Cube{X: 2, Y: -2, Z: 0})
	t3 := game.NewTank("t3", game.LightTank, 2, game.Cube{X: -1, Y: 1, Z: 0})
	registry.Add(atSpg)
	registry.Add(t1)
	registry.Add(t2)
	registry.Add(t3)

	options := shooting.ShootingOptions("atspg")
	pos, rank := shooting.RankTargets(options)
	if rank < 0 {
		t.Fatal("expected a positive rank for a nonempty option list")
	}
	if pos == (game.Cube{}) {
		t.Error("expected a concrete target position")
	}
	if pos != (game.Cube{X: 1, Y: -1, Z: 0}) || rank != 2 {
		t.Errorf("RankTargets = (%v, %d), want the two-hit ray ({1 -1 0}, 2) over the one-hit ray", pos, rank)
	}
}
