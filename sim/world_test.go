package sim

import (
	"testing"

	"github.com/go-test/deep"

	"github.com/wg-forge/hextanks-client/game"
)

func TestWorldSyncMaterializesOnlyUnseenTanks(t *testing.T) {
	m := game.NewMap(5, "test", game.MapContent{})
	w := NewWorld(m)
	w.Players.Add(1, "Alice", false)

	w.Sync(GameState{Vehicles: []VehicleState{
		{ID: "t1", Archetype: game.MediumTank, OwnerID: 1, Position: game.Cube{}, SpawnHex: game.Cube{}, Health: 2},
	}})
	if !w.Tanks.Has("t1") {
		t.Fatal("Sync should materialize an unseen tank")
	}

	// Moving the tank, then syncing the same vehicle state again must not
	// reset its position - Sync only creates, it never corrects.
	w.ApplyMove("t1", game.Cube{X: 1, Y: -1, Z: 0})
	w.Sync(GameState{Vehicles: []VehicleState{
		{ID: "t1", Archetype: game.MediumTank, OwnerID: 1, Position: game.Cube{}, SpawnHex: game.Cube{}, Health: 2},
	}})

	if w.Tanks.Get("t1").Position.Current != (game.Cube{X: 1, Y: -1, Z: 0}) {
		t.Error("Sync must not overwrite an existing tank's position")
	}
}

func TestWorldSyncIndexesPlayerTankByArchetype(t *testing.T) {
	m := game.NewMap(5, "test", game.MapContent{})
	w := NewWorld(m)
	w.Players.Add(1, "Alice", false)

	w.Sync(GameState{Vehicles: []VehicleState{
		{ID: "t1", Archetype: game.HeavyTank, OwnerID: 1, Position: game.Cube{}, SpawnHex: game.Cube{}},
	}})

	id, ok := w.Players.Get(1).TankIDFor(game.HeavyTank)
	if !ok || id != "t1" {
		t.Errorf("TankIDFor(HeavyTank) = (%q, %v), want (t1, true)", id, ok)
	}
}

func TestWorldReconcileCorrectsDrift(t *testing.T) {
	m := game.NewMap(5, "test", game.MapContent{})
	w := NewWorld(m)
	w.Players.Add(1, "Alice", false)
	w.Sync(GameState{Vehicles: []VehicleState{
		{ID: "t1", Archetype: game.LightTank, OwnerID: 1, Position: game.Cube{}, SpawnHex: game.Cube{}},
	}})

	corrected := w.Reconcile(GameState{Vehicles: []VehicleState{
		{ID: "t1", Archetype: game.LightTank, OwnerID: 1, Position: game.Cube{X: 1, Y: -1, Z: 0}},
	}})

	if len(corrected) != 1 || corrected[0] != "t1" {
		t.Fatalf("corrected = %v, want [t1]", corrected)
	}
	if w.Tanks.Get("t1").Position.Current != (game.Cube{X: 1, Y: -1, Z: 0}) {
		t.Error("Reconcile should have moved t1 to the snapshot position")
	}
}

func TestWorldApplyShootCreditsKillerOwner(t *testing.T) {
	m := game.NewMap(5, "test", game.MapContent{})
	w := NewWorld(m)
	w.Players.Add(1, "Attacker", false)
	w.Players.Add(2, "Victim", false)

	w.Sync(GameState{Vehicles: []VehicleState{
		{ID: "shooter", Archetype: game.SPG, OwnerID: 1, Position: game.Cube{}, SpawnHex: game.Cube{}, Health: 1},
		{ID: "target", Archetype: game.SPG, OwnerID: 2, Position: game.Cube{X: 3, Y: -1, Z: -2}, SpawnHex: game.Cube{X: 3, Y: -1, Z: -2}, Health: 1},
	}})

	w.ApplyShoot("shooter", game.Cube{X: 3, Y: -1, Z: -2})

	if _, _, alive := w.Health.Current("target"); alive {
		t.Fatal("target should have been destroyed by a 1-damage hit on a 1-HP tank")
	}
	if w.Players.Get(1).DestructionPoints == 0 {
		t.Error("destroying the target should credit the shooter's owner")
	}
}

func TestWorldTurnRunsPositionBonusForOwnersLivingTanks(t *testing.T) {
	m := game.NewMap(5, "test", game.MapContent{Catapult: []game.Cube{{}}})
	w := NewWorld(m)
	w.Players.Add(1, "Alice", false)
	w.Sync(GameState{Vehicles: []VehicleState{
		{ID: "t1", Archetype: game.SPG, OwnerID: 1, Position: game.Cube{}, SpawnHex: game.Cube{}, Health: 1},
	}})

	w.Turn(1)

	if !w.Tanks.Get("t1").Shooting.RangeBonusActive() {
		t.Error("a tank starting its turn on a catapult hex should receive a range bonus")
	}
}

func TestWorldSeedPrimesCatapultUsageBeforeSync(t *testing.T) {
	m := game.NewMap(5, "test", game.MapContent{Catapult: []game.Cube{{X: 2, Y: 0, Z: -2}}})
	w := NewWorld(m)
	w.Players.Add(1, "Alice", false)

	w.Seed(GameState{CatapultUsage: map[game.Cube]int{{X: 2, Y: 0, Z: -2}: 3}})
	w.Sync(GameState{Vehicles: []VehicleState{
		{ID: "t1", Archetype: game.SPG, OwnerID: 1, Position: game.Cube{}, SpawnHex: game.Cube{}, Health: 1},
	}})

	if got := w.Shooting.CatapultUsageAt(game.Cube{X: 2, Y: 0, Z: -2}); got != 3 {
		t.Errorf("CatapultUsageAt = %d, want 3 (seeded before any local activation)", got)
	}
}

func TestWorldSyncPopulatesVehicleStateExactly(t *testing.T) {
	m := game.NewMap(5, "test", game.MapContent{})
	w := NewWorld(m)
	w.Players.Add(1, "Alice", false)

	incoming := VehicleState{
		ID:        "t1",
		Archetype: game.MediumTank,
		OwnerID:   1,
		Position:  game.Cube{X: 1, Y: -1, Z: 0},
		SpawnHex:  game.Cube{X: 1, Y: -1, Z: 0},
		Health:    2,
		Capture:   1,
	}
	w.Sync(GameState{Vehicles: []VehicleState{incoming}})

	tank := w.Tanks.Get("t1")
	got := VehicleState{
		ID:        tank.ID,
		Archetype: tank.Archetype,
		OwnerID:   tank.Owner.PlayerID,
		Position:  tank.Position.Current,
		SpawnHex:  tank.Position.Spawn,
		Health:    tank.Health.Current,
		Capture:   tank.Capture.Points,
	}

	if diff := deep.Equal(got, incoming); diff != nil {
		t.Errorf("materialized tank diverged from the synced snapshot: %v", diff)
	}
}
