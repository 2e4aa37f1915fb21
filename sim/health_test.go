package sim

import (
	"testing"

	"github.com/wg-forge/hextanks-client/game"
)

func TestHealthSystemDestroysOnLethalDamage(t *testing.T) {
	bus := game.NewBus()
	health := NewHealthSystem(bus)
	registry := NewTankRegistry(bus)

	tank := game.NewTank("t1", game.LightTank, 1, game.Cube{})
	registry.Add(tank)

	destroyed := false
	bus.Subscribe(game.TankDestroyed, func(payload any) {
		destroyed = true
	})

	bus.Publish(game.TankShot, game.TankShotPayload{TankID: "t1", Damage: 1, ShooterOwner: 2})

	if !destroyed {
		t.Fatal("expected TankDestroyed after lethal damage")
	}
	current, _, alive := health.Current("t1")
	if alive {
		t.Error("tank should not be alive after lethal damage")
	}
	if current != 0 {
		t.Errorf("current HP = %d, want 0", current)
	}
}

func TestHealthSystemSurvivesNonLethalDamage(t *testing.T) {
	bus := game.NewBus()
	health := NewHealthSystem(bus)
	registry := NewTankRegistry(bus)

	tank := game.NewTank("t1", game.HeavyTank, 1, game.Cube{})
	registry.Add(tank)

	bus.Publish(game.TankShot, game.TankShotPayload{TankID: "t1", Damage: 1, ShooterOwner: 2})

	current, max, alive := health.Current("t1")
	if !alive {
		t.Fatal("heavy tank should survive one point of damage")
	}
	if current != max-1 {
		t.Errorf("current HP = %d, want %d", current, max-1)
	}
}

func TestHealthSystemRespawnRestoresFullHealth(t *testing.T) {
	bus := game.NewBus()
	health := NewHealthSystem(bus)
	registry := NewTankRegistry(bus)

	tank := game.NewTank("t1", game.MediumTank, 1, game.Cube{})
	registry.Add(tank)

	bus.Publish(game.TankShot, game.TankShotPayload{TankID: "t1", Damage: 1, ShooterOwner: 2})
	bus.Publish(game.TankRespawned, game.TankIDPayload{TankID: "t1"})

	current, max, alive := health.Current("t1")
	if !alive || current != max {
		t.Errorf("after respawn: current=%d max=%d alive=%v", current, max, alive)
	}
}

func TestHealthSystemRepairCapsAtMax(t *testing.T) {
	bus := game.NewBus()
	health := NewHealthSystem(bus)
	registry := NewTankRegistry(bus)

	tank := game.NewTank("t1", game.HeavyTank, 1, game.Cube{})
	registry.Add(tank)

	bus.Publish(game.TankRepaired, game.TankIDPayload{TankID: "t1"})

	current, max, _ := health.Current("t1")
	if current != max {
		t.Errorf("repairing an already-full tank should cap at max, got %d/%d", current, max)
	}
}

func TestHealthSystemRepairResetsToMaxRegardlessOfDamage(t *testing.T) {
	bus := game.NewBus()
	health := NewHealthSystem(bus)
	registry := NewTankRegistry(bus)

	tank := game.NewTank("t1", game.HeavyTank, 1, game.Cube{})
	registry.Add(tank)

	_, max, _ := health.Current("t1")
	bus.Publish(game.TankShot, game.TankShotPayload{TankID: "t1", Damage: max - 1})
	if current, _, _ := health.Current("t1"); current != 1 {
		t.Fatalf("expected the tank to be left at 1 HP, got %d", current)
	}

	bus.Publish(game.TankRepaired, game.TankIDPayload{TankID: "t1"})

	current, _, alive := health.Current("t1")
	if current != max || !alive {
		t.Errorf("repair should reset health straight to max, got %d/%d (alive=%v)", current, max, alive)
	}
}
