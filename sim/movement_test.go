package sim

import (
	"testing"

	"github.com/wg-forge/hextanks-client/game"
)

func newTestMap() *game.Map {
	return game.NewMap(5, "test", game.MapContent{
		Obstacle: []game.Cube{{X: 1, Y: 0, Z: -1}},
	})
}

func TestMovementOptionsRespectsSpeedAndObstacles(t *testing.T) {
	m := newTestMap()
	bus := game.NewBus()
	movement := NewMovementSystem(m, bus)
	registry := NewTankRegistry(bus)

	tank := game.NewTank("t1", game.MediumTank, 1, game.Cube{})
	registry.Add(tank)

	options := movement.MovementOptions("t1")
	if len(options) == 0 {
		t.Fatal("expected at least one movement option")
	}
	for _, opt := range options {
		if opt == (game.Cube{X: 1, Y: 0, Z: -1}) {
			t.Error("obstacle hex must not be a movement option")
		}
		if opt == tank.Position.Current {
			t.Error("current position must not be its own movement option")
		}
		if game.Distance(game.Cube{}, opt) > tank.Position.Speed {
			t.Errorf("option %v exceeds speed %d", opt, tank.Position.Speed)
		}
	}
}

func TestMovementOptionsExcludesOccupiedHex(t *testing.T) {
	m := newTestMap()
	bus := game.NewBus()
	movement := NewMovementSystem(m, bus)
	registry := NewTankRegistry(bus)

	mover := game.NewTank("mover", game.LightTank, 1, game.Cube{})
	blocker := game.NewTank("blocker", game.LightTank, 2, game.Cube{X: 1, Y: -1, Z: 0})
	registry.Add(mover)
	registry.Add(blocker)

	for _, opt := range movement.MovementOptions("mover") {
		if opt == (game.Cube{X: 1, Y: -1, Z: 0}) {
			t.Error("occupied hex must not be a movement option")
		}
	}
}

func TestMoveUpdatesOccupancyAndPublishesEvent(t *testing.T) {
	m := newTestMap()
	bus := game.NewBus()
	movement := NewMovementSystem(m, bus)
	registry := NewTankRegistry(bus)

	tank := game.NewTank("t1", game.HeavyTank, 1, game.Cube{})
	registry.Add(tank)

	var gotEvent game.TankMovedPayload
	bus.Subscribe(game.TankMoved, func(payload any) {
		gotEvent = payload.(game.TankMovedPayload)
	})

	dest := game.Cube{X: 0, Y: -1, Z: 1}
	movement.Move("t1", dest)

	if gotEvent.NewPosition != dest {
		t.Errorf("TankMoved payload = %v, want %v", gotEvent.NewPosition, dest)
	}
	if occupant, ok := movement.OccupantAt(dest); !ok || occupant != "t1" {
		t.Errorf("occupancy at %v = (%q, %v), want (\"t1\", true)", dest, occupant, ok)
	}
	if _, stillOccupied := movement.OccupantAt(game.Cube{}); stillOccupied {
		t.Error("old position should be vacated after a move")
	}
}
