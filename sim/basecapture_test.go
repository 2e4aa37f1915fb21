package sim

import (
	"testing"

	"github.com/wg-forge/hextanks-client/game"
)

func TestBaseCaptureRoundAwardsEveryTankOnBase(t *testing.T) {
	m := game.NewMap(5, "test", game.MapContent{Base: []game.Cube{{}}})
	bus := game.NewBus()

	awarded := map[int]int{}
	bc := NewBaseCaptureSystem(m, bus, func(ownerID, points int) { awarded[ownerID] += points })
	registry := NewTankRegistry(bus)

	tank := game.NewTank("t1", game.MediumTank, 1, game.Cube{})
	registry.Add(tank)

	bc.Round()
	if awarded[1] != 1 {
		t.Fatalf("awarded[1] = %d, want 1 after one round on a base", awarded[1])
	}
	if tank.Capture.Points != 1 {
		t.Errorf("tank.Capture.Points = %d, want 1", tank.Capture.Points)
	}

	bc.Round()
	if awarded[1] != 2 || tank.Capture.Points != 2 {
		t.Errorf("a second round on base should accrue again: awarded=%d, points=%d", awarded[1], tank.Capture.Points)
	}
}

func TestBaseCaptureTurnResetsWhenOffBase(t *testing.T) {
	m := game.NewMap(5, "test", game.MapContent{Base: []game.Cube{{}}})
	bus := game.NewBus()
	bc := NewBaseCaptureSystem(m, bus, nil)
	registry := NewTankRegistry(bus)

	tank := game.NewTank("t1", game.MediumTank, 1, game.Cube{})
	registry.Add(tank)

	bc.Round()
	if tank.Capture.Points != 1 {
		t.Fatalf("expected one capture point after a round on base, got %d", tank.Capture.Points)
	}

	tank.Position.Current = game.Cube{X: 1, Y: -1, Z: 0}
	bc.Turn("t1")
	if tank.Capture.Points != 0 {
		t.Errorf("leaving the base should reset capture points to 0, got %d", tank.Capture.Points)
	}
}

func TestBaseCaptureTurnLeavesPointsUntouchedWhileOnBase(t *testing.T) {
	m := game.NewMap(5, "test", game.MapContent{Base: []game.Cube{{}}})
	bus := game.NewBus()
	bc := NewBaseCaptureSystem(m, bus, nil)
	registry := NewTankRegistry(bus)

	tank := game.NewTank("t1", game.MediumTank, 1, game.Cube{})
	registry.Add(tank)

	bc.Round()
	bc.Turn("t1")
	if tank.Capture.Points != 1 {
		t.Errorf("turn() should not reset a tank still standing on its base, got %d", tank.Capture.Points)
	}
}

func TestBaseCaptureLockBlocksThreeDistinctOwners(t *testing.T) {
	m := game.NewMap(5, "test", game.MapContent{Base: []game.Cube{{}}})
	bus := game.NewBus()
	awarded := map[int]int{}
	bc := NewBaseCaptureSystem(m, bus, func(ownerID, points int) { awarded[ownerID] += points })
	registry := NewTankRegistry(bus)

	t1 := game.NewTank("t1", game.MediumTank, 1, game.Cube{})
	t2 := game.NewTank("t2", game.MediumTank, 2, game.Cube{})
	t3 := game.NewTank("t3", game.MediumTank, 3, game.Cube{})
	registry.Add(t1)
	registry.Add(t2)
	registry.Add(t3)

	bc.Round()

	if len(awarded) != 0 {
		t.Errorf("three distinct owners contesting a base should earn nobody anything, got %v", awarded)
	}
	if t1.Capture.Points != 0 || t2.Capture.Points != 0 || t3.Capture.Points != 0 {
		t.Error("no tank's capture points should advance during a three-way contest")
	}
}

func TestBaseCaptureAllowsExactlyTwoDistinctOwners(t *testing.T) {
	m := game.NewMap(5, "test", game.MapContent{Base: []game.Cube{{}}})
	bus := game.NewBus()
	awarded := map[int]int{}
	bc := NewBaseCaptureSystem(m, bus, func(ownerID, points int) { awarded[ownerID] += points })
	registry := NewTankRegistry(bus)

	t1 := game.NewTank("t1", game.MediumTank, 1, game.Cube{})
	t2 := game.NewTank("t2", game.MediumTank, 2, game.Cube{})
	registry.Add(t1)
	registry.Add(t2)

	bc.Round()

	if awarded[1] != 1 || awarded[2] != 1 {
		t.Errorf("two distinct owners should both be credited, got %v", awarded)
	}
}
