package display

import (
	"testing"
	"time"

	"github.com/wg-forge/hextanks-client/game"
)

func TestQueuePushDropsOldestWhenFull(t *testing.T) {
	q := NewQueue(1)
	defer q.Stop()

	q.Push(Update{Tanks: []TankSnapshot{{ID: "first"}}})
	q.Push(Update{Tanks: []TankSnapshot{{ID: "second"}}})

	select {
	case got := <-q.updates:
		if len(got.Tanks) != 1 || got.Tanks[0].ID != "second" {
			t.Fatalf("expected the newer update to survive, got %+v", got)
		}
	default:
		t.Fatal("expected one buffered update")
	}
}

func TestQueueMergedDeliversPushedUpdates(t *testing.T) {
	q := NewQueue(4)
	defer q.Stop()

	merged := q.merged()
	q.Push(Update{Tanks: []TankSnapshot{{ID: "tank-1", OwnerID: 2}}})

	select {
	case u := <-merged:
		if len(u.Tanks) != 1 || u.Tanks[0].ID != "tank-1" {
			t.Fatalf("unexpected update: %+v", u)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for merged update")
	}
}

func TestQueueMergedStopsOnStop(t *testing.T) {
	q := NewQueue(1)
	merged := q.merged()
	q.Stop()

	select {
	case _, ok := <-merged:
		if ok {
			t.Fatal("expected merged channel to be closed, got a value instead")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for merged channel to close")
	}
}

func TestHexCenterOriginMapsToViewportCenter(t *testing.T) {
	x, y := hexCenter(game.Cube{}, 960, 720)
	if x != 480 || y != 360 {
		t.Fatalf("expected the zero hex to sit at the viewport center, got (%v, %v)", x, y)
	}
}

func TestHexCenterSeparatesNeighbors(t *testing.T) {
	a := game.Cube{X: 0, Y: 0, Z: 0}
	b := game.Cube{X: 1, Y: -1, Z: 0}

	ax, ay := hexCenter(a, 960, 720)
	bx, by := hexCenter(b, 960, 720)
	if ax == bx && ay == by {
		t.Fatal("expected neighboring hexes to map to distinct pixel centers")
	}
}
