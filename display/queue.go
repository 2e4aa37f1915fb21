package display

import (
	"time"

	channerics "github.com/niceyeti/channerics/channels"

	"github.com/wg-forge/hextanks-client/game"
)

// TankSnapshot is the minimal per-tank state the viewer needs to draw a
// frame: no components, no systems, just a position and a color key.
type TankSnapshot struct {
	ID        string
	Archetype game.Archetype
	Position  game.Cube
	OwnerID   int
	Alive     bool
}

// Update is one board refresh pushed from the simulator side.
type Update struct {
	Tanks []TankSnapshot
}

// Queue is the bounded FIFO between the simulator and the display: the
// simulator never blocks on a slow renderer, and a full queue simply drops
// the oldest pending frame rather than stalling the turn loop.
type Queue struct {
	updates    chan Update
	heartbeat  <-chan time.Time
	stop       chan struct{}
	stopClosed chan struct{}
}

// NewQueue returns a Queue buffering up to capacity pending updates.
func NewQueue(capacity int) *Queue {
	ticker := time.NewTicker(time.Second)
	return &Queue{
		updates:    make(chan Update, capacity),
		heartbeat:  ticker.C,
		stop:       make(chan struct{}),
		stopClosed: make(chan struct{}),
	}
}

// Push enqueues an update, dropping the oldest pending one if the queue is
// already full.
func (q *Queue) Push(u Update) {
	select {
	case q.updates <- u:
	default:
		select {
		case <-q.updates:
		default:
		}
		select {
		case q.updates <- u:
		default:
		}
	}
}

// Stop signals the render loop to exit.
func (q *Queue) Stop() {
	close(q.stop)
}

// merged fans the update stream and a once-per-second heartbeat (so the
// viewer can repaint a still board, e.g. a blinking "waiting for turn"
// indicator, even between real updates) into one channel, stopping when
// Stop is called.
func (q *Queue) merged() <-chan Update {
	heartbeatUpdates := make(chan Update)
	go func() {
		defer close(heartbeatUpdates)
		for {
			select {
			case <-q.stop:
				return
			case <-q.heartbeat:
				select {
				case heartbeatUpdates <- Update{}:
				case <-q.stop:
					return
				}
			}
		}
	}()

	done := make(chan struct{})
	go func() {
		<-q.stop
		close(done)
	}()

	guarded := []<-chan Update{
		channerics.OrDone[Update](done, q.updates),
		channerics.OrDone[Update](done, heartbeatUpdates),
	}
	return channerics.Merge[Update](guarded)
}
