package sim

import "github.com/wg-forge/hextanks-client/game"

// MovementSystem enumerates and applies tank movement. It keeps its own
// mirror of tank positions and occupancy rather than reaching back into the
// registry on every query, the way the source's TankMovementSystem does.
type MovementSystem struct {
	m   *game.Map
	bus *game.Bus

	positions map[string]*game.PositionComponent
	occupancy map[game.Cube]string // current position -> tank id
	spawns    map[game.Cube]string // spawn hex -> owning tank id
}

// NewMovementSystem wires the system to the bus and subscribes to
// TankAdded/TankRespawned.
func NewMovementSystem(m *game.Map, bus *game.Bus) *MovementSystem {
	s := &MovementSystem{
		m:         m,
		bus:       bus,
		positions: make(map[string]*game.PositionComponent),
		occupancy: make(map[game.Cube]string),
		spawns:    make(map[game.Cube]string),
	}
	bus.Subscribe(game.TankAdded, s.onTankAdded)
	bus.Subscribe(game.TankRespawned, s.onTankRespawned)
	return s
}

func (s *MovementSystem) onTankAdded(payload any) {
	p := payload.(game.TankAddedPayload)
	pos := p.Tank.Position
	if pos == nil {
		return
	}
	s.positions[p.TankID] = pos
	s.occupancy[pos.Current] = p.TankID
	s.spawns[pos.Spawn] = p.TankID
}

func (s *MovementSystem) onTankRespawned(payload any) {
	p := payload.(game.TankIDPayload)
	pos, ok := s.positions[p.TankID]
	if !ok {
		return
	}
	s.Move(p.TankID, pos.Spawn)
}

// MovementOptions runs a BFS from the tank's current position out to its
// speed, traversing only non-obstacle hexes, and returns every position that
// is in bounds, unoccupied, and either not any tank's spawn or this tank's
// own spawn.
func (s *MovementSystem) MovementOptions(tankID string) []game.Cube {
	pos, ok := s.positions[tankID]
	if !ok {
		return nil
	}

	type queued struct {
		at   game.Cube
		dist int
	}

	visited := map[game.Cube]struct{}{pos.Current: {}}
	queue := []queued{{at: pos.Current, dist: 0}}
	var result []game.Cube

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		kind := s.m.KindAt(cur.at)
		if !kind.Traversable() {
			continue
		}

		if owner, occupied := s.occupancy[cur.at]; (!occupied || owner == tankID) && cur.at != pos.Current {
			if spawnOwner, isSpawn := s.spawns[cur.at]; !isSpawn || spawnOwner == tankID {
				result = append(result, cur.at)
			}
		}

		if cur.dist+1 > pos.Speed {
			continue
		}
		for _, dir := range game.Directions() {
			next := cur.at.Add(dir)
			if _, seen := visited[next]; seen {
				continue
			}
			if !game.InBounds(next, s.m.Size()) {
				continue
			}
			visited[next] = struct{}{}
			queue = append(queue, queued{at: next, dist: cur.dist + 1})
		}
	}

	return result
}

// Move relocates tankID to newPosition, updates occupancy, and publishes
// TankMoved. Callers are expected to have obtained newPosition from
// MovementOptions (or an equivalent server-reported move).
func (s *MovementSystem) Move(tankID string, newPosition game.Cube) {
	pos, ok := s.positions[tankID]
	if !ok {
		return
	}
	delete(s.occupancy, pos.Current)
	pos.Current = newPosition
	s.occupancy[newPosition] = tankID
	s.bus.Publish(game.TankMoved, game.TankMovedPayload{TankID: tankID, NewPosition: newPosition})
}

// OccupantAt returns the tank id occupying c, if any.
func (s *MovementSystem) OccupantAt(c game.Cube) (string, bool) {
	id, ok := s.occupancy[c]
	return id, ok
}

// Reset clears all system state.
func (s *MovementSystem) Reset() {
	s.positions = make(map[string]*game.PositionComponent)
	s.occupancy = make(map[game.Cube]string)
	s.spawns = make(map[game.Cube]string)
}
