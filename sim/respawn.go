package sim

import "github.com/wg-forge/hextanks-client/game"

// RespawnSystem queues destroyed tanks and brings them back at the start of
// their owner's next turn, mirroring the source's TankRespawnSystem: a tank
// does not respawn immediately on death, it waits out the round and returns
// when its owner's turn comes back around.
type RespawnSystem struct {
	bus *game.Bus

	owners  map[string]int
	pending map[int]map[string]struct{}
}

// NewRespawnSystem wires the system to the bus.
func NewRespawnSystem(bus *game.Bus) *RespawnSystem {
	s := &RespawnSystem{
		bus:     bus,
		owners:  make(map[string]int),
		pending: make(map[int]map[string]struct{}),
	}
	bus.Subscribe(game.TankAdded, s.onTankAdded)
	bus.Subscribe(game.TankDestroyed, s.onTankDestroyed)
	return s
}

func (s *RespawnSystem) onTankAdded(payload any) {
	p := payload.(game.TankAddedPayload)
	if p.Tank.Owner == nil {
		return
	}
	s.owners[p.TankID] = p.Tank.Owner.PlayerID
}

func (s *RespawnSystem) onTankDestroyed(payload any) {
	p := payload.(game.TankIDPayload)
	owner, ok := s.owners[p.TankID]
	if !ok {
		return
	}
	if s.pending[owner] == nil {
		s.pending[owner] = make(map[string]struct{})
	}
	s.pending[owner][p.TankID] = struct{}{}
}

// Turn respawns every tank destroyed while waiting for ownerID's turn.
func (s *RespawnSystem) Turn(ownerID int) {
	pending, ok := s.pending[ownerID]
	if !ok {
		return
	}
	for tankID := range pending {
		s.bus.Publish(game.TankRespawned, game.TankIDPayload{TankID: tankID})
	}
	delete(s.pending, ownerID)
}

// Reset clears all system state.
func (s *RespawnSystem) Reset() {
	s.owners = make(map[string]int)
	s.pending = make(map[int]map[string]struct{})
}
