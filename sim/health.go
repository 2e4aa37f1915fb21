package sim

import "github.com/wg-forge/hextanks-client/game"

type healthState struct {
	current int
	max     int
	alive   bool
}

// HealthSystem tracks current/max HP per tank, applies damage, and emits
// TankDestroyed the moment a tank reaches zero.
type HealthSystem struct {
	bus *game.Bus

	tanks map[string]*healthState
}

// NewHealthSystem wires the system to the bus.
func NewHealthSystem(bus *game.Bus) *HealthSystem {
	s := &HealthSystem{bus: bus, tanks: make(map[string]*healthState)}
	bus.Subscribe(game.TankAdded, s.onTankAdded)
	bus.Subscribe(game.TankShot, s.onTankShot)
	bus.Subscribe(game.TankRespawned, s.onTankRespawned)
	bus.Subscribe(game.TankRepaired, s.onTankRepaired)
	return s
}

func (s *HealthSystem) onTankAdded(payload any) {
	p := payload.(game.TankAddedPayload)
	if p.Tank.Health == nil {
		return
	}
	s.tanks[p.TankID] = &healthState{current: p.Tank.Health.Current, max: p.Tank.Health.Max, alive: p.Tank.Alive}
}

func (s *HealthSystem) onTankShot(payload any) {
	p := payload.(game.TankShotPayload)
	st, ok := s.tanks[p.TankID]
	if !ok || !st.alive {
		return
	}
	st.current -= p.Damage
	if st.current <= 0 {
		st.current = 0
		st.alive = false
		s.bus.Publish(game.TankDestroyed, game.TankIDPayload{TankID: p.TankID})
	}
}

func (s *HealthSystem) onTankRespawned(payload any) {
	p := payload.(game.TankIDPayload)
	if st, ok := s.tanks[p.TankID]; ok {
		st.current = st.max
		st.alive = true
	}
}

func (s *HealthSystem) onTankRepaired(payload any) {
	p := payload.(game.TankIDPayload)
	st, ok := s.tanks[p.TankID]
	if !ok || !st.alive {
		return
	}
	st.current = st.max
}

// Current returns a tank's current/max HP and whether it's alive.
func (s *HealthSystem) Current(tankID string) (current, max int, alive bool) {
	st, ok := s.tanks[tankID]
	if !ok {
		return 0, 0, false
	}
	return st.current, st.max, st.alive
}

// Reset clears all system state.
func (s *HealthSystem) Reset() {
	s.tanks = make(map[string]*healthState)
}
