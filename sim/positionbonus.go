package sim

import "github.com/wg-forge/hextanks-client/game"

type bonusState struct {
	position  game.Cube
	archetype game.Archetype
}

// PositionBonusSystem grants the terrain-based bonuses of §4: a repair tick
// when a tank's turn starts on the repair hex matching its archetype, and a
// range bonus when it starts on a catapult hex. It only decides eligibility;
// HealthSystem and ShootingSystem own the actual effect and the catapult's
// per-hex cap.
type PositionBonusSystem struct {
	m   *game.Map
	bus *game.Bus

	tanks map[string]*bonusState
}

// NewPositionBonusSystem wires the system to the bus.
func NewPositionBonusSystem(m *game.Map, bus *game.Bus) *PositionBonusSystem {
	s := &PositionBonusSystem{m: m, bus: bus, tanks: make(map[string]*bonusState)}
	bus.Subscribe(game.TankAdded, s.onTankAdded)
	bus.Subscribe(game.TankMoved, s.onTankMoved)
	return s
}

func (s *PositionBonusSystem) onTankAdded(payload any) {
	p := payload.(game.TankAddedPayload)
	if p.Tank.Position == nil {
		return
	}
	s.tanks[p.TankID] = &bonusState{position: p.Tank.Position.Current, archetype: p.Tank.Archetype}
}

func (s *PositionBonusSystem) onTankMoved(payload any) {
	p := payload.(game.TankMovedPayload)
	if st, ok := s.tanks[p.TankID]; ok {
		st.position = p.NewPosition
	}
}

// Turn checks tankID's current hex and publishes the bonus it grants, if
// any. Called once per tank at the start of its turn.
func (s *PositionBonusSystem) Turn(tankID string) {
	st, ok := s.tanks[tankID]
	if !ok {
		return
	}

	kind := s.m.KindAt(st.position)
	switch kind {
	case game.Catapult:
		s.bus.Publish(game.TankRangeBonus, game.TankIDPayload{TankID: tankID})
	case game.LightRepair, game.HardRepair:
		if repairKind, ok := game.RepairKindFor(st.archetype); ok && repairKind == kind {
			s.bus.Publish(game.TankRepaired, game.TankIDPayload{TankID: tankID})
		}
	}
}

// Reset clears all system state.
func (s *PositionBonusSystem) Reset() {
	s.tanks = make(map[string]*bonusState)
}
