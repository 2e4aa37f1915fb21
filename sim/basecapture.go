package sim

import "github.com/wg-forge/hextanks-client/game"

// captureState holds live pointers into a tank's own components, the way
// TankSystems/BaseCaptureSystem.py holds a reference to the tank's capture
// component rather than a copy of it - position and capture points are
// always read and written through the same object MovementSystem/the
// registry mutate.
type captureState struct {
	position *game.PositionComponent
	capture  *game.CaptureComponent
	owner    int
}

// BaseCaptureSystem implements the base-capture scoring of §4.G: turn()
// resets any tank not currently standing on a Base hex to zero capture
// points; round() grants +1 to every tank currently on a Base, but only if
// the set of distinct owners occupying Base hexes right now has
// cardinality <=2 - a three-way contest earns nobody anything.
type BaseCaptureSystem struct {
	bus *game.Bus
	m   *game.Map

	tanks map[string]*captureState

	awardFn func(ownerID int, points int)
}

// NewBaseCaptureSystem wires the system to the bus. awardFn is invoked with
// the capture points a tank's owner earns each time round() credits it.
func NewBaseCaptureSystem(m *game.Map, bus *game.Bus, awardFn func(ownerID int, points int)) *BaseCaptureSystem {
	s := &BaseCaptureSystem{
		m:       m,
		bus:     bus,
		tanks:   make(map[string]*captureState),
		awardFn: awardFn,
	}
	bus.Subscribe(game.TankAdded, s.onTankAdded)
	return s
}

func (s *BaseCaptureSystem) onTankAdded(payload any) {
	p := payload.(game.TankAddedPayload)
	if p.Tank.Position == nil || p.Tank.Owner == nil || p.Tank.Capture == nil {
		return
	}
	s.tanks[p.TankID] = &captureState{
		position: p.Tank.Position,
		capture:  p.Tank.Capture,
		owner:    p.Tank.Owner.PlayerID,
	}
}

// Turn resets tankID's capture points to zero unless it is currently
// standing on a Base hex. Called once per tank at the start of its turn.
func (s *BaseCaptureSystem) Turn(tankID string) {
	st, ok := s.tanks[tankID]
	if !ok {
		return
	}
	if s.m.KindAt(st.position.Current) != game.Base {
		st.capture.Points = 0
	}
}

// Round runs the base-capture round step. Called once per round, not once
// per turn.
func (s *BaseCaptureSystem) Round() {
	owners, capturing := s.capturingTanks()
	if len(owners) > 2 {
		return
	}
	for _, st := range capturing {
		st.capture.Points++
		if s.awardFn != nil {
			s.awardFn(st.owner, 1)
		}
	}
}

// capturingTanks returns the distinct owner ids and the capture states of
// every tank currently standing on a Base hex.
func (s *BaseCaptureSystem) capturingTanks() (map[int]struct{}, []*captureState) {
	owners := make(map[int]struct{})
	var capturing []*captureState
	for _, st := range s.tanks {
		if s.m.KindAt(st.position.Current) == game.Base {
			capturing = append(capturing, st)
			owners[st.owner] = struct{}{}
		}
	}
	return owners, capturing
}

// Reset clears all system state.
func (s *BaseCaptureSystem) Reset() {
	s.tanks = make(map[string]*captureState)
}
