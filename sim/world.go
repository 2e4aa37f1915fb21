package sim

import "github.com/wg-forge/hextanks-client/game"

// VehicleState is the per-tank slice of a server GameState snapshot: just
// enough to materialize a tank lazily and detect drift from the local
// mirror.
type VehicleState struct {
	ID         string
	Archetype  game.Archetype
	OwnerID    int
	Position   game.Cube
	SpawnHex   game.Cube
	Health     int
	Capture    int
}

// GameState is the subset of a server snapshot that Sync/Reconcile care
// about: the current vehicles and the two contention tables that live
// outside any single tank.
type GameState struct {
	Vehicles      []VehicleState
	AttackMatrix  map[int][]int
	CatapultUsage map[game.Cube]int
}

// World is the facade that sequences every system: it owns the bus, the map,
// the registries, and the per-turn/per-round orchestration the transport
// layer drives from incoming server messages.
type World struct {
	Bus *game.Bus
	Map *game.Map

	Tanks   *TankRegistry
	Players *PlayerRegistry

	Movement      *MovementSystem
	Shooting      *ShootingSystem
	Health        *HealthSystem
	Respawn       *RespawnSystem
	PositionBonus *PositionBonusSystem
	BaseCapture   *BaseCaptureSystem

	offsets game.PathingOffsets

	// pendingKillers maps a victim tank id to the owner id of whoever last
	// shot it, set by ApplyShoot just before the shooting system may emit
	// TankDestroyed - needed to credit a destruction to the right player,
	// since TankDestroyed itself carries only the victim's id.
	pendingKillers map[string]int
}

// NewWorld builds a World over m, wiring every system to a shared bus.
func NewWorld(m *game.Map) *World {
	bus := game.NewBus()
	offsets := game.BuildPathingOffsets(m.Size())
	players := NewPlayerRegistry()

	w := &World{
		Bus:            bus,
		Map:            m,
		Tanks:          NewTankRegistry(bus),
		Players:        players,
		offsets:        offsets,
		pendingKillers: make(map[string]int),
	}

	// Subscribed before any system so pendingKillers is populated before
	// HealthSystem's own TankShot handler can turn around and publish
	// TankDestroyed from inside the same dispatch.
	bus.Subscribe(game.TankShot, w.onTankShot)
	bus.Subscribe(game.TankDestroyed, w.onTankDestroyed)

	w.Movement = NewMovementSystem(m, bus)
	w.Shooting = NewShootingSystem(m, bus, offsets, nil, nil)
	w.Health = NewHealthSystem(bus)
	w.Respawn = NewRespawnSystem(bus)
	w.PositionBonus = NewPositionBonusSystem(m, bus)
	w.BaseCapture = NewBaseCaptureSystem(m, bus, players.AwardCapture)

	return w
}

// Seed primes the contention tables the shooting system otherwise only
// builds up from locally observed shots - useful when a client joins (or
// reconnects to) a game already in progress and the first snapshot carries
// history this mirror never saw.
func (w *World) Seed(state GameState) {
	w.Shooting.Reset(state.AttackMatrix, state.CatapultUsage)
}

func (w *World) onTankShot(payload any) {
	p := payload.(game.TankShotPayload)
	w.pendingKillers[p.TankID] = p.ShooterOwner
}

func (w *World) onTankDestroyed(payload any) {
	p := payload.(game.TankIDPayload)
	tank := w.Tanks.Get(p.TankID)
	if tank == nil || tank.Reward == nil {
		return
	}
	if killer, ok := w.pendingKillers[p.TankID]; ok {
		w.Players.AwardDestruction(killer, tank.Reward.Points)
		delete(w.pendingKillers, p.TankID)
	}
}

// ApplyMove moves tankID to newPosition. No position bonus is granted here;
// the new hex's repair or catapult bonus is checked at the owner's next Turn.
func (w *World) ApplyMove(tankID string, newPosition game.Cube) {
	w.Movement.Move(tankID, newPosition)
}

// ApplyShoot resolves tankID firing at targetPosition, crediting any
// resulting destruction to tankID's owner via the TankShot event's
// ShooterOwner field.
func (w *World) ApplyShoot(tankID string, targetPosition game.Cube) {
	w.Shooting.ApplyShot(tankID, targetPosition)
}

// Turn runs the start-of-turn systems for every tank owned by ownerID:
// respawn queued destructions, clear the owner's attack-matrix row, then
// apply position bonuses and the base-capture turn step (resetting capture
// points off a Base) for whichever of the owner's tanks are alive.
func (w *World) Turn(ownerID int) {
	w.Respawn.Turn(ownerID)
	w.Shooting.Turn(ownerID)

	player := w.Players.Get(ownerID)
	if player == nil {
		return
	}
	for _, tankID := range player.Tanks() {
		tank := w.Tanks.Get(tankID)
		if tank == nil || !tank.Alive {
			continue
		}
		w.PositionBonus.Turn(tankID)
		w.BaseCapture.Turn(tankID)
	}
}

// Round runs the base-capture round step (§4.G/§4.I): unlike Turn, this
// isn't scoped to one player's tanks, since the ≤2-distinct-owners rule
// needs every tank currently on a Base to decide who, if anyone, is
// credited. Callers run it once per round, not once per turn.
func (w *World) Round() {
	w.BaseCapture.Round()
}

// Sync materializes any tank present in state.Vehicles that the local
// mirror has not seen yet. Existing tanks are left untouched - Sync never
// corrects drift, that's Reconcile's job.
func (w *World) Sync(state GameState) {
	for _, v := range state.Vehicles {
		if w.Tanks.Has(v.ID) {
			continue
		}
		tank := game.NewTank(v.ID, v.Archetype, v.OwnerID, v.SpawnHex)
		tank.Position.Current = v.Position
		tank.Health.Current = v.Health
		tank.Capture.Points = v.Capture
		w.Tanks.Add(tank)

		if player := w.Players.Get(v.OwnerID); player != nil {
			player.SetTankID(v.Archetype, v.ID)
		}
	}
}

// Reconcile compares the local mirror's tank positions against an incoming
// snapshot and corrects any that have drifted, returning the ids that
// needed correction so the caller can log or count them.
func (w *World) Reconcile(state GameState) []string {
	var corrected []string
	for _, v := range state.Vehicles {
		tank := w.Tanks.Get(v.ID)
		if tank == nil || tank.Position == nil {
			continue
		}
		if tank.Position.Current != v.Position {
			w.Movement.Move(v.ID, v.Position)
			corrected = append(corrected, v.ID)
		}
	}
	return corrected
}

// Reset rebuilds the World from scratch, as if freshly constructed, while
// keeping the same map, bus and pathing table.
func (w *World) Reset() {
	w.Tanks.Reset()
	w.Players.Reset()
	w.Movement.Reset()
	w.Shooting.Reset(nil, nil)
	w.Health.Reset()
	w.Respawn.Reset()
	w.PositionBonus.Reset()
	w.BaseCapture.Reset()
	w.pendingKillers = make(map[string]int)
}
