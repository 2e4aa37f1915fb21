package sim

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/wg-forge/hextanks-client/game"
)

// ShootingOption is one legal target for a shot: the hex to fire at, and the
// tank id(s) that shot would hit.
type ShootingOption struct {
	Target  game.Cube
	TankIDs []string
}

type shooterState struct {
	position game.Cube
	owner    int
	shooting game.Shooting
	alive    bool
}

// shootableCacheKey is the cache key for the shootable-positions LRU: the
// attack geometry only depends on the shooter's archetype, position, and
// whether its range bonus is currently active, so results are safe to share
// across tanks of the same archetype at the same hex.
type shootableCacheKey struct {
	archetype game.Archetype
	position  game.Cube
	bonus     bool
}

// ShootingSystem keeps a local mirror of every tank's shooting-relevant
// state, the attack matrix, and catapult usage, and answers the
// eligibility/targeting queries the bot and the World rely on.
type ShootingSystem struct {
	m   *game.Map
	bus *game.Bus

	tanks     map[string]*shooterState
	occupancy map[game.Cube]string

	attackMatrix  map[int]map[int]struct{}
	catapultUsage map[game.Cube]int

	offsets game.PathingOffsets

	shootableCache *lru.Cache[shootableCacheKey, []game.Cube]
}

// NewShootingSystem builds a shooting system over the given map, seeded from
// the server's attack-matrix and catapult-usage snapshots.
func NewShootingSystem(m *game.Map, bus *game.Bus, offsets game.PathingOffsets, attackMatrix map[int][]int, catapultUsage map[game.Cube]int) *ShootingSystem {
	cache, _ := lru.New[shootableCacheKey, []game.Cube](4096)
	s := &ShootingSystem{
		m:              m,
		bus:            bus,
		tanks:          make(map[string]*shooterState),
		occupancy:      make(map[game.Cube]string),
		offsets:        offsets,
		shootableCache: cache,
	}
	s.seedAttackMatrix(attackMatrix)
	s.seedCatapultUsage(catapultUsage)

	bus.Subscribe(game.TankAdded, s.onTankAdded)
	bus.Subscribe(game.TankMoved, s.onTankMoved)
	bus.Subscribe(game.TankDestroyed, s.onTankDestroyed)
	bus.Subscribe(game.TankRespawned, s.onTankRespawned)
	bus.Subscribe(game.TankRangeBonus, s.onRangeBonus)
	return s
}

func (s *ShootingSystem) seedAttackMatrix(attackMatrix map[int][]int) {
	s.attackMatrix = make(map[int]map[int]struct{})
	for owner, attacked := range attackMatrix {
		set := make(map[int]struct{}, len(attacked))
		for _, a := range attacked {
			set[a] = struct{}{}
		}
		s.attackMatrix[owner] = set
	}
}

func (s *ShootingSystem) seedCatapultUsage(usage map[game.Cube]int) {
	s.catapultUsage = make(map[game.Cube]int, len(usage))
	for hex, count := range usage {
		s.catapultUsage[hex] = count
	}
}

func (s *ShootingSystem) ensureOwnerRow(owner int) {
	if _, ok := s.attackMatrix[owner]; !ok {
		s.attackMatrix[owner] = make(map[int]struct{})
	}
}

func (s *ShootingSystem) onTankAdded(payload any) {
	p := payload.(game.TankAddedPayload)
	if p.Tank.Shooting == nil || p.Tank.Position == nil || p.Tank.Owner == nil {
		return
	}
	s.tanks[p.TankID] = &shooterState{
		position: p.Tank.Position.Current,
		owner:    p.Tank.Owner.PlayerID,
		shooting: p.Tank.Shooting,
		alive:    true,
	}
	s.occupancy[p.Tank.Position.Current] = p.TankID
	s.ensureOwnerRow(p.Tank.Owner.PlayerID)
}

func (s *ShootingSystem) onTankMoved(payload any) {
	p := payload.(game.TankMovedPayload)
	st, ok := s.tanks[p.TankID]
	if !ok {
		return
	}
	delete(s.occupancy, st.position)
	st.position = p.NewPosition
	s.occupancy[p.NewPosition] = p.TankID
}

func (s *ShootingSystem) onTankDestroyed(payload any) {
	p := payload.(game.TankIDPayload)
	if st, ok := s.tanks[p.TankID]; ok {
		st.alive = false
	}
}

func (s *ShootingSystem) onTankRespawned(payload any) {
	p := payload.(game.TankIDPayload)
	if st, ok := s.tanks[p.TankID]; ok {
		st.alive = true
	}
}

func (s *ShootingSystem) onRangeBonus(payload any) {
	p := payload.(game.TankIDPayload)
	st, ok := s.tanks[p.TankID]
	if !ok {
		return
	}
	if st.shooting.RangeBonusActive() {
		return
	}
	used := s.catapultUsage[st.position]
	if used >= 3 {
		return
	}
	s.catapultUsage[st.position] = used + 1
	game.AddRangeBonus(st.shooting)
}

// canAttack implements the neutrality rule of §4.F: a shooter may target a
// live tank of a different owner if it was attacked by that target last
// round, or if no other player has attacked that target this round.
func (s *ShootingSystem) canAttack(shooterOwner int, targetID string, targetOwner int) bool {
	target, ok := s.tanks[targetID]
	if !ok || !target.alive || targetOwner == shooterOwner {
		return false
	}

	if _, retaliation := s.attackMatrix[targetOwner][shooterOwner]; retaliation {
		return true
	}

	for otherOwner, attacked := range s.attackMatrix {
		if otherOwner == shooterOwner || otherOwner == targetOwner {
			continue
		}
		if _, alreadyHit := attacked[targetOwner]; alreadyHit {
			return false
		}
	}
	return true
}

// ShootingOptions returns every legal shot for tankID.
func (s *ShootingSystem) ShootingOptions(tankID string) []ShootingOption {
	shooter, ok := s.tanks[tankID]
	if !ok {
		return nil
	}
	switch shooter.shooting.(type) {
	case *game.CurvedShooting:
		return s.curvedOptions(tankID, shooter)
	case *game.DirectShooting:
		return s.directOptions(tankID, shooter)
	default:
		return nil
	}
}

// OptionsFromPosition evaluates tankID's shooting options as if it stood at
// hypothetical instead of its real current position, without mutating any
// system state. The bot planner calls it with the tank's current position.
func (s *ShootingSystem) OptionsFromPosition(tankID string, hypothetical game.Cube) []ShootingOption {
	real, ok := s.tanks[tankID]
	if !ok {
		return nil
	}
	probe := &shooterState{position: hypothetical, owner: real.owner, shooting: real.shooting, alive: real.alive}
	switch probe.shooting.(type) {
	case *game.CurvedShooting:
		return s.curvedOptions(tankID, probe)
	case *game.DirectShooting:
		return s.directOptions(tankID, probe)
	default:
		return nil
	}
}

// CatapultUsageAt returns how many lifetime activations a catapult hex has
// recorded.
func (s *ShootingSystem) CatapultUsageAt(hex game.Cube) int {
	return s.catapultUsage[hex]
}

func (s *ShootingSystem) curvedOptions(shooterID string, shooter *shooterState) []ShootingOption {
	cs := shooter.shooting.(*game.CurvedShooting)
	var options []ShootingOption
	for targetID, target := range s.tanks {
		if targetID == shooterID {
			continue
		}
		if !s.canAttack(shooter.owner, targetID, target.owner) {
			continue
		}
		d := game.Distance(shooter.position, target.position)
		if d >= cs.MinRange && d <= cs.MaxRange {
			options = append(options, ShootingOption{Target: target.position, TankIDs: []string{targetID}})
		}
	}
	return options
}

func (s *ShootingSystem) directOptions(shooterID string, shooter *shooterState) []ShootingOption {
	ds := shooter.shooting.(*game.DirectShooting)
	var options []ShootingOption
	for _, dir := range game.Directions() {
		hits := s.directHits(shooterID, shooter, dir, ds.MaxDistance)
		if len(hits) > 0 {
			options = append(options, ShootingOption{Target: shooter.position.Add(dir), TankIDs: hits})
		}
	}
	return options
}

func (s *ShootingSystem) directHits(shooterID string, shooter *shooterState, dir game.Cube, maxDistance int) []string {
	var hits []string
	for dist := 1; dist <= maxDistance; dist++ {
		pos := shooter.position.Add(dir.Scale(dist))
		if !s.m.KindAt(pos).ShootThrough() {
			break
		}
		targetID, occupied := s.occupancy[pos]
		if !occupied {
			continue
		}
		target := s.tanks[targetID]
		if target != nil && s.canAttack(shooter.owner, targetID, target.owner) {
			hits = append(hits, targetID)
		}
	}
	return hits
}

// ApplyShot resolves a shot at targetPosition from shooterID: it recomputes
// the targets from scratch (rather than trusting a stale option), emits
// TankShot for each live, attackable tank found there, records the attack in
// the matrix, and consumes any active range bonus.
func (s *ShootingSystem) ApplyShot(shooterID string, targetPosition game.Cube) {
	shooter, ok := s.tanks[shooterID]
	if !ok {
		return
	}

	var targets []string
	switch cs := shooter.shooting.(type) {
	case *game.CurvedShooting:
		targetID, occupied := s.occupancy[targetPosition]
		if !occupied {
			break
		}
		target := s.tanks[targetID]
		d := game.Distance(shooter.position, targetPosition)
		if target != nil && d >= cs.MinRange && d <= cs.MaxRange && s.canAttack(shooter.owner, targetID, target.owner) {
			targets = append(targets, targetID)
		}
	case *game.DirectShooting:
		dir := targetPosition.Sub(shooter.position)
		if dist, ok := axialDistance(dir); ok {
			unit := unitOf(dir, dist)
			targets = s.directHits(shooterID, shooter, unit, cs.MaxDistance)
		}
	}

	damage := game.DamageOf(shooter.shooting)
	for _, targetID := range targets {
		target := s.tanks[targetID]
		s.ensureOwnerRow(shooter.owner)
		s.attackMatrix[shooter.owner][target.owner] = struct{}{}
		s.bus.Publish(game.TankShot, game.TankShotPayload{TankID: targetID, Damage: damage, ShooterOwner: shooter.owner})
	}

	if shooter.shooting.RangeBonusActive() {
		game.RemoveRangeBonus(shooter.shooting)
	}
}

// axialDistance reports the hex distance if dir lies along one of the six
// axial directions (i.e. is an integer multiple of a unit vector), and
// false otherwise.
func axialDistance(dir game.Cube) (int, bool) {
	d := game.Distance(game.Cube{}, dir)
	if d == 0 {
		return 0, false
	}
	for _, unit := range game.Directions() {
		if unit.Scale(d) == dir {
			return d, true
		}
	}
	return 0, false
}

func unitOf(dir game.Cube, dist int) game.Cube {
	return game.Cube{X: dir.X / dist, Y: dir.Y / dist, Z: dir.Z / dist}
}

// ShootablePositions returns the set of hexes tankID could target from its
// current position, used by the bot to compute incoming threat.
func (s *ShootingSystem) ShootablePositions(tankID string) []game.Cube {
	shooter, ok := s.tanks[tankID]
	if !ok {
		return nil
	}

	key := shootableCacheKey{position: shooter.position, bonus: shooter.shooting.RangeBonusActive()}
	switch cs := shooter.shooting.(type) {
	case *game.CurvedShooting:
		key.archetype = curvedArchetypeKey(cs)
		if cached, ok := s.shootableCache.Get(key); ok {
			return cached
		}
		positions := s.curvedShootablePositions(shooter.position, cs)
		s.shootableCache.Add(key, positions)
		return positions
	case *game.DirectShooting:
		key.archetype = directArchetypeKey(cs)
		if cached, ok := s.shootableCache.Get(key); ok {
			return cached
		}
		positions := s.directShootablePositions(shooter.position, cs)
		s.shootableCache.Add(key, positions)
		return positions
	default:
		return nil
	}
}

// curvedArchetypeKey/directArchetypeKey fold a shooting profile's range
// numbers into a synthetic cache discriminator; two curved profiles with the
// same min/max/damage produce identical shootable sets regardless of which
// tank they belong to.
func curvedArchetypeKey(cs *game.CurvedShooting) game.Archetype {
	return game.Archetype(1000 + cs.MinRange*100 + cs.MaxRange)
}

func directArchetypeKey(ds *game.DirectShooting) game.Archetype {
	return game.Archetype(2000 + ds.MaxDistance)
}

func (s *ShootingSystem) curvedShootablePositions(from game.Cube, cs *game.CurvedShooting) []game.Cube {
	var positions []game.Cube
	for d := cs.MinRange; d <= cs.MaxRange && d < len(s.offsets); d++ {
		for offset := range s.offsets[d] {
			positions = append(positions, from.Add(offset))
		}
	}
	return positions
}

func (s *ShootingSystem) directShootablePositions(from game.Cube, ds *game.DirectShooting) []game.Cube {
	var positions []game.Cube
	for _, dir := range game.Directions() {
		for dist := 1; dist <= ds.MaxDistance; dist++ {
			pos := from.Add(dir.Scale(dist))
			if !s.m.KindAt(pos).ShootThrough() {
				break
			}
			positions = append(positions, pos)
		}
	}
	return positions
}

// RankTargets picks the single best shot out of options by a simple
// modifier-sum ranking: one point per tank a shot would hit, plus a bonus
// point if the target hex is a Base (denying an enemy its capture progress
// is worth favoring over an equally-sized hit elsewhere). It returns
// (game.Cube{}, -1) for an empty option list, independent of whatever full
// search a caller might also run.
func (s *ShootingSystem) RankTargets(options []ShootingOption) (game.Cube, int) {
	if len(options) == 0 {
		return game.Cube{}, -1
	}

	bestOption := options[0]
	bestRank := -1

	for _, opt := range options {
		rank := len(opt.TankIDs)
		if s.m.KindAt(opt.Target) == game.Base {
			rank++
		}
		if rank > bestRank {
			bestRank = rank
			bestOption = opt
		}
	}

	return bestOption.Target, bestRank
}

// Turn clears ownerID's attack-matrix row at the start of their turn.
func (s *ShootingSystem) Turn(ownerID int) {
	s.attackMatrix[ownerID] = make(map[int]struct{})
}

// Reset rebuilds the system from a fresh snapshot.
func (s *ShootingSystem) Reset(attackMatrix map[int][]int, catapultUsage map[game.Cube]int) {
	s.seedAttackMatrix(attackMatrix)
	s.seedCatapultUsage(catapultUsage)
	s.tanks = make(map[string]*shooterState)
	s.occupancy = make(map[game.Cube]string)
	s.shootableCache.Purge()
}
