package game

// Tank is a component bag: a fixed record carrying every component a tank
// entity can have. The "has component X" checks the source does by string
// tag become plain nil/zero checks here — every tank in this ruleset happens
// to carry all of them, but systems still probe for presence the way the
// source's handlers do, so a future archetype without (say) a capture
// component needs no systems changes.
type Tank struct {
	ID        string
	Archetype Archetype
	Alive     bool

	Position  *PositionComponent
	Health    *HealthComponent
	Owner     *OwnerComponent
	Capture   *CaptureComponent
	Shooting  Shooting
	Reward    *DestructionRewardComponent
}

// NewTank builds a tank entity of the given archetype at spawn, with full
// health and every component the ruleset defines.
func NewTank(id string, archetype Archetype, ownerID int, spawn Cube) *Tank {
	stats := ArchetypeData[archetype]
	return &Tank{
		ID:        id,
		Archetype: archetype,
		Alive:     true,
		Position:  &PositionComponent{Spawn: spawn, Current: spawn, Speed: stats.Speed},
		Health:    &HealthComponent{Max: stats.HP, Current: stats.HP},
		Owner:     &OwnerComponent{PlayerID: ownerID},
		Capture:   &CaptureComponent{},
		Shooting:  stats.NewShooting(),
		Reward:    &DestructionRewardComponent{Points: stats.DestructionPts},
	}
}
