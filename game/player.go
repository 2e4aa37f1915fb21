package game

// Player is an entity/observer seat in the game. TankIDs is indexed by the
// fixed archetype turn order [SPG, Light, Heavy, Medium, AT-SPG]; a slot is
// empty ("") until that tank is first seen in a vehicles payload, since
// tanks are created lazily.
type Player struct {
	ID       int
	Name     string
	Observer bool

	TankIDs [5]string

	CapturePoints     int
	DestructionPoints int
}

// TankIDFor returns the id of this player's tank of the given archetype, and
// whether it has been seen yet.
func (p *Player) TankIDFor(a Archetype) (string, bool) {
	for i, slot := range TurnOrder {
		if slot == a {
			id := p.TankIDs[i]
			return id, id != ""
		}
	}
	return "", false
}

// SetTankID records a tank id at its archetype's fixed slot.
func (p *Player) SetTankID(a Archetype, id string) {
	for i, slot := range TurnOrder {
		if slot == a {
			p.TankIDs[i] = id
			return
		}
	}
}

// Tanks returns every non-empty tank id owned by this player, in turn order.
func (p *Player) Tanks() []string {
	ids := make([]string, 0, len(p.TankIDs))
	for _, id := range p.TankIDs {
		if id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}
