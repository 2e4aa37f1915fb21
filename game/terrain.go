package game

// HexKind identifies the terrain of a single hex.
type HexKind string

const (
	Empty       HexKind = "Empty"
	Base        HexKind = "Base"
	Obstacle    HexKind = "Obstacle"
	Catapult    HexKind = "Catapult"
	LightRepair HexKind = "LightRepair"
	HardRepair  HexKind = "HardRepair"
)

// Traversable reports whether a tank may stand on this kind of hex.
func (k HexKind) Traversable() bool {
	return k != Obstacle
}

// ShootThrough reports whether a direct shot can pass over this kind of hex
// on its way to a more distant target. Identical to Traversable today, but
// kept as a distinct predicate since the rules that govern movement and
// line-of-sight are conceptually separate invariants.
func (k HexKind) ShootThrough() bool {
	return k != Obstacle
}
