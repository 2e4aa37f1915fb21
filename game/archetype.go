package game

// Archetype is one of the five fixed tank classes.
type Archetype int

const (
	SPG Archetype = iota
	LightTank
	HeavyTank
	MediumTank
	AntiTankSPG
)

// String implements fmt.Stringer.
func (a Archetype) String() string {
	switch a {
	case SPG:
		return "spg"
	case LightTank:
		return "light_tank"
	case HeavyTank:
		return "heavy_tank"
	case MediumTank:
		return "medium_tank"
	case AntiTankSPG:
		return "at_spg"
	default:
		return "unknown"
	}
}

// ArchetypeFromWireName maps the server's vehicle_type string to an
// Archetype, mirroring the original game's TankTypes enum.
func ArchetypeFromWireName(name string) (Archetype, bool) {
	switch name {
	case "spg":
		return SPG, true
	case "light_tank":
		return LightTank, true
	case "heavy_tank":
		return HeavyTank, true
	case "medium_tank":
		return MediumTank, true
	case "at_spg":
		return AntiTankSPG, true
	default:
		return 0, false
	}
}

// TurnOrder is the fixed archetype ordering a player's five tanks are
// indexed by for display and bot iteration.
var TurnOrder = [5]Archetype{SPG, LightTank, HeavyTank, MediumTank, AntiTankSPG}

// ArchetypeStats holds the fixed per-class attributes the ruleset bakes in.
type ArchetypeStats struct {
	HP             int
	Speed          int
	Damage         int
	DestructionPts int
	NewShooting    func() Shooting
}

// ArchetypeData is the fixed, table-driven ruleset for every tank class.
var ArchetypeData = map[Archetype]ArchetypeStats{
	SPG: {
		HP: 1, Speed: 1, Damage: 1, DestructionPts: 1,
		NewShooting: func() Shooting { return &CurvedShooting{MinRange: 3, MaxRange: 3, Damage: 1} },
	},
	LightTank: {
		HP: 1, Speed: 3, Damage: 1, DestructionPts: 1,
		NewShooting: func() Shooting { return &CurvedShooting{MinRange: 2, MaxRange: 2, Damage: 1} },
	},
	HeavyTank: {
		HP: 3, Speed: 1, Damage: 1, DestructionPts: 3,
		NewShooting: func() Shooting { return &CurvedShooting{MinRange: 1, MaxRange: 2, Damage: 1} },
	},
	MediumTank: {
		HP: 2, Speed: 2, Damage: 1, DestructionPts: 2,
		NewShooting: func() Shooting { return &CurvedShooting{MinRange: 2, MaxRange: 2, Damage: 1} },
	},
	AntiTankSPG: {
		HP: 2, Speed: 1, Damage: 1, DestructionPts: 2,
		NewShooting: func() Shooting { return &DirectShooting{MaxDistance: 3, Damage: 1} },
	},
}

// RepairKindFor returns the repair hex kind that heals this archetype, and
// whether one exists. SPG and LightTank have no matching repair kind.
func RepairKindFor(a Archetype) (HexKind, bool) {
	switch a {
	case MediumTank:
		return LightRepair, true
	case HeavyTank, AntiTankSPG:
		return HardRepair, true
	default:
		return "", false
	}
}
