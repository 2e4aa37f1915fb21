package sim

import "github.com/wg-forge/hextanks-client/game"

// Bot search constants
const (
	// SearchDepth is the number of tank decisions the planner looks ahead
	// before scoring a branch - one decision per living tank, in turn
	// order, matching the five-tank squad.
	SearchDepth = 5

	// CaptureBaseValue is the base-value map's contribution at a Base hex
	// itself (BFS depth 0), before the per-ring distance multiplier.
	CaptureBaseValue = 1.0

	// CaptureDistanceMultiplier shrinks a base's contribution by this
	// factor for every BFS ring out from it.
	CaptureDistanceMultiplier = 0.95

	// BaseHexStartValue overrides the per-tank heuristic's starting value
	// when the candidate hex is itself a Base, in place of whatever the
	// static base-value map computed for it.
	BaseHexStartValue = 2.0

	// HealthPercentLossMultiplier scales how much of a hex's value a
	// survivable hit costs, proportional to the health percentage lost.
	HealthPercentLossMultiplier = 0.1

	// RepairPositionBonus is the per-missing-HP-point bonus for standing on
	// a matching repair hex.
	RepairPositionBonus = 0.1

	// CatapultPositionBonus rewards standing on a catapult hex that still
	// has charges and whose bonus the tank doesn't already carry.
	CatapultPositionBonus = 1.5

	// capturePointsDeniedBase is the base of the exponential term in plan
	// scoring: 3^(capturePointsDenied-1).
	capturePointsDeniedBase = 3.0

	// destructionPointsWeight and totalDamageDealtWeight are the linear
	// terms in plan scoring.
	destructionPointsWeight = 1.3
	totalDamageDealtWeight  = 0.05
)

// BotAction is one planned step for a single tank: move to To (if
// IsMove), or shoot At (if IsShoot), or pass.
type BotAction struct {
	TankID  string
	IsMove  bool
	To      game.Cube
	IsShoot bool
	At      game.Cube
}

// BotPlan is the full ordered list of per-tank actions the planner chose for
// one bot turn.
type BotPlan struct {
	Actions []BotAction
	Value   float64
}
