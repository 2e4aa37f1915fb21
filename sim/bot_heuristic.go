package sim

import "github.com/wg-forge/hextanks-client/game"

// threatSource is one living enemy tank's contribution to the threat
// ledger: the owner it fires for, the damage one of its shots deals, and
// every hex it can currently reach with that shot.
type threatSource struct {
	owner     int
	damage    int
	positions map[game.Cube]struct{}
}

// ThreatLedger records, per living enemy tank, what it could do to the
// board this turn - built once per bot turn and then queried against the
// search's hypothetical damage ledger, since a tank killed earlier in the
// plan stops threatening anything for the rest of it.
type ThreatLedger map[string]threatSource

// BuildThreatLedger collects every living enemy tank's shootable positions
// and per-shot damage.
func BuildThreatLedger(w *World, selfOwner int) ThreatLedger {
	ledger := make(ThreatLedger)
	for _, tank := range w.Tanks.All() {
		if !tank.Alive || tank.Owner == nil || tank.Owner.PlayerID == selfOwner {
			continue
		}
		positions := make(map[game.Cube]struct{})
		for _, pos := range w.Shooting.ShootablePositions(tank.ID) {
			positions[pos] = struct{}{}
		}
		ledger[tank.ID] = threatSource{
			owner:     tank.Owner.PlayerID,
			damage:    game.DamageOf(tank.Shooting),
			positions: positions,
		}
	}
	return ledger
}

// worstThreatAt sums each enemy team's damage that could land on hex, then
// returns the most dangerous team's total - two teams threatening the same
// hex don't stack, per §4.J. A tank the plan's hypothetical damage ledger
// has already killed stops contributing.
func (t ThreatLedger) worstThreatAt(w *World, hex game.Cube, planDamage map[string]int) int {
	perOwner := make(map[int]int)
	for tankID, src := range t {
		if _, threatens := src.positions[hex]; !threatens {
			continue
		}
		current, _, alive := w.Health.Current(tankID)
		if !alive || current-planDamage[tankID] <= 0 {
			continue
		}
		perOwner[src.owner] += src.damage
	}
	worst := 0
	for _, damage := range perOwner {
		if damage > worst {
			worst = damage
		}
	}
	return worst
}

// HexValue scores a single candidate hex for tank per §4.J: a base-proximity
// starting value plus a repair bonus proportional to the tank's missing HP
// and a flat catapult bonus, scaled by a threat
// factor that can turn the hex sharply negative if standing there would
// kill the tank.
func HexValue(w *World, tank *game.Tank, hex game.Cube, baseValues BaseValueMap, threats ThreatLedger, planDamage map[string]int, catapultUsage map[game.Cube]int) float64 {
	kind := w.Map.KindAt(hex)

	value := baseValues.ValueAt(hex)
	if kind == game.Base {
		value = BaseHexStartValue
	}

	if repairKind, ok := game.RepairKindFor(tank.Archetype); ok && repairKind == kind {
		value += RepairPositionBonus * float64(tank.Health.Max-tank.Health.Current)
	}
	if kind == game.Catapult && catapultUsage[hex] < 3 && !tank.Shooting.RangeBonusActive() {
		value += CatapultPositionBonus
	}

	return value * threatFactor(w, tank, hex, kind, threats, planDamage)
}

// threatFactor implements the §4.J threat multiplier. A lethal hit collapses
// the factor to a flat self-destruction penalty, unless the hex is the
// tank's matching repair kind - the heal would cancel the damage.
func threatFactor(w *World, tank *game.Tank, hex game.Cube, kind game.HexKind, threats ThreatLedger, planDamage map[string]int) float64 {
	totalDamage := threats.worstThreatAt(w, hex, planDamage)
	if totalDamage == 0 {
		return 1
	}

	currentHP := float64(tank.Health.Current)
	hpLeft := (currentHP - float64(totalDamage)) / currentHP

	if hpLeft <= 0 {
		repairKind, repairable := game.RepairKindFor(tank.Archetype)
		if !repairable || repairKind != kind {
			reward := 0
			if tank.Reward != nil {
				reward = tank.Reward.Points
			}
			return -float64(reward)
		}
	}

	return 1 - (1-hpLeft)*HealthPercentLossMultiplier
}
