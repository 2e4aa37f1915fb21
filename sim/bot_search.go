package sim

import (
	"math"

	"github.com/wg-forge/hextanks-client/game"
)

// targetDamage is one target's not-yet-delivered damage applied during a
// hypothetical shot, recorded so the search can undo it on backtrack.
type targetDamage struct {
	tankID string
	amount int
}

// applyHypotheticalShot records option's damage against planDamage for every
// target that still has undelivered hit points left, clipped so a plan
// never claims more damage than a target actually has - returns the deltas
// actually applied so the caller can undo them on backtrack.
func applyHypotheticalShot(w *World, planDamage map[string]int, option ShootingOption, damage int) []targetDamage {
	var deltas []targetDamage
	for _, targetID := range option.TankIDs {
		current, _, alive := w.Health.Current(targetID)
		if !alive {
			continue
		}
		remaining := current - planDamage[targetID]
		if remaining <= 0 {
			continue
		}
		dealt := damage
		if dealt > remaining {
			dealt = remaining
		}
		planDamage[targetID] += dealt
		deltas = append(deltas, targetDamage{tankID: targetID, amount: dealt})
	}
	return deltas
}

func undoHypotheticalShot(planDamage map[string]int, deltas []targetDamage) {
	for _, d := range deltas {
		planDamage[d.tankID] -= d.amount
	}
}

// baseCaptureCandidates returns every tank currently standing on a Base hex,
// mirroring BaseCaptureSystem.Round()'s capture lock: nil once three or more
// distinct owners are contesting a base, since nobody captures that round
// and there is nothing left to deny.
func baseCaptureCandidates(w *World) []*game.Tank {
	owners := map[int]struct{}{}
	var tanks []*game.Tank
	for _, tank := range w.Tanks.All() {
		if !tank.Alive || tank.Owner == nil || tank.Position == nil {
			continue
		}
		if w.Map.KindAt(tank.Position.Current) == game.Base {
			tanks = append(tanks, tank)
			owners[tank.Owner.PlayerID] = struct{}{}
		}
	}
	if len(owners) > 2 {
		return nil
	}
	return tanks
}

// scorePlan implements §4.J's plan score: the movers' own destination values
// plus the exponential/linear terms derived from the plan's final
// hypothetical damage ledger.
func scorePlan(w *World, selfOwner int, moveValue float64, planDamage map[string]int) float64 {
	capturePointsDenied := 0
	for _, tank := range baseCaptureCandidates(w) {
		if tank.Owner.PlayerID == selfOwner {
			continue
		}
		if planDamage[tank.ID] >= tank.Health.Current {
			capturePointsDenied++
		}
	}

	destructionPoints := 0
	totalDamageDealt := 0
	for tankID, dealt := range planDamage {
		totalDamageDealt += dealt
		tank := w.Tanks.Get(tankID)
		if tank == nil || tank.Reward == nil {
			continue
		}
		if dealt >= tank.Health.Current {
			destructionPoints += tank.Reward.Points
		}
	}

	return moveValue +
		math.Pow(capturePointsDeniedBase, float64(capturePointsDenied-1)) +
		destructionPointsWeight*float64(destructionPoints) +
		totalDamageDealtWeight*float64(totalDamageDealt)
}

// PlanBotTurn runs the depth-5 backtracking search over every living tank a
// bot owns, in a fixed order. At each depth the frontier is the tank's best
// move, every shot that would deal undelivered damage, and skipping -
// mutually exclusive alternatives, not combined, per §4.J.
func PlanBotTurn(w *World, ownerID int, baseValues BaseValueMap) BotPlan {
	player := w.Players.Get(ownerID)
	if player == nil {
		return BotPlan{}
	}

	var living []string
	for _, tankID := range player.Tanks() {
		if tank := w.Tanks.Get(tankID); tank != nil && tank.Alive {
			living = append(living, tankID)
		}
	}
	if len(living) > SearchDepth {
		living = living[:SearchDepth]
	}

	threats := BuildThreatLedger(w, ownerID)
	planDamage := make(map[string]int)

	best := BotPlan{Value: math.Inf(-1)}
	var actions []BotAction

	var search func(index int, moveValue float64)
	search = func(index int, moveValue float64) {
		if index == len(living) {
			value := scorePlan(w, ownerID, moveValue, planDamage)
			if value > best.Value {
				best = BotPlan{Actions: append([]BotAction(nil), actions...), Value: value}
			}
			return
		}

		tankID := living[index]
		tank := w.Tanks.Get(tankID)
		if tank == nil {
			search(index+1, moveValue)
			return
		}

		// The one best move destination, including staying put.
		bestHex := tank.Position.Current
		bestValue := HexValue(w, tank, bestHex, baseValues, threats, planDamage, w.Shooting.catapultUsage)
		for _, dest := range w.Movement.MovementOptions(tankID) {
			v := HexValue(w, tank, dest, baseValues, threats, planDamage, w.Shooting.catapultUsage)
			if v > bestValue {
				bestValue = v
				bestHex = dest
			}
		}
		moveAction := BotAction{TankID: tankID}
		if bestHex != tank.Position.Current {
			moveAction.IsMove = true
			moveAction.To = bestHex
		}
		actions = append(actions, moveAction)
		search(index+1, moveValue+bestValue)
		actions = actions[:len(actions)-1]

		// Every shot that would deal at least one point of undelivered
		// damage, fired from the tank's real current position.
		if tank.Shooting != nil {
			damage := game.DamageOf(tank.Shooting)
			for _, opt := range w.Shooting.OptionsFromPosition(tankID, tank.Position.Current) {
				deltas := applyHypotheticalShot(w, planDamage, opt, damage)
				if len(deltas) == 0 {
					continue
				}
				actions = append(actions, BotAction{TankID: tankID, IsShoot: true, At: opt.Target})
				search(index+1, moveValue)
				actions = actions[:len(actions)-1]
				undoHypotheticalShot(planDamage, deltas)
			}
		}

		// Skip: no action for this tank.
		search(index+1, moveValue)
	}

	search(0, 0)
	return best
}
