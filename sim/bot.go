package sim

// Bot wraps a World with the map-derived value field the planner needs, so
// callers don't recompute the base flood fill every turn.
type Bot struct {
	world      *World
	baseValues BaseValueMap
}

// NewBot builds a Bot over w, flood-filling the base value map once from
// w.Map.
func NewBot(w *World) *Bot {
	return &Bot{
		world:      w,
		baseValues: BuildBaseValueMap(w.Map, w.Map.Size()),
	}
}

// PlanTurn returns the best plan found for ownerID's living tanks this turn.
func (b *Bot) PlanTurn(ownerID int) BotPlan {
	return PlanBotTurn(b.world, ownerID, b.baseValues)
}
