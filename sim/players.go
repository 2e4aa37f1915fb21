package sim

import "github.com/wg-forge/hextanks-client/game"

// PlayerRegistry is the single owner of every player/observer seat, and
// mirrors each player's capture/destruction score.
type PlayerRegistry struct {
	players map[int]*game.Player
}

// NewPlayerRegistry returns an empty registry.
func NewPlayerRegistry() *PlayerRegistry {
	return &PlayerRegistry{players: make(map[int]*game.Player)}
}

// Add registers a player or observer seat. Re-adding an existing id is a
// no-op, matching the lazy materialization the tank registry also uses.
func (r *PlayerRegistry) Add(id int, name string, observer bool) *game.Player {
	if p, ok := r.players[id]; ok {
		return p
	}
	p := &game.Player{ID: id, Name: name, Observer: observer}
	r.players[id] = p
	return p
}

// Get returns the player for id, or nil if unknown.
func (r *PlayerRegistry) Get(id int) *game.Player {
	return r.players[id]
}

// All returns every registered player, including observers.
func (r *PlayerRegistry) All() []*game.Player {
	out := make([]*game.Player, 0, len(r.players))
	for _, p := range r.players {
		out = append(out, p)
	}
	return out
}

// Combatants returns every registered player that is not an observer.
func (r *PlayerRegistry) Combatants() []*game.Player {
	var out []*game.Player
	for _, p := range r.players {
		if !p.Observer {
			out = append(out, p)
		}
	}
	return out
}

// AwardCapture adds points to ownerID's capture score. Wired as the
// BaseCaptureSystem's award callback.
func (r *PlayerRegistry) AwardCapture(ownerID int, points int) {
	if p, ok := r.players[ownerID]; ok {
		p.CapturePoints += points
	}
}

// AwardDestruction adds points to ownerID's destruction score.
func (r *PlayerRegistry) AwardDestruction(ownerID int, points int) {
	if p, ok := r.players[ownerID]; ok {
		p.DestructionPoints += points
	}
}

// Reset drops every registered player.
func (r *PlayerRegistry) Reset() {
	r.players = make(map[int]*game.Player)
}
