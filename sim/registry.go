// Package sim implements the stateful half of the HexTanks client: the
// event-driven systems that mirror the server's authoritative game state
// locally (movement, shooting, health, respawn, position bonuses, base
// capture), the player/tank registries, the World facade that sequences
// them, and the bot planner that decides each turn's actions.
package sim

import "github.com/wg-forge/hextanks-client/game"

// TankRegistry is the single owner of every tank entity ever seen. It is
// written only on TankAdded; every other system holds a stable view after
// that.
type TankRegistry struct {
	tanks map[string]*game.Tank
	bus   *game.Bus
}

// NewTankRegistry returns an empty registry wired to bus.
func NewTankRegistry(bus *game.Bus) *TankRegistry {
	return &TankRegistry{tanks: make(map[string]*game.Tank), bus: bus}
}

// Has reports whether tankID has already been materialized.
func (r *TankRegistry) Has(tankID string) bool {
	_, ok := r.tanks[tankID]
	return ok
}

// Get returns the tank entity for tankID, or nil if unknown.
func (r *TankRegistry) Get(tankID string) *game.Tank {
	return r.tanks[tankID]
}

// Add materializes a new tank entity and publishes TankAdded. Tanks are
// created lazily, the first time they're seen in a server vehicles payload;
// calling Add twice for the same id is a no-op.
func (r *TankRegistry) Add(tank *game.Tank) {
	if r.Has(tank.ID) {
		return
	}
	r.tanks[tank.ID] = tank
	r.bus.Publish(game.TankAdded, game.TankAddedPayload{TankID: tank.ID, Tank: tank})
}

// All returns every known tank entity.
func (r *TankRegistry) All() []*game.Tank {
	out := make([]*game.Tank, 0, len(r.tanks))
	for _, t := range r.tanks {
		out = append(out, t)
	}
	return out
}

// Reset drops every tank. Used by World.Reset when rebuilding from a fresh
// snapshot.
func (r *TankRegistry) Reset() {
	r.tanks = make(map[string]*game.Tank)
}
