package sim

import (
	"math"

	"github.com/wg-forge/hextanks-client/game"
)

// BaseValueMap is a static, map-derived value field: from each Base hex a
// BFS assigns every traversable hex reached at depth d a contribution of
// CaptureBaseValue * CaptureDistanceMultiplier^d. It never changes for the
// lifetime of a map, so it is computed once and reused by every heuristic
// evaluation the planner runs that turn.
type BaseValueMap map[game.Cube]float64

// BuildBaseValueMap flood-fills outward from every Base hex on m. A hex
// reachable from more than one base keeps max(v_candidate, v_existing *
// v_candidate) - multiplicative reinforcement, preserving the maximum.
// Obstacle hexes (and anything else non-traversable) are excluded.
func BuildBaseValueMap(m *game.Map, maxDistance int) BaseValueMap {
	values := make(BaseValueMap)

	var bases []game.Cube
	m.NonEmpty(func(c game.Cube, kind game.HexKind) {
		if kind == game.Base {
			bases = append(bases, c)
		}
	})

	for _, base := range bases {
		frontier := []game.Cube{base}
		visited := map[game.Cube]struct{}{base: {}}
		values.reinforce(base, CaptureBaseValue)

		for d := 1; d <= maxDistance; d++ {
			var next []game.Cube
			for _, c := range frontier {
				for _, dir := range game.Directions() {
					n := c.Add(dir)
					if _, seen := visited[n]; seen {
						continue
					}
					if !m.InBounds(n) || !m.KindAt(n).Traversable() {
						continue
					}
					visited[n] = struct{}{}
					next = append(next, n)
					values.reinforce(n, CaptureBaseValue*math.Pow(CaptureDistanceMultiplier, float64(d)))
				}
			}
			frontier = next
		}
	}

	return values
}

// reinforce combines a newly-reached base's contribution to c with whatever
// is already recorded there, preserving the maximum of the candidate alone
// and the two multiplied together.
func (b BaseValueMap) reinforce(c game.Cube, candidate float64) {
	if existing, ok := b[c]; ok {
		b[c] = math.Max(candidate, existing*candidate)
		return
	}
	b[c] = candidate
}

// ValueAt returns the base-proximity value of c, defaulting to 0 for hexes
// no base flood fill ever reached.
func (b BaseValueMap) ValueAt(c game.Cube) float64 {
	return b[c]
}
