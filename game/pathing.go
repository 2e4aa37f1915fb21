package game

// PathingOffsets is the precomputed reachability table keyed by distance from
// the origin. PathingOffsets[d] maps an offset reachable in exactly d steps
// to the set of offsets at distance d-1 it can be reached from. The shooting
// system's curved shootable-positions query reads it; movement options and
// the bot's base-value flood fill run their own BFS over the map instead.
type PathingOffsets []map[Cube]map[Cube]struct{}

// BuildPathingOffsets runs a BFS from the origin out to maxDistance and
// returns the resulting table. PathingOffsets[0] is {(0,0,0): {(0,0,0)}}.
func BuildPathingOffsets(maxDistance int) PathingOffsets {
	origin := Cube{}
	visited := map[Cube]struct{}{origin: {}}

	table := make(PathingOffsets, maxDistance+1)
	table[0] = map[Cube]map[Cube]struct{}{origin: {origin: {}}}

	for d := 1; d <= maxDistance; d++ {
		table[d] = map[Cube]map[Cube]struct{}{}
		for position := range table[d-1] {
			for _, dir := range directions {
				next := position.Add(dir)
				if _, seen := visited[next]; !seen {
					table[d][next] = map[Cube]struct{}{position: {}}
					visited[next] = struct{}{}
					continue
				}
				if preds, ok := table[d][next]; ok {
					preds[position] = struct{}{}
				}
			}
		}
	}

	return table
}
