package game

// Map is the static terrain lookup built from the server's map description.
// It never changes after construction.
type Map struct {
	size  int
	name  string
	hexes map[Cube]HexKind
}

// MapContent lists the non-empty hexes of a map, grouped by kind, the way
// the server's map payload does.
type MapContent struct {
	Base        []Cube
	Obstacle    []Cube
	Catapult    []Cube
	LightRepair []Cube
	HardRepair  []Cube
}

// NewMap builds an immutable Map from a size, a name, and the lists of
// non-empty hexes.
func NewMap(size int, name string, content MapContent) *Map {
	m := &Map{size: size, name: name, hexes: make(map[Cube]HexKind)}
	for _, c := range content.Base {
		m.hexes[c] = Base
	}
	for _, c := range content.Obstacle {
		m.hexes[c] = Obstacle
	}
	for _, c := range content.Catapult {
		m.hexes[c] = Catapult
	}
	for _, c := range content.LightRepair {
		m.hexes[c] = LightRepair
	}
	for _, c := range content.HardRepair {
		m.hexes[c] = HardRepair
	}
	return m
}

// Size returns the map's bounding size (hexes satisfy |x|,|y|,|z| < size).
func (m *Map) Size() int {
	return m.size
}

// Name returns the map's display name.
func (m *Map) Name() string {
	return m.name
}

// KindAt returns the terrain kind at c, defaulting to Empty.
func (m *Map) KindAt(c Cube) HexKind {
	if kind, ok := m.hexes[c]; ok {
		return kind
	}
	return Empty
}

// NonEmpty calls fn for every hex on the map that is not Empty.
func (m *Map) NonEmpty(fn func(Cube, HexKind)) {
	for c, kind := range m.hexes {
		fn(c, kind)
	}
}

// InBounds reports whether c is within this map's bounds.
func (m *Map) InBounds(c Cube) bool {
	return InBounds(c, m.size)
}
