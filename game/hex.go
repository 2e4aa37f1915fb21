// Package game holds the pure domain model for HexTanks: cube-coordinate
// hex geometry, the static map, tank archetypes and components, the event
// types the simulator fires, and the player/tank entities themselves.
// Nothing in this package touches the network or blocks.
package game

// Cube is a cube hex coordinate. The invariant X+Y+Z=0 must hold for every
// value constructed by this package; callers that build a Cube by hand are
// responsible for it.
type Cube struct {
	X, Y, Z int
}

// directions holds the six cube unit vectors: every permutation of
// {-1, 0, +1} whose components sum to zero.
var directions = [6]Cube{
	{X: 1, Y: -1, Z: 0},
	{X: 1, Y: 0, Z: -1},
	{X: 0, Y: 1, Z: -1},
	{X: -1, Y: 1, Z: 0},
	{X: -1, Y: 0, Z: 1},
	{X: 0, Y: -1, Z: 1},
}

// Directions returns the six axial unit vectors.
func Directions() [6]Cube {
	return directions
}

// Add returns a+b.
func (a Cube) Add(b Cube) Cube {
	return Cube{X: a.X + b.X, Y: a.Y + b.Y, Z: a.Z + b.Z}
}

// Sub returns a-b.
func (a Cube) Sub(b Cube) Cube {
	return Cube{X: a.X - b.X, Y: a.Y - b.Y, Z: a.Z - b.Z}
}

// Scale multiplies every component by n.
func (a Cube) Scale(n int) Cube {
	return Cube{X: a.X * n, Y: a.Y * n, Z: a.Z * n}
}

// Neg returns -a.
func (a Cube) Neg() Cube {
	return Cube{X: -a.X, Y: -a.Y, Z: -a.Z}
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Distance returns the hex distance between a and b.
func Distance(a, b Cube) int {
	d := a.Sub(b)
	return (absInt(d.X) + absInt(d.Y) + absInt(d.Z)) / 2
}

// InBounds reports whether c lies within a board of the given size, i.e.
// |X|, |Y|, |Z| < size.
func InBounds(c Cube, size int) bool {
	return absInt(c.X) < size && absInt(c.Y) < size && absInt(c.Z) < size
}

// Direction returns the axial unit vector at the given index into
// Directions(), wrapping the index modulo 6 (negative indices included).
func Direction(index int) Cube {
	return directions[((index%6)+6)%6]
}
