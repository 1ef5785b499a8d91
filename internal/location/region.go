package location

// maxPrealloc bounds the initial capacity of a scan result.
const maxPrealloc = 1 << 16

// Predicate selects positions during a region scan.
type Predicate func(Position) bool

// BlocksInSquare returns every block within radius of center on all three
// axes, a cube of side 2*radius+1, ordered by ascending x, then y, then z.
// Only positions accepted by every filter are kept. The result is fully
// materialized and may be iterated any number of times.
//
// Postcondition: Returns an empty slice when radius < 0.
func BlocksInSquare(center Position, radius int, filters ...Predicate) []Position {
	return scan(center, radius, func(Position) bool { return true }, filters)
}

// BlocksInCircle is like BlocksInSquare but keeps only blocks whose squared
// distance from center is at most radius².
func BlocksInCircle(center Position, radius int, filters ...Predicate) []Position {
	limit := float64(radius) * float64(radius)
	return scan(center, radius, func(p Position) bool {
		return p.DistanceSquared(center) <= limit
	}, filters)
}

func scan(center Position, radius int, shape Predicate, filters []Predicate) []Position {
	if radius < 0 {
		return []Position{}
	}
	cx, cy, cz := center.BlockX(), center.BlockY(), center.BlockZ()
	out := make([]Position, 0, scanCapacity(radius))
	for x := cx - radius; x <= cx+radius; x++ {
		for y := cy - radius; y <= cy+radius; y++ {
			for z := cz - radius; z <= cz+radius; z++ {
				p := At(center.World, x, y, z)
				if shape(p) && matchAll(p, filters) {
					out = append(out, p)
				}
			}
		}
	}
	return out
}

// scanCapacity is the initial capacity for a scan of radius. The cube volume
// is only computed for radii whose side cannot overflow it.
func scanCapacity(radius int) int {
	if radius >= 20 {
		return maxPrealloc
	}
	side := 2*radius + 1
	return min(side*side*side, maxPrealloc)
}

func matchAll(p Position, filters []Predicate) bool {
	for _, f := range filters {
		if f != nil && !f(p) {
			return false
		}
	}
	return true
}

// InsideBuildHeight returns a Predicate accepting positions whose block y lies
// within the build height of their world. Positions in unknown worlds are rejected.
func (c *Codec) InsideBuildHeight() Predicate {
	return func(p Position) bool {
		w, ok := c.worlds.World(p.World)
		return ok && w.Contains(p.BlockY())
	}
}
