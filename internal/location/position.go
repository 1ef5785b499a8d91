// Package location encodes and decodes world positions as delimited strings
// and enumerates block positions around a center.
package location

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Position is a point in a named world with an optional orientation.
//
// Invariant: World is non-empty for every Position produced by Decode.
type Position struct {
	World string
	X     float64
	Y     float64
	Z     float64
	Yaw   float32
	Pitch float32
}

// At returns the block-aligned position (x, y, z) in world with no orientation.
func At(world string, x, y, z int) Position {
	return Position{World: world, X: float64(x), Y: float64(y), Z: float64(z)}
}

// BlockX returns the block x coordinate containing p.
func (p Position) BlockX() int { return int(math.Floor(p.X)) }

// BlockY returns the block y coordinate containing p.
func (p Position) BlockY() int { return int(math.Floor(p.Y)) }

// BlockZ returns the block z coordinate containing p.
func (p Position) BlockZ() int { return int(math.Floor(p.Z)) }

// Vec returns the coordinates of p as a vector.
func (p Position) Vec() mgl64.Vec3 {
	return mgl64.Vec3{p.X, p.Y, p.Z}
}

// DistanceSquared returns the squared Euclidean distance between p and o.
// The worlds of p and o are not compared.
func (p Position) DistanceSquared(o Position) float64 {
	d := p.Vec().Sub(o.Vec())
	return d.Dot(d)
}

// Block returns the block containing p, without orientation.
func (p Position) Block() Position {
	return At(p.World, p.BlockX(), p.BlockY(), p.BlockZ())
}

// WithOrientation returns a copy of p facing yaw and pitch.
func (p Position) WithOrientation(yaw, pitch float32) Position {
	p.Yaw = yaw
	p.Pitch = pitch
	return p
}

// Relative returns the block adjacent to the block containing p in direction face.
func (p Position) Relative(face BlockFace) Position {
	dx, dy, dz := face.Offset()
	return At(p.World, p.BlockX()+dx, p.BlockY()+dy, p.BlockZ()+dz)
}

// IsSimilar reports whether a and b name the same world and the same block,
// ignoring orientation.
func IsSimilar(a, b Position) bool {
	return a.World == b.World &&
		a.BlockX() == b.BlockX() &&
		a.BlockY() == b.BlockY() &&
		a.BlockZ() == b.BlockZ()
}

// IsExact reports whether a and b are similar and share yaw and pitch.
func IsExact(a, b Position) bool {
	return IsSimilar(a, b) && a.Yaw == b.Yaw && a.Pitch == b.Pitch
}
