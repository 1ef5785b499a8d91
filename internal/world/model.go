// Package world provides the registry of named worlds that positions resolve against.
package world

import (
	"fmt"

	"github.com/google/uuid"
)

// Environment is the dimension type of a world.
type Environment string

// Known environments.
const (
	Normal Environment = "normal"
	Nether Environment = "nether"
	End    Environment = "the_end"
)

// Environments contains every known environment.
var Environments = []Environment{Normal, Nether, End}

// IsKnown reports whether e is one of the known environments.
func (e Environment) IsKnown() bool {
	for _, k := range Environments {
		if e == k {
			return true
		}
	}
	return false
}

// DefaultBounds returns the vanilla build height for e.
//
// Postcondition: Returns (minY, height); unknown environments use the normal bounds.
func (e Environment) DefaultBounds() (int, int) {
	switch e {
	case Nether, End:
		return 0, 256
	default:
		return -64, 384
	}
}

// World is an independently addressed coordinate space on the server.
type World struct {
	// Name uniquely identifies the world; it is the first field of an encoded location.
	Name string
	// UUID is the stable identity of the world.
	UUID uuid.UUID
	// Environment is the dimension type.
	Environment Environment
	// MinY is the lowest buildable block y.
	MinY int
	// Height is the number of buildable block layers starting at MinY.
	Height int
}

// New returns a world with the environment's default bounds and a UUID derived from the name.
//
// Postcondition: The result passes Validate when name is non-empty and env is known.
func New(name string, env Environment) *World {
	minY, height := env.DefaultBounds()
	return &World{
		Name:        name,
		UUID:        NameUUID(name),
		Environment: env,
		MinY:        minY,
		Height:      height,
	}
}

// NameUUID derives a stable UUID for a world name.
func NameUUID(name string) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("world:"+name))
}

// MaxY returns the highest buildable block y.
func (w *World) MaxY() int {
	return w.MinY + w.Height - 1
}

// Contains reports whether block y lies within the world's build height.
func (w *World) Contains(y int) bool {
	return y >= w.MinY && y <= w.MaxY()
}

// Validate checks world invariants.
//
// Postcondition: Returns nil if valid, or an error describing the first violation.
func (w *World) Validate() error {
	if w.Name == "" {
		return fmt.Errorf("world name must not be empty")
	}
	if w.UUID == uuid.Nil {
		return fmt.Errorf("world %q: uuid must not be nil", w.Name)
	}
	if !w.Environment.IsKnown() {
		return fmt.Errorf("world %q: unknown environment %q", w.Name, w.Environment)
	}
	if w.Height <= 0 {
		return fmt.Errorf("world %q: height must be > 0, got %d", w.Name, w.Height)
	}
	return nil
}
