package location

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/oops"

	"github.com/alenalex/mcutil/internal/world"
)

// Delimiter separates the fields of an encoded location.
const Delimiter = "/"

var (
	// ErrMalformedLocation is returned when an encoded location is empty or blank.
	ErrMalformedLocation = errors.New("location string is empty or blank")
	// ErrWorldNotFound is returned when the encoded world is not registered.
	ErrWorldNotFound = errors.New("world not found")
	// ErrInvalidCoordinate is returned when a numeric field is missing or not a number.
	ErrInvalidCoordinate = errors.New("invalid coordinate")
)

// Worlds resolves world names. *world.Manager satisfies it.
type Worlds interface {
	World(name string) (*world.World, bool)
}

// Encode serializes p as world/x/y/z/yaw/pitch using block coordinates and
// truncated orientation.
func Encode(p Position) string {
	return strings.Join([]string{
		p.World,
		strconv.Itoa(p.BlockX()),
		strconv.Itoa(p.BlockY()),
		strconv.Itoa(p.BlockZ()),
		strconv.Itoa(int(p.Yaw)),
		strconv.Itoa(int(p.Pitch)),
	}, Delimiter)
}

// EncodeBlock serializes p as world/x/y/z, omitting orientation.
func EncodeBlock(p Position) string {
	return strings.Join([]string{
		p.World,
		strconv.Itoa(p.BlockX()),
		strconv.Itoa(p.BlockY()),
		strconv.Itoa(p.BlockZ()),
	}, Delimiter)
}

// Codec decodes encoded locations against a world registry.
type Codec struct {
	worlds Worlds
}

// NewCodec returns a Codec resolving world names through worlds.
//
// Precondition: worlds must be non-nil.
func NewCodec(worlds Worlds) *Codec {
	return &Codec{worlds: worlds}
}

// World returns the named world if it is registered.
func (c *Codec) World(name string) (*world.World, bool) {
	return c.worlds.World(name)
}

// Decode parses a location produced by Encode or EncodeBlock. When exact is
// false, yaw and pitch are zero even if present in s.
//
// Postcondition: Returns an error wrapping ErrMalformedLocation for blank input,
// ErrWorldNotFound for an unregistered world, or ErrInvalidCoordinate for a
// missing or non-numeric field.
func (c *Codec) Decode(s string, exact bool) (Position, error) {
	if strings.TrimSpace(s) == "" {
		return Position{}, oops.
			Code("LOCATION_MALFORMED").
			With("input", s).
			Wrap(ErrMalformedLocation)
	}

	fields := strings.Split(s, Delimiter)
	w, ok := c.worlds.World(fields[0])
	if !ok {
		return Position{}, oops.
			Code("WORLD_NOT_FOUND").
			With("world", fields[0]).
			Hint("is the world loaded?").
			Wrap(fmt.Errorf("%w: %q", ErrWorldNotFound, fields[0]))
	}

	p := Position{World: w.Name}
	var err error
	if p.X, err = parseFloat(fields, 1, "x"); err != nil {
		return Position{}, err
	}
	if p.Y, err = parseFloat(fields, 2, "y"); err != nil {
		return Position{}, err
	}
	if p.Z, err = parseFloat(fields, 3, "z"); err != nil {
		return Position{}, err
	}
	if !exact {
		return p, nil
	}

	yaw, err := parseInt(fields, 4, "yaw")
	if err != nil {
		return Position{}, err
	}
	pitch, err := parseInt(fields, 5, "pitch")
	if err != nil {
		return Position{}, err
	}
	p.Yaw = float32(yaw)
	p.Pitch = float32(pitch)
	return p, nil
}

// DecodeExact is Decode with orientation.
func (c *Codec) DecodeExact(s string) (Position, error) {
	return c.Decode(s, true)
}

func parseFloat(fields []string, i int, name string) (float64, error) {
	raw, err := field(fields, i, name)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, coordinateError(name, raw, err)
	}
	return v, nil
}

func parseInt(fields []string, i int, name string) (int64, error) {
	raw, err := field(fields, i, name)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, coordinateError(name, raw, err)
	}
	return v, nil
}

func field(fields []string, i int, name string) (string, error) {
	if i >= len(fields) {
		return "", oops.
			Code("LOCATION_INVALID_COORDINATE").
			With("field", name).
			Wrap(fmt.Errorf("%w: missing %s", ErrInvalidCoordinate, name))
	}
	return fields[i], nil
}

func coordinateError(name, raw string, cause error) error {
	return oops.
		Code("LOCATION_INVALID_COORDINATE").
		With("field", name).
		With("value", raw).
		Wrap(fmt.Errorf("%w: %s %q: %w", ErrInvalidCoordinate, name, raw, cause))
}
