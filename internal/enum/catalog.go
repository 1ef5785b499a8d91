// Package enum validates names against the host platform's fixed identifier
// catalogs, such as materials and sounds.
package enum

import (
	"fmt"

	"github.com/gobwas/glob"
)

// Catalog is an immutable, case-sensitive set of named identifiers.
type Catalog[T ~string] struct {
	kind  string
	names []T
	index map[string]T
}

// NewCatalog builds a catalog of the given kind from names.
//
// Precondition: names must be non-empty and unique.
// Postcondition: Returns a Catalog or an error naming the first duplicate or empty entry.
func NewCatalog[T ~string](kind string, names ...T) (*Catalog[T], error) {
	c := &Catalog[T]{
		kind:  kind,
		names: make([]T, 0, len(names)),
		index: make(map[string]T, len(names)),
	}
	for _, n := range names {
		if n == "" {
			return nil, fmt.Errorf("%s catalog: empty name", kind)
		}
		if _, dup := c.index[string(n)]; dup {
			return nil, fmt.Errorf("%s catalog: duplicate name %q", kind, n)
		}
		c.index[string(n)] = n
		c.names = append(c.names, n)
	}
	return c, nil
}

// MustCatalog is like NewCatalog but panics on error. Intended for package-level catalogs.
func MustCatalog[T ~string](kind string, names ...T) *Catalog[T] {
	c, err := NewCatalog(kind, names...)
	if err != nil {
		panic(err)
	}
	return c
}

// Lookup returns the identifier with exactly the given name.
//
// Postcondition: Returns (value, true) on an exact case-sensitive match, or (zero, false) otherwise.
func (c *Catalog[T]) Lookup(name string) (T, bool) {
	v, ok := c.index[name]
	return v, ok
}

// Contains reports whether name is a declared identifier.
func (c *Catalog[T]) Contains(name string) bool {
	_, ok := c.index[name]
	return ok
}

// Names returns every identifier in declaration order.
func (c *Catalog[T]) Names() []T {
	out := make([]T, len(c.names))
	copy(out, c.names)
	return out
}

// Match returns, in declaration order, every identifier matching the glob
// pattern, e.g. "*_ORE" or "BLOCK_NOTE_BLOCK_*". Matching is case-sensitive.
func (c *Catalog[T]) Match(pattern string) ([]T, error) {
	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%s catalog: invalid pattern %q: %w", c.kind, pattern, err)
	}
	var out []T
	for _, n := range c.names {
		if g.Match(string(n)) {
			out = append(out, n)
		}
	}
	return out, nil
}

// Len returns the number of identifiers.
func (c *Catalog[T]) Len() int { return len(c.names) }

// Kind returns the catalog's descriptive name, e.g. "material".
func (c *Catalog[T]) Kind() string { return c.kind }

// Lookup resolves name against catalog. It is a free-function form of
// Catalog.Lookup for callers holding a catalog of any identifier type.
func Lookup[T ~string](name string, catalog *Catalog[T]) (T, bool) {
	return catalog.Lookup(name)
}
