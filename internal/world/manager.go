package world

import (
	"fmt"
	"sort"
	"sync"
)

// Manager provides thread-safe access to the registered worlds, keyed by name.
type Manager struct {
	mu     sync.RWMutex
	worlds map[string]*World
	first  string
}

// NewManager creates a Manager from the given worlds.
//
// Precondition: every world must pass Validate.
// Postcondition: Returns a Manager with all worlds indexed by name, or an error on duplicates.
func NewManager(worlds []*World) (*Manager, error) {
	m := &Manager{worlds: make(map[string]*World, len(worlds))}
	for _, w := range worlds {
		if err := m.Register(w); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Register adds a world.
//
// Postcondition: Returns an error if w is invalid or its name is already registered.
func (m *Manager) Register(w *World) error {
	if err := w.Validate(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.worlds[w.Name]; exists {
		return fmt.Errorf("duplicate world name: %q", w.Name)
	}
	m.worlds[w.Name] = w
	if m.first == "" {
		m.first = w.Name
	}
	return nil
}

// Unregister removes the named world.
//
// Postcondition: Returns true if a world was removed.
func (m *Manager) Unregister(name string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.worlds[name]; !ok {
		return false
	}
	delete(m.worlds, name)
	if m.first == name {
		m.first = ""
	}
	return true
}

// World returns the world with the given name.
//
// Postcondition: Returns (world, true) if found, or (nil, false) otherwise.
func (m *Manager) World(name string) (*World, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	w, ok := m.worlds[name]
	return w, ok
}

// Default returns the first world registered, the server's main world.
//
// Postcondition: Returns (nil, false) if that world was unregistered or none exist.
func (m *Manager) Default() (*World, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.first == "" {
		return nil, false
	}
	return m.worlds[m.first], true
}

// Names returns all registered world names in lexicographic order.
func (m *Manager) Names() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	names := make([]string, 0, len(m.worlds))
	for n := range m.worlds {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Count returns the number of registered worlds.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.worlds)
}
