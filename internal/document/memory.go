package document

import (
	"maps"
	"sort"
)

// Memory is a Document held entirely in memory under flat dotted keys.
// Reload restores the values it was created with.
type Memory struct {
	initial map[string]any
	values  map[string]any
}

// NewMemory returns a Memory document holding a copy of values.
func NewMemory(values map[string]any) *Memory {
	m := &Memory{initial: maps.Clone(values)}
	if m.initial == nil {
		m.initial = map[string]any{}
	}
	m.values = maps.Clone(m.initial)
	return m
}

// Set stores value at key.
func (m *Memory) Set(key string, value any) {
	m.values[key] = value
}

// String implements Document.
func (m *Memory) String(key string) (string, bool) {
	return scalarString(m.values[key])
}

// StringList implements Document.
func (m *Memory) StringList(key string) []string {
	return listStrings(m.values[key])
}

// IsSet implements Document.
func (m *Memory) IsSet(key string) bool {
	v, ok := m.values[key]
	return ok && v != nil
}

// Keys implements Document.
func (m *Memory) Keys() []string {
	keys := make([]string, 0, len(m.values))
	for k := range m.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Clear implements Document.
func (m *Memory) Clear() {
	m.values = map[string]any{}
}

// Reload implements Document.
func (m *Memory) Reload() error {
	m.values = maps.Clone(m.initial)
	return nil
}

// Path implements Document.
func (m *Memory) Path() string { return "" }
