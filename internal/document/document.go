// Package document exposes loaded YAML configuration files as dotted-key
// documents.
package document

import "fmt"

// Document is an in-memory view of one configuration file.
//
// Documents are owned by a single caller; implementations do not synchronize
// Reload and Clear against concurrent reads.
type Document interface {
	// String returns the scalar at key rendered as text.
	// Missing keys, null values and non-scalar values report false.
	String(key string) (string, bool)
	// StringList returns the list at key with each element rendered as text.
	// Missing keys and non-list values yield nil.
	StringList(key string) []string
	// IsSet reports whether key holds a value.
	IsSet(key string) bool
	// Keys returns every leaf key in sorted order.
	Keys() []string
	// Clear empties the in-memory values without touching the file.
	Clear()
	// Reload re-reads the backing file, replacing the in-memory values.
	Reload() error
	// Path returns the backing file path, or "" for purely in-memory documents.
	Path() string
}

func scalarString(v any) (string, bool) {
	switch val := v.(type) {
	case nil:
		return "", false
	case map[string]any, []any:
		return "", false
	case string:
		return val, true
	default:
		return fmt.Sprint(val), true
	}
}

func listStrings(v any) []string {
	switch val := v.(type) {
	case []string:
		out := make([]string, len(val))
		copy(out, val)
		return out
	case []any:
		out := make([]string, len(val))
		for i, e := range val {
			s, _ := scalarString(e)
			out[i] = s
		}
		return out
	default:
		return nil
	}
}
