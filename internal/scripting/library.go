package scripting

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// Extension is the file extension of filter scripts.
const Extension = ".lua"

// Library holds named filters loaded from a directory, one filter per file.
// A filter's name is its file name without the extension.
//
// Library lookups are safe for concurrent use. The Filters it returns are not.
type Library struct {
	mu        sync.RWMutex
	filters   map[string]*Filter
	instLimit int
	logger    *zap.Logger
}

// NewLibrary creates an empty Library whose filters run under instLimit.
func NewLibrary(instLimit int, logger *zap.Logger) *Library {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Library{
		filters:   make(map[string]*Filter),
		instLimit: instLimit,
		logger:    logger.Named("library"),
	}
}

// LoadDir compiles every *.lua file in dir and replaces the library contents.
// Nothing is replaced if any file fails to compile.
//
// Precondition: dir must be a readable directory.
// Postcondition: Returns the number of filters loaded or an error.
func (l *Library) LoadDir(dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("scripting: reading filter dir %q: %w", dir, err)
	}

	var files []string
	for _, e := range entries {
		if !e.IsDir() && filepath.Ext(e.Name()) == Extension {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)

	loaded := make(map[string]*Filter, len(files))
	closeAll := func() {
		for _, f := range loaded {
			f.Close()
		}
	}
	for _, name := range files {
		path := filepath.Join(dir, name)
		src, err := os.ReadFile(path)
		if err != nil {
			closeAll()
			return 0, fmt.Errorf("scripting: reading %q: %w", path, err)
		}
		f, err := CompileFilter(string(src), l.instLimit, l.logger)
		if err != nil {
			closeAll()
			return 0, fmt.Errorf("scripting: loading %q: %w", path, err)
		}
		loaded[strings.TrimSuffix(name, Extension)] = f
	}

	l.mu.Lock()
	old := l.filters
	l.filters = loaded
	l.mu.Unlock()
	for _, f := range old {
		f.Close()
	}

	l.logger.Info("filters loaded", zap.String("dir", dir), zap.Int("count", len(loaded)))
	return len(loaded), nil
}

// Filter returns the filter called name.
func (l *Library) Filter(name string) (*Filter, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	f, ok := l.filters[name]
	return f, ok
}

// Names returns the loaded filter names in sorted order.
func (l *Library) Names() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	names := make([]string, 0, len(l.filters))
	for n := range l.filters {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Close releases every loaded filter.
func (l *Library) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, f := range l.filters {
		f.Close()
	}
	l.filters = make(map[string]*Filter)
}
