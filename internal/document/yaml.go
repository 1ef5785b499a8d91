package document

import (
	"fmt"
	"sort"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// YAML is a Document backed by a YAML file on disk. Keys are dotted and
// case-insensitive. Changes on disk are only picked up by Reload.
type YAML struct {
	path   string
	v      *viper.Viper
	logger *zap.Logger
}

// Open reads the YAML file at path.
//
// Precondition: path must name a readable YAML file.
// Postcondition: Returns a loaded document or a non-nil error.
func Open(path string, logger *zap.Logger) (*YAML, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	d := &YAML{path: path, v: viper.New(), logger: logger.Named("document")}
	if err := d.Reload(); err != nil {
		return nil, err
	}
	return d, nil
}

// Reload re-reads the file. On error the previous values are kept.
func (d *YAML) Reload() error {
	v := viper.New()
	v.SetConfigFile(d.path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("reading document %s: %w", d.path, err)
	}
	d.v = v
	d.logger.Debug("document loaded",
		zap.String("path", d.path),
		zap.Int("keys", len(v.AllKeys())),
	)
	return nil
}

// Clear drops every in-memory value. The file is left untouched.
func (d *YAML) Clear() {
	d.v = viper.New()
}

// String implements Document.
func (d *YAML) String(key string) (string, bool) {
	if !d.v.IsSet(key) {
		return "", false
	}
	return scalarString(d.v.Get(key))
}

// StringList implements Document.
func (d *YAML) StringList(key string) []string {
	if !d.v.IsSet(key) {
		return nil
	}
	return listStrings(d.v.Get(key))
}

// IsSet implements Document.
func (d *YAML) IsSet(key string) bool {
	return d.v.IsSet(key)
}

// Keys implements Document.
func (d *YAML) Keys() []string {
	keys := d.v.AllKeys()
	sort.Strings(keys)
	return keys
}

// Path implements Document.
func (d *YAML) Path() string { return d.path }

// Settings returns a nested copy of every in-memory value.
func (d *YAML) Settings() map[string]any {
	return d.v.AllSettings()
}
