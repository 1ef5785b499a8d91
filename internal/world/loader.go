package world

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// yamlWorldFile is the top-level YAML structure for world files.
type yamlWorldFile struct {
	Worlds []yamlWorld `yaml:"worlds"`
}

// yamlWorld is the YAML representation of a world.
type yamlWorld struct {
	Name        string `yaml:"name"`
	UUID        string `yaml:"uuid"`
	Environment string `yaml:"environment"`
	MinY        *int   `yaml:"min_y"`
	Height      *int   `yaml:"height"`
}

// LoadWorldsFromFile reads and validates a world list YAML file.
//
// Precondition: path must point to a valid YAML world file.
// Postcondition: Returns validated worlds or a non-nil error.
func LoadWorldsFromFile(path string) ([]*World, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading world file %s: %w", path, err)
	}
	return LoadWorldsFromBytes(data)
}

// LoadWorldsFromBytes parses and validates a world list from YAML bytes.
//
// Precondition: data must be valid YAML conforming to the world schema.
// Postcondition: Returns validated worlds, in file order, or a non-nil error.
func LoadWorldsFromBytes(data []byte) ([]*World, error) {
	var file yamlWorldFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing world YAML: %w", err)
	}
	if len(file.Worlds) == 0 {
		return nil, fmt.Errorf("world file declares no worlds")
	}

	worlds := make([]*World, 0, len(file.Worlds))
	for i, yw := range file.Worlds {
		w, err := convertYAMLWorld(yw)
		if err != nil {
			return nil, fmt.Errorf("world #%d: %w", i, err)
		}
		if err := w.Validate(); err != nil {
			return nil, fmt.Errorf("validating world: %w", err)
		}
		worlds = append(worlds, w)
	}
	return worlds, nil
}

// convertYAMLWorld converts the parsed YAML structure into the domain type.
func convertYAMLWorld(yw yamlWorld) (*World, error) {
	env := Environment(yw.Environment)
	if env == "" {
		env = Normal
	}
	w := New(yw.Name, env)
	if yw.UUID != "" {
		id, err := uuid.Parse(yw.UUID)
		if err != nil {
			return nil, fmt.Errorf("parsing uuid %q: %w", yw.UUID, err)
		}
		w.UUID = id
	}
	if yw.MinY != nil {
		w.MinY = *yw.MinY
	}
	if yw.Height != nil {
		w.Height = *yw.Height
	}
	return w, nil
}
