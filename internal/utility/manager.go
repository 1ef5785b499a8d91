// Package utility wires the leaf helpers a plugin needs into one value.
package utility

import (
	"io/fs"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/alenalex/mcutil/internal/chat"
	"github.com/alenalex/mcutil/internal/config"
	"github.com/alenalex/mcutil/internal/enum"
	"github.com/alenalex/mcutil/internal/executor"
	"github.com/alenalex/mcutil/internal/location"
	"github.com/alenalex/mcutil/internal/observability"
	"github.com/alenalex/mcutil/internal/provision"
)

// Manager holds one instance of each helper, scoped to a single plugin.
type Manager struct {
	plugin    config.PluginConfig
	locations *location.Codec
	files     *provision.Provisioner
	enums     *enum.Validator
	chat      *chat.Formatter
	logger    *zap.Logger
}

// NewManager builds the helpers for plugin. worlds resolves world names for
// the location codec, resources holds bundled file defaults and exec runs
// asynchronous file tasks.
//
// Precondition: plugin must pass config validation and worlds must be non-nil.
// Postcondition: Returns a Manager whose accessors are all non-nil.
func NewManager(plugin config.PluginConfig, worlds location.Worlds, resources fs.FS, exec executor.Executor, logger *zap.Logger) *Manager {
	logger = observability.ForPlugin(logger, plugin)
	return &Manager{
		plugin:    plugin,
		locations: location.NewCodec(worlds),
		files:     provision.New(filepath.Clean(plugin.DataDir), resources, exec, logger),
		enums:     enum.NewValidator(nil, nil),
		chat:      chat.NewFormatterWithMarker(plugin.Prefix, plugin.Marker()),
		logger:    logger,
	}
}

// Plugin returns the plugin settings the manager was built with.
func (m *Manager) Plugin() config.PluginConfig { return m.plugin }

// Locations returns the location codec.
func (m *Manager) Locations() *location.Codec { return m.locations }

// Files returns the file provisioner.
func (m *Manager) Files() *provision.Provisioner { return m.files }

// Enums returns the material and sound validator.
func (m *Manager) Enums() *enum.Validator { return m.enums }

// Chat returns the message formatter.
func (m *Manager) Chat() *chat.Formatter { return m.chat }

// Logger returns the plugin-scoped logger.
func (m *Manager) Logger() *zap.Logger { return m.logger }
