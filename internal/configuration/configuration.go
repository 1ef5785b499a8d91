// Package configuration provides the shared base for plugin configuration
// files: provisioning, typed accessors and timed reloads.
//
// A concrete configuration embeds *Base and implements Configuration:
//
//	type Settings struct {
//		*configuration.Base
//		joinMessage string
//	}
//
//	func (s *Settings) InitConfig() bool { return s.InitFiles(true, "", "", "") }
//	func (s *Settings) LoadConfig()      { s.joinMessage, _ = s.String("messages.join") }
package configuration

import (
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
	"go.uber.org/zap"
)

// Configuration is implemented by every concrete configuration file.
type Configuration interface {
	// InitConfig provisions or upgrades the backing file and reports success.
	InitConfig() bool
	// LoadConfig copies values from the loaded document into the
	// implementation's own fields.
	LoadConfig()
	// ConfigVersion returns the version recorded in the file.
	ConfigVersion() string
	// PluginVersion returns the version the running plugin expects.
	PluginVersion() string
}

type loggerProvider interface {
	Logger() *zap.Logger
}

// Reload runs InitConfig then LoadConfig and returns the elapsed wall-clock
// time. When InitConfig fails Reload returns 0 without calling LoadConfig.
func Reload(c Configuration) time.Duration {
	logger := zap.NewNop()
	if lp, ok := c.(loggerProvider); ok && lp.Logger() != nil {
		logger = lp.Logger()
	}

	start := time.Now()
	if !c.InitConfig() {
		logger.Warn("configuration init failed; reload skipped")
		return 0
	}
	c.LoadConfig()
	elapsed := time.Since(start)

	logger.Info("configuration reloaded",
		zap.Duration("elapsed", elapsed),
		zap.String("config_version", c.ConfigVersion()),
	)
	return elapsed
}

// NeedsMigration reports whether the file's recorded version differs from the
// version the plugin expects.
func NeedsMigration(c Configuration) bool {
	return strings.TrimSpace(c.ConfigVersion()) != strings.TrimSpace(c.PluginVersion())
}

// Outdated reports whether the file's recorded version is older than the
// plugin's. Versions are compared as semantic versions; when either does not
// parse, Outdated falls back to NeedsMigration.
func Outdated(c Configuration) bool {
	cv, err := semver.NewVersion(strings.TrimSpace(c.ConfigVersion()))
	if err != nil {
		return NeedsMigration(c)
	}
	pv, err := semver.NewVersion(strings.TrimSpace(c.PluginVersion()))
	if err != nil {
		return NeedsMigration(c)
	}
	return cv.LessThan(pv)
}
