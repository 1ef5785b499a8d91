// Package config provides Viper-based configuration loading for the plugin toolkit.
package config

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/spf13/viper"
)

// PluginConfig describes the plugin the utilities are serving.
type PluginConfig struct {
	// Name is the plugin's display name.
	Name string `mapstructure:"name"`
	// Version is the running plugin version, written into config.yml.
	Version string `mapstructure:"version"`
	// DataDir is the plugin-private directory holding every provisioned file.
	DataDir string `mapstructure:"data_dir"`
	// Prefix is prepended to outgoing chat messages. Empty disables prefixing.
	Prefix string `mapstructure:"prefix"`
	// ColorMarker is the alternate color-code marker character.
	ColorMarker string `mapstructure:"color_marker"`
}

// Marker returns the configured color marker as a rune.
//
// Precondition: ColorMarker has passed Validate.
func (p PluginConfig) Marker() rune {
	r, _ := utf8.DecodeRuneInString(p.ColorMarker)
	return r
}

// WorldsConfig locates the world registry file.
type WorldsConfig struct {
	// File is the YAML world list, relative to the working directory.
	File string `mapstructure:"file"`
}

// ScriptingConfig holds Lua region filter settings.
type ScriptingConfig struct {
	// InstructionLimit caps the opcodes a single filter evaluation may execute.
	InstructionLimit int `mapstructure:"instruction_limit"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// Config is the top-level toolkit configuration.
type Config struct {
	Plugin    PluginConfig    `mapstructure:"plugin"`
	Worlds    WorldsConfig    `mapstructure:"worlds"`
	Scripting ScriptingConfig `mapstructure:"scripting"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validatePlugin(c.Plugin); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateScripting(c.Scripting); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validatePlugin(p PluginConfig) error {
	var errs []string
	if strings.TrimSpace(p.Name) == "" {
		errs = append(errs, "plugin.name must not be empty")
	}
	if strings.TrimSpace(p.Version) == "" {
		errs = append(errs, "plugin.version must not be empty")
	}
	if strings.TrimSpace(p.DataDir) == "" {
		errs = append(errs, "plugin.data_dir must not be empty")
	}
	if utf8.RuneCountInString(p.ColorMarker) != 1 {
		errs = append(errs, fmt.Sprintf("plugin.color_marker must be a single character, got %q", p.ColorMarker))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateScripting(s ScriptingConfig) error {
	if s.InstructionLimit < 0 {
		return fmt.Errorf("scripting.instruction_limit must be >= 0, got %d", s.InstructionLimit)
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result.
//
// Precondition: path must be a valid file path to a YAML configuration file.
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	bindEnv(v)
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}

	return LoadFromViper(v)
}

// LoadEnv builds a Config from the built-in defaults and environment variable
// overrides alone, for when no configuration file is given.
//
// Postcondition: Returns a valid Config or a non-nil error.
func LoadEnv() (Config, error) {
	v := viper.New()
	bindEnv(v)
	setDefaults(v)
	return LoadFromViper(v)
}

// Default returns the built-in configuration with no file or environment applied.
//
// Postcondition: Returns a Config that passes Validate.
func Default() Config {
	v := viper.New()
	setDefaults(v)
	cfg, err := LoadFromViper(v)
	if err != nil {
		panic("config: built-in defaults are invalid: " + err.Error())
	}
	return cfg
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// bindEnv applies MCUTIL_-prefixed environment overrides, e.g.
// MCUTIL_PLUGIN_PREFIX for plugin.prefix.
func bindEnv(v *viper.Viper) {
	v.SetEnvPrefix("MCUTIL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("plugin.name", "Plugin")
	v.SetDefault("plugin.version", "1.0.0")
	v.SetDefault("plugin.data_dir", "plugins/Plugin")
	v.SetDefault("plugin.prefix", "")
	v.SetDefault("plugin.color_marker", "&")

	v.SetDefault("worlds.file", "worlds.yaml")

	v.SetDefault("scripting.instruction_limit", 10_000)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
}
