package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/samber/oops"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/alenalex/mcutil/internal/configuration"
	"github.com/alenalex/mcutil/internal/document"
	"github.com/alenalex/mcutil/internal/executor"
	"github.com/alenalex/mcutil/internal/provision"
	"github.com/alenalex/mcutil/internal/server"
	"github.com/alenalex/mcutil/internal/utility"
)

// pluginConfig is the plugin's config.yml.
type pluginConfig struct {
	*configuration.Base
	keys int
}

func newPluginConfig(utils *utility.Manager) *pluginConfig {
	return &pluginConfig{Base: configuration.NewBase(utils)}
}

func (c *pluginConfig) InitConfig() bool {
	return c.InitFiles(true, provision.ConfigFile, "", "")
}

func (c *pluginConfig) LoadConfig() {
	c.keys = len(c.Document().Keys())
}

func (c *pluginConfig) ConfigVersion() string {
	v, _ := c.Raw(provision.VersionKey)
	return v
}

func (c *pluginConfig) PluginVersion() string {
	return c.Utilities().Plugin().Version
}

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Provision and inspect the plugin's config.yml",
	}
	cmd.AddCommand(newConfigShowCmd())
	cmd.AddCommand(newConfigWatchCmd())
	return cmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [key]",
		Short: "Provision config.yml and print a key, or every key",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}
			defer a.close()

			cfg := newPluginConfig(a.utils)
			if configuration.Reload(cfg) == 0 {
				return errProvision(a)
			}

			out := cmd.OutOrStdout()
			if len(args) == 0 {
				for _, k := range cfg.Document().Keys() {
					fmt.Fprintln(out, k)
				}
				return nil
			}
			if v, ok := cfg.String(args[0]); ok {
				fmt.Fprintln(out, v)
				return nil
			}
			if list := cfg.StringList(args[0]); list != nil {
				for _, v := range list {
					fmt.Fprintln(out, v)
				}
				return nil
			}
			return oops.Code("CONFIG_KEY_MISSING").With("key", args[0]).Errorf("key %q is not set", args[0])
		},
	}
}

func newConfigWatchCmd() *cobra.Command {
	var debounce time.Duration
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Reload config.yml whenever it changes until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}
			defer a.close()

			cfg := newPluginConfig(a.utils)
			if configuration.Reload(cfg) == 0 {
				return errProvision(a)
			}

			// Reloads run on the watcher goroutine so they never overlap.
			path := filepath.Join(a.utils.Files().DataDir(), provision.ConfigFile)
			svc := server.NewReloadService(cfg, path, document.NewWatcher(debounce, a.logger), executor.Sync{}, a.logger,
				func(elapsed time.Duration) {
					fmt.Fprintf(cmd.OutOrStdout(), "reloaded %s in %s (%d keys)\n", path, elapsed, cfg.keys)
				})

			lc := server.NewLifecycle(a.logger)
			lc.Add("config-watch", svc)
			a.logger.Info("watching configuration", zap.String("path", path))
			return lc.Run(cmd.Context())
		},
	}
	cmd.Flags().DurationVar(&debounce, "debounce", document.DefaultDebounce, "delay before reloading after a change")
	return cmd
}

func errProvision(a *app) error {
	return oops.Code("PROVISION_FAILED").
		With("data_dir", a.utils.Files().DataDir()).
		Errorf("could not provision %s", provision.ConfigFile)
}
