package main

import (
	"embed"
	"errors"
	"io/fs"

	"github.com/samber/oops"
	"go.uber.org/zap"

	"github.com/alenalex/mcutil/internal/config"
	"github.com/alenalex/mcutil/internal/executor"
	"github.com/alenalex/mcutil/internal/observability"
	"github.com/alenalex/mcutil/internal/utility"
	"github.com/alenalex/mcutil/internal/world"
)

//go:embed resources
var bundled embed.FS

// app holds everything a subcommand needs.
type app struct {
	cfg    config.Config
	logger *zap.Logger
	worlds *world.Manager
	utils  *utility.Manager
	exec   *executor.Async
}

// loadApp reads the toolkit configuration named by --config, or the built-in
// defaults when the flag is empty, applies MCUTIL_ environment overrides and
// wires the helpers.
func loadApp() (*app, error) {
	var (
		cfg config.Config
		err error
	)
	if configFile != "" {
		cfg, err = config.Load(configFile)
	} else {
		cfg, err = config.LoadEnv()
	}
	if err != nil {
		return nil, oops.Code("CONFIG_INVALID").With("path", configFile).Wrap(err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		return nil, oops.Code("LOGGER_FAILED").Wrap(err)
	}

	worlds, err := loadWorlds(cfg.Worlds.File)
	if err != nil {
		return nil, oops.Code("WORLDS_INVALID").With("path", cfg.Worlds.File).Wrap(err)
	}

	resources, err := fs.Sub(bundled, "resources")
	if err != nil {
		return nil, oops.Code("RESOURCES_MISSING").Wrap(err)
	}

	exec := executor.NewAsync(logger)
	return &app{
		cfg:    cfg,
		logger: logger,
		worlds: worlds,
		utils:  utility.NewManager(cfg.Plugin, worlds, resources, exec, logger),
		exec:   exec,
	}, nil
}

// close flushes pending work and logs.
func (a *app) close() {
	a.exec.Wait()
	_ = a.logger.Sync()
}

// loadWorlds reads the world list, falling back to the three vanilla worlds
// when the file does not exist.
func loadWorlds(path string) (*world.Manager, error) {
	worlds, err := world.LoadWorldsFromFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		worlds = []*world.World{
			world.New("world", world.Normal),
			world.New("world_nether", world.Nether),
			world.New("world_the_end", world.End),
		}
	} else if err != nil {
		return nil, err
	}
	return world.NewManager(worlds)
}
