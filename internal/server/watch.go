package server

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/alenalex/mcutil/internal/configuration"
	"github.com/alenalex/mcutil/internal/document"
	"github.com/alenalex/mcutil/internal/executor"
)

// ReloadService reloads a configuration every time its file changes on disk.
type ReloadService struct {
	cfg      configuration.Configuration
	path     string
	watcher  *document.Watcher
	exec     executor.Executor
	logger   *zap.Logger
	onReload func(elapsed time.Duration)

	mu      sync.Mutex
	cancel  context.CancelFunc
	stopped bool
}

// NewReloadService watches path and calls configuration.Reload(cfg) on each
// change. onReload, if non-nil, receives every reload duration; 0 means
// InitConfig failed.
func NewReloadService(cfg configuration.Configuration, path string, watcher *document.Watcher,
	exec executor.Executor, logger *zap.Logger, onReload func(time.Duration)) *ReloadService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReloadService{
		cfg:      cfg,
		path:     path,
		watcher:  watcher,
		exec:     exec,
		logger:   logger.Named("reload"),
		onReload: onReload,
	}
}

// Start blocks until Stop is called.
func (s *ReloadService) Start() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return nil
	}
	s.cancel = cancel
	s.mu.Unlock()

	return s.watcher.Watch(ctx, s.path, s.exec, func() {
		elapsed := configuration.Reload(s.cfg)
		if elapsed == 0 {
			s.logger.Warn("reload failed", zap.String("path", s.path))
		}
		s.checkVersion()
		if s.onReload != nil {
			s.onReload(elapsed)
		}
	})
}

// checkVersion warns when the reloaded file was written by an older plugin,
// or by one whose version cannot be ordered against the running plugin.
func (s *ReloadService) checkVersion() {
	fields := []zap.Field{
		zap.String("config_version", s.cfg.ConfigVersion()),
		zap.String("plugin_version", s.cfg.PluginVersion()),
	}
	switch {
	case configuration.Outdated(s.cfg):
		s.logger.Warn("configuration is older than plugin", fields...)
	case configuration.NeedsMigration(s.cfg):
		s.logger.Warn("configuration version differs from plugin version", fields...)
	}
}

// Stop ends a running Start. A Start that has not begun yet returns at once.
func (s *ReloadService) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopped = true
	if s.cancel != nil {
		s.cancel()
	}
}
