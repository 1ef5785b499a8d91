package server

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/alenalex/mcutil/internal/document"
	"github.com/alenalex/mcutil/internal/executor"
)

type fileConfig struct {
	doc   *document.YAML
	loads atomic.Int32
}

func (c *fileConfig) InitConfig() bool { return c.doc.Reload() == nil }

func (c *fileConfig) LoadConfig() { c.loads.Add(1) }

func (c *fileConfig) ConfigVersion() string {
	v, _ := c.doc.String("version")
	return v
}

func (c *fileConfig) PluginVersion() string { return "1.0.0" }

func TestReloadServiceReloadsOnChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("version: 1.0.0\n"), 0644))
	doc, err := document.Open(path, nil)
	require.NoError(t, err)
	cfg := &fileConfig{doc: doc}

	reloads := make(chan time.Duration, 16)
	svc := NewReloadService(cfg, path, document.NewWatcher(20*time.Millisecond, nil),
		executor.Sync{}, nil, func(d time.Duration) { reloads <- d })

	done := make(chan error, 1)
	go func() { done <- svc.Start() }()

	require.Eventually(t, func() bool {
		_ = os.WriteFile(path, []byte("version: 2.0.0\n"), 0644)
		select {
		case d := <-reloads:
			return d > 0
		default:
			return false
		}
	}, 5*time.Second, 100*time.Millisecond)

	assert.Equal(t, "2.0.0", cfg.ConfigVersion())
	assert.Positive(t, cfg.loads.Load())

	svc.Stop()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("reload service did not stop")
	}
}

func TestReloadServiceStopBeforeStart(t *testing.T) {
	svc := NewReloadService(&fileConfig{}, "unused.yml", document.NewWatcher(0, nil), executor.Sync{}, nil, nil)
	svc.Stop()
	assert.NoError(t, svc.Start())
}

type versionConfig struct{ config, plugin string }

func (versionConfig) InitConfig() bool        { return true }
func (versionConfig) LoadConfig()             {}
func (v versionConfig) ConfigVersion() string { return v.config }
func (v versionConfig) PluginVersion() string { return v.plugin }

func TestReloadServiceVersionWarnings(t *testing.T) {
	cases := []struct {
		name    string
		cfg     versionConfig
		message string
	}{
		{"older", versionConfig{"1.2.0", "1.10.0"}, "configuration is older than plugin"},
		{"newer", versionConfig{"2.0.0", "1.10.0"}, "configuration version differs from plugin version"},
		{"unparseable", versionConfig{"beta", "1.0.0"}, "configuration version differs from plugin version"},
		{"current", versionConfig{"1.0.0", " 1.0.0 "}, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			core, logs := observer.New(zap.WarnLevel)
			svc := NewReloadService(tc.cfg, "unused.yml", document.NewWatcher(0, nil), executor.Sync{}, zap.New(core), nil)
			svc.checkVersion()

			if tc.message == "" {
				assert.Zero(t, logs.Len())
				return
			}
			require.Equal(t, 1, logs.Len())
			entry := logs.All()[0]
			assert.Equal(t, tc.message, entry.Message)
			assert.Equal(t, tc.cfg.config, entry.ContextMap()["config_version"])
		})
	}
}
