package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alenalex/mcutil/internal/location"
)

// writeToolkitConfig creates a toolkit config whose data directory and world
// file live in a temporary directory.
func writeToolkitConfig(t *testing.T) (path, dataDir string) {
	t.Helper()
	dir := t.TempDir()
	dataDir = filepath.Join(dir, "plugins", "Lobby")
	worlds := filepath.Join(dir, "worlds.yaml")
	require.NoError(t, os.WriteFile(worlds, []byte(`
worlds:
  - name: world
    environment: normal
  - name: lobby_nether
    environment: nether
`), 0644))

	path = filepath.Join(dir, "mcutil.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
plugin:
  name: Lobby
  version: 2.0.1
  data_dir: `+dataDir+`
  prefix: "&8[Lobby]"
worlds:
  file: `+worlds+`
logging:
  level: error
`), 0644))
	return path, dataDir
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	configFile = ""
	cmd := NewRootCmd()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func lines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}

func TestRootCommand_HasExpectedSubcommands(t *testing.T) {
	out, err := run(t, "--help")
	require.NoError(t, err)
	for _, sub := range []string{"location", "chat", "enum", "config"} {
		assert.Contains(t, out, sub, "Help missing %q command", sub)
	}
}

func TestLocationEncode(t *testing.T) {
	out, err := run(t, "location", "encode", "world", "1.5", "64", "-3", "90.7", "45")
	require.NoError(t, err)
	assert.Equal(t, "world/1/64/-3/90/45\n", out)

	out, err = run(t, "location", "encode", "--block", "world", "1.5", "64", "-3")
	require.NoError(t, err)
	assert.Equal(t, "world/1/64/-3\n", out)

	_, err = run(t, "location", "encode", "world", "1", "2")
	assert.Error(t, err)
	_, err = run(t, "location", "encode", "world", "x", "2", "3")
	assert.Error(t, err)
}

func TestLocationDecode(t *testing.T) {
	cfg, _ := writeToolkitConfig(t)

	out, err := run(t, "--config", cfg, "location", "decode", "--exact", "world/1/64/-3/90/45")
	require.NoError(t, err)
	assert.Equal(t, "world=world x=1 y=64 z=-3 yaw=90 pitch=45\n", out)

	out, err = run(t, "--config", cfg, "location", "decode", "world/1/64/-3/90/45")
	require.NoError(t, err)
	assert.Equal(t, "world=world x=1 y=64 z=-3 yaw=0 pitch=0\n", out)

	_, err = run(t, "--config", cfg, "location", "decode", "mars/0/0/0")
	assert.True(t, errors.Is(err, location.ErrWorldNotFound))
}

func TestLocationScan(t *testing.T) {
	cfg, dataDir := writeToolkitConfig(t)

	out, err := run(t, "--config", cfg, "location", "scan", "world/0/64/0", "--radius", "1")
	require.NoError(t, err)
	got := lines(out)
	assert.Len(t, got, 27)
	assert.Equal(t, "world/-1/63/-1", got[0])
	assert.Equal(t, "world/1/65/1", got[26])

	out, err = run(t, "--config", cfg, "location", "scan", "world/0/64/0", "--radius", "1", "--shape", "circle")
	require.NoError(t, err)
	assert.Len(t, lines(out), 7)

	out, err = run(t, "--config", cfg, "location", "scan", "world/0/64/0", "--radius", "1", "--filter", "y == 64")
	require.NoError(t, err)
	assert.Len(t, lines(out), 9)

	filters := filepath.Join(dataDir, "filters")
	require.NoError(t, os.MkdirAll(filters, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(filters, "column.lua"), []byte("x == 0 and z == 0"), 0644))
	out, err = run(t, "--config", cfg, "location", "scan", "world/0/64/0", "--radius", "1", "--filter", "@column")
	require.NoError(t, err)
	assert.Equal(t, []string{"world/0/63/0", "world/0/64/0", "world/0/65/0"}, lines(out))
	_, err = run(t, "--config", cfg, "location", "scan", "world/0/64/0", "--filter", "@missing")
	assert.Error(t, err)

	out, err = run(t, "--config", cfg, "location", "scan", "lobby_nether/0/0/0", "--radius", "1", "--build-height")
	require.NoError(t, err)
	assert.Len(t, lines(out), 18)

	_, err = run(t, "--config", cfg, "location", "scan", "world/0/64/0", "--shape", "hexagon")
	assert.Error(t, err)
	_, err = run(t, "--config", cfg, "location", "scan", "world/0/64/0", "--filter", "this is not lua")
	assert.Error(t, err)
}

func TestChatCommands(t *testing.T) {
	cfg, _ := writeToolkitConfig(t)

	out, err := run(t, "--config", cfg, "chat", "colorize", "&cHello")
	require.NoError(t, err)
	assert.Equal(t, "§cHello\n", out)

	out, err = run(t, "--config", cfg, "chat", "strip", "&cHello", "&lthere")
	require.NoError(t, err)
	assert.Equal(t, "Hello there\n", out)

	out, err = run(t, "--config", cfg, "chat", "format", "hi")
	require.NoError(t, err)
	assert.Equal(t, "&8[Lobby] hi\n", out)

	out, err = run(t, "--config", cfg, "chat", "send", "hi")
	require.NoError(t, err)
	assert.Contains(t, out, "[Lobby] hi")
	assert.NotContains(t, out, "§")

	_, err = run(t, "--config", cfg, "chat", "colorize", "   ")
	assert.Error(t, err)
}

func TestEnumCommands(t *testing.T) {
	out, err := run(t, "enum", "material", "DIAMOND")
	require.NoError(t, err)
	assert.Equal(t, "DIAMOND\n", out)

	_, err = run(t, "enum", "material", "NOT_A_MATERIAL")
	assert.Error(t, err)

	out, err = run(t, "enum", "material", "--match", "DIAMOND*")
	require.NoError(t, err)
	assert.Contains(t, lines(out), "DIAMOND")
	for _, l := range lines(out) {
		assert.True(t, strings.HasPrefix(l, "DIAMOND"), l)
	}

	out, err = run(t, "enum", "sound", "--list")
	require.NoError(t, err)
	assert.Contains(t, lines(out), "UI_BUTTON_CLICK")
}

func TestConfigShow(t *testing.T) {
	cfg, dataDir := writeToolkitConfig(t)

	out, err := run(t, "--config", cfg, "config", "show", "messages.join")
	require.NoError(t, err)
	assert.Equal(t, "§e%player% §7joined the server\n", out)
	assert.FileExists(t, filepath.Join(dataDir, "config.yml"))

	out, err = run(t, "--config", cfg, "config", "show", "version")
	require.NoError(t, err)
	assert.Equal(t, "2.0.1\n", out)

	out, err = run(t, "--config", cfg, "config", "show", "messages.motd")
	require.NoError(t, err)
	assert.Equal(t, []string{"§6Welcome!", "", "§7Type §b/help §7to get started."}, lines(out))

	out, err = run(t, "--config", cfg, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, lines(out), "spawn")

	_, err = run(t, "--config", cfg, "config", "show", "no.such.key")
	assert.Error(t, err)

	raw, err := os.ReadFile(filepath.Join(dataDir, "config.yml"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), "# Shown to everyone when a player joins.")
}

func TestConfigWatch_StopsOnCancel(t *testing.T) {
	cfg, dataDir := writeToolkitConfig(t)
	configFile = ""

	cmd := NewRootCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"--config", cfg, "config", "watch", "--debounce", "10ms"})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- cmd.ExecuteContext(ctx) }()

	require.Eventually(t, func() bool {
		_, err := os.Stat(filepath.Join(dataDir, "config.yml"))
		return err == nil
	}, 5*time.Second, 20*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("config watch did not stop")
	}
}

func TestInvalidToolkitConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: trace\n"), 0644))

	_, err := run(t, "--config", path, "chat", "colorize", "&a")
	assert.Error(t, err)
}

func TestEnvOverridesWithoutConfigFile(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("MCUTIL_PLUGIN_PREFIX", "[P]")
	t.Setenv("MCUTIL_LOGGING_LEVEL", "error")

	out, err := run(t, "chat", "format", "hi")
	require.NoError(t, err)
	assert.Equal(t, "[P] hi\n", out)
}

func TestInvalidEnvOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("MCUTIL_LOGGING_LEVEL", "trace")

	_, err := run(t, "chat", "colorize", "&a")
	assert.Error(t, err)
}
