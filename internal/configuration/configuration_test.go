package configuration_test

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alenalex/mcutil/internal/config"
	"github.com/alenalex/mcutil/internal/configuration"
	"github.com/alenalex/mcutil/internal/document"
	"github.com/alenalex/mcutil/internal/enum"
	"github.com/alenalex/mcutil/internal/location"
	"github.com/alenalex/mcutil/internal/utility"
	"github.com/alenalex/mcutil/internal/world"
)

const bundledConfig = `# Lobby settings
version: "0.0.1"
messages:
  join: "&a%player% joined"
  blank: "   "
motd:
  - "&6Welcome"
  - ""
  - "&7Have fun"
spawn: world/10/64/-5/90/45
broken-spawn: world/ten/64/0
lost-spawn: mars/0/0/0
icon: DIAMOND
bad-icon: DIAMONDS
click: UI_BUTTON_CLICK
`

func newUtilities(t *testing.T) *utility.Manager {
	t.Helper()
	worlds, err := world.NewManager([]*world.World{world.New("world", world.Normal)})
	require.NoError(t, err)

	plugin := config.Default().Plugin
	plugin.Version = "1.4.0"
	plugin.DataDir = filepath.Join(t.TempDir(), "Lobby")
	res := fstest.MapFS{
		"config.yml": {Data: []byte(bundledConfig)},
		"kits.yml":   {Data: []byte("starter:\n  icon: STONE_SWORD\n")},
	}
	return utility.NewManager(plugin, worlds, res, nil, nil)
}

// lobbyConfig is a minimal concrete configuration.
type lobbyConfig struct {
	*configuration.Base
	failInit  bool
	initCalls int
	loadCalls int
	join      string
}

func newLobbyConfig(t *testing.T) *lobbyConfig {
	return &lobbyConfig{Base: configuration.NewBase(newUtilities(t))}
}

func (c *lobbyConfig) InitConfig() bool {
	c.initCalls++
	if c.failInit {
		return false
	}
	return c.InitFiles(true, "", "", "")
}

func (c *lobbyConfig) LoadConfig() {
	c.loadCalls++
	c.join, _ = c.String("messages.join")
}

func (c *lobbyConfig) ConfigVersion() string {
	v, _ := c.Raw("version")
	return v
}

func (c *lobbyConfig) PluginVersion() string {
	return c.Utilities().Plugin().Version
}

var _ configuration.Configuration = (*lobbyConfig)(nil)

func TestReload_LoadsValues(t *testing.T) {
	c := newLobbyConfig(t)

	elapsed := configuration.Reload(c)
	assert.Positive(t, elapsed)
	assert.Equal(t, 1, c.initCalls)
	assert.Equal(t, 1, c.loadCalls)
	assert.Equal(t, "§a%player% joined", c.join)
}

func TestReload_InitFailureSkipsLoad(t *testing.T) {
	c := newLobbyConfig(t)
	c.failInit = true

	assert.Zero(t, configuration.Reload(c))
	assert.Equal(t, 1, c.initCalls)
	assert.Zero(t, c.loadCalls)
}

func TestReload_ProvisioningFailure(t *testing.T) {
	utils := newUtilities(t)
	// A regular file where the data directory should be makes provisioning fail.
	require.NoError(t, os.MkdirAll(filepath.Dir(utils.Plugin().DataDir), 0755))
	require.NoError(t, os.WriteFile(utils.Plugin().DataDir, []byte("x"), 0644))

	c := &lobbyConfig{Base: configuration.NewBase(utils)}
	assert.Zero(t, configuration.Reload(c))
	assert.Zero(t, c.loadCalls)
	assert.Nil(t, c.Document())
}

func TestNeedsMigration(t *testing.T) {
	c := newLobbyConfig(t)
	require.NotZero(t, configuration.Reload(c))
	assert.False(t, configuration.NeedsMigration(c), "config.yml is stamped with the plugin version")

	c.SetDocument(document.NewMemory(map[string]any{"version": " 1.4.0 "}))
	assert.False(t, configuration.NeedsMigration(c))

	c.SetDocument(document.NewMemory(map[string]any{"version": "1.3.9"}))
	assert.True(t, configuration.NeedsMigration(c))
}

// versions is a Configuration with fixed versions.
type versions struct{ config, plugin string }

func (versions) InitConfig() bool        { return true }
func (versions) LoadConfig()             {}
func (v versions) ConfigVersion() string { return v.config }
func (v versions) PluginVersion() string { return v.plugin }

func TestOutdated(t *testing.T) {
	cases := []struct {
		config, plugin string
		want           bool
	}{
		{"1.0.0", "1.0.1", true},
		{"1.2", "1.10.0", true},
		{"2.0.0", "1.9.9", false},
		{"v1.4.0", "1.4.0", false},
		{"1.4.0", "1.4.0", false},
		{"", "1.0.0", true},
		{"custom", "custom", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, configuration.Outdated(versions{tc.config, tc.plugin}),
			"config %q plugin %q", tc.config, tc.plugin)
	}
}

func TestString(t *testing.T) {
	c := newLobbyConfig(t)
	require.True(t, c.InitConfig())

	s, ok := c.String("messages.join")
	assert.True(t, ok)
	assert.Equal(t, "§a%player% joined", s)

	_, ok = c.String("messages.blank")
	assert.False(t, ok, "blank text is absent after colorizing")
	_, ok = c.String("messages.missing")
	assert.False(t, ok)
}

func TestStringList(t *testing.T) {
	c := newLobbyConfig(t)
	require.True(t, c.InitConfig())

	assert.Equal(t, []string{"§6Welcome", "", "§7Have fun"}, c.StringList("motd"))
	assert.Nil(t, c.StringList("missing"))
}

func TestLocation(t *testing.T) {
	c := newLobbyConfig(t)
	require.True(t, c.InitConfig())

	exact, err := c.Location("spawn", true)
	require.NoError(t, err)
	assert.Equal(t, location.Position{World: "world", X: 10, Y: 64, Z: -5, Yaw: 90, Pitch: 45}, exact)

	plain, err := c.Location("spawn", false)
	require.NoError(t, err)
	assert.Equal(t, location.Position{World: "world", X: 10, Y: 64, Z: -5}, plain)

	_, err = c.Location("missing", false)
	assert.ErrorIs(t, err, location.ErrMalformedLocation)
	_, err = c.Location("lost-spawn", false)
	assert.ErrorIs(t, err, location.ErrWorldNotFound)
	_, err = c.Location("broken-spawn", false)
	assert.ErrorIs(t, err, location.ErrInvalidCoordinate)
}

func TestMaterialAndSound(t *testing.T) {
	c := newLobbyConfig(t)
	require.True(t, c.InitConfig())

	m, ok := c.Material("icon")
	assert.True(t, ok)
	assert.Equal(t, enum.Material("DIAMOND"), m)
	_, ok = c.Material("bad-icon")
	assert.False(t, ok)
	_, ok = c.Material("missing")
	assert.False(t, ok)

	s, ok := c.Sound("click")
	assert.True(t, ok)
	assert.Equal(t, enum.Sound("UI_BUTTON_CLICK"), s)
}

func TestClear_KeepsFile(t *testing.T) {
	c := newLobbyConfig(t)
	require.True(t, c.InitConfig())

	c.Clear()
	_, ok := c.String("messages.join")
	assert.False(t, ok)

	require.NotZero(t, configuration.Reload(c))
	assert.Equal(t, "§a%player% joined", c.join)
}

func TestInitFiles_ResourceAndPlain(t *testing.T) {
	base := configuration.NewBase(newUtilities(t))

	require.True(t, base.InitFiles(false, "kits", "data", "kits.yml"))
	m, ok := base.Material("starter.icon")
	assert.True(t, ok)
	assert.Equal(t, enum.Material("STONE_SWORD"), m)
	assert.Equal(t, filepath.Join(base.Utilities().Plugin().DataDir, "data", "kits.yml"), base.Document().Path())

	require.True(t, base.InitFiles(false, "players", "data", " "))
	assert.Empty(t, base.Document().Keys())

	assert.False(t, base.InitFiles(false, "x", "", "missing.yml"))
	assert.Equal(t, filepath.Join(base.Utilities().Plugin().DataDir, "data", "players.yml"), base.Document().Path(),
		"failed init keeps the previous document")
}

func TestBase_NoDocument(t *testing.T) {
	base := configuration.NewBase(newUtilities(t))
	_, ok := base.String("a")
	assert.False(t, ok)
	assert.Nil(t, base.StringList("a"))
	base.Clear()
	_, err := base.Location("a", false)
	assert.ErrorIs(t, err, location.ErrMalformedLocation)
}
