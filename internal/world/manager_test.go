package world

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func testWorlds() []*World {
	return []*World{New("world", Normal), New("world_nether", Nether)}
}

func TestNewManager(t *testing.T) {
	mgr, err := NewManager(testWorlds())
	require.NoError(t, err)
	assert.Equal(t, 2, mgr.Count())
	assert.Equal(t, []string{"world", "world_nether"}, mgr.Names())
}

func TestNewManager_Duplicate(t *testing.T) {
	_, err := NewManager([]*World{New("world", Normal), New("world", Nether)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate world name")
}

func TestNewManager_Invalid(t *testing.T) {
	_, err := NewManager([]*World{{Name: ""}})
	assert.Error(t, err)
}

func TestManager_World(t *testing.T) {
	mgr, err := NewManager(testWorlds())
	require.NoError(t, err)

	w, ok := mgr.World("world_nether")
	require.True(t, ok)
	assert.Equal(t, Nether, w.Environment)

	_, ok = mgr.World("World")
	assert.False(t, ok)
}

func TestManager_DefaultAndUnregister(t *testing.T) {
	mgr, err := NewManager(testWorlds())
	require.NoError(t, err)

	def, ok := mgr.Default()
	require.True(t, ok)
	assert.Equal(t, "world", def.Name)

	assert.True(t, mgr.Unregister("world"))
	assert.False(t, mgr.Unregister("world"))
	_, ok = mgr.Default()
	assert.False(t, ok)
	assert.Equal(t, 1, mgr.Count())
}

func TestPropertyRegisteredWorldsResolve(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 20).Draw(t, "n")
		mgr, err := NewManager(nil)
		require.NoError(t, err)
		for i := 0; i < n; i++ {
			require.NoError(t, mgr.Register(New(fmt.Sprintf("w%d", i), Normal)))
		}
		idx := rapid.IntRange(0, n-1).Draw(t, "idx")
		w, ok := mgr.World(fmt.Sprintf("w%d", idx))
		assert.True(t, ok)
		assert.Equal(t, fmt.Sprintf("w%d", idx), w.Name)
		assert.Equal(t, n, mgr.Count())
	})
}
