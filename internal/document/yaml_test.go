package document

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
# server messages
messages:
  join: "&a%player% joined"
  motd:
    - "&6Welcome"
    - ""
    - 42
  empty: ~
spawn: world/0/64/0/90/0
limits:
  max-homes: 3
  enabled: true
`

func writeSample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0644))
	return path
}

func TestOpen_ReadsValues(t *testing.T) {
	doc, err := Open(writeSample(t), nil)
	require.NoError(t, err)

	s, ok := doc.String("messages.join")
	assert.True(t, ok)
	assert.Equal(t, "&a%player% joined", s)

	s, ok = doc.String("limits.max-homes")
	assert.True(t, ok)
	assert.Equal(t, "3", s)

	s, ok = doc.String("limits.enabled")
	assert.True(t, ok)
	assert.Equal(t, "true", s)
}

func TestString_SoftAbsence(t *testing.T) {
	doc, err := Open(writeSample(t), nil)
	require.NoError(t, err)

	for _, key := range []string{"missing", "messages.empty", "messages", "messages.motd"} {
		_, ok := doc.String(key)
		assert.False(t, ok, "key %q", key)
	}
}

func TestStringList(t *testing.T) {
	doc, err := Open(writeSample(t), nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"&6Welcome", "", "42"}, doc.StringList("messages.motd"))
	assert.Nil(t, doc.StringList("messages.join"))
	assert.Nil(t, doc.StringList("missing"))
}

func TestKeysCaseInsensitive(t *testing.T) {
	doc, err := Open(writeSample(t), nil)
	require.NoError(t, err)
	assert.True(t, doc.IsSet("Messages.Join"))
	assert.Contains(t, doc.Keys(), "spawn")
}

func TestClear_KeepsFile(t *testing.T) {
	path := writeSample(t)
	doc, err := Open(path, nil)
	require.NoError(t, err)

	doc.Clear()
	assert.Empty(t, doc.Keys())
	_, ok := doc.String("spawn")
	assert.False(t, ok)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, sampleYAML, string(data))

	require.NoError(t, doc.Reload())
	assert.True(t, doc.IsSet("spawn"))
}

func TestReload_PicksUpChanges(t *testing.T) {
	path := writeSample(t)
	doc, err := Open(path, nil)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("spawn: world/1/2/3\n"), 0644))
	require.NoError(t, doc.Reload())
	s, _ := doc.String("spawn")
	assert.Equal(t, "world/1/2/3", s)
	assert.False(t, doc.IsSet("messages.join"))
}

func TestReload_ErrorKeepsValues(t *testing.T) {
	path := writeSample(t)
	doc, err := Open(path, nil)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("spawn: [unterminated\n"), 0644))
	assert.Error(t, doc.Reload())
	assert.True(t, doc.IsSet("messages.join"))
}

func TestOpen_Missing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope.yml"), nil)
	assert.Error(t, err)
}

func TestSettings(t *testing.T) {
	doc, err := Open(writeSample(t), nil)
	require.NoError(t, err)
	assert.Contains(t, doc.Settings(), "messages")
	assert.Equal(t, filepath.Base(doc.Path()), "config.yml")
}
