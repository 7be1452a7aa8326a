package config

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/incsel/internal/config/loader"
	"github.com/dshills/incsel/internal/host"
	"github.com/dshills/incsel/internal/renderer/overlay"
)

type memFS map[string]string

func (m memFS) ReadFile(path string) ([]byte, error) {
	s, ok := m[path]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return []byte(s), nil
}

type envMap map[string]string

func (e envMap) loader() *loader.EnvLoader {
	return loader.NewEnvLoaderWithLookup(func(k string) (string, bool) {
		v, ok := e[k]
		return v, ok
	})
}

func TestDefaultIsValid(t *testing.T) {
	s := Default()
	require.NoError(t, s.Validate())

	assert.Equal(t, overlay.DefaultKey, s.Marker.Key)
	assert.Equal(t, 1000, s.History.MaxEntries)
	assert.NotContains(t, s.History.UndoableCommands, "incremental_select_toggle")
	assert.Equal(t, "soft_undo", s.Keymap["ctrl+z"])
}

func TestLoadWithoutFile(t *testing.T) {
	s, err := LoadWith(memFS{}, "", nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), s)
}

func TestLoadMissingFile(t *testing.T) {
	s, err := LoadWith(memFS{}, "/absent.toml", nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), s)
}

func TestLoadTOMLOverrides(t *testing.T) {
	fsys := memFS{"/incsel.toml": `
[marker]
style = "underline"

[history]
max_entries = 0

[keymap]
"f2" = "incremental_select_add"
`}

	s, err := LoadWith(fsys, "/incsel.toml", nil)
	require.NoError(t, err)

	assert.Equal(t, "underline", s.Marker.Style)
	assert.Equal(t, "region.bluish", s.Marker.Scope, "unset values keep defaults")
	assert.Equal(t, 0, s.History.MaxEntries)
	assert.Equal(t, "incremental_select_add", s.Keymap["f2"])
	assert.Equal(t, "soft_undo", s.Keymap["ctrl+z"], "keymap entries merge")
}

func TestLoadYAML(t *testing.T) {
	fsys := memFS{"/incsel.yaml": `
logging:
  level: debug
history:
  undoable_commands: [incremental_select_add]
`}

	s, err := LoadWith(fsys, "/incsel.yaml", nil)
	require.NoError(t, err)

	assert.Equal(t, "debug", s.Logging.Level)
	assert.Equal(t, []string{"incremental_select_add"}, s.History.UndoableCommands)
}

func TestEnvOverridesFile(t *testing.T) {
	fsys := memFS{"/incsel.toml": "[logging]\nlevel = \"warn\"\n"}
	env := envMap{"INCSEL_LOG_LEVEL": "error", "INCSEL_HISTORY_MAX": "7"}

	s, err := LoadWith(fsys, "/incsel.toml", env.loader())
	require.NoError(t, err)

	assert.Equal(t, "error", s.Logging.Level)
	assert.Equal(t, 7, s.History.MaxEntries)
}

func TestLoadRejectsInvalid(t *testing.T) {
	fsys := memFS{"/incsel.toml": `
[marker]
key = ""
style = "sparkle"

[history]
max_entries = -1
undoable_commands = ["incremental_select_toggle"]

[logging]
level = "loud"
`}

	_, err := LoadWith(fsys, "/incsel.toml", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidationFailed)

	for _, path := range []string{"marker.key", "marker.style", "history.max_entries", "history.undoable_commands", "logging.level"} {
		assert.Contains(t, err.Error(), path)
	}
}

func TestLoadParseError(t *testing.T) {
	fsys := memFS{"/incsel.toml": "[marker\n"}

	_, err := LoadWith(fsys, "/incsel.toml", nil)
	var pe *loader.ParseError
	assert.True(t, errors.As(err, &pe), "got %v", err)
}

func TestLoadUnsupportedFormat(t *testing.T) {
	_, err := LoadWith(memFS{}, "/incsel.ini", nil)
	assert.ErrorIs(t, err, loader.ErrUnsupportedFormat)
}

func TestRegionStyle(t *testing.T) {
	style, err := MarkerSettings{Scope: "region.redish", Style: "underline"}.RegionStyle()
	require.NoError(t, err)
	assert.Equal(t, host.RegionStyle{Scope: "region.redish", Flags: host.DrawUnderline}, style)

	_, err = MarkerSettings{Style: "nope"}.RegionStyle()
	assert.Error(t, err)
}

func TestClone(t *testing.T) {
	s := Default()
	c := s.Clone()
	c.Keymap["ctrl+z"] = "other"
	c.History.UndoableCommands[0] = "other"

	assert.Equal(t, "soft_undo", s.Keymap["ctrl+z"])
	assert.NotEqual(t, "other", s.History.UndoableCommands[0])
}
