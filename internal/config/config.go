package config

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/incsel/internal/config/loader"
	"github.com/dshills/incsel/internal/dispatcher/handlers/history"
	"github.com/dshills/incsel/internal/dispatcher/handlers/selection"
	"github.com/dshills/incsel/internal/host"
	"github.com/dshills/incsel/internal/renderer/overlay"
)

// Settings is the full configuration.
type Settings struct {
	Marker    MarkerSettings    `toml:"marker" yaml:"marker"`
	History   HistorySettings   `toml:"history" yaml:"history"`
	Logging   LoggingSettings   `toml:"logging" yaml:"logging"`
	Scripting ScriptingSettings `toml:"scripting" yaml:"scripting"`
	Keymap    map[string]string `toml:"keymap" yaml:"keymap"`
}

// MarkerSettings control the overlay that shows the saved selection.
type MarkerSettings struct {
	Key   string `toml:"key" yaml:"key"`
	Scope string `toml:"scope" yaml:"scope"`
	Style string `toml:"style" yaml:"style"`
}

// HistorySettings control the selection history.
type HistorySettings struct {
	// MaxEntries bounds the undo stack. Zero means unbounded.
	MaxEntries int `toml:"max_entries" yaml:"max_entries"`

	// UndoableCommands are intercepted by soft undo and soft redo.
	UndoableCommands []string `toml:"undoable_commands" yaml:"undoable_commands"`
}

// LoggingSettings control the logger.
type LoggingSettings struct {
	Level string `toml:"level" yaml:"level"`
	File  string `toml:"file" yaml:"file"`
}

// ScriptingSettings control the Lua runtime.
type ScriptingSettings struct {
	// Init is a Lua file run at startup.
	Init string `toml:"init" yaml:"init"`
}

// Default returns the built-in settings.
func Default() *Settings {
	return &Settings{
		Marker: MarkerSettings{
			Key:   overlay.DefaultKey,
			Scope: "region.bluish",
			Style: "outline",
		},
		History: HistorySettings{
			MaxEntries:       1000,
			UndoableCommands: selection.UndoableActions(),
		},
		Logging: LoggingSettings{
			Level: "info",
		},
		Keymap: map[string]string{
			"alt+a":  selection.ActionAdd,
			"alt+s":  selection.ActionSubtract,
			"alt+c":  selection.ActionClear,
			"alt+t":  selection.ActionToggle,
			"alt+r":  selection.ActionReorient,
			"ctrl+z": history.ActionSoftUndo,
			"ctrl+y": history.ActionSoftRedo,
		},
	}
}

// Clone returns a deep copy of the settings.
func (s *Settings) Clone() *Settings {
	c := *s
	c.History.UndoableCommands = slices.Clone(s.History.UndoableCommands)
	c.Keymap = maps.Clone(s.Keymap)
	return &c
}

// RegionStyle converts the marker settings into a drawing style.
func (m MarkerSettings) RegionStyle() (host.RegionStyle, error) {
	flags, err := overlay.ParseFlags(m.Style)
	if err != nil {
		return host.RegionStyle{}, err
	}
	return host.RegionStyle{Scope: m.Scope, Flags: flags}, nil
}

// Validate checks the settings and returns every problem found.
func (s *Settings) Validate() error {
	var errs []error
	if s.Marker.Key == "" {
		errs = append(errs, &ValidationError{Path: "marker.key", Message: "must not be empty", Value: s.Marker.Key})
	}
	if _, err := overlay.ParseFlags(s.Marker.Style); err != nil {
		errs = append(errs, &ValidationError{Path: "marker.style", Message: "unknown style", Value: s.Marker.Style})
	}
	if s.History.MaxEntries < 0 {
		errs = append(errs, &ValidationError{Path: "history.max_entries", Message: "must not be negative", Value: s.History.MaxEntries})
	}
	for _, name := range s.History.UndoableCommands {
		if name == selection.ActionToggle {
			errs = append(errs, &ValidationError{Path: "history.undoable_commands", Message: "toggle does not change the history", Value: name})
		}
	}
	switch s.Logging.Level {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, &ValidationError{Path: "logging.level", Message: "unknown level", Value: s.Logging.Level})
	}
	return errors.Join(errs...)
}

// Load builds settings from defaults, the file at path (if any), and the
// process environment.
func Load(path string) (*Settings, error) {
	return LoadWith(loader.OSFS{}, path, loader.NewEnvLoader())
}

// LoadWith builds settings using the given file system and environment
// loader. An empty path skips the file.
func LoadWith(fsys loader.FileSystem, path string, env loader.Loader) (*Settings, error) {
	merged, err := toMap(Default())
	if err != nil {
		return nil, err
	}

	if path != "" {
		l, err := loader.ForPath(fsys, path)
		if err != nil {
			return nil, err
		}
		file, err := l.Load()
		if err != nil {
			return nil, err
		}
		merged = loader.DeepMerge(merged, file)
	}

	if env != nil {
		vars, err := env.Load()
		if err != nil {
			return nil, fmt.Errorf("loading environment: %w", err)
		}
		merged = loader.DeepMerge(merged, vars)
	}

	s, err := fromMap(merged)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func toMap(s *Settings) (map[string]any, error) {
	data, err := toml.Marshal(s)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func fromMap(m map[string]any) (*Settings, error) {
	data, err := toml.Marshal(m)
	if err != nil {
		return nil, err
	}
	s := &Settings{}
	if err := toml.Unmarshal(data, s); err != nil {
		return nil, err
	}
	return s, nil
}
