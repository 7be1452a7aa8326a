package loader

import (
	"os"
	"strconv"
	"strings"
)

// EnvPrefix is the prefix of every recognised environment variable.
const EnvPrefix = "INCSEL_"

// EnvLoader loads configuration from environment variables.
type EnvLoader struct {
	lookup  func(string) (string, bool)
	mapping map[string]string // env var -> config path
}

// NewEnvLoader creates a loader over the process environment.
func NewEnvLoader() *EnvLoader {
	return &EnvLoader{lookup: os.LookupEnv, mapping: DefaultEnvMapping()}
}

// NewEnvLoaderWithLookup creates a loader over a custom lookup function.
func NewEnvLoaderWithLookup(lookup func(string) (string, bool)) *EnvLoader {
	return &EnvLoader{lookup: lookup, mapping: DefaultEnvMapping()}
}

// DefaultEnvMapping returns the environment variable mappings.
func DefaultEnvMapping() map[string]string {
	return map[string]string{
		EnvPrefix + "LOG_LEVEL":    "logging.level",
		EnvPrefix + "LOG_FILE":     "logging.file",
		EnvPrefix + "MARKER_STYLE": "marker.style",
		EnvPrefix + "MARKER_SCOPE": "marker.scope",
		EnvPrefix + "HISTORY_MAX":  "history.max_entries",
	}
}

// Load reads the mapped environment variables.
// Empty values are treated as set.
func (l *EnvLoader) Load() (map[string]any, error) {
	config := make(map[string]any)
	for env, path := range l.mapping {
		if val, ok := l.lookup(env); ok {
			setByPath(config, path, parseValue(val))
		}
	}
	return config, nil
}

// parseValue converts integers; everything else stays a string.
func parseValue(s string) any {
	if i, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64); err == nil {
		return i
	}
	return s
}

// setByPath sets a value in a nested map using a dot-separated path.
func setByPath(data map[string]any, path string, value any) {
	parts := strings.Split(path, ".")
	current := data
	for _, part := range parts[:len(parts)-1] {
		next, ok := current[part].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[part] = next
		}
		current = next
	}
	current[parts[len(parts)-1]] = value
}
