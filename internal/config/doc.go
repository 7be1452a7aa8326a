// Package config holds the settings of the incremental selection tool.
//
// Settings start from Default, are overlaid by a TOML or YAML settings
// file, and then by INCSEL_ environment variables. Load validates the
// merged result.
//
//	s, err := config.Load("incsel.toml")
//	style, err := s.Marker.RegionStyle()
//
// Subpackages:
//   - loader: file and environment loaders
//   - notify: per-document settings-change registry
//   - watcher: fsnotify watcher that triggers reloads
package config
