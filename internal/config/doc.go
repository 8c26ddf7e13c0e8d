// Package config handles configuration loading for pocketchat.
//
// Configuration is loaded from YAML with ${VAR} environment variable
// expansion and validated on load. When no config file exists the CLI
// falls back to Default(), which keeps the database and media directory
// under ~/.local/share/pocketchat.
//
// Sections:
//
//	database:
//	  path: "~/.local/share/pocketchat/pocketchat.db"
//	data:
//	  dir: "~/.local/share/pocketchat/media"
//	logging:
//	  level: "info"   # debug, info, warn, error
//	  format: "text"  # text, json
package config
