// Package config loads runtime configuration for the catalog admin CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the catalog API
//	-d string   path of the local SQLite database
//	-t int      request timeout (seconds)
//	-p int      products per page
//	-l string   log level (debug, info, warn, error)
//
// # JSON schema
//
// Durations use timex.Duration, so values can be either strings like "500ms"
// or integer nanoseconds. Absent keys keep their previous value:
//
//	{
//	  "api_base_url": "https://catalog.example.com/api",
//	  "db_path": "/var/lib/catalog-admin/session.db",
//	  "request_timeout": "15s",
//	  "page_size": 10,
//	  "search_debounce": "500ms",
//	  "log_level": "info"
//	}
package config
