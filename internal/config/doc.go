// Package config loads runtime configuration for the diary CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string   path of the local database file
//	-k string   OpenWeather API key
//	-p          preserve creation date/weather when editing an entry
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "5s" or integer nanoseconds:
//
//	{
//	  "database_path": "diary.db",
//	  "bcrypt_cost": 10,
//	  "weather_api_key": "...",
//	  "weather_lat": 56.95,
//	  "weather_lon": 24.10,
//	  "weather_timeout": "5s",
//	  "preserve_creation_metadata_on_edit": false
//	}
//
// Note: This package does not read environment variables directly; use the
// JSON file or flags to configure values.
package config
