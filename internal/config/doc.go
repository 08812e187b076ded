// Package config loads runtime configuration for the moodkeeper CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional .env file in the working directory (see parseEnv).
//  3. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string   path to the local database file
//	-v          verbose (debug) logging
//
// # JSON schema
//
//	{
//	  "db_path": "mood.db",
//	  "verbose": true
//	}
package config
