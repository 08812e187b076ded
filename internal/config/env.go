package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the process environment. A .env
// file in the working directory is loaded first, if one exists; variables
// already set in the environment win over the file.
//
// Recognized variables:
//
//	MOODKEEPER_DB_PATH  - path of the local database file
//	MOODKEEPER_VERBOSE  - "true"/"1" enables debug logging
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v, ok := os.LookupEnv("MOODKEEPER_DB_PATH"); ok && v != "" {
		cfg.DBPath = v
	}
	if v, ok := os.LookupEnv("MOODKEEPER_VERBOSE"); ok && v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Verbose = b
		}
	}
}
