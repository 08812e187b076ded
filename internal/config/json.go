package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/moodkeeper/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointers let
// us tell "absent" from "zero", so a partial file only overrides the fields
// it names.
type JsonConfig struct {
	DBPath  *string `json:"db_path"`
	Verbose *bool   `json:"verbose"`
}

// parseJson overlays Config with values from the JSON file named by the
// -c/-config flags. When no file is named, nothing happens. Panics on read
// or unmarshal errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DBPath != nil {
		cfg.DBPath = *jc.DBPath
	}
	if jc.Verbose != nil {
		cfg.Verbose = *jc.Verbose
	}
}
