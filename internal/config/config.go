package config

// Config holds runtime settings for the moodkeeper CLI.
//
// Fields:
//   - DBPath: path of the local SQLite file holding all user records.
//   - Verbose: enables debug-level logging.
type Config struct {
	DBPath  string
	Verbose bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DBPath = "mood.db"
	c.Verbose = false
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the .env file (if present), a JSON file (if present) and command-line
// flags. Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
