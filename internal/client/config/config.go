package config

import "time"

// Config holds runtime settings for the admin console.
//
// Fields:
//   - APIBaseURL: base address of the admin API, including the /api/v1 prefix.
//   - RequestTimeout: per-request timeout of the gateway.
//   - DatabasePath: SQLite file holding the session and chat transcripts.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	DatabasePath   string
	LogLevel       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8080/api/v1"
	c.RequestTimeout = 10 * time.Second
	c.DatabasePath = "data/console.db"
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment (after loading a dotenv file), a JSON file and
// command-line flags. Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	loadDotEnv()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
