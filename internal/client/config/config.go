package config

import "time"

// Config holds runtime settings for the docproc CLI.
//
// UploadTimeout is kept separate from RequestTimeout because upload windows
// are long-tailed; every other call uses the default budget.
type Config struct {
	ServerBaseURL  string
	RequestTimeout time.Duration
	UploadTimeout  time.Duration
	PollInterval   time.Duration
	OutputDir      string
	SessionID      string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://127.0.0.1:8000/api"
	c.RequestTimeout = 30 * time.Second
	c.UploadTimeout = 60 * time.Second
	c.PollInterval = 2 * time.Second
	c.OutputDir = "downloads"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from an optional config file and command-line flags. Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg)
	parseFlags(cfg)
	return cfg
}
