package config

import (
	"os"
	"time"

	"github.com/dmitrijs2005/authpages/internal/client/view"
)

// Config holds runtime settings for the client.
//
// Fields:
//   - ServerBaseURL: root URL of the auth API; paths like /api/login are appended.
//   - RequestTimeout: upper bound for one API request; zero disables it.
//   - SessionDBPath: SQLite file holding the session token.
//   - MessagePolicy: how server error text is turned into page content.
//   - LogFile: rotating JSON log file used outside debug mode.
//   - Debug: log to the console at debug level instead.
type Config struct {
	ServerBaseURL  string
	RequestTimeout time.Duration
	SessionDBPath  string
	MessagePolicy  view.MessagePolicy
	LogFile        string
	Debug          bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://localhost:6585"
	c.RequestTimeout = 10 * time.Second
	c.SessionDBPath = "session.db"
	c.MessagePolicy = view.PolicyEscape
	c.LogFile = "./logs/client.log"
	c.Debug = false
}

// LoadConfig constructs a Config from defaults, the JSON file, the
// environment and the command line, in that order. It panics on
// malformed input, like the flag package does with ExitOnError.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, os.Args[1:])
	parseEnv(cfg, ".env")
	parseFlags(cfg, os.Args[1:])
	return cfg
}
