package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/dmitrijs2005/authpages/internal/client/view"
	"github.com/joho/godotenv"
)

const envPrefix = "AUTHPAGES_"

// EnvConfig lists the environment variables read by parseEnv (without
// the AUTHPAGES_ prefix). Only variables that are set override cfg.
type EnvConfig struct {
	ServerBaseURL  *string             `env:"SERVER_URL"`
	RequestTimeout *time.Duration      `env:"REQUEST_TIMEOUT"`
	SessionDBPath  *string             `env:"SESSION_DB"`
	MessagePolicy  *view.MessagePolicy `env:"MESSAGE_POLICY"`
	LogFile        *string             `env:"LOG_FILE"`
	Debug          *bool               `env:"DEBUG"`
}

// parseEnv loads dotenvPath when it exists and then overlays cfg with
// AUTHPAGES_* variables. Malformed values panic.
func parseEnv(cfg *Config, dotenvPath string) {
	if dotenvPath != "" {
		if err := godotenv.Load(dotenvPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			panic(err)
		}
	}

	var ec EnvConfig
	if err := env.ParseWithOptions(&ec, env.Options{Prefix: envPrefix}); err != nil {
		panic(err)
	}

	if ec.ServerBaseURL != nil {
		cfg.ServerBaseURL = *ec.ServerBaseURL
	}
	if ec.RequestTimeout != nil {
		cfg.RequestTimeout = *ec.RequestTimeout
	}
	if ec.SessionDBPath != nil {
		cfg.SessionDBPath = *ec.SessionDBPath
	}
	if ec.MessagePolicy != nil {
		cfg.MessagePolicy = *ec.MessagePolicy
	}
	if ec.LogFile != nil {
		cfg.LogFile = *ec.LogFile
	}
	if ec.Debug != nil {
		cfg.Debug = *ec.Debug
	}
}
