package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/authpages/internal/client/view"
	"github.com/dmitrijs2005/authpages/internal/flagx"
	"github.com/dmitrijs2005/authpages/internal/timex"
)

// JsonConfig is the on-disk shape of the config file. Pointer fields tell
// an absent key apart from a zero value.
type JsonConfig struct {
	ServerBaseURL  *string             `json:"server_url"`
	RequestTimeout *timex.Duration     `json:"request_timeout"`
	SessionDBPath  *string             `json:"session_db"`
	MessagePolicy  *view.MessagePolicy `json:"message_policy"`
	LogFile        *string             `json:"log_file"`
	Debug          *bool               `json:"debug"`
}

// parseJson overlays cfg with the file named by -c/-config in args.
// Nothing happens without the flag; read or decode errors panic.
func parseJson(cfg *Config, args []string) {
	path := flagx.ConfigFile(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerBaseURL != nil {
		cfg.ServerBaseURL = *jc.ServerBaseURL
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.SessionDBPath != nil {
		cfg.SessionDBPath = *jc.SessionDBPath
	}
	if jc.MessagePolicy != nil {
		cfg.MessagePolicy = *jc.MessagePolicy
	}
	if jc.LogFile != nil {
		cfg.LogFile = *jc.LogFile
	}
	if jc.Debug != nil {
		cfg.Debug = *jc.Debug
	}
}
