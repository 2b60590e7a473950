package config

import (
	"flag"

	"github.com/dmitrijs2005/authpages/internal/client/view"
	"github.com/dmitrijs2005/authpages/internal/flagx"
)

var knownFlags = flagx.Allowed{
	"-a":     true,
	"-t":     true,
	"-d":     true,
	"-m":     true,
	"-l":     true,
	"-debug": false,
}

// parseFlags overlays cfg with the flags it knows about; args is usually
// os.Args[1:]. Unknown flags are left for other parsers. Bad values panic.
func parseFlags(cfg *Config, args []string) {
	fs := flag.NewFlagSet("client", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerBaseURL, "a", cfg.ServerBaseURL, "base URL of the auth API")
	fs.DurationVar(&cfg.RequestTimeout, "t", cfg.RequestTimeout, "per-request timeout")
	fs.StringVar(&cfg.SessionDBPath, "d", cfg.SessionDBPath, "path of the session database")
	fs.Func("m", "server message policy: escape, sanitize or trust", func(s string) error {
		p, err := view.ParseMessagePolicy(s)
		if err != nil {
			return err
		}
		cfg.MessagePolicy = p
		return nil
	})
	fs.StringVar(&cfg.LogFile, "l", cfg.LogFile, "log file path")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "console logging at debug level")

	if err := fs.Parse(flagx.FilterArgs(args, knownFlags)); err != nil {
		panic(err)
	}
}
