// Package flagx lets several config loaders share os.Args without tripping
// over each other's flags.
package flagx

import (
	"flag"
	"strings"
)

// Allowed maps a flag (as written on the command line, e.g. "-a") to
// whether it consumes a following value. Boolean flags map to false.
type Allowed map[string]bool

// FilterArgs keeps only the flags listed in allowed, together with their
// values.
//
// Supported forms:
//
//	-a host:port      value in the next argument
//	-a=host:port      value joined with '='
//	-debug            boolean flag, never consumes the next argument
//
// The result is never nil.
func FilterArgs(args []string, allowed Allowed) []string {
	filtered := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name, _, _ := strings.Cut(arg, "=")
			if _, ok := allowed[name]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		takesValue, ok := allowed[arg]
		if !ok {
			continue
		}
		filtered = append(filtered, arg)
		if takesValue && i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			filtered = append(filtered, args[i+1])
			i++
		}
	}

	return filtered
}

// ConfigFile returns the JSON config path passed with -c or -config, or
// an empty string when neither is present.
func ConfigFile(args []string) string {
	var path string

	fs := flag.NewFlagSet("config-file", flag.ContinueOnError)
	fs.StringVar(&path, "config", "", "path to config file")
	fs.StringVar(&path, "c", "", "path to config file (short)")
	_ = fs.Parse(FilterArgs(args, Allowed{"-c": true, "-config": true, "--config": true}))

	return path
}
