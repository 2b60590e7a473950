// Package config loads runtime configuration for the client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config (see parseJson).
//  3. Environment: a .env file in the working directory is loaded first
//     (already set variables win), then AUTHPAGES_* variables are read
//     (see parseEnv).
//  4. Command-line flags (see parseFlags).
//
// Later sources override earlier ones; a source only overrides the
// values it actually sets.
//
// Supported flags
//
//	-a string     base URL of the auth API
//	-t duration   per-request timeout (e.g. 10s)
//	-d string     path of the session database
//	-m string     server message policy: escape, sanitize or trust
//	-l string     log file path
//	-debug        console logging at debug level
//
// # Environment
//
//	AUTHPAGES_SERVER_URL, AUTHPAGES_REQUEST_TIMEOUT, AUTHPAGES_SESSION_DB,
//	AUTHPAGES_MESSAGE_POLICY, AUTHPAGES_LOG_FILE, AUTHPAGES_DEBUG
//
// # JSON schema
//
//	{
//	  "server_url": "http://localhost:6585",
//	  "request_timeout": "10s",
//	  "session_db": "session.db",
//	  "message_policy": "escape",
//	  "log_file": "./logs/client.log",
//	  "debug": false
//	}
package config
