// Package config loads runtime configuration for the lexsearch CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables, with an optional .env file (see parseEnv).
//  3. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend API
//	-t int      request timeout (seconds)
//	-i int      health check interval (seconds)
//	-d string   path to the local session database
//
// Environment variables
//
//	LEXSEARCH_API_URL       base URL of the backend API
//	LEXSEARCH_TIMEOUT       request timeout (seconds)
//	LEXSEARCH_SESSION_DB    path to the local session database
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be
// either strings like "30s" or integer nanoseconds:
//
//	{
//	  "base_url": "https://lexsearch-backend.up.railway.app",
//	  "request_timeout": "15s",
//	  "health_check_interval": "30s",
//	  "session_db_path": "session.db"
//	}
package config
