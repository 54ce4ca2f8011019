// Package config loads runtime configuration for the admin console.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. A dotenv file (.env, or the file given with -e/-env), then the
//     ADMIN_API_BASE_URL, ADMIN_REQUEST_TIMEOUT_MS, ADMIN_DB_PATH and
//     ADMIN_LOG_LEVEL environment variables.
//  3. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base address of the admin API
//	-t int      request timeout (milliseconds)
//	-d string   local database path
//	-l string   log level
//
// # JSON schema
//
//	{
//	  "api_base_url": "http://localhost:8080/api/v1",
//	  "request_timeout": "10s",
//	  "database_path": "data/console.db",
//	  "log_level": "info"
//	}
package config
