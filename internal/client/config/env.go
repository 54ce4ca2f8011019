package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/adminconsole/internal/flagx"
	"github.com/joho/godotenv"
)

const (
	envAPIBaseURL       = "ADMIN_API_BASE_URL"
	envRequestTimeoutMS = "ADMIN_REQUEST_TIMEOUT_MS"
	envDatabasePath     = "ADMIN_DB_PATH"
	envLogLevel         = "ADMIN_LOG_LEVEL"

	defaultEnvFile = ".env"
)

// loadDotEnv loads variables from the file given with -e/-env, or from .env
// in the working directory. A missing .env is ignored; a missing file named
// explicitly panics. Variables already set in the environment win.
func loadDotEnv() {
	file := flagx.EnvFileFlag()
	explicit := file != ""
	if !explicit {
		file = defaultEnvFile
	}

	if err := godotenv.Load(file); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return
		}
		panic(err)
	}
}

// parseEnv overlays Config with the ADMIN_* variables that are set.
func parseEnv(cfg *Config) {
	cfg.APIBaseURL = envStr(envAPIBaseURL, cfg.APIBaseURL)
	cfg.RequestTimeout = time.Duration(envInt(envRequestTimeoutMS, int(cfg.RequestTimeout.Milliseconds()))) * time.Millisecond
	cfg.DatabasePath = envStr(envDatabasePath, cfg.DatabasePath)
	cfg.LogLevel = envStr(envLogLevel, cfg.LogLevel)
}

func envStr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// envInt returns fallback when the variable is unset or not a positive integer.
func envInt(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
