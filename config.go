package snowbase

import (
	"flag"
	"fmt"

	"github.com/dracory/env"
)

// Config contains the runtime configuration for the proxy.
type Config struct {
	// HTTPPort is the port to listen on (default: 8080)
	HTTPPort int
	// BasePath is the base URL path the handler is mounted under
	BasePath string
	// ProfilesDB is the SQLite file holding saved connection profiles
	ProfilesDB string
	// LoginTimeoutSeconds bounds the Snowflake login handshake
	LoginTimeoutSeconds int
}

// LoadConfig reads flags/env with sensible defaults.
// Flags take precedence over env.
func LoadConfig() (Config, error) {
	var cfg Config

	// Optionally load from .env files (missing files are ignored inside the lib)
	env.Load(".env")

	// Defaults via env package
	cfg.HTTPPort = env.GetIntOrDefault("HTTP_PORT", 8080)
	cfg.BasePath = env.GetStringOrDefault("BASE_URL", "/")
	cfg.ProfilesDB = env.GetStringOrDefault("PROFILES_DB", "profiles.db")
	cfg.LoginTimeoutSeconds = env.GetIntOrDefault("LOGIN_TIMEOUT_SECONDS", 60)

	// Flags
	port := flag.Int("port", cfg.HTTPPort, "HTTP port to listen on")
	base := flag.String("base", cfg.BasePath, "Base path to mount handler under (e.g. /snowflake)")
	profilesDB := flag.String("profiles-db", cfg.ProfilesDB, "SQLite file for saved connection profiles")
	loginTimeout := flag.Int("login-timeout", cfg.LoginTimeoutSeconds, "Snowflake login timeout in seconds")
	flag.Parse()

	cfg.HTTPPort = *port
	cfg.BasePath = *base
	cfg.ProfilesDB = *profilesDB
	cfg.LoginTimeoutSeconds = *loginTimeout

	if cfg.ProfilesDB == "" {
		return cfg, fmt.Errorf("PROFILES_DB is required")
	}
	if cfg.LoginTimeoutSeconds < 0 {
		return cfg, fmt.Errorf("LOGIN_TIMEOUT_SECONDS must not be negative")
	}
	return cfg, nil
}
