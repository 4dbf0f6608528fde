// Package config handles loading and validating runtime configuration for the
// Axial Data API. Configuration values (the Supabase project URL, the two API
// keys, the listen port) are read from environment variables rather than being
// hardcoded, so the same binary can run in dev, staging, and production just
// by swapping the environment.
package config

import (
	"os"

	// godotenv reads a .env file and loads its key=value pairs into the
	// process environment. Convenient in development; in production real
	// environment variables are provided by the deployment platform.
	"github.com/joho/godotenv"
)

// Config holds all runtime configuration values for the application.
type Config struct {
	Port               string // TCP port the HTTP server listens on (default "8000")
	Env                string // Runtime environment: "development" or "production"
	SupabaseURL        string // Supabase project URL (e.g. "https://abcd.supabase.co")
	SupabaseAnonKey    string // Restricted key used for reads; subject to row-level policy
	SupabaseServiceKey string // Elevated key used for writes; bypasses row-level policy
}

// Load reads configuration from environment variables and returns a populated
// Config. It first tries to load a .env file for local development; the error
// from godotenv.Load is intentionally discarded because a missing .env file is
// normal outside of development.
func Load() *Config {
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	env := os.Getenv("ENV")
	if env == "" {
		env = "development"
	}

	return &Config{
		Port:               port,
		Env:                env,
		SupabaseURL:        os.Getenv("SUPABASE_URL"),
		SupabaseAnonKey:    os.Getenv("SUPABASE_ANON_KEY"),
		SupabaseServiceKey: os.Getenv("SUPABASE_SERVICE_ROLE_KEY"),
	}
}

// HasServiceCredentials reports whether the configuration carries everything
// needed to build the elevated-privilege backend connection. Without these
// the server still runs, but ingestion is refused.
func (c *Config) HasServiceCredentials() bool {
	return c.SupabaseURL != "" && c.SupabaseServiceKey != ""
}
