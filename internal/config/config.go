// ABOUTME: Configuration loaded from environment variables and .env files.
// ABOUTME: Holds the Strava credential set plus hosted-mode server settings.
package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Config holds everything the server reads from the environment.
type Config struct {
	// Strava OAuth application credentials and the athlete's token pair.
	ClientID     string `env:"STRAVA_CLIENT_ID"`
	ClientSecret string `env:"STRAVA_CLIENT_SECRET"`
	AccessToken  string `env:"STRAVA_ACCESS_TOKEN"`
	RefreshToken string `env:"STRAVA_REFRESH_TOKEN"`

	// APIToken gates the hosted HTTP endpoints when set. Empty means open
	// access (local development).
	APIToken string `env:"API_TOKEN"`

	// SpaceURL is the public base URL of a hosted deployment, used to build
	// OAuth redirect URIs.
	SpaceURL string `env:"SPACE_URL" envDefault:"http://localhost:7860"`

	// SecretKey seeds session state in hosted mode.
	SecretKey string `env:"SECRET_KEY"`

	// ListenAddr is the bind address for the hosted HTTP server.
	ListenAddr string `env:"LISTEN_ADDR" envDefault:":7860"`

	// Verbose enables debug logging.
	Verbose bool `env:"STRAVA_MCP_VERBOSE"`
}

// Load reads configuration from the process environment. A .env file in the
// working directory is merged in first when present; a missing file is not
// an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}

// ValidateCredentials checks that the four values needed to talk to the
// Strava API are all present. The auth helper command works without them,
// so this is only enforced when a server starts.
func (c *Config) ValidateCredentials() error {
	var missing []string
	if c.ClientID == "" {
		missing = append(missing, "STRAVA_CLIENT_ID")
	}
	if c.ClientSecret == "" {
		missing = append(missing, "STRAVA_CLIENT_SECRET")
	}
	if c.AccessToken == "" {
		missing = append(missing, "STRAVA_ACCESS_TOKEN")
	}
	if c.RefreshToken == "" {
		missing = append(missing, "STRAVA_REFRESH_TOKEN")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing Strava credentials in environment: %s (run 'strava-mcp auth' to generate tokens)",
			strings.Join(missing, ", "))
	}
	return nil
}
