// ABOUTME: Tests for environment-based configuration loading.
// ABOUTME: Covers defaults, overrides, and credential validation.
package config

import (
	"strings"
	"testing"
)

func setFullEnv(t *testing.T) {
	t.Helper()
	t.Setenv("STRAVA_CLIENT_ID", "111")
	t.Setenv("STRAVA_CLIENT_SECRET", "secret")
	t.Setenv("STRAVA_ACCESS_TOKEN", "at")
	t.Setenv("STRAVA_REFRESH_TOKEN", "rt")
}

func TestLoadReadsEnvironment(t *testing.T) {
	setFullEnv(t)
	t.Setenv("API_TOKEN", "bearer-secret")
	t.Setenv("LISTEN_ADDR", ":9999")
	t.Setenv("STRAVA_MCP_VERBOSE", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.ClientID != "111" || cfg.ClientSecret != "secret" {
		t.Errorf("client credentials not loaded: %+v", cfg)
	}
	if cfg.AccessToken != "at" || cfg.RefreshToken != "rt" {
		t.Errorf("tokens not loaded: %+v", cfg)
	}
	if cfg.APIToken != "bearer-secret" {
		t.Errorf("APIToken = %q", cfg.APIToken)
	}
	if cfg.ListenAddr != ":9999" {
		t.Errorf("ListenAddr = %q", cfg.ListenAddr)
	}
	if !cfg.Verbose {
		t.Error("Verbose should be true")
	}
}

func TestLoadDefaults(t *testing.T) {
	setFullEnv(t)
	t.Setenv("LISTEN_ADDR", "")
	t.Setenv("SPACE_URL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.ListenAddr != ":7860" {
		t.Errorf("ListenAddr default = %q, want :7860", cfg.ListenAddr)
	}
	if cfg.SpaceURL != "http://localhost:7860" {
		t.Errorf("SpaceURL default = %q", cfg.SpaceURL)
	}
}

func TestValidateCredentials(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"complete", func(c *Config) {}, ""},
		{"missing access token", func(c *Config) { c.AccessToken = "" }, "STRAVA_ACCESS_TOKEN"},
		{"missing refresh token", func(c *Config) { c.RefreshToken = "" }, "STRAVA_REFRESH_TOKEN"},
		{"missing client id", func(c *Config) { c.ClientID = "" }, "STRAVA_CLIENT_ID"},
		{"missing secret", func(c *Config) { c.ClientSecret = "" }, "STRAVA_CLIENT_SECRET"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				ClientID:     "111",
				ClientSecret: "secret",
				AccessToken:  "at",
				RefreshToken: "rt",
			}
			tt.mutate(cfg)

			err := cfg.ValidateCredentials()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want mention of %s", err, tt.wantErr)
			}
		})
	}
}
