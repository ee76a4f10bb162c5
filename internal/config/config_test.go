package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const minimalYAML = `
bot:
  token: test-token
auth:
  allowed_user_ids: [12345]
database:
  host: localhost
  name: movebot
  user: movebot
  password: testpass
encryption:
  key: dGVzdC1rZXk=
`

func TestLoad(t *testing.T) {
	yaml := `
bot:
  token: test-token
  api_url: https://api.telegram.example
auth:
  allowed_user_ids: [12345, 67890]
exchange:
  base_url: https://testnet-api.delta.example
database:
  host: localhost
  port: 5432
  name: movebot
  user: movebot
  password: testpass
encryption:
  key: dGVzdC1rZXk=
`
	path := writeTempFile(t, yaml)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Bot.Token != "test-token" {
		t.Errorf("Bot.Token = %q, want %q", cfg.Bot.Token, "test-token")
	}
	if cfg.Exchange.BaseURL != "https://testnet-api.delta.example" {
		t.Errorf("Exchange.BaseURL = %q, want %q", cfg.Exchange.BaseURL, "https://testnet-api.delta.example")
	}
	if len(cfg.Auth.AllowedUserIDs) != 2 || cfg.Auth.AllowedUserIDs[0] != 12345 {
		t.Errorf("Auth.AllowedUserIDs = %v, want [12345 67890]", cfg.Auth.AllowedUserIDs)
	}
	if cfg.Database.Host != "localhost" {
		t.Errorf("Database.Host = %q, want %q", cfg.Database.Host, "localhost")
	}
}

func TestLoadWithEnvSubstitution(t *testing.T) {
	t.Setenv("TEST_BOT_TOKEN", "secret-token")
	t.Setenv("TEST_DB_PASSWORD", "secret123")

	yaml := `
bot:
  token: ${TEST_BOT_TOKEN}
database:
  host: localhost
  name: movebot
  user: movebot
  password: ${TEST_DB_PASSWORD}
`
	path := writeTempFile(t, yaml)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Bot.Token != "secret-token" {
		t.Errorf("Bot.Token = %q, want %q", cfg.Bot.Token, "secret-token")
	}
	if cfg.Database.Password != "secret123" {
		t.Errorf("Database.Password = %q, want %q", cfg.Database.Password, "secret123")
	}
}

func TestLoadWithDefaults(t *testing.T) {
	path := writeTempFile(t, minimalYAML)

	cfg, err := LoadWithDefaults(path)
	if err != nil {
		t.Fatalf("LoadWithDefaults failed: %v", err)
	}

	if cfg.Bot.APIURL != DefaultBotAPIURL {
		t.Errorf("Bot.APIURL = %q, want %q", cfg.Bot.APIURL, DefaultBotAPIURL)
	}
	if cfg.Bot.PollTimeout != DefaultPollTimeout {
		t.Errorf("Bot.PollTimeout = %v, want %v", cfg.Bot.PollTimeout, DefaultPollTimeout)
	}
	if cfg.Exchange.BaseURL != DefaultExchangeURL {
		t.Errorf("Exchange.BaseURL = %q, want %q", cfg.Exchange.BaseURL, DefaultExchangeURL)
	}
	if cfg.Exchange.Timeout != DefaultExchangeTimeout {
		t.Errorf("Exchange.Timeout = %v, want %v", cfg.Exchange.Timeout, DefaultExchangeTimeout)
	}
	if cfg.Database.Port != DefaultDBPort {
		t.Errorf("Database.Port = %d, want %d", cfg.Database.Port, DefaultDBPort)
	}
	if cfg.Database.SSLMode != DefaultDBSSLMode {
		t.Errorf("Database.SSLMode = %q, want %q", cfg.Database.SSLMode, DefaultDBSSLMode)
	}
	if cfg.Listing.FetchTimeout != 15*time.Second {
		t.Errorf("Listing.FetchTimeout = %v, want %v", cfg.Listing.FetchTimeout, 15*time.Second)
	}
	if cfg.Metrics.Port != DefaultMetricsPort {
		t.Errorf("Metrics.Port = %d, want %d", cfg.Metrics.Port, DefaultMetricsPort)
	}
}

func TestLoadAndValidate(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		path := writeTempFile(t, minimalYAML)
		if _, err := LoadAndValidate(path); err != nil {
			t.Fatalf("LoadAndValidate failed: %v", err)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadAndValidate(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
			t.Fatal("expected error for missing file")
		}
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := writeTempFile(t, "bot: [not a mapping")
		if _, err := LoadAndValidate(path); err == nil {
			t.Fatal("expected error for invalid yaml")
		}
	})
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{}
		cfg.Bot.Token = "tok"
		cfg.Auth.AllowedUserIDs = []int64{1}
		cfg.Encryption.Key = "a2V5"
		cfg.Database = DBConfig{
			Host: "localhost", Port: 5432, Name: "db", User: "u", Password: "p",
			MaxConns: 10, MinConns: 2,
		}
		cfg.applyDefaults()
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"missing token", func(c *Config) { c.Bot.Token = "" }, "bot.token"},
		{"empty allow list", func(c *Config) { c.Auth.AllowedUserIDs = nil }, "allowed_user_ids"},
		{"missing db host", func(c *Config) { c.Database.Host = "" }, "database.host"},
		{"missing db password", func(c *Config) { c.Database.Password = "" }, "database.password"},
		{"missing encryption key", func(c *Config) { c.Encryption.Key = "" }, "encryption.key"},
		{"min conns above max", func(c *Config) { c.Database.MinConns = 20 }, "min_conns"},
		{"bad metrics port", func(c *Config) { c.Metrics.Port = 70000 }, "metrics.port"},
		{"non-positive fetch timeout", func(c *Config) { c.Listing.FetchTimeout = -time.Second }, "fetch_timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate failed: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error containing %q, got nil", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want substring %q", err, tt.wantErr)
			}
		})
	}
}

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write temp config: %v", err)
	}
	return path
}
