package config

import "time"

// Default values for optional configuration fields.
const (
	DefaultBotAPIURL       = "https://api.telegram.org"
	DefaultPollTimeout     = 30 * time.Second
	DefaultExchangeURL     = "https://api.india.delta.exchange"
	DefaultExchangeTimeout = 30 * time.Second
	DefaultMaxRetries      = 3
	DefaultDBPort          = 5432
	DefaultDBSSLMode       = "prefer"
	DefaultMaxConns        = 10
	DefaultMinConns        = 2
	DefaultFetchTimeout    = 15 * time.Second
	DefaultMetricsPort     = 9090
	DefaultMetricsPath     = "/metrics"
)

func (c *Config) applyDefaults() {
	// Bot defaults
	if c.Bot.APIURL == "" {
		c.Bot.APIURL = DefaultBotAPIURL
	}
	if c.Bot.PollTimeout == 0 {
		c.Bot.PollTimeout = DefaultPollTimeout
	}

	// Exchange defaults
	if c.Exchange.BaseURL == "" {
		c.Exchange.BaseURL = DefaultExchangeURL
	}
	if c.Exchange.Timeout == 0 {
		c.Exchange.Timeout = DefaultExchangeTimeout
	}
	if c.Exchange.MaxRetries == 0 {
		c.Exchange.MaxRetries = DefaultMaxRetries
	}

	// Database defaults
	if c.Database.Port == 0 {
		c.Database.Port = DefaultDBPort
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = DefaultDBSSLMode
	}
	if c.Database.MaxConns == 0 {
		c.Database.MaxConns = DefaultMaxConns
	}
	if c.Database.MinConns == 0 {
		c.Database.MinConns = DefaultMinConns
	}

	// Listing defaults
	if c.Listing.FetchTimeout == 0 {
		c.Listing.FetchTimeout = DefaultFetchTimeout
	}

	// Metrics defaults
	if c.Metrics.Port == 0 {
		c.Metrics.Port = DefaultMetricsPort
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = DefaultMetricsPath
	}
}
