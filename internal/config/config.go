package config

import "time"

// Config is the root configuration for the bot.
type Config struct {
	Bot        BotConfig        `yaml:"bot"`
	Auth       AuthConfig       `yaml:"auth"`
	Exchange   ExchangeConfig   `yaml:"exchange"`
	Database   DBConfig         `yaml:"database"`
	Encryption EncryptionConfig `yaml:"encryption"`
	Listing    ListingConfig    `yaml:"listing"`
	Metrics    MetricsConfig    `yaml:"metrics"`
}

// BotConfig holds chat transport settings.
type BotConfig struct {
	Token       string        `yaml:"token"`        // Bot API token
	APIURL      string        `yaml:"api_url"`      // Bot API base URL
	PollTimeout time.Duration `yaml:"poll_timeout"` // Long-poll wait per getUpdates call
}

// AuthConfig holds the user authorization allow-list.
type AuthConfig struct {
	AllowedUserIDs []int64 `yaml:"allowed_user_ids"`
}

// ExchangeConfig holds exchange API settings.
type ExchangeConfig struct {
	BaseURL    string        `yaml:"base_url"`
	Timeout    time.Duration `yaml:"timeout"`
	MaxRetries int           `yaml:"max_retries"`
}

// DBConfig holds the credential store database connection.
type DBConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"ssl_mode"`
	MaxConns int    `yaml:"max_conns"`
	MinConns int    `yaml:"min_conns"`
}

// EncryptionConfig holds the credential cipher key.
type EncryptionConfig struct {
	// Key is the base64-encoded 32-byte AES key used to decrypt stored
	// API credentials. Never logged.
	Key string `yaml:"key"`
}

// ListingConfig holds listing flow settings.
type ListingConfig struct {
	// FetchTimeout bounds one exchange catalog request. A stalled
	// exchange must not hang the chat interaction.
	FetchTimeout time.Duration `yaml:"fetch_timeout"`
}

// MetricsConfig holds Prometheus metrics settings.
type MetricsConfig struct {
	Port int    `yaml:"port"`
	Path string `yaml:"path"`
}
