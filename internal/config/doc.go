// Package config loads and validates the bot configuration.
//
// Configuration is a YAML file with ${VAR} environment expansion, loaded
// through the Load / LoadWithDefaults / LoadAndValidate pipeline. Secrets
// (bot token, database password, encryption key) are expected to arrive
// via environment variables referenced from the YAML.
package config
