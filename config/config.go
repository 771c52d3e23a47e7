// Package config provides configuration for the mytask service.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the service configuration. Values are read by viper from an
// optional config file and MYTASK_* environment variables.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Groq      GroqConfig      `mapstructure:"groq"`
	Assistant AssistantConfig `mapstructure:"assistant"`
	LogLevel  string          `mapstructure:"log_level"`
}

// ServerConfig stores HTTP server settings.
type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// DatabaseConfig stores the sqlite connection settings.
type DatabaseConfig struct {
	DSN string `mapstructure:"dsn"`
}

// GroqConfig stores the completion endpoint settings. An empty APIKey means
// the assistant is unconfigured and will refuse to dispatch.
type GroqConfig struct {
	APIURL      string        `mapstructure:"api_url"`
	APIKey      string        `mapstructure:"api_key"`
	Model       string        `mapstructure:"model"`
	Temperature float64       `mapstructure:"temperature"`
	Timeout     time.Duration `mapstructure:"timeout"`
	Mock        bool          `mapstructure:"mock"`
}

// AssistantConfig stores dispatcher tuning.
type AssistantConfig struct {
	HistoryWindow   int     `mapstructure:"history_window"`    // turns included in the prompt
	HistoryPageSize int     `mapstructure:"history_page_size"` // turns returned by the history API
	MaxTransaction  float64 `mapstructure:"max_transaction"`   // policy ceiling, 0 disables
	PolicyFile      string  `mapstructure:"policy_file"`       // optional rego override
}

// Load reads configuration from the given file (optional) and environment.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("database.dsn", "file:mytask.db?cache=shared&mode=rwc")
	v.SetDefault("groq.api_url", "https://api.groq.com/openai/v1")
	v.SetDefault("groq.api_key", "")
	v.SetDefault("groq.model", "llama-3.3-70b-versatile")
	v.SetDefault("groq.temperature", 0.7)
	v.SetDefault("groq.timeout", 30*time.Second)
	v.SetDefault("groq.mock", false)
	v.SetDefault("assistant.history_window", 20)
	v.SetDefault("assistant.history_page_size", 50)
	v.SetDefault("assistant.max_transaction", 0)
	v.SetDefault("assistant.policy_file", "")
	v.SetDefault("log_level", "info")

	v.SetEnvPrefix("MYTASK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}
