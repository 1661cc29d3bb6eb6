package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

type Config struct {
	Editor    string `mapstructure:"editor"`
	GitBinary string `mapstructure:"git_binary"`
	GhBinary  string `mapstructure:"gh_binary"`
	Remote    string `mapstructure:"remote"`
	LogLevel  string `mapstructure:"log_level"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		GitBinary: "git",
		GhBinary:  "gh",
		Remote:    "origin",
		LogLevel:  "info",
	}
}

// Validate validates the configuration. The editor stays optional here: it
// is only required once the release workflow collects notes, and that check
// owns the remediation message.
func (c *Config) Validate() error {
	if c.GitBinary == "" {
		return fmt.Errorf("git_binary cannot be empty")
	}
	if c.GhBinary == "" {
		return fmt.Errorf("gh_binary cannot be empty")
	}
	if c.Remote == "" {
		return fmt.Errorf("remote cannot be empty")
	}
	if strings.ContainsAny(c.GitBinary, " \t") || strings.ContainsAny(c.GhBinary, " \t") {
		return fmt.Errorf("binary names cannot contain whitespace")
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	return nil
}

func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName(".gitx")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME")
	// Configure environment variables
	v.SetEnvPrefix("GITX")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	// Explicitly bind environment variables
	// BindEnv allows multiple env vars - it will check them in order
	if err := v.BindEnv("editor", "GITX_EDITOR", "EDITOR"); err != nil {
		return nil, fmt.Errorf("failed to bind editor env: %w", err)
	}
	if err := v.BindEnv("git_binary", "GITX_GIT_BINARY"); err != nil {
		return nil, fmt.Errorf("failed to bind git_binary env: %w", err)
	}
	if err := v.BindEnv("gh_binary", "GITX_GH_BINARY"); err != nil {
		return nil, fmt.Errorf("failed to bind gh_binary env: %w", err)
	}
	if err := v.BindEnv("remote", "GITX_REMOTE"); err != nil {
		return nil, fmt.Errorf("failed to bind remote env: %w", err)
	}
	if err := v.BindEnv("log_level", "GITX_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind log_level env: %w", err)
	}
	// Set defaults
	defaults := DefaultConfig()
	v.SetDefault("git_binary", defaults.GitBinary)
	v.SetDefault("gh_binary", defaults.GhBinary)
	v.SetDefault("remote", defaults.Remote)
	v.SetDefault("log_level", defaults.LogLevel)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}
	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &config, nil
}
