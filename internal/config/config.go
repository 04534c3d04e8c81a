package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ionut-t/lined/internal/logger"
	"github.com/spf13/viper"
)

// Config represents the root configuration structure
type Config struct {
	Prompt    string          `mapstructure:"prompt"`
	Color     bool            `mapstructure:"color"`
	AutoShow  bool            `mapstructure:"auto_show"`
	History   HistoryConfig   `mapstructure:"history"`
	Clipboard ClipboardConfig `mapstructure:"clipboard"`
	Log       LogConfig       `mapstructure:"log"`
}

// HistoryConfig bounds the undo stack
type HistoryConfig struct {
	Limit int `mapstructure:"limit"` // 0 keeps every snapshot
}

// ClipboardConfig controls the system clipboard mirror
type ClipboardConfig struct {
	System bool `mapstructure:"system"`
}

// LogConfig holds logging preferences
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// New returns a viper instance with defaults and environment support applied.
// Flags can be bound to it before Load.
func New() *viper.Viper {
	v := viper.New()

	// Set config file details
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.config/lined")
	v.AddConfigPath(".")

	// Environment variable support
	v.SetEnvPrefix("LINED")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	applyDefaults(v)
	return v
}

func applyDefaults(v *viper.Viper) {
	v.SetDefault("prompt", ">")
	v.SetDefault("color", true)
	v.SetDefault("auto_show", true)
	v.SetDefault("history.limit", 0)
	v.SetDefault("clipboard.system", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
}

// Load reads configuration from path (or the search paths when path is
// empty) and the environment. A missing config file is not an error.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// https://no-color.org
	if os.Getenv("NO_COLOR") != "" {
		config.Color = false
	}

	if err := ValidateConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// ValidateConfig validates the configuration values
func ValidateConfig(cfg *Config) error {
	if cfg.Prompt == "" {
		return fmt.Errorf("prompt cannot be empty")
	}
	if cfg.History.Limit < 0 {
		return fmt.Errorf("history.limit must be zero or positive, got %d", cfg.History.Limit)
	}
	if _, err := logger.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}
