// Package config loads Cookbook settings from defaults, .env files, an optional YAML
// config file, COOKBOOK_* environment variables and command-line flags.
//
// Priority (highest to lowest): flags > environment > local .env > config-dir .env >
// cookbook.yaml > defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables read by Cookbook.
const EnvPrefix = "COOKBOOK"

// Config keys, also used as flag binding targets.
const (
	KeyPrompt       = "prompt"
	KeyBanner       = "banner"
	KeyStrictQuotes = "strict_quotes"
	KeyHelpWidth    = "help_width"
	KeyHistoryFile  = "history_file"
	KeyLogLevel     = "log_level"
	KeyLogFile      = "log_file"
)

// Config holds the resolved settings.
type Config struct {
	Prompt       string `mapstructure:"prompt"`
	Banner       bool   `mapstructure:"banner"`
	StrictQuotes bool   `mapstructure:"strict_quotes"`
	HelpWidth    int    `mapstructure:"help_width"`
	HistoryFile  string `mapstructure:"history_file"`
	LogLevel     string `mapstructure:"log_level"`
	LogFile      string `mapstructure:"log_file"`
}

// New returns a viper instance with Cookbook defaults and environment binding.
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault(KeyPrompt, ">>> ")
	v.SetDefault(KeyBanner, true)
	v.SetDefault(KeyStrictQuotes, false)
	v.SetDefault(KeyHelpWidth, 16)
	v.SetDefault(KeyHistoryFile, "")
	v.SetDefault(KeyLogLevel, "")
	v.SetDefault(KeyLogFile, "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return v
}

// Load resolves the configuration. configFile, when set, must exist; otherwise
// cookbook.yaml is looked up in the working directory and the config directory.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	configDir, err := ConfigDir()
	if err != nil {
		return nil, err
	}

	if err := loadDotEnv(configDir); err != nil {
		return nil, err
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("cookbook")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(configDir)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values that cannot be used as given.
func (c *Config) Validate() error {
	if c.HelpWidth <= 0 {
		return fmt.Errorf("help_width must be positive, got %d", c.HelpWidth)
	}
	return nil
}

// ConfigDir returns the directory holding cookbook.yaml and .env.
// COOKBOOK_CONFIG_DIR overrides the platform default.
func ConfigDir() (string, error) {
	if dir := os.Getenv(EnvPrefix + "_CONFIG_DIR"); dir != "" {
		return dir, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config directory: %w", err)
	}
	return filepath.Join(base, "cookbook"), nil
}

// loadDotEnv loads the local .env then the config-dir .env. godotenv never
// overwrites a variable that is already set, so the local file wins.
func loadDotEnv(configDir string) error {
	for _, path := range []string{".env", filepath.Join(configDir, ".env")} {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("failed to load %s: %w", path, err)
		}
	}
	return nil
}
