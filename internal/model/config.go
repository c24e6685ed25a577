package model

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// DatabaseConfig holds storage settings.
type DatabaseConfig struct {
	// Path is the SQLite database file. ":memory:" opens a throwaway database.
	Path string `mapstructure:"path" yaml:"path"`
}

// ItemsConfig holds item defaults.
type ItemsConfig struct {
	// DefaultDueDays is how many days after creation an item is due
	// when no due date is supplied.
	DefaultDueDays int `mapstructure:"default_due_days" yaml:"default_due_days"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
	// Format is one of "text", "json" or "logfmt".
	Format string `mapstructure:"format" yaml:"format"`
}

// AppConfig is the top-level application configuration.
type AppConfig struct {
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`
	Items    ItemsConfig    `mapstructure:"items" yaml:"items"`
	Log      LogConfig      `mapstructure:"log" yaml:"log"`
}

// DefaultDueIn returns the configured default due offset.
func (c *AppConfig) DefaultDueIn() time.Duration {
	if c.Items.DefaultDueDays <= 0 {
		return DefaultDueIn
	}
	return time.Duration(c.Items.DefaultDueDays) * 24 * time.Hour
}

// DefaultConfigPath returns the default path for the configuration file,
// located at ~/.config/todolists/config.yaml.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "config.yaml")
	}
	return filepath.Join(home, ".config", "todolists", "config.yaml")
}

// DefaultDatabasePath returns ~/.local/share/todolists/todolists.db.
func DefaultDatabasePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "todolists.db"
	}
	return filepath.Join(home, ".local", "share", "todolists", "todolists.db")
}

// defaultAppConfig returns a sensible default configuration.
func defaultAppConfig() *AppConfig {
	return &AppConfig{
		Database: DatabaseConfig{Path: DefaultDatabasePath()},
		Items:    ItemsConfig{DefaultDueDays: 7},
		Log:      LogConfig{Level: "info", Format: "text"},
	}
}

// LoadConfig reads configuration from the given YAML file path using Viper.
// TODOLISTS_* environment variables override file values.
// If the file does not exist, defaults (plus environment) are returned.
func LoadConfig(path string) (*AppConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("todolists")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set defaults so missing keys resolve to sensible values.
	defaults := defaultAppConfig()
	v.SetDefault("database.path", defaults.Database.Path)
	v.SetDefault("items.default_due_days", defaults.Items.DefaultDueDays)
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.format", defaults.Log.Format)

	if err := v.ReadInConfig(); err != nil {
		var pathErr *os.PathError
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &pathErr) && !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	cfg := defaultAppConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if cfg.Items.DefaultDueDays < 0 {
		return nil, fmt.Errorf("items.default_due_days must not be negative, got %d", cfg.Items.DefaultDueDays)
	}

	return cfg, nil
}

// SaveConfig writes the given configuration to a YAML file at path,
// creating parent directories if needed.
func SaveConfig(path string, cfg *AppConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.Set("database", cfg.Database)
	v.Set("items", cfg.Items)
	v.Set("log", cfg.Log)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}

	return nil
}
