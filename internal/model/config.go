package model

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// DatabaseConfig locates the contracts database file.
type DatabaseConfig struct {
	// Path is the SQLite file, relative to the working directory unless absolute.
	Path string `mapstructure:"path" yaml:"path"`
}

// LogConfig controls where and how verbosely the application logs.
type LogConfig struct {
	// File receives JSON log lines. Empty disables logging.
	File string `mapstructure:"file" yaml:"file"`

	// Level is a zerolog level name (debug, info, warn, error).
	Level string `mapstructure:"level" yaml:"level"`
}

// ReminderConfig holds settings for the due-contract check.
type ReminderConfig struct {
	OnStartup bool `mapstructure:"on_startup" yaml:"on_startup"`
}

// DisplayConfig holds UI/rendering preferences.
type DisplayConfig struct {
	Theme string `mapstructure:"theme" yaml:"theme"`
}

// AppConfig is the top-level application configuration.
type AppConfig struct {
	Database  DatabaseConfig `mapstructure:"database" yaml:"database"`
	Log       LogConfig      `mapstructure:"log" yaml:"log"`
	Reminders ReminderConfig `mapstructure:"reminders" yaml:"reminders"`
	Display   DisplayConfig  `mapstructure:"display" yaml:"display"`
}

// DefaultDatabasePath is the contracts file in the working directory.
const DefaultDatabasePath = "contracts.db"

// DefaultConfigPath returns the default path for the configuration file,
// located at ~/.config/contracts/config.yaml.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "config.yaml")
	}
	return filepath.Join(home, ".config", "contracts", "config.yaml")
}

// DefaultAppConfig returns the configuration used when no file exists.
func DefaultAppConfig() *AppConfig {
	return &AppConfig{
		Database:  DatabaseConfig{Path: DefaultDatabasePath},
		Log:       LogConfig{File: "contracts.log", Level: "info"},
		Reminders: ReminderConfig{OnStartup: true},
		Display:   DisplayConfig{Theme: "default"},
	}
}

// LoadConfig reads configuration from the given YAML file path using Viper.
// If the file does not exist, it returns a default configuration.
func LoadConfig(path string) (*AppConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	def := DefaultAppConfig()
	v.SetDefault("database.path", def.Database.Path)
	v.SetDefault("log.file", def.Log.File)
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("reminders.on_startup", def.Reminders.OnStartup)
	v.SetDefault("display.theme", def.Display.Theme)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.Is(err, fs.ErrNotExist) || errors.As(err, &notFound) {
			return def, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := DefaultAppConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.Database.Path == "" {
		cfg.Database.Path = DefaultDatabasePath
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
	v.Set("log", cfg.Log)
	v.Set("reminders", cfg.Reminders)
	v.Set("display", cfg.Display)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}

	return nil
}
