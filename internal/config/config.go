package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	UI       UIConfig
	Log      LogConfig
	Demo     DemoConfig
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
	// Migrations overrides the embedded migrations with a directory.
	Migrations string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	// PageSize overrides every view's page size when > 0.
	PageSize       int `mapstructure:"page_size"`
	SearchDistance int `mapstructure:"search_distance"`
	MaxCellWidth   int `mapstructure:"max_cell_width"`
	Timezone       string
}

// Location resolves Timezone; empty means UTC.
func (u UIConfig) Location() (*time.Location, error) {
	if u.Timezone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(u.Timezone)
	if err != nil {
		return nil, fmt.Errorf("ui.timezone %q: %w", u.Timezone, err)
	}
	return loc, nil
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level string
	JSON  bool
	File  string
}

// DemoConfig holds settings for the in-memory data sources.
type DemoConfig struct {
	Latency time.Duration
}

func dataDir() string {
	return filepath.Join(os.Getenv("HOME"), ".local", "share", "northfield")
}

// Load reads configuration from file and env. Env var overrides use prefix NORTHFIELD_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("database.path", filepath.Join(dataDir(), "northfield.db"))
	v.SetDefault("database.migrations", "")
	v.SetDefault("ui.page_size", 0)
	v.SetDefault("ui.search_distance", 1)
	v.SetDefault("ui.max_cell_width", 48)
	v.SetDefault("ui.timezone", "UTC")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.json", false)
	v.SetDefault("log.file", filepath.Join(dataDir(), "northfield.log"))
	v.SetDefault("demo.latency", "300ms")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("NORTHFIELD_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "northfield"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("NORTHFIELD")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present; an explicit path must exist
	if err := v.ReadInConfig(); err != nil && cfgPath != "" {
		return Config{}, fmt.Errorf("read config %s: %w", cfgPath, err)
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Path returns the file Save writes to.
func Path() string {
	if path := os.Getenv("NORTHFIELD_CONFIG"); path != "" {
		return path
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "northfield", "config.toml")
}

// Save writes the provided config to disk, creating the config directory if needed.
func Save(cfg Config) error {
	path := Path()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("database.migrations", cfg.Database.Migrations)
	v.Set("ui.page_size", cfg.UI.PageSize)
	v.Set("ui.search_distance", cfg.UI.SearchDistance)
	v.Set("ui.max_cell_width", cfg.UI.MaxCellWidth)
	v.Set("ui.timezone", cfg.UI.Timezone)
	v.Set("log.level", cfg.Log.Level)
	v.Set("log.json", cfg.Log.JSON)
	v.Set("log.file", cfg.Log.File)
	v.Set("demo.latency", cfg.Demo.Latency.String())

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
