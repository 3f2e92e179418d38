// Package config handles loading ggc.toml configuration files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/amonks/ggc/countdown"
	"github.com/amonks/ggc/internal/paths"
	"github.com/amonks/ggc/internal/ui"
	"github.com/caarlos0/env/v11"
)

// ProjectFile is the config file name looked up in the working directory.
const ProjectFile = "ggc.toml"

// DefaultTitle is the panel title when none is configured.
const DefaultTitle = "GGC - Gnome Genial Countdowns"

// Config represents the ggc.toml configuration file.
type Config struct {
	Display Display `toml:"display"`
}

// Display contains presentation configuration.
type Display struct {
	// Order is "added" (insertion order) or "nearest" (earliest target first).
	Order string `toml:"order" env:"GGC_ORDER"`

	// DateFormat is a Go time layout for rendering targets.
	DateFormat string `toml:"date-format" env:"GGC_DATE_FORMAT"`

	// Title is shown at the top of the panel.
	Title string `toml:"title" env:"GGC_TITLE"`
}

// Load loads configuration from the global config file and dir/ggc.toml,
// then applies GGC_* environment overrides.
// Returns defaults if no config files exist.
func Load(dir string) (*Config, error) {
	globalPath, err := globalConfigPath()
	if err != nil {
		return nil, err
	}

	globalCfg, _, err := loadConfigFile(globalPath)
	if err != nil {
		return nil, err
	}

	projectCfg, projectMeta, err := loadConfigFile(filepath.Join(dir, ProjectFile))
	if err != nil {
		return nil, err
	}

	merged := mergeConfigs(globalCfg, projectCfg, projectMeta)
	if err := ParseEnv(merged); err != nil {
		return nil, err
	}
	applyDefaults(merged)
	if _, err := merged.ListOrder(); err != nil {
		return nil, err
	}
	return merged, nil
}

// ParseEnv loads configuration overrides from environment variables.
// Unset or empty variables leave values untouched.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// ListOrder returns the configured countdown order.
func (c *Config) ListOrder() (countdown.Order, error) {
	order, err := countdown.ParseOrder(c.Display.Order)
	if err != nil {
		return "", fmt.Errorf("config display.order: %w", err)
	}
	return order, nil
}

func globalConfigPath() (string, error) {
	dir, err := paths.DefaultConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

func loadConfigFile(path string) (*Config, toml.MetaData, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, toml.MetaData{}, nil
	}
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("read config file %s: %w", path, err)
	}

	var cfg Config
	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("parse config file %s: %w", path, err)
	}

	return &cfg, meta, nil
}

func mergeConfigs(globalCfg, projectCfg *Config, projectMeta toml.MetaData) *Config {
	if globalCfg == nil {
		globalCfg = &Config{}
	}
	if projectCfg == nil {
		projectCfg = &Config{}
	}

	merged := Config{}
	merged.Display.Order = mergeString(projectMeta.IsDefined("display", "order"), projectCfg.Display.Order, globalCfg.Display.Order)
	merged.Display.DateFormat = mergeString(projectMeta.IsDefined("display", "date-format"), projectCfg.Display.DateFormat, globalCfg.Display.DateFormat)
	merged.Display.Title = mergeString(projectMeta.IsDefined("display", "title"), projectCfg.Display.Title, globalCfg.Display.Title)
	return &merged
}

func mergeString(projectDefined bool, projectValue, globalValue string) string {
	value := globalValue
	if projectDefined {
		value = projectValue
	}
	return strings.TrimSpace(value)
}

func applyDefaults(cfg *Config) {
	cfg.Display.Order = strings.TrimSpace(cfg.Display.Order)
	if strings.TrimSpace(cfg.Display.DateFormat) == "" {
		cfg.Display.DateFormat = ui.DefaultDateFormat
	}
	if strings.TrimSpace(cfg.Display.Title) == "" {
		cfg.Display.Title = DefaultTitle
	}
}
