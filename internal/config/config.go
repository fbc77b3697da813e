package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"github.com/jask/listboard/internal/catalog"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	Catalog  CatalogConfig
	Log      LogConfig
	UI       UIConfig
}

// DatabaseConfig holds sqlite settings for the transition journal.
type DatabaseConfig struct {
	Path string
}

// CatalogConfig lists the template labels, in display order.
type CatalogConfig struct {
	Templates []string
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string
	File  string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Accent string
}

// Load reads configuration from file and env. Env var overrides use prefix LISTBOARD_.
// A missing config file is not an error.
func Load() (Config, error) {
	v := newViper()

	cfgPath := os.Getenv("LISTBOARD_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "listboard"))
		v.SetConfigName("config")
	}

	// read config file if present
	_ = v.ReadInConfig()

	return decode(v)
}

// LoadFile reads configuration from path. Unlike Load, the file must exist.
func LoadFile(path string) (Config, error) {
	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	return decode(v)
}

func newViper() *viper.Viper {
	v := viper.New()

	// default values
	v.SetDefault("database.path", ":memory:")
	v.SetDefault("catalog.templates", catalog.DefaultLabels)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("ui.accent", "63")

	v.SetConfigType("toml")

	v.SetEnvPrefix("LISTBOARD")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	return v
}

func decode(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.expandPaths(); err != nil {
		return Config{}, err
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// expandPaths resolves a leading ~ in file settings.
func (c *Config) expandPaths() error {
	for _, p := range []*string{&c.Database.Path, &c.Log.File} {
		expanded, err := homedir.Expand(*p)
		if err != nil {
			return fmt.Errorf("expand %q: %w", *p, err)
		}
		*p = expanded
	}
	return nil
}

// Validate checks values viper cannot check on its own.
func (c Config) Validate() error {
	if _, err := parseLevel(c.Log.Level); err != nil {
		return err
	}
	if strings.TrimSpace(c.Database.Path) == "" {
		return fmt.Errorf("database.path cannot be empty")
	}
	return nil
}
