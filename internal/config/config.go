// Package config loads tierboard settings from defaults, an optional TOML
// file, TIERBOARD_* environment variables and command-line flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/tierboard/internal/domain"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g.
// TIERBOARD_DATABASE_PATH.
const EnvPrefix = "TIERBOARD"

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Log      LogConfig      `mapstructure:"log"`
	UI       UIConfig       `mapstructure:"ui"`
}

// DatabaseConfig locates the seed catalog.
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// LogConfig controls dispatch and use-case logging. An empty File disables
// logging; the terminal belongs to the board.
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	DefaultLabelPosition string `mapstructure:"default_label_position"`
}

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"db":        "database.path",
	"log-file":  "log.file",
	"log-level": "log.level",
}

// Load builds the configuration. flags may be nil; flags that were set on the
// command line override every other source.
func Load(flags *pflag.FlagSet) (Config, error) {
	v := viper.New()

	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("finding home directory: %w", err)
	}

	v.SetDefault("database.path", filepath.Join(home, ".tierboard", "tierboard.db"))
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("ui.default_label_position", string(domain.DefaultLabelPosition))

	v.SetConfigType("toml")
	if cfgPath := os.Getenv(EnvPrefix + "_CONFIG"); cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(home, ".config", "tierboard"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("binding flag --%s: %w", name, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || os.Getenv(EnvPrefix+"_CONFIG") != "" {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects values the rest of the program cannot use.
func (c Config) Validate() error {
	if c.Database.Path == "" {
		return fmt.Errorf("database.path must not be empty")
	}
	if _, err := domain.ParseLabelPosition(c.UI.DefaultLabelPosition); err != nil {
		return fmt.Errorf("ui.default_label_position: %w", err)
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// DefaultLabel returns the configured label position for tiers whose seed
// does not choose one.
func (c Config) DefaultLabel() domain.LabelPosition {
	p, _ := domain.ParseLabelPosition(c.UI.DefaultLabelPosition)
	return p.OrDefault()
}

// SlogLevel parses Level ("debug", "info", "warn", "error").
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("log.level: invalid value %q", l.Level)
	}
	return lvl, nil
}
