package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"kadry/internal/app/errors"
)

// Config represents the application configuration
type Config struct {
	Logging   Logging   `mapstructure:"logging" yaml:"logging"`
	Articles  Articles  `mapstructure:"articles" yaml:"articles"`
	UI        UI        `mapstructure:"ui" yaml:"ui"`
	Telemetry Telemetry `mapstructure:"telemetry" yaml:"telemetry"`
}

// Logging holds log level and output format
type Logging struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Articles describes where the article collection is loaded from
type Articles struct {
	Path    string        `mapstructure:"path" yaml:"path"`
	Feed    string        `mapstructure:"feed" yaml:"feed"`
	Timeout time.Duration `mapstructure:"timeout" yaml:"timeout"`
}

// UI holds terminal presentation settings
type UI struct {
	Menu bool `mapstructure:"menu" yaml:"menu"`
}

// Telemetry holds error reporting settings
type Telemetry struct {
	DSN string `mapstructure:"dsn" yaml:"dsn"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	cfg := &Config{}

	cfg.Logging.Level = DefaultLogLevel
	cfg.Logging.Format = DefaultLogFormat

	cfg.Articles.Timeout = DefaultFeedTimeout

	cfg.UI.Menu = DefaultMenuEnabled

	return cfg
}

// Load reads the configuration file at path (kadry.yaml when empty), applies .env and KADRY_* overrides
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = ConfigFile
	}

	// .env is optional
	_ = godotenv.Load(EnvFile)

	v := newViper()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
			return nil, errors.ErrFailedToParseConfig
		}
	case os.IsNotExist(err) && !explicit:
	default:
		return nil, errors.ErrFailedToReadConfig
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.ErrFailedToParseConfig
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrInvalidConfig, err)
	}

	return cfg, nil
}

// newViper creates a viper instance that knows every key, so environment overrides apply without a file
func newViper() *viper.Viper {
	defaults := DefaultConfig()

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("logging.level", defaults.Logging.Level)
	v.SetDefault("logging.format", defaults.Logging.Format)
	v.SetDefault("articles.path", defaults.Articles.Path)
	v.SetDefault("articles.feed", defaults.Articles.Feed)
	v.SetDefault("articles.timeout", defaults.Articles.Timeout)
	v.SetDefault("ui.menu", defaults.UI.Menu)
	v.SetDefault("telemetry.dsn", defaults.Telemetry.DSN)

	return v
}

// ApplyDefaults fills empty values left by a partial config file
func (c *Config) ApplyDefaults() {
	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}

	if c.Logging.Format == "" {
		c.Logging.Format = DefaultLogFormat
	}

	if c.Articles.Timeout == 0 {
		c.Articles.Timeout = DefaultFeedTimeout
	}

	c.Articles.Path = strings.TrimSpace(c.Articles.Path)
	c.Articles.Feed = strings.TrimSpace(c.Articles.Feed)
}

// ApplyOverrides replaces the article source with command-line values; a flag wins over the file
func (c *Config) ApplyOverrides(path, feed string) {
	path = strings.TrimSpace(path)
	feed = strings.TrimSpace(feed)

	switch {
	case path != "" && feed != "":
		c.Articles.Path = path
		c.Articles.Feed = feed
	case path != "":
		c.Articles.Path = path
		c.Articles.Feed = ""
	case feed != "":
		c.Articles.Path = ""
		c.Articles.Feed = feed
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Articles.Timeout < 0 {
		return errors.ErrInvalidArticlesTimeout
	}

	if c.Articles.Path != "" && c.Articles.Feed != "" {
		return errors.ErrConflictingSources
	}

	return nil
}
