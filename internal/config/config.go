// Package config loads settings for the corestorage CLI using Viper.
package config

import (
	"errors"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/deploymenttheory/go-corestorage/internal/types"
)

// Config holds CLI configuration.
type Config struct {
	DiskutilPath string `mapstructure:"diskutil_path" json:"diskutil_path" yaml:"diskutil_path"`
	LogLevel     string `mapstructure:"log_level" json:"log_level" yaml:"log_level"`
	Output       string `mapstructure:"output" json:"output" yaml:"output"`
}

// OutputFormats lists the accepted values of Config.Output.
var OutputFormats = []string{"table", "json", "yaml"}

// New returns a Viper instance with search paths, defaults and environment
// binding configured. configFile, when set, replaces the search paths.
func New(configFile string) *viper.Viper {
	v := viper.New()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("corestorage")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("$HOME/.corestorage")
		v.AddConfigPath("/etc/corestorage")
	}

	v.SetDefault("diskutil_path", types.DiskutilPath)
	v.SetDefault("log_level", "info")
	v.SetDefault("output", "table")

	// CORESTORAGE_DISKUTIL_PATH, CORESTORAGE_LOG_LEVEL, CORESTORAGE_OUTPUT
	v.SetEnvPrefix("CORESTORAGE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads the configuration file if one exists and unmarshals v.
func Load(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks field values.
func (c *Config) Validate() error {
	if c.DiskutilPath == "" {
		return errors.New("diskutil_path must not be empty")
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level: %w", err)
	}
	for _, f := range OutputFormats {
		if c.Output == f {
			return nil
		}
	}
	return fmt.Errorf("invalid output format %q (valid: %s)", c.Output, strings.Join(OutputFormats, ", "))
}

// Level returns the parsed log level.
func (c *Config) Level() log.Level {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}
