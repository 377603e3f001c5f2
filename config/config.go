// Package config loads the STC tool configuration.
//
// Configuration is optional: every setting has a default and can be
// overridden by a TOML file or an STC_-prefixed environment variable.
// Precedence, lowest to highest: defaults, user config
// (~/.config/stc/config.toml), project config (./stc.toml), environment.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/teranos/STC/errors"
)

// Config represents the STC tool configuration.
type Config struct {
	// DefaultVocab is the vocabulary file used when --vocab is not given.
	DefaultVocab string `mapstructure:"default_vocab"`

	Logging LoggingConfig `mapstructure:"logging"`
}

// LoggingConfig configures CLI log output.
type LoggingConfig struct {
	// JSON switches log output to structured JSON.
	JSON bool `mapstructure:"json"`

	// Verbosity is the baseline verbosity; -v flags add to it.
	Verbosity int `mapstructure:"verbosity"`
}

var (
	globalConfig  *Config
	viperInstance *viper.Viper
)

// Load reads the STC configuration, caching the result for the process.
func Load() (*Config, error) {
	if globalConfig != nil {
		return globalConfig, nil
	}

	var cfg Config
	if err := initViper().Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	globalConfig = &cfg
	return globalConfig, nil
}

// LoadWithViper loads configuration from a provided viper instance.
// Useful for tests that want an isolated configuration source.
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	return &cfg, nil
}

// Reset clears the cached configuration (useful for testing).
func Reset() {
	globalConfig = nil
	viperInstance = nil
}

// SetDefaults applies the default values to a viper instance.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("default_vocab", "")
	v.SetDefault("logging.json", false)
	v.SetDefault("logging.verbosity", 0)
}

func initViper() *viper.Viper {
	if viperInstance != nil {
		return viperInstance
	}

	v := viper.New()
	v.SetEnvPrefix("STC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	// Merge config files in precedence order: user, then project.
	if home, err := os.UserHomeDir(); err == nil {
		mergeIfPresent(v, filepath.Join(home, ".config", "stc", "config.toml"))
	}
	mergeIfPresent(v, "stc.toml")

	viperInstance = v
	return v
}

func mergeIfPresent(v *viper.Viper, path string) {
	if _, err := os.Stat(path); err != nil {
		return
	}
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	// A malformed optional config file must not take the tool down.
	_ = v.MergeInConfig()
}
