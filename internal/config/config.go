// Package config loads walkthrough settings from defaults, an optional
// config file, ARRAYLIKE_* environment variables and bound CLI flags.
package config

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"arraylike/merr"
)

const EnvPrefix = "ARRAYLIKE"

// Keys shared with the CLI flag bindings.
const (
	KeySize     = "size"
	KeyRows     = "rows"
	KeyCols     = "cols"
	KeySeed     = "seed"
	KeyRandMin  = "rand.min"
	KeyRandMax  = "rand.max"
	KeyLogLevel = "log.level"
	KeySections = "sections"
)

type Config struct {
	// Length of the one-dimensional arrays.
	Size int `mapstructure:"size" validate:"gt=0"`
	// Dimensions of the grid.
	Rows int `mapstructure:"rows" validate:"gt=0"`
	Cols int `mapstructure:"cols" validate:"gt=0"`
	// Seed for the random input, 0 seeds from the clock.
	Seed uint64 `mapstructure:"seed"`

	Rand RandConfig `mapstructure:"rand"`
	Log  LogConfig  `mapstructure:"log"`

	// Sections to run, empty runs all of them.
	Sections []string `mapstructure:"sections"`
}

// RandConfig bounds the random integers, both ends inclusive.
type RandConfig struct {
	Min int `mapstructure:"min"`
	Max int `mapstructure:"max" validate:"gtefield=Min"`
}

type LogConfig struct {
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeySize, 5)
	v.SetDefault(KeyRows, 3)
	v.SetDefault(KeyCols, 4)
	v.SetDefault(KeySeed, 0)
	v.SetDefault(KeyRandMin, 1)
	v.SetDefault(KeyRandMax, 10)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeySections, []string{})
}

// Load reads the configuration held by v. If path is not empty the file is
// read first; its format follows the extension.
func Load(v *viper.Viper, path string) (*Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", path)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, merr.WrapErrInvalidConfig(err, "decode")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns the configuration with no file, env or flag overrides.
func Default() *Config {
	return &Config{
		Size: 5,
		Rows: 3,
		Cols: 4,
		Rand: RandConfig{Min: 1, Max: 10},
		Log:  LogConfig{Level: "info"},
	}
}

func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return merr.WrapErrInvalidConfig(err, "validate")
	}
	return nil
}
