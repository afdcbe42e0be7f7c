// Package config loads pokedex settings from defaults, an optional YAML file
// and POKEDEX_* environment variables.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	"github.com/morikuni/failure/v2"
	"github.com/spf13/viper"
)

// ErrorCode defines error types for configuration loading
type ErrorCode string

const (
	// InvalidConfig represents a config file or value that cannot be used
	InvalidConfig ErrorCode = "InvalidConfig"
)

func (c ErrorCode) ErrorCode() string {
	return string(c)
}

// DefaultBaseURL is the public PokeAPI endpoint
const DefaultBaseURL = "https://pokeapi.co/api/v2"

var validate = validator.New()

// Config holds the runtime settings of pokedex
type Config struct {
	// BaseURL is the root of the PokeAPI resources
	BaseURL string `mapstructure:"base_url" validate:"required,url"`

	// Timeout bounds a single request. Zero means no timeout.
	Timeout time.Duration `mapstructure:"timeout" validate:"gte=0"`

	// HistoryFile stores the interactive input history
	HistoryFile string `mapstructure:"history_file"`

	UserAgent string `mapstructure:"user_agent" validate:"required"`
}

// NewViper returns a viper instance with pokedex defaults, search paths and
// environment binding configured
func NewViper() *viper.Viper {
	v := viper.New()

	v.SetDefault("base_url", DefaultBaseURL)
	v.SetDefault("timeout", time.Duration(0))
	v.SetDefault("history_file", defaultHistoryFile())
	v.SetDefault("user_agent", "pokedex")

	v.SetConfigName("pokedex")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "pokedex"))
	}

	v.SetEnvPrefix("POKEDEX")
	v.AutomaticEnv()

	return v
}

// Load reads the config file if one exists and decodes all settings
func Load(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, failure.Translate(err, InvalidConfig,
				failure.Message("Could not read config file"),
			)
		}
	}

	var cfg Config
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.StringToTimeDurationHookFunc(),
		Result:     &cfg,
	})
	if err != nil {
		return nil, failure.Wrap(err)
	}
	if err := decoder.Decode(v.AllSettings()); err != nil {
		return nil, failure.Translate(err, InvalidConfig,
			failure.Message("Invalid configuration value"),
		)
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, failure.Translate(err, InvalidConfig,
			failure.Message("Invalid configuration value"),
			failure.Context{
				"base_url": cfg.BaseURL,
				"timeout":  cfg.Timeout.String(),
			},
		)
	}

	return &cfg, nil
}

func defaultHistoryFile() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "pokedex_history")
	}
	return filepath.Join(homeDir, ".pokedex_history")
}
