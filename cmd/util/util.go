// Package util provides common utilities for spf13/cobra CLI utilities
// that can be used for various commands within this project.
package util

import (
	"errors"
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/stackbook/naivelist/internal/config"
)

// MustBindPFlag attempts to bind a specific key to a pflag (as used by cobra) and panics
// if the binding fails with a non-nil error.
func MustBindPFlag(key string, flag *pflag.Flag) {
	if err := viper.BindPFlag(key, flag); err != nil {
		panic("failed to bind pflag: " + err.Error())
	}
}

func MustBindEnv(input ...string) {
	if err := viper.BindEnv(input...); err != nil {
		panic("failed to bind env key: " + err.Error())
	}
}

// BindLogFlags registers the log flags shared by every command.
func BindLogFlags(flags *pflag.FlagSet) {
	defaultConfig := config.DefaultConfig()

	flags.String("log-format", defaultConfig.Log.Format, "the log format to output logs in")
	MustBindPFlag("log.format", flags.Lookup("log-format"))
	MustBindEnv("log.format", "NAIVELIST_LOG_FORMAT")

	flags.String("log-level", defaultConfig.Log.Level, "the log level to use")
	MustBindPFlag("log.level", flags.Lookup("log-level"))
	MustBindEnv("log.level", "NAIVELIST_LOG_LEVEL")
}

// ReadConfig layers the config file, environment and bound flags over the defaults.
// A missing config file is not an error.
func ReadConfig() (*config.Config, error) {
	cfg := config.DefaultConfig()

	viper.SetTypeByDefaultValue(true)
	err := viper.ReadInConfig()
	if err != nil {
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Verify(); err != nil {
		return nil, err
	}

	return cfg, nil
}
