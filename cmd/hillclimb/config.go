package main

import (
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config is the resolved run configuration.
type Config struct {
	Input   string // Path of the height map to solve.
	Workers int    // Concurrent searches for the lowest-start question.
	Draw    bool   // Also print the best route.
	Log     struct {
		Level string
	}
}

// Validate reports the first invalid field.
func (cfg Config) Validate() error {
	if cfg.Input == "" {
		return fmt.Errorf("Input not specified")
	} else if cfg.Workers < 1 {
		return fmt.Errorf("invalid Workers: (%d; expected >= 1)", cfg.Workers)
	} else if _, err := log.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("invalid Log.Level: %w", err)
	}
	return nil
}

// loadConfig reads the optional config file, then layers environment
// variables and bound flags over it, and validates the result.
func loadConfig(v *viper.Viper, configFile string) (Config, error) {
	var cfg Config

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName(".hillclimb")
	}
	if err := v.ReadInConfig(); err == nil {
		log.WithField("path", v.ConfigFileUsed()).Debug("read config")
	} else if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound || configFile != "" {
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	// Allow environment variables to override file configuration.
	// Treat variable underscores as nested-path specifiers.
	v.SetEnvPrefix("hillclimb")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, cfg.Validate()
}

// initLog configures the standard logrus logger at the given level.
func initLog(level string) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		log.WithField("err", err).Fatal("unrecognized log level")
	}
	log.SetLevel(lvl)
}
