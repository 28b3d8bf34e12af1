package config

import (
	"os"

	"blackjack-console/internal/util"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config provides configuration for the blackjack console game
type Config struct {
	loaded          bool
	StartingBalance int `yaml:"startingBalance" envconfig:"starting_balance"`
	DefaultBet      int `yaml:"defaultBet" envconfig:"default_bet"`
	MinBet          int `yaml:"minBet" envconfig:"min_bet"`
	Log             struct {
		Level string `yaml:"level"`
	}
}

var config Config

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// A missing config file is not an error; defaults and environment variables still apply.
func Load() error {
	config = Config{
		StartingBalance: 1000,
		DefaultBet:      100,
		MinBet:          1,
	}

	configFile := util.Getenv("BLACKJACK_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&config); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("blackjack", &config); err != nil {
		return err
	}

	config.loaded = true
	return nil
}
