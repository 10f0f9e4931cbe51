package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"holdem-table/internal/util"
)

// Config provides configuration for the hold'em table
type Config struct {
	loaded bool
	Log    struct {
		Level  string `yaml:"level" envconfig:"level"`
		Format string `yaml:"format" envconfig:"format"`
	} `yaml:"log"`
	Table struct {
		StartingStack      int   `yaml:"startingStack" envconfig:"starting_stack"`
		BigBlind           int   `yaml:"bigBlind" envconfig:"big_blind"`
		SmallBlind         int   `yaml:"smallBlind" envconfig:"small_blind"`
		DonorBlind         int   `yaml:"donorBlind" envconfig:"donor_blind"`
		BlindIncreaseEvery int   `yaml:"blindIncreaseEvery" envconfig:"blind_increase_every"`
		BigBlindIncrease   int   `yaml:"bigBlindIncrease" envconfig:"big_blind_increase"`
		SmallBlindIncrease int   `yaml:"smallBlindIncrease" envconfig:"small_blind_increase"`
		Seed               int64 `yaml:"seed" envconfig:"seed"`
	} `yaml:"table"`
}

var config Config

// DefaultConfig returns the configuration used when no file is present
func DefaultConfig() Config {
	var c Config
	c.Log.Level = "info"
	c.Log.Format = "text"
	c.Table.StartingStack = 100
	c.Table.BigBlind = 5
	c.Table.SmallBlind = 2
	c.Table.DonorBlind = 0
	c.Table.BlindIncreaseEvery = 5
	c.Table.BigBlindIncrease = 5
	c.Table.SmallBlindIncrease = 2

	return c
}

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
// Values missing from the file keep their defaults, and a missing file is not an error
func Load() error {
	c := DefaultConfig()

	configFile := util.Getenv("HOLDEM_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	if file != nil {
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&c); err != nil {
			return err
		}
	}

	if err := envconfig.Process("holdem", &c); err != nil {
		return err
	}

	c.loaded = true
	config = c
	return nil
}
