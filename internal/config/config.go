package config

import (
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"consoleholdem/internal/util"
)

// Config provides configuration for the hold'em table
type Config struct {
	Table struct {
		PlayerNames   []string `yaml:"playerNames" envconfig:"player_names"`
		Seats         int      `yaml:"seats" envconfig:"seats"`
		StartingStack int      `yaml:"startingStack" envconfig:"starting_stack"`
		SmallBlind    int      `yaml:"smallBlind" envconfig:"small_blind"`
		BigBlind      int      `yaml:"bigBlind" envconfig:"big_blind"`
	} `yaml:"table"`
	Log struct {
		Level string `yaml:"level" envconfig:"level"`
	} `yaml:"log"`
}

// Default returns the configuration defaults: a two-seat table with
// 20,000 starting stacks and 50/100 blinds
func Default() Config {
	var c Config
	c.Table.Seats = 2
	c.Table.StartingStack = 20000
	c.Table.SmallBlind = 50
	c.Table.BigBlind = 100
	return c
}

// Load will load the configuration from the YAML file at path, then apply
// any HOLDEM_* environment overrides. A missing file is not an error; the
// defaults are used instead.
func Load(path string) (Config, error) {
	if path == "" {
		path = util.Getenv("HOLDEM_CONFIG_FILE", "config.yaml")
	}

	config := Default()

	file, err := os.Open(path)
	if err == nil {
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&config); err != nil {
			return Config{}, err
		}
	} else if !os.IsNotExist(err) {
		return Config{}, err
	}

	if err := envconfig.Process("holdem", &config); err != nil {
		return Config{}, err
	}

	return config, nil
}
