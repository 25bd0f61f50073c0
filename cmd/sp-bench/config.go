package main

import (
	"os"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// Config mirrors the command line flags; a YAML file supplies defaults that
// explicitly set flags override.
type Config struct {
	Graph     string `yaml:"graph"`
	Source    int    `yaml:"source"`
	Target    int    `yaml:"target"`
	Threads   int    `yaml:"threads"`
	Threshold int    `yaml:"threshold"`
	Trials    int    `yaml:"trials"`
}

func ReadConfig(file string) Config {
	log.Info().Msg("Reading config file " + file)
	data, err := os.ReadFile(file)
	if err != nil {
		log.Panic().Err(err).Msg("failed to read config file")
	}
	var config Config
	if err = yaml.Unmarshal(data, &config); err != nil {
		log.Panic().Err(err).Msg("failed to parse config file")
	}
	return config
}
