package main

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	SpecialistAddr string `envconfig:"SPECIALIST_ADDR" default:"localhost:50051"`
	// TESTER_COLOURS colors the predicted labels in the output table
	Colours     bool          `envconfig:"TESTER_COLOURS" default:"true"`
	DialTimeout time.Duration `envconfig:"DIAL_TIMEOUT" default:"5s"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
