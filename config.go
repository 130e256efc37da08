package main

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

const (
	envVarPrefix = "CATALOG"
	appName      = "library-catalog"
)

// Config is read from CATALOG_* environment variables; command-line flags
// override it.
type Config struct {
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	StrictIDs bool   `envconfig:"STRICT_IDS" default:"false"`
}

func loadConfig() (Config, error) {
	var c Config
	if err := envconfig.Process(envVarPrefix, &c); err != nil {
		return c, fmt.Errorf("loading configuration: %w", err)
	}
	return c, nil
}
