// Package config loads the server configuration from the environment
// and an optional YAML file. Environment variables win over file values.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Environment variable names.
const (
	EnvSpaceID     = "CONTENTFUL_SPACE_ID"
	EnvAccessToken = "CONTENTFUL_ACCESS_TOKEN"
	EnvEnvironment = "CONTENTFUL_ENVIRONMENT"
)

// Config holds the Contentful connection settings. Missing credentials
// are a valid configuration: the client degrades to empty results
// instead of refusing to start.
type Config struct {
	SpaceID     string `yaml:"space_id"`
	AccessToken string `yaml:"access_token"`
	Environment string `yaml:"environment"`
}

// Load reads path (when non-empty) and applies environment overrides.
func Load(path string) (Config, error) {
	var cfg Config

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if v := os.Getenv(EnvSpaceID); v != "" {
		cfg.SpaceID = v
	}
	if v := os.Getenv(EnvAccessToken); v != "" {
		cfg.AccessToken = v
	}
	if v := os.Getenv(EnvEnvironment); v != "" {
		cfg.Environment = v
	}
	if cfg.Environment == "" {
		cfg.Environment = "master"
	}

	return cfg, nil
}

// HasCredentials reports whether both credentials are present.
func (c Config) HasCredentials() bool {
	return c.SpaceID != "" && c.AccessToken != ""
}
