package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/buildstate/internal/errors"
)

// DefaultConfigFile is the configuration file looked up when none is given.
const DefaultConfigFile = "buildstate.yaml"

// Config represents the application configuration
type Config struct {
	State   StateConfig   `yaml:"state"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// StateConfig locates the persisted global state.
type StateConfig struct {
	File string `yaml:"file"`
}

// MetricsConfig controls metrics export for one-shot invocations.
type MetricsConfig struct {
	// Textfile is a node exporter textfile collector path; empty disables export.
	Textfile string `yaml:"textfile"`
}

// Load loads configuration from configPath. An empty configPath looks up
// DefaultConfigFile and falls back to defaults when it is missing; an explicit
// path must exist. Environment overrides apply in every case.
func Load(configPath string) (*Config, error) {
	loadEnvFile()

	explicit := configPath != ""
	if !explicit {
		configPath = DefaultConfigFile
	}

	cfg := &Config{}
	data, err := os.ReadFile(configPath)
	switch {
	case err == nil:
		// Expand environment variables in the YAML content
		expanded := os.ExpandEnv(string(data))
		if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
			return nil, errors.ConfigInvalid(configPath, err)
		}
	case os.IsNotExist(err):
		if explicit {
			return nil, errors.ConfigNotFound(configPath)
		}
	default:
		return nil, errors.ConfigInvalid(configPath, fmt.Errorf("failed to read config file: %w", err))
	}

	applyEnvOverrides(cfg)
	applyDefaults(cfg)
	return cfg, nil
}

// Init creates a new configuration file with default content. An empty
// configPath writes DefaultConfigFile.
func Init(configPath string, force bool) error {
	if configPath == "" {
		configPath = DefaultConfigFile
	}
	if _, err := os.Stat(configPath); err == nil && !force {
		return errors.ValidationFailed("config", fmt.Sprintf("configuration file already exists: %s (use --force to overwrite)", configPath))
	}

	cfg := &Config{}
	applyDefaults(cfg)
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.InternalError("failed to marshal config", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return errors.FileSystemError("write", configPath, err)
	}
	return nil
}
