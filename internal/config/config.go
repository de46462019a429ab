// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 The nttt Authors

// Package config handles application configuration: locating and reading the
// configuration file and resolving where the project state file lives.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	appName = "nttt"

	// DefaultPollInterval is how often the TUI re-reads the registry.
	DefaultPollInterval = 100 * time.Millisecond
)

// Config represents the top-level application configuration
type Config struct {
	// StateFile is where registered projects are saved (optional, defaults
	// to the XDG data directory)
	StateFile string `yaml:"state_file,omitempty"`

	// Ephemeral keeps projects in memory only for a single invocation
	Ephemeral bool `yaml:"ephemeral,omitempty"`

	// PollIntervalMs is the TUI refresh interval in milliseconds
	PollIntervalMs int `yaml:"poll_interval_ms,omitempty"`
}

// PollInterval returns the configured refresh interval or the default.
func (c Config) PollInterval() time.Duration {
	if c.PollIntervalMs <= 0 {
		return DefaultPollInterval
	}
	return time.Duration(c.PollIntervalMs) * time.Millisecond
}

// ResolvedStateFile returns the state file path with '~/' expanded, falling
// back to DefaultStatePath when none is configured.
func (c Config) ResolvedStateFile() (string, error) {
	if c.StateFile == "" {
		return DefaultStatePath()
	}
	return ResolvePath(c.StateFile)
}

func DefaultConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(configDir, appName, "config.yaml"), nil
}

// DefaultStatePath follows XDG_DATA_HOME, defaulting to ~/.local/share.
func DefaultStatePath() (string, error) {
	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("could not get user home directory: %w", err)
		}
		dataDir = filepath.Join(homeDir, ".local", "share")
	}
	return filepath.Join(dataDir, appName, "projects.yaml"), nil
}

func LoadConfig() (Config, error) {
	configPath, err := DefaultConfigPath()
	if err != nil {
		return Config{}, err
	}
	return LoadConfigFrom(configPath)
}

// LoadConfigFrom reads the config at configPath. A missing file yields the
// zero Config.
func LoadConfigFrom(configPath string) (Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	var cfg Config
	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}

	return cfg, nil
}

func EnsureConfigDir() error {
	configPath, err := DefaultConfigPath()
	if err != nil {
		return err
	}
	configDir := filepath.Dir(configPath)
	err = os.MkdirAll(configDir, 0750) // rwxr-x---
	if err != nil {
		return fmt.Errorf("failed to create config directory %s: %w", configDir, err)
	}
	return nil
}

func SaveConfig(cfg Config) error {
	configPath, err := DefaultConfigPath()
	if err != nil {
		return err
	}

	err = EnsureConfigDir()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	// Write with permissions rw-r----- (0640)
	err = os.WriteFile(configPath, data, 0640)
	if err != nil {
		return fmt.Errorf("failed to write config file %s: %w", configPath, err)
	}

	return nil
}

func ResolvePath(path string) (string, error) {
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path, fmt.Errorf("could not get user home directory to resolve path '%s': %w", path, err)
	}

	return filepath.Join(homeDir, path[2:]), nil
}
