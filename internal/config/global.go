// Package config handles global configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/jasonthiese/commonmetadata/internal/schema"
)

// GlobalConfig represents configuration stored in ~/.config/matmeta/config.yml.
type GlobalConfig struct {
	Services []string `yaml:"services,omitempty" json:"services,omitempty"`   // Default target services
	LogLevel string   `yaml:"log_level,omitempty" json:"log_level,omitempty"` // debug, info, warn, error
	Indent   string   `yaml:"indent,omitempty" json:"indent,omitempty"`       // JSON output indent
}

const (
	// GlobalConfigDir is the directory name under XDG_CONFIG_HOME.
	GlobalConfigDir = "matmeta"
	// GlobalConfigFile is the config file name.
	GlobalConfigFile = "config.yml"

	// DefaultIndent is used for JSON output when none is configured.
	DefaultIndent = "  "

	// Environment overrides, also read from a .env file.
	EnvLogLevel = "MATMETA_LOG_LEVEL"
	EnvServices = "MATMETA_SERVICES"
)

// globalConfigCache caches the loaded global config.
var globalConfigCache *GlobalConfig

// GlobalConfigPath returns the path to the global config file.
// Respects XDG_CONFIG_HOME, defaults to ~/.config/matmeta/config.yml.
func GlobalConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, GlobalConfigDir, GlobalConfigFile)
}

// LoadEnv loads a .env file from the working directory if present.
func LoadEnv() {
	_ = godotenv.Load()
}

// LoadGlobalConfig loads the global configuration file and applies
// environment overrides. Returns defaults (not an error) if the file
// doesn't exist.
func LoadGlobalConfig() (*GlobalConfig, error) {
	if globalConfigCache != nil {
		return globalConfigCache, nil
	}

	cfg := &GlobalConfig{}
	if path := GlobalConfigPath(); path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing global config: %w", err)
			}
		case !os.IsNotExist(err):
			return nil, fmt.Errorf("reading global config: %w", err)
		}
	}

	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv(EnvServices); v != "" {
		cfg.Services = splitList(v)
	}
	if cfg.Indent == "" {
		cfg.Indent = DefaultIndent
	}

	if _, err := cfg.TargetServices(); err != nil {
		return nil, fmt.Errorf("invalid global config: %w", err)
	}

	globalConfigCache = cfg
	return cfg, nil
}

// ResetGlobalConfigCache clears the cached global config.
// Useful for testing.
func ResetGlobalConfigCache() {
	globalConfigCache = nil
}

// TargetServices resolves the configured service names. An empty list
// means every service.
func (c *GlobalConfig) TargetServices() ([]schema.Service, error) {
	if len(c.Services) == 0 {
		return schema.Services(), nil
	}
	services := make([]schema.Service, 0, len(c.Services))
	for _, name := range c.Services {
		s, err := schema.ParseService(name)
		if err != nil {
			return nil, err
		}
		services = append(services, s)
	}
	return services, nil
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
