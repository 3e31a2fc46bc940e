// Package config handles loading the optional snowcrash configuration
// file that sets project-wide parser defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the name of the snowcrash configuration file.
const ConfigFileName = ".snowcrash.yaml"

// Config holds project-wide defaults that seed the CLI's flags when
// they are not given explicitly on the command line.
type Config struct {
	// Format is the serialization format ("yaml" or "json") the parse
	// command falls back to when its own format is empty. The parse
	// command's --format flag defaults to "yaml", so this value does not
	// override it on the command line.
	Format string `yaml:"format"`
	// RequireName makes a missing top-level API name a fatal error.
	RequireName bool `yaml:"require_name"`
	// Sourcemap enables exporting the AST-shaped source-map tree by
	// default.
	Sourcemap bool `yaml:"sourcemap"`
	// ProjectRoot is the directory the config file was found in, or the
	// starting directory when no file was found.
	ProjectRoot string `yaml:"-"`
}

// Load searches for ConfigFileName starting from the current working
// directory, walking up the directory tree. If none is found, returns
// defaults.
func Load() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}

	return LoadFromPath(cwd)
}

// LoadFromPath searches for ConfigFileName starting from startPath,
// walking up the directory tree.
func LoadFromPath(startPath string) (*Config, error) {
	absPath, err := filepath.Abs(startPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve absolute path for %q: %w", startPath, err)
	}

	currentPath := absPath
	for {
		configPath := filepath.Join(currentPath, ConfigFileName)
		if _, err := os.Stat(configPath); err == nil {
			cfg, err := parseConfigFile(configPath)
			if err != nil {
				return nil, err
			}
			cfg.ProjectRoot = currentPath

			if err := cfg.validate(); err != nil {
				return nil, fmt.Errorf("invalid configuration in %s: %w", configPath, err)
			}

			return cfg, nil
		}

		parentPath := filepath.Dir(currentPath)
		if parentPath == currentPath {
			break
		}
		currentPath = parentPath
	}

	return &Config{Format: "yaml", ProjectRoot: absPath}, nil
}

func parseConfigFile(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		var yamlErr *yaml.TypeError
		if errors.As(err, &yamlErr) {
			return nil, fmt.Errorf("invalid YAML syntax: %v", yamlErr.Errors)
		}

		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if cfg.Format == "" {
		cfg.Format = "yaml"
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	switch strings.ToLower(c.Format) {
	case "yaml", "json":
	default:
		return fmt.Errorf("format must be 'yaml' or 'json', got %q", c.Format)
	}

	return nil
}
