// Package config loads the adapter's startup configuration: mandatory
// credentials from the environment and optional settings from a YAML file.
package config

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Environment variables read at startup.
const (
	EnvAPIKey    = "RWGPS_API_KEY"
	EnvAuthToken = "RWGPS_AUTH_TOKEN"
	EnvBaseURL   = "RWGPS_BASE_URL"
)

// Config is the immutable configuration the process runs with. It is
// constructed once at startup and passed explicitly to the client; nothing
// reads the environment after that.
type Config struct {
	APIKey        string
	AuthToken     string
	BaseURL       string
	DisabledTools []string
}

// File is the optional YAML configuration file.
type File struct {
	BaseURL       string   `yaml:"base_url"`
	DisabledTools []string `yaml:"disabled_tools"`
}

// FromEnv builds a Config from the process environment. Both credentials are
// mandatory; a missing one is a fatal startup condition, reported with the
// variable name. Credential values may be 1Password secret references
// (op://vault/item/field), resolved via the op CLI.
func FromEnv(ctx context.Context) (*Config, error) {
	apiKey := os.Getenv(EnvAPIKey)
	authToken := os.Getenv(EnvAuthToken)

	var missing []string
	if apiKey == "" {
		missing = append(missing, EnvAPIKey)
	}
	if authToken == "" {
		missing = append(missing, EnvAuthToken)
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required environment variable(s): %s", strings.Join(missing, ", "))
	}

	apiKey, err := resolveSecret(ctx, apiKey)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", EnvAPIKey, err)
	}
	authToken, err = resolveSecret(ctx, authToken)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", EnvAuthToken, err)
	}

	return &Config{
		APIKey:    apiKey,
		AuthToken: authToken,
		BaseURL:   os.Getenv(EnvBaseURL),
	}, nil
}

// LoadFile loads the optional configuration file. A missing file (or empty
// path) yields an empty File rather than an error.
func LoadFile(path string) (*File, error) {
	if path == "" {
		return &File{}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &File{}, nil
		}
		return nil, fmt.Errorf("opening config file: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// Load parses a configuration file from r.
func Load(r io.Reader) (*File, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading config data: %w", err)
	}

	file := &File{}
	if err := yaml.Unmarshal(data, file); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}
	return file, nil
}

// Apply merges file settings into the config. The environment wins for
// settings both define.
func (c *Config) Apply(f *File) {
	if c.BaseURL == "" {
		c.BaseURL = f.BaseURL
	}
	c.DisabledTools = append(c.DisabledTools, f.DisabledTools...)
}
