// Package config loads service configuration from a YAML file, with
// sensible defaults for every field so the service runs with no file at all.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration wraps time.Duration so values like "30s" or "2h" parse from YAML.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", value.Value, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// Config is the root configuration document.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Storage StorageConfig `yaml:"storage"`
	Fetch   FetchConfig   `yaml:"fetch"`
	Auth    AuthConfig    `yaml:"auth"`
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Port string `yaml:"port"`
}

// StorageConfig holds the on-disk database location.
type StorageConfig struct {
	DataDir  string `yaml:"dataDir"`
	FileName string `yaml:"fileName"`
}

// FetchConfig holds the upstream data provider settings.
type FetchConfig struct {
	BaseURL string   `yaml:"baseUrl"`
	Timeout Duration `yaml:"timeout"`
}

// AuthConfig holds the passwordless authentication settings. An empty RPID
// disables authentication entirely.
type AuthConfig struct {
	RPID          string   `yaml:"rpId"`
	RPDisplayName string   `yaml:"rpDisplayName"`
	RPOrigins     []string `yaml:"rpOrigins"`
	SessionTTL    Duration `yaml:"sessionTtl"`
	ChallengeTTL  Duration `yaml:"challengeTtl"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port: "8080",
		},
		Storage: StorageConfig{
			DataDir:  ".",
			FileName: "stock-tracker.db",
		},
		Fetch: FetchConfig{
			Timeout: Duration(30 * time.Second),
		},
		Auth: AuthConfig{
			RPDisplayName: "Stock Tracker",
			SessionTTL:    Duration(60 * time.Minute),
			ChallengeTTL:  Duration(5 * time.Minute),
		},
	}
}

// Load reads a YAML configuration file on top of the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return cfg, nil
}

// AuthEnabled reports whether the configuration carries enough to run the
// authentication service.
func (c *Config) AuthEnabled() bool {
	return c.Auth.RPID != ""
}
