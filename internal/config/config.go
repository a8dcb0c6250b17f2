// Package config loads service configuration from TOML with environment
// variable overrides for deployment.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

type Neo4jConfig struct {
	URI      string `toml:"uri"`
	User     string `toml:"user"`
	Password string `toml:"password"`
	Database string `toml:"database"`
}

type RegistryConfig struct {
	BaseURL           string  `toml:"base_url"`
	RequestsPerSecond float64 `toml:"requests_per_second"`
	UseMock           bool    `toml:"use_mock"`
}

type DiscoveryConfig struct {
	MaxDepth int `toml:"max_depth"`
}

type ServerConfig struct {
	Port string `toml:"port"`
}

type ExportConfig struct {
	Dir string `toml:"dir"`
}

type Config struct {
	Neo4j     Neo4jConfig     `toml:"neo4j"`
	Registry  RegistryConfig  `toml:"registry"`
	Discovery DiscoveryConfig `toml:"discovery"`
	Server    ServerConfig    `toml:"server"`
	Export    ExportConfig    `toml:"export"`
}

// Default returns the configuration used when no config file is present.
func Default() *Config {
	return &Config{
		Neo4j: Neo4jConfig{
			URI:      "bolt://localhost:7687",
			User:     "neo4j",
			Password: "password",
		},
		Registry: RegistryConfig{
			RequestsPerSecond: 5,
		},
		Discovery: DiscoveryConfig{
			MaxDepth: 3,
		},
		Server: ServerConfig{
			Port: "8080",
		},
		Export: ExportConfig{
			Dir: "exports",
		},
	}
}

// Load reads a TOML config file, filling unset fields from Default.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overrides config values from the environment. Deployment
// environments set these instead of editing the TOML file.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("NEO4J_URI"); v != "" {
		c.Neo4j.URI = v
	}
	if v := os.Getenv("NEO4J_USER"); v != "" {
		c.Neo4j.User = v
	}
	if v := os.Getenv("NEO4J_PASSWORD"); v != "" {
		c.Neo4j.Password = v
	}
	if v := os.Getenv("NEO4J_DATABASE"); v != "" {
		c.Neo4j.Database = v
	}
	if v := os.Getenv("KRS_BASE_URL"); v != "" {
		c.Registry.BaseURL = v
	}
	if v := os.Getenv("KRS_USE_MOCK"); v == "true" || v == "1" {
		c.Registry.UseMock = true
	}
	if v := os.Getenv("PORT"); v != "" {
		c.Server.Port = v
	}
}
