package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/krsgraph/krsgraph/internal/config"
	"github.com/krsgraph/krsgraph/internal/driver"
	"github.com/krsgraph/krsgraph/internal/registry"
)

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	if path == "" {
		path = "config/config.toml"
		if _, err := os.Stat(path); err != nil {
			// No config file anywhere; defaults plus env are enough for
			// registry-only commands.
			cfg := config.Default()
			cfg.ApplyEnv()
			return cfg, nil
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv()
	return cfg, nil
}

func newRegistryClient(cmd *cobra.Command, cfg *config.Config) registry.API {
	mock, _ := cmd.Flags().GetBool("mock")
	if mock || cfg.Registry.UseMock {
		return registry.NewMockClient()
	}
	return registry.NewClient(cfg.Registry.BaseURL, cfg.Registry.RequestsPerSecond)
}

func openStore(cfg *config.Config) (*driver.Neo4jDriver, error) {
	d, err := driver.NewNeo4jDriver(cfg.Neo4j.URI, cfg.Neo4j.User, cfg.Neo4j.Password, cfg.Neo4j.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Neo4j at %s: %w", cfg.Neo4j.URI, err)
	}
	return d, nil
}

func closeStore(d *driver.Neo4jDriver) {
	_ = d.Close(context.Background())
}

// writeResult renders v as indented JSON to stdout, or to the file named
// by --output.
func writeResult(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	out, _ := cmd.Flags().GetString("output")
	if out == "" {
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	if err := os.WriteFile(out, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", out, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Saved to %s\n", out)
	return nil
}
