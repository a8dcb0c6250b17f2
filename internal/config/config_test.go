package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[neo4j]
uri = "bolt://graph:7687"
user = "svc"
password = "secret"

[registry]
use_mock = true

[discovery]
max_depth = 5
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "bolt://graph:7687", cfg.Neo4j.URI)
	assert.Equal(t, "svc", cfg.Neo4j.User)
	assert.True(t, cfg.Registry.UseMock)
	assert.Equal(t, 5, cfg.Discovery.MaxDepth)

	// Unset sections keep defaults.
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.InDelta(t, 5.0, cfg.Registry.RequestsPerSecond, 1e-9)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("NEO4J_URI", "bolt://override:7687")
	t.Setenv("NEO4J_PASSWORD", "hunter2")
	t.Setenv("KRS_USE_MOCK", "true")
	t.Setenv("PORT", "9090")

	cfg := Default()
	cfg.ApplyEnv()

	assert.Equal(t, "bolt://override:7687", cfg.Neo4j.URI)
	assert.Equal(t, "hunter2", cfg.Neo4j.Password)
	assert.True(t, cfg.Registry.UseMock)
	assert.Equal(t, "9090", cfg.Server.Port)
}
