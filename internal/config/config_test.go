package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"alcyxob/clipclass/internal/planner"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	require.Equal(t, ":8080", cfg.Server.Address)
	require.Equal(t, "badger", cfg.Snapshot.Backend)
	require.Equal(t, 5*time.Second, cfg.Snapshot.Timeout)
	require.Equal(t, "clipclass.videos", cfg.Catalog.SnapshotKey)
	require.True(t, cfg.Catalog.SeedLibrary)
	require.Equal(t, 1500*time.Millisecond, cfg.Planner.Delay)
	require.Equal(t, planner.DefaultWeights(), cfg.Planner.Weights)
	require.Equal(t, planner.DefaultMaxResults, cfg.Planner.Options().MaxResults)
}

func TestLoadConfigFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	yaml := []byte(`
server:
  address: ":9090"
snapshot:
  backend: memory
planner:
  max_results: 8
  delay: 0s
  weights:
    tag: 55
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), yaml, 0o600))
	t.Setenv("SNAPSHOT_BACKEND", "redis")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	require.Equal(t, ":9090", cfg.Server.Address)
	require.Equal(t, "redis", cfg.Snapshot.Backend)
	require.Equal(t, 8, cfg.Planner.MaxResults)
	require.Zero(t, cfg.Planner.Delay)
	require.Equal(t, 55, cfg.Planner.Weights.Tag)
	require.Equal(t, 100, cfg.Planner.Weights.Title)
}
