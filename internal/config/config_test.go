package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jaesu26/pairrot-solver/internal/solver"
)

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "pairrot.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("CONFIG_PATH", "")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 500, cfg.Solver.Threshold)
	assert.Equal(t, solver.Auto, cfg.Solver.Strategy)
	assert.Equal(t, solver.Mean, cfg.Solver.Reduction)
	assert.Equal(t, uint64(42), cfg.Solver.Seed)
	assert.True(t, cfg.Solver.IncludeMaybe)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "pairrot.db", filepath.Base(cfg.DBPath()))
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, `
solver:
  threshold: 100
  strategy: heuristic
  include_maybe: false
  first_guess: 권황
store:
  db_path: /tmp/x.db
log:
  level: debug
  format: json
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 100, cfg.Solver.Threshold)
	assert.Equal(t, solver.Heuristic, cfg.Solver.Strategy)
	assert.False(t, cfg.Solver.IncludeMaybe)
	assert.Equal(t, "권황", cfg.Solver.FirstGuess)
	assert.Equal(t, "/tmp/x.db", cfg.DBPath())
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadEnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, "solver:\n  threshold: 100\n")
	t.Setenv("PAIRROT_THRESHOLD", "7")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Solver.Threshold)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"strategy", "solver:\n  strategy: greedy\n"},
		{"reduction", "solver:\n  reduction: median\n"},
		{"threshold", "solver:\n  threshold: -1\n"},
		{"log level", "log:\n  level: loud\n"},
		{"log format", "log:\n  format: xml\n"},
		{"max sessions", "server:\n  max_sessions: -1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeYAML(t, t.TempDir(), tt.yaml)
			_, err := Load(path)
			require.Error(t, err)
		})
	}
}
