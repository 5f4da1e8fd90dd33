package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "dwh.duckdb", cfg.DBPath)
	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, "backups", cfg.BackupDir)
	assert.Equal(t, "logs", cfg.LogDir)
	assert.Equal(t, "4GB", cfg.MemoryLimit)
	assert.Equal(t, 4, cfg.Threads)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("CASEDWH_DB_PATH", "custom.duckdb")
	t.Setenv("CASEDWH_MEMORY_LIMIT", "8GB")
	t.Setenv("CASEDWH_THREADS", "8")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "custom.duckdb", cfg.DBPath)
	assert.Equal(t, "8GB", cfg.MemoryLimit)
	assert.Equal(t, 8, cfg.Threads)
}

func TestLoadFromEnvFile(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	content := "DB_PATH=file.duckdb\nTHREADS=2\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0o644))

	cfg, err := Load(envFile)
	require.NoError(t, err)

	assert.Equal(t, "file.duckdb", cfg.DBPath)
	assert.Equal(t, 2, cfg.Threads)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Run("non-positive threads", func(t *testing.T) {
		t.Setenv("CASEDWH_THREADS", "0")
		_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "THREADS")
	})

	t.Run("empty db path", func(t *testing.T) {
		dir := t.TempDir()
		envFile := filepath.Join(dir, ".env")
		require.NoError(t, os.WriteFile(envFile, []byte("DB_PATH=\n"), 0o644))

		_, err := Load(envFile)
		require.Error(t, err)
	})
}

func TestZonePaths(t *testing.T) {
	cfg := &Config{DataDir: "data"}

	assert.Equal(t, filepath.Join("data", "raw", "case_history"), cfg.RawRoot())
	assert.Equal(t, filepath.Join("data", "staging"), cfg.StagingDir())
	assert.Equal(t, filepath.Join("data", "warehouse"), cfg.WarehouseDir())
}
