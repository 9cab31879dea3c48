package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curator-app/curator/internal/config"
)

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "file", cfg.Backend)
	assert.Equal(t, 7, cfg.UpcomingDays)
	assert.NotEmpty(t, cfg.DataDir)
}

func TestLoad_ParsesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "data_dir: /tmp/curator-data\nbackend: sqlite\nupcoming_days: 14\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/curator-data", cfg.DataDir)
	assert.Equal(t, "sqlite", cfg.Backend)
	assert.Equal(t, 14, cfg.UpcomingDays)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("backend: bolt\n"), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "bolt", cfg.Backend)
	assert.Equal(t, 7, cfg.UpcomingDays)
	assert.NotEmpty(t, cfg.DataDir)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("backend: [unclosed\n"), 0o644))

	_, err := config.Load(path)
	assert.Error(t, err)
}
