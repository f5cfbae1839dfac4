package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, ".", cfg.Paths.SourceDir)
	assert.Equal(t, ".", cfg.Paths.OutputDir)
	assert.Equal(t, "data_class.xml", cfg.Paths.XMLFile)
	assert.Equal(t, "public", cfg.Database.Schema)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.JSON.Indent)
}

func TestLoadConfig_MergesWithDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
database:
  host: db.local
  port: 6432
  user: app
  password: secret
  dbname: shop
paths:
  output_dir: out
json:
  indent: true
`), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "out", cfg.Paths.OutputDir)
	assert.Equal(t, ".", cfg.Paths.SourceDir)
	assert.Equal(t, "data_class.xml", cfg.Paths.XMLFile)
	assert.True(t, cfg.JSON.Indent)
	assert.Equal(t, "public", cfg.Database.Schema)
	assert.Equal(t,
		"host=db.local port=6432 user=app password=secret dbname=shop sslmode=disable",
		cfg.Database.GetConnectionString())
}

func TestLoadConfig_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("paths: [unclosed"), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadOrDefault_MissingFile(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
