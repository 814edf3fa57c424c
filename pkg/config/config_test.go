package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	p := filepath.Join(t.TempDir(), "scrip.toml")
	err := os.WriteFile(p, []byte(
		"addr = \"0.0.0.0:6000\"\n"+
			"pub_addr = \"ledger.example.com:6000\"\n"+
			"store = \"sqlite\"\n"+
			"discovery = true\n",
	), 0o644)
	require.NoError(t, err)

	cfg, err := Load(p)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:6000", cfg.Addr)
	assert.Equal(t, "ledger.example.com:6000", cfg.PubAddr)
	assert.Equal(t, "sqlite", cfg.Store)
	assert.True(t, cfg.Discovery)

	// Keys the file doesn't mention keep their defaults.
	assert.Equal(t, "scrip.db", cfg.SQLitePath)
	assert.Equal(t, 1024, cfg.JournalSize)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open config file")
}

func TestLoadGarbage(t *testing.T) {
	p := filepath.Join(t.TempDir(), "scrip.toml")
	err := os.WriteFile(p, []byte("addr = [what"), 0o644)
	require.NoError(t, err)

	_, err = Load(p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode TOML config")
}
