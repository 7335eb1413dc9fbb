package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadExplicitPath(t *testing.T) {
	assertions := require.New(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "config.ini")
	err := os.WriteFile(path, []byte(`
[server]
addr = 127.0.0.1
port = 9000
root = /srv/files
verbose = true
`), 0644)
	assertions.NoError(err)

	cfg, err := Load(path)
	assertions.NoError(err)
	assertions.Equal("127.0.0.1", cfg.Addr)
	assertions.Equal("9000", cfg.Port)
	assertions.Equal("/srv/files", cfg.Root)
	assertions.True(cfg.Verbose)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	assertions := require.New(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "config.ini")
	err := os.WriteFile(path, []byte("[server]\nport = 9000\n"), 0644)
	assertions.NoError(err)

	cfg, err := Load(path)
	assertions.NoError(err)
	assertions.Equal("0.0.0.0", cfg.Addr)
	assertions.Equal("9000", cfg.Port)
	assertions.Equal(".", cfg.Root)
	assertions.False(cfg.Verbose)
}

func TestLoadMissingExplicitPathErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.ini"))
	require.Error(t, err)
}

func TestLoadBadVerbose(t *testing.T) {
	assertions := require.New(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "config.ini")
	err := os.WriteFile(path, []byte("[server]\nverbose = sometimes\n"), 0644)
	assertions.NoError(err)

	_, err = Load(path)
	assertions.Error(err)
}
