package client

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileTokenStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "walletctl", "token")
	store := NewFileTokenStore(path)

	token, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, token)

	require.NoError(t, store.Save("abc.def.ghi"))

	token, err = store.Load()
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("WALLETCTL_SERVER", "wallet.example.com:9000")
	t.Setenv("WALLETCTL_TOKEN_FILE", "/tmp/walletctl-token")
	t.Setenv("WALLETCTL_TIMEOUT", "3s")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "wallet.example.com:9000", cfg.ServerAddress)
	assert.Equal(t, "/tmp/walletctl-token", cfg.TokenFile)
	assert.Equal(t, "3s", cfg.Timeout.String())
}

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"WALLETCTL_SERVER", "WALLETCTL_TOKEN_FILE", "WALLETCTL_TIMEOUT"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "localhost:8080", cfg.ServerAddress)
	assert.Equal(t, "token", filepath.Base(cfg.TokenFile))
	assert.Equal(t, "15s", cfg.Timeout.String())
}
