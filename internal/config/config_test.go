package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	config, err := LoadConfig("")
	require.NoError(t, err)
	require.NotNil(t, config)

	assert.Equal(t, 65536, config.Store.Capacity)
	assert.Equal(t, 6363, config.Server.Port)
	assert.Equal(t, 10*time.Second, config.Server.ShutdownGrace)
	assert.Equal(t, ":6363", config.Server.ListenAddr())
}

func TestLoadConfigFromFile(t *testing.T) {
	tempDir := t.TempDir()

	content := `
[store]
capacity = 1024

[server]
bind = "127.0.0.1"
port = 9999
shutdown_grace = "3s"
`
	path := filepath.Join(tempDir, "csd.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	config, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 1024, config.Store.Capacity)
	assert.Equal(t, "127.0.0.1", config.Server.Bind)
	assert.Equal(t, 9999, config.Server.Port)
	assert.Equal(t, 3*time.Second, config.Server.ShutdownGrace)
	assert.Equal(t, "127.0.0.1:9999", config.Server.ListenAddr())
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig("/nonexistent/csd.toml")
	assert.Error(t, err)
}

func TestLoadConfigRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"zero capacity", "[store]\ncapacity = 0\n"},
		{"bad port", "[server]\nport = 123456\n"},
		{"negative grace", "[server]\nshutdown_grace = \"-1s\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "csd.toml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			_, err := LoadConfig(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("CSD_STORE_CAPACITY", "42")

	config, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, 42, config.Store.Capacity)
}
