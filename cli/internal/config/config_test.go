package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/require"
)

func TestSaveConfigWritesUserConfigFile(t *testing.T) {
	homedir.DisableCache = true
	t.Cleanup(func() { homedir.DisableCache = false })
	t.Setenv("HOME", t.TempDir())

	require.NoError(t, SaveConfig(&Config{FixturePath: "custom.yaml", Debug: true}))

	home, err := homedir.Dir()
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(home, ".config", "mock-supabase", ".mock-supabase.yaml"))
	require.NoError(t, err)
	require.Contains(t, string(data), "custom.yaml")
	require.Contains(t, string(data), "debug: true")
}
