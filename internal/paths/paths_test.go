package paths

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveConfigDirPrecedence(t *testing.T) {
	t.Run("flag wins over env", func(t *testing.T) {
		t.Setenv(EnvConfigDir, "/env/config")
		dir, err := ResolveConfigDir("/flag/config")
		require.NoError(t, err)
		assert.Equal(t, "/flag/config", dir)
	})

	t.Run("env wins over default", func(t *testing.T) {
		t.Setenv(EnvConfigDir, "/env/config")
		dir, err := ResolveConfigDir("")
		require.NoError(t, err)
		assert.Equal(t, "/env/config", dir)
	})

	t.Run("relative flag is made absolute", func(t *testing.T) {
		dir, err := ResolveConfigDir("relative/config")
		require.NoError(t, err)
		assert.True(t, filepath.IsAbs(dir))
	})
}

func TestDefaultConfigDirLinux(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("linux-specific layout")
	}

	t.Run("XDG_CONFIG_HOME wins", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "/xdg")
		dir, err := DefaultConfigDir()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join("/xdg", "pokedex"), dir)
	})

	t.Run("falls back to ~/.config", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "")
		orig := platformDir.homeDir
		platformDir.homeDir = func() (string, error) { return "/home/tester", nil }
		defer func() { platformDir.homeDir = orig }()

		dir, err := DefaultConfigDir()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join("/home/tester", ".config", "pokedex"), dir)
	})
}

func TestResolveDataDirPrecedence(t *testing.T) {
	t.Run("flag wins", func(t *testing.T) {
		t.Setenv(EnvDataDir, "/env/data")
		dir, err := ResolveDataDir("/flag/data", "/config/data")
		require.NoError(t, err)
		assert.Equal(t, "/flag/data", dir)
	})

	t.Run("config value wins over env", func(t *testing.T) {
		t.Setenv(EnvDataDir, "/env/data")
		dir, err := ResolveDataDir("", "/config/data")
		require.NoError(t, err)
		assert.Equal(t, "/config/data", dir)
	})

	t.Run("env wins over default", func(t *testing.T) {
		t.Setenv(EnvDataDir, "/env/data")
		dir, err := ResolveDataDir("", "")
		require.NoError(t, err)
		assert.Equal(t, "/env/data", dir)
	})

	t.Run("defaults to CWD-relative directory", func(t *testing.T) {
		t.Setenv(EnvDataDir, "")
		dir, err := ResolveDataDir("", "")
		require.NoError(t, err)
		assert.Equal(t, DefaultDataDirName, filepath.Base(dir))
		assert.True(t, filepath.IsAbs(dir))
	})
}
