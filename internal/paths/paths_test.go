package paths

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigDir_Linux(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("linux-only test")
	}

	t.Run("uses XDG_CONFIG_HOME when set", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-config")
		got, err := DefaultConfigDir()
		require.NoError(t, err)
		assert.Equal(t, "/tmp/xdg-config/agility", got)
	})

	t.Run("falls back to ~/.config when XDG unset", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "")
		home, err := os.UserHomeDir()
		require.NoError(t, err)

		got, err := DefaultConfigDir()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, ".config", "agility"), got)
	})

	t.Run("propagates home dir errors", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "")
		orig := platformDir.homeDir
		t.Cleanup(func() { platformDir.homeDir = orig })
		platformDir.homeDir = func() (string, error) { return "", errors.New("no home") }

		_, err := DefaultConfigDir()
		assert.Error(t, err)
	})
}

func TestDefaultConfigDir_Darwin(t *testing.T) {
	if runtime.GOOS != "darwin" {
		t.Skip("darwin-only test")
	}

	got, err := DefaultConfigDir()
	require.NoError(t, err)

	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "Library", "Application Support", "agility"), got)
}

func TestResolveConfigDir(t *testing.T) {
	tests := []struct {
		name    string
		flag    string
		envVal  string
		wantSub string // substring the result must contain
	}{
		{
			name:    "flag wins over env",
			flag:    "/explicit/config",
			envVal:  "/env/config",
			wantSub: "/explicit/config",
		},
		{
			name:    "env wins when flag empty",
			flag:    "",
			envVal:  "/env/config",
			wantSub: "/env/config",
		},
		{
			name:    "platform default when both empty",
			flag:    "",
			envVal:  "",
			wantSub: "agility",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvConfigDir, tt.envVal)
			got, err := ResolveConfigDir(tt.flag)
			require.NoError(t, err)
			assert.Contains(t, got, tt.wantSub)
		})
	}
}

func TestResolveConfigDir_AbsolutePath(t *testing.T) {
	t.Setenv(EnvConfigDir, "")
	got, err := ResolveConfigDir("relative/path")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(got), "expected absolute path, got %s", got)
}

func TestResolveManifest(t *testing.T) {
	tests := []struct {
		name        string
		flag        string
		envVal      string
		configValue string
		want        string
	}{
		{
			name:        "flag wins over all",
			flag:        "/flag/types.yaml",
			envVal:      "/env/types.yaml",
			configValue: "/config/types.yaml",
			want:        "/flag/types.yaml",
		},
		{
			name:        "env wins over config",
			envVal:      "/env/types.yaml",
			configValue: "/config/types.yaml",
			want:        "/env/types.yaml",
		},
		{
			name:        "absolute config value",
			configValue: "/config/types.yaml",
			want:        "/config/types.yaml",
		},
		{
			name:        "relative config value joins config dir",
			configValue: "defs/com.yaml",
			want:        "/cfg/defs/com.yaml",
		},
		{
			name: "default name in config dir",
			want: "/cfg/types.yaml",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvManifest, tt.envVal)
			got, err := ResolveManifest(tt.flag, tt.configValue, "/cfg")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
