// Package paths resolves the configuration directory and the type manifest
// location for the agility CLI.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// Default names inside the configuration directory.
const (
	AppDirName          = "agility"
	DefaultManifestName = "types.yaml"
)

// Environment variable names for overrides.
const (
	EnvConfigDir = "AGILITY_CONFIG_DIR"
	EnvManifest  = "AGILITY_MANIFEST"
)

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultConfigDir returns the platform-specific default configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/agility (fallback ~/.config/agility)
// macOS:   ~/Library/Application Support/agility
// Windows: %APPDATA%/agility
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, AppDirName), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", AppDirName), nil
	default:
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, AppDirName), nil
	}
}

// ResolveConfigDir returns the configuration directory following the precedence
// chain: flag > AGILITY_CONFIG_DIR env > DefaultConfigDir().
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveManifest returns the manifest path following the precedence chain:
// flag > AGILITY_MANIFEST env > configValue > DefaultManifestName.
//
// Flag and env values are resolved against the working directory. The
// config.yaml value and the default are resolved against configDir.
func ResolveManifest(flag, configValue, configDir string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvManifest); env != "" {
		return filepath.Abs(env)
	}
	name := configValue
	if name == "" {
		name = DefaultManifestName
	}
	if filepath.IsAbs(name) {
		return name, nil
	}
	return filepath.Join(configDir, name), nil
}
