package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/mesh-intelligence/agility/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	cfgKeyManifest  = "manifest"
	cfgKeyLogLevel  = "log_level"
	cfgKeyLogFormat = "log_format"

	defaultLogLevel  = types.LogLevelWarn
	defaultLogFormat = types.LogFormatText
)

// defaultConfigYAML is the content written to config.yaml on first run.
const defaultConfigYAML = `# agility CLI configuration

# Type manifest; relative paths are resolved against this directory.
manifest: types.yaml

# Logging: debug, info, warn or error; text or json.
log_level: warn
log_format: text
`

// loadConfig reads config.yaml from the config directory using Viper.
// It creates the config directory and a default config.yaml on first run.
// A missing config.yaml is not an error.
func loadConfig(configDir string) (types.Config, error) {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return types.Config{}, withCode(exitSysError, fmt.Errorf("ensure config dir: %w", err))
	}
	if err := ensureDefaultConfigFile(configDir); err != nil {
		return types.Config{}, withCode(exitSysError, fmt.Errorf("ensure default config: %w", err))
	}

	v := viper.New()
	v.SetDefault(cfgKeyLogLevel, defaultLogLevel)
	v.SetDefault(cfgKeyLogFormat, defaultLogFormat)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return types.Config{}, withCode(exitUserError, fmt.Errorf("read config: %w", err))
		}
	}

	cfg := types.Config{
		Manifest:  v.GetString(cfgKeyManifest),
		LogLevel:  v.GetString(cfgKeyLogLevel),
		LogFormat: v.GetString(cfgKeyLogFormat),
	}
	if err := cfg.Validate(); err != nil {
		return types.Config{}, fmt.Errorf("config %s: %w", filepath.Join(configDir, configFileExt), err)
	}
	return cfg, nil
}

// ensureDefaultConfigFile creates a default config.yaml if the file does not
// exist in the config directory.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
