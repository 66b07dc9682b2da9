package config

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	appDirName   = ".notelsm"
	configEnvVar = "NOTELSM_CONFIG"
)

// DataDir returns the base data directory for notelsm.
func DataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, appDirName), nil
}

// ConfigPath returns the config file path, honouring NOTELSM_CONFIG.
func ConfigPath() (string, error) {
	if override := strings.TrimSpace(os.Getenv(configEnvVar)); override != "" {
		return resolveConfigPath(override)
	}
	dataDir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, "config.toml"), nil
}
