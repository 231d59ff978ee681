package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// HomeEnv names the environment variable that relocates the consolidator
// home directory.
const HomeEnv = "CONSOLIDATOR_HOME"

// GetHome returns the consolidator home directory
// Priority order:
//  1. CONSOLIDATOR_HOME environment variable (if set)
//  2. .consolidator under the current working directory
//
// The directory is not created; callers that write into it do that.
func GetHome() (string, error) {
	if home := os.Getenv(HomeEnv); home != "" {
		return home, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	return filepath.Join(cwd, ".consolidator"), nil
}

// GetConfigPath returns $CONSOLIDATOR_HOME/config.yaml.
func GetConfigPath() (string, error) {
	home, err := GetHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "config.yaml"), nil
}

// GetLogDir returns the logs directory under the home directory, creating it.
func GetLogDir() (string, error) {
	home, err := GetHome()
	if err != nil {
		return "", err
	}

	logDir := filepath.Join(home, "logs")
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return "", fmt.Errorf("create log directory: %w", err)
	}
	return logDir, nil
}
