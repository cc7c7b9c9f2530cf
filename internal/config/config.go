// Package config wraps viper access to the user-level tool configuration in
// ~/.frontforge/config.yaml, overlaid by FRONTFORGE_* environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/frontforge-labs/frontforge/internal/branding"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Recognized keys.
const (
	KeyPackageManager = "package_manager"
	KeyColor          = "color"
)

// Dir returns the path to the config directory (~/.frontforge/).
// FRONTFORGE_HOME overrides the location outright.
func Dir() string {
	if v := os.Getenv(branding.EnvVar("HOME")); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.frontforge/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	viper.SetDefault(KeyPackageManager, "npm")
	viper.SetDefault(KeyColor, true)

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// PackageManager returns the configured package manager binary.
func PackageManager() string {
	return viper.GetString(KeyPackageManager)
}

// ColorEnabled reports whether console output should be colorized.
func ColorEnabled() bool {
	return viper.GetBool(KeyColor)
}

// Get returns the current value for key, as a string.
func Get(key string) string {
	return viper.GetString(key)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}
	viper.Set(key, value)
	if err := viper.WriteConfigAs(FilePath()); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
