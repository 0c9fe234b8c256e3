// Package config manages user-level settings stored at ~/.stencil/config.yaml.
// It provides functions to load, read, and write configuration keys, including
// the defaults.* keys that seed the interactive questions of `stencil new`.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/viper"

	"github.com/techsavvyash/stencil-cli/internal/branding"
	"github.com/techsavvyash/stencil-cli/internal/userdata"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Keys that seed interactive question defaults. Config never answers a
// question outright; only explicit flags do that.
const (
	KeyDefaultPackageManager = "defaults.package_manager"
	KeyDefaultPrisma         = "defaults.prisma"
	KeyDefaultUserService    = "defaults.user_service"
	KeySkipUpdateCheck       = "update_check.disabled"
)

// Dir returns the path to the stencil config directory (~/.stencil/).
func Dir() string {
	root, err := userdata.HomeRoot()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return root
}

// FilePath returns the full path to the config file (~/.stencil/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, userdata.DirPermNormal); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// GetBool returns a boolean config value and whether the key was set at all.
// String forms accepted by strconv.ParseBool count as set; anything else
// reports unset so callers can fall through to their own defaults.
func GetBool(key string) (value, ok bool) {
	if !viper.IsSet(key) {
		return false, false
	}
	v, err := strconv.ParseBool(viper.GetString(key))
	if err != nil {
		return false, false
	}
	return v, true
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// All returns every configured key and its string value, with nested keys
// flattened to dotted form.
func All() map[string]string {
	settings := make(map[string]string)
	for _, key := range viper.AllKeys() {
		settings[key] = viper.GetString(key)
	}
	return settings
}
