// Package where resolves the filesystem locations huepick reads and writes.
package where

import (
	"os"
	"path/filepath"

	"github.com/huepick/huepick/constant"
	"github.com/huepick/huepick/filesystem"
	"github.com/samber/lo"
)

// EnvConfigPath is the environment variable identifier used to override the default configuration directory.
const EnvConfigPath = "HUEPICK_CONFIG_PATH"

func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config resolves the configuration directory: $HUEPICK_CONFIG_PATH if set,
// otherwise <user config dir>/huepick.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return ensureDir(filepath.Join(base, constant.Huepick))
}

// Logs resolves the directory holding daily log files.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}

// Preferences resolves the file backing the file preference store.
// The store creates it on first access.
func Preferences() string {
	return filepath.Join(Config(), "preferences.json")
}

// ConfigFile resolves the toml file viper reads and writes.
func ConfigFile() string {
	return filepath.Join(Config(), constant.Huepick+".toml")
}
