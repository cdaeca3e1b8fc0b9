// Package where implements a cross-platform resolver for application-specific filesystem paths.
package where

import (
	"os"
	"path/filepath"

	"github.com/anisan-cli/eprange/constant"
	"github.com/anisan-cli/eprange/filesystem"
	"github.com/samber/lo"
)

// EnvConfigPath is the environment variable identifier used to override the default configuration directory.
const EnvConfigPath = "EPRANGE_CONFIG_PATH"

func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config resolves the absolute path to the primary application configuration directory.
// Direct override: EPRANGE_CONFIG_PATH takes precedence over the platform config directory.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return ensureDir(filepath.Join(base, constant.Eprange))
}

// Logs resolves the directory used for diagnostic logs.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}

// Catalogs resolves the directory searched for catalog files given by bare name.
func Catalogs() string {
	return ensureDir(filepath.Join(Config(), "catalogs"))
}

// Temp resolves a volatile path for transient artifacts.
func Temp() string {
	return ensureDir(filepath.Join(os.TempDir(), constant.Eprange))
}
