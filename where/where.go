// Package where resolves application directories and files on every supported platform.
package where

import (
	"os"
	"path/filepath"

	"github.com/cinerow/cinerow/constant"
	"github.com/cinerow/cinerow/filesystem"
	"github.com/samber/lo"
)

// Environment overrides for the resolved directories.
const (
	EnvConfigPath = "CINEROW_CONFIG_PATH"
	EnvCachePath  = "CINEROW_CACHE_PATH"
)

func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config returns the configuration directory.
// It follows os.UserConfigDir unless CINEROW_CONFIG_PATH is set.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return ensureDir(filepath.Join(base, constant.App))
}

// Cache returns the cache directory.
// It follows os.UserCacheDir unless CINEROW_CACHE_PATH is set.
func Cache() string {
	if custom, ok := os.LookupEnv(EnvCachePath); ok {
		return ensureDir(custom)
	}

	base, err := os.UserCacheDir()
	if err != nil {
		base = filepath.Join(".", "cache")
	}
	return ensureDir(filepath.Join(base, constant.App))
}

// Responses returns the directory holding cached TMDb responses.
func Responses() string {
	return ensureDir(filepath.Join(Cache(), "responses"))
}

// Channels returns the file holding resolved YouTube channel ids.
func Channels() string {
	return filepath.Join(Cache(), "channels.json")
}

// Logs returns the logs directory.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}

// Queries returns the file holding search query history.
func Queries() string {
	return filepath.Join(Cache(), "queries.json")
}

// Temp returns a scratch directory for player sockets.
func Temp() string {
	return ensureDir(filepath.Join(os.TempDir(), constant.App))
}
