// Package config holds the persisted application config, the runtime
// settings read from the environment, and the XDG paths both live under.
package config

import (
	"os"
	"path/filepath"
)

const (
	// AppName is the application directory name.
	AppName = "done"

	// ConfigFile is the persisted AppConfig filename.
	ConfigFile = "config.yaml"

	// OAuthClientFile is the OAuth client credentials filename.
	OAuthClientFile = "oauth_client.json"

	// TokenFile is the stored OAuth token filename.
	TokenFile = "token.json"
)

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	return xdgDir("XDG_CONFIG_HOME", ".config")
}

// DefaultStateDir returns the directory for the database and log file.
// Uses XDG_STATE_HOME if set, otherwise $HOME/.local/state.
func DefaultStateDir() string {
	return xdgDir("XDG_STATE_HOME", filepath.Join(".local", "state"))
}

func xdgDir(env, fallback string) string {
	if xdg := os.Getenv(env); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return AppName
	}
	return filepath.Join(home, fallback, AppName)
}

// OAuthClientPath returns the path to the OAuth client credentials file.
func OAuthClientPath(dir string) string {
	return filepath.Join(dir, OAuthClientFile)
}

// TokenPath returns the path to the stored OAuth token file.
func TokenPath(dir string) string {
	return filepath.Join(dir, TokenFile)
}
