package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/sandeepkv93/done/internal/model"
)

// RuntimeConfig is the per-process configuration taken from flags and the
// environment. It is never persisted.
type RuntimeConfig struct {
	Backend   model.Provider
	DBPath    string
	ConfigDir string
	Terminal  string
	LogLevel  slog.Level
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		Backend:   model.ProviderComputer,
		DBPath:    filepath.Join(DefaultStateDir(), "done.db"),
		ConfigDir: DefaultConfigDir(),
		LogLevel:  slog.LevelInfo,
	}
}

func RuntimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v, ok := getEnvString("DONE_BACKEND"); ok {
		if p := model.Provider(strings.ToLower(v)); p.IsValid() {
			cfg.Backend = p
		}
	}
	if v, ok := getEnvString("DONE_DB_PATH"); ok {
		cfg.DBPath = v
	}
	if v, ok := getEnvString("DONE_CONFIG_DIR"); ok {
		cfg.ConfigDir = v
	}
	if v, ok := getEnvString("DONE_TERMINAL"); ok {
		cfg.Terminal = v
	}
	if v, ok := getEnvString("DONE_LOG_LEVEL"); ok {
		if level, ok := ParseLogLevel(v); ok {
			cfg.LogLevel = level
		}
	}
	return cfg
}

// ParseLogLevel accepts debug, info, warn and error.
func ParseLogLevel(raw string) (slog.Level, bool) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(raw))); err != nil {
		return slog.LevelInfo, false
	}
	return level, true
}

func getEnvString(name string) (string, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return "", false
	}
	return raw, true
}
