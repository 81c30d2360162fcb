package config

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Version is the schema version written alongside the persisted config.
const Version = 1

const (
	keyAppTheme = "app_theme"
	keyVersion  = "version"
)

var (
	ErrNoHandle        = errors.New("config: no persistence handle")
	ErrInvalidAppTheme = errors.New("config: invalid app theme")
)

type AppTheme string

const (
	AppThemeSystem AppTheme = "system"
	AppThemeDark   AppTheme = "dark"
	AppThemeLight  AppTheme = "light"
)

func AppThemes() []AppTheme {
	return []AppTheme{AppThemeSystem, AppThemeDark, AppThemeLight}
}

func (t AppTheme) IsValid() bool {
	switch t {
	case AppThemeSystem, AppThemeDark, AppThemeLight:
		return true
	default:
		return false
	}
}

// Next cycles system -> dark -> light -> system.
func (t AppTheme) Next() AppTheme {
	themes := AppThemes()
	for i, candidate := range themes {
		if candidate == t {
			return themes[(i+1)%len(themes)]
		}
	}
	return AppThemeSystem
}

// Label is the user-facing name used by the settings panel.
func (t AppTheme) Label() string {
	switch t {
	case AppThemeDark:
		return "Dark"
	case AppThemeLight:
		return "Light"
	default:
		return "Match terminal"
	}
}

func ParseAppTheme(raw string) (AppTheme, error) {
	t := AppTheme(strings.ToLower(strings.TrimSpace(raw)))
	if !t.IsValid() {
		return AppThemeSystem, fmt.Errorf("%w: %q", ErrInvalidAppTheme, raw)
	}
	return t, nil
}

// Config is the persisted application config.
type Config struct {
	AppTheme AppTheme
	Version  int
}

func Default() Config {
	return Config{AppTheme: AppThemeSystem, Version: Version}
}

// SetAppTheme updates the in-memory value and persists it through h.
// The in-memory value is updated even when persisting fails.
func (c *Config) SetAppTheme(h *Handle, theme AppTheme) error {
	if !theme.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidAppTheme, theme)
	}
	c.AppTheme = theme
	if h == nil {
		return ErrNoHandle
	}
	return h.write(*c)
}

// Adopt takes over the values of a config loaded elsewhere, such as an
// external edit picked up by Watch. Nothing is written back.
func (c *Config) Adopt(other Config) {
	theme := other.AppTheme
	if !theme.IsValid() {
		theme = AppThemeSystem
	}
	c.AppTheme = theme
	c.Version = Version
}

// Handle persists Config to a YAML file through viper.
type Handle struct {
	path   string
	logger *slog.Logger

	mu   sync.Mutex
	v    *viper.Viper
	last Config
}

// Load opens the config file in dir, creating it with defaults when
// missing. A nil handle is returned when the directory cannot be created;
// the returned Config is usable in every case.
func Load(dir string, logger *slog.Logger) (*Handle, Config) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		logger.Error("create config dir", "dir", dir, "err", err)
		return nil, Default()
	}

	h := &Handle{
		path:   filepath.Join(dir, ConfigFile),
		logger: logger,
		v:      newViper(filepath.Join(dir, ConfigFile)),
	}

	cfg := Default()
	if _, err := os.Stat(h.path); errors.Is(err, os.ErrNotExist) {
		if err := h.write(cfg); err != nil {
			logger.Error("write default config", "path", h.path, "err", err)
		}
		return h, cfg
	}

	cfg, err := readConfig(h.v)
	if err != nil {
		logger.Info("config loaded with errors", "path", h.path, "err", err)
	}
	h.mu.Lock()
	h.last = cfg
	h.mu.Unlock()
	return h, cfg
}

func (h *Handle) Path() string {
	return h.path
}

func (h *Handle) write(cfg Config) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.v.Set(keyAppTheme, string(cfg.AppTheme))
	h.v.Set(keyVersion, Version)
	if err := h.v.WriteConfigAs(h.path); err != nil {
		return fmt.Errorf("write config %s: %w", h.path, err)
	}
	h.last = cfg
	h.last.Version = Version
	return nil
}

// Watch delivers the config every time the file changes on disk to a
// value different from the last one seen. Writes made through the handle
// are not echoed back. The channel is closed when ctx is done.
func (h *Handle) Watch(ctx context.Context) <-chan Config {
	out := make(chan Config, 1)

	var (
		mu     sync.Mutex
		closed bool
	)
	go func() {
		<-ctx.Done()
		mu.Lock()
		closed = true
		close(out)
		mu.Unlock()
	}()

	watcher := newViper(h.path)
	watcher.OnConfigChange(func(event fsnotify.Event) {
		// Truncation is reported before the new content lands.
		if info, err := os.Stat(h.path); err == nil && info.Size() == 0 {
			return
		}
		cfg, err := readConfig(watcher)
		if err != nil {
			h.logger.Info("config changed with errors", "path", event.Name, "err", err)
		}

		h.mu.Lock()
		if cfg == h.last {
			h.mu.Unlock()
			return
		}
		h.last = cfg
		h.mu.Unlock()

		mu.Lock()
		defer mu.Unlock()
		if closed {
			return
		}
		// Keep only the newest value.
		select {
		case <-out:
		default:
		}
		out <- cfg
	})
	watcher.WatchConfig()
	return out
}

func newViper(path string) *viper.Viper {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetDefault(keyAppTheme, string(AppThemeSystem))
	v.SetDefault(keyVersion, Version)
	return v
}

// readConfig re-reads the file. Unknown themes fall back to system and are
// reported alongside the usable config.
func readConfig(v *viper.Viper) (Config, error) {
	cfg := Default()
	if err := v.ReadInConfig(); err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	theme, err := ParseAppTheme(v.GetString(keyAppTheme))
	cfg.AppTheme = theme
	cfg.Version = v.GetInt(keyVersion)
	return cfg, err
}
