package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/sandeepkv93/done/internal/backend/googletasks"
	"github.com/sandeepkv93/done/internal/config"
	"github.com/sandeepkv93/done/internal/effect"
	"github.com/sandeepkv93/done/internal/model"
	"github.com/sandeepkv93/done/internal/service"
	"github.com/sandeepkv93/done/internal/storage"
	"github.com/sandeepkv93/done/internal/update"
)

// Set with -ldflags "-X main.version=... -X main.commit=... -X main.date=...".
var (
	version = ""
	commit  = ""
	date    = ""
)

func main() {
	if err := newRoot().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "done failed: %v\n", err)
		os.Exit(1)
	}
}

func newRoot() *cobra.Command {
	rc := config.RuntimeConfigFromEnv(config.DefaultRuntimeConfig())
	var (
		backend string
		logFile string
		debug   bool
	)

	root := &cobra.Command{
		Use:           "done",
		Short:         "Terminal to-do lists backed by SQLite or Google Tasks",
		Version:       versionString(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("backend") {
				p := model.Provider(strings.ToLower(backend))
				if !p.IsValid() {
					return fmt.Errorf("unknown backend %q (want computer or google)", backend)
				}
				rc.Backend = p
			}
			if debug {
				rc.LogLevel = slog.LevelDebug
			}
			return run(cmd.Context(), rc, logFile)
		},
	}
	flags := root.Flags()
	flags.StringVar(&backend, "backend", string(rc.Backend), "default backend for new lists: computer or google")
	flags.StringVar(&rc.DBPath, "db", rc.DBPath, "path to the SQLite database")
	flags.StringVar(&rc.ConfigDir, "config-dir", rc.ConfigDir, "directory holding config.yaml and Google credentials")
	flags.StringVar(&rc.Terminal, "terminal", rc.Terminal, "command that wraps new windows, e.g. \"foot -e\"")
	flags.StringVar(&logFile, "log-file", filepath.Join(config.DefaultStateDir(), "done.log"), "log file path")
	flags.BoolVar(&debug, "debug", false, "log at debug level")
	return root
}

func run(ctx context.Context, rc config.RuntimeConfig, logFile string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	logger, closeLog, err := openLogger(logFile, rc.LogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	handle, cfg := config.Load(rc.ConfigDir, logger)
	var changes <-chan config.Config
	if handle != nil {
		changes = handle.Watch(ctx)
	}

	repo, err := storage.OpenSQLite(rc.DBPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer repo.Close()

	router := service.NewRouter(model.ProviderComputer)
	router.Register(model.ProviderComputer, service.NewLocal(repo))
	if err := registerGoogle(ctx, router, rc, logger); err != nil {
		return err
	}

	runner := effect.NewRunner(router, logger)
	runner.Terminal = rc.Terminal
	runner.SystemDark = termenv.NewOutput(os.Stdout).HasDarkBackground()
	runner.Failed = func(op string, err error) tea.Msg {
		return update.BackendErrorMsg{Op: op, Err: err}
	}

	m := update.New(update.Options{
		Config:          cfg,
		ConfigHandle:    handle,
		ConfigChanges:   changes,
		Runner:          runner,
		Logger:          logger,
		DefaultProvider: rc.Backend,
		Build:           update.BuildInfo{Version: version, Commit: commit, Date: date},
	})

	logger.Info("starting", "version", versionString(), "backend", rc.Backend, "db", rc.DBPath)
	program := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return nil
}

// registerGoogle adds the Google Tasks backend when it was asked for or
// its credentials are present. Missing credentials are only fatal when
// google is the default backend.
func registerGoogle(ctx context.Context, router *service.Router, rc config.RuntimeConfig, logger *slog.Logger) error {
	clientPath := config.OAuthClientPath(rc.ConfigDir)
	tokenPath := config.TokenPath(rc.ConfigDir)
	if rc.Backend != model.ProviderGoogle && !exists(clientPath) {
		return nil
	}
	client, err := googletasks.New(ctx, clientPath, tokenPath)
	if err != nil {
		if rc.Backend == model.ProviderGoogle {
			return fmt.Errorf("google tasks: %w", err)
		}
		logger.Warn("google tasks disabled", "err", err)
		return nil
	}
	router.Register(model.ProviderGoogle, client)
	return nil
}

func openLogger(path string, level slog.Level) (*slog.Logger, func(), error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	return logger, func() { _ = f.Close() }, nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func versionString() string {
	v := version
	if v == "" {
		v = "dev"
	}
	if commit != "" {
		v += " (" + commit + ")"
	}
	return v
}
