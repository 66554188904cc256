package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/devfinder/internal/config"
	"github.com/alexisbeaulieu97/devfinder/internal/gitremote"
	"github.com/alexisbeaulieu97/devfinder/internal/github"
	"github.com/alexisbeaulieu97/devfinder/internal/logger"
	"github.com/alexisbeaulieu97/devfinder/internal/lookup"
	"github.com/alexisbeaulieu97/devfinder/internal/prefs"
	"github.com/alexisbeaulieu97/devfinder/internal/theme"
)

// AppContext bundles long-lived services created at startup.
type AppContext struct {
	Config  *config.Config
	Logger  *logger.Logger
	Themes  *theme.Store
	Prefs   *prefs.Store
	Fetcher *github.Client
	Policy  lookup.CommitPolicy
	Seed    string

	closers []io.Closer
}

// newAppContext loads configuration and applies the persistent flags on top
// of it. Interactive commands keep log output off the terminal unless a log
// file is configured.
func newAppContext(cmd *cobra.Command, flags *rootFlags, interactive bool) (*AppContext, error) {
	cfgPath := flags.configPath
	explicit := cfgPath != ""
	if !explicit {
		if p, err := config.DefaultPath(); err == nil {
			cfgPath = p
		}
	}

	cfg, err := config.Load(cfgPath, explicit)
	if err != nil {
		return nil, newCommandError("load configuration", cfgPath, err, "Fix the configuration file or pass --config with a valid path.")
	}

	themeOverride := false
	if flags.theme != "" {
		t, err := theme.ParseTheme(flags.theme)
		if err != nil {
			return nil, newCommandError("apply theme", flags.theme, err, "Use --theme light or --theme dark.")
		}
		cfg.Theme.Default = t.String()
		themeOverride = true
	}
	if flags.verbose {
		cfg.Log.Level = "debug"
	}

	app := &AppContext{Config: cfg}

	log, err := app.openLogger(cmd, interactive)
	if err != nil {
		app.Close()
		return nil, err
	}
	app.Logger = log.WithCorrelationID(logger.NewCorrelationID()).WithFields(map[string]any{"command": cmd.Name()})

	app.Seed = cfg.Lookup.Seed
	if flags.fromRepo != "" {
		owner, err := gitremote.OwnerFromRepo(flags.fromRepo, gitremote.DefaultRemote)
		if err != nil {
			app.Close()
			return nil, newCommandError("read repository owner", flags.fromRepo, err, "Pass a repository whose origin remote points at github.com.")
		}
		app.Seed = owner
		app.Logger.WithFields(map[string]any{"repo": flags.fromRepo, "seed": owner}).Debug("seed taken from repository")
	}

	app.Policy, err = lookup.ParseCommitPolicy(cfg.Lookup.CommitPolicy)
	if err != nil {
		app.Close()
		return nil, err
	}

	initial, err := theme.ParseTheme(cfg.Theme.Default)
	if err != nil {
		app.Close()
		return nil, err
	}
	if cfg.Theme.Persist {
		app.Prefs = app.openPrefs()
		if app.Prefs != nil && !themeOverride {
			if saved, ok := app.Prefs.Theme(); ok {
				initial = saved
			}
		}
	}
	app.Themes = theme.NewStore(initial)

	app.Fetcher = github.NewClient(github.Config{
		BaseURL: cfg.API.BaseURL,
		Timeout: cfg.API.Timeout,
	}, nil)

	return app, nil
}

func (a *AppContext) openLogger(cmd *cobra.Command, interactive bool) (*logger.Logger, error) {
	cfg := a.Config.Log

	var writer io.Writer
	switch {
	case cfg.File != "":
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		a.closers = append(a.closers, f)
		writer = f
	case interactive:
		return logger.Discard(), nil
	default:
		writer = cmd.ErrOrStderr()
	}

	log, err := logger.New(logger.Options{Level: cfg.Level, HumanReadable: cfg.Human, Writer: writer})
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return log, nil
}

// openPrefs returns nil when the preferences file cannot be used; the theme
// then lives for the session only.
func (a *AppContext) openPrefs() *prefs.Store {
	path, err := prefs.DefaultPath()
	if err != nil {
		a.Logger.Warn("preferences path unavailable; theme will not persist")
		return nil
	}
	store, err := prefs.Open(path)
	if err != nil {
		a.Logger.Error(err, "preferences file unreadable; theme will not persist")
		return nil
	}
	return store
}

// NewController creates a lookup controller bound to the GitHub client.
func (a *AppContext) NewController() *lookup.Controller {
	return lookup.NewController(a.Fetcher, lookup.Options{Policy: a.Policy, Logger: a.Logger})
}

// Close releases files opened for the command.
func (a *AppContext) Close() {
	for _, c := range a.closers {
		_ = c.Close()
	}
	a.closers = nil
}
