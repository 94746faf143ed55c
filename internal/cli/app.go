// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/jeranaias/termfolio/internal/catalog"
	"github.com/jeranaias/termfolio/internal/commands"
	"github.com/jeranaias/termfolio/internal/config"
	"github.com/jeranaias/termfolio/internal/logging"
	"github.com/jeranaias/termfolio/internal/ui/components"
	"github.com/jeranaias/termfolio/internal/ui/styles"
)

// App is the loaded runtime shared by every mode: configuration, logger
// and content catalog.
type App struct {
	Config  *config.Config
	Catalog *catalog.Catalog
	Logger  *slog.Logger

	logCloser io.Closer
}

// LoadConfig loads the config file named by args (or the default one) and
// applies the global flags over it. Flags win over the environment, which
// wins over the file.
func LoadConfig(args Args) (*config.Config, error) {
	cfg, err := config.Load(args.ConfigPath)
	if err != nil {
		return nil, err
	}
	args.ApplyTo(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid flags: %w", err)
	}
	if err := cfg.ValidateQuickCommands(commands.NewRegistry().Names()); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	config.SetGlobal(cfg)
	return cfg, nil
}

// Setup loads the config, opens the log and loads the catalog.
func Setup(args Args) (*App, error) {
	cfg, err := LoadConfig(args)
	if err != nil {
		return nil, err
	}

	logger, closer, err := logging.New(logging.Options{File: cfg.Log.File, Level: cfg.Log.Level})
	if err != nil {
		return nil, err
	}

	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		closer.Close()
		return nil, err
	}

	source := cfg.Catalog.Path
	if source == "" {
		source = "embedded"
	}
	logger.Info("termfolio starting", "version", Version, "catalog", source, "theme", cfg.UI.Theme, "prompt", cfg.PromptString())

	return &App{Config: cfg, Catalog: cat, Logger: logger, logCloser: closer}, nil
}

// NewInterpreter starts a session over the app's catalog.
func (a *App) NewInterpreter(opts ...commands.Option) *commands.Interpreter {
	base := []commands.Option{
		commands.WithLogger(a.Logger),
		commands.WithHome(a.Config.HomePath()),
	}
	return commands.New(a.Catalog, append(base, opts...)...)
}

// Theme returns the display theme selected by ui.theme.
func (a *App) Theme() *styles.Theme {
	mode, err := styles.ParseMode(a.Config.UI.Theme)
	if err != nil {
		mode = styles.ModeAuto
	}
	return styles.NewTheme(mode)
}

// Prompt returns the shell identity shown before each command.
func (a *App) Prompt() components.Prompt {
	return components.Prompt{User: a.Config.Prompt.User, Host: a.Config.Prompt.Host}
}

// Close flushes and closes the log file.
func (a *App) Close() error {
	if a.logCloser == nil {
		return nil
	}
	return a.logCloser.Close()
}
