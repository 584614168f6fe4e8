package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/overlaygo/internal/config"
	"github.com/vk/overlaygo/internal/ctxlog"
	"github.com/vk/overlaygo/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	base   *registry.Registry
	rules  *config.RuleStore
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger, the base registry
// and overlay rules already loaded. Logs go to logW; the augmented registry
// document goes to outW unless an output path is configured.
func NewApp(outW, logW io.Writer, appConfig *Config, loader config.Loader) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	base, err := registry.Load(appConfig.RegistryPath)
	if err != nil {
		// A failure to load the base registry is a fatal startup error.
		panic(fmt.Errorf("failed to load base registry: %w", err))
	}
	logger.Debug("Base registry loaded.", "components", len(base.Components))

	rules, err := loader.Load(ctx, appConfig.OverlayPath)
	if err != nil {
		// Bad overlay declarations (unparseable files, unknown kinds,
		// duplicate targets) are contract violations, not runtime errors.
		panic(fmt.Errorf("failed to load overlay rules: %w", err))
	}
	logger.Debug("Overlay rules loaded.", "rules", rules.Len())

	return &App{
		outW:   outW,
		logger: logger,
		config: appConfig,
		base:   base,
		rules:  rules,
	}
}

// Base returns the loaded base registry. This is primarily for testing.
func (a *App) Base() *registry.Registry {
	return a.base
}

// Rules returns the loaded rule store. This is primarily for testing.
func (a *App) Rules() *config.RuleStore {
	return a.rules
}
