package app

import (
	"context"
	"fmt"
	"os"

	"github.com/vk/overlaygo/internal/ctxlog"
	"github.com/vk/overlaygo/internal/merge"
)

// Run executes the main application logic: merge the loaded overlay rules
// into the base registry and emit the augmented registry document.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	augmented, err := merge.Merge(ctx, a.base, a.rules)
	if err != nil {
		return err
	}

	for _, kind := range a.rules.Kinds() {
		a.logger.Info("Applied overrides.", "kind", string(kind), "targets", len(a.rules.Targets(kind)))
	}

	if a.config.CheckOnly {
		a.logger.Info("Check passed, no output written.", "components", len(augmented.Components))
		return nil
	}

	out := a.outW
	if a.config.OutPath != "" {
		f, err := os.Create(a.config.OutPath)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	if err := augmented.Encode(out); err != nil {
		return fmt.Errorf("failed to write augmented registry: %w", err)
	}

	a.logger.Info("Augmented registry written.",
		"components", len(augmented.Components), "destination", destination(a.config.OutPath))
	a.logger.Debug("App.Run method finished.")
	return nil
}

func destination(outPath string) string {
	if outPath == "" {
		return "stdout"
	}
	return outPath
}
