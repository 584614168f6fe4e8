package merge

import (
	"context"
	"fmt"
	"strings"

	"github.com/vk/overlaygo/internal/config"
	"github.com/vk/overlaygo/internal/ctxlog"
	"github.com/vk/overlaygo/internal/registry"
)

// appliers maps each attribute kind to the one spec list it extends. Adding
// a new kind means adding one row here; the merge loop never changes.
var appliers = map[config.Kind]func(*registry.Spec, []string){
	config.KindBuildDeps: func(s *registry.Spec, refs []string) {
		s.BuildDeps = append(s.BuildDeps, refs...)
	},
	config.KindNativeDeps: func(s *registry.Spec, refs []string) {
		s.NativeDeps = append(s.NativeDeps, refs...)
	},
}

// Merge applies every override rule in the store to the base registry and
// returns the augmented registry. Targeted dependency lists are extended
// append-only, preserving existing order and without deduplication; if an
// override lists a reference the component already declares, it appears
// twice in the result. Components not named by any rule are shared with the
// base by reference.
//
// Overrides naming components absent from the base registry are collected
// across the whole merge and reported together in a single error, so a
// caller can fix every mistake in one pass. On error the returned registry
// is nil and the base registry is unchanged.
func Merge(ctx context.Context, base *registry.Registry, rules *config.RuleStore) (*registry.Registry, error) {
	logger := ctxlog.FromContext(ctx)

	working := make(map[string]*registry.Spec, len(base.Components))
	for name, spec := range base.Components {
		working[name] = spec
	}

	var errs []string
	touched := make(map[string]bool)

	// One pass per kind over the same working registry: a prior pass's
	// output is the next pass's input, so multi-kind targets compose.
	for _, kind := range rules.Kinds() {
		applier, ok := appliers[kind]
		if !ok {
			return nil, fmt.Errorf("no dependency list registered for attribute kind %q", kind)
		}

		for _, target := range rules.Targets(kind) {
			spec, ok := working[target]
			if !ok {
				errs = append(errs, fmt.Sprintf("override (%s) targets unknown component '%s'", kind, target))
				continue
			}

			extended := spec.Clone()
			applier(extended, rules.Deps(kind, target))
			working[target] = extended
			touched[target] = true

			logger.Debug("Extended component dependency list.",
				"component", target, "kind", string(kind), "added", len(rules.Deps(kind, target)))
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("override merge failed:\n- %s", strings.Join(errs, "\n- "))
	}

	logger.Debug("Override merge complete.", "components", len(working), "extended", len(touched))
	return &registry.Registry{Resolver: base.Resolver, Components: working}, nil
}
