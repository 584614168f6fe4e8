package merge

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/vk/overlaygo/internal/config"
	"github.com/vk/overlaygo/internal/registry"
)

var (
	nameGen = rapid.StringMatching(`[a-z][a-z0-9-]{0,11}`)
	depsGen = rapid.SliceOfN(rapid.StringMatching(`[a-z][a-z0-9]{0,7}`), 0, 5)
)

func drawRegistry(rt *rapid.T) *registry.Registry {
	components := rapid.MapOfN(nameGen, rapid.Custom(func(rt *rapid.T) *registry.Spec {
		return &registry.Spec{
			Version:    rapid.StringMatching(`[0-9]\.[0-9]{1,2}\.[0-9]`).Draw(rt, "version"),
			BuildDeps:  depsGen.Draw(rt, "buildDeps"),
			NativeDeps: depsGen.Draw(rt, "nativeDeps"),
		}
	}), 1, 8).Draw(rt, "components")
	return &registry.Registry{Components: components}
}

func drawRules(rt *rapid.T, base *registry.Registry) *config.RuleStore {
	names := base.Names()
	var rules []config.Rule
	for _, kind := range config.Kinds() {
		targets := rapid.SliceOfNDistinct(rapid.SampledFrom(names), 0, len(names), rapid.ID).Draw(rt, "targets_"+string(kind))
		for _, target := range targets {
			rules = append(rules, config.Rule{
				Kind:   kind,
				Target: target,
				Append: depsGen.Draw(rt, "append"),
			})
		}
	}
	store, err := config.NewRuleStore(rules)
	require.NoError(rt, err)
	return store
}

// TestProperty_MergePreservesComponentSet checks that a merge never adds or
// removes components, for any combination of base registry and valid rules.
func TestProperty_MergePreservesComponentSet(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		base := drawRegistry(rt)
		rules := drawRules(rt, base)

		augmented, err := Merge(context.Background(), base, rules)
		require.NoError(rt, err)
		require.Equal(rt, base.Names(), augmented.Names())
	})
}

// TestProperty_EveryListIsAppendOnlyExtension checks that for every component
// and every kind, the merged list is exactly the original list followed by
// the override's references, in order.
func TestProperty_EveryListIsAppendOnlyExtension(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		base := drawRegistry(rt)
		rules := drawRules(rt, base)

		augmented, err := Merge(context.Background(), base, rules)
		require.NoError(rt, err)

		// Rebuild slices through the same copy so nil and empty compare equal.
		canon := func(s []string) []string { return append([]string(nil), s...) }

		for _, name := range base.Names() {
			before := base.Components[name]
			after := augmented.Components[name]

			wantBuild := append(canon(before.BuildDeps), rules.Deps(config.KindBuildDeps, name)...)
			wantNative := append(canon(before.NativeDeps), rules.Deps(config.KindNativeDeps, name)...)
			require.Equal(rt, wantBuild, canon(after.BuildDeps), "build deps of %s", name)
			require.Equal(rt, wantNative, canon(after.NativeDeps), "native deps of %s", name)
			require.Equal(rt, before.Version, after.Version, "version of %s", name)
		}
	})
}

// TestProperty_MergeIsDeterministic checks that identical inputs always
// produce an identical augmented registry.
func TestProperty_MergeIsDeterministic(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		base := drawRegistry(rt)
		rules := drawRules(rt, base)

		first, err := Merge(context.Background(), base, rules)
		require.NoError(rt, err)
		second, err := Merge(context.Background(), base, rules)
		require.NoError(rt, err)

		require.Equal(rt, first, second)
	})
}
