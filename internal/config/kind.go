package config

import "fmt"

// Kind identifies which dependency list of a component's build spec an
// override extends. Each kind maps to exactly one list, so passes for
// different kinds never touch the same field.
type Kind string

const (
	// KindBuildDeps extends a component's build-time dependency list.
	KindBuildDeps Kind = "build_deps"

	// KindNativeDeps extends a component's native toolchain dependency list.
	KindNativeDeps Kind = "native_deps"
)

// Kinds returns every recognized attribute kind in a stable order.
func Kinds() []Kind {
	return []Kind{KindBuildDeps, KindNativeDeps}
}

// ParseKind converts a string label from a configuration source into a Kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindBuildDeps, KindNativeDeps:
		return Kind(s), nil
	default:
		return "", fmt.Errorf("unknown attribute kind %q (expected one of %v)", s, Kinds())
	}
}
