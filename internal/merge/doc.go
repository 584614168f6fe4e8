// Package merge implements the override composition algorithm: applying a
// rule store of targeted dependency overrides to a base registry to produce
// an augmented registry.
//
// Merge is a pure function over immutable inputs. Kinds are applied as
// successive passes over one working registry, so a component targeted by
// more than one attribute kind accumulates every extension on the same
// final spec. The base registry is never mutated, even when the merge
// fails.
package merge
