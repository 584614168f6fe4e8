// Package app wires the application together: it owns configuration,
// logging, loading of the base registry and overlay rules, the merge
// itself, and emission of the augmented registry document.
package app
