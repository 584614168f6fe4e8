// Package config defines the format-agnostic model for override rules,
// along with the Loader interface for reading them from various sources.
//
// The `config.RuleStore` is the single source of truth for the `merge`
// package. Concrete implementations of the Loader interface, such as for
// HCL, are provided in separate packages.
package config
