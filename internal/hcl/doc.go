// Package hcl is the HCL-specific implementation of the config.Loader
// interface. It discovers overlay files, decodes their `override` blocks
// against the schema package, and translates them into the format-agnostic
// rule store consumed by the merge package.
package hcl
