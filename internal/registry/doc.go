// Package registry models the component build registry: the mapping from
// component name to the build spec an external executor needs to build and
// install that component.
//
// The base registry is produced by an external package-ecosystem resolver
// and read here from its YAML output. This package only models and carries
// the data; it never resolves versions, fetches sources, or builds anything.
// The merge package produces an augmented registry of the same shape, which
// is written back as YAML for the build executor to consume.
package registry
