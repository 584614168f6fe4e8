package registry

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Decode reads a registry document from r.
func Decode(r io.Reader) (*Registry, error) {
	var reg Registry
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&reg); err != nil {
		return nil, fmt.Errorf("failed to decode registry document: %w", err)
	}
	if reg.Components == nil {
		reg.Components = make(map[string]*Spec)
	}
	return &reg, nil
}

// Load reads a registry document from the named file.
func Load(path string) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open registry file: %w", err)
	}
	defer f.Close()

	reg, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("registry file %s: %w", path, err)
	}
	return reg, nil
}

// Encode writes the registry document to w. Map keys are emitted sorted by
// the YAML encoder, so output is stable across runs.
func (r *Registry) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("failed to encode registry document: %w", err)
	}
	return enc.Close()
}
