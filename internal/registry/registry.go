package registry

import "sort"

// Source identifies where a component's source archive comes from.
type Source struct {
	URL    string `yaml:"url,omitempty"`
	SHA256 string `yaml:"sha256,omitempty"`
}

// Spec is the build specification for one named component. The merge pass
// only ever extends the two dependency lists; every other field is carried
// through verbatim.
type Spec struct {
	Version    string            `yaml:"version,omitempty"`
	Source     *Source           `yaml:"source,omitempty"`
	BuildDeps  []string          `yaml:"build_deps,omitempty"`
	NativeDeps []string          `yaml:"native_deps,omitempty"`
	Env        map[string]string `yaml:"env,omitempty"`
}

// Clone returns a deep copy of the spec. Extending a spec always happens on
// a copy so the base registry stays valid and reusable.
func (s *Spec) Clone() *Spec {
	out := &Spec{Version: s.Version}
	if s.Source != nil {
		src := *s.Source
		out.Source = &src
	}
	if s.BuildDeps != nil {
		out.BuildDeps = append([]string(nil), s.BuildDeps...)
	}
	if s.NativeDeps != nil {
		out.NativeDeps = append([]string(nil), s.NativeDeps...)
	}
	if s.Env != nil {
		out.Env = make(map[string]string, len(s.Env))
		for k, v := range s.Env {
			out.Env[k] = v
		}
	}
	return out
}

// Registry maps component names to their build specs. Resolver is a
// provenance stamp written by the external resolver that produced the
// document; it is passed through untouched.
type Registry struct {
	Resolver   string           `yaml:"resolver,omitempty"`
	Components map[string]*Spec `yaml:"components"`
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{Components: make(map[string]*Spec)}
}

// Names returns every component name in the registry, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.Components))
	for name := range r.Components {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the spec for the named component, if present.
func (r *Registry) Lookup(name string) (*Spec, bool) {
	spec, ok := r.Components[name]
	return spec, ok
}
