package schema

import "github.com/hashicorp/hcl/v2"

// Override represents an `override` block from a user's overlay file. The
// two labels name the attribute kind being extended and the target
// component; the append attribute lists the dependency references to add.
type Override struct {
	Kind   string         `hcl:"kind,label"`
	Target string         `hcl:"target,label"`
	Append hcl.Expression `hcl:"append"`
}

// OverlayConfig represents the top-level structure of an overlay file,
// containing all declared override blocks.
type OverlayConfig struct {
	Overrides []*Override `hcl:"override,block"`
	Body      hcl.Body    `hcl:",remain"`
}
