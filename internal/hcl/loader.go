package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/vk/overlaygo/internal/config"
	"github.com/vk/overlaygo/internal/ctxlog"
	"github.com/vk/overlaygo/internal/fsutil"
	"github.com/vk/overlaygo/internal/schema"
)

// Loader reads override declarations from .hcl overlay files.
type Loader struct{}

// NewLoader creates a new HCL overlay loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses every .hcl file under the given paths and translates the
// discovered override blocks into a rule store. A duplicate (kind, target)
// pair anywhere across the loaded files is rejected, as is an unrecognized
// attribute kind label.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.RuleStore, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL overlay loader started.", "path_count", len(paths))

	var files []string
	for _, path := range paths {
		found, err := fsutil.FindFilesByExtension(path, ".hcl")
		if err != nil {
			return nil, fmt.Errorf("failed to discover overlay files under %s: %w", path, err)
		}
		files = append(files, found...)
	}
	logger.Debug("Discovered overlay files.", "count", len(files))

	parser := hclparse.NewParser()
	var rules []config.Rule

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse overlay file %s: %w", file, diags)
		}

		var root schema.OverlayConfig
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode overlay file %s: %w", file, diags)
		}

		for _, block := range root.Overrides {
			rule, err := l.translateOverride(block)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", block.Append.Range(), err)
			}
			rules = append(rules, rule)
		}
		logger.Debug("Loaded overlay file.", "file", file, "overrides", len(root.Overrides))
	}

	store, err := config.NewRuleStore(rules)
	if err != nil {
		return nil, err
	}
	logger.Info("Overlay rules loaded.", "rules", store.Len())
	return store, nil
}

// translateOverride converts one HCL override block into the agnostic rule
// tuple, evaluating the append expression down to a list of plain names.
func (l *Loader) translateOverride(block *schema.Override) (config.Rule, error) {
	kind, err := config.ParseKind(block.Kind)
	if err != nil {
		return config.Rule{}, fmt.Errorf("override %q %q: %w", block.Kind, block.Target, err)
	}

	val, diags := block.Append.Value(nil)
	if diags.HasErrors() {
		return config.Rule{}, fmt.Errorf("override %q %q: failed to evaluate append: %w", block.Kind, block.Target, diags)
	}

	listVal, err := convert.Convert(val, cty.List(cty.String))
	if err != nil {
		return config.Rule{}, fmt.Errorf("override %q %q: append must be a list of strings: %w", block.Kind, block.Target, err)
	}

	var refs []string
	if !listVal.IsNull() {
		for it := listVal.ElementIterator(); it.Next(); {
			_, elem := it.Element()
			refs = append(refs, elem.AsString())
		}
	}

	return config.Rule{Kind: kind, Target: block.Target, Append: refs}, nil
}
