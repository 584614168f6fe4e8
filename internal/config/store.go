package config

import (
	"fmt"
	"sort"
)

// Rule is a single override instruction: append the listed dependency
// references to the Target component's list identified by Kind. References
// are opaque names resolved by an external catalog; the store never
// interprets them.
type Rule struct {
	Kind   Kind
	Target string
	Append []string
}

// RuleStore holds the full set of override rules, keyed by attribute kind
// and, within a kind, by target component name. It is read-only after
// construction.
type RuleStore struct {
	rules map[Kind]map[string][]string
}

// NewRuleStore builds a RuleStore from a flat rule list. A duplicate
// (kind, target) pair is a contract violation in the caller's rule
// construction and fails immediately rather than being merged or ignored.
func NewRuleStore(rules []Rule) (*RuleStore, error) {
	byKind := make(map[Kind]map[string][]string)
	for _, rule := range rules {
		targets, ok := byKind[rule.Kind]
		if !ok {
			targets = make(map[string][]string)
			byKind[rule.Kind] = targets
		}
		if _, exists := targets[rule.Target]; exists {
			return nil, fmt.Errorf("duplicate override for (%s, %s): each target may appear at most once per attribute kind", rule.Kind, rule.Target)
		}
		deps := make([]string, len(rule.Append))
		copy(deps, rule.Append)
		targets[rule.Target] = deps
	}
	return &RuleStore{rules: byKind}, nil
}

// Empty reports whether the store contains no rules at all.
func (s *RuleStore) Empty() bool {
	for _, targets := range s.rules {
		if len(targets) > 0 {
			return false
		}
	}
	return true
}

// Kinds returns the attribute kinds that have at least one rule, sorted.
func (s *RuleStore) Kinds() []Kind {
	kinds := make([]Kind, 0, len(s.rules))
	for kind, targets := range s.rules {
		if len(targets) > 0 {
			kinds = append(kinds, kind)
		}
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// Targets returns the component names targeted under the given kind, sorted.
func (s *RuleStore) Targets(kind Kind) []string {
	targets := make([]string, 0, len(s.rules[kind]))
	for name := range s.rules[kind] {
		targets = append(targets, name)
	}
	sort.Strings(targets)
	return targets
}

// Deps returns the dependency references to append for (kind, target), in
// declaration order. The returned slice must not be modified by the caller.
func (s *RuleStore) Deps(kind Kind, target string) []string {
	return s.rules[kind][target]
}

// Len returns the total number of (kind, target) rules in the store.
func (s *RuleStore) Len() int {
	n := 0
	for _, targets := range s.rules {
		n += len(targets)
	}
	return n
}
