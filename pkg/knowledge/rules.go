/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: rules.go
Description: Cascade rule definitions. A cascade rule infers a value for an untested
target antibiotic from the values of its reference antibiotics. Five kinds are
supported and rules are always applied in declaration order.
*/

package knowledge

import (
	"fmt"
)

// RuleKind names a cascade rule's inference behaviour
type RuleKind string

const (
	// SameAs copies the reference's value when it has one
	SameAs RuleKind = "same_as"
	// SusIfSus sets Susceptible when any reference is Susceptible
	SusIfSus RuleKind = "sus_if_sus"
	// SusIfAnySus behaves like SusIfSus over an explicit reference list
	SusIfAnySus RuleKind = "sus_if_any_sus"
	// SusIfSusElseRes sets Susceptible when the reference is Susceptible and
	// Resistant when it is Intermediate or Resistant
	SusIfSusElseRes RuleKind = "sus_if_sus_else_res"
	// SameAsElseSusIfSus copies the primary when it has a value, otherwise sets
	// Susceptible only when the fallback is Susceptible
	SameAsElseSusIfSus RuleKind = "same_as_else_sus_if_sus"
)

// RuleKinds lists every supported kind
var RuleKinds = []RuleKind{SameAs, SusIfSus, SusIfAnySus, SusIfSusElseRes, SameAsElseSusIfSus}

// Known reports whether the kind is supported
func (k RuleKind) Known() bool {
	for _, known := range RuleKinds {
		if k == known {
			return true
		}
	}
	return false
}

// CascadeRule is one declarative inference rule
type CascadeRule struct {
	Target   string   `json:"target" yaml:"target"`
	Kind     RuleKind `json:"rule" yaml:"rule"`
	Refs     []string `json:"refs,omitempty" yaml:"refs,omitempty"`
	Primary  string   `json:"primary,omitempty" yaml:"primary,omitempty"`
	Fallback string   `json:"fallback,omitempty" yaml:"fallback,omitempty"`
}

// SameAsRule builds a same_as rule
func SameAsRule(target, ref string) CascadeRule {
	return CascadeRule{Target: target, Kind: SameAs, Refs: []string{ref}}
}

// SusIfSusRule builds a sus_if_sus rule over one or more references
func SusIfSusRule(target string, refs ...string) CascadeRule {
	return CascadeRule{Target: target, Kind: SusIfSus, Refs: refs}
}

// SusIfAnySusRule builds a sus_if_any_sus rule
func SusIfAnySusRule(target string, refs ...string) CascadeRule {
	return CascadeRule{Target: target, Kind: SusIfAnySus, Refs: refs}
}

// SusIfSusElseResRule builds a sus_if_sus_else_res rule
func SusIfSusElseResRule(target, ref string) CascadeRule {
	return CascadeRule{Target: target, Kind: SusIfSusElseRes, Refs: []string{ref}}
}

// SameAsElseSusIfSusRule builds a same_as_else_sus_if_sus rule
func SameAsElseSusIfSusRule(target, primary, fallback string) CascadeRule {
	return CascadeRule{Target: target, Kind: SameAsElseSusIfSus, Primary: primary, Fallback: fallback}
}

// References returns every antibiotic the rule reads, in evaluation order
func (r CascadeRule) References() []string {
	if r.Kind == SameAsElseSusIfSus {
		out := make([]string, 0, 2)
		if r.Primary != "" {
			out = append(out, r.Primary)
		}
		if r.Fallback != "" {
			out = append(out, r.Fallback)
		}
		return out
	}
	return append([]string(nil), r.Refs...)
}

// Check verifies kind, arity and self-reference
func (r CascadeRule) Check() error {
	if r.Target == "" {
		return fmt.Errorf("%w: empty target", ErrInvalidRule)
	}
	if !r.Kind.Known() {
		return fmt.Errorf("%w: %s has unknown kind %q", ErrInvalidRule, r.Target, r.Kind)
	}

	switch r.Kind {
	case SameAs, SusIfSusElseRes:
		if len(r.Refs) != 1 {
			return fmt.Errorf("%w: %s %s needs exactly one reference, got %d", ErrInvalidRule, r.Target, r.Kind, len(r.Refs))
		}
	case SusIfSus, SusIfAnySus:
		if len(r.Refs) == 0 {
			return fmt.Errorf("%w: %s %s needs at least one reference", ErrInvalidRule, r.Target, r.Kind)
		}
	case SameAsElseSusIfSus:
		if r.Primary == "" || r.Fallback == "" {
			return fmt.Errorf("%w: %s %s needs primary and fallback", ErrInvalidRule, r.Target, r.Kind)
		}
		if len(r.Refs) > 0 {
			return fmt.Errorf("%w: %s %s takes primary/fallback, not refs", ErrInvalidRule, r.Target, r.Kind)
		}
	}

	for _, ref := range r.References() {
		if ref == "" {
			return fmt.Errorf("%w: %s has an empty reference", ErrInvalidRule, r.Target)
		}
		if ref == r.Target {
			return fmt.Errorf("%w: %s references itself", ErrInvalidRule, r.Target)
		}
	}
	return nil
}

// String renders the rule for panel listings
func (r CascadeRule) String() string {
	switch r.Kind {
	case SameAsElseSusIfSus:
		return fmt.Sprintf("%s %s (primary %s, fallback %s)", r.Target, r.Kind, r.Primary, r.Fallback)
	default:
		return fmt.Sprintf("%s %s %v", r.Target, r.Kind, r.Refs)
	}
}

func cloneRules(rules []CascadeRule) []CascadeRule {
	out := make([]CascadeRule, len(rules))
	for i, r := range rules {
		out[i] = r
		out[i].Refs = append([]string(nil), r.Refs...)
	}
	return out
}
