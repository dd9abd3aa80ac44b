/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: inference.go
Description: Main entry point for cascade inference. Provides the Engine interface and
the factory that selects an implementation by mode. Engines infer susceptibility for
untested antibiotics from an organism's ordered cascade rules and return only the
values they inferred.
*/

package inference

import (
	"errors"
	"fmt"

	"github.com/kleascm/mechid/pkg/interfaces"
	"github.com/kleascm/mechid/pkg/knowledge"
)

// ErrUnknownMode is returned by NewEngine for unsupported modes
var ErrUnknownMode = errors.New("unknown inference mode")

const (
	// ModeSinglePass evaluates each rule once in declaration order
	ModeSinglePass = "single-pass"
	// ModeFixpoint repeats single passes until nothing new is inferred
	ModeFixpoint = "fixpoint"
)

// Engine defines the interface for cascade inference engines
type Engine interface {
	// Infer returns the values inferred for antibiotics absent from input.
	// The input profile is never modified and never echoed back.
	Infer(org *knowledge.Organism, input interfaces.Profile) interfaces.Profile
	Mode() string
}

// NewEngine returns the inference engine for the given mode. An empty mode selects single-pass.
func NewEngine(mode string) (Engine, error) {
	switch mode {
	case "", ModeSinglePass:
		return NewSinglePassEngine(), nil
	case ModeFixpoint:
		return NewFixpointEngine(0), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
}

// Modes lists the supported modes
func Modes() []string {
	return []string{ModeSinglePass, ModeFixpoint}
}

// statusLookup implements the rule-time lookup: user input first, then values
// inferred earlier in the same evaluation
type statusLookup struct {
	input    interfaces.Profile
	inferred interfaces.Profile
}

func (s statusLookup) get(ab string) (interfaces.Call, bool) {
	if c, ok := s.input.Get(ab); ok {
		return c, true
	}
	return s.inferred.Get(ab)
}

func (s statusLookup) isSusceptible(ab string) bool {
	c, ok := s.get(ab)
	return ok && c == interfaces.Susceptible
}

// applyRule evaluates one rule. It returns the inferred call and whether the rule fired.
// A rule never fires for a target that already has a value.
func applyRule(rule knowledge.CascadeRule, s statusLookup) (interfaces.Call, bool) {
	if _, ok := s.get(rule.Target); ok {
		return 0, false
	}

	switch rule.Kind {
	case knowledge.SameAs:
		if len(rule.Refs) == 0 {
			return 0, false
		}
		return s.get(rule.Refs[0])

	case knowledge.SusIfSus, knowledge.SusIfAnySus:
		for _, ref := range rule.Refs {
			if ref != "" && s.isSusceptible(ref) {
				return interfaces.Susceptible, true
			}
		}
		return 0, false

	case knowledge.SusIfSusElseRes:
		if len(rule.Refs) == 0 {
			return 0, false
		}
		c, ok := s.get(rule.Refs[0])
		if !ok {
			return 0, false
		}
		if c == interfaces.Susceptible {
			return interfaces.Susceptible, true
		}
		return interfaces.Resistant, true

	case knowledge.SameAsElseSusIfSus:
		if c, ok := s.get(rule.Primary); ok {
			return c, true
		}
		if s.isSusceptible(rule.Fallback) {
			return interfaces.Susceptible, true
		}
		return 0, false

	default:
		return 0, false
	}
}
