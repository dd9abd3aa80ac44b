/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: single_pass.go
Description: Single-pass cascade engine. Rules run once, top to bottom, and the first
rule to assign a target wins. A later rule can see an earlier rule's inference but an
earlier rule never sees a later one, so declaration order matters.
*/

package inference

import (
	"github.com/kleascm/mechid/pkg/interfaces"
	"github.com/kleascm/mechid/pkg/knowledge"
)

// SinglePassEngine is the default cascade engine
type SinglePassEngine struct{}

// NewSinglePassEngine creates a new single-pass engine
func NewSinglePassEngine() *SinglePassEngine {
	return &SinglePassEngine{}
}

// Mode returns the engine mode name
func (e *SinglePassEngine) Mode() string {
	return ModeSinglePass
}

// Infer applies the organism's cascade rules once in order
func (e *SinglePassEngine) Infer(org *knowledge.Organism, input interfaces.Profile) interfaces.Profile {
	inferred := make(interfaces.Profile)
	if org == nil {
		return inferred
	}
	pass(org.Cascade, statusLookup{input: input, inferred: inferred})
	return inferred
}

// pass runs every rule once and records new inferences. It returns how many fired.
func pass(rules []knowledge.CascadeRule, s statusLookup) int {
	fired := 0
	for _, rule := range rules {
		if call, ok := applyRule(rule, s); ok && call.Valid() {
			s.inferred[rule.Target] = call
			fired++
		}
	}
	return fired
}
