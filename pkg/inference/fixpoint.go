/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: fixpoint.go
Description: Fixpoint cascade engine. Repeats single passes until a pass infers nothing
new, so a rule can use a value inferred by a rule declared after it. Targets are still
first-writer-wins. Mutually referencing rules with no tested member still infer nothing.
*/

package inference

import (
	"github.com/kleascm/mechid/pkg/interfaces"
	"github.com/kleascm/mechid/pkg/knowledge"
)

// FixpointEngine is an opt-in alternative to the single-pass engine
type FixpointEngine struct {
	maxPasses int
}

// NewFixpointEngine creates a fixpoint engine. maxPasses <= 0 bounds the loop by the
// number of rules, which is always enough since every productive pass assigns a target.
func NewFixpointEngine(maxPasses int) *FixpointEngine {
	return &FixpointEngine{maxPasses: maxPasses}
}

// Mode returns the engine mode name
func (e *FixpointEngine) Mode() string {
	return ModeFixpoint
}

// Infer applies the cascade rules repeatedly until no rule fires
func (e *FixpointEngine) Infer(org *knowledge.Organism, input interfaces.Profile) interfaces.Profile {
	inferred := make(interfaces.Profile)
	if org == nil {
		return inferred
	}

	limit := e.maxPasses
	if limit <= 0 {
		limit = len(org.Cascade) + 1
	}

	s := statusLookup{input: input, inferred: inferred}
	for i := 0; i < limit; i++ {
		if pass(org.Cascade, s) == 0 {
			break
		}
	}
	return inferred
}
