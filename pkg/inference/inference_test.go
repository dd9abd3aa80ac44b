/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: inference_test.go
Description: Tests for cascade inference: every rule kind, first-writer-wins ordering,
monotonicity, cycles and the opt-in fixpoint engine.
*/

package inference

import (
	"testing"

	"github.com/kleascm/mechid/pkg/interfaces"
	"github.com/kleascm/mechid/pkg/knowledge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	S = interfaces.Susceptible
	I = interfaces.Intermediate
	R = interfaces.Resistant
)

func organism(rules ...knowledge.CascadeRule) *knowledge.Organism {
	return &knowledge.Organism{Name: "Test organism", Cascade: rules}
}

func TestNewEngine(t *testing.T) {
	e, err := NewEngine("")
	require.NoError(t, err)
	assert.Equal(t, ModeSinglePass, e.Mode())

	e, err = NewEngine(ModeFixpoint)
	require.NoError(t, err)
	assert.Equal(t, ModeFixpoint, e.Mode())

	_, err = NewEngine("magic")
	assert.ErrorIs(t, err, ErrUnknownMode)
	assert.Equal(t, []string{ModeSinglePass, ModeFixpoint}, Modes())
}

func TestRuleKinds(t *testing.T) {
	tests := []struct {
		name  string
		rule  knowledge.CascadeRule
		input interfaces.Profile
		want  interfaces.Profile
	}{
		{"same_as copies S", knowledge.SameAsRule("T", "A"), interfaces.Profile{"A": S}, interfaces.Profile{"T": S}},
		{"same_as copies R", knowledge.SameAsRule("T", "A"), interfaces.Profile{"A": R}, interfaces.Profile{"T": R}},
		{"same_as copies I", knowledge.SameAsRule("T", "A"), interfaces.Profile{"A": I}, interfaces.Profile{"T": I}},
		{"same_as missing ref", knowledge.SameAsRule("T", "A"), interfaces.Profile{}, interfaces.Profile{}},

		{"sus_if_sus fires", knowledge.SusIfSusRule("T", "A"), interfaces.Profile{"A": S}, interfaces.Profile{"T": S}},
		{"sus_if_sus ignores R", knowledge.SusIfSusRule("T", "A"), interfaces.Profile{"A": R}, interfaces.Profile{}},
		{"sus_if_sus any of several", knowledge.SusIfSusRule("T", "A", "B"), interfaces.Profile{"A": R, "B": S}, interfaces.Profile{"T": S}},

		{"sus_if_any_sus fires on later ref", knowledge.SusIfAnySusRule("T", "A", "B", "C"), interfaces.Profile{"C": S}, interfaces.Profile{"T": S}},
		{"sus_if_any_sus none S", knowledge.SusIfAnySusRule("T", "A", "B"), interfaces.Profile{"A": I, "B": R}, interfaces.Profile{}},

		{"else_res S", knowledge.SusIfSusElseResRule("T", "A"), interfaces.Profile{"A": S}, interfaces.Profile{"T": S}},
		{"else_res I", knowledge.SusIfSusElseResRule("T", "A"), interfaces.Profile{"A": I}, interfaces.Profile{"T": R}},
		{"else_res R", knowledge.SusIfSusElseResRule("T", "A"), interfaces.Profile{"A": R}, interfaces.Profile{"T": R}},
		{"else_res missing", knowledge.SusIfSusElseResRule("T", "A"), interfaces.Profile{}, interfaces.Profile{}},

		{"primary wins", knowledge.SameAsElseSusIfSusRule("T", "P", "F"), interfaces.Profile{"P": R, "F": S}, interfaces.Profile{"T": R}},
		{"fallback S", knowledge.SameAsElseSusIfSusRule("T", "P", "F"), interfaces.Profile{"F": S}, interfaces.Profile{"T": S}},
		{"fallback R ignored", knowledge.SameAsElseSusIfSusRule("T", "P", "F"), interfaces.Profile{"F": R}, interfaces.Profile{}},

		{"unknown kind never fires", knowledge.CascadeRule{Target: "T", Kind: "guess", Refs: []string{"A"}}, interfaces.Profile{"A": S}, interfaces.Profile{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, e := range []Engine{NewSinglePassEngine(), NewFixpointEngine(0)} {
				got := e.Infer(organism(tt.rule), tt.input)
				assert.Equal(t, tt.want, got, e.Mode())
			}
		})
	}
}

func TestTestedTargetIsNeverOverwritten(t *testing.T) {
	org := organism(knowledge.SameAsRule("T", "A"))
	input := interfaces.Profile{"T": S, "A": R}

	got := NewSinglePassEngine().Infer(org, input)
	assert.Empty(t, got)
	assert.Equal(t, interfaces.Profile{"T": S, "A": R}, input)
}

func TestFirstWriterWins(t *testing.T) {
	org := organism(
		knowledge.SameAsRule("T", "A"),
		knowledge.SusIfSusRule("T", "B"),
	)
	got := NewSinglePassEngine().Infer(org, interfaces.Profile{"A": R, "B": S})
	assert.Equal(t, interfaces.Profile{"T": R}, got)
}

func TestChainedInferenceInOrder(t *testing.T) {
	// B is inferred first and then feeds C within the same pass
	org := organism(
		knowledge.SameAsRule("B", "A"),
		knowledge.SameAsRule("C", "B"),
	)
	got := NewSinglePassEngine().Infer(org, interfaces.Profile{"A": S})
	assert.Equal(t, interfaces.Profile{"B": S, "C": S}, got)
}

func TestForwardReferenceNeedsFixpoint(t *testing.T) {
	org := organism(
		knowledge.SameAsRule("C", "B"),
		knowledge.SameAsRule("B", "A"),
	)
	input := interfaces.Profile{"A": R}

	assert.Equal(t, interfaces.Profile{"B": R}, NewSinglePassEngine().Infer(org, input))
	assert.Equal(t, interfaces.Profile{"B": R, "C": R}, NewFixpointEngine(0).Infer(org, input))
	assert.Equal(t, interfaces.Profile{"B": R}, NewFixpointEngine(1).Infer(org, input))
}

func TestCycleInfersNothing(t *testing.T) {
	org := organism(
		knowledge.SameAsRule(interfaces.Ceftriaxone, interfaces.Cefotaxime),
		knowledge.SameAsRule(interfaces.Cefotaxime, interfaces.Ceftriaxone),
	)
	for _, e := range []Engine{NewSinglePassEngine(), NewFixpointEngine(0)} {
		assert.Empty(t, e.Infer(org, interfaces.Profile{}), e.Mode())
	}

	got := NewSinglePassEngine().Infer(org, interfaces.Profile{interfaces.Cefotaxime: R})
	assert.Equal(t, interfaces.Profile{interfaces.Ceftriaxone: R}, got)
}

func TestSusceptibleRulesAreMonotone(t *testing.T) {
	calls := []interfaces.Call{S, I, R}
	rules := []knowledge.CascadeRule{
		knowledge.SusIfSusRule("T", "A", "B"),
		knowledge.SusIfAnySusRule("T", "A", "B"),
	}
	for _, rule := range rules {
		for _, a := range calls {
			for _, b := range calls {
				got := NewSinglePassEngine().Infer(organism(rule), interfaces.Profile{"A": a, "B": b})
				if c, ok := got["T"]; ok {
					assert.Equal(t, S, c, "%s with A=%s B=%s", rule.Kind, a, b)
				}
			}
		}
	}
}

func TestNilOrganism(t *testing.T) {
	assert.Empty(t, NewSinglePassEngine().Infer(nil, interfaces.Profile{"A": S}))
	assert.Empty(t, NewFixpointEngine(0).Infer(nil, interfaces.Profile{"A": S}))
}

func TestEscherichiaColiCascade(t *testing.T) {
	org, ok := knowledge.Default().Lookup(knowledge.EscherichiaColi)
	require.True(t, ok)

	got := NewSinglePassEngine().Infer(org, interfaces.Profile{
		interfaces.Cefazolin:    S,
		interfaces.Tetracycline: R,
	})
	assert.Equal(t, interfaces.Profile{
		interfaces.Cefepime:    S,
		interfaces.Ceftazidime: S,
		interfaces.Cefotetan:   S,
		interfaces.Cefoxitin:   S,
		interfaces.Cefuroxime:  S,
		interfaces.Cefpodoxime: S,
		interfaces.Doxycycline: R,
	}, got)
}
