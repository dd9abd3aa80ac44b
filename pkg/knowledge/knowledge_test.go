/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: knowledge_test.go
Description: Tests for organism canonicalization, lookup and the built-in knowledge base.
*/

package knowledge

import (
	"testing"

	"github.com/kleascm/mechid/pkg/analysis"
	"github.com/kleascm/mechid/pkg/interfaces"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalize(t *testing.T) {
	b := Default()
	tests := map[string]string{
		"Escherichia coli":               EscherichiaColi,
		"escherichia coli (urine)":       EscherichiaColi,
		"E. coli":                        EscherichiaColi,
		"  ECOLI ":                       EscherichiaColi,
		"Pseudomonas putida":             PseudomonasAeruginosa,
		"pseudomonas":                    PseudomonasAeruginosa,
		"Klebsiella oxytoca":             KlebsiellaOxytoca,
		"Klebsiella aerogenes":           KlebsiellaPneumoniae,
		"MRSA":                           StaphylococcusAureus,
		"Staphylococcus epidermidis":     CoagulaseNegativeStaph,
		"Streptococcus agalactiae (GBS)": BetaHemolyticStrep,
		"Enterococcus faecium":           EnterococcusFaecium,
		"Bacteroides fragilis":           "Bacteroides fragilis",
		"":                               "",
	}
	for in, want := range tests {
		assert.Equal(t, want, b.Canonicalize(in), in)
	}
}

func TestLookupReturnsCopy(t *testing.T) {
	b := Default()

	org, ok := b.Lookup("Klebsiella pneumoniae")
	require.True(t, ok)
	assert.Equal(t, []string{interfaces.Ampicillin}, org.Intrinsic)
	assert.Equal(t, analysis.TemplateEnterobacterales, org.Template)

	org.Intrinsic[0] = "Changed"
	org.Panel = nil

	again, ok := b.Lookup(KlebsiellaPneumoniae)
	require.True(t, ok)
	assert.Equal(t, []string{interfaces.Ampicillin}, again.Intrinsic)
	assert.NotEmpty(t, again.Panel)

	_, ok = b.Lookup("Bacteroides fragilis")
	assert.False(t, ok)
}

func TestDefaultBaseShape(t *testing.T) {
	b := Default()
	assert.Same(t, b, Default())
	assert.Equal(t, 17, b.Len())
	assert.Equal(t, []Group{GroupGramNegative, GroupStaphylococci, GroupEnterococcus, GroupStreptococcus}, b.Groups())
	assert.Equal(t, []string{EnterococcusFaecalis, EnterococcusFaecium}, b.ByGroup(GroupEnterococcus))

	for _, org := range b.Organisms() {
		assert.NotEmpty(t, org.Panel, org.Name)
		assert.NotNil(t, org.Evaluator(), org.Name)
		for _, ab := range org.Intrinsic {
			assert.Contains(t, org.Panel, ab, "%s intrinsic %s should be on the panel", org.Name, ab)
		}
	}
}

func TestIntrinsicProfile(t *testing.T) {
	org, ok := Default().Lookup(PseudomonasAeruginosa)
	require.True(t, ok)

	p := org.IntrinsicProfile()
	assert.Len(t, p, len(org.Intrinsic))
	assert.True(t, p.Is(interfaces.Ertapenem, interfaces.Resistant))
	assert.True(t, org.IsIntrinsic(interfaces.Ceftriaxone))
	assert.False(t, org.IsIntrinsic(interfaces.Meropenem))
}

func TestNewRejectsDuplicates(t *testing.T) {
	_, err := New(
		Organism{Name: "Test organism", Template: analysis.TemplateEnterobacterales},
		Organism{Name: "Test organism", Template: analysis.TemplateEnterobacterales},
	)
	assert.ErrorIs(t, err, ErrDuplicateOrganism)

	_, err = New(Organism{})
	assert.Error(t, err)
}

func TestRuleCheck(t *testing.T) {
	valid := []CascadeRule{
		SameAsRule(interfaces.Ceftriaxone, interfaces.Cefotaxime),
		SusIfSusRule(interfaces.Cefoxitin, interfaces.Cefazolin),
		SusIfAnySusRule(interfaces.Cefepime, interfaces.Ceftriaxone, interfaces.Cefazolin),
		SusIfSusElseResRule(interfaces.Doxycycline, interfaces.Tetracycline),
		SameAsElseSusIfSusRule(interfaces.Cefpodoxime, interfaces.Ceftriaxone, interfaces.Cefazolin),
	}
	for _, r := range valid {
		assert.NoError(t, r.Check(), r.String())
	}

	invalid := []CascadeRule{
		{Target: "", Kind: SameAs, Refs: []string{"x"}},
		{Target: "a", Kind: "maybe_same", Refs: []string{"x"}},
		{Target: "a", Kind: SameAs, Refs: []string{"x", "y"}},
		{Target: "a", Kind: SusIfSus},
		{Target: "a", Kind: SameAsElseSusIfSus, Primary: "x"},
		{Target: "a", Kind: SameAsElseSusIfSus, Primary: "x", Fallback: "y", Refs: []string{"z"}},
		SameAsRule("a", "a"),
	}
	for _, r := range invalid {
		assert.ErrorIs(t, r.Check(), ErrInvalidRule, r.String())
	}
}

func TestRuleReferences(t *testing.T) {
	r := SameAsElseSusIfSusRule(interfaces.Cefpodoxime, interfaces.Ceftriaxone, interfaces.Cefazolin)
	assert.Equal(t, []string{interfaces.Ceftriaxone, interfaces.Cefazolin}, r.References())

	r = SusIfAnySusRule(interfaces.Meropenem, interfaces.Imipenem, interfaces.Ceftriaxone)
	refs := r.References()
	refs[0] = "Changed"
	assert.Equal(t, interfaces.Imipenem, r.Refs[0])
}
