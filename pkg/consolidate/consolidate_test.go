/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: consolidate_test.go
Description: Tests for layer precedence, provenance and table ordering.
*/

package consolidate

import (
	"testing"

	"github.com/kleascm/mechid/pkg/interfaces"
	"github.com/stretchr/testify/assert"
)

func TestPrecedence(t *testing.T) {
	user := interfaces.Profile{
		interfaces.Ampicillin:  interfaces.Susceptible,
		interfaces.Ceftriaxone: interfaces.Resistant,
	}
	inferred := interfaces.Profile{
		interfaces.Ceftriaxone: interfaces.Susceptible,
		interfaces.Cefepime:    interfaces.Susceptible,
		interfaces.Ampicillin:  interfaces.Susceptible,
	}
	r := Consolidate(user, inferred, []string{interfaces.Ampicillin, interfaces.Cefazolin})

	assert.Equal(t, interfaces.Profile{
		interfaces.Ampicillin:  interfaces.Resistant,
		interfaces.Cefazolin:   interfaces.Resistant,
		interfaces.Ceftriaxone: interfaces.Resistant,
		interfaces.Cefepime:    interfaces.Susceptible,
	}, r.Final)

	assert.Equal(t, map[string]interfaces.Provenance{
		interfaces.Ampicillin:  interfaces.ProvenanceIntrinsic,
		interfaces.Cefazolin:   interfaces.ProvenanceIntrinsic,
		interfaces.Ceftriaxone: interfaces.ProvenanceUser,
		interfaces.Cefepime:    interfaces.ProvenanceCascade,
	}, r.Provenance)
}

func TestIntrinsicAlwaysResistant(t *testing.T) {
	for _, call := range []interfaces.Call{interfaces.Susceptible, interfaces.Intermediate, interfaces.Resistant} {
		r := Consolidate(interfaces.Profile{interfaces.Ampicillin: call}, interfaces.Profile{interfaces.Ampicillin: call}, []string{interfaces.Ampicillin})
		assert.Equal(t, interfaces.Resistant, r.Final[interfaces.Ampicillin], call.String())
		assert.Equal(t, interfaces.ProvenanceIntrinsic, r.Provenance[interfaces.Ampicillin])
	}
}

func TestConsolidateEmpty(t *testing.T) {
	r := Consolidate(nil, nil, nil)
	assert.Empty(t, r.Final)
	assert.Empty(t, Rows(r, []string{interfaces.Ampicillin}))
	assert.NotNil(t, Rows(r, nil))
}

func TestRowsOrder(t *testing.T) {
	r := Consolidate(
		interfaces.Profile{
			"Zebramycin":           interfaces.Resistant,
			interfaces.Meropenem:   interfaces.Susceptible,
			"Alphacillin":          interfaces.Susceptible,
			interfaces.Ceftriaxone: interfaces.Intermediate,
		},
		interfaces.Profile{interfaces.Cefepime: interfaces.Susceptible},
		[]string{interfaces.Ampicillin},
	)
	panel := []string{interfaces.Ampicillin, interfaces.Ceftriaxone, interfaces.Cefepime, interfaces.Aztreonam, interfaces.Meropenem, interfaces.Ceftriaxone}

	assert.Equal(t, []interfaces.ResultRow{
		{Antibiotic: interfaces.Ampicillin, Result: interfaces.Resistant, Source: interfaces.ProvenanceIntrinsic},
		{Antibiotic: interfaces.Ceftriaxone, Result: interfaces.Intermediate, Source: interfaces.ProvenanceUser},
		{Antibiotic: interfaces.Cefepime, Result: interfaces.Susceptible, Source: interfaces.ProvenanceCascade},
		{Antibiotic: interfaces.Meropenem, Result: interfaces.Susceptible, Source: interfaces.ProvenanceUser},
		{Antibiotic: "Alphacillin", Result: interfaces.Susceptible, Source: interfaces.ProvenanceUser},
		{Antibiotic: "Zebramycin", Result: interfaces.Resistant, Source: interfaces.ProvenanceUser},
	}, Rows(r, panel))
}
