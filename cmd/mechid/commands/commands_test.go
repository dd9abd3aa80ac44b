/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: commands_test.go
Description: Tests for CLI input parsing and terminal rendering.
*/

package commands

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kleascm/mechid/pkg/core"
	"github.com/kleascm/mechid/pkg/interfaces"
	"github.com/kleascm/mechid/pkg/knowledge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRequests(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []interfaces.Request
	}{
		{
			name: "single yaml request",
			input: `
organism: E. coli
syndrome: cystitis
results:
  Ceftriaxone: R
  Nitrofurantoin: S
`,
			want: []interfaces.Request{{
				Organism: "E. coli",
				Syndrome: "cystitis",
				Results:  map[string]string{"Ceftriaxone": "R", "Nitrofurantoin": "S"},
			}},
		},
		{
			name:  "json list",
			input: `[{"organism":"kpn"},{"organism":"S. aureus","results":{"Nafcillin/Oxacillin":"R"},"severity":"severe"}]`,
			want: []interfaces.Request{
				{Organism: "kpn"},
				{Organism: "S. aureus", Results: map[string]string{"Nafcillin/Oxacillin": "R"}, Severity: "severe"},
			},
		},
		{
			name: "requests mapping",
			input: `
requests:
  - organism: Pseudomonas aeruginosa
    results: {Meropenem: R}
  - organism: Enterococcus faecium
`,
			want: []interfaces.Request{
				{Organism: "Pseudomonas aeruginosa", Results: map[string]string{"Meropenem": "R"}},
				{Organism: "Enterococcus faecium"},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRequests([]byte(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRequestsErrors(t *testing.T) {
	for _, input := range []string{"", "[]", "requests: []", "just a string", "organism: [unclosed"} {
		_, err := ParseRequests([]byte(input))
		assert.Error(t, err, input)
	}
}

func TestLoadRequests(t *testing.T) {
	path := filepath.Join(t.TempDir(), "req.yaml")
	require.NoError(t, os.WriteFile(path, []byte("organism: E. coli\n"), 0o644))

	reqs, err := LoadRequests(path)
	require.NoError(t, err)
	assert.Equal(t, []interfaces.Request{{Organism: "E. coli"}}, reqs)

	_, err = LoadRequests(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestParseResultFlags(t *testing.T) {
	got, err := ParseResultFlags([]string{"Ceftriaxone=R", " Piperacillin/Tazobactam = S ", "Odd=Name=I", "Cefepime="})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"Ceftriaxone":             "R",
		"Piperacillin/Tazobactam": "S",
		"Odd=Name":                "I",
		"Cefepime":                "",
	}, got)

	for _, bad := range []string{"Ceftriaxone", "=R", " =R"} {
		_, err := ParseResultFlags([]string{bad})
		assert.Error(t, err, bad)
	}
}

func TestRenderEvaluation(t *testing.T) {
	e := core.NewEngine(nil, nil, nil)
	eval, err := e.Evaluate(interfaces.Request{
		Organism: "E. coli",
		Results:  map[string]string{"Ceftriaxone": "R", "Piperacillin/Tazobactam": "S"},
		Syndrome: "bloodstream",
	})
	require.NoError(t, err)

	out := RenderEvaluation(eval)
	assert.Contains(t, out, "MechID - Escherichia coli")
	assert.Contains(t, out, "Syndrome: bloodstream")
	assert.Contains(t, out, "Cefpodoxime")
	assert.Contains(t, out, "Cascade rule")
	assert.Contains(t, out, "• ESBL likely")
	assert.Contains(t, out, "  None.")
	assert.Contains(t, out, "  1. Tamma PD")

	unknown := RenderEvaluation(e.Run("Nocardia", interfaces.Profile{}, interfaces.ClinicalContext{}))
	assert.Contains(t, unknown, "Organism not recognised")
	assert.NotContains(t, unknown, "Mechanisms")
}

func TestTable(t *testing.T) {
	out := table([]string{"A", "Long header"}, [][]string{{"value", "x"}, {"v", "longer value"}}, nil)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "Long header")
	// both columns padded by two plus one separator
	assert.Equal(t, strings.Repeat("-", 7+14+1), lines[1])
	assert.Contains(t, lines[3], "longer value")
}

func TestRenderPanel(t *testing.T) {
	org, ok := knowledge.Default().Lookup("Klebsiella pneumoniae")
	require.True(t, ok)

	out := renderPanel(org)
	assert.Contains(t, out, "Klebsiella pneumoniae")
	assert.Contains(t, out, "Group: Gram-negatives")
	assert.Contains(t, out, "R (intrinsic)")
	assert.Contains(t, out, "Cascade rules")
	assert.Contains(t, out, "None.")
}
