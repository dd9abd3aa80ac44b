/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: report_test.go
Description: Tests for report formats, renderers and the file generator.
*/

package reporting

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kleascm/mechid/pkg/core"
	"github.com/kleascm/mechid/pkg/interfaces"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func esblReport(t *testing.T) *Report {
	t.Helper()
	req := interfaces.Request{
		Organism: "E. coli",
		Results: map[string]string{
			interfaces.Ceftriaxone:            "R",
			interfaces.PiperacillinTazobactam: "S",
		},
		Syndrome: "bloodstream",
		Severity: "severe",
	}
	eval, err := core.NewEngine(nil, nil, nil, core.WithLogger(quietLogger())).Evaluate(req)
	require.NoError(t, err)
	return NewReport(req, eval)
}

func TestParseFormats(t *testing.T) {
	tests := []struct {
		in      string
		want    []Format
		wantErr bool
	}{
		{in: "json", want: []Format{FormatJSON}},
		{in: " HTML , md ,json", want: []Format{FormatHTML, FormatMarkdown, FormatJSON}},
		{in: "all", want: Formats},
		{in: "json,all", want: []Format{FormatJSON, FormatHTML, FormatMarkdown}},
		{in: "html,html", want: []Format{FormatHTML}},
		{in: "", wantErr: true},
		{in: " , ", wantErr: true},
		{in: "pdf", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormats(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	assert.Equal(t, ".md", FormatMarkdown.Extension())
	assert.Equal(t, ".html", FormatHTML.Extension())
	assert.Equal(t, ".json", FormatJSON.Extension())
}

func TestNewReport(t *testing.T) {
	r := esblReport(t)
	assert.Len(t, r.ReportID, 36)
	assert.Equal(t, Version, r.Version)
	assert.Equal(t, "MechID report: Escherichia coli", r.Title())
	assert.False(t, r.GeneratedAt.IsZero())

	other := NewReport(r.Request, r.Evaluation)
	assert.NotEqual(t, r.ReportID, other.ReportID)
	assert.Equal(t, "MechID report", (&Report{}).Title())
}

func TestWriteJSON(t *testing.T) {
	r := esblReport(t)
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, r))

	var decoded struct {
		ReportID   string `json:"report_id"`
		Evaluation struct {
			Organism string `json:"organism"`
			Rows     []struct {
				Antibiotic string `json:"antibiotic"`
				Result     string `json:"result"`
				Source     string `json:"source"`
			} `json:"rows"`
			CitationIDs []string `json:"citation_ids"`
		} `json:"evaluation"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, r.ReportID, decoded.ReportID)
	assert.Equal(t, "Escherichia coli", decoded.Evaluation.Organism)
	require.Len(t, decoded.Evaluation.Rows, 3)
	assert.Equal(t, "Cefpodoxime", decoded.Evaluation.Rows[2].Antibiotic)
	assert.Equal(t, "Resistant", decoded.Evaluation.Rows[2].Result)
	assert.Equal(t, "Cascade rule", decoded.Evaluation.Rows[2].Source)
	assert.Equal(t, r.Evaluation.CitationIDs, decoded.Evaluation.CitationIDs)
}

func TestMarkdown(t *testing.T) {
	md := string(Markdown(esblReport(t)))

	assert.True(t, strings.HasPrefix(md, "# MechID report: Escherichia coli\n"))
	assert.Contains(t, md, "- Syndrome: bloodstream\n- Severity: severe\n")
	assert.Contains(t, md, "| Cefpodoxime | Resistant | Cascade rule |")
	assert.Contains(t, md, "## Mechanisms\n\n- ESBL likely")
	assert.Contains(t, md, "## Cautions\n\nNone.\n")
	assert.Contains(t, md, "## References\n\n1. Tamma PD")

	// section order follows the finding kinds
	mech := strings.Index(md, "## Mechanisms")
	therapy := strings.Index(md, "## Therapy guidance")
	refs := strings.Index(md, "## References")
	assert.True(t, mech < therapy && therapy < refs)
}

func TestMarkdownUnknownOrganism(t *testing.T) {
	r := NewReport(interfaces.Request{Organism: "Nocardia"}, &interfaces.Evaluation{Organism: "Nocardia"})
	md := string(Markdown(r))
	assert.Contains(t, md, "Organism not recognised")
	assert.NotContains(t, md, "## Results")
}

func TestMarkdownEscapesPipes(t *testing.T) {
	r := NewReport(interfaces.Request{}, &interfaces.Evaluation{
		Organism: "Test",
		Known:    true,
		Rows: []interfaces.ResultRow{
			{Antibiotic: "A|B", Result: interfaces.Resistant, Source: interfaces.ProvenanceUser},
		},
	})
	assert.Contains(t, string(Markdown(r)), `| A\|B | Resistant | User-entered |`)
}

func TestHTML(t *testing.T) {
	page, err := HTML(esblReport(t))
	require.NoError(t, err)
	html := string(page)

	assert.Contains(t, html, "<title>MechID report: Escherichia coli</title>")
	assert.Contains(t, html, `<td class="res-r">Resistant</td>`)
	assert.Contains(t, html, `<td class="src-cascade">Cascade rule</td>`)
	assert.Contains(t, html, `<div class="panel mechanism">`)
	assert.Contains(t, html, `<div class="panel therapy">`)
	assert.NotContains(t, html, `<div class="panel caution">`)
	assert.Contains(t, html, `<ol class="refs">`)
	assert.Contains(t, html, "Syndrome: bloodstream · Severity: severe")

	unknown, err := HTML(NewReport(interfaces.Request{}, &interfaces.Evaluation{Organism: "Nocardia"}))
	require.NoError(t, err)
	assert.Contains(t, string(unknown), "Organism not recognised")
}

func TestRenderMarkdownHTML(t *testing.T) {
	out := string(RenderMarkdownHTML([]byte("# Title\n\n| a | b |\n|---|---|\n| 1 | 2 |\n")))
	assert.Contains(t, out, `<h1 id="title">Title</h1>`)
	assert.Contains(t, out, "<table>")
	assert.Contains(t, out, "<td>1</td>")
}

func TestGenerator(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")
	g := NewGenerator(dir, quietLogger())

	r := esblReport(t)
	paths, err := g.Generate(r, Formats...)
	require.NoError(t, err)
	require.Len(t, paths, 3)

	prefix := "escherichia-coli_" + r.ReportID[:8]
	assert.Equal(t, filepath.Join(dir, prefix+".json"), paths[0])
	assert.Equal(t, filepath.Join(dir, prefix+".html"), paths[1])
	assert.Equal(t, filepath.Join(dir, prefix+".md"), paths[2])
	for _, p := range paths {
		info, err := os.Stat(p)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	}

	unknown := NewReport(interfaces.Request{Organism: "Nocardia"}, &interfaces.Evaluation{Organism: "Nocardia"})
	_, err = g.Generate(unknown, FormatMarkdown)
	require.NoError(t, err)

	index, err := g.GenerateIndex([]*Report{unknown, r})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "index.html"), index)

	md, err := os.ReadFile(filepath.Join(dir, "index.md"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(md)), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "| Escherichia coli | 1 | 0 | ["+r.ReportID[:8]+"]("+prefix+".html) |", lines[4])
	assert.True(t, strings.HasPrefix(lines[5], "| Nocardia | 0 | 0 |"))

	page, err := os.ReadFile(index)
	require.NoError(t, err)
	assert.Contains(t, string(page), "<title>MechID reports</title>")
	assert.Contains(t, string(page), "<table>")
}
