/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: dashboard.go
Description: HTML rendering of evaluation reports. Findings are shown as coloured
panels per kind, next to the consolidated results table and the reference list.
*/

package reporting

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/kleascm/mechid/pkg/interfaces"
)

// panel is one coloured findings box
type panel struct {
	Title string
	Class string
	Items []string
}

// pageData feeds reportTemplate
type pageData struct {
	Title    string
	Report   *Report
	Eval     *interfaces.Evaluation
	Panels   []panel
	Context  string
	HasRows  bool
	HasCites bool
}

var reportTemplates = template.Must(template.New("report").Funcs(template.FuncMap{
	"resultClass": resultClass,
	"sourceClass": sourceClass,
	"timestamp": func(r *Report) string {
		return r.GeneratedAt.Format("2006-01-02 15:04:05 MST")
	},
}).Parse(reportTemplate))

var pageTemplate = template.Must(template.New("page").Parse(pageShellTemplate))

// WriteHTML writes a standalone HTML page for the report
func WriteHTML(w io.Writer, r *Report) error {
	data := pageData{
		Title:  r.Title(),
		Report: r,
		Eval:   r.Evaluation,
	}
	if eval := r.Evaluation; eval != nil {
		data.Panels = panelsFor(eval.Findings)
		data.Context = contextLine(eval.Context)
		data.HasRows = len(eval.Rows) > 0
		data.HasCites = len(eval.Citations) > 0
	}

	if err := reportTemplates.Execute(w, data); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	return nil
}

// HTML renders the report page to bytes
func HTML(r *Report) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteHTML(&buf, r); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func panelsFor(f interfaces.Findings) []panel {
	classes := map[interfaces.FindingKind]string{
		interfaces.KindMechanism: "mechanism",
		interfaces.KindCaution:   "caution",
		interfaces.KindFavorable: "favorable",
		interfaces.KindTherapy:   "therapy",
	}
	panels := make([]panel, 0, len(interfaces.FindingKinds))
	for _, kind := range interfaces.FindingKinds {
		items := f.ByKind(kind)
		if len(items) == 0 {
			continue
		}
		panels = append(panels, panel{Title: sectionTitles[kind], Class: classes[kind], Items: items})
	}
	return panels
}

func contextLine(ctx interfaces.ClinicalContext) string {
	var parts []string
	if ctx.Syndrome != "" {
		parts = append(parts, "Syndrome: "+string(ctx.Syndrome))
	}
	if ctx.Severity != "" {
		parts = append(parts, "Severity: "+string(ctx.Severity))
	}
	return strings.Join(parts, " · ")
}

func resultClass(c interfaces.Call) string {
	switch c {
	case interfaces.Susceptible:
		return "res-s"
	case interfaces.Intermediate:
		return "res-i"
	case interfaces.Resistant:
		return "res-r"
	default:
		return ""
	}
}

func sourceClass(p interfaces.Provenance) string {
	switch p {
	case interfaces.ProvenanceIntrinsic:
		return "src-intrinsic"
	case interfaces.ProvenanceCascade:
		return "src-cascade"
	default:
		return "src-user"
	}
}

// wrapHTMLPage embeds an already-rendered fragment into the page shell
func wrapHTMLPage(title string, body []byte) []byte {
	var buf bytes.Buffer
	_ = pageTemplate.Execute(&buf, struct {
		Title string
		Body  template.HTML
	}{Title: title, Body: template.HTML(body)})
	return buf.Bytes()
}
