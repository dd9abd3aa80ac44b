/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: markdown.go
Description: Markdown rendering of reports, plus Markdown to HTML conversion.
*/

package reporting

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"github.com/kleascm/mechid/pkg/interfaces"
)

var sectionTitles = map[interfaces.FindingKind]string{
	interfaces.KindMechanism: "Mechanisms",
	interfaces.KindCaution:   "Cautions",
	interfaces.KindFavorable: "Favorable findings",
	interfaces.KindTherapy:   "Therapy guidance",
}

// Markdown renders the report as Markdown
func Markdown(r *Report) []byte {
	var b bytes.Buffer
	fmt.Fprintf(&b, "# %s\n\n", r.Title())
	fmt.Fprintf(&b, "_Report %s, generated %s, MechID %s_\n\n", r.ReportID, r.GeneratedAt.Format("2006-01-02 15:04:05 MST"), r.Version)

	eval := r.Evaluation
	if eval == nil || !eval.Known {
		b.WriteString("Organism not recognised; no inference was performed.\n")
		return b.Bytes()
	}

	if eval.Context.Syndrome != "" || eval.Context.Severity != "" {
		b.WriteString("## Clinical context\n\n")
		if eval.Context.Syndrome != "" {
			fmt.Fprintf(&b, "- Syndrome: %s\n", eval.Context.Syndrome)
		}
		if eval.Context.Severity != "" {
			fmt.Fprintf(&b, "- Severity: %s\n", eval.Context.Severity)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Results\n\n")
	if len(eval.Rows) == 0 {
		b.WriteString("No results.\n\n")
	} else {
		b.WriteString("| Antibiotic | Result | Source |\n|---|---|---|\n")
		for _, row := range eval.Rows {
			fmt.Fprintf(&b, "| %s | %s | %s |\n", escapeCell(row.Antibiotic), row.Result, row.Source)
		}
		b.WriteString("\n")
	}

	for _, kind := range interfaces.FindingKinds {
		items := eval.Findings.ByKind(kind)
		fmt.Fprintf(&b, "## %s\n\n", sectionTitles[kind])
		if len(items) == 0 {
			b.WriteString("None.\n\n")
			continue
		}
		for _, item := range items {
			fmt.Fprintf(&b, "- %s\n", item)
		}
		b.WriteString("\n")
	}

	if len(eval.Citations) > 0 {
		b.WriteString("## References\n\n")
		for i, c := range eval.Citations {
			fmt.Fprintf(&b, "%d. %s\n", i+1, c)
		}
	}

	return b.Bytes()
}

// WriteMarkdown writes the Markdown rendering of a report
func WriteMarkdown(w io.Writer, r *Report) error {
	_, err := w.Write(Markdown(r))
	return err
}

// RenderMarkdownHTML converts Markdown to an HTML fragment
func RenderMarkdownHTML(md []byte) []byte {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags | html.HrefTargetBlank})
	return markdown.ToHTML(md, p, renderer)
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
