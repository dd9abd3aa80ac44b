/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: render.go
Description: Terminal rendering for evaluations and listings using lipgloss styles.
*/

package commands

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/kleascm/mechid/pkg/interfaces"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#2196F3"))
	headingStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#808080"))
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
	headerStyle  = cellStyle.Bold(true)

	callStyles = map[interfaces.Call]lipgloss.Style{
		interfaces.Susceptible:  cellStyle.Foreground(lipgloss.Color("#8BC34A")),
		interfaces.Intermediate: cellStyle.Foreground(lipgloss.Color("#FFC107")),
		interfaces.Resistant:    cellStyle.Foreground(lipgloss.Color("#E53935")),
	}

	sectionStyles = map[interfaces.FindingKind]lipgloss.Style{
		interfaces.KindMechanism: lipgloss.NewStyle().Foreground(lipgloss.Color("#2196F3")),
		interfaces.KindCaution:   lipgloss.NewStyle().Foreground(lipgloss.Color("#E53935")),
		interfaces.KindFavorable: lipgloss.NewStyle().Foreground(lipgloss.Color("#8BC34A")),
		interfaces.KindTherapy:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FFC107")),
	}
)

var sectionTitles = map[interfaces.FindingKind]string{
	interfaces.KindMechanism: "🧬 Mechanisms",
	interfaces.KindCaution:   "⚠️  Cautions",
	interfaces.KindFavorable: "✅ Favorable",
	interfaces.KindTherapy:   "💊 Therapy",
}

// table renders rows under headers with padded columns. style picks the style of
// each cell and may be nil.
func table(headers []string, rows [][]string, style func(row, col int) lipgloss.Style) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}
	// lipgloss widths include padding
	total := len(headers) - 1
	for i := range widths {
		widths[i] += 2
		total += widths[i]
	}

	var b strings.Builder
	for i, h := range headers {
		b.WriteString(headerStyle.Width(widths[i]).Render(h))
		if i < len(headers)-1 {
			b.WriteString(mutedStyle.Render("|"))
		}
	}
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(strings.Repeat("-", total)))
	b.WriteString("\n")

	for r, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				break
			}
			s := cellStyle
			if style != nil {
				s = style(r, i)
			}
			b.WriteString(s.Width(widths[i]).Render(cell))
			if i < len(row)-1 {
				b.WriteString(mutedStyle.Render("|"))
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

// RenderEvaluation formats an evaluation for the terminal
func RenderEvaluation(eval *interfaces.Evaluation) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("🔬 MechID - " + eval.Organism))
	b.WriteString("\n\n")

	if !eval.Known {
		b.WriteString("❌ Organism not recognised; no inference was performed.\n")
		b.WriteString(mutedStyle.Render("   Run 'mechid organisms' for the supported list."))
		b.WriteString("\n")
		return b.String()
	}

	if ctx := contextLine(eval.Context); ctx != "" {
		b.WriteString(mutedStyle.Render(ctx))
		b.WriteString("\n\n")
	}

	if len(eval.Rows) == 0 {
		b.WriteString("No results.\n")
	} else {
		rows := make([][]string, len(eval.Rows))
		for i, row := range eval.Rows {
			rows[i] = []string{row.Antibiotic, row.Result.String(), string(row.Source)}
		}
		b.WriteString(table([]string{"Antibiotic", "Result", "Source"}, rows, func(r, c int) lipgloss.Style {
			if c == 1 {
				if s, ok := callStyles[eval.Rows[r].Result]; ok {
					return s
				}
			}
			return cellStyle
		}))
	}

	for _, kind := range interfaces.FindingKinds {
		b.WriteString("\n")
		b.WriteString(headingStyle.Render(sectionTitles[kind]))
		b.WriteString("\n")
		items := eval.Findings.ByKind(kind)
		if len(items) == 0 {
			b.WriteString(mutedStyle.Render("  None."))
			b.WriteString("\n")
			continue
		}
		for _, item := range items {
			b.WriteString(sectionStyles[kind].Render("  • " + item))
			b.WriteString("\n")
		}
	}

	if len(eval.Citations) > 0 {
		b.WriteString("\n")
		b.WriteString(headingStyle.Render("📚 References"))
		b.WriteString("\n")
		for i, c := range eval.Citations {
			fmt.Fprintf(&b, "  %d. %s\n", i+1, c)
		}
	}
	return b.String()
}

func contextLine(ctx interfaces.ClinicalContext) string {
	var parts []string
	if ctx.Syndrome != "" {
		parts = append(parts, "Syndrome: "+string(ctx.Syndrome))
	}
	if ctx.Severity != "" {
		parts = append(parts, "Severity: "+string(ctx.Severity))
	}
	return strings.Join(parts, "  ")
}
