/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: report.go
Description: Report envelope and writers. The envelope adds a report ID, a timestamp
and the tool version around a deterministic evaluation. Writers emit JSON, Markdown
and HTML, and Generator writes a report set into an output directory.
*/

package reporting

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kleascm/mechid/pkg/interfaces"
	"github.com/kleascm/mechid/pkg/utils"
	"github.com/sirupsen/logrus"
)

// Version is stamped into every report
const Version = "1.0.0"

// Format is an output format
type Format string

const (
	FormatJSON     Format = "json"
	FormatHTML     Format = "html"
	FormatMarkdown Format = "markdown"
)

// Formats lists every supported format
var Formats = []Format{FormatJSON, FormatHTML, FormatMarkdown}

// ParseFormats parses a comma-separated format list. "all" selects every format.
func ParseFormats(s string) ([]Format, error) {
	seen := make(map[Format]bool)
	var out []Format
	for _, part := range strings.Split(s, ",") {
		name := strings.ToLower(strings.TrimSpace(part))
		switch name {
		case "":
			continue
		case "all":
			for _, f := range Formats {
				if !seen[f] {
					seen[f] = true
					out = append(out, f)
				}
			}
			continue
		case "md":
			name = string(FormatMarkdown)
		}
		f := Format(name)
		switch f {
		case FormatJSON, FormatHTML, FormatMarkdown:
		default:
			return nil, fmt.Errorf("unsupported report format: %s", part)
		}
		if !seen[f] {
			seen[f] = true
			out = append(out, f)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no report format given")
	}
	return out, nil
}

// Extension returns the file extension for a format
func (f Format) Extension() string {
	switch f {
	case FormatHTML:
		return ".html"
	case FormatMarkdown:
		return ".md"
	default:
		return ".json"
	}
}

// Report wraps one evaluation for output
type Report struct {
	ReportID    string                 `json:"report_id"`
	GeneratedAt time.Time              `json:"generated_at"`
	Version     string                 `json:"version"`
	Request     interfaces.Request     `json:"request"`
	Evaluation  *interfaces.Evaluation `json:"evaluation"`
}

// NewReport creates a report envelope with a fresh ID
func NewReport(req interfaces.Request, eval *interfaces.Evaluation) *Report {
	return &Report{
		ReportID:    uuid.New().String(),
		GeneratedAt: time.Now().UTC(),
		Version:     Version,
		Request:     req,
		Evaluation:  eval,
	}
}

// Title is the human-readable report heading
func (r *Report) Title() string {
	if r.Evaluation == nil || r.Evaluation.Organism == "" {
		return "MechID report"
	}
	return "MechID report: " + r.Evaluation.Organism
}

// WriteJSON writes the report as indented JSON
func WriteJSON(w io.Writer, r *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}

// Generator writes report files into a directory
type Generator struct {
	outputDir string
	logger    *logrus.Logger
}

// NewGenerator creates a generator for outputDir
func NewGenerator(outputDir string, logger *logrus.Logger) *Generator {
	if logger == nil {
		logger = logrus.New()
	}
	return &Generator{outputDir: outputDir, logger: logger}
}

// Generate writes one file per format and returns the paths in format order
func (g *Generator) Generate(r *Report, formats ...Format) ([]string, error) {
	if err := os.MkdirAll(g.outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	base := reportBaseName(r)
	paths := make([]string, 0, len(formats))
	for _, f := range formats {
		path := filepath.Join(g.outputDir, base+f.Extension())
		if err := writeFile(path, r, f); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}

	g.logger.WithFields(logrus.Fields{
		"report_id": r.ReportID,
		"files":     len(paths),
	}).Infof("Report generated in: %s", g.outputDir)
	return paths, nil
}

// GenerateIndex writes an index.md and index.html linking several reports
func (g *Generator) GenerateIndex(reports []*Report) (string, error) {
	if err := os.MkdirAll(g.outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	sorted := append([]*Report(nil), reports...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Title() < sorted[j].Title()
	})

	var b strings.Builder
	b.WriteString("# MechID reports\n\n")
	b.WriteString("| Organism | Mechanisms | Cautions | Report |\n|---|---|---|---|\n")
	for _, r := range sorted {
		org, mechs, cautions := "-", 0, 0
		if r.Evaluation != nil {
			org = r.Evaluation.Organism
			mechs = len(r.Evaluation.Findings.Mechanisms)
			cautions = len(r.Evaluation.Findings.Cautions)
		}
		fmt.Fprintf(&b, "| %s | %d | %d | [%s](%s.html) |\n", escapeCell(org), mechs, cautions, shortID(r), reportBaseName(r))
	}

	md := []byte(b.String())
	if err := os.WriteFile(filepath.Join(g.outputDir, "index.md"), md, 0644); err != nil {
		return "", fmt.Errorf("failed to write index: %w", err)
	}
	path := filepath.Join(g.outputDir, "index.html")
	page := wrapHTMLPage("MechID reports", RenderMarkdownHTML(md))
	if err := os.WriteFile(path, page, 0644); err != nil {
		return "", fmt.Errorf("failed to write index: %w", err)
	}
	return path, nil
}

func writeFile(path string, r *Report, f Format) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	switch f {
	case FormatHTML:
		err = WriteHTML(file, r)
	case FormatMarkdown:
		err = WriteMarkdown(file, r)
	default:
		err = WriteJSON(file, r)
	}
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// reportBaseName is <organism-slug>_<short id>
func reportBaseName(r *Report) string {
	slug := "unknown"
	if r.Evaluation != nil && r.Evaluation.Organism != "" {
		slug = utils.Slug(r.Evaluation.Organism)
	}
	return slug + "_" + shortID(r)
}

func shortID(r *Report) string {
	if len(r.ReportID) > 8 {
		return r.ReportID[:8]
	}
	return r.ReportID
}
