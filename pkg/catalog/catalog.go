/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: catalog.go
Description: Optional external record catalog. A cohort file of organism/antibiotic
rows feeds organism and antibiotic pick lists. It never participates in inference.
*/

package catalog

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

// ErrUnsupportedFormat is returned for files that are neither CSV nor XLSX
var ErrUnsupportedFormat = errors.New("unsupported catalog format")

// Record is one cohort row
type Record struct {
	Organism       string `json:"organism"`
	Antibiotic     string `json:"antibiotic"`
	Susceptibility string `json:"susceptibility,omitempty"`
}

// Canonicalizer maps raw organism names onto canonical ones
type Canonicalizer interface {
	Canonicalize(raw string) string
}

// Catalog is an in-memory set of records
type Catalog struct {
	Source  string   `json:"source"`
	Records []Record `json:"records"`
}

// Source loads a catalog
type Source interface {
	Name() string
	Load() (*Catalog, error)
}

// Empty returns a catalog with no records
func Empty() *Catalog {
	return &Catalog{Records: []Record{}}
}

// Len returns the number of records
func (c *Catalog) Len() int {
	return len(c.Records)
}

// Organisms returns the distinct organism names, canonicalised when canon is non-nil, sorted
func (c *Catalog) Organisms(canon Canonicalizer) []string {
	seen := make(map[string]bool)
	var out []string
	for _, r := range c.Records {
		name := strings.TrimSpace(r.Organism)
		if canon != nil {
			name = canon.Canonicalize(name)
		}
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Antibiotics returns the distinct antibiotics recorded for an organism, sorted
func (c *Catalog) Antibiotics(organism string, canon Canonicalizer) []string {
	want := organism
	if canon != nil {
		want = canon.Canonicalize(organism)
	}
	seen := make(map[string]bool)
	var out []string
	for _, r := range c.Records {
		name := strings.TrimSpace(r.Organism)
		if canon != nil {
			name = canon.Canonicalize(name)
		}
		ab := strings.TrimSpace(r.Antibiotic)
		if name != want || ab == "" || seen[ab] {
			continue
		}
		seen[ab] = true
		out = append(out, ab)
	}
	sort.Strings(out)
	return out
}

// SourceFor picks a source by file extension
func SourceFor(path string) (Source, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return NewCSVSource(path), nil
	case ".xlsx", ".xlsm":
		return NewXLSXSource(path, ""), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// Load reads a catalog from a CSV or XLSX file
func Load(path string) (*Catalog, error) {
	src, err := SourceFor(path)
	if err != nil {
		return nil, err
	}
	return src.Load()
}

// LoadOrEmpty tries each path in order and falls back to an empty catalog.
// Failures are logged, never returned.
func LoadOrEmpty(logger *logrus.Logger, paths ...string) *Catalog {
	for _, path := range paths {
		if path == "" {
			continue
		}
		c, err := Load(path)
		if err == nil {
			return c
		}
		if logger != nil {
			logger.WithField("path", path).Debugf("Catalog unavailable: %v", err)
		}
	}
	return Empty()
}

// columnIndex locates the required columns in a header row
func columnIndex(header []string) (org, ab, sus int, err error) {
	org, ab, sus = -1, -1, -1
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "organism":
			org = i
		case "antibiotic":
			ab = i
		case "susceptibility":
			sus = i
		}
	}
	if org < 0 || ab < 0 {
		return 0, 0, 0, fmt.Errorf("header must contain organism and antibiotic columns")
	}
	return org, ab, sus, nil
}

// recordsFromRows converts header+rows into records, skipping blank rows
func recordsFromRows(rows [][]string) ([]Record, error) {
	if len(rows) == 0 {
		return []Record{}, nil
	}
	org, ab, sus, err := columnIndex(rows[0])
	if err != nil {
		return nil, err
	}

	cell := func(row []string, i int) string {
		if i < 0 || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	records := make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		r := Record{
			Organism:       cell(row, org),
			Antibiotic:     cell(row, ab),
			Susceptibility: cell(row, sus),
		}
		if r.Organism == "" && r.Antibiotic == "" {
			continue
		}
		records = append(records, r)
	}
	return records, nil
}
