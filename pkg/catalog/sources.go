/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: sources.go
Description: Catalog sources for local CSV and XLSX cohort files.
*/

package catalog

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"
)

// CSVSource reads a comma-separated cohort file with a header row
type CSVSource struct {
	Path string
}

// NewCSVSource creates a CSV source
func NewCSVSource(path string) *CSVSource {
	return &CSVSource{Path: path}
}

func (s *CSVSource) Name() string { return "csv:" + s.Path }

// Load reads and parses the file
func (s *CSVSource) Load() (*Catalog, error) {
	file, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}

	records, err := recordsFromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", s.Path, err)
	}
	return &Catalog{Source: s.Name(), Records: records}, nil
}

// XLSXSource reads one sheet of a workbook. An empty sheet name means the first sheet.
type XLSXSource struct {
	Path  string
	Sheet string
}

// NewXLSXSource creates a workbook source
func NewXLSXSource(path, sheet string) *XLSXSource {
	return &XLSXSource{Path: path, Sheet: sheet}
}

func (s *XLSXSource) Name() string { return "xlsx:" + s.Path }

// Load opens the workbook and reads the configured sheet
func (s *XLSXSource) Load() (*Catalog, error) {
	f, err := excelize.OpenFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheet := s.Sheet
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheet, err)
	}

	records, err := recordsFromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", s.Path, err)
	}
	return &Catalog{Source: s.Name(), Records: records}, nil
}

// WriteXLSX exports records to a new workbook, used for templates and tests
func WriteXLSX(path string, records []Record) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	header := []string{"organism", "antibiotic", "susceptibility"}
	for i, h := range header {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}
	for r, rec := range records {
		values := []string{rec.Organism, rec.Antibiotic, rec.Susceptibility}
		for c, v := range values {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("failed to write row %d: %w", r+2, err)
			}
		}
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}
