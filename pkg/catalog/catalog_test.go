/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: catalog_test.go
Description: Tests for CSV and XLSX cohort catalogs.
*/

package catalog

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/kleascm/mechid/pkg/knowledge"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cohortCSV = `Organism, Antibiotic, Susceptibility, Ward
E. coli,Ceftriaxone,R,ICU
Escherichia coli,Ciprofloxacin,S,ICU
E. coli,Ceftriaxone,S,Ward 4
,,,
Klebsiella pneumoniae,Meropenem,S
Nocardia farcinica,Linezolid,
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadCSV(t *testing.T) {
	c, err := Load(writeFile(t, "cohort.csv", cohortCSV))
	require.NoError(t, err)

	assert.Equal(t, 5, c.Len())
	assert.Contains(t, c.Source, "csv:")
	assert.Equal(t, Record{Organism: "Nocardia farcinica", Antibiotic: "Linezolid"}, c.Records[4])

	base := knowledge.Default()
	assert.Equal(t, []string{"Escherichia coli", "Klebsiella pneumoniae", "Nocardia farcinica"}, c.Organisms(base))
	assert.Equal(t, []string{"E. coli", "Escherichia coli", "Klebsiella pneumoniae", "Nocardia farcinica"}, c.Organisms(nil))
	assert.Equal(t, []string{"Ceftriaxone", "Ciprofloxacin"}, c.Antibiotics("ecoli", base))
	assert.Equal(t, []string{"Ceftriaxone"}, c.Antibiotics("E. coli", nil))
}

func TestLoadCSVMissingColumns(t *testing.T) {
	_, err := Load(writeFile(t, "bad.csv", "species,drug\nE. coli,Ceftriaxone\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "organism and antibiotic")
}

func TestXLSXRoundTrip(t *testing.T) {
	records := []Record{
		{Organism: "Pseudomonas aeruginosa", Antibiotic: "Cefepime", Susceptibility: "S"},
		{Organism: "Pseudomonas aeruginosa", Antibiotic: "Meropenem", Susceptibility: "R"},
		{Organism: "Enterococcus faecium", Antibiotic: "Vancomycin"},
	}
	path := filepath.Join(t.TempDir(), "cohort.xlsx")
	require.NoError(t, WriteXLSX(path, records))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, records, c.Records)
	assert.Equal(t, []string{"Cefepime", "Meropenem"}, c.Antibiotics("Pseudomonas aeruginosa", nil))

	_, err = NewXLSXSource(path, "NoSuchSheet").Load()
	assert.Error(t, err)
}

func TestUnsupportedFormat(t *testing.T) {
	_, err := SourceFor("cohort.json")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = Load("cohort.txt")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestLoadOrEmpty(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetLevel(logrus.DebugLevel)

	dir := t.TempDir()
	c := LoadOrEmpty(logger, "", filepath.Join(dir, "missing.csv"), filepath.Join(dir, "missing.xlsx"))
	assert.Equal(t, 0, c.Len())
	assert.NotNil(t, c.Records)
	assert.Contains(t, buf.String(), "Catalog unavailable")

	path := writeFile(t, "cohort.csv", cohortCSV)
	c = LoadOrEmpty(nil, filepath.Join(dir, "missing.csv"), path)
	assert.Equal(t, 5, c.Len())
	assert.Empty(t, Empty().Organisms(nil))
}
