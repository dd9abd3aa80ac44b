/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: results_writer.go
Description: Writes evaluation results under a results directory, one subdirectory
per organism, with timestamped and versioned JSON file names.
*/

package utils

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// WriteResult writes result as JSON to <root>/<category>/<timestamp>_<category>_v<version>.json
// and returns the file path.
func WriteResult(root, category, version string, result interface{}) (string, error) {
	if root == "" {
		root = "results"
	}
	category = Slug(category)
	if category == "" {
		category = "unknown"
	}

	dir := filepath.Join(root, category)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create results directory: %w", err)
	}

	// e.g. 2024-06-11_01-30-00.000_escherichia-coli_v1.0.0.json
	timestamp := time.Now().Format("2006-01-02_15-04-05.000")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s_v%s.json", timestamp, category, version))

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal result: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write result file: %w", err)
	}
	return path, nil
}

// Slug lowercases s and joins alphanumeric runs with dashes
func Slug(s string) string {
	fields := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9')
	})
	return strings.Join(fields, "-")
}
