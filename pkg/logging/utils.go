/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: utils.go
Description: Log file management for MechID. Rotation, compression, retention and a
simple analyzer that counts levels and pipeline events across log files.
*/

package logging

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// LogManager rotates, compresses and prunes log files
type LogManager struct {
	logDir   string
	maxFiles int
	maxSize  int64
	compress bool
}

// NewLogManager creates a new log manager
func NewLogManager(logDir string, maxFiles int, maxSize int64, compress bool) *LogManager {
	return &LogManager{
		logDir:   logDir,
		maxFiles: maxFiles,
		maxSize:  maxSize,
		compress: compress,
	}
}

func (lm *LogManager) glob(withRotated bool) ([]string, error) {
	pattern := filePrefix + "_*.log"
	if withRotated {
		pattern += "*"
	}
	files, err := filepath.Glob(filepath.Join(lm.logDir, pattern))
	if err != nil {
		return nil, fmt.Errorf("failed to glob log files: %w", err)
	}
	return files, nil
}

// RotateLogs rotates log files that exceed the size limit
func (lm *LogManager) RotateLogs() error {
	files, err := lm.glob(false)
	if err != nil {
		return err
	}
	for _, file := range files {
		if err := lm.rotateFile(file); err != nil {
			return fmt.Errorf("failed to rotate file %s: %w", file, err)
		}
	}
	return nil
}

func (lm *LogManager) rotateFile(path string) error {
	stat, err := os.Stat(path)
	if err != nil {
		return err
	}
	if stat.Size() < lm.maxSize {
		return nil
	}

	rotated := fmt.Sprintf("%s.%s", path, time.Now().Format("2006-01-02_15-04-05"))
	if err := os.Rename(path, rotated); err != nil {
		return err
	}
	if lm.compress {
		return compressFile(rotated)
	}
	return nil
}

// compressFile gzips path into path.gz and removes the original
func compressFile(path string) error {
	source, err := os.Open(path)
	if err != nil {
		return err
	}
	defer source.Close()

	compressed, err := os.Create(path + ".gz")
	if err != nil {
		return err
	}
	defer compressed.Close()

	gz := gzip.NewWriter(compressed)
	if _, err := io.Copy(gz, source); err != nil {
		gz.Close()
		return err
	}
	if err := gz.Close(); err != nil {
		return err
	}
	return os.Remove(path)
}

// CleanupOldLogs removes the oldest files beyond the retention count
func (lm *LogManager) CleanupOldLogs() error {
	files, err := lm.glob(true)
	if err != nil {
		return err
	}
	if len(files) <= lm.maxFiles {
		return nil
	}

	sortByModTime(files)
	for _, f := range files[:len(files)-lm.maxFiles] {
		if err := os.Remove(f); err != nil {
			return fmt.Errorf("failed to remove file %s: %w", f, err)
		}
	}
	return nil
}

func sortByModTime(files []string) {
	mod := make(map[string]time.Time, len(files))
	for _, f := range files {
		if st, err := os.Stat(f); err == nil {
			mod[f] = st.ModTime()
		}
	}
	sort.SliceStable(files, func(i, j int) bool {
		return mod[files[i]].Before(mod[files[j]])
	})
}

// LogStats holds statistics about log files
type LogStats struct {
	TotalFiles        int       `json:"total_files"`
	TotalSize         int64     `json:"total_size"`
	CompressedFiles   int       `json:"compressed_files"`
	UncompressedFiles int       `json:"uncompressed_files"`
	OldestFile        time.Time `json:"oldest_file"`
	NewestFile        time.Time `json:"newest_file"`
}

// GetLogStats returns statistics about log files
func (lm *LogManager) GetLogStats() (*LogStats, error) {
	files, err := lm.glob(true)
	if err != nil {
		return nil, err
	}

	stats := &LogStats{TotalFiles: len(files)}
	for _, file := range files {
		stat, err := os.Stat(file)
		if err != nil {
			continue
		}
		stats.TotalSize += stat.Size()
		if stats.OldestFile.IsZero() || stat.ModTime().Before(stats.OldestFile) {
			stats.OldestFile = stat.ModTime()
		}
		if stat.ModTime().After(stats.NewestFile) {
			stats.NewestFile = stat.ModTime()
		}
		if strings.HasSuffix(file, ".gz") {
			stats.CompressedFiles++
		} else {
			stats.UncompressedFiles++
		}
	}
	return stats, nil
}

// LogAnalysis holds counts gathered from log files
type LogAnalysis struct {
	LogFiles     int   `json:"log_files"`
	TotalLines   int64 `json:"total_lines"`
	DebugCount   int64 `json:"debug_count"`
	InfoCount    int64 `json:"info_count"`
	WarningCount int64 `json:"warning_count"`
	ErrorCount   int64 `json:"error_count"`

	Evaluations      int64 `json:"evaluations"`
	UnknownOrganisms int64 `json:"unknown_organisms"`
	CautionsRaised   int64 `json:"cautions_raised"`
	RulePacks        int64 `json:"rule_packs"`
	Rejected         int64 `json:"rejected"`
}

// LogAnalyzer scans log files for levels and pipeline events
type LogAnalyzer struct {
	logDir string
}

// NewLogAnalyzer creates a new log analyzer
func NewLogAnalyzer(logDir string) *LogAnalyzer {
	return &LogAnalyzer{logDir: logDir}
}

// AnalyzeLogs analyzes every uncompressed log file in the directory
func (la *LogAnalyzer) AnalyzeLogs() (*LogAnalysis, error) {
	files, err := filepath.Glob(filepath.Join(la.logDir, filePrefix+"_*.log"))
	if err != nil {
		return nil, fmt.Errorf("failed to glob log files: %w", err)
	}

	analysis := &LogAnalysis{LogFiles: len(files)}
	for _, file := range files {
		if err := la.analyzeFile(file, analysis); err != nil {
			return nil, fmt.Errorf("failed to analyze file %s: %w", file, err)
		}
	}
	return analysis, nil
}

func (la *LogAnalyzer) analyzeFile(path string, analysis *LogAnalysis) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		analyzeLine(scanner.Text(), analysis)
	}
	return scanner.Err()
}

// analyzeLine counts one line. Text, JSON and custom formats all carry the level
// name and the message verbatim.
func analyzeLine(line string, a *LogAnalysis) {
	a.TotalLines++

	upper := strings.ToUpper(line)
	switch {
	case strings.Contains(upper, "DEBU"):
		a.DebugCount++
	case strings.Contains(upper, "INFO"):
		a.InfoCount++
	case strings.Contains(upper, "WARN"):
		a.WarningCount++
	case strings.Contains(upper, "ERRO"):
		a.ErrorCount++
	}

	switch {
	case strings.Contains(line, "Unknown organism evaluated"):
		a.Evaluations++
		a.UnknownOrganisms++
	case strings.Contains(line, "Evaluation raised cautions"):
		a.Evaluations++
		a.CautionsRaised++
	case strings.Contains(line, "Evaluation complete"):
		a.Evaluations++
	case strings.Contains(line, "Rule pack loaded"):
		a.RulePacks++
	case strings.Contains(line, "rejected"):
		a.Rejected++
	}
}

// Summary returns a human-readable summary
func (a *LogAnalysis) Summary() string {
	return fmt.Sprintf(
		"Log Analysis Summary:\n"+
			"  Files: %d\n"+
			"  Total Lines: %d\n"+
			"  Debug: %d  Info: %d  Warning: %d  Error: %d\n"+
			"  Evaluations: %d (unknown organism: %d, with cautions: %d)\n"+
			"  Rule packs loaded: %d\n"+
			"  Rejected requests: %d",
		a.LogFiles, a.TotalLines,
		a.DebugCount, a.InfoCount, a.WarningCount, a.ErrorCount,
		a.Evaluations, a.UnknownOrganisms, a.CautionsRaised,
		a.RulePacks, a.Rejected,
	)
}
