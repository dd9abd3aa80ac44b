/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: logger_test.go
Description: Tests for logger configuration, formatters, the async queue and log
file maintenance.
*/

package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *LoggerConfig)
		wantErr string
	}{
		{"default", func(c *LoggerConfig) {}, ""},
		{"bad format", func(c *LoggerConfig) { c.Format = "xml" }, "unsupported log format"},
		{"bad level", func(c *LoggerConfig) { c.Level = "loud" }, "unsupported log level"},
		{"files without retention", func(c *LoggerConfig) { c.OutputDir = "logs"; c.MaxFiles = 0 }, "max_files"},
		{"files without size", func(c *LoggerConfig) { c.OutputDir = "logs"; c.MaxSize = 0 }, "max_size"},
		{"console ignores retention", func(c *LoggerConfig) { c.MaxFiles = 0 }, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConfig()
			tt.mutate(c)
			err := c.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	_, err := NewLogger(&LoggerConfig{Level: LogLevelInfo, Format: "xml"})
	assert.Error(t, err)
}

func newBufferedLogger(t *testing.T, format LogFormat) (*Logger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Format = format
	cfg.Colors = false
	cfg.Timestamp = false
	cfg.Output = &buf
	l, err := NewLogger(cfg)
	require.NoError(t, err)
	return l, &buf
}

func TestPipelineFormatter(t *testing.T) {
	l, buf := newBufferedLogger(t, LogFormatCustom)
	l.LogRulePack("pack.yaml", 2, 1, nil)
	l.LogCatalog("csv:cohort.csv", 10, 3, map[string]interface{}{"skipped": 0})
	l.LogValidation("Escherichia coli", "warning", "cascade cycle")
	l.LogValidation("Escherichia coli", "error", "unknown rule")
	require.NoError(t, l.Close())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "INFO [RULES] Rule pack loaded aliases=1 organisms=2 path=pack.yaml", lines[0])
	assert.Equal(t, "INFO [CATALOG] Catalog loaded organisms=3 records=10 skipped=0 source=csv:cohort.csv", lines[1])
	assert.Equal(t, "WARNING [CHECK] Validation: cascade cycle organism=Escherichia coli", lines[2])
	assert.Equal(t, "ERROR [CHECK] Validation: unknown rule organism=Escherichia coli", lines[3])
}

func TestStageTag(t *testing.T) {
	tests := map[string]string{
		"Evaluation complete":        "EVAL",
		"Unknown organism evaluated": "EVAL",
		"Cascade inference complete": "CASCADE",
		"Server listening":           "HTTP",
		"HTTP request served":        "HTTP",
		"something else":             "",
	}
	for msg, want := range tests {
		assert.Equal(t, want, stageTag(msg), msg)
	}
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "1.5s", formatValue(1500*time.Millisecond))
	assert.Equal(t, "a,b", formatValue([]string{"a", "b"}))
	assert.Equal(t, strings.Repeat("x", 60)+"...", formatValue(strings.Repeat("x", 70)))
	assert.Equal(t, "42", formatValue(42))
}

func TestAsyncQueueIsDrainedOnClose(t *testing.T) {
	l, buf := newBufferedLogger(t, LogFormatJSON)
	l.GetLogger().SetLevel(logrus.DebugLevel)

	for i := 0; i < 50; i++ {
		l.Info("queued", map[string]interface{}{"i": i})
	}
	l.Debug("debug line", nil)
	l.Warning("warn line", nil)
	l.Error("error line", nil)
	require.NoError(t, l.Close())
	require.NoError(t, l.Close())

	out := buf.String()
	assert.Equal(t, 50, strings.Count(out, `"msg":"queued"`))
	assert.Contains(t, out, `"msg":"debug line"`)
	assert.Contains(t, out, `"level":"warning"`)
	assert.Contains(t, out, `"level":"error"`)

	// logging after Close falls back to synchronous writes
	l.Info("late", nil)
	assert.Contains(t, buf.String(), `"msg":"late"`)
}

func TestFileOutputAndAnalyzer(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultConfig()
	cfg.Format = LogFormatText
	cfg.Colors = false
	cfg.OutputDir = dir
	cfg.Output = &bytes.Buffer{}

	l, err := NewLogger(cfg)
	require.NoError(t, err)
	require.NotEmpty(t, l.FilePath())

	logger := l.GetLogger()
	logger.Info("Evaluation complete")
	logger.Warn("Evaluation raised cautions")
	logger.Warn("Unknown organism evaluated")
	logger.Warn("Batch request rejected: bad call")
	l.LogRulePack("pack.yaml", 1, 0, nil)
	require.NoError(t, l.Close())

	analysis, err := NewLogAnalyzer(dir).AnalyzeLogs()
	require.NoError(t, err)
	assert.Equal(t, 1, analysis.LogFiles)
	assert.EqualValues(t, 5, analysis.TotalLines)
	assert.EqualValues(t, 2, analysis.InfoCount)
	assert.EqualValues(t, 3, analysis.WarningCount)
	assert.EqualValues(t, 3, analysis.Evaluations)
	assert.EqualValues(t, 1, analysis.UnknownOrganisms)
	assert.EqualValues(t, 1, analysis.CautionsRaised)
	assert.EqualValues(t, 1, analysis.RulePacks)
	assert.EqualValues(t, 1, analysis.Rejected)
	assert.Contains(t, analysis.Summary(), "Evaluations: 3 (unknown organism: 1, with cautions: 1)")
}

func writeLog(t *testing.T, dir, name, content string, age time.Duration) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	mod := time.Now().Add(-age)
	require.NoError(t, os.Chtimes(path, mod, mod))
	return path
}

func TestLogManager(t *testing.T) {
	dir := t.TempDir()
	big := writeLog(t, dir, "mechid_2024-01-01_00-00-00.log", strings.Repeat("x", 64), 3*time.Hour)
	writeLog(t, dir, "mechid_2024-01-02_00-00-00.log", "small", 2*time.Hour)
	writeLog(t, dir, "other.log", "ignored", time.Hour)

	lm := NewLogManager(dir, 1, 32, true)
	require.NoError(t, lm.RotateLogs())

	_, err := os.Stat(big)
	assert.True(t, os.IsNotExist(err), "oversized log should be rotated away")
	gz, err := filepath.Glob(big + ".*.gz")
	require.NoError(t, err)
	assert.Len(t, gz, 1)

	stats, err := lm.GetLogStats()
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalFiles)
	assert.Equal(t, 1, stats.CompressedFiles)
	assert.Equal(t, 1, stats.UncompressedFiles)

	require.NoError(t, lm.CleanupOldLogs())
	stats, err = lm.GetLogStats()
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalFiles)

	_, err = os.Stat(filepath.Join(dir, "other.log"))
	assert.NoError(t, err)
}
