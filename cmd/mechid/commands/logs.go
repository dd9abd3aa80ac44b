/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: logs.go
Description: CLI command for log file maintenance and summaries.
*/

package commands

import (
	"fmt"

	"github.com/kleascm/mechid/pkg/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RunLogs rotates and prunes log files on request and prints a summary
func RunLogs(cmd *cobra.Command, args []string) error {
	logDir := viper.GetString("log_dir")
	if logDir == "" {
		return fmt.Errorf("no log directory configured (use --log-dir or MECHID_LOG_DIR)")
	}

	rotate, _ := cmd.Flags().GetBool("rotate")
	compress, _ := cmd.Flags().GetBool("compress")
	cleanup, _ := cmd.Flags().GetBool("cleanup")
	maxSize, _ := cmd.Flags().GetInt64("max-size")

	manager := logging.NewLogManager(logDir, viper.GetInt("log_max_files"), maxSize, compress)
	if rotate {
		if err := manager.RotateLogs(); err != nil {
			return err
		}
	}
	if cleanup {
		if err := manager.CleanupOldLogs(); err != nil {
			return err
		}
	}

	stats, err := manager.GetLogStats()
	if err != nil {
		return err
	}
	analysis, err := logging.NewLogAnalyzer(logDir).AnalyzeLogs()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "📁 %s: %d files (%d compressed), %d bytes\n", logDir, stats.TotalFiles, stats.CompressedFiles, stats.TotalSize)
	if !stats.OldestFile.IsZero() {
		fmt.Fprintf(out, "   %s to %s\n", stats.OldestFile.Format("2006-01-02 15:04"), stats.NewestFile.Format("2006-01-02 15:04"))
	}
	fmt.Fprintln(out, analysis.Summary())
	return nil
}
