/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: main.go
Description: Command-line interface for MechID. Evaluates antimicrobial susceptibility
results, lists organisms and panels, validates the knowledge base, writes reports and
serves the JSON API.
*/

package main

import (
	"fmt"
	"os"

	"github.com/kleascm/mechid/cmd/mechid/commands"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "mechid",
		Short: "MechID - antimicrobial susceptibility interpretation",
		Long: `MechID interprets antimicrobial susceptibility results for a chosen organism.
It applies intrinsic resistance and cascade rules to fill in untested antibiotics,
describes likely resistance mechanisms, suggests therapy and cites the literature.`,
		Version:       "1.0.0",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return commands.LoadConfig()
		},
	}

	// Configuration and logging
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "Configuration file path (yaml, json or toml)")
	flags.String("log-level", "warn", "Logging level (debug, info, warn, error)")
	flags.String("log-format", "custom", "Log format (text, json, custom)")
	flags.String("log-dir", "", "Log output directory (empty = console only)")
	flags.Int("log-max-files", 10, "Maximum number of log files to keep")

	// Knowledge and inference
	flags.String("rule-pack", "", "YAML rule pack that extends or overrides the built-in knowledge base")
	flags.String("catalog", "", "Cohort catalog file (csv or xlsx) used for organism listings")
	flags.String("inference-mode", "single-pass", "Cascade inference mode (single-pass, fixpoint)")

	viper.BindPFlag("config", flags.Lookup("config"))
	viper.BindPFlag("log_level", flags.Lookup("log-level"))
	viper.BindPFlag("log_format", flags.Lookup("log-format"))
	viper.BindPFlag("log_dir", flags.Lookup("log-dir"))
	viper.BindPFlag("log_max_files", flags.Lookup("log-max-files"))
	viper.BindPFlag("rule_pack", flags.Lookup("rule-pack"))
	viper.BindPFlag("catalog_file", flags.Lookup("catalog"))
	viper.BindPFlag("inference_mode", flags.Lookup("inference-mode"))

	rootCmd.AddCommand(
		newEvaluateCommand(),
		newReportCommand(),
		newOrganismsCommand(),
		newPanelCommand(),
		newCheckCommand(),
		newServeCommand(),
		newLogsCommand(),
	)
	return rootCmd
}

func newEvaluateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "evaluate [organism]",
		Short: "Evaluate susceptibility results for one organism",
		Long: `Evaluate susceptibility results for one organism. Results are given as
--result "Antibiotic=Call" (call is S, I, R or the full word) or read from an input file.

Example:
  mechid evaluate "E. coli" --result "Ceftriaxone=R" --result "Piperacillin/Tazobactam=S" --syndrome bloodstream`,
		Args: cobra.MaximumNArgs(1),
		RunE: commands.RunEvaluate,
	}

	cmd.Flags().StringArrayP("result", "r", nil, `Susceptibility result "Antibiotic=Call" (repeatable)`)
	cmd.Flags().StringP("input", "i", "", "YAML or JSON input file with organism, results and context")
	cmd.Flags().String("syndrome", "", "Clinical syndrome (bloodstream, pneumonia, cystitis, complicated-uti, intra-abdominal, cns, endocarditis, skin-soft-tissue, bone-joint)")
	cmd.Flags().String("severity", "", "Severity (mild, severe)")
	cmd.Flags().StringP("format", "f", "text", "Output format (text, json, markdown)")
	cmd.Flags().Bool("save", false, "Also save the evaluation as JSON under the output directory")
	cmd.Flags().String("output-dir", "results", "Directory for saved evaluations")

	viper.BindPFlag("syndrome", cmd.Flags().Lookup("syndrome"))
	viper.BindPFlag("severity", cmd.Flags().Lookup("severity"))
	viper.BindPFlag("output_dir", cmd.Flags().Lookup("output-dir"))
	return cmd
}

func newReportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report <input>",
		Short: "Write HTML, Markdown or JSON reports for one or more requests",
		Long: `Evaluate every request in an input file and write one report per request,
plus an index page. The input file holds a single request or a "requests:" list.`,
		Args: cobra.ExactArgs(1),
		RunE: commands.RunReport,
	}

	cmd.Flags().StringP("out", "o", "./reports", "Output directory for reports")
	cmd.Flags().StringP("format", "f", "html", "Report formats (html, markdown, json, all or a comma-separated list)")
	cmd.Flags().Int("workers", 0, "Parallel evaluations (0 = auto-detect)")
	return cmd
}

func newOrganismsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "organisms",
		Short: "List supported organisms",
		RunE:  commands.ListOrganisms,
	}
	cmd.Flags().StringP("group", "g", "", "Only list one group (Gram-negatives, Staphylococci, Enterococcus, Streptococcus)")
	return cmd
}

func newPanelCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "panel <organism>",
		Short: "Show the antibiotic panel, intrinsic resistance and cascade rules for an organism",
		Args:  cobra.ExactArgs(1),
		RunE:  commands.ShowPanel,
	}
}

func newCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate the knowledge base and any configured rule pack",
		Long: `Validate the knowledge base: rule arity, unknown rule kinds, self references,
references outside the panel, cascade cycles and dangling aliases. Exits non-zero
when errors are found. Useful in CI for rule pack changes.`,
		RunE: commands.RunCheck,
	}
	cmd.Flags().Bool("strict", false, "Treat warnings as errors")
	return cmd
}

func newServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the JSON API",
		RunE:  commands.RunServe,
	}
	cmd.Flags().String("addr", ":8080", "Listen address")
	cmd.Flags().Bool("metrics", true, "Expose Prometheus metrics on /metrics")

	viper.BindPFlag("server.addr", cmd.Flags().Lookup("addr"))
	viper.BindPFlag("metrics.enabled", cmd.Flags().Lookup("metrics"))
	return cmd
}

func newLogsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Summarise, rotate and prune log files in the log directory",
		RunE:  commands.RunLogs,
	}
	cmd.Flags().Bool("rotate", false, "Rotate files over the size limit")
	cmd.Flags().Bool("compress", false, "Gzip rotated files")
	cmd.Flags().Bool("cleanup", false, "Remove the oldest files beyond --log-max-files")
	cmd.Flags().Int64("max-size", 100*1024*1024, "Rotation size limit in bytes")
	return cmd
}
