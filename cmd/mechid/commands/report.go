/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: report.go
Description: CLI command that evaluates a batch of requests and writes one report per
request plus an index page.
*/

package commands

import (
	"context"
	"fmt"

	"github.com/kleascm/mechid/pkg/reporting"
	"github.com/spf13/cobra"
)

// RunReport evaluates every request in the input file and writes reports
func RunReport(cmd *cobra.Command, args []string) error {
	logger, err := SetupLogging()
	if err != nil {
		return err
	}
	defer logger.Close()

	formatFlag, _ := cmd.Flags().GetString("format")
	formats, err := reporting.ParseFormats(formatFlag)
	if err != nil {
		return err
	}
	outDir, _ := cmd.Flags().GetString("out")
	workers, _ := cmd.Flags().GetInt("workers")

	reqs, err := LoadRequests(args[0])
	if err != nil {
		return err
	}

	engine, err := BuildEngine(logger)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "📋 Evaluating %d requests from %s\n", len(reqs), args[0])

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	results := engine.EvaluateBatch(ctx, reqs, workers)

	generator := reporting.NewGenerator(outDir, logger.GetLogger())
	var reports []*reporting.Report
	failed := 0
	for _, res := range results {
		if res.Err != nil {
			fmt.Fprintf(out, "❌ Request %d (%s): %v\n", res.Index+1, res.Request.Organism, res.Err)
			logger.Warning("Report request rejected", map[string]interface{}{"index": res.Index, "organism": res.Request.Organism})
			failed++
			continue
		}
		report := reporting.NewReport(res.Request, res.Evaluation)
		paths, err := generator.Generate(report, formats...)
		if err != nil {
			return err
		}
		for _, p := range paths {
			fmt.Fprintf(out, "📄 %s\n", p)
		}
		reports = append(reports, report)
	}

	if len(reports) > 0 {
		index, err := generator.GenerateIndex(reports)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "🗂️  Index: %s\n", index)
	}

	logger.Info("Report batch complete", map[string]interface{}{
		"reports":    len(reports),
		"rejected":   failed,
		"output_dir": outDir,
	})
	fmt.Fprintf(out, "📊 %d reports written, %d requests rejected\n", len(reports), failed)
	if failed > 0 {
		return fmt.Errorf("%d of %d requests were rejected", failed, len(reqs))
	}
	return nil
}
