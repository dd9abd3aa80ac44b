/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: evaluate.go
Description: CLI command for evaluating one organism's susceptibility results. Prints
the consolidated table, findings and references as text, JSON or Markdown.
*/

package commands

import (
	"encoding/json"
	"fmt"

	"github.com/kleascm/mechid/pkg/interfaces"
	"github.com/kleascm/mechid/pkg/reporting"
	"github.com/kleascm/mechid/pkg/utils"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RunEvaluate evaluates a request built from flags or an input file
func RunEvaluate(cmd *cobra.Command, args []string) error {
	logger, err := SetupLogging()
	if err != nil {
		return err
	}
	defer logger.Close()

	req, err := requestFromFlags(cmd, args)
	if err != nil {
		return err
	}

	engine, err := BuildEngine(logger)
	if err != nil {
		return err
	}

	eval, err := engine.Evaluate(req)
	if err != nil {
		return err
	}

	format, _ := cmd.Flags().GetString("format")
	out := cmd.OutOrStdout()
	switch format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(eval); err != nil {
			return fmt.Errorf("failed to encode evaluation: %w", err)
		}
	case "markdown", "md":
		if err := reporting.WriteMarkdown(out, reporting.NewReport(req, eval)); err != nil {
			return err
		}
	case "text", "":
		fmt.Fprint(out, RenderEvaluation(eval))
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}

	if save, _ := cmd.Flags().GetBool("save"); save {
		path, err := utils.WriteResult(viper.GetString("output_dir"), eval.Organism, reporting.Version, eval)
		if err != nil {
			return err
		}
		logger.Info("Evaluation saved", map[string]interface{}{"organism": eval.Organism, "path": path})
		fmt.Fprintf(cmd.ErrOrStderr(), "💾 Saved evaluation to %s\n", path)
	}
	return nil
}

// requestFromFlags merges an optional input file with the organism argument, --result
// pairs and context flags. Flags win over the file.
func requestFromFlags(cmd *cobra.Command, args []string) (interfaces.Request, error) {
	var req interfaces.Request

	if input, _ := cmd.Flags().GetString("input"); input != "" {
		reqs, err := LoadRequests(input)
		if err != nil {
			return req, err
		}
		if len(reqs) != 1 {
			return req, fmt.Errorf("%s holds %d requests; use 'mechid report' for batches", input, len(reqs))
		}
		req = reqs[0]
	}

	if len(args) == 1 {
		req.Organism = args[0]
	}
	if req.Organism == "" {
		return req, fmt.Errorf("no organism given")
	}

	pairs, _ := cmd.Flags().GetStringArray("result")
	results, err := ParseResultFlags(pairs)
	if err != nil {
		return req, err
	}
	if req.Results == nil {
		req.Results = make(map[string]string, len(results))
	}
	for ab, call := range results {
		req.Results[ab] = call
	}

	if s := viper.GetString("syndrome"); s != "" {
		req.Syndrome = s
	}
	if s := viper.GetString("severity"); s != "" {
		req.Severity = s
	}
	return req, nil
}
