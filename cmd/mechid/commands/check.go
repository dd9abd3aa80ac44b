/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: check.go
Description: CLI command that validates the knowledge base and any configured rule pack.
*/

package commands

import (
	"fmt"

	"github.com/kleascm/mechid/pkg/knowledge"
	"github.com/spf13/cobra"
)

// RunCheck lints the knowledge base and fails when errors are found
func RunCheck(cmd *cobra.Command, args []string) error {
	logger, err := SetupLogging()
	if err != nil {
		return err
	}
	defer logger.Close()

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "🔍 MechID - Knowledge Base Check")
	fmt.Fprintln(out, "===============================")
	fmt.Fprintln(out)

	base, err := LoadBase(logger)
	if err != nil {
		fmt.Fprintf(out, "❌ Rule pack: %v\n", err)
		return err
	}

	issues := base.Validate()
	errs, warnings := 0, 0
	for _, issue := range issues {
		icon := "⚠️ "
		if issue.Level == knowledge.LevelError {
			icon = "❌"
			errs++
		} else {
			warnings++
		}
		fmt.Fprintf(out, "%s %s\n", icon, issue)
		logger.LogValidation(issue.Organism, string(issue.Level), issue.Message)
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "📊 %d organisms checked: %d errors, %d warnings\n", base.Len(), errs, warnings)

	logger.Debug("Knowledge base check complete", map[string]interface{}{
		"organisms": base.Len(),
		"errors":    errs,
		"warnings":  warnings,
	})

	strict, _ := cmd.Flags().GetBool("strict")
	switch {
	case knowledge.HasErrors(issues):
		return fmt.Errorf("knowledge base has %d errors", errs)
	case strict && warnings > 0:
		return fmt.Errorf("knowledge base has %d warnings (strict)", warnings)
	}
	fmt.Fprintln(out, "✨ Knowledge base is valid.")
	return nil
}
