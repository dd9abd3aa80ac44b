/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: organisms.go
Description: CLI commands that list organisms and show an organism's panel, intrinsic
resistance and cascade rules.
*/

package commands

import (
	"fmt"
	"strings"

	"github.com/kleascm/mechid/pkg/knowledge"
	"github.com/spf13/cobra"
)

// ListOrganisms prints the knowledge base grouped by pathogen group, followed by any
// organisms that only appear in the catalog
func ListOrganisms(cmd *cobra.Command, args []string) error {
	logger, err := SetupLogging()
	if err != nil {
		return err
	}
	defer logger.Close()

	base, err := LoadBase(logger)
	if err != nil {
		return err
	}
	cat, err := LoadCatalog(logger, base)
	if err != nil {
		return err
	}

	group, _ := cmd.Flags().GetString("group")
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, titleStyle.Render("🦠 MechID - Supported Organisms"))
	fmt.Fprintln(out)

	listed := 0
	for _, g := range base.Groups() {
		if group != "" && !strings.EqualFold(string(g), group) {
			continue
		}
		fmt.Fprintln(out, headingStyle.Render(string(g)))
		for _, name := range base.ByGroup(g) {
			fmt.Fprintf(out, "  • %s\n", name)
			listed++
		}
		fmt.Fprintln(out)
	}
	if group != "" && listed == 0 {
		return fmt.Errorf("unknown group: %s", group)
	}

	if group == "" {
		var extra []string
		for _, name := range cat.Organisms(base) {
			if _, ok := base.Lookup(name); !ok {
				extra = append(extra, name)
			}
		}
		if len(extra) > 0 {
			fmt.Fprintln(out, headingStyle.Render("Catalog only (no rules)"))
			for _, name := range extra {
				fmt.Fprintf(out, "  • %s\n", mutedStyle.Render(name))
			}
			fmt.Fprintln(out)
		}
	}

	fmt.Fprintf(out, "📊 %d organisms with rules\n", base.Len())
	return nil
}

// ShowPanel prints the knowledge held for one organism
func ShowPanel(cmd *cobra.Command, args []string) error {
	logger, err := SetupLogging()
	if err != nil {
		return err
	}
	defer logger.Close()

	base, err := LoadBase(logger)
	if err != nil {
		return err
	}

	org, ok := base.Lookup(args[0])
	if !ok {
		return fmt.Errorf("unknown organism: %s", args[0])
	}
	fmt.Fprint(cmd.OutOrStdout(), renderPanel(org))
	return nil
}

func renderPanel(org *knowledge.Organism) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("🧫 " + org.Name))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(fmt.Sprintf("Group: %s  Template: %s", org.Group, org.TemplateName())))
	b.WriteString("\n\n")

	rows := make([][]string, len(org.Panel))
	for i, ab := range org.Panel {
		intrinsic := ""
		if org.IsIntrinsic(ab) {
			intrinsic = "R (intrinsic)"
		}
		rows[i] = []string{ab, intrinsic}
	}
	b.WriteString(table([]string{"Antibiotic", "Intrinsic"}, rows, nil))

	b.WriteString("\n")
	b.WriteString(headingStyle.Render("Cascade rules"))
	b.WriteString("\n")
	if len(org.Cascade) == 0 {
		b.WriteString(mutedStyle.Render("  None."))
		b.WriteString("\n")
	}
	for i, rule := range org.Cascade {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, rule)
	}
	return b.String()
}
