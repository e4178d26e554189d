package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/CodMac/go-treesitter-fht-analyzer/rule"
)

func newRulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "Lists the built-in rules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := rule.BuildRegistry(rule.Settings{})
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tCATEGORY\tSEVERITY\tTITLE")
			for _, d := range registry.Descriptors() {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", d.ID, d.Category, d.Severity, d.Title)
			}
			return tw.Flush()
		},
	}
}
