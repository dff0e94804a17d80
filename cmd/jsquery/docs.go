package main

import (
	"fmt"

	"github.com/aretw0/jsquery/internal/presentation/apidoc"
	"github.com/aretw0/jsquery/internal/presentation/tui"
	"github.com/spf13/cobra"
)

func newDocsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "docs",
		Short: "Print the API reference of the catalog",
		Long: `Prints a Markdown reference of every catalog entry with its Go name.
On a terminal the Markdown is rendered; otherwise, or with --raw, it is
printed as is.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc := apidoc.GenerateMarkdown(a.catalog)
			if raw, _ := cmd.Flags().GetBool("raw"); raw {
				fmt.Fprint(cmd.OutOrStdout(), doc)
				return nil
			}
			out, err := tui.NewRenderer()(doc)
			if err != nil {
				return fmt.Errorf("failed to render docs: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().Bool("raw", false, "Print Markdown without rendering it")
	return cmd
}
