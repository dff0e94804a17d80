package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRenderCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a chain spec to JavaScript",
		Long: `Reads a chain spec in YAML or JSON from file, or from stdin when no file
is given, and prints the generated JavaScript.

Example:

  echo '{"root":{"kind":"id","value":"main"},"calls":[{"method":"addClass","args":[{"class":"on"}]}]}' | jsquery render`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readInput(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			res, err := a.engine().RenderDocument(cmd.Context(), doc)
			if err != nil {
				return err
			}
			if showKey, _ := cmd.Flags().GetBool("key"); showKey {
				a.logger.Info("rendered chain", "key", res.Key)
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.Code)
			return nil
		},
	}
	cmd.Flags().Bool("pretty", false, "Indent and align the output")
	cmd.Flags().String("indent", "  ", "Indentation used with --pretty")
	cmd.Flags().Bool("comments", false, "Keep comments in the output")
	cmd.Flags().Bool("dollar", true, "Use $ instead of jQuery as the function name")
	cmd.Flags().Bool("key", false, "Log the cache key of the chain")
	bindFlag(cmd.Flags(), "pretty", "render.pretty")
	bindFlag(cmd.Flags(), "indent", "render.indent")
	bindFlag(cmd.Flags(), "comments", "render.comments")
	bindFlag(cmd.Flags(), "dollar", "render.dollar")
	return cmd
}
