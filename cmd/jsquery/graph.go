package main

import (
	"fmt"

	"github.com/aretw0/jsquery/internal/presentation/graph"
	"github.com/aretw0/jsquery/pkg/jquery"
	"github.com/spf13/cobra"
)

func newGraphCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "graph [file]",
		Short: "Export a chain spec as a Mermaid diagram",
		Long: `Reads a chain spec and outputs a Mermaid diagram (graph LR) of its calls.
Nested chains passed as arguments hang off the call that receives them and
deprecated calls are highlighted.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readInput(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			spec, err := jquery.ParseChainSpec(doc)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), graph.GenerateMermaid(spec, a.catalog))
			return nil
		},
	}
}
