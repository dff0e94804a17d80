package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/aretw0/jsquery/internal/codegen"
	"github.com/spf13/cobra"
)

func newGenerateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the builder methods from the catalog",
		Long: `Writes one *Invocation method per catalog method to ` + codegen.FileName + `
in the output directory. Deprecated entries get a "Deprecated:" doc line.
Use -o - to print the source instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("output")
			if dir == "-" {
				return codegen.Generate(a.catalog, cmd.OutOrStdout())
			}

			src, err := codegen.Source(a.catalog)
			if err != nil {
				return err
			}
			path := filepath.Join(dir, codegen.FileName)
			if err := os.WriteFile(path, src, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", path, err)
			}
			a.logger.Info("generated builder methods", "file", path, "methods", len(a.catalog.Methods()))
			return nil
		},
	}
	cmd.Flags().StringP("output", "o", filepath.Join("pkg", "jquery"), "Output directory, or - for stdout")
	return cmd
}
