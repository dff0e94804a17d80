package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/aretw0/jsquery/pkg/jqapi"
	"github.com/spf13/cobra"
)

func newMethodsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "methods [name]",
		Short: "List or describe the documented jQuery API",
		Long: `Without arguments, lists the methods and properties of the catalog.
With a name, such as addClass or jQuery.ajax, describes that entry.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			asJSON, _ := cmd.Flags().GetBool("json")
			out := cmd.OutOrStdout()

			if len(args) == 1 {
				e, ok := a.catalog.Lookup(args[0])
				if !ok {
					return fmt.Errorf("%w: %s", jqapi.ErrUnknownMethod, args[0])
				}
				if asJSON {
					return writeJSON(out, e.Summary())
				}
				describe(out, e.Summary())
				return nil
			}

			category, _ := cmd.Flags().GetString("category")
			deprecated, _ := cmd.Flags().GetBool("deprecated")
			var list []jqapi.Summary
			for _, e := range a.catalog.Entries() {
				switch {
				case e.Type == jqapi.TypeSelector:
				case category != "" && string(e.Category()) != category:
				case deprecated && !e.IsDeprecated():
				default:
					list = append(list, e.Summary())
				}
			}
			if asJSON {
				return writeJSON(out, list)
			}

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tCATEGORY\tSINCE\tDEPRECATED")
			for _, s := range list {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", s.Name, s.Category, s.Added, dash(s.Deprecated))
			}
			return w.Flush()
		},
	}
	cmd.Flags().String("category", "", "Only list one category (core, property, callbacks, deferred, event, static)")
	cmd.Flags().Bool("deprecated", false, "Only list deprecated entries")
	cmd.Flags().Bool("json", false, "Print JSON instead of a table")
	return cmd
}

func describe(w io.Writer, s jqapi.Summary) {
	fmt.Fprintf(w, "%s (%s, %s)\n", s.Name, s.Type, s.Category)
	if s.Description != "" {
		fmt.Fprintf(w, "  %s\n", s.Description)
	}
	fmt.Fprintf(w, "  Go: %s\n", s.Identifier)
	if s.Return != "" {
		fmt.Fprintf(w, "  Returns: %s\n", s.Return)
	}
	fmt.Fprintf(w, "  Since: %s\n", s.Added)
	if s.Deprecated != "" {
		fmt.Fprintf(w, "  Deprecated: %s\n", s.Deprecated)
	}
	if s.Removed != "" {
		fmt.Fprintf(w, "  Removed: %s\n", s.Removed)
	}
	if len(s.Signatures) > 0 {
		fmt.Fprintf(w, "  Signatures:\n    %s\n", strings.Join(s.Signatures, "\n    "))
	}
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
