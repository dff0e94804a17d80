// Package codegen writes the Go source of the per-method jQuery builder
// methods from an API catalog.
package codegen

import (
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/jsquery/pkg/jqapi"
	"golang.org/x/tools/imports"
)

// FileName is the name of the generated file inside pkg/jquery.
const FileName = "invocation_gen.go"

// commentWidth is the maximum length of a wrapped doc comment line, excluding "// ".
const commentWidth = 77

// Generate writes the formatted Go source of one *Invocation method per
// instance method of cat.
func Generate(cat *jqapi.Catalog, w io.Writer) error {
	src, err := Source(cat)
	if err != nil {
		return err
	}
	if _, err := w.Write(src); err != nil {
		return fmt.Errorf("failed to write generated source: %w", err)
	}
	return nil
}

// Source returns the formatted Go source for cat.
func Source(cat *jqapi.Catalog) ([]byte, error) {
	raw := render(cat)
	src, err := imports.Process(FileName, raw, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to format generated source: %w", err)
	}
	return src, nil
}

func render(cat *jqapi.Catalog) []byte {
	var sb strings.Builder
	sb.WriteString("// Code generated by jsquery generate. DO NOT EDIT.\n\n")
	sb.WriteString("package jquery\n")
	for _, e := range cat.Methods() {
		sb.WriteString("\n")
		writeMethod(&sb, e)
	}
	return []byte(sb.String())
}

func writeMethod(sb *strings.Builder, e *jqapi.Entry) {
	id := e.Identifier()
	fmt.Fprintf(sb, "// %s appends .%s(...) to the chain.\n", id, e.JSName())
	if e.Description != "" {
		for _, line := range wrap(e.Description, commentWidth) {
			fmt.Fprintf(sb, "// %s\n", line)
		}
	}
	sb.WriteString("//\n")
	if added := e.Added(); added != nil {
		fmt.Fprintf(sb, "// Since jQuery %s. Signatures:\n", added.Original())
	} else {
		sb.WriteString("// Signatures:\n")
	}
	sb.WriteString("//\n")
	for _, sig := range e.Signatures {
		fmt.Fprintf(sb, "//\t%s\n", e.Call(sig))
	}
	if e.IsDeprecated() {
		sb.WriteString("//\n")
		fmt.Fprintf(sb, "// Deprecated: %s.\n", e.DeprecationNotice())
	}
	fmt.Fprintf(sb, "func (inv *Invocation) %s(args ...Arg) *Invocation {\n", id)
	fmt.Fprintf(sb, "\treturn inv.call(%q, args)\n", e.Name)
	sb.WriteString("}\n")
}

// wrap splits text into lines of at most width bytes, breaking at spaces.
// A single word longer than width gets a line of its own.
func wrap(text string, width int) []string {
	var lines []string
	var cur strings.Builder
	for _, word := range strings.Fields(text) {
		if cur.Len() > 0 && cur.Len()+1+len(word) > width {
			lines = append(lines, cur.String())
			cur.Reset()
		}
		if cur.Len() > 0 {
			cur.WriteByte(' ')
		}
		cur.WriteString(word)
	}
	if cur.Len() > 0 {
		lines = append(lines, cur.String())
	}
	return lines
}
