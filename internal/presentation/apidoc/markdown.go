// Package apidoc renders an API catalog as a Markdown reference.
package apidoc

import (
	"fmt"
	"strings"

	"github.com/aretw0/jsquery/pkg/jqapi"
)

var titles = map[jqapi.Category]string{
	jqapi.CategoryCore:      "Methods",
	jqapi.CategoryProperty:  "Properties",
	jqapi.CategoryCallbacks: "Callbacks object",
	jqapi.CategoryDeferred:  "Deferred object",
	jqapi.CategoryEvent:     "Event object",
	jqapi.CategoryStatic:    "Utilities",
}

// GenerateMarkdown documents every method and property of cat, grouped by category.
func GenerateMarkdown(cat *jqapi.Catalog) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# jQuery API %s\n", cat.API.Original())

	order, groups := cat.ByCategory()
	for _, c := range order {
		title, ok := titles[c]
		if !ok {
			title = string(c)
		}
		fmt.Fprintf(&sb, "\n## %s\n", title)
		for _, e := range groups[c] {
			writeEntry(&sb, e)
		}
	}
	return sb.String()
}

func writeEntry(sb *strings.Builder, e *jqapi.Entry) {
	fmt.Fprintf(sb, "\n### %s\n\n", e.Name)
	if e.IsDeprecated() {
		fmt.Fprintf(sb, "> **Deprecated:** %s.\n\n", e.DeprecationNotice())
	}
	if e.Description != "" {
		sb.WriteString(e.Description + "\n\n")
	}

	fmt.Fprintf(sb, "Go: `%s`", goName(e))
	if e.Return != "" {
		fmt.Fprintf(sb, " · returns `%s`", e.Return)
	}
	sb.WriteString("\n")

	if e.Type == jqapi.TypeProperty {
		if v := e.Added(); v != nil {
			fmt.Fprintf(sb, "\nSince jQuery %s.\n", v.Original())
		}
		return
	}

	sb.WriteString("\n| Signature | Since |\n|---|---|\n")
	for _, s := range e.Signatures {
		added := ""
		if s.Added != nil {
			added = s.Added.Original()
		}
		fmt.Fprintf(sb, "| `%s` | %s |\n", strings.ReplaceAll(e.Call(s), "|", `\|`), added)
	}
}

func goName(e *jqapi.Entry) string {
	switch {
	case e.IsFactory():
		return "jquery.JQuery"
	case e.IsStatic():
		return fmt.Sprintf("jquery.Static(%q)", strings.TrimPrefix(e.Name, jqapi.StaticPrefix))
	case e.Type == jqapi.TypeProperty:
		return e.Identifier() + "()"
	}
	return e.Identifier()
}
