package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/jsquery/pkg/jqapi"
	"github.com/aretw0/jsquery/pkg/jquery"
)

// GenerateMermaid produces a Mermaid flowchart of a chain document.
// Node shapes follow the part of the chain:
// - Root: ((Circle))
// - Plugin call: [[Subroutine]]
// - Catalog call: [Rectangle]
// Nested chains passed as arguments are drawn with dotted "arg N" edges.
// When cat is not nil, calls to deprecated methods get the deprecated style.
func GenerateMermaid(spec jquery.ChainSpec, cat *jqapi.Catalog) string {
	g := &mermaid{cat: cat}
	g.sb.WriteString("graph LR\n")
	g.chain(spec)

	if len(g.deprecated) > 0 {
		g.sb.WriteString("\n    %% Deprecated calls\n")
		g.sb.WriteString("    classDef deprecated fill:#fee2e2,stroke:#b91c1c,stroke-dasharray:4 2,color:#000;\n")
		for _, id := range g.deprecated {
			fmt.Fprintf(&g.sb, "    class %s deprecated;\n", id)
		}
	}
	return g.sb.String()
}

type mermaid struct {
	sb         strings.Builder
	cat        *jqapi.Catalog
	next       int
	deprecated []string
}

// chain writes the nodes of spec and returns the id of its root node.
func (g *mermaid) chain(spec jquery.ChainSpec) string {
	root := g.node("((", rootLabel(spec.Root), "))")
	g.nested(root, spec.Root.Args)

	prev := root
	for _, c := range spec.Calls {
		opener, closer := "[", "]"
		if c.Plugin {
			opener, closer = "[[", "]]"
		}
		id := g.node(opener, "."+c.Method+"()", closer)
		fmt.Fprintf(&g.sb, "    %s --> %s\n", prev, id)
		if !c.Plugin && g.isDeprecated(c.Method) {
			g.deprecated = append(g.deprecated, id)
		}
		g.nested(id, c.Args)
		prev = id
	}
	return root
}

func (g *mermaid) nested(from string, args []jquery.ChainArg) {
	for i, a := range args {
		if a.Chain == nil {
			continue
		}
		to := g.chain(*a.Chain)
		fmt.Fprintf(&g.sb, "    %s -. \"arg %d\" .-> %s\n", to, i+1, from)
	}
}

func (g *mermaid) node(opener, label, closer string) string {
	g.next++
	id := fmt.Sprintf("n%d", g.next)
	fmt.Fprintf(&g.sb, "    %s%s\"%s\"%s\n", id, opener, sanitizeLabel(label), closer)
	return id
}

func (g *mermaid) isDeprecated(method string) bool {
	if g.cat == nil {
		return false
	}
	e, ok := g.cat.Lookup(method)
	return ok && e.IsDeprecated()
}

func rootLabel(r jquery.ChainRoot) string {
	switch r.Kind {
	case "document", "window", "this":
		return "$(" + r.Kind + ")"
	case "expr":
		return r.Value
	case "static":
		return "$." + r.Value + "()"
	case "id":
		return "$('#" + r.Value + "')"
	case "class":
		return "$('." + r.Value + "')"
	}
	return "$('" + r.Value + "')"
}

// sanitizeLabel keeps labels inside Mermaid's double quotes.
func sanitizeLabel(s string) string {
	s = strings.ReplaceAll(s, "\"", "'")
	s = strings.ReplaceAll(s, "<", "&lt;")
	return strings.ReplaceAll(s, ">", "&gt;")
}
