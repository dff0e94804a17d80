package jscode

import (
	"fmt"
	"strings"
)

// Settings control how a tree is printed.
type Settings struct {
	// IndentAndAlign enables newlines and indentation.
	IndentAndAlign bool
	// IndentString is repeated once per nesting level.
	IndentString string
	// NewLine is written after statements when IndentAndAlign is set.
	NewLine string
	// Comments keeps comment statements in the output.
	Comments bool
}

// Minimal returns settings producing the smallest output: one line, no comments.
func Minimal() Settings {
	return Settings{}
}

// Pretty returns settings producing indented, commented output.
func Pretty() Settings {
	return Settings{
		IndentAndAlign: true,
		IndentString:   "  ",
		NewLine:        "\n",
		Comments:       true,
	}
}

// Generatable is implemented by every node that can print itself.
type Generatable interface {
	Generate(f *Formatter)
}

// Statement is implemented by nodes that can appear in a Block.
type Statement interface {
	State(f *Formatter)
}

// Formatter accumulates JavaScript source text.
// The first error reported through Fail is kept, later ones are dropped.
type Formatter struct {
	sb       strings.Builder
	settings Settings
	level    int
	indent   string
	atBOL    bool
	err      error
}

// NewFormatter creates a formatter with the given settings.
func NewFormatter(s Settings) *Formatter {
	return &Formatter{settings: s, atBOL: true}
}

// Settings returns the settings in use.
func (f *Formatter) Settings() Settings {
	return f.settings
}

// Plain writes text verbatim, preceded by indentation at the beginning of a line.
func (f *Formatter) Plain(s string) *Formatter {
	if f.atBOL {
		if f.level > 0 {
			f.sb.WriteString(f.indent)
		}
		f.atBOL = false
	}
	f.sb.WriteString(s)
	return f
}

// NL ends the current line. It is a no-op in minimal mode.
func (f *Formatter) NL() *Formatter {
	if f.settings.IndentAndAlign {
		f.sb.WriteString(f.settings.NewLine)
		f.atBOL = true
	}
	return f
}

// Indent increases the nesting level. It is a no-op in minimal mode.
func (f *Formatter) Indent() *Formatter {
	if f.settings.IndentAndAlign {
		f.level++
		f.indent += f.settings.IndentString
	}
	return f
}

// Outdent decreases the nesting level. It is a no-op in minimal mode.
func (f *Formatter) Outdent() *Formatter {
	if f.settings.IndentAndAlign && f.level > 0 {
		f.level--
		f.indent = f.indent[:len(f.indent)-len(f.settings.IndentString)]
	}
	return f
}

// Generatable asks g to print itself.
func (f *Formatter) Generatable(g Generatable) *Formatter {
	g.Generate(f)
	return f
}

// List prints expressions separated by commas.
func (f *Formatter) List(items []Expression) *Formatter {
	for i, item := range items {
		if i > 0 {
			f.Plain(",")
		}
		item.Generate(f)
	}
	return f
}

// Stmt asks s to print itself as a statement.
func (f *Formatter) Stmt(s Statement) *Formatter {
	s.State(f)
	return f
}

// Fail records err unless an earlier error was already recorded.
func (f *Formatter) Fail(err error) {
	if f.err == nil && err != nil {
		f.err = err
	}
}

// Err returns the first recorded error.
func (f *Formatter) Err() error {
	return f.err
}

// String returns the text written so far.
func (f *Formatter) String() string {
	return f.sb.String()
}

// Render prints g with the given settings.
// It returns the first error found in the tree together with the partial output.
func Render(g Generatable, s Settings) (string, error) {
	f := NewFormatter(s)
	f.Generatable(g)
	if f.err != nil {
		return f.String(), fmt.Errorf("render javascript: %w", f.err)
	}
	return f.String(), nil
}

// RenderStatement prints s as a statement, including its terminating semicolon.
func RenderStatement(s Statement, settings Settings) (string, error) {
	f := NewFormatter(settings)
	f.Stmt(s)
	if f.err != nil {
		return f.String(), fmt.Errorf("render javascript: %w", f.err)
	}
	return f.String(), nil
}

// Code renders g in minimal mode and ignores errors.
// It is meant for diagnostics and tests.
func Code(g Generatable) string {
	s, _ := Render(g, Minimal())
	return s
}

// Quote returns s as a single-quoted JavaScript string literal.
// The forward slash is escaped so the result is safe inside an HTML script element.
func Quote(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) + 2)
	sb.WriteByte('\'')
	for _, r := range s {
		switch r {
		case '\'':
			sb.WriteString(`\'`)
		case '\\':
			sb.WriteString(`\\`)
		case '/':
			sb.WriteString(`\/`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		case '\b':
			sb.WriteString(`\b`)
		case '\f':
			sb.WriteString(`\f`)
		case '\u2028', '\u2029':
			fmt.Fprintf(&sb, `\u%04x`, r)
		default:
			if r < 0x20 {
				fmt.Fprintf(&sb, `\u%04x`, r)
			} else {
				sb.WriteRune(r)
			}
		}
	}
	sb.WriteByte('\'')
	return sb.String()
}
