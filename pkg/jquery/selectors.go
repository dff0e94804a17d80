package jquery

import (
	"errors"
	"strings"

	"github.com/aretw0/jsquery/pkg/jscode"
)

// Selector is a jQuery selector. Its expression is usually a string
// literal such as '#id td', but parts may be computed at run time.
type Selector interface {
	Expression() jscode.Expression

	// Chain appends rhs without a combinator: 'td'+'.a' is 'td.a'.
	Chain(rhs Selector) Selector
	// Multiple joins both with ','.
	Multiple(rhs Selector) Selector
	// Child joins both with ' > '.
	Child(rhs Selector) Selector
	// Descendant joins both with ' '.
	Descendant(rhs Selector) Selector
	// NextAdjacent joins both with ' + '.
	NextAdjacent(rhs Selector) Selector
	// NextSiblings joins both with ' ~ '.
	NextSiblings(rhs Selector) Selector
	// Invoke creates $(selector).
	Invoke() *Invocation
}

type selector struct {
	expr jscode.Expression
}

func fromExpr(e jscode.Expression) Selector { return &selector{expr: e} }

// Raw creates a selector from literal selector text, used as-is.
func Raw(text string) Selector { return fromExpr(jscode.NewString(text)) }

func (s *selector) Expression() jscode.Expression     { return s.expr }
func (s *selector) Chain(rhs Selector) Selector        { return Chain(s, rhs) }
func (s *selector) Multiple(rhs Selector) Selector     { return Multiple(s, rhs) }
func (s *selector) Child(rhs Selector) Selector        { return Child(s, rhs) }
func (s *selector) Descendant(rhs Selector) Selector   { return Descendant(s, rhs) }
func (s *selector) NextAdjacent(rhs Selector) Selector { return NextAdjacent(s, rhs) }
func (s *selector) NextSiblings(rhs Selector) Selector { return NextSiblings(s, rhs) }
func (s *selector) Invoke() *Invocation                { return JQuery(s) }

func (s *selector) String() string { return jscode.Code(s.expr) }

// Constant selectors.
var (
	All         = Raw("*")
	Animated    = Raw(":animated")
	Button      = Raw(":button")
	Checkbox    = Raw(":checkbox")
	Checked     = Raw(":checked")
	Disabled    = Raw(":disabled")
	Empty       = Raw(":empty")
	Enabled     = Raw(":enabled")
	Even        = Raw(":even")
	File        = Raw(":file")
	First       = Raw(":first")
	FirstChild  = Raw(":first-child")
	FirstOfType = Raw(":first-of-type")
	Focus       = Raw(":focus")
	Header      = Raw(":header")
	Hidden      = Raw(":hidden")
	Image       = Raw(":image")
	Input       = Raw(":input")
	Last        = Raw(":last")
	LastChild   = Raw(":last-child")
	LastOfType  = Raw(":last-of-type")
	Odd         = Raw(":odd")
	OnlyChild   = Raw(":only-child")
	OnlyOfType  = Raw(":only-of-type")
	Parent      = Raw(":parent")
	Password    = Raw(":password")
	Radio       = Raw(":radio")
	Reset       = Raw(":reset")
	Root        = Raw(":root")
	Selected    = Raw(":selected")
	Submit      = Raw(":submit")
	Target      = Raw(":target")
	Text        = Raw(":text")
	Visible     = Raw(":visible")
)

var idEscaper = strings.NewReplacer(":", `\:`, ".", `\.`)

// EscapeID escapes the characters of an element ID that jQuery would read
// as selector syntax.
func EscapeID(id string) string { return idEscaper.Replace(id) }

// ErrEmptyID is recorded by ID for an empty element ID.
var ErrEmptyID = errors.New("empty element id")

// ID selects by element ID: #id. Colons and dots in id are escaped.
// An empty id yields a selector that fails with ErrEmptyID.
func ID(id string) Selector {
	if id == "" {
		return fromExpr(jscode.Invalid(ErrEmptyID))
	}
	return Raw("#" + EscapeID(id))
}

// IDExpr selects by an ID computed at run time: '#'+expr.
func IDExpr(id jscode.Expression) Selector {
	return fromExpr(jscode.Plus(jscode.NewString("#"), id))
}

// Class selects by CSS class: .name.
func Class(c CSSClassProvider) Selector { return Raw("." + c.CSSClass()) }

// Tag selects by element name.
func Tag(el Element) Selector { return Raw(el.String()) }

// TagName selects by an element name that need not be a standard HTML
// element, e.g. a custom element.
func TagName(name string) Selector { return Raw(name) }

// NameAttr selects by the name attribute: [name='v'].
func NameAttr(value string) Selector { return AttrEquals("name", value) }

func attr(name, op, value string) Selector {
	return Raw("[" + name + op + jscode.Quote(value) + "]")
}

// AttrHas selects elements that have the attribute: [name].
func AttrHas(name string) Selector { return Raw("[" + name + "]") }

// AttrContains selects [name*='value'].
func AttrContains(name, value string) Selector { return attr(name, "*=", value) }

// AttrContainsPrefix selects [name|='value'].
func AttrContainsPrefix(name, value string) Selector { return attr(name, "|=", value) }

// AttrContainsWord selects [name~='value'].
func AttrContainsWord(name, value string) Selector { return attr(name, "~=", value) }

// AttrEndsWith selects [name$='value'].
func AttrEndsWith(name, value string) Selector { return attr(name, "$=", value) }

// AttrEquals selects [name='value'].
func AttrEquals(name, value string) Selector { return attr(name, "=", value) }

// AttrNotEqual selects [name!='value'].
func AttrNotEqual(name, value string) Selector { return attr(name, "!=", value) }

// AttrStartsWith selects [name^='value'].
func AttrStartsWith(name, value string) Selector { return attr(name, "^=", value) }

// pseudo builds name(arg). Literal arguments are written into the selector
// text; other expressions are concatenated at run time. String literals keep
// their quotes only when quoted is set.
func pseudo(name string, arg jscode.Expression, quoted bool) Selector {
	switch a := arg.(type) {
	case *jscode.StringLit:
		if !quoted {
			return Raw(name + "(" + a.Value() + ")")
		}
		return Raw(name + "(" + jscode.Code(a) + ")")
	case *jscode.IntLit, *jscode.BigIntLit, *jscode.FloatLit, *jscode.BigFloatLit:
		return Raw(name + "(" + jscode.Code(a) + ")")
	}
	return fromExpr(jscode.Plus(jscode.Plus(jscode.NewString(name+"("), arg), jscode.NewString(")")))
}

// Eq selects the element at index: :eq(n). index is an integer or an expression.
func Eq(index any) Selector { return pseudo(":eq", jscode.Convert(index), false) }

// Gt selects elements after index: :gt(n).
func Gt(index any) Selector { return pseudo(":gt", jscode.Convert(index), false) }

// Lt selects elements before index: :lt(n).
func Lt(index any) Selector { return pseudo(":lt", jscode.Convert(index), false) }

// NthChild selects :nth-child(n). n may also be a formula such as "2n+1".
func NthChild(n any) Selector { return pseudo(":nth-child", jscode.Convert(n), false) }

// NthLastChild selects :nth-last-child(n).
func NthLastChild(n any) Selector { return pseudo(":nth-last-child", jscode.Convert(n), false) }

// NthOfType selects :nth-of-type(n).
func NthOfType(n any) Selector { return pseudo(":nth-of-type", jscode.Convert(n), false) }

// NthLastOfType selects :nth-last-of-type(n).
func NthLastOfType(n any) Selector { return pseudo(":nth-last-of-type", jscode.Convert(n), false) }

// Lang selects elements of a language: :lang('en').
func Lang(language any) Selector { return pseudo(":lang", jscode.Convert(language), true) }

// Contains selects elements containing text: :contains('text').
func Contains(text any) Selector { return pseudo(":contains", jscode.Convert(text), true) }

// Has selects elements with a descendant matching s: :has(s).
func Has(s Selector) Selector { return pseudo(":has", s.Expression(), false) }

// Not selects elements not matching s: :not(s).
func Not(s Selector) Selector { return pseudo(":not", s.Expression(), false) }

// join keeps the first invalid operand so its error is reported unchanged.
func join(lhs Selector, sep string, rhs Selector) Selector {
	left := lhs.Expression()
	if jscode.Err(left) != nil {
		return lhs
	}
	if jscode.Err(rhs.Expression()) != nil {
		return rhs
	}
	if sep != "" {
		left = jscode.Plus(left, jscode.NewString(sep))
	}
	return fromExpr(jscode.Plus(left, rhs.Expression()))
}

// Chain concatenates selectors without a combinator: Chain(Tag(atom.Td), Odd) is 'td:odd'.
func Chain(first Selector, rest ...Selector) Selector {
	out := first
	for _, s := range rest {
		out = join(out, "", s)
	}
	return out
}

// Multiple joins selectors with ','. It panics when called without selectors.
func Multiple(selectors ...Selector) Selector {
	if len(selectors) == 0 {
		panic("jquery: Multiple needs at least one selector")
	}
	out := selectors[0]
	for _, s := range selectors[1:] {
		out = join(out, ",", s)
	}
	return out
}

// Child selects direct children: parent > child.
func Child(parent, child Selector) Selector { return join(parent, " > ", child) }

// Descendant selects descendants: ancestor descendant.
func Descendant(ancestor, descendant Selector) Selector { return join(ancestor, " ", descendant) }

// NextAdjacent selects the immediately following sibling: prev + next.
func NextAdjacent(prev, next Selector) Selector { return join(prev, " + ", next) }

// NextSiblings selects all following siblings: prev ~ siblings.
func NextSiblings(prev, siblings Selector) Selector { return join(prev, " ~ ", siblings) }

// SelectorList is an ordered list of selectors joined by the descendant
// combinator. The zero value is an empty list.
type SelectorList struct {
	items []Selector
}

// NewSelectorList creates a list of the given selectors.
func NewSelectorList(selectors ...Selector) *SelectorList {
	return &SelectorList{items: append([]Selector(nil), selectors...)}
}

// Add appends a selector.
func (l *SelectorList) Add(s Selector) *SelectorList {
	l.items = append(l.items, s)
	return l
}

// Len returns the number of selectors.
func (l *SelectorList) Len() int { return len(l.items) }

// IsEmpty reports whether the list has no selectors.
func (l *SelectorList) IsEmpty() bool { return len(l.items) == 0 }

func (l *SelectorList) selector() Selector {
	if len(l.items) == 0 {
		return Raw("")
	}
	out := l.items[0]
	for _, s := range l.items[1:] {
		out = Descendant(out, s)
	}
	return out
}

// Expression returns the joined selector expression. An empty list renders as ''.
func (l *SelectorList) Expression() jscode.Expression     { return l.selector().Expression() }
func (l *SelectorList) Chain(rhs Selector) Selector        { return Chain(l.selector(), rhs) }
func (l *SelectorList) Multiple(rhs Selector) Selector     { return Multiple(l.selector(), rhs) }
func (l *SelectorList) Child(rhs Selector) Selector        { return Child(l.selector(), rhs) }
func (l *SelectorList) Descendant(rhs Selector) Selector   { return Descendant(l.selector(), rhs) }
func (l *SelectorList) NextAdjacent(rhs Selector) Selector { return NextAdjacent(l.selector(), rhs) }
func (l *SelectorList) NextSiblings(rhs Selector) Selector { return NextSiblings(l.selector(), rhs) }
func (l *SelectorList) Invoke() *Invocation                { return JQuery(l) }

func (l *SelectorList) String() string { return jscode.Code(l.Expression()) }
