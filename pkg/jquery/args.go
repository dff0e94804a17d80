package jquery

import (
	"bytes"
	"fmt"
	"math/big"
	"strings"

	"github.com/aretw0/jsquery/pkg/jqapi"
	"github.com/aretw0/jsquery/pkg/jscode"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Arg is an argument to a jQuery method. The accepted values are listed on
// Classify; anything else makes the call fail.
type Arg = any

// HTML is a markup string. It renders as a string literal but is only
// accepted where jQuery documents an htmlString or String.
type HTML string

// JSON is a value serialized with encoding/json, e.g. a settings object.
type JSON struct {
	Value any
}

// QName is an attribute or property name, as accepted by attr and prop.
type QName string

// CSSClassProvider is anything that names a CSS class.
type CSSClassProvider interface {
	CSSClass() string
}

// CSSClass is a plain CSS class name.
type CSSClass string

// CSSClass returns the class name.
func (c CSSClass) CSSClass() string { return string(c) }

// Element is an HTML element name.
type Element = atom.Atom

// ElementOf looks up an element by tag name. The second result is false for
// names that are not standard HTML elements.
func ElementOf(tag string) (Element, bool) {
	a := atom.Lookup([]byte(strings.ToLower(tag)))
	return a, a != 0
}

// Classify maps a Go value to its argument kind and JavaScript expression.
//
// Accepted are jscode expressions, *jscode.AnonymousFunction, *jscode.Array,
// *Invocation, Selector and *SelectorList, CSSClassProvider, Element and
// []Element, *html.Node, HTML, JSON, QName, string, []string, []any, bool, every
// integer and float type, *big.Int and *big.Float.
// Anything else yields an error wrapping jscode.ErrUnsupportedValue.
func Classify(v Arg) (jqapi.Kind, jscode.Expression, error) {
	switch t := v.(type) {
	case nil:
		return 0, nil, fmt.Errorf("%w: nil argument", jscode.ErrUnsupportedValue)
	case *SelectorList:
		if err := jscode.Err(t.Expression()); err != nil {
			return 0, nil, err
		}
		return jqapi.KindSelectorList, t.Expression(), nil
	case Selector:
		if err := jscode.Err(t.Expression()); err != nil {
			return 0, nil, err
		}
		return jqapi.KindSelector, t.Expression(), nil
	case *Invocation:
		if t.err != nil {
			return 0, nil, t.err
		}
		return jqapi.KindInvocation, t.expr, nil
	case *jscode.AnonymousFunction:
		return jqapi.KindFunction, t, nil
	case *jscode.Array:
		return jqapi.KindArray, t, nil
	case jscode.Expression:
		if err := jscode.Err(t); err != nil {
			return 0, nil, err
		}
		return jqapi.KindExpression, t, nil
	case HTML:
		return jqapi.KindHTML, jscode.NewString(string(t)), nil
	case *html.Node:
		if t == nil {
			return 0, nil, fmt.Errorf("%w: nil *html.Node", jscode.ErrUnsupportedValue)
		}
		var buf bytes.Buffer
		if err := html.Render(&buf, t); err != nil {
			return 0, nil, fmt.Errorf("failed to render html node: %w", err)
		}
		return jqapi.KindHTML, jscode.NewString(buf.String()), nil
	case JSON:
		return jqapi.KindJSON, jscode.NewJSON(t.Value), nil
	case QName:
		return jqapi.KindQName, jscode.NewString(string(t)), nil
	case CSSClassProvider:
		return jqapi.KindCSSClass, jscode.NewString(t.CSSClass()), nil
	case Element:
		if t == 0 {
			return 0, nil, fmt.Errorf("%w: empty element", jscode.ErrUnsupportedValue)
		}
		return jqapi.KindElement, jscode.NewString(t.String()), nil
	case []Element:
		names := make([]string, len(t))
		for i, el := range t {
			names[i] = el.String()
		}
		return jqapi.KindElements, jscode.NewString(strings.Join(names, " ")), nil
	case string:
		return jqapi.KindString, jscode.NewString(t), nil
	case []string:
		return jqapi.KindStrings, jscode.Convert(t), nil
	case []any:
		return jqapi.KindArray, jscode.Convert(t), nil
	case bool:
		return jqapi.KindBool, jscode.Bool(t), nil
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return jqapi.KindInt, jscode.Convert(t), nil
	case float32, float64:
		return jqapi.KindFloat, jscode.Convert(t), nil
	case *big.Int:
		if t == nil {
			return 0, nil, fmt.Errorf("%w: nil *big.Int", jscode.ErrUnsupportedValue)
		}
		return jqapi.KindBigInt, jscode.NewBigInt(t), nil
	case *big.Float:
		if t == nil {
			return 0, nil, fmt.Errorf("%w: nil *big.Float", jscode.ErrUnsupportedValue)
		}
		return jqapi.KindBigFloat, jscode.NewBigFloat(t), nil
	}
	return 0, nil, fmt.Errorf("%w: %T", jscode.ErrUnsupportedValue, v)
}

// classifyAll classifies every argument. The error names the position of the
// first argument that could not be classified.
func classifyAll(args []Arg) ([]jqapi.Kind, []any, error) {
	kinds := make([]jqapi.Kind, len(args))
	exprs := make([]any, len(args))
	for i, a := range args {
		k, e, err := Classify(a)
		if err != nil {
			return nil, nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		kinds[i], exprs[i] = k, e
	}
	return kinds, exprs, nil
}
