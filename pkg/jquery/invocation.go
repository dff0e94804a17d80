package jquery

import (
	"errors"
	"fmt"

	"github.com/aretw0/jsquery/pkg/jqapi"
	"github.com/aretw0/jsquery/pkg/jscode"
)

// ErrInvalidPluginName is returned by Call for names that are not JavaScript identifiers.
var ErrInvalidPluginName = errors.New("invalid plugin method name")

// Invocation is a jQuery call chain such as $('#id').addClass('a').show().
//
// Every method appends one call and returns the receiver. Arguments are
// checked against the catalog signatures of the method. The first failed
// check is kept and returned by Render, later calls are ignored.
//
// An Invocation is not safe for concurrent use. Use Fork to branch a chain.
type Invocation struct {
	catalog *jqapi.Catalog
	expr    jscode.Expression
	err     error
}

func newInvocation(cat *jqapi.Catalog, expr jscode.Expression) *Invocation {
	return &Invocation{catalog: cat, expr: expr}
}

// Wrap starts a chain on an existing expression, e.g. a variable holding a
// jQuery object. No call is made.
func Wrap(expr jscode.Expression) *Invocation {
	return newInvocation(jqapi.Default(), expr)
}

// Catalog returns the catalog the chain is checked against.
func (inv *Invocation) Catalog() *jqapi.Catalog { return inv.catalog }

// Expr returns the chain as a JavaScript expression, for use as an operand
// or as an argument outside of jQuery calls.
func (inv *Invocation) Expr() jscode.Expression { return inv.expr }

// Err returns the first error recorded on the chain.
func (inv *Invocation) Err() error { return inv.err }

// Fork returns an independent copy. Calls on the copy do not affect inv.
func (inv *Invocation) Fork() *Invocation {
	cp := *inv
	return &cp
}

// call appends a checked call of the documented method name.
func (inv *Invocation) call(name string, args []Arg) *Invocation {
	if inv.err != nil {
		return inv
	}
	entry, err := inv.catalog.Method(name)
	if err == nil && entry.IsStatic() {
		err = fmt.Errorf("%w: %s is not an instance method", jqapi.ErrUnknownMethod, name)
	}
	if err != nil {
		inv.err = err
		return inv
	}
	kinds, exprs, err := classifyAll(args)
	if err != nil {
		inv.err = fmt.Errorf("jquery method %s: %w", name, err)
		return inv
	}
	if _, err := jqapi.Match(entry, kinds); err != nil {
		inv.err = err
		return inv
	}
	inv.expr = inv.expr.Invoke(entry.JSName()).Args(exprs...)
	return inv
}

// Call appends a call of a method that is not in the catalog, typically one
// added by a plugin. Arguments are classified but not checked against a signature.
func (inv *Invocation) Call(name string, args ...Arg) *Invocation {
	if inv.err != nil {
		return inv
	}
	if !jscode.IsIdentifier(name) {
		inv.err = fmt.Errorf("%w: %q", ErrInvalidPluginName, name)
		return inv
	}
	_, exprs, err := classifyAll(args)
	if err != nil {
		inv.err = fmt.Errorf("jquery method %s: %w", name, err)
		return inv
	}
	inv.expr = inv.expr.Invoke(name).Args(exprs...)
	return inv
}

// Plugin helpers for widely used form plugins.

// Enable calls the enable() plugin method.
func (inv *Invocation) Enable() *Invocation { return inv.Call("enable") }

// Disable calls the disable() plugin method.
func (inv *Invocation) Disable() *Invocation { return inv.Call("disable") }

// Check calls the check() plugin method.
func (inv *Invocation) Check() *Invocation { return inv.Call("check") }

// Uncheck calls the uncheck() plugin method.
func (inv *Invocation) Uncheck() *Invocation { return inv.Call("uncheck") }

// Properties. They end the chain because a property is not a jQuery object.

// Jquery references the jquery property, the version string of the library.
func (inv *Invocation) Jquery() jscode.Expression { return inv.property("jquery") }

// Length references the number of elements in the jQuery object.
func (inv *Invocation) Length() jscode.Expression { return inv.property("length") }

// Context references the DOM node context originally passed to jQuery().
//
// Deprecated: deprecated since jQuery 1.10, removed in jQuery 3.0.
func (inv *Invocation) Context() jscode.Expression { return inv.property("context") }

func (inv *Invocation) property(name string) jscode.Expression {
	return inv.expr.Ref(name)
}

// Render prints the chain with the given settings.
func (inv *Invocation) Render(s jscode.Settings) (string, error) {
	if inv.err != nil {
		return "", inv.err
	}
	return jscode.Render(inv.expr, s)
}

// JSCode prints the chain in minimal form.
func (inv *Invocation) JSCode() (string, error) {
	return inv.Render(jscode.Minimal())
}

// MustRender is like Render but panics on error.
func (inv *Invocation) MustRender(s jscode.Settings) string {
	code, err := inv.Render(s)
	if err != nil {
		panic(err)
	}
	return code
}

// Generate prints the chain as an expression. A recorded error is reported
// to the formatter.
func (inv *Invocation) Generate(f *jscode.Formatter) {
	if inv.err != nil {
		f.Fail(inv.err)
		return
	}
	inv.expr.Generate(f)
}

// State prints the chain as a statement terminated by a semicolon.
func (inv *Invocation) State(f *jscode.Formatter) {
	inv.Generate(f)
	f.Plain(";").NL()
}
