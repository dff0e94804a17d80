package jquery

import (
	"fmt"
	"sync/atomic"

	"github.com/aretw0/jsquery/pkg/jqapi"
	"github.com/aretw0/jsquery/pkg/jscode"
)

// useLongName selects "jQuery" over "$" as the function name.
var useLongName atomic.Bool

// SetUseDollar chooses between $(...) and jQuery(...) for chains created
// afterwards. The default is $.
func SetUseDollar(v bool) { useLongName.Store(!v) }

// UseDollar reports whether chains start with $.
func UseDollar() bool { return !useLongName.Load() }

// FunctionName returns "$" or "jQuery", depending on SetUseDollar.
func FunctionName() string {
	if UseDollar() {
		return "$"
	}
	return "jQuery"
}

// Function references the jQuery function itself: $ or jQuery.
func Function() *jscode.Ref { return jscode.NewRef(FunctionName()) }

// Builder creates chains checked against one catalog, e.g. one restricted
// to an older jQuery version with Catalog.ForVersion.
type Builder struct {
	catalog *jqapi.Catalog
}

// NewBuilder creates a builder for cat. A nil catalog means jqapi.Default().
func NewBuilder(cat *jqapi.Catalog) *Builder {
	if cat == nil {
		cat = jqapi.Default()
	}
	return &Builder{catalog: cat}
}

// Catalog returns the catalog chains are checked against.
func (b *Builder) Catalog() *jqapi.Catalog { return b.catalog }

// Wrap starts a chain on an existing expression.
func (b *Builder) Wrap(expr jscode.Expression) *Invocation {
	return newInvocation(b.catalog, expr)
}

// JQuery creates $(args...). The arguments are checked against the
// documented signatures of the jQuery function.
func (b *Builder) JQuery(args ...Arg) *Invocation {
	inv := newInvocation(b.catalog, nil)
	kinds, exprs, err := classifyAll(args)
	if err != nil {
		inv.expr = jscode.InvokeFunc(FunctionName())
		inv.err = fmt.Errorf("jquery function: %w", err)
		return inv
	}
	inv.expr = jscode.InvokeFunc(FunctionName()).Args(exprs...)
	if entry, ok := b.catalog.Factory(); ok {
		if _, err := jqapi.Match(entry, kinds); err != nil {
			inv.err = err
		}
	}
	return inv
}

// Static calls a function of the jQuery object: Static("ajax", url) creates
// $.ajax(url). name is the documented name without the "jQuery." prefix.
func (b *Builder) Static(name string, args ...Arg) *Invocation {
	inv := newInvocation(b.catalog, Function())
	entry, err := b.catalog.Method(jqapi.StaticPrefix + name)
	if err != nil {
		inv.err = err
		return inv
	}
	kinds, exprs, err := classifyAll(args)
	if err != nil {
		inv.err = fmt.Errorf("jquery method %s: %w", entry.Name, err)
		return inv
	}
	if _, err := jqapi.Match(entry, kinds); err != nil {
		inv.err = err
		return inv
	}
	inv.expr = Function().Invoke(entry.JSName()).Args(exprs...)
	return inv
}

// StaticProperty references a property of the jQuery object, e.g. "fx.off" for $.fx.off.
func (b *Builder) StaticProperty(name string) (jscode.Expression, error) {
	entry, ok := b.catalog.Lookup(jqapi.StaticPrefix + name)
	if !ok || entry.Type != jqapi.TypeProperty {
		return nil, fmt.Errorf("%w: %s%s", jqapi.ErrUnknownMethod, jqapi.StaticPrefix, name)
	}
	return jscode.NewFieldRef(Function(), entry.JSName()), nil
}

func defaultBuilder() *Builder { return &Builder{catalog: jqapi.Default()} }

// JQuery creates $(args...), checked against the default catalog.
func JQuery(args ...Arg) *Invocation { return defaultBuilder().JQuery(args...) }

// Static calls a function of the jQuery object, checked against the default catalog.
func Static(name string, args ...Arg) *Invocation { return defaultBuilder().Static(name, args...) }

// Document creates $(document).
func Document() *Invocation { return JQuery(jscode.Document()) }

// Window creates $(window).
func Window() *Invocation { return JQuery(jscode.Window()) }

// This creates $(this).
func This() *Invocation { return JQuery(jscode.This) }

// IDRef creates $('#id').
func IDRef(id string) *Invocation { return ID(id).Invoke() }

// IDRefExpr creates $('#'+id) for an ID computed at run time.
func IDRefExpr(id jscode.Expression) *Invocation { return IDExpr(id).Invoke() }

// IDRefMultiple creates $('#a,#b'). It panics without IDs.
func IDRefMultiple(ids ...string) *Invocation {
	selectors := make([]Selector, len(ids))
	for i, id := range ids {
		selectors[i] = ID(id)
	}
	return Multiple(selectors...).Invoke()
}

// ClassRef creates $('.class').
func ClassRef(c CSSClassProvider) *Invocation { return Class(c).Invoke() }

// ClassRefMultiple creates $('.a,.b'). It panics without classes.
func ClassRefMultiple(classes ...CSSClassProvider) *Invocation {
	selectors := make([]Selector, len(classes))
	for i, c := range classes {
		selectors[i] = Class(c)
	}
	return Multiple(selectors...).Invoke()
}

// ElementNameRef creates $('tag'), optionally chained with more selectors: $('tag.a').
func ElementNameRef(el Element, chained ...Selector) *Invocation {
	return Chain(Tag(el), chained...).Invoke()
}

// ElementNameWithIDRef creates $('tag#id').
func ElementNameWithIDRef(el Element, id string) *Invocation {
	return ElementNameRef(el, ID(id))
}

// ElementNameWithClassRef creates $('tag.class').
func ElementNameWithClassRef(el Element, c CSSClassProvider) *Invocation {
	return ElementNameRef(el, Class(c))
}

// NameAttrRef creates $('[name=\'value\']').
func NameAttrRef(value string) *Invocation { return NameAttr(value).Invoke() }

// OnDocumentReady creates $(document).ready(function(){...}) with the given
// statements as the function body.
func OnDocumentReady(body ...jscode.Statement) *Invocation {
	inv, fn := OnDocumentReadyFunc()
	for _, s := range body {
		fn.Body().Add(s)
	}
	return inv
}

// OnDocumentReadyFunc is like OnDocumentReady but returns the empty handler
// so the caller can fill its body afterwards.
func OnDocumentReadyFunc() (*Invocation, *jscode.AnonymousFunction) {
	fn := jscode.NewAnonymousFunction()
	return Document().Ready(fn), fn
}

// Typed helpers for frequently used static functions.

// Ajax creates $.ajax(settings).
func Ajax(settings Arg) *Invocation { return Static("ajax", settings) }

// AjaxURL creates $.ajax(url,settings).
func AjaxURL(url string, settings Arg) *Invocation { return Static("ajax", url, settings) }

// Get creates $.get(url,args...).
func Get(url string, args ...Arg) *Invocation { return Static("get", prepend(url, args)...) }

// Post creates $.post(url,args...).
func Post(url string, args ...Arg) *Invocation { return Static("post", prepend(url, args)...) }

// GetJSON creates $.getJSON(url,args...).
func GetJSON(url string, args ...Arg) *Invocation { return Static("getJSON", prepend(url, args)...) }

// GetScript creates $.getScript(url,args...).
func GetScript(url string, args ...Arg) *Invocation {
	return Static("getScript", prepend(url, args)...)
}

// Each creates $.each(collection,callback).
func Each(collection, callback Arg) *Invocation { return Static("each", collection, callback) }

// Extend creates $.extend(args...).
func Extend(args ...Arg) *Invocation { return Static("extend", args...) }

// FnExtend creates $.fn.extend(object), the usual way to define a plugin.
func FnExtend(object Arg) *Invocation { return Static("fn.extend", object) }

// GlobalEval creates $.globalEval(code).
func GlobalEval(code Arg) *Invocation { return Static("globalEval", code) }

// ParseHTML creates $.parseHTML(data,args...).
func ParseHTML(data Arg, args ...Arg) *Invocation { return Static("parseHTML", prepend(data, args)...) }

// ParseXML creates $.parseXML(data).
func ParseXML(data Arg) *Invocation { return Static("parseXML", data) }

// ParseJSON creates $.parseJSON(json).
//
// Deprecated: deprecated since jQuery 3.0. Use jscode.JSONParse.
func ParseJSON(json Arg) *Invocation { return Static("parseJSON", json) }

// NoConflict creates $.noConflict() or $.noConflict(removeAll).
func NoConflict(removeAll ...Arg) *Invocation { return Static("noConflict", removeAll...) }

// When creates $.when(deferreds...).
func When(deferreds ...Arg) *Invocation { return Static("when", deferreds...) }

// Deferred creates $.Deferred() or $.Deferred(beforeStart).
func Deferred(beforeStart ...Arg) *Invocation { return Static("Deferred", beforeStart...) }

// Callbacks creates $.Callbacks() or $.Callbacks(flags).
func Callbacks(flags ...Arg) *Invocation { return Static("Callbacks", flags...) }

// Trim creates $.trim(str).
//
// Deprecated: deprecated since jQuery 3.5. Use String.prototype.trim.
func Trim(str Arg) *Invocation { return Static("trim", str) }

// IsArray creates $.isArray(obj).
//
// Deprecated: deprecated since jQuery 3.2. Use Array.isArray.
func IsArray(obj Arg) *Invocation { return Static("isArray", obj) }

// Fn references $.fn, the prototype of jQuery objects.
func Fn() *jscode.FieldRef { return jscode.NewFieldRef(Function(), "fn") }

// Fx references $.fx, the animation settings.
func Fx() *jscode.FieldRef { return jscode.NewFieldRef(Function(), "fx") }

func prepend(first Arg, rest []Arg) []Arg {
	return append([]Arg{first}, rest...)
}
