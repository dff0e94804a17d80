package jscode

// Expression is a node that produces a value.
//
// Operator methods accept any Go value convertible by Convert. They never fail;
// an unconvertible operand becomes an error node that is reported at render time.
type Expression interface {
	Generatable

	Plus(v any) Expression
	Minus(v any) Expression
	Mul(v any) Expression
	Div(v any) Expression
	Mod(v any) Expression
	Shl(v any) Expression
	Shr(v any) Expression
	Shrz(v any) Expression
	BAnd(v any) Expression
	BOr(v any) Expression
	Xor(v any) Expression
	CAnd(v any) Expression
	COr(v any) Expression
	Lt(v any) Expression
	Lte(v any) Expression
	Gt(v any) Expression
	Gte(v any) Expression
	Eq(v any) Expression
	Ne(v any) Expression
	EEq(v any) Expression
	ENe(v any) Expression
	InstanceOf(typeName string) Expression

	Not() Expression
	Complement() Expression
	Negate() Expression
	IncrPostfix() Expression
	IncrPrefix() Expression
	DecrPostfix() Expression
	DecrPrefix() Expression
	TypeOf() Expression
	TypeOfEq(typeName string) Expression
	InParens() Expression
	IsUndefined() Expression
	IsNotUndefined() Expression
	Cond(ifTrue, ifFalse any) Expression

	// Invoke starts a method call on this expression: expr.name(...).
	Invoke(method string) *Invocation
	// Ref references a field of this expression: expr.name.
	Ref(field string) *FieldRef
	// Component indexes this expression: expr[index].
	Component(index any) *ComponentRef
}

// exprBase provides the fluent operator methods for every node type.
// Each concrete node stores itself in self when constructed.
type exprBase struct {
	self Expression
}

func (b exprBase) Plus(v any) Expression  { return Plus(b.self, Convert(v)) }
func (b exprBase) Minus(v any) Expression { return Minus(b.self, Convert(v)) }
func (b exprBase) Mul(v any) Expression   { return Mul(b.self, Convert(v)) }
func (b exprBase) Div(v any) Expression   { return Div(b.self, Convert(v)) }
func (b exprBase) Mod(v any) Expression   { return Mod(b.self, Convert(v)) }
func (b exprBase) Shl(v any) Expression   { return binary(b.self, "<<", Convert(v)) }
func (b exprBase) Shr(v any) Expression   { return binary(b.self, ">>", Convert(v)) }
func (b exprBase) Shrz(v any) Expression  { return binary(b.self, ">>>", Convert(v)) }
func (b exprBase) BAnd(v any) Expression  { return binary(b.self, "&", Convert(v)) }
func (b exprBase) BOr(v any) Expression   { return binary(b.self, "|", Convert(v)) }
func (b exprBase) Xor(v any) Expression   { return binary(b.self, "^", Convert(v)) }
func (b exprBase) CAnd(v any) Expression  { return CAnd(b.self, Convert(v)) }
func (b exprBase) COr(v any) Expression   { return COr(b.self, Convert(v)) }
func (b exprBase) Lt(v any) Expression    { return binary(b.self, "<", Convert(v)) }
func (b exprBase) Lte(v any) Expression   { return binary(b.self, "<=", Convert(v)) }
func (b exprBase) Gt(v any) Expression    { return binary(b.self, ">", Convert(v)) }
func (b exprBase) Gte(v any) Expression   { return binary(b.self, ">=", Convert(v)) }
func (b exprBase) Eq(v any) Expression    { return binary(b.self, "==", Convert(v)) }
func (b exprBase) Ne(v any) Expression    { return binary(b.self, "!=", Convert(v)) }
func (b exprBase) EEq(v any) Expression   { return binary(b.self, "===", Convert(v)) }
func (b exprBase) ENe(v any) Expression   { return binary(b.self, "!==", Convert(v)) }

func (b exprBase) InstanceOf(typeName string) Expression {
	return binary(b.self, " instanceof ", NewRef(typeName))
}

func (b exprBase) Not() Expression         { return Not(b.self) }
func (b exprBase) Complement() Expression  { return unaryParens("~", b.self) }
func (b exprBase) Negate() Expression      { return Negate(b.self) }
func (b exprBase) IncrPostfix() Expression { return step(b.self, "++", true) }
func (b exprBase) IncrPrefix() Expression  { return step(b.self, "++", false) }
func (b exprBase) DecrPostfix() Expression { return step(b.self, "--", true) }
func (b exprBase) DecrPrefix() Expression  { return step(b.self, "--", false) }
func (b exprBase) TypeOf() Expression      { return prefix("typeof ", b.self) }
func (b exprBase) InParens() Expression    { return newParens(b.self) }

func (b exprBase) TypeOfEq(typeName string) Expression {
	return binary(prefix("typeof ", b.self), "===", NewString(typeName))
}

func (b exprBase) IsUndefined() Expression {
	if _, ok := b.self.(*ComponentRef); ok {
		return binary(b.self, "===", Undefined)
	}
	return binary(prefix("typeof ", b.self), "===", NewString("undefined"))
}

func (b exprBase) IsNotUndefined() Expression {
	if _, ok := b.self.(*ComponentRef); ok {
		return binary(b.self, "!==", Undefined)
	}
	return binary(prefix("typeof ", b.self), "!==", NewString("undefined"))
}

func (b exprBase) Cond(ifTrue, ifFalse any) Expression {
	return newTernary(b.self, Convert(ifTrue), Convert(ifFalse))
}

func (b exprBase) Invoke(method string) *Invocation {
	return newMethodCall(b.self, method)
}

func (b exprBase) Ref(field string) *FieldRef {
	return NewFieldRef(b.self, field)
}

func (b exprBase) Component(index any) *ComponentRef {
	return NewComponentRef(b.self, Convert(index))
}

// keyword is a reserved literal such as this or null.
type keyword struct {
	exprBase
	word string
}

func newKeyword(word string) *keyword {
	k := &keyword{word: word}
	k.self = k
	return k
}

func (k *keyword) Generate(f *Formatter) { f.Plain(k.word) }

// Predefined expressions. They are singletons so operators can recognise them.
var (
	True      Expression = newKeyword("true")
	False     Expression = newKeyword("false")
	Null      Expression = newKeyword("null")
	Undefined Expression = newKeyword("undefined")
	This      Expression = newKeyword("this")
)

// Bool returns True or False.
func Bool(v bool) Expression {
	if v {
		return True
	}
	return False
}

// Ref is a reference to a global name or variable.
type Ref struct {
	exprBase
	name string
}

// NewRef references name as-is.
func NewRef(name string) *Ref {
	r := &Ref{name: name}
	r.self = r
	return r
}

// Name returns the referenced name.
func (r *Ref) Name() string { return r.name }

func (r *Ref) Generate(f *Formatter) { f.Plain(r.name) }

// FieldRef is a member access, obj.name, or a bare name when the object is nil.
type FieldRef struct {
	exprBase
	object Expression
	name   string
}

// NewFieldRef creates object.name. A nil object yields just name.
func NewFieldRef(object Expression, name string) *FieldRef {
	r := &FieldRef{object: object, name: name}
	r.self = r
	return r
}

// RefChain builds object.a.b.c from a list of field names.
func RefChain(object Expression, fields ...string) Expression {
	cur := object
	for _, field := range fields {
		cur = NewFieldRef(cur, field)
	}
	return cur
}

// RefThis creates this.name.
func RefThis(name string) *FieldRef {
	return NewFieldRef(This, name)
}

// Name returns the field name.
func (r *FieldRef) Name() string { return r.name }

func (r *FieldRef) Generate(f *Formatter) {
	if r.object != nil {
		generateOperand(f, r.object)
		f.Plain(".")
	}
	f.Plain(r.name)
}

// ComponentRef is an indexed access, obj[index].
type ComponentRef struct {
	exprBase
	object Expression
	index  Expression
}

// NewComponentRef creates object[index].
func NewComponentRef(object, index Expression) *ComponentRef {
	r := &ComponentRef{object: object, index: index}
	r.self = r
	return r
}

func (r *ComponentRef) Generate(f *Formatter) {
	generateOperand(f, r.object)
	f.Plain("[")
	r.index.Generate(f)
	f.Plain("]")
}

// Direct is raw JavaScript inserted verbatim.
// As a statement it is written without an added semicolon.
type Direct struct {
	exprBase
	code string
}

// NewDirect wraps code. The caller is responsible for its validity.
func NewDirect(code string) *Direct {
	d := &Direct{code: code}
	d.self = d
	return d
}

func (d *Direct) Generate(f *Formatter) { f.Plain(d.code) }

func (d *Direct) State(f *Formatter) {
	f.Plain(d.code).NL()
}

// Regex is a regular expression literal.
type Regex struct {
	exprBase
	pattern    string
	global     bool
	ignoreCase bool
	multiline  bool
}

// NewRegex creates /pattern/ without flags.
func NewRegex(pattern string) *Regex {
	r := &Regex{pattern: pattern}
	r.self = r
	return r
}

// Global sets the g flag.
func (r *Regex) Global(v bool) *Regex {
	r.global = v
	return r
}

// IgnoreCase sets the i flag.
func (r *Regex) IgnoreCase(v bool) *Regex {
	r.ignoreCase = v
	return r
}

// Multiline sets the m flag.
func (r *Regex) Multiline(v bool) *Regex {
	r.multiline = v
	return r
}

// Gim sets all three flags at once.
func (r *Regex) Gim(global, ignoreCase, multiline bool) *Regex {
	r.global, r.ignoreCase, r.multiline = global, ignoreCase, multiline
	return r
}

func (r *Regex) Generate(f *Formatter) {
	f.Plain("/").Plain(r.pattern).Plain("/")
	if r.global {
		f.Plain("g")
	}
	if r.ignoreCase {
		f.Plain("i")
	}
	if r.multiline {
		f.Plain("m")
	}
}

// Parens wraps an expression in an explicit pair of parentheses.
type Parens struct {
	exprBase
	inner Expression
}

func newParens(inner Expression) *Parens {
	p := &Parens{inner: inner}
	p.self = p
	return p
}

func (p *Parens) Generate(f *Formatter) {
	f.Plain("(")
	p.inner.Generate(f)
	f.Plain(")")
}

// exprStatement turns any expression into a statement terminated by a semicolon.
type exprStatement struct {
	expr Expression
}

func (s exprStatement) State(f *Formatter) {
	s.expr.Generate(f)
	f.Plain(";").NL()
}

// generateOperand prints e as the object of a member access, wrapping it when
// the resulting text would otherwise bind differently. Integer literals are
// wrapped so the dot is not read as a decimal point.
func generateOperand(f *Formatter, e Expression) {
	wrap := false
	switch t := e.(type) {
	case *unaryOp, *ternaryOp, *AnonymousFunction, *IntLit, *BigIntLit:
		wrap = true
	case numeric:
		wrap = t.isNegative()
	}
	if !wrap {
		e.Generate(f)
		return
	}
	f.Plain("(")
	e.Generate(f)
	f.Plain(")")
}
