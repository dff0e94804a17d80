package jscode

// Invocation is a function or method call. It is both an expression and,
// when added to a block, a statement terminated by a semicolon.
//
// The four forms are obj.name(args), name(args), new Type(args) and
// callee(args) where callee is an arbitrary expression such as an
// anonymous function.
type Invocation struct {
	exprBase
	object      Expression
	name        string
	callee      Expression
	constructor bool
	args        []Expression
}

func newMethodCall(object Expression, name string) *Invocation {
	inv := &Invocation{object: object, name: name}
	inv.self = inv
	return inv
}

// InvokeFunc calls a global function by name: name(args).
func InvokeFunc(name string) *Invocation {
	return newMethodCall(nil, name)
}

// InvokeMethod calls name on object: object.name(args).
func InvokeMethod(object Expression, name string) *Invocation {
	return newMethodCall(object, name)
}

// InvokeThis calls a method on this: this.name(args).
func InvokeThis(name string) *Invocation {
	return newMethodCall(This, name)
}

// Call calls an arbitrary expression. Anonymous functions are wrapped in
// parentheses: (function(){...})(args).
func Call(callee Expression) *Invocation {
	inv := &Invocation{callee: callee}
	inv.self = inv
	return inv
}

// New creates a constructor call: new Type(args).
func New(typeName string) *Invocation {
	inv := &Invocation{name: typeName, constructor: true}
	inv.self = inv
	return inv
}

// Name returns the called function or method name. It is empty for calls
// created with Call.
func (inv *Invocation) Name() string { return inv.name }

// Object returns the receiver of a method call, or nil.
func (inv *Invocation) Object() Expression { return inv.object }

// Arg appends one converted argument.
func (inv *Invocation) Arg(v any) *Invocation {
	inv.args = append(inv.args, Convert(v))
	return inv
}

// Args appends several converted arguments.
func (inv *Invocation) Args(vs ...any) *Invocation {
	for _, v := range vs {
		inv.args = append(inv.args, Convert(v))
	}
	return inv
}

// ArgNull appends null.
func (inv *Invocation) ArgNull() *Invocation {
	inv.args = append(inv.args, Null)
	return inv
}

// ArgThis appends this.
func (inv *Invocation) ArgThis() *Invocation {
	inv.args = append(inv.args, This)
	return inv
}

// InsertArg inserts a converted argument before position i. An index past the
// end appends.
func (inv *Invocation) InsertArg(i int, v any) *Invocation {
	e := Convert(v)
	if i < 0 {
		i = 0
	}
	if i >= len(inv.args) {
		inv.args = append(inv.args, e)
		return inv
	}
	inv.args = append(inv.args, nil)
	copy(inv.args[i+1:], inv.args[i:])
	inv.args[i] = e
	return inv
}

// Arguments returns the current argument list.
func (inv *Invocation) Arguments() []Expression {
	out := make([]Expression, len(inv.args))
	copy(out, inv.args)
	return out
}

// ArgCount returns the number of arguments.
func (inv *Invocation) ArgCount() int { return len(inv.args) }

func (inv *Invocation) Generate(f *Formatter) {
	switch {
	case inv.constructor:
		f.Plain("new ").Plain(inv.name)
	case inv.callee != nil:
		if _, ok := inv.callee.(*AnonymousFunction); ok {
			f.Plain("(")
			inv.callee.Generate(f)
			f.Plain(")")
		} else {
			generateOperand(f, inv.callee)
		}
	case inv.object != nil:
		generateOperand(f, inv.object)
		f.Plain(".").Plain(inv.name)
	default:
		f.Plain(inv.name)
	}
	f.Plain("(").List(inv.args).Plain(")")
}

func (inv *Invocation) State(f *Formatter) {
	inv.Generate(f)
	f.Plain(";").NL()
}
