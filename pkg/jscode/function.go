package jscode

// Var is a named variable or parameter. It prints as its name.
type Var struct {
	exprBase
	name string
	init Expression
}

// NewVar creates an unbound variable reference, e.g. a loop variable.
func NewVar(name string) *Var {
	v := &Var{name: name}
	v.self = v
	return v
}

// Name returns the variable name.
func (v *Var) Name() string { return v.name }

// Init returns the initializer, or nil.
func (v *Var) Init() Expression { return v.init }

func (v *Var) Generate(f *Formatter) { f.Plain(v.name) }

// declare prints "var name=init" without a terminator.
func (v *Var) declare(f *Formatter) {
	f.Plain("var ").Plain(v.name)
	if v.init != nil {
		f.Plain("=")
		v.init.Generate(f)
	}
}

type varDecl struct {
	v *Var
}

func (d varDecl) State(f *Formatter) {
	d.v.declare(f)
	f.Plain(";").NL()
}

// AnonymousFunction is a function expression: function(a,b){...}.
type AnonymousFunction struct {
	exprBase
	params []*Var
	body   *Block
}

// NewAnonymousFunction creates an empty function expression.
func NewAnonymousFunction() *AnonymousFunction {
	fn := &AnonymousFunction{body: NewBlock()}
	fn.self = fn
	return fn
}

// Param appends a parameter and returns it for use in the body.
func (fn *AnonymousFunction) Param(name string) *Var {
	v := NewVar(name)
	fn.params = append(fn.params, v)
	return v
}

// Params returns the declared parameters.
func (fn *AnonymousFunction) Params() []*Var { return fn.params }

// Body returns the function body.
func (fn *AnonymousFunction) Body() *Block { return fn.body }

// Call calls the function expression in place: (function(){...})(args).
func (fn *AnonymousFunction) Call() *Invocation { return Call(fn) }

func (fn *AnonymousFunction) Generate(f *Formatter) {
	f.Plain("function(")
	generateParams(f, fn.params)
	f.Plain(")")
	fn.body.Generate(f)
}

// Function is a named function declaration.
type Function struct {
	name   string
	params []*Var
	body   *Block
}

// NewFunction creates an empty function declaration.
func NewFunction(name string) *Function {
	return &Function{name: name, body: NewBlock()}
}

// Name returns the function name.
func (fn *Function) Name() string { return fn.name }

// Param appends a parameter and returns it for use in the body.
func (fn *Function) Param(name string) *Var {
	v := NewVar(name)
	fn.params = append(fn.params, v)
	return v
}

// Body returns the function body.
func (fn *Function) Body() *Block { return fn.body }

// Call creates a call of this function by name.
func (fn *Function) Call() *Invocation { return InvokeFunc(fn.name) }

func (fn *Function) State(f *Formatter) {
	f.Plain("function ").Plain(fn.name).Plain("(")
	generateParams(f, fn.params)
	f.Plain(")")
	fn.body.Generate(f)
	f.NL()
}

func generateParams(f *Formatter, params []*Var) {
	for i, p := range params {
		if i > 0 {
			f.Plain(",")
		}
		f.Plain(p.name)
	}
}
