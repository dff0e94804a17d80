package jscode

import "strings"

// Block is an ordered list of statements printed between braces.
//
// New statements are inserted at the current position, which normally is the
// end of the block. SetPos moves it so code can be inserted earlier.
type Block struct {
	items  []Statement
	pos    int
	braces bool
}

// NewBlock creates an empty braced block.
func NewBlock() *Block {
	return &Block{braces: true}
}

// Package is a top-level statement list without surrounding braces.
type Package struct {
	*Block
}

// NewPackage creates an empty top-level statement list.
func NewPackage() *Package {
	return &Package{Block: &Block{}}
}

func (b *Block) insert(s Statement) {
	if b.pos >= len(b.items) {
		b.items = append(b.items, s)
	} else {
		b.items = append(b.items, nil)
		copy(b.items[b.pos+1:], b.items[b.pos:])
		b.items[b.pos] = s
	}
	b.pos++
}

// Add inserts a statement.
func (b *Block) Add(s Statement) *Block {
	b.insert(s)
	return b
}

// AddExpr inserts an expression statement: expr;
func (b *Block) AddExpr(e Expression) *Block {
	b.insert(exprStatement{expr: e})
	return b
}

// Direct inserts raw code verbatim.
func (b *Block) Direct(code string) *Block {
	b.insert(NewDirect(code))
	return b
}

// Var declares a variable without initializer.
func (b *Block) Var(name string) *Var {
	v := NewVar(name)
	b.insert(varDecl{v: v})
	return v
}

// VarInit declares a variable initialized with a converted value.
func (b *Block) VarInit(name string, init any) *Var {
	v := NewVar(name)
	v.init = Convert(init)
	b.insert(varDecl{v: v})
	return v
}

// Function declares a named function.
func (b *Block) Function(name string) *Function {
	fn := NewFunction(name)
	b.insert(fn)
	return fn
}

// Invoke inserts object.method(...) and returns the call for adding arguments.
func (b *Block) Invoke(object Expression, method string) *Invocation {
	inv := InvokeMethod(object, method)
	b.insert(inv)
	return inv
}

// InvokeFunc inserts name(...) and returns the call for adding arguments.
func (b *Block) InvokeFunc(name string) *Invocation {
	inv := InvokeFunc(name)
	b.insert(inv)
	return inv
}

// Call inserts callee(...) and returns the call for adding arguments.
func (b *Block) Call(callee Expression) *Invocation {
	inv := Call(callee)
	b.insert(inv)
	return inv
}

// Assign inserts lhs=value.
func (b *Block) Assign(lhs Expression, v any) *Block {
	b.insert(&assignment{lhs: lhs, op: "=", rhs: Convert(v)})
	return b
}

// AssignPlus inserts lhs+=value. Adding zero is dropped and adding a negative
// number literal is written as a subtraction.
func (b *Block) AssignPlus(lhs Expression, v any) *Block {
	rhs := Convert(v)
	if n, ok := rhs.(numeric); ok {
		if n.isZero() {
			return b
		}
		if n.isNegative() {
			b.insert(&assignment{lhs: lhs, op: "-=", rhs: n.negated()})
			return b
		}
	}
	b.insert(&assignment{lhs: lhs, op: "+=", rhs: rhs})
	return b
}

// AssignMinus inserts lhs-=value. Subtracting zero is dropped and subtracting
// a negative number literal is written as an addition.
func (b *Block) AssignMinus(lhs Expression, v any) *Block {
	rhs := Convert(v)
	if n, ok := rhs.(numeric); ok {
		if n.isZero() {
			return b
		}
		if n.isNegative() {
			b.insert(&assignment{lhs: lhs, op: "+=", rhs: n.negated()})
			return b
		}
	}
	b.insert(&assignment{lhs: lhs, op: "-=", rhs: rhs})
	return b
}

// AssignMultiply inserts lhs*=value. Multiplying by one is dropped.
func (b *Block) AssignMultiply(lhs Expression, v any) *Block {
	rhs := Convert(v)
	if n, ok := rhs.(numeric); ok && n.isOne() {
		return b
	}
	b.insert(&assignment{lhs: lhs, op: "*=", rhs: rhs})
	return b
}

// AssignDivide inserts lhs/=value. Dividing by one is dropped.
func (b *Block) AssignDivide(lhs Expression, v any) *Block {
	rhs := Convert(v)
	if n, ok := rhs.(numeric); ok && n.isOne() {
		return b
	}
	b.insert(&assignment{lhs: lhs, op: "/=", rhs: rhs})
	return b
}

// AssignModulo inserts lhs%=value.
func (b *Block) AssignModulo(lhs Expression, v any) *Block {
	b.insert(&assignment{lhs: lhs, op: "%=", rhs: Convert(v)})
	return b
}

// IncrPostfix inserts e++.
func (b *Block) IncrPostfix(e Expression) *Block { return b.AddExpr(e.IncrPostfix()) }

// IncrPrefix inserts ++e.
func (b *Block) IncrPrefix(e Expression) *Block { return b.AddExpr(e.IncrPrefix()) }

// DecrPostfix inserts e--.
func (b *Block) DecrPostfix(e Expression) *Block { return b.AddExpr(e.DecrPostfix()) }

// DecrPrefix inserts --e.
func (b *Block) DecrPrefix(e Expression) *Block { return b.AddExpr(e.DecrPrefix()) }

// Return inserts a return statement. A nil value returns nothing.
func (b *Block) Return(v any) *Block {
	r := &returnStmt{}
	if v != nil {
		r.value = Convert(v)
	}
	b.insert(r)
	return b
}

// Throw inserts throw value.
func (b *Block) Throw(v any) *Block {
	b.insert(&throwStmt{value: Convert(v)})
	return b
}

// NestedBlock inserts a braced block and returns it.
func (b *Block) NestedBlock() *Block {
	nb := NewBlock()
	b.insert(nb)
	return nb
}

// Comment inserts a comment. Comments are only printed when Settings.Comments is set.
func (b *Block) Comment(text string) *Block {
	b.insert(&comment{text: text})
	return b
}

// Pos returns the insertion position.
func (b *Block) Pos() int { return b.pos }

// SetPos moves the insertion position and returns the previous one.
// The position is clamped to the block bounds.
func (b *Block) SetPos(pos int) int {
	old := b.pos
	switch {
	case pos < 0:
		b.pos = 0
	case pos > len(b.items):
		b.pos = len(b.items)
	default:
		b.pos = pos
	}
	return old
}

// PosEnd moves the insertion position to the end and returns it.
func (b *Block) PosEnd() int {
	b.pos = len(b.items)
	return b.pos
}

// Clear removes every statement.
func (b *Block) Clear() *Block {
	b.items = nil
	b.pos = 0
	return b
}

// IsEmpty reports whether the block has no statements.
func (b *Block) IsEmpty() bool { return len(b.items) == 0 }

// Len returns the number of statements.
func (b *Block) Len() int { return len(b.items) }

func (b *Block) Generate(f *Formatter) {
	if !b.braces {
		for _, s := range b.items {
			f.Stmt(s)
		}
		return
	}
	f.Plain("{").NL().Indent()
	for _, s := range b.items {
		f.Stmt(s)
	}
	f.Outdent().Plain("}")
}

func (b *Block) State(f *Formatter) {
	b.Generate(f)
	f.NL()
}

type assignment struct {
	lhs Expression
	op  string
	rhs Expression
}

func (a *assignment) State(f *Formatter) {
	a.lhs.Generate(f)
	f.Plain(a.op)
	a.rhs.Generate(f)
	f.Plain(";").NL()
}

type returnStmt struct {
	value Expression
}

func (r *returnStmt) State(f *Formatter) {
	f.Plain("return")
	if r.value != nil {
		f.Plain(" ")
		r.value.Generate(f)
	}
	f.Plain(";").NL()
}

type throwStmt struct {
	value Expression
}

func (t *throwStmt) State(f *Formatter) {
	f.Plain("throw ")
	t.value.Generate(f)
	f.Plain(";").NL()
}

type comment struct {
	text string
}

func (c *comment) State(f *Formatter) {
	s := f.Settings()
	if !s.Comments {
		return
	}
	if !s.IndentAndAlign {
		f.Plain("/* ").Plain(strings.ReplaceAll(c.text, "*/", "* /")).Plain(" */")
		return
	}
	for _, line := range strings.Split(c.text, "\n") {
		f.Plain("// ").Plain(line).NL()
	}
}
