package jscode

import (
	"math"
	"math/big"
)

// binaryOp is a two-operand operation. It always prints its own parentheses,
// except that a left operand using the same operator is printed flat:
// ((a+b)+c) is written as (a+b+c).
type binaryOp struct {
	exprBase
	left  Expression
	op    string
	right Expression
}

func binary(left Expression, op string, right Expression) Expression {
	b := &binaryOp{left: left, op: op, right: right}
	b.self = b
	return b
}

func (b *binaryOp) Generate(f *Formatter) {
	f.Plain("(")
	b.generateInner(f)
	f.Plain(")")
}

func (b *binaryOp) generateInner(f *Formatter) {
	if l, ok := b.left.(*binaryOp); ok && l.op == b.op {
		l.generateInner(f)
	} else {
		b.left.Generate(f)
	}
	f.Plain(b.op)
	if n, ok := b.right.(numeric); ok && n.isNegative() {
		f.Plain("(")
		b.right.Generate(f)
		f.Plain(")")
		return
	}
	b.right.Generate(f)
}

// generateBare prints e without the outer parentheses of a binary operation.
// Conditions of if, while and do statements use it.
func generateBare(f *Formatter, e Expression) {
	if b, ok := e.(*binaryOp); ok {
		b.generateInner(f)
		return
	}
	e.Generate(f)
}

// unaryOp is a prefix or postfix operation.
type unaryOp struct {
	exprBase
	op      string
	operand Expression
	postfix bool
	parens  bool
}

func prefix(op string, operand Expression) Expression {
	u := &unaryOp{op: op, operand: operand}
	u.self = u
	return u
}

func unaryParens(op string, operand Expression) Expression {
	u := &unaryOp{op: op, operand: operand, parens: true}
	u.self = u
	return u
}

func (u *unaryOp) Generate(f *Formatter) {
	if u.postfix {
		u.operand.Generate(f)
		f.Plain(u.op)
		return
	}
	f.Plain(u.op)
	if u.parens {
		f.Plain("(")
		u.operand.Generate(f)
		f.Plain(")")
		return
	}
	u.operand.Generate(f)
}

func step(operand Expression, op string, postfix bool) Expression {
	switch n := operand.(type) {
	case *IntLit:
		if op == "++" {
			return NewInt(n.value + 1)
		}
		return NewInt(n.value - 1)
	case *FloatLit:
		if op == "++" {
			return NewFloat(n.value + 1)
		}
		return NewFloat(n.value - 1)
	}
	u := &unaryOp{op: op, operand: operand, postfix: postfix}
	u.self = u
	return u
}

// ternaryOp is cond?a:b.
type ternaryOp struct {
	exprBase
	cond, ifTrue, ifFalse Expression
}

func newTernary(cond, ifTrue, ifFalse Expression) Expression {
	t := &ternaryOp{cond: cond, ifTrue: ifTrue, ifFalse: ifFalse}
	t.self = t
	return t
}

func (t *ternaryOp) Generate(f *Formatter) {
	f.Plain("(")
	t.cond.Generate(f)
	f.Plain("?")
	t.ifTrue.Generate(f)
	f.Plain(":")
	t.ifFalse.Generate(f)
	f.Plain(")")
}

// Cond creates cond?ifTrue:ifFalse.
func Cond(cond, ifTrue, ifFalse any) Expression {
	return newTernary(Convert(cond), Convert(ifTrue), Convert(ifFalse))
}

// Plus creates left+right. Two string literals are concatenated and two
// number literals are added at build time.
func Plus(left, right Expression) Expression {
	if ls, ok := left.(*StringLit); ok {
		if rs, ok := right.(*StringLit); ok {
			return NewString(ls.value + rs.value)
		}
	}
	if folded, ok := fold(left, right, '+'); ok {
		return folded
	}
	return binary(left, "+", right)
}

// Minus creates left-right, folding number literals.
func Minus(left, right Expression) Expression {
	if folded, ok := fold(left, right, '-'); ok {
		return folded
	}
	return binary(left, "-", right)
}

// Mul creates left*right, folding number literals.
func Mul(left, right Expression) Expression {
	if folded, ok := fold(left, right, '*'); ok {
		return folded
	}
	return binary(left, "*", right)
}

// Div creates left/right, folding number literals.
func Div(left, right Expression) Expression {
	if folded, ok := fold(left, right, '/'); ok {
		return folded
	}
	return binary(left, "/", right)
}

// Mod creates left%right, folding number literals.
func Mod(left, right Expression) Expression {
	if folded, ok := fold(left, right, '%'); ok {
		return folded
	}
	return binary(left, "%", right)
}

// CAnd creates left&&right, simplifying boolean literals.
func CAnd(left, right Expression) Expression {
	switch {
	case left == True:
		return right
	case right == True:
		return left
	case left == False || right == False:
		return False
	}
	return binary(left, "&&", right)
}

// COr creates left||right, simplifying boolean literals.
func COr(left, right Expression) Expression {
	switch {
	case left == True || right == True:
		return True
	case left == False:
		return right
	case right == False:
		return left
	}
	return binary(left, "||", right)
}

// Not creates !(e). The boolean literals are inverted directly.
func Not(e Expression) Expression {
	switch e {
	case True:
		return False
	case False:
		return True
	}
	return unaryParens("!", e)
}

// Negate creates -(e). Number literals are negated directly.
func Negate(e Expression) Expression {
	if n, ok := e.(numeric); ok {
		return n.negated()
	}
	return unaryParens("-", e)
}

// fold evaluates arithmetic on int and float literals.
// Integer division and modulo by zero are left to the JavaScript runtime.
func fold(left, right Expression, op byte) (Expression, bool) {
	switch l := left.(type) {
	case *IntLit:
		switch r := right.(type) {
		case *IntLit:
			return foldInt(l.value, r.value, op)
		case *FloatLit:
			return foldFloat(float64(l.value), r.value, op)
		}
	case *FloatLit:
		switch r := right.(type) {
		case *IntLit:
			return foldFloat(l.value, float64(r.value), op)
		case *FloatLit:
			return foldFloat(l.value, r.value, op)
		}
	}
	return nil, false
}

// foldInt computes in arbitrary precision; results outside int64 become a BigIntLit.
func foldInt(l, r int64, op byte) (Expression, bool) {
	bl, br := big.NewInt(l), big.NewInt(r)
	switch op {
	case '+':
		return intResult(bl.Add(bl, br)), true
	case '-':
		return intResult(bl.Sub(bl, br)), true
	case '*':
		return intResult(bl.Mul(bl, br)), true
	case '/':
		if r == 0 {
			return nil, false
		}
		if l%r == 0 {
			return intResult(bl.Quo(bl, br)), true
		}
		return NewFloat(float64(l) / float64(r)), true
	case '%':
		if r == 0 {
			return nil, false
		}
		return NewInt(l % r), true
	}
	return nil, false
}

func intResult(v *big.Int) Expression {
	if v.IsInt64() {
		return NewInt(v.Int64())
	}
	return NewBigInt(v)
}

func foldFloat(l, r float64, op byte) (Expression, bool) {
	switch op {
	case '+':
		return NewFloat(l + r), true
	case '-':
		return NewFloat(l - r), true
	case '*':
		return NewFloat(l * r), true
	case '/':
		if r == 0 {
			return nil, false
		}
		return NewFloat(l / r), true
	case '%':
		if r == 0 {
			return nil, false
		}
		return NewFloat(math.Mod(l, r)), true
	}
	return nil, false
}
