package jscode_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/aretw0/jsquery/pkg/jscode"
	"github.com/stretchr/testify/assert"
)

func TestExpression_Operators(t *testing.T) {
	a := jscode.NewRef("a")
	b := jscode.NewRef("b")

	tests := []struct {
		name     string
		expr     jscode.Expression
		expected string
	}{
		{"plus", a.Plus(b), "(a+b)"},
		{"same operator is flattened", a.Plus(1).Plus(2), "(a+1+2)"},
		{"different operator nests", a.Plus(1).Mul(2), "((a+1)*2)"},
		{"negative right operand", a.Minus(-4), "(a-(-4))"},
		{"negative float operand", a.Plus(-1.5), "(a+(-1.5))"},
		{"shift", a.Shl(2).Shr(1).Shrz(3), "(((a<<2)>>1)>>>3)"},
		{"bitwise", a.BAnd(1).BOr(b).Xor(4), "(((a&1)|b)^4)"},
		{"comparisons", a.Lt(1).CAnd(b.Gte(2)), "((a<1)&&(b>=2))"},
		{"equality", a.Eq(b).COr(a.ENe(nil)), "((a==b)||(a!==null))"},
		{"instanceof", a.InstanceOf("Date"), "(a instanceof Date)"},
		{"not", a.Not(), "!(a)"},
		{"complement", a.Complement(), "~(a)"},
		{"negate", a.Negate(), "-(a)"},
		{"typeof", a.TypeOf(), "typeof a"},
		{"typeof equals", a.TypeOfEq("string"), "(typeof a==='string')"},
		{"is undefined", a.IsUndefined(), "(typeof a==='undefined')"},
		{"component is undefined", a.Component(0).IsUndefined(), "(a[0]===undefined)"},
		{"component is not undefined", a.Component("k").IsNotUndefined(), "(a['k']!==undefined)"},
		{"ternary", a.Cond(1, "x"), "(a?1:'x')"},
		{"explicit parens", a.Plus(b).InParens(), "((a+b))"},
		{"postfix", a.IncrPostfix(), "a++"},
		{"prefix", a.DecrPrefix(), "--a"},
		{"member of unary is wrapped", a.TypeOf().Ref("length"), "(typeof a).length"},
		{"method of int literal", jscode.NewInt(5).Invoke("toString"), "(5).toString()"},
		{"member of negative int", jscode.NewInt(-1).Ref("x"), "(-1).x"},
		{"component of negative int", jscode.NewInt(-1).Component(0), "(-1)[0]"},
		{"method of big int", jscode.NewBigInt(big.NewInt(7)).Invoke("toString"), "(7).toString()"},
		{"method of float literal", jscode.NewFloat(2.5).Invoke("toFixed"), "2.5.toFixed()"},
		{"method of negative float", jscode.NewFloat(-2.5).Invoke("toFixed"), "(-2.5).toFixed()"},
		{"ref chain", jscode.RefChain(a, "b", "c"), "a.b.c"},
		{"this ref", jscode.RefThis("x"), "this.x"},
		{"method call", a.Invoke("m").Args(1, "s", true), "a.m(1,'s',true)"},
		{"constructor", jscode.New("Date").Arg(0), "new Date(0)"},
		{"regex flags", jscode.NewRegex("a+b").Gim(true, false, true), "/a+b/gm"},
		{"direct", jscode.NewDirect("x || y"), "x || y"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, jscode.Code(tt.expr))
		})
	}
}

func TestExpression_Folding(t *testing.T) {
	tests := []struct {
		name     string
		expr     jscode.Expression
		expected string
	}{
		{"int addition", jscode.Lit(1).Plus(2), "3"},
		{"int subtraction", jscode.Lit(1).Minus(5), "-4"},
		{"int multiplication", jscode.Lit(6).Mul(7), "42"},
		{"exact division stays int", jscode.Lit(8).Div(2), "4"},
		{"inexact division becomes float", jscode.Lit(7).Div(2), "3.5"},
		{"division by zero is kept", jscode.Lit(1).Div(0), "(1/0)"},
		{"modulo", jscode.Lit(7).Mod(3), "1"},
		{"mixed int and float", jscode.Lit(1).Plus(0.5), "1.5"},
		{"float result keeps fraction", jscode.Lit(2.5).Mul(2), "5.0"},
		{"string concatenation", jscode.Lit("ab").Plus("cd"), "'abcd'"},
		{"string and number are not folded", jscode.Lit("a").Plus(1), "('a'+1)"},
		{"increment literal", jscode.Lit(5).IncrPostfix(), "6"},
		{"decrement float literal", jscode.Lit(1.5).DecrPrefix(), "0.5"},
		{"negate literal", jscode.Lit(5).Negate(), "-5"},
		{"addition past int64", jscode.Lit(int64(math.MaxInt64)).Plus(1), "9223372036854775808"},
		{"subtraction past int64", jscode.Lit(int64(math.MinInt64)).Minus(1), "-9223372036854775809"},
		{"multiplication past int64", jscode.Lit(int64(1 << 40)).Mul(int64(1 << 40)), "1208925819614629174706176"},
		{"division past int64", jscode.Lit(int64(math.MinInt64)).Div(-1), "9223372036854775808"},
		{"negate smallest int64", jscode.Lit(int64(math.MinInt64)).Negate(), "9223372036854775808"},
		{"result back in range", jscode.Lit(int64(math.MaxInt64)).Plus(1).Minus(1), "(9223372036854775808-1)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, jscode.Code(tt.expr))
		})
	}
}

func TestExpression_BooleanSimplification(t *testing.T) {
	a := jscode.NewRef("a")

	assert.Same(t, a, jscode.True.CAnd(a))
	assert.Same(t, a, a.CAnd(true))
	assert.Equal(t, jscode.False, a.CAnd(false))
	assert.Equal(t, jscode.False, jscode.False.CAnd(a))

	assert.Equal(t, jscode.True, a.COr(true))
	assert.Same(t, a, jscode.False.COr(a))
	assert.Same(t, a, a.COr(false))

	assert.Equal(t, jscode.False, jscode.True.Not())
	assert.Equal(t, jscode.True, jscode.False.Not())
	assert.Equal(t, jscode.True, jscode.Bool(true))
	assert.Equal(t, "true", jscode.Code(jscode.Lit(true)))
}

func TestExpression_ConditionsPrintWithoutOuterParens(t *testing.T) {
	pkg := jscode.NewPackage()
	x := jscode.NewRef("x")
	pkg.While(x.Gt(0).CAnd(x.Lt(10))).Body().DecrPostfix(x)
	pkg.Do(x.Eq(1)).Body().Break()

	assert.Equal(t, "while((x>0)&&(x<10)){x--;}do{break;}while(x==1);", jscode.Code(pkg))
}

func TestFunction_Declarations(t *testing.T) {
	pkg := jscode.NewPackage()
	fn := pkg.Function("double")
	x := fn.Param("x")
	fn.Body().Return(x.Mul(2))
	pkg.AddExpr(fn.Call().Arg(21))

	anon := jscode.NewAnonymousFunction()
	anon.Body().Return(nil)
	pkg.VarInit("noop", anon)
	pkg.Add(anon.Call())

	assert.Equal(t, "function double(x){return (x*2);}double(21);var noop=function(){return;};(function(){return;})();",
		jscode.Code(pkg))
	assert.Len(t, anon.Params(), 0)
	assert.Equal(t, "double", fn.Name())
}

func TestLoops(t *testing.T) {
	tests := []struct {
		name     string
		build    func(p *jscode.Package)
		expected string
	}{
		{
			name: "counting up",
			build: func(p *jscode.Package) {
				p.For().SimpleLoop("i", 0, 3).Body().InvokeFunc("f")
			},
			expected: "for(var i=0;(i<3);i++){f();}",
		},
		{
			name: "counting down",
			build: func(p *jscode.Package) {
				p.For().SimpleLoop("i", 3, 0).Body().InvokeFunc("f")
			},
			expected: "for(var i=3;(i>0);i--){f();}",
		},
		{
			name: "several init variables",
			build: func(p *jscode.Package) {
				l := p.For()
				i := l.Init("i", 0)
				n := l.Init("n", 10)
				l.Test(i.Lt(n)).Update(i.IncrPostfix())
			},
			expected: "for(var i=0,n=10;(i<n);i++);",
		},
		{
			name: "empty while body",
			build: func(p *jscode.Package) {
				p.While(jscode.InvokeFunc("next"))
			},
			expected: "while(next());",
		},
		{
			name: "for in",
			build: func(p *jscode.Package) {
				l := p.ForIn("k", jscode.NewRef("obj"))
				l.Body().AddExpr(jscode.ConsoleLog(l.Var()))
			},
			expected: "for(var k in obj){console.log(k);}",
		},
		{
			name: "continue",
			build: func(p *jscode.Package) {
				p.While(true).Body().Continue()
			},
			expected: "while(true){continue;}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := jscode.NewPackage()
			tt.build(p)
			assert.Equal(t, tt.expected, jscode.Code(p))
		})
	}
}

func TestInvocation_Arguments(t *testing.T) {
	inv := jscode.InvokeFunc("f").Args(1, 3)
	inv.InsertArg(1, 2)
	inv.InsertArg(-1, 0)
	inv.InsertArg(99, 4)
	inv.ArgNull().ArgThis()

	assert.Equal(t, "f(0,1,2,3,4,null,this)", jscode.Code(inv))
	assert.Equal(t, 7, inv.ArgCount())
	assert.Equal(t, "f", inv.Name())
	assert.Nil(t, inv.Object())

	args := inv.Arguments()
	args[0] = jscode.Null
	assert.Equal(t, "f(0,1,2,3,4,null,this)", jscode.Code(inv), "Arguments must return a copy")
}
