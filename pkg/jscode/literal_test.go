package jscode_test

import (
	"encoding/json"
	"math"
	"math/big"
	"testing"

	"github.com/aretw0/jsquery/pkg/jscode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert_Values(t *testing.T) {
	bigF, _ := new(big.Float).SetString("1234567890.25")

	tests := []struct {
		name     string
		value    any
		expected string
	}{
		{"nil", nil, "null"},
		{"string", "it's", `'it\'s'`},
		{"bool", false, "false"},
		{"int8", int8(-8), "-8"},
		{"uint16", uint16(65535), "65535"},
		{"large uint64", uint64(math.MaxUint64), "18446744073709551615"},
		{"whole float", 5.0, "5.0"},
		{"float32 shortest form", float32(0.1), "0.1"},
		{"tiny float", 1e-7, "1e-07"},
		{"huge float", 1e21, "1e+21"},
		{"nan", math.NaN(), "NaN"},
		{"negative infinity", math.Inf(-1), "-Infinity"},
		{"big int", big.NewInt(42), "42"},
		{"big float", bigF, "1234567890.25"},
		{"json integer", json.Number("12"), "12"},
		{"json decimal", json.Number("1.5"), "1.5"},
		{"string slice", []string{"a", "b"}, "['a','b']"},
		{"int slice", []int{1, 2}, "[1,2]"},
		{"any slice", []any{1, "x", nil}, "[1,'x',null]"},
		{"array", [2]bool{true, false}, "[true,false]"},
		{"map with sorted keys", map[string]int{"b": 2, "a": 1}, "{a:1,b:2}"},
		{"map key needing quotes", map[string]any{"my-key": "x"}, "{'my-key':'x'}"},
		{"reserved word key", map[string]any{"class": 1}, "{'class':1}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, err := jscode.Render(jscode.Convert(tt.value), jscode.Minimal())
			require.NoError(t, err)
			assert.Equal(t, tt.expected, code)
		})
	}
}

func TestConvert_UnsupportedValue(t *testing.T) {
	tests := []struct {
		name  string
		value any
	}{
		{"struct", struct{}{}},
		{"channel", make(chan int)},
		{"int keyed map", map[int]string{1: "a"}},
		{"nested in slice", []any{1, struct{}{}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := jscode.Render(jscode.Convert(tt.value), jscode.Minimal())
			assert.ErrorIs(t, err, jscode.ErrUnsupportedValue)
		})
	}

	assert.ErrorIs(t, jscode.Err(jscode.Convert(struct{}{})), jscode.ErrUnsupportedValue)
	assert.NoError(t, jscode.Err(jscode.Lit(1)))
}

func TestConvert_FirstErrorWins(t *testing.T) {
	pkg := jscode.NewPackage()
	pkg.InvokeFunc("f").Args(1, struct{}{})
	pkg.InvokeFunc("g").Arg(make(chan int))

	code, err := jscode.Render(pkg, jscode.Minimal())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "struct {}")
	assert.Contains(t, code, "f(1,)")
}

func TestQuote(t *testing.T) {
	tests := []struct {
		in, expected string
	}{
		{"", "''"},
		{"plain", "'plain'"},
		{`a'b`, `'a\'b'`},
		{`back\slash`, `'back\\slash'`},
		{"</script>", `'<\/script>'`},
		{"line\nbreak\ttab\r", `'line\nbreak\ttab\r'`},
		{"  ", `'  '`},
		{"\x01", `'\u0001'`},
		{"äöü", "'äöü'"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.expected, jscode.Quote(tt.in))
		})
	}
}

func TestJSON_EscapesScriptTerminator(t *testing.T) {
	code, err := jscode.Render(jscode.NewJSON(map[string]any{"html": "</script>", "n": 1}), jscode.Minimal())
	require.NoError(t, err)
	assert.NotContains(t, code, "</script>")
	assert.Contains(t, code, `"n":1`)

	_, err = jscode.Render(jscode.NewJSON(make(chan int)), jscode.Minimal())
	assert.Error(t, err)
}

func TestAssocArray(t *testing.T) {
	obj := jscode.NewAssocArray()
	obj.Add("b", 1).Add("a", 2).Add("b", 3)
	assert.Equal(t, "{b:3,a:2}", jscode.Code(obj))
	assert.Equal(t, []string{"b", "a"}, obj.Keys())

	v := obj.ComputeIfAbsent("c", func() jscode.Expression { return jscode.NewArray() })
	v.(*jscode.Array).Add(1)
	again := obj.ComputeIfAbsent("c", func() jscode.Expression { return jscode.Null })
	assert.Same(t, v, again)
	assert.Equal(t, "{b:3,a:2,c:[1]}", jscode.Code(obj))

	obj.Remove("a").Remove("missing")
	_, ok := obj.Get("a")
	assert.False(t, ok)
	assert.Equal(t, 2, obj.Len())

	obj.ForceQuoting(true)
	assert.Equal(t, "{'b':3,'c':[1]}", jscode.Code(obj))

	assert.True(t, jscode.NewAssocArray().IsEmpty())
	assert.Equal(t, "{}", jscode.Code(jscode.NewAssocArray()))
}

func TestIsIdentifier(t *testing.T) {
	for _, s := range []string{"a", "_x", "$", "a1", "camelCase"} {
		assert.True(t, jscode.IsIdentifier(s), s)
	}
	for _, s := range []string{"", "1a", "a-b", "new", "function", "a b"} {
		assert.False(t, jscode.IsIdentifier(s), s)
	}
}

func TestGlobals(t *testing.T) {
	tests := []struct {
		expr     jscode.Expression
		expected string
	}{
		{jscode.ParseInt("10"), "parseInt('10')"},
		{jscode.ParseInt("10", 16), "parseInt('10',16)"},
		{jscode.EncodeURIComponent("a b"), "encodeURIComponent('a b')"},
		{jscode.IsNaN(jscode.NaN), "isNaN(NaN)"},
		{jscode.JSONStringify(jscode.NewRef("x")), "JSON.stringify(x)"},
		{jscode.JSONParse("{}"), "JSON.parse('{}')"},
		{jscode.ConsoleLog("a", 1), "console.log('a',1)"},
		{jscode.Alert("hi"), "window.alert('hi')"},
		{jscode.Document().Ref("title"), "document.title"},
		{jscode.Lit(1).Div(jscode.Infinity), "(1/Infinity)"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, jscode.Code(tt.expr))
		})
	}
}
