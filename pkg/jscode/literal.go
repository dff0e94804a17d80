package jscode

import (
	"encoding/json"
	"math"
	"math/big"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// StringLit is a string literal, printed single-quoted.
type StringLit struct {
	exprBase
	value string
}

// NewString creates a string literal.
func NewString(s string) *StringLit {
	l := &StringLit{value: s}
	l.self = l
	return l
}

// Value returns the unquoted string.
func (l *StringLit) Value() string { return l.value }

func (l *StringLit) Generate(f *Formatter) { f.Plain(Quote(l.value)) }

// numeric is implemented by number literals so operators can fold constants.
type numeric interface {
	Expression
	isZero() bool
	isOne() bool
	isNegative() bool
	negated() Expression
}

// IntLit is an integer literal.
type IntLit struct {
	exprBase
	value int64
}

// NewInt creates an integer literal.
func NewInt(v int64) *IntLit {
	l := &IntLit{value: v}
	l.self = l
	return l
}

// Value returns the integer.
func (l *IntLit) Value() int64 { return l.value }

func (l *IntLit) Generate(f *Formatter) { f.Plain(strconv.FormatInt(l.value, 10)) }

func (l *IntLit) isZero() bool        { return l.value == 0 }
func (l *IntLit) isOne() bool         { return l.value == 1 }
func (l *IntLit) isNegative() bool    { return l.value < 0 }
func (l *IntLit) negated() Expression {
	if l.value == math.MinInt64 {
		return NewBigInt(new(big.Int).Neg(big.NewInt(l.value)))
	}
	return NewInt(-l.value)
}

// BigIntLit is an integer literal of arbitrary size.
type BigIntLit struct {
	exprBase
	value *big.Int
}

// NewBigInt creates an arbitrary precision integer literal. The value is copied.
func NewBigInt(v *big.Int) *BigIntLit {
	l := &BigIntLit{value: new(big.Int).Set(v)}
	l.self = l
	return l
}

func (l *BigIntLit) Generate(f *Formatter) { f.Plain(l.value.String()) }

func (l *BigIntLit) isZero() bool        { return l.value.Sign() == 0 }
func (l *BigIntLit) isOne() bool         { return l.value.IsInt64() && l.value.Int64() == 1 }
func (l *BigIntLit) isNegative() bool    { return l.value.Sign() < 0 }
func (l *BigIntLit) negated() Expression { return NewBigInt(new(big.Int).Neg(l.value)) }

// FloatLit is a floating point literal. It always prints a fraction or exponent,
// so 5 is written as 5.0.
type FloatLit struct {
	exprBase
	value float64
}

// NewFloat creates a floating point literal.
func NewFloat(v float64) *FloatLit {
	l := &FloatLit{value: v}
	l.self = l
	return l
}

// Value returns the float.
func (l *FloatLit) Value() float64 { return l.value }

func (l *FloatLit) Generate(f *Formatter) { f.Plain(formatFloat(l.value)) }

func (l *FloatLit) isZero() bool        { return l.value == 0 }
func (l *FloatLit) isOne() bool         { return l.value == 1 }
func (l *FloatLit) isNegative() bool    { return l.value < 0 }
func (l *FloatLit) negated() Expression { return NewFloat(-l.value) }

// BigFloatLit is a decimal literal of arbitrary precision.
type BigFloatLit struct {
	exprBase
	value *big.Float
}

// NewBigFloat creates an arbitrary precision decimal literal. The value is copied.
func NewBigFloat(v *big.Float) *BigFloatLit {
	l := &BigFloatLit{value: new(big.Float).Copy(v)}
	l.self = l
	return l
}

func (l *BigFloatLit) Generate(f *Formatter) {
	s := l.value.Text('f', -1)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	f.Plain(s)
}

func (l *BigFloatLit) isZero() bool { return l.value.Sign() == 0 }
func (l *BigFloatLit) isOne() bool {
	return l.value.Cmp(big.NewFloat(1)) == 0
}
func (l *BigFloatLit) isNegative() bool    { return l.value.Sign() < 0 }
func (l *BigFloatLit) negated() Expression { return NewBigFloat(new(big.Float).Neg(l.value)) }

func formatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}
	abs := math.Abs(v)
	var s string
	if abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		s = strconv.FormatFloat(v, 'e', -1, 64)
	} else {
		s = strconv.FormatFloat(v, 'f', -1, 64)
	}
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}

// JSON is a value serialized with encoding/json and inserted as an object or array literal.
type JSON struct {
	exprBase
	value any
}

// NewJSON wraps any value that encoding/json can marshal.
func NewJSON(v any) *JSON {
	j := &JSON{value: v}
	j.self = j
	return j
}

func (j *JSON) Generate(f *Formatter) {
	data, err := json.Marshal(j.value)
	if err != nil {
		f.Fail(err)
		return
	}
	// Keep "</script>" from terminating an inline script element.
	f.Plain(strings.ReplaceAll(string(data), "</", `<\/`))
}

// Lit is a short form of Convert.
func Lit(v any) Expression {
	return Convert(v)
}

// Convert maps a Go value to an expression.
//
// Supported are nil, Expression, string, bool, every integer and float type,
// *big.Int, *big.Float, json.Number, slices and arrays (as array literals) and
// maps with string keys (as object literals with sorted keys). Any other value
// yields an error node wrapping ErrUnsupportedValue.
func Convert(v any) Expression {
	switch t := v.(type) {
	case nil:
		return Null
	case Expression:
		return t
	case string:
		return NewString(t)
	case bool:
		return Bool(t)
	case int:
		return NewInt(int64(t))
	case int8:
		return NewInt(int64(t))
	case int16:
		return NewInt(int64(t))
	case int32:
		return NewInt(int64(t))
	case int64:
		return NewInt(t)
	case uint:
		return convertUint(uint64(t))
	case uint8:
		return NewInt(int64(t))
	case uint16:
		return NewInt(int64(t))
	case uint32:
		return NewInt(int64(t))
	case uint64:
		return convertUint(t)
	case float32:
		// Round-trip through the shortest 32-bit representation so 0.1f prints as 0.1.
		f, _ := strconv.ParseFloat(strconv.FormatFloat(float64(t), 'g', -1, 32), 64)
		return NewFloat(f)
	case float64:
		return NewFloat(t)
	case *big.Int:
		if t == nil {
			return Null
		}
		return NewBigInt(t)
	case big.Int:
		return NewBigInt(&t)
	case *big.Float:
		if t == nil {
			return Null
		}
		return NewBigFloat(t)
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return NewInt(i)
		}
		if f, err := t.Float64(); err == nil {
			return NewFloat(f)
		}
		return unsupported(v)
	case []string:
		arr := NewArray()
		for _, s := range t {
			arr.Add(s)
		}
		return arr
	case []any:
		arr := NewArray()
		for _, item := range t {
			arr.Add(item)
		}
		return arr
	case map[string]any:
		return convertMap(reflect.ValueOf(t))
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		arr := NewArray()
		for i := 0; i < rv.Len(); i++ {
			arr.Add(rv.Index(i).Interface())
		}
		return arr
	case reflect.Map:
		if rv.Type().Key().Kind() == reflect.String {
			return convertMap(rv)
		}
	}
	return unsupported(v)
}

func convertUint(v uint64) Expression {
	if v > math.MaxInt64 {
		return NewBigInt(new(big.Int).SetUint64(v))
	}
	return NewInt(int64(v))
}

func convertMap(rv reflect.Value) Expression {
	keys := make([]string, 0, rv.Len())
	for _, k := range rv.MapKeys() {
		keys = append(keys, k.String())
	}
	sort.Strings(keys)

	obj := NewAssocArray()
	for _, k := range keys {
		obj.Add(k, rv.MapIndex(reflect.ValueOf(k).Convert(rv.Type().Key())).Interface())
	}
	return obj
}
