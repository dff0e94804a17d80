package jscode

import "regexp"

// Array is an array literal: [a,b,c].
type Array struct {
	exprBase
	items []Expression
}

// NewArray creates an empty array literal.
func NewArray() *Array {
	a := &Array{}
	a.self = a
	return a
}

// Add appends a converted element.
func (a *Array) Add(v any) *Array {
	a.items = append(a.items, Convert(v))
	return a
}

// Len returns the number of elements.
func (a *Array) Len() int { return len(a.items) }

func (a *Array) Generate(f *Formatter) {
	f.Plain("[").List(a.items).Plain("]")
}

// AssocArray is an object literal with keys kept in insertion order.
type AssocArray struct {
	exprBase
	keys         []string
	values       map[string]Expression
	forceQuoting bool
}

// NewAssocArray creates an empty object literal.
func NewAssocArray() *AssocArray {
	a := &AssocArray{values: make(map[string]Expression)}
	a.self = a
	return a
}

// ForceQuoting quotes every key, not just those that are not identifiers.
func (a *AssocArray) ForceQuoting(v bool) *AssocArray {
	a.forceQuoting = v
	return a
}

// Add sets key to a converted value. An existing key keeps its position.
func (a *AssocArray) Add(key string, v any) *AssocArray {
	if _, ok := a.values[key]; !ok {
		a.keys = append(a.keys, key)
	}
	a.values[key] = Convert(v)
	return a
}

// Remove deletes key if present.
func (a *AssocArray) Remove(key string) *AssocArray {
	if _, ok := a.values[key]; !ok {
		return a
	}
	delete(a.values, key)
	for i, k := range a.keys {
		if k == key {
			a.keys = append(a.keys[:i], a.keys[i+1:]...)
			break
		}
	}
	return a
}

// Get returns the value stored under key.
func (a *AssocArray) Get(key string) (Expression, bool) {
	v, ok := a.values[key]
	return v, ok
}

// ComputeIfAbsent returns the value under key, storing create() first if the key is missing.
func (a *AssocArray) ComputeIfAbsent(key string, create func() Expression) Expression {
	if v, ok := a.values[key]; ok {
		return v
	}
	v := create()
	a.keys = append(a.keys, key)
	a.values[key] = v
	return v
}

// Keys returns the keys in insertion order.
func (a *AssocArray) Keys() []string {
	out := make([]string, len(a.keys))
	copy(out, a.keys)
	return out
}

// Len returns the number of entries.
func (a *AssocArray) Len() int { return len(a.keys) }

// IsEmpty reports whether the literal has no entries.
func (a *AssocArray) IsEmpty() bool { return len(a.keys) == 0 }

func (a *AssocArray) Generate(f *Formatter) {
	f.Plain("{")
	for i, k := range a.keys {
		if i > 0 {
			f.Plain(",")
		}
		if a.forceQuoting || !IsIdentifier(k) {
			f.Plain(Quote(k))
		} else {
			f.Plain(k)
		}
		f.Plain(":")
		a.values[k].Generate(f)
	}
	f.Plain("}")
}

var identifierPattern = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

var reservedWords = map[string]bool{
	"break": true, "case": true, "catch": true, "class": true, "const": true,
	"continue": true, "debugger": true, "default": true, "delete": true, "do": true,
	"else": true, "enum": true, "export": true, "extends": true, "false": true,
	"finally": true, "for": true, "function": true, "if": true, "import": true,
	"in": true, "instanceof": true, "new": true, "null": true, "return": true,
	"super": true, "switch": true, "this": true, "throw": true, "true": true,
	"try": true, "typeof": true, "var": true, "void": true, "while": true, "with": true,
}

// IsIdentifier reports whether s can be used unquoted as a JavaScript name.
func IsIdentifier(s string) bool {
	return identifierPattern.MatchString(s) && !reservedWords[s]
}
