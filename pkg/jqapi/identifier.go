package jqapi

import (
	"strings"
	"unicode"
)

// reservedIdentifiers are method names the builder uses for its own API.
// A catalog entry deriving one of them gets the "Method" suffix.
var reservedIdentifiers = map[string]bool{
	"Call":       true,
	"Catalog":    true,
	"Check":      true,
	"Disable":    true,
	"Enable":     true,
	"Err":        true,
	"Expr":       true,
	"Fork":       true,
	"Generate":   true,
	"JSCode":     true,
	"MustRender": true,
	"Plugin":     true,
	"Render":     true,
	"State":      true,
	"Static":     true,
	"String":     true,
	"Uncheck":    true,
}

// Identifier derives the Go method name for a documented name.
//
// Each dot separated part is capitalized and joined, so "callbacks.fireWith"
// becomes "CallbacksFireWith" and "jQuery.fn.extend" becomes "FnExtend".
// Characters that cannot appear in a Go identifier are dropped.
func Identifier(name string) string {
	name = strings.TrimPrefix(name, StaticPrefix)
	var sb strings.Builder
	for _, part := range strings.Split(name, ".") {
		first := true
		for _, r := range part {
			if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
				first = true
				continue
			}
			if first {
				r = unicode.ToUpper(r)
				first = false
			}
			sb.WriteRune(r)
		}
	}
	id := sb.String()
	if id == "" {
		return ""
	}
	if unicode.IsDigit(rune(id[0])) {
		id = "M" + id
	}
	if reservedIdentifiers[id] {
		id += "Method"
	}
	return id
}
