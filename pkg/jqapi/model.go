package jqapi

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// EntryType distinguishes catalog entries.
type EntryType string

const (
	TypeMethod   EntryType = "method"
	TypeProperty EntryType = "property"
	TypeSelector EntryType = "selector"
)

// Category groups entries for documentation.
type Category string

const (
	CategoryCore      Category = "core"
	CategoryCallbacks Category = "callbacks"
	CategoryDeferred  Category = "deferred"
	CategoryEvent     Category = "event"
	CategoryStatic    Category = "static"
	CategoryProperty  Category = "property"
)

// StaticPrefix starts the name of every function called on the jQuery object itself.
const StaticPrefix = "jQuery."

// FactoryName is the name of the entry documenting $(...) itself.
const FactoryName = "jQuery"

// prefixGroups are the object types whose methods are documented as "group.method".
var prefixGroups = map[string]Category{
	"callbacks": CategoryCallbacks,
	"deferred":  CategoryDeferred,
	"event":     CategoryEvent,
}

// Argument is one documented parameter of a signature.
type Argument struct {
	Name        string
	Types       []string
	Optional    bool
	// Repeat marks the last argument of a signature as taking any number of
	// further values, e.g. the deferreds of jQuery.when.
	Repeat      bool
	Description string

	kinds Kinds
}

// Kinds returns the argument kinds accepted at this position.
func (a Argument) Kinds() Kinds { return a.kinds }

// Accepts reports whether a value of kind k may be passed for the argument.
func (a Argument) Accepts(k Kind) bool { return a.kinds.Has(k) }

// TypeString returns the documented types joined with '/'.
func (a Argument) TypeString() string { return strings.Join(a.Types, "/") }

// Signature is one documented way of calling a method.
type Signature struct {
	Added *semver.Version
	Args  []Argument
}

// Arity returns the number of arguments.
func (s Signature) Arity() int { return len(s.Args) }

// Repeats reports whether the last argument takes any number of values.
func (s Signature) Repeats() bool { return len(s.Args) > 0 && s.Args[len(s.Args)-1].Repeat }

// Takes reports whether the signature accepts n argument values.
func (s Signature) Takes(n int) bool {
	if s.Repeats() {
		return n >= len(s.Args)
	}
	return n == len(s.Args)
}

// OptionalCount returns the number of optional arguments.
func (s Signature) OptionalCount() int {
	n := 0
	for _, a := range s.Args {
		if a.Optional {
			n++
		}
	}
	return n
}

// sameTypes reports whether both signatures take the same documented types in the same order.
func (s Signature) sameTypes(o Signature) bool {
	if len(s.Args) != len(o.Args) {
		return false
	}
	for i := range s.Args {
		if s.Args[i].TypeString() != o.Args[i].TypeString() || s.Args[i].Repeat != o.Args[i].Repeat {
			return false
		}
	}
	return true
}

// String formats the parameter list, e.g. "className String, state Boolean".
// A repeating argument ends with "...".
func (s Signature) String() string {
	parts := make([]string, len(s.Args))
	for i, a := range s.Args {
		p := a.Name + " " + a.TypeString()
		if a.Repeat {
			p += "..."
		}
		if a.Optional {
			p = "[" + p + "]"
		}
		parts[i] = p
	}
	return strings.Join(parts, ", ")
}

// Entry is a documented method, property or selector.
type Entry struct {
	Type        EntryType
	Name        string
	Return      string
	Description string
	Deprecated  *semver.Version
	Removed     *semver.Version
	Signatures  []Signature

	// Since is the version a property was introduced in. Methods use their signatures.
	Since *semver.Version

	identifier string
	expanded   []Signature
}

// Identifier returns the Go method name derived from Name.
func (e *Entry) Identifier() string { return e.identifier }

// IsStatic reports whether the entry is called on the jQuery function itself.
// The jQuery function entry is static as well.
func (e *Entry) IsStatic() bool { return e.IsFactory() || strings.HasPrefix(e.Name, StaticPrefix) }

// IsFactory reports whether the entry documents the jQuery function, $(...).
func (e *Entry) IsFactory() bool { return e.Name == FactoryName }

// IsDeprecated reports whether the entry carries a deprecation version.
func (e *Entry) IsDeprecated() bool { return e.Deprecated != nil }

// IsRemoved reports whether the entry carries a removal version.
func (e *Entry) IsRemoved() bool { return e.Removed != nil }

// Category returns the documentation group of the entry.
func (e *Entry) Category() Category {
	switch {
	case e.Type == TypeProperty && !e.IsStatic():
		return CategoryProperty
	case e.IsStatic():
		return CategoryStatic
	}
	if group, _, ok := strings.Cut(e.Name, "."); ok {
		if c, known := prefixGroups[group]; known {
			return c
		}
	}
	return CategoryCore
}

// JSName returns the name written after the dot in the rendered call.
// "callbacks.fireWith" renders as "fireWith", "jQuery.fn.extend" as "fn.extend".
func (e *Entry) JSName() string {
	if e.IsStatic() && !e.IsFactory() {
		return strings.TrimPrefix(e.Name, StaticPrefix)
	}
	if group, rest, ok := strings.Cut(e.Name, "."); ok {
		if _, known := prefixGroups[group]; known {
			return rest
		}
	}
	return e.Name
}

// Added returns the earliest version the entry is available in.
func (e *Entry) Added() *semver.Version {
	if e.Since != nil {
		return e.Since
	}
	var min *semver.Version
	for _, s := range e.Signatures {
		if s.Added != nil && (min == nil || s.Added.LessThan(min)) {
			min = s.Added
		}
	}
	return min
}

// Expanded returns all arity variants of all signatures, without duplicates.
// Shorter variants of a signature come before it.
func (e *Entry) Expanded() []Signature {
	if e.expanded == nil {
		return expandAll(e.Signatures)
	}
	return e.expanded
}

// DeprecationNotice describes the deprecation, e.g.
// "deprecated since jQuery 1.7, removed in jQuery 1.9". It is empty for current entries.
func (e *Entry) DeprecationNotice() string {
	if e.Deprecated == nil {
		return ""
	}
	msg := "deprecated since jQuery " + e.Deprecated.Original()
	if e.Removed != nil {
		msg += ", removed in jQuery " + e.Removed.Original()
	}
	return msg
}

// Call formats a signature as a call of this entry, e.g. "addClass(className String)".
func (e *Entry) Call(s Signature) string {
	return fmt.Sprintf("%s(%s)", e.Name, s.String())
}

func (e *Entry) String() string {
	return fmt.Sprintf("%s %s", e.Type, e.Name)
}
