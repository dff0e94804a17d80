package jqapi

import (
	"fmt"
)

// Validate checks the catalog for structural problems. All problems are
// collected; the result is a *CatalogError wrapping ErrInvalidCatalog, or nil.
func (c *Catalog) Validate() error {
	var problems []error
	fail := func(entry, format string, args ...any) {
		problems = append(problems, &EntryError{Entry: entry, Reason: fmt.Sprintf(format, args...)})
	}

	names := make(map[string]bool)
	instance := make(map[string]string)
	static := make(map[string]string)

	for _, e := range c.entries {
		if e.Name == "" {
			fail("", "entry with empty name")
			continue
		}
		switch e.Type {
		case TypeMethod, TypeProperty, TypeSelector:
		default:
			fail(e.Name, "unknown entry type %q", e.Type)
		}

		if e.Type != TypeSelector {
			if names[e.Name] {
				fail(e.Name, "duplicate name")
			}
			names[e.Name] = true

			id := Identifier(e.Name)
			ids := instance
			if e.IsStatic() {
				ids = static
			}
			switch {
			case id == "":
				fail(e.Name, "no Go identifier can be derived")
			case ids[id] != "":
				fail(e.Name, "identifier %s already used by %q", id, ids[id])
			default:
				ids[id] = e.Name
			}
		}

		if e.Type == TypeMethod && len(e.Signatures) == 0 {
			fail(e.Name, "method without signatures")
		}
		for i, sig := range e.Signatures {
			validateSignature(e.Name, i, sig, fail)
		}

		added := e.Added()
		if e.Deprecated != nil && added != nil && e.Deprecated.LessThan(added) {
			fail(e.Name, "deprecated in %s before it was added in %s", e.Deprecated.Original(), added.Original())
		}
		if e.Removed != nil && e.Deprecated != nil && e.Removed.LessThan(e.Deprecated) {
			fail(e.Name, "removed in %s before it was deprecated in %s", e.Removed.Original(), e.Deprecated.Original())
		}
	}

	if len(problems) > 0 {
		return &CatalogError{Errors: problems}
	}
	return nil
}

func validateSignature(entry string, index int, sig Signature, fail func(entry, format string, args ...any)) {
	if sig.Added == nil {
		fail(entry, "signature %d has no added version", index+1)
	}
	optional := false
	for i, a := range sig.Args {
		if a.Repeat && i != len(sig.Args)-1 {
			fail(entry, "repeating argument %s is not the last one", a.Name)
		}
		if a.Name == "" {
			fail(entry, "signature %d has an argument without name", index+1)
		}
		if _, ok := KindsFor(a.TypeString()); !ok {
			fail(entry, "argument %s has unknown type %q", a.Name, a.TypeString())
		}
		if a.Optional {
			optional = true
		} else if optional {
			fail(entry, "required argument %s follows an optional one", a.Name)
		}
	}
}
