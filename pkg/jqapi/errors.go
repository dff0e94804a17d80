package jqapi

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownMethod is returned when a name is not in the catalog.
	ErrUnknownMethod = errors.New("unknown jquery method")
	// ErrNoMatchingSignature is returned when no signature accepts the given arguments.
	ErrNoMatchingSignature = errors.New("no matching signature")
	// ErrInvalidCatalog is returned when a catalog fails validation.
	ErrInvalidCatalog = errors.New("invalid catalog")
)

// SignatureError reports a call that matches none of a method's signatures.
type SignatureError struct {
	Method string // Documented method name
	Args   []Kind // Kinds of the arguments passed
	Reason string // Human-readable reason for failure
}

func (e *SignatureError) Error() string {
	kinds := make([]string, len(e.Args))
	for i, k := range e.Args {
		kinds[i] = k.String()
	}
	return fmt.Sprintf("jquery method %s(%s): %s", e.Method, strings.Join(kinds, ", "), e.Reason)
}

func (e *SignatureError) Unwrap() error { return ErrNoMatchingSignature }

// EntryError represents a single catalog validation failure.
type EntryError struct {
	Entry  string // Entry name, empty for catalog-wide problems
	Reason string // Human-readable reason for failure
}

func (e *EntryError) Error() string {
	if e.Entry == "" {
		return e.Reason
	}
	return fmt.Sprintf("entry %q: %s", e.Entry, e.Reason)
}

// CatalogError represents multiple catalog validation failures.
type CatalogError struct {
	Errors []error
}

func (e *CatalogError) Error() string {
	if len(e.Errors) == 1 {
		return ErrInvalidCatalog.Error() + ": " + e.Errors[0].Error()
	}
	msg := fmt.Sprintf("%s: %d errors:\n", ErrInvalidCatalog, len(e.Errors))
	for i, err := range e.Errors {
		msg += fmt.Sprintf("  %d. %s\n", i+1, err.Error())
	}
	return msg
}

// Is makes errors.Is(err, ErrInvalidCatalog) hold for every CatalogError.
func (e *CatalogError) Is(target error) bool { return target == ErrInvalidCatalog }

// Problems returns all validation errors if err is or wraps a CatalogError.
// Otherwise returns nil.
func Problems(err error) []error {
	var ce *CatalogError
	if errors.As(err, &ce) {
		return ce.Errors
	}
	return nil
}
