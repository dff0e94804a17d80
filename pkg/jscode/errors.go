package jscode

import (
	"errors"
	"fmt"
)

// ErrUnsupportedValue is returned when a Go value cannot be represented as JavaScript.
var ErrUnsupportedValue = errors.New("unsupported value")

// errorExpr is a placeholder left in the tree where an expression could not be built.
// It prints nothing and reports its error to the Formatter.
type errorExpr struct {
	exprBase
	err error
}

func newErrorExpr(err error) *errorExpr {
	e := &errorExpr{err: err}
	e.self = e
	return e
}

func unsupported(v any) *errorExpr {
	return newErrorExpr(fmt.Errorf("%w: %T", ErrUnsupportedValue, v))
}

func (e *errorExpr) Generate(f *Formatter) {
	f.Fail(e.err)
}

// Invalid returns an expression that makes rendering fail with err.
func Invalid(err error) Expression {
	return newErrorExpr(err)
}

// Err returns the error carried by an error node, or nil for any other expression.
func Err(e Expression) error {
	if ee, ok := e.(*errorExpr); ok {
		return ee.err
	}
	return nil
}
