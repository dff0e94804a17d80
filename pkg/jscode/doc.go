/*
Package jscode builds small JavaScript syntax trees and prints them as source text.

It is not an interpreter. Expressions, statements and blocks are assembled with a
fluent API and rendered by a Formatter, either in a minimal single-line form or in
an indented form suitable for reading.

Example usage:

	pkg := jscode.NewPackage()
	fn := pkg.Function("add")
	a, b := fn.Param("a"), fn.Param("b")
	fn.Body().Return(a.Plus(b))
	pkg.Add(fn.Call().Args(1, 2))

	code, err := jscode.Render(pkg, jscode.Minimal())
	// code == "function add(a,b){return (a+b);}add(1,2);"

Building never fails eagerly. A Go value that has no JavaScript representation turns
into an error node, and Render reports the first such error.
*/
package jscode
