/*
Package jsquery renders declarative jQuery chains to JavaScript source.

A chain spec names a root, such as an element id or $(document), and the
jQuery methods called on it. Every call is checked against a catalog of the
documented jQuery API before any code is written, so a misspelled method or an
argument of the wrong kind is an error instead of broken JavaScript.

# Packages

  - pkg/jscode: JavaScript expressions, statements and their printer.
  - pkg/jqapi: the API catalog (methods, signatures, versions, deprecations).
  - pkg/jquery: the typed fluent builder and the chain spec format.
  - pkg/adapters: render caches, the HTTP service and the MCP server.

# Usage

The Engine is the entry point shared by the CLI and the services.

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/aretw0/jsquery"
	)

	func main() {
		eng := jsquery.New()

		res, err := eng.RenderDocument(context.Background(), []byte(`
	root: {kind: id, value: main}
	calls:
	  - method: addClass
	    args: [{class: active}]
	`))
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(res.Code) // $('#main').addClass('active')
	}

Go programs can also use pkg/jquery directly:

	code, err := jquery.IDRef("main").AddClass("active").JSCode()
*/
package jsquery
