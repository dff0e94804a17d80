// Command jsquery-lint reports deprecated jQuery builder calls.
//
//	go vet -vettool=$(which jsquery-lint) ./...
//	jsquery-lint -catalog=api.yaml ./...
package main

import (
	"github.com/aretw0/jsquery/internal/lint/deprecated"
	"golang.org/x/tools/go/analysis/singlechecker"
)

func main() { singlechecker.Main(deprecated.Analyzer) }
