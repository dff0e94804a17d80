// Package deprecated reports uses of jQuery builder methods and helpers that
// the API catalog marks as deprecated.
//
// The analyzer and the generated "Deprecated:" doc lines read the same
// catalog entries, so both always flag the same methods.
package deprecated

import (
	"fmt"
	"go/ast"
	"go/constant"
	"go/types"
	"strings"
	"sync"

	"github.com/aretw0/jsquery/pkg/jqapi"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

// JQueryPath is the import path of the builder package.
const JQueryPath = "github.com/aretw0/jsquery/pkg/jquery"

const doc = `report deprecated jQuery methods

The jquerydeprecated analyzer flags calls of *jquery.Invocation methods,
jquery package helpers and jquery.Static calls with a constant name whose
catalog entry is deprecated, e.g.

	jquery method bind is deprecated since jQuery 3.0`

// Analyzer reports deprecated jQuery calls.
var Analyzer = &analysis.Analyzer{
	Name:     "jquerydeprecated",
	Doc:      doc,
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

var catalogPath string

func init() {
	Analyzer.Flags.StringVar(&catalogPath, "catalog", "", "path of an alternative API catalog (YAML)")
}

var (
	catalogOnce sync.Once
	catalog     *jqapi.Catalog
	catalogErr  error
)

func loadCatalog() (*jqapi.Catalog, error) {
	catalogOnce.Do(func() {
		if catalogPath == "" {
			catalog = jqapi.Default()
			return
		}
		catalog, catalogErr = jqapi.LoadFile(catalogPath)
	})
	return catalog, catalogErr
}

// Notice returns the report message for the Go method or helper named id.
// static selects the helpers of the jquery package, such as ParseJSON,
// instead of the *Invocation methods. ok is false when the entry is unknown
// or current.
func Notice(cat *jqapi.Catalog, id string, static bool) (msg string, ok bool) {
	var e *jqapi.Entry
	if static {
		e, ok = cat.StaticByIdentifier(id)
	} else {
		e, ok = cat.ByIdentifier(id)
	}
	if !ok || !e.IsDeprecated() {
		return "", false
	}
	return message(e), true
}

func message(e *jqapi.Entry) string {
	return fmt.Sprintf("jquery method %s is %s", e.Name, e.DeprecationNotice())
}

func run(pass *analysis.Pass) (any, error) {
	cat, err := loadCatalog()
	if err != nil {
		return nil, err
	}

	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	insp.Preorder([]ast.Node{(*ast.CallExpr)(nil)}, func(n ast.Node) {
		call := n.(*ast.CallExpr)
		sel, ok := ast.Unparen(call.Fun).(*ast.SelectorExpr)
		if !ok {
			return
		}

		fn, ok := pass.TypesInfo.Uses[sel.Sel].(*types.Func)
		if !ok || fn.Pkg() == nil || fn.Pkg().Path() != JQueryPath {
			return
		}

		sig := fn.Type().(*types.Signature)
		switch recv := receiverName(sig); recv {
		case "Invocation":
			if msg, ok := Notice(cat, fn.Name(), false); ok {
				pass.Reportf(sel.Sel.Pos(), "%s", msg)
			}
		case "", "Builder":
			if fn.Name() == "Static" {
				reportStatic(pass, cat, call)
				return
			}
			if recv == "" {
				if msg, ok := Notice(cat, fn.Name(), true); ok {
					pass.Reportf(sel.Sel.Pos(), "%s", msg)
				}
			}
		}
	})
	return nil, nil
}

// reportStatic checks Static("name", ...) calls whose name is a constant.
func reportStatic(pass *analysis.Pass, cat *jqapi.Catalog, call *ast.CallExpr) {
	if len(call.Args) == 0 {
		return
	}
	tv, ok := pass.TypesInfo.Types[call.Args[0]]
	if !ok || tv.Value == nil || tv.Value.Kind() != constant.String {
		return
	}
	name := constant.StringVal(tv.Value)
	e, ok := cat.Lookup(jqapi.StaticPrefix + name)
	if !ok || !e.IsDeprecated() {
		return
	}
	pass.Reportf(call.Args[0].Pos(), "%s", message(e))
}

func receiverName(sig *types.Signature) string {
	recv := sig.Recv()
	if recv == nil {
		return ""
	}
	t := recv.Type()
	if p, ok := t.(*types.Pointer); ok {
		t = p.Elem()
	}
	named, ok := t.(*types.Named)
	if !ok {
		return strings.TrimPrefix(t.String(), "*")
	}
	return named.Obj().Name()
}
