package jqapi

import (
	"strconv"
	"strings"
)

// Kind is one member of the argument union accepted by builder methods.
type Kind uint8

const (
	KindExpression Kind = iota
	KindJSON
	KindHTML
	KindCSSClass
	KindString
	KindBool
	KindInt
	KindBigInt
	KindFloat
	KindBigFloat
	KindFunction
	KindSelector
	KindSelectorList
	KindElement
	KindElements
	KindInvocation
	KindArray
	KindStrings
	KindQName

	kindCount
)

var kindNames = [...]string{
	KindExpression:   "Expression",
	KindJSON:         "JSON",
	KindHTML:         "HTML",
	KindCSSClass:     "CSSClass",
	KindString:       "String",
	KindBool:         "Bool",
	KindInt:          "Int",
	KindBigInt:       "BigInt",
	KindFloat:        "Float",
	KindBigFloat:     "BigFloat",
	KindFunction:     "Function",
	KindSelector:     "Selector",
	KindSelectorList: "SelectorList",
	KindElement:      "Element",
	KindElements:     "Elements",
	KindInvocation:   "Invocation",
	KindArray:        "Array",
	KindStrings:      "Strings",
	KindQName:        "QName",
}

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Kinds is a set of Kind values.
type Kinds uint32

// KindSet builds a set from its members.
func KindSet(kinds ...Kind) Kinds {
	var s Kinds
	for _, k := range kinds {
		s = s.With(k)
	}
	return s
}

// With returns s plus k.
func (s Kinds) With(k Kind) Kinds { return s | 1<<k }

// Union returns every kind in s or o.
func (s Kinds) Union(o Kinds) Kinds { return s | o }

// Has reports whether k is in s.
func (s Kinds) Has(k Kind) bool { return s&(1<<k) != 0 }

// List returns the members in declaration order.
func (s Kinds) List() []Kind {
	var out []Kind
	for k := Kind(0); k < kindCount; k++ {
		if s.Has(k) {
			out = append(out, k)
		}
	}
	return out
}

func (s Kinds) String() string {
	names := make([]string, 0, kindCount)
	for _, k := range s.List() {
		names = append(names, k.String())
	}
	return strings.Join(names, "|")
}

var (
	integerKinds = KindSet(KindExpression, KindInt, KindBigInt)
	numberKinds  = integerKinds.Union(KindSet(KindFloat, KindBigFloat))
	exprOnly     = KindSet(KindExpression)
	objectKinds  = KindSet(KindExpression, KindJSON)
	jqueryKinds  = KindSet(KindExpression, KindInvocation)
	anyKinds     = Kinds(1<<kindCount - 1)
)

// docTypes maps the type names used on api.jquery.com to accepted kinds.
var docTypes = map[string]Kinds{
	"Boolean":         KindSet(KindExpression, KindBool),
	"String":          KindSet(KindExpression, KindJSON, KindHTML, KindString),
	"Text":            KindSet(KindExpression, KindJSON, KindHTML, KindString),
	"htmlString":      KindSet(KindExpression, KindHTML, KindString),
	"Integer":         integerKinds,
	"Number":          numberKinds,
	"Selector":        KindSet(KindExpression, KindSelector, KindSelectorList, KindElement, KindCSSClass, KindString),
	"Function":        KindSet(KindExpression, KindFunction),
	"Object":          objectKinds,
	"PlainObject":     objectKinds,
	"Anything":        anyKinds,
	"Error":           exprOnly,
	"document":        exprOnly,
	"Deferred":        jqueryKinds,
	"Event":           exprOnly,
	"Promise":         jqueryKinds,
	"XMLDocument":     exprOnly,
	"Callbacks":       exprOnly,
	"Array":           KindSet(KindExpression, KindArray, KindStrings),
	"ArrayLikeObject": KindSet(KindExpression, KindArray, KindStrings),
	"Element":         KindSet(KindExpression, KindElement, KindString),
	"Elements":        KindSet(KindExpression, KindElements, KindStrings),
	"jQuery":          jqueryKinds,
	"jQuery object":   jqueryKinds,
	"Null":            jqueryKinds,
}

// KindsFor returns the kinds accepted for a documented argument type.
// Several types may be joined with '/', in which case the union is returned.
// ok is false if any part is unknown.
func KindsFor(docType string) (kinds Kinds, ok bool) {
	for _, part := range strings.Split(docType, "/") {
		k, found := docTypes[strings.TrimSpace(part)]
		if !found {
			return 0, false
		}
		kinds = kinds.Union(k)
	}
	return kinds, true
}

// DocTypes returns the known documented type names.
func DocTypes() []string {
	out := make([]string, 0, len(docTypes))
	for name := range docTypes {
		out = append(out, name)
	}
	return out
}
