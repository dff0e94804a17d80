package jqapi_test

import (
	"errors"
	"testing"

	"github.com/aretw0/jsquery/pkg/jqapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpand(t *testing.T) {
	fadeIn, ok := jqapi.Default().Lookup("fadeIn")
	require.True(t, ok)

	arities := []int{}
	for _, s := range fadeIn.Expanded() {
		arities = append(arities, s.Arity())
	}
	assert.Equal(t, []int{0, 1, 1, 2, 1, 1, 2, 2, 3}, arities)

	variants := jqapi.Expand(fadeIn.Signatures[2])
	got := make([]string, len(variants))
	for i, v := range variants {
		got[i] = v.String()
	}
	assert.Equal(t, []string{
		"",
		"[duration Number/String]",
		"[easing String]",
		"[complete Function]",
		"[duration Number/String], [easing String]",
		"[duration Number/String], [complete Function]",
		"[easing String], [complete Function]",
		"[duration Number/String], [easing String], [complete Function]",
	}, got)
	assert.Len(t, fadeIn.Signatures[2].Args, 3, "expanding must not modify the signature")
}

func TestExpand_RequiredArgumentsKept(t *testing.T) {
	sig := jqapi.Signature{Args: []jqapi.Argument{
		{Name: "a", Types: []string{"String"}, Optional: true},
		{Name: "b", Types: []string{"Number"}},
		{Name: "c", Types: []string{"Function"}, Optional: true},
	}}

	got := []string{}
	for _, v := range jqapi.Expand(sig) {
		got = append(got, v.String())
	}
	assert.Equal(t, []string{
		"b Number",
		"[a String], b Number",
		"b Number, [c Function]",
		"[a String], b Number, [c Function]",
	}, got)
}

func TestMatch(t *testing.T) {
	cat := jqapi.Default()

	tests := []struct {
		method   string
		args     []jqapi.Kind
		wantArgs string
	}{
		{"addClass", []jqapi.Kind{jqapi.KindString}, "className String"},
		{"addClass", []jqapi.Kind{jqapi.KindFunction}, "function Function"},
		{"addClass", []jqapi.Kind{jqapi.KindArray}, "classNames Array"},
		{"attr", []jqapi.Kind{jqapi.KindQName, jqapi.KindInt}, "attributeName String, value String/Number/Null"},
		{"find", []jqapi.Kind{jqapi.KindString}, "selector Selector"},
		{"find", []jqapi.Kind{jqapi.KindInvocation}, "element Element/jQuery"},
		{"on", []jqapi.Kind{jqapi.KindString, jqapi.KindFunction}, "events String, handler Function"},
		{"on", []jqapi.Kind{jqapi.KindString, jqapi.KindString, jqapi.KindFunction}, "events String, selector String, handler Function"},
		{"fadeIn", []jqapi.Kind{jqapi.KindInt}, "[duration Number/String]"},
		{"fadeIn", nil, ""},
		{"eq", []jqapi.Kind{jqapi.KindExpression}, "index Integer"},
		{"callbacks.fireWith", []jqapi.Kind{jqapi.KindExpression}, "[context Anything]"},
		{"fadeIn", []jqapi.Kind{jqapi.KindFunction}, "[complete Function]"},
		{"fadeIn", []jqapi.Kind{jqapi.KindString, jqapi.KindFunction}, "[duration Number/String], [complete Function]"},
		{"animate", []jqapi.Kind{jqapi.KindJSON, jqapi.KindFunction}, "properties PlainObject, [complete Function]"},
		{"addClass", []jqapi.Kind{jqapi.KindStrings}, "classNames Array"},
		{"jQuery.when", nil, ""},
		{"jQuery.when", []jqapi.Kind{jqapi.KindInvocation, jqapi.KindInvocation, jqapi.KindExpression}, "[deferreds Deferred...]"},
		{"jQuery.extend", []jqapi.Kind{jqapi.KindBool, jqapi.KindJSON, jqapi.KindJSON, jqapi.KindJSON}, "deep Boolean, target Object, object1 Object, [objectN Object...]"},
		{"append", []jqapi.Kind{jqapi.KindString, jqapi.KindHTML, jqapi.KindInvocation}, "content htmlString/Element/Text/Array/jQuery, [content1 htmlString/Element/Text/Array/jQuery...]"},
	}

	for _, tt := range tests {
		t.Run(tt.method+"/"+tt.wantArgs, func(t *testing.T) {
			e, ok := cat.Lookup(tt.method)
			require.True(t, ok)
			sig, err := jqapi.Match(e, tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.wantArgs, sig.String())
		})
	}
}

func TestMatch_Errors(t *testing.T) {
	addClass, ok := jqapi.Default().Lookup("addClass")
	require.True(t, ok)

	_, err := jqapi.Match(addClass, []jqapi.Kind{jqapi.KindBool})
	require.Error(t, err)
	assert.ErrorIs(t, err, jqapi.ErrNoMatchingSignature)

	var sigErr *jqapi.SignatureError
	require.True(t, errors.As(err, &sigErr))
	assert.Equal(t, "addClass", sigErr.Method)
	assert.Equal(t, []jqapi.Kind{jqapi.KindBool}, sigErr.Args)
	assert.Equal(t, "jquery method addClass(Bool): no signature accepts these argument kinds", err.Error())

	_, err = jqapi.Match(addClass, []jqapi.Kind{jqapi.KindString, jqapi.KindString, jqapi.KindString})
	assert.ErrorContains(t, err, "no signature takes 3 argument(s)")

	when, ok := jqapi.Default().Lookup("jQuery.when")
	require.True(t, ok)
	_, err = jqapi.Match(when, []jqapi.Kind{jqapi.KindInvocation, jqapi.KindBool})
	assert.ErrorContains(t, err, "no signature accepts these argument kinds")
}
