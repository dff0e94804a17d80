package jqapi_test

import (
	"testing"

	"github.com/aretw0/jsquery/pkg/jqapi"
	"github.com/stretchr/testify/assert"
)

func TestKindsFor(t *testing.T) {
	tests := []struct {
		docType  string
		expected []jqapi.Kind
	}{
		{"Boolean", []jqapi.Kind{jqapi.KindExpression, jqapi.KindBool}},
		{"Integer", []jqapi.Kind{jqapi.KindExpression, jqapi.KindInt, jqapi.KindBigInt}},
		{"Number", []jqapi.Kind{jqapi.KindExpression, jqapi.KindInt, jqapi.KindBigInt, jqapi.KindFloat, jqapi.KindBigFloat}},
		{"htmlString", []jqapi.Kind{jqapi.KindExpression, jqapi.KindHTML, jqapi.KindString}},
		{"Function", []jqapi.Kind{jqapi.KindExpression, jqapi.KindFunction}},
		{"PlainObject", []jqapi.Kind{jqapi.KindExpression, jqapi.KindJSON}},
		{"jQuery object", []jqapi.Kind{jqapi.KindExpression, jqapi.KindInvocation}},
		{"Array", []jqapi.Kind{jqapi.KindExpression, jqapi.KindArray, jqapi.KindStrings}},
		{"Elements", []jqapi.Kind{jqapi.KindExpression, jqapi.KindElements, jqapi.KindStrings}},
		{"Number/String", []jqapi.Kind{
			jqapi.KindExpression, jqapi.KindJSON, jqapi.KindHTML, jqapi.KindString,
			jqapi.KindInt, jqapi.KindBigInt, jqapi.KindFloat, jqapi.KindBigFloat,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.docType, func(t *testing.T) {
			kinds, ok := jqapi.KindsFor(tt.docType)
			assert.True(t, ok)
			assert.Equal(t, tt.expected, kinds.List())
		})
	}

	_, ok := jqapi.KindsFor("String/Widget")
	assert.False(t, ok)
}

func TestKinds_Set(t *testing.T) {
	s := jqapi.KindSet(jqapi.KindBool, jqapi.KindExpression)
	assert.True(t, s.Has(jqapi.KindBool))
	assert.False(t, s.Has(jqapi.KindString))
	assert.Equal(t, "Expression|Bool", s.String())
	assert.Equal(t, "QName", jqapi.KindQName.String())
	assert.True(t, s.With(jqapi.KindQName).Has(jqapi.KindQName))
	assert.Contains(t, jqapi.DocTypes(), "ArrayLikeObject")
}

func TestIdentifier(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"addClass", "AddClass"},
		{"clone", "Clone"},
		{"eq", "Eq"},
		{"not", "Not"},
		{"callbacks.fireWith", "CallbacksFireWith"},
		{"deferred.then", "DeferredThen"},
		{"event.stopPropagation", "EventStopPropagation"},
		{"jQuery.ajax", "Ajax"},
		{"jQuery.fn.extend", "FnExtend"},
		{"jQuery", "JQuery"},
		{"render", "RenderMethod"},
		{"with-dash", "WithDash"},
		{"3d", "M3d"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, jqapi.Identifier(tt.name))
		})
	}
}
