package jquery_test

import (
	"strings"
	"testing"

	"github.com/aretw0/jsquery/pkg/jqapi"
	"github.com/aretw0/jsquery/pkg/jquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const clickSpecYAML = `
version: "3.7"
root: {kind: id, value: main}
calls:
  - method: "on"
    args:
      - string: click
      - function: {params: [e], body: ["e.preventDefault();"]}
  - method: addClass
    args: [{class: active}]
`

const clickSpecJSON = `{
  "version": "3.7",
  "root": {"kind": "id", "value": "main"},
  "calls": [
    {"method": "on", "args": [
      {"string": "click"},
      {"function": {"params": ["e"], "body": ["e.preventDefault();"]}}
    ]},
    {"method": "addClass", "args": [{"class": "active"}]}
  ]
}`

func buildSpec(t *testing.T, doc string) string {
	t.Helper()
	spec, err := jquery.ParseChainSpec([]byte(doc))
	require.NoError(t, err)
	inv, err := jquery.BuildChain(spec)
	require.NoError(t, err)
	return jsCode(t, inv)
}

func TestParseChainSpec(t *testing.T) {
	spec, err := jquery.ParseChainSpec([]byte(clickSpecYAML))
	require.NoError(t, err)

	assert.Equal(t, "3.7", spec.Version)
	assert.Equal(t, jquery.ChainRoot{Kind: "id", Value: "main"}, spec.Root)
	require.Len(t, spec.Calls, 2)
	assert.Equal(t, "on", spec.Calls[0].Method)
	require.NotNil(t, spec.Calls[0].Args[1].Function)
	assert.Equal(t, []string{"e"}, spec.Calls[0].Args[1].Function.Params)
}

func TestParseChainSpec_JSONAndYAMLAgree(t *testing.T) {
	fromYAML, err := jquery.ParseChainSpec([]byte(clickSpecYAML))
	require.NoError(t, err)
	fromJSON, err := jquery.ParseChainSpec([]byte(clickSpecJSON))
	require.NoError(t, err)

	assert.Equal(t, fromYAML, fromJSON)

	a, err := jquery.Fingerprint(fromYAML)
	require.NoError(t, err)
	b, err := jquery.Fingerprint(fromJSON)
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Len(t, a, 64)

	fromJSON.Calls = fromJSON.Calls[:1]
	c, err := jquery.Fingerprint(fromJSON)
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}

func TestParseChainSpec_Errors(t *testing.T) {
	_, err := jquery.ParseChainSpec([]byte("root: {kind: id, value: main}\ncolor: red\n"))
	assert.ErrorIs(t, err, jquery.ErrInvalidChainSpec)

	_, err = jquery.ParseChainSpec([]byte("root: [unclosed"))
	assert.ErrorContains(t, err, "failed to parse chain spec")

	_, err = jquery.ReadChainSpec(strings.NewReader("root: {kind: id, value: main}"))
	assert.NoError(t, err)
}

func TestBuildChain(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		expected string
	}{
		{"yaml", clickSpecYAML, "$('#main').on('click',function(e){e.preventDefault();}).addClass('active')"},
		{"json", clickSpecJSON, "$('#main').on('click',function(e){e.preventDefault();}).addClass('active')"},
		{"no calls", "root: {kind: document}", "$(document)"},
		{"element root", "root: {kind: element, value: TD}", "$('td')"},
		{"custom element root", "root: {kind: element, value: my-widget}", "$('my-widget')"},
		{"class root", "root: {kind: class, value: btn}\ncalls: [{method: hide}]", "$('.btn').hide()"},
		{"selector root", "root: {kind: selector, value: 'ul > li'}", "$('ul > li')"},
		{"html root", "root: {kind: html, value: '<p>'}", "$('<p>')"},
		{"expr root", "root: {kind: expr, value: $el}\ncalls: [{method: show}]", "$el.show()"},
		{"static root", "root: {kind: static, value: getJSON, args: [{string: /api}]}", `$.getJSON('\/api')`},
		{
			"typed args",
			"root: {kind: this}\ncalls:\n  - method: css\n    args: [{string: width}, {int: 10}]\n  - method: toggleClass\n    args: [{string: on}, {bool: true}]\n  - method: fadeTo\n    args: [{int: 200}, {float: 0.5}]",
			"$(this).css('width',10).toggleClass('on',true).fadeTo(200,0.5)",
		},
		{"json arg", "root: {kind: window}\ncalls: [{method: data, args: [{json: {a: 1}}]}]", `$(window).data({"a":1})`},
		{"raw arg", "root: {kind: document}\ncalls: [{method: eq, args: [{raw: i}]}]", "$(document).eq(i)"},
		{"selector arg", "root: {kind: document}\ncalls: [{method: find, args: [{selector: 'td:first'}]}]", "$(document).find('td:first')"},
		{"element arg", "root: {kind: document}\ncalls: [{method: find, args: [{element: td}]}]", "$(document).find('td')"},
		{"html arg", "root: {kind: document}\ncalls: [{method: append, args: [{html: '<b>'}]}]", "$(document).append('<b>')"},
		{"plugin call", "root: {kind: id, value: f}\ncalls: [{method: validate, plugin: true}]", "$('#f').validate()"},
		{
			"nested chain",
			"root: {kind: document}\ncalls:\n  - method: add\n    args:\n      - chain: {root: {kind: id, value: x}, calls: [{method: first}]}",
			"$(document).add($('#x').first())",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, buildSpec(t, tt.doc))
		})
	}
}

func TestBuildChain_Errors(t *testing.T) {
	tests := []struct {
		name   string
		doc    string
		target error
		msg    string
	}{
		{"unknown method", "root: {kind: document}\ncalls: [{method: nope}]", jqapi.ErrUnknownMethod, "call 1"},
		{"static as instance", "root: {kind: document}\ncalls: [{method: jQuery.ajax}]", jqapi.ErrUnknownMethod, "call 1"},
		{"bad signature", "root: {kind: document}\ncalls: [{method: show}, {method: addClass, args: [{bool: true}]}]", jqapi.ErrNoMatchingSignature, "call 2"},
		{"two values", "root: {kind: document}\ncalls: [{method: addClass, args: [{string: a, int: 1}]}]", jquery.ErrInvalidChainSpec, "exactly one value"},
		{"no value", "root: {kind: document}\ncalls: [{method: addClass, args: [{}]}]", jquery.ErrInvalidChainSpec, "got 0"},
		{"unknown element", "root: {kind: document}\ncalls: [{method: find, args: [{element: widget}]}]", jquery.ErrInvalidChainSpec, "unknown element"},
		{"unknown root", "root: {kind: body}", jquery.ErrInvalidChainSpec, "unknown root kind"},
		{"root args", "root: {kind: document, args: [{int: 1}]}", jquery.ErrInvalidChainSpec, "takes no args"},
		{"unknown static", "root: {kind: static, value: nope}", jqapi.ErrUnknownMethod, "root"},
		{"bad version", "version: latest\nroot: {kind: document}", jquery.ErrInvalidChainSpec, "version"},
		{"bad plugin name", "root: {kind: document}\ncalls: [{method: a-b, plugin: true}]", jquery.ErrInvalidPluginName, "call 1"},
		{"bad nested chain", "root: {kind: document}\ncalls: [{method: add, args: [{chain: {root: {kind: nope}}}]}]", jquery.ErrInvalidChainSpec, "call 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := jquery.ParseChainSpec([]byte(tt.doc))
			require.NoError(t, err)

			inv, err := jquery.BuildChain(spec)
			assert.Nil(t, inv)
			assert.ErrorIs(t, err, tt.target)
			assert.ErrorContains(t, err, tt.msg)
		})
	}
}

func TestBuildChain_Version(t *testing.T) {
	doc := "version: '1.6'\nroot: {kind: id, value: a}\ncalls: [{method: 'on', args: [{string: click}, {function: {}}]}]"
	spec, err := jquery.ParseChainSpec([]byte(doc))
	require.NoError(t, err)

	_, err = jquery.BuildChain(spec)
	assert.ErrorIs(t, err, jqapi.ErrUnknownMethod)

	spec.Version = "1.7"
	inv, err := jquery.BuildChain(spec)
	require.NoError(t, err)
	assert.Equal(t, "$('#a').on('click',function(){})", jsCode(t, inv))
}
