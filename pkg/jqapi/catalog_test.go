package jqapi_test

import (
	"strings"
	"testing"

	"github.com/Masterminds/semver/v3"
	"github.com/aretw0/jsquery/pkg/jqapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_Contents(t *testing.T) {
	cat := jqapi.Default()
	require.NotNil(t, cat)
	assert.Same(t, cat, jqapi.Default(), "default catalog is parsed once")
	assert.Equal(t, "3.7.1", cat.API.Original())

	assert.Len(t, cat.Methods(), 172)
	assert.Len(t, cat.Properties(), 3)
	assert.Len(t, cat.Statics(), 38)

	for _, e := range cat.Statics() {
		assert.True(t, strings.HasPrefix(e.Name, jqapi.StaticPrefix), e.Name)
	}
	factory, ok := cat.Factory()
	require.True(t, ok)
	assert.True(t, factory.IsStatic())
	assert.NotContains(t, cat.Statics(), factory)
	assert.NotContains(t, cat.Methods(), factory)
}

func TestCatalog_Lookup(t *testing.T) {
	cat := jqapi.Default()

	e, ok := cat.Lookup("callbacks.fireWith")
	require.True(t, ok)
	assert.Equal(t, "CallbacksFireWith", e.Identifier())
	assert.Equal(t, "fireWith", e.JSName())
	assert.Equal(t, jqapi.CategoryCallbacks, e.Category())

	byID, ok := cat.ByIdentifier("CallbacksFireWith")
	require.True(t, ok)
	assert.Same(t, e, byID)

	ext, ok := cat.StaticByIdentifier("FnExtend")
	require.True(t, ok)
	assert.Equal(t, "jQuery.fn.extend", ext.Name)
	assert.Equal(t, "fn.extend", ext.JSName())
	assert.Equal(t, jqapi.CategoryStatic, ext.Category())

	data, ok := cat.ByIdentifier("Data")
	require.True(t, ok)
	staticData, ok := cat.StaticByIdentifier("Data")
	require.True(t, ok)
	assert.NotSame(t, data, staticData, "instance and static identifiers live in separate namespaces")

	length, ok := cat.ByIdentifier("Length")
	require.True(t, ok)
	assert.Equal(t, jqapi.TypeProperty, length.Type)
	assert.Equal(t, jqapi.CategoryProperty, length.Category())

	_, err := cat.Method("nope")
	assert.ErrorIs(t, err, jqapi.ErrUnknownMethod)
	_, err = cat.Method("length")
	assert.ErrorIs(t, err, jqapi.ErrUnknownMethod, "properties are not methods")
}

func TestCatalog_Deprecations(t *testing.T) {
	cat := jqapi.Default()

	tests := []struct {
		name   string
		notice string
	}{
		{"bind", "deprecated since jQuery 3.0"},
		{"delegate", "deprecated since jQuery 3.0"},
		{"andSelf", "deprecated since jQuery 1.8, removed in jQuery 3.0"},
		{"die", "deprecated since jQuery 1.7, removed in jQuery 1.9"},
		{"live", "deprecated since jQuery 1.7, removed in jQuery 1.9"},
		{"size", "deprecated since jQuery 1.8, removed in jQuery 3.0"},
		{"deferred.pipe", "deprecated since jQuery 1.8"},
		{"deferred.isRejected", "deprecated since jQuery 1.7, removed in jQuery 1.8"},
		{"context", "deprecated since jQuery 1.10, removed in jQuery 3.0"},
		{"addClass", ""},
		{"toggle", ""},
		{"click", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, ok := cat.Lookup(tt.name)
			require.True(t, ok)
			assert.Equal(t, tt.notice, e.DeprecationNotice())
			assert.Equal(t, tt.notice != "", e.IsDeprecated())
		})
	}

	for _, e := range cat.Deprecated() {
		assert.True(t, e.IsDeprecated(), e.Name)
	}
}

func TestCatalog_ForVersion(t *testing.T) {
	cat := jqapi.Default()

	v13 := cat.ForVersion(semver.MustParse("1.3"))
	_, ok := v13.Lookup("on")
	assert.False(t, ok, "on was added in 1.7")
	add, ok := v13.Lookup("add")
	require.True(t, ok)
	assert.Len(t, add.Signatures, 3, "signatures added after 1.3 are dropped")
	full, _ := cat.Lookup("add")
	assert.Len(t, full.Signatures, 5, "filtering must not modify the source catalog")

	v3 := cat.ForVersion(semver.MustParse("3.0"))
	for _, removed := range []string{"andSelf", "die", "live", "size", "error", "unload", "deferred.isRejected", "context"} {
		_, ok := v3.Lookup(removed)
		assert.False(t, ok, removed)
	}
	bind, ok := v3.Lookup("bind")
	require.True(t, ok, "deprecated but not removed")
	assert.True(t, bind.IsDeprecated())
	_, ok = v3.ByIdentifier("Bind")
	assert.True(t, ok)

	v18 := cat.ForVersion(semver.MustParse("1.8"))
	_, ok = v18.Lookup("die")
	assert.True(t, ok, "die was removed in 1.9")
	_, ok = v18.Lookup("deferred.isResolved")
	assert.False(t, ok, "removal is inclusive")
}

func TestCatalog_ByCategory(t *testing.T) {
	order, groups := jqapi.Default().ByCategory()
	assert.Equal(t, []jqapi.Category{
		jqapi.CategoryCore, jqapi.CategoryProperty, jqapi.CategoryCallbacks,
		jqapi.CategoryDeferred, jqapi.CategoryEvent, jqapi.CategoryStatic,
	}, order)
	assert.Len(t, groups[jqapi.CategoryCallbacks], 11)
	assert.Len(t, groups[jqapi.CategoryEvent], 6)
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		problems int
		contains string
	}{
		{
			name: "unknown argument type",
			doc: `
entries:
  - type: method
    name: foo
    signatures:
      - added: "1.0"
        args:
          - {name: x, type: Widget}
`,
			problems: 1,
			contains: `unknown type "Widget"`,
		},
		{
			name: "required after optional",
			doc: `
entries:
  - type: method
    name: foo
    signatures:
      - added: "1.0"
        args:
          - {name: a, type: String, optional: true}
          - {name: b, type: Function}
`,
			problems: 1,
			contains: "required argument b follows an optional one",
		},
		{
			name: "repeat before the last argument",
			doc: `
entries:
  - type: method
    name: foo
    signatures:
      - added: "1.0"
        args:
          - {name: a, type: String, repeat: true}
          - {name: b, type: Function}
`,
			problems: 1,
			contains: "repeating argument a is not the last one",
		},
		{
			name: "duplicate identifier",
			doc: `
entries:
  - type: method
    name: fooBar
    signatures: [{added: "1.0", args: []}]
  - type: method
    name: FooBar
    signatures: [{added: "1.0", args: []}]
`,
			problems: 1,
			contains: "identifier FooBar already used",
		},
		{
			name: "deprecated before added",
			doc: `
entries:
  - type: method
    name: foo
    deprecated: "1.2"
    signatures: [{added: "1.4", args: []}]
`,
			problems: 1,
			contains: "deprecated in 1.2 before it was added in 1.4",
		},
		{
			name: "bad version",
			doc: `
entries:
  - type: method
    name: foo
    signatures: [{added: "one", args: []}]
`,
			problems: 1,
			contains: `invalid added version "one"`,
		},
		{
			name: "several problems",
			doc: `
entries:
  - type: widget
    name: foo
    signatures: [{added: "1.0", args: []}]
  - type: method
    name: ""
  - type: method
    name: bar
`,
			problems: 3,
			contains: "3 errors",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := jqapi.Load(strings.NewReader(tt.doc))
			require.Error(t, err)
			assert.ErrorIs(t, err, jqapi.ErrInvalidCatalog)
			assert.Len(t, jqapi.Problems(err), tt.problems)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestLoad_JSONAndArgumentNames(t *testing.T) {
	doc := `{"api": "1.9", "entries": [
		{"type": "method", "name": "foo", "return": "jQuery", "signatures": [
			{"added": "1.0", "args": [
				{"name": "content", "type": "String"},
				{"name": "content", "type": "String"},
				{"name": "function(index, html)", "type": ""}
			]}
		]}
	]}`
	cat, err := jqapi.Load(strings.NewReader(doc))
	require.NoError(t, err)
	e, ok := cat.Lookup("foo")
	require.True(t, ok)
	args := e.Signatures[0].Args
	assert.Equal(t, "content", args[0].Name)
	assert.Equal(t, "content1", args[1].Name)
	assert.Equal(t, "function", args[2].Name)
	assert.Equal(t, []string{"Anything"}, args[2].Types)
}

func TestLoad_ParseErrors(t *testing.T) {
	_, err := jqapi.Load(strings.NewReader("entries: [\n"))
	assert.ErrorContains(t, err, "failed to parse catalog")

	_, err = jqapi.LoadFile("does-not-exist.yaml")
	assert.ErrorContains(t, err, "failed to open catalog")
}

func TestNew_HandBuiltEntries(t *testing.T) {
	e := &jqapi.Entry{
		Type: jqapi.TypeMethod,
		Name: "attr",
		Signatures: []jqapi.Signature{{
			Added: semver.MustParse("1.0"),
			Args:  []jqapi.Argument{{Name: "attributeName", Types: []string{"String"}}},
		}},
	}
	cat, err := jqapi.New(semver.MustParse("1.0"), e)
	require.NoError(t, err)
	assert.Equal(t, "Attr", e.Identifier())
	assert.True(t, e.Signatures[0].Args[0].Accepts(jqapi.KindQName))
	assert.Equal(t, 1, cat.Len())

	addClass, ok := jqapi.Default().Lookup("addClass")
	require.True(t, ok)
	assert.True(t, addClass.Signatures[0].Args[0].Accepts(jqapi.KindCSSClass))
	assert.False(t, addClass.Signatures[1].Args[0].Accepts(jqapi.KindCSSClass))
}

func TestEntry_Summary(t *testing.T) {
	e, ok := jqapi.Default().Lookup("live")
	require.True(t, ok)

	s := e.Summary()
	assert.Equal(t, "live", s.Name)
	assert.Equal(t, "method", s.Type)
	assert.Equal(t, "Live", s.Identifier)
	assert.Equal(t, "core", s.Category)
	assert.Equal(t, "1.7", s.Deprecated)
	assert.Equal(t, "1.9", s.Removed)
	assert.NotEmpty(t, s.Added)
	require.NotEmpty(t, s.Signatures)
	assert.True(t, strings.HasPrefix(s.Signatures[0], "live("))
}
