package codegen

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/Masterminds/semver/v3"
	"github.com/aretw0/jsquery/pkg/jqapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSource_Default(t *testing.T) {
	src, err := Source(jqapi.Default())
	require.NoError(t, err)

	code := string(src)
	assert.True(t, strings.HasPrefix(code, "// Code generated by jsquery generate. DO NOT EDIT.\n\npackage jquery\n"))
	assert.Contains(t, code, `// AddClass appends .addClass(...) to the chain.
// Adds the specified class(es) to each element in the set of matched elements.
//
// Since jQuery 1.0. Signatures:
//
//	addClass(className String)
//	addClass(function Function)
//	addClass(classNames Array)
func (inv *Invocation) AddClass(args ...Arg) *Invocation {
	return inv.call("addClass", args)
}`)
	assert.Contains(t, code, "// Deprecated: deprecated since jQuery 1.8, removed in jQuery 3.0.\nfunc (inv *Invocation) Unload(")
	assert.Contains(t, code, `return inv.call("callbacks.fireWith", args)`)
	assert.NotContains(t, code, "jQuery.ajax")
}

var funcLine = regexp.MustCompile(`(?m)^func \(inv \*Invocation\) (\w+)\(`)

func methodNames(src []byte) []string {
	var names []string
	for _, m := range funcLine.FindAllSubmatch(src, -1) {
		names = append(names, string(m[1]))
	}
	return names
}

// The checked-in builder methods must match what the default catalog generates.
func TestSource_UpToDate(t *testing.T) {
	src, err := Source(jqapi.Default())
	require.NoError(t, err)

	current, err := os.ReadFile(filepath.Join("..", "..", "pkg", "jquery", FileName))
	require.NoError(t, err)

	want := methodNames(src)
	assert.Len(t, want, len(jqapi.Default().Methods()))
	assert.Equal(t, want, methodNames(current), "run jsquery generate to update %s", FileName)
}

func TestGenerate_HandBuiltCatalog(t *testing.T) {
	v := semver.MustParse("1.0")
	cat, err := jqapi.New(v,
		&jqapi.Entry{
			Type:        jqapi.TypeMethod,
			Name:        "pulse",
			Description: "Pulses the matched elements.",
			Since:       v,
			Signatures: []jqapi.Signature{{
				Added: v,
				Args:  []jqapi.Argument{{Name: "times", Types: []string{"Integer"}, Optional: true}},
			}},
		},
		&jqapi.Entry{Type: jqapi.TypeMethod, Name: "jQuery.ping", Since: v, Signatures: []jqapi.Signature{{Added: v}}},
	)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Generate(cat, &buf))

	assert.Equal(t, `// Code generated by jsquery generate. DO NOT EDIT.

package jquery

// Pulse appends .pulse(...) to the chain.
// Pulses the matched elements.
//
// Since jQuery 1.0. Signatures:
//
//	pulse([times Integer])
func (inv *Invocation) Pulse(args ...Arg) *Invocation {
	return inv.call("pulse", args)
}
`, buf.String())
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		width    int
		expected []string
	}{
		{"short", "one two", 20, []string{"one two"}},
		{"exact", "aaa bbb", 7, []string{"aaa bbb"}},
		{"break", "aaa bbb ccc", 7, []string{"aaa bbb", "ccc"}},
		{"long word", "a verylongword b", 5, []string{"a", "verylongword", "b"}},
		{"collapses spaces", "  a \n b  ", 10, []string{"a b"}},
		{"empty", "", 10, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, wrap(tt.text, tt.width))
		})
	}
}
