package apidoc_test

import (
	"strings"
	"testing"

	"github.com/Masterminds/semver/v3"
	"github.com/aretw0/jsquery/internal/presentation/apidoc"
	"github.com/aretw0/jsquery/pkg/jqapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateMarkdown_HandBuilt(t *testing.T) {
	v1 := semver.MustParse("1.0")
	v2 := semver.MustParse("1.2")
	cat, err := jqapi.New(semver.MustParse("3.7"),
		&jqapi.Entry{
			Type:        jqapi.TypeMethod,
			Name:        "pulse",
			Return:      "jQuery",
			Description: "Pulses the matched elements.",
			Deprecated:  v2,
			Signatures: []jqapi.Signature{
				{Added: v1},
				{Added: v2, Args: []jqapi.Argument{{Name: "times", Types: []string{"Integer"}, Optional: true}}},
			},
		},
		&jqapi.Entry{Type: jqapi.TypeProperty, Name: "width", Return: "Integer", Since: v1},
		&jqapi.Entry{Type: jqapi.TypeMethod, Name: "jQuery.ping", Signatures: []jqapi.Signature{{Added: v1}}},
	)
	require.NoError(t, err)

	assert.Equal(t, "# jQuery API 3.7\n"+
		"\n## Methods\n"+
		"\n### pulse\n\n"+
		"> **Deprecated:** deprecated since jQuery 1.2.\n\n"+
		"Pulses the matched elements.\n\n"+
		"Go: `Pulse` · returns `jQuery`\n"+
		"\n| Signature | Since |\n|---|---|\n"+
		"| `pulse()` | 1.0 |\n"+
		"| `pulse([times Integer])` | 1.2 |\n"+
		"\n## Properties\n"+
		"\n### width\n\n"+
		"Go: `Width()` · returns `Integer`\n"+
		"\nSince jQuery 1.0.\n"+
		"\n## Utilities\n"+
		"\n### jQuery.ping\n\n"+
		"Go: `jquery.Static(\"ping\")`\n"+
		"\n| Signature | Since |\n|---|---|\n"+
		"| `jQuery.ping()` | 1.0 |\n",
		apidoc.GenerateMarkdown(cat))
}

func TestGenerateMarkdown_Default(t *testing.T) {
	out := apidoc.GenerateMarkdown(jqapi.Default())

	assert.True(t, strings.HasPrefix(out, "# jQuery API "))
	assert.Contains(t, out, "\n### addClass\n")
	assert.Contains(t, out, "| `addClass(className String)` | 1.0 |")
	assert.Contains(t, out, "\n## Callbacks object\n")
	assert.Contains(t, out, "> **Deprecated:** deprecated since jQuery 3.0.")
	assert.Equal(t, strings.Index(out, "## Methods"), strings.Index(out, "\n## ")+1)
}
