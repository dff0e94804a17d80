package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aretw0/jsquery"
	"github.com/aretw0/jsquery/pkg/adapters/memory"
	"github.com/aretw0/jsquery/pkg/jqapi"
	"github.com/aretw0/jsquery/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()
	reg := prometheus.NewRegistry()
	eng := jsquery.New(
		jsquery.WithCache(memory.NewCache()),
		jsquery.WithMetrics(observability.NewMetrics(reg)),
	)
	h, err := NewHandler(eng, WithGatherer(reg))
	require.NoError(t, err)
	return h
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestLoadSpec(t *testing.T) {
	doc, err := LoadSpec()
	require.NoError(t, err)
	assert.NotNil(t, doc.Paths.Find("/render"))
	assert.NotNil(t, doc.Paths.Find("/methods/{name}"))
}

func TestRender(t *testing.T) {
	h := newTestHandler(t)
	body := `{"root":{"kind":"id","value":"main"},"calls":[{"method":"addClass","args":[{"class":"on"}]}]}`

	w := do(t, h, http.MethodPost, "/render", body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	res := decode[jsquery.Result](t, w)
	assert.Equal(t, "$('#main').addClass('on')", res.Code)
	assert.False(t, res.Cached)

	w = do(t, h, http.MethodPost, "/render", body)
	require.Equal(t, http.StatusOK, w.Code)
	again := decode[jsquery.Result](t, w)
	assert.True(t, again.Cached)
	assert.Equal(t, res.Key, again.Key)
}

func TestRender_BadRequests(t *testing.T) {
	h := newTestHandler(t)

	tests := []struct {
		name string
		body string
		msg  string
	}{
		{"unknown method", `{"root":{"kind":"document"},"calls":[{"method":"nope"}]}`, "unknown jquery method"},
		{"wrong argument kind", `{"root":{"kind":"document"},"calls":[{"method":"addClass","args":[{"bool":true}]}]}`, "addClass"},
		{"missing root", `{"calls":[]}`, "root"},
		{"unknown root kind", `{"root":{"kind":"body"}}`, "kind"},
		{"unknown field", `{"root":{"kind":"document"},"color":"red"}`, "color"},
		{"two values in an arg", `{"root":{"kind":"document"},"calls":[{"method":"addClass","args":[{"string":"a","int":1}]}]}`, "properties"},
		{"not json", `root: [`, "error"},
		{"bad nested chain", `{"root":{"kind":"document"},"calls":[{"method":"add","args":[{"chain":{"root":{"kind":"nope"}}}]}]}`, "invalid chain spec"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, h, http.MethodPost, "/render", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
			resp := decode[map[string]string](t, w)
			assert.Contains(t, resp["error"], tt.msg)
		})
	}
}

func TestRender_RequiresContentType(t *testing.T) {
	h := newTestHandler(t)
	req := httptest.NewRequest(http.MethodPost, "/render", strings.NewReader(`{"root":{"kind":"document"}}`))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListMethods(t *testing.T) {
	h := newTestHandler(t)

	tests := []struct {
		name     string
		query    string
		contains []string
		excludes []string
	}{
		{"all", "", []string{"addClass", "jQuery.ajax", "jquery"}, nil},
		{"category", "?category=callbacks", []string{"callbacks.fire"}, []string{"addClass"}},
		{"deprecated", "?deprecated=true", []string{"bind", "live"}, []string{"addClass"}},
		{"current", "?deprecated=false", []string{"addClass"}, []string{"live"}},
		{"version", "?version=1.3", []string{"bind", "live"}, []string{"on"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, h, http.MethodGet, "/methods"+tt.query, "")
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())

			names := map[string]bool{}
			for _, s := range decode[[]jqapi.Summary](t, w) {
				names[s.Name] = true
			}
			for _, n := range tt.contains {
				assert.True(t, names[n], "missing %s", n)
			}
			for _, n := range tt.excludes {
				assert.False(t, names[n], "unexpected %s", n)
			}
		})
	}
}

func TestListMethods_InvalidQuery(t *testing.T) {
	h := newTestHandler(t)
	for _, q := range []string{"?category=widgets", "?deprecated=maybe", "?version=latest"} {
		w := do(t, h, http.MethodGet, "/methods"+q, "")
		assert.Equal(t, http.StatusBadRequest, w.Code, q)
	}
}

func TestDescribeMethod(t *testing.T) {
	h := newTestHandler(t)

	w := do(t, h, http.MethodGet, "/methods/callbacks.fireWith", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	s := decode[jqapi.Summary](t, w)
	assert.Equal(t, "CallbacksFireWith", s.Identifier)
	assert.Equal(t, "callbacks", s.Category)

	w = do(t, h, http.MethodGet, "/methods/nope", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, decode[map[string]string](t, w)["error"], "nope")
}

func TestHealthAndInfo(t *testing.T) {
	h := newTestHandler(t)

	w := do(t, h, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decode[map[string]string](t, w)["status"])

	w = do(t, h, http.MethodGet, "/info", "")
	require.Equal(t, http.StatusOK, w.Code)
	info := decode[map[string]string](t, w)
	assert.Equal(t, "jsquery-http", info["app"])
	assert.Equal(t, strings.TrimSpace(jsquery.Version), info["version"])
	assert.Equal(t, "0.1.0", info["api_version"])
	assert.Equal(t, "3.7.1", info["jquery_version"])
}

func TestOpenAPIAndMetrics(t *testing.T) {
	h := newTestHandler(t)

	w := do(t, h, http.MethodGet, "/openapi.yaml", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "openapi: 3.0.3")

	do(t, h, http.MethodPost, "/render", `{"root":{"kind":"document"}}`)
	w = do(t, h, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `jsquery_renders_total{result="ok"} 1`)
}

func TestCORS(t *testing.T) {
	h := newTestHandler(t)
	w := do(t, h, http.MethodOptions, "/render", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestMethodNotAllowed(t *testing.T) {
	h := newTestHandler(t)
	w := do(t, h, http.MethodGet, "/render", "")
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}
