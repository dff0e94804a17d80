package jquery

import "github.com/aretw0/jsquery/pkg/jscode"

// AjaxBuilder assembles the settings object of $.ajax.
// Only fields that were set appear in the output, always in the same order.
type AjaxBuilder struct {
	async       jscode.Expression
	cache       jscode.Expression
	data        jscode.Expression
	dataType    jscode.Expression
	global      jscode.Expression
	processData jscode.Expression
	traditional jscode.Expression
	method      jscode.Expression
	url         jscode.Expression
	context     jscode.Expression

	beforeSend *jscode.AnonymousFunction
	complete   *jscode.AnonymousFunction
	onError    *jscode.AnonymousFunction
	success    *jscode.AnonymousFunction
}

// NewAjaxBuilder creates a builder with caching disabled.
func NewAjaxBuilder() *AjaxBuilder {
	return (&AjaxBuilder{}).Cache(false)
}

// Clone returns an independent copy of the settings.
func (b *AjaxBuilder) Clone() *AjaxBuilder {
	cp := *b
	return &cp
}

// Async sets whether the request is asynchronous.
func (b *AjaxBuilder) Async(v any) *AjaxBuilder { b.async = jscode.Convert(v); return b }

// Cache sets whether the browser may cache responses.
func (b *AjaxBuilder) Cache(v any) *AjaxBuilder { b.cache = jscode.Convert(v); return b }

// Data sets the data sent to the server.
func (b *AjaxBuilder) Data(v any) *AjaxBuilder { b.data = jscode.Convert(v); return b }

// DataType sets the expected response type, e.g. "json".
func (b *AjaxBuilder) DataType(v any) *AjaxBuilder { b.dataType = jscode.Convert(v); return b }

// Global sets whether global ajax event handlers are triggered.
func (b *AjaxBuilder) Global(v any) *AjaxBuilder { b.global = jscode.Convert(v); return b }

// ProcessData sets whether data is converted to a query string.
func (b *AjaxBuilder) ProcessData(v any) *AjaxBuilder { b.processData = jscode.Convert(v); return b }

// Traditional selects the traditional style of param serialization.
func (b *AjaxBuilder) Traditional(v any) *AjaxBuilder { b.traditional = jscode.Convert(v); return b }

// Method sets the HTTP method, e.g. "POST".
func (b *AjaxBuilder) Method(v any) *AjaxBuilder { b.method = jscode.Convert(v); return b }

// URL sets the request URL.
func (b *AjaxBuilder) URL(v any) *AjaxBuilder { b.url = jscode.Convert(v); return b }

// Context sets the this value of the callbacks.
func (b *AjaxBuilder) Context(v any) *AjaxBuilder { b.context = jscode.Convert(v); return b }

// BeforeSend sets the pre-request callback.
func (b *AjaxBuilder) BeforeSend(fn *jscode.AnonymousFunction) *AjaxBuilder {
	b.beforeSend = fn
	return b
}

// Complete sets the callback run after success or error.
func (b *AjaxBuilder) Complete(fn *jscode.AnonymousFunction) *AjaxBuilder {
	b.complete = fn
	return b
}

// Error sets the failure callback.
func (b *AjaxBuilder) Error(fn *jscode.AnonymousFunction) *AjaxBuilder {
	b.onError = fn
	return b
}

// Success sets the success callback.
func (b *AjaxBuilder) Success(fn *jscode.AnonymousFunction) *AjaxBuilder {
	b.success = fn
	return b
}

// Settings returns the settings object. Unset fields are omitted.
func (b *AjaxBuilder) Settings() *jscode.AssocArray {
	s := jscode.NewAssocArray()
	add := func(key string, v jscode.Expression) {
		if v != nil {
			s.Add(key, v)
		}
	}
	add("async", b.async)
	add("cache", b.cache)
	add("data", b.data)
	add("dataType", b.dataType)
	add("global", b.global)
	add("processData", b.processData)
	add("traditional", b.traditional)
	add("method", b.method)
	add("url", b.url)
	add("context", b.context)
	for _, cb := range []struct {
		key string
		fn  *jscode.AnonymousFunction
	}{
		{"beforeSend", b.beforeSend},
		{"complete", b.complete},
		{"error", b.onError},
		{"success", b.success},
	} {
		if cb.fn != nil {
			s.Add(cb.key, cb.fn)
		}
	}
	return s
}

// Build creates $.ajax(settings).
func (b *AjaxBuilder) Build() *Invocation { return Ajax(b.Settings()) }
