// Package http serves the render engine and the API catalog over HTTP.
package http

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/aretw0/jsquery"
	"github.com/aretw0/jsquery/pkg/jqapi"
	"github.com/aretw0/jsquery/pkg/jquery"
	"github.com/aretw0/jsquery/pkg/jscode"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

//go:embed openapi.yaml
var rawSpec []byte

// maxBodyBytes bounds the size of a chain spec.
const maxBodyBytes = 1 << 20

// Engine defines what the service needs from the render engine.
type Engine interface {
	Render(ctx context.Context, spec jquery.ChainSpec) (jsquery.Result, error)
	Catalog() *jqapi.Catalog
}

// Server holds the handlers of the render service.
type Server struct {
	Engine   Engine
	Logger   *slog.Logger
	Gatherer prometheus.Gatherer

	doc *openapi3.T
}

// Option configures the handler.
type Option func(*Server)

// WithLogger sets the request logger. The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) { s.Logger = l }
}

// WithGatherer serves the metrics of g on /metrics.
// Without it /metrics serves the default registry.
func WithGatherer(g prometheus.Gatherer) Option {
	return func(s *Server) { s.Gatherer = g }
}

// LoadSpec parses and validates the embedded OpenAPI document.
func LoadSpec() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(rawSpec)
	if err != nil {
		return nil, fmt.Errorf("failed to load openapi spec: %w", err)
	}
	if err := doc.Validate(loader.Context); err != nil {
		return nil, fmt.Errorf("invalid openapi spec: %w", err)
	}
	return doc, nil
}

// NewHandler creates the HTTP handler for the engine. Requests to the
// documented operations are validated against the embedded OpenAPI document.
func NewHandler(engine Engine, opts ...Option) (http.Handler, error) {
	doc, err := LoadSpec()
	if err != nil {
		return nil, err
	}
	s := &Server{Engine: engine, doc: doc}
	for _, opt := range opts {
		opt(s)
	}
	if s.Logger == nil {
		s.Logger = slog.Default()
	}
	if s.Gatherer == nil {
		s.Gatherer = prometheus.DefaultGatherer
	}

	validate, err := s.validator()
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()
	r.Use(enableCORS)

	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/yaml")
		_, _ = w.Write(rawSpec)
	})
	r.Handle("/metrics", promhttp.HandlerFor(s.Gatherer, promhttp.HandlerOpts{}))

	r.Group(func(r chi.Router) {
		r.Use(validate)
		r.Post("/render", s.Render)
		r.Get("/methods", s.ListMethods)
		r.Get("/methods/{name}", s.DescribeMethod)
		r.Get("/health", s.GetHealth)
		r.Get("/info", s.GetInfo)
	})
	return r, nil
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Render handles the POST /render request.
func (s *Server) Render(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("failed to read body: %w", err))
		return
	}
	spec, err := jquery.ParseChainSpec(body)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	res, err := s.Engine.Render(r.Context(), spec)
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			s.Logger.Error("render failed", "err", err)
		} else {
			s.Logger.Debug("render rejected", "err", err)
		}
		s.writeError(w, status, err)
		return
	}

	s.Logger.Debug("rendered chain", "key", res.Key, "cached", res.Cached)
	s.writeJSON(w, http.StatusOK, res)
}

// statusFor maps build errors, which the client caused, to 400.
func statusFor(err error) int {
	switch {
	case errors.Is(err, jquery.ErrInvalidChainSpec),
		errors.Is(err, jquery.ErrInvalidPluginName),
		errors.Is(err, jqapi.ErrUnknownMethod),
		errors.Is(err, jqapi.ErrNoMatchingSignature),
		errors.Is(err, jscode.ErrUnsupportedValue):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// ListMethods handles the GET /methods request.
func (s *Server) ListMethods(w http.ResponseWriter, r *http.Request) {
	cat := s.Engine.Catalog()
	q := r.URL.Query()

	if v := q.Get("version"); v != "" {
		version, err := semver.NewVersion(v)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, fmt.Errorf("invalid version %q: %w", v, err))
			return
		}
		cat = cat.ForVersion(version)
	}
	category := q.Get("category")
	var deprecated *bool
	if v := q.Get("deprecated"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, fmt.Errorf("invalid deprecated flag %q", v))
			return
		}
		deprecated = &b
	}

	out := make([]jqapi.Summary, 0, cat.Len())
	for _, e := range cat.Entries() {
		if e.Type == jqapi.TypeSelector {
			continue
		}
		if category != "" && string(e.Category()) != category {
			continue
		}
		if deprecated != nil && e.IsDeprecated() != *deprecated {
			continue
		}
		out = append(out, e.Summary())
	}
	s.writeJSON(w, http.StatusOK, out)
}

// DescribeMethod handles the GET /methods/{name} request.
func (s *Server) DescribeMethod(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	e, ok := s.Engine.Catalog().Lookup(name)
	if !ok {
		s.writeError(w, http.StatusNotFound, fmt.Errorf("%w: %s", jqapi.ErrUnknownMethod, name))
		return
	}
	s.writeJSON(w, http.StatusOK, e.Summary())
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	resp := map[string]string{
		"app":         "jsquery-http",
		"version":     strings.TrimSpace(jsquery.Version),
		"api_version": s.doc.Info.Version,
	}
	if v := s.Engine.Catalog().API; v != nil {
		resp["jquery_version"] = v.Original()
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.Logger.Error("response encode failed", "err", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	s.writeJSON(w, status, map[string]string{"error": err.Error()})
}
