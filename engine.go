package jsquery

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aretw0/jsquery/pkg/jqapi"
	"github.com/aretw0/jsquery/pkg/jquery"
	"github.com/aretw0/jsquery/pkg/jscode"
	"github.com/aretw0/jsquery/pkg/observability"
	"github.com/aretw0/jsquery/pkg/ports"
)

// DefaultLockTTL bounds how long a replica may hold the render lock of a key.
const DefaultLockTTL = 10 * time.Second

// Engine renders chain specs to JavaScript. It is the entry point shared by
// the CLI, the HTTP service and the MCP server.
// It is safe for concurrent use once configured.
type Engine struct {
	builder  *jquery.Builder
	cache    ports.RenderCache
	locker   ports.DistributedLocker
	lockTTL  time.Duration
	settings jscode.Settings
	metrics  *observability.Metrics
	logger   *slog.Logger
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithCatalog replaces the embedded API catalog.
func WithCatalog(cat *jqapi.Catalog) Option {
	return func(e *Engine) {
		e.builder = jquery.NewBuilder(cat)
	}
}

// WithCache stores rendered code by chain fingerprint.
func WithCache(c ports.RenderCache) Option {
	return func(e *Engine) {
		e.cache = c
	}
}

// WithLocker makes replicas sharing a cache render each key once.
// It only takes effect together with WithCache.
func WithLocker(l ports.DistributedLocker, ttl time.Duration) Option {
	return func(e *Engine) {
		e.locker = l
		if ttl > 0 {
			e.lockTTL = ttl
		}
	}
}

// WithSettings sets the output format. The default is jscode.Minimal().
func WithSettings(s jscode.Settings) Option {
	return func(e *Engine) {
		e.settings = s
	}
}

// WithMetrics records every render in m.
func WithMetrics(m *observability.Metrics) Option {
	return func(e *Engine) {
		e.metrics = m
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// New creates an engine using the embedded catalog and no cache.
func New(opts ...Option) *Engine {
	e := &Engine{
		settings: jscode.Minimal(),
		lockTTL:  DefaultLockTTL,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.builder == nil {
		e.builder = jquery.NewBuilder(jqapi.Default())
	}
	if e.logger == nil {
		e.logger = slog.Default()
	}
	return e
}

// Catalog returns the catalog chains are checked against.
func (e *Engine) Catalog() *jqapi.Catalog { return e.builder.Catalog() }

// Settings returns the output format.
func (e *Engine) Settings() jscode.Settings { return e.settings }

// Result is a rendered chain.
type Result struct {
	Code   string `json:"code"`
	Key    string `json:"key"`
	Cached bool   `json:"cached"`
}

// Build builds the invocation described by spec without rendering it.
func (e *Engine) Build(spec jquery.ChainSpec) (*jquery.Invocation, error) {
	return e.builder.BuildChain(spec)
}

// RenderDocument parses a YAML or JSON chain document and renders it.
func (e *Engine) RenderDocument(ctx context.Context, doc []byte) (Result, error) {
	spec, err := jquery.ParseChainSpec(doc)
	if err != nil {
		e.metrics.ObserveRender(observability.ResultError, 0, 0)
		return Result{}, err
	}
	return e.Render(ctx, spec)
}

// Render renders spec. With a cache configured, equal specs are built once:
// later calls return the cached code with Cached set. Cache failures are
// logged and fall back to rendering.
func (e *Engine) Render(ctx context.Context, spec jquery.ChainSpec) (res Result, err error) {
	start := time.Now()
	defer func() {
		result := observability.ResultOK
		switch {
		case err != nil:
			result = observability.ResultError
		case res.Cached:
			result = observability.ResultCached
		}
		e.metrics.ObserveRender(result, len(spec.Calls), time.Since(start))
	}()

	key, err := e.Key(spec)
	if err != nil {
		return Result{}, err
	}
	res.Key = key

	if e.cache == nil {
		res.Code, err = e.render(spec)
		return res, err
	}

	if code, ok := e.lookup(ctx, key); ok {
		return Result{Code: code, Key: key, Cached: true}, nil
	}

	if e.locker != nil {
		unlock, err := e.locker.Lock(ctx, key, e.lockTTL)
		if err != nil {
			return Result{}, fmt.Errorf("failed to lock render %s: %w", key, err)
		}
		defer func() {
			if err := unlock(context.WithoutCancel(ctx)); err != nil {
				e.logger.Warn("render unlock failed", "key", key, "err", err)
			}
		}()
		// Another replica may have rendered it while we waited.
		if code, ok := e.lookup(ctx, key); ok {
			return Result{Code: code, Key: key, Cached: true}, nil
		}
	}

	res.Code, err = e.render(spec)
	if err != nil {
		return Result{}, err
	}
	if err := e.cache.Set(ctx, key, res.Code); err != nil {
		e.logger.Warn("render cache write failed", "key", key, "err", err)
	}
	return res, nil
}

func (e *Engine) lookup(ctx context.Context, key string) (string, bool) {
	code, err := e.cache.Get(ctx, key)
	switch {
	case err == nil:
		e.logger.Debug("render cache hit", "key", key)
		return code, true
	case !errors.Is(err, ports.ErrNotFound):
		e.logger.Warn("render cache read failed", "key", key, "err", err)
	}
	return "", false
}

func (e *Engine) render(spec jquery.ChainSpec) (string, error) {
	inv, err := e.builder.BuildChain(spec)
	if err != nil {
		return "", err
	}
	return inv.Render(e.settings)
}

// Key returns the cache key of spec: its fingerprint, followed by a digest of
// everything else that changes the output (settings, the $ alias and the
// catalog version).
func (e *Engine) Key(spec jquery.ChainSpec) (string, error) {
	fp, err := jquery.Fingerprint(spec)
	if err != nil {
		return "", err
	}
	api := ""
	if v := e.Catalog().API; v != nil {
		api = v.String()
	}
	variant := sha256.Sum256([]byte(fmt.Sprintf("%+v|%t|%s", e.settings, jquery.UseDollar(), api)))
	return fp + "-" + hex.EncodeToString(variant[:4]), nil
}
