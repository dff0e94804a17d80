package jsquery_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/aretw0/jsquery"
	"github.com/aretw0/jsquery/pkg/adapters/memory"
	"github.com/aretw0/jsquery/pkg/jqapi"
	"github.com/aretw0/jsquery/pkg/jquery"
	"github.com/aretw0/jsquery/pkg/jscode"
	"github.com/aretw0/jsquery/pkg/observability"
	"github.com/aretw0/jsquery/pkg/ports"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const showSpec = "root: {kind: id, value: main}\ncalls: [{method: show}, {method: addClass, args: [{class: on}]}]"

func TestEngine_RenderDocument(t *testing.T) {
	eng := jsquery.New()

	res, err := eng.RenderDocument(context.Background(), []byte(showSpec))
	require.NoError(t, err)
	assert.Equal(t, "$('#main').show().addClass('on')", res.Code)
	assert.False(t, res.Cached)
	assert.NotEmpty(t, res.Key)
}

func TestEngine_RenderErrors(t *testing.T) {
	eng := jsquery.New()
	ctx := context.Background()

	_, err := eng.RenderDocument(ctx, []byte("root: {kind: document}\ncalls: [{method: nope}]"))
	assert.ErrorIs(t, err, jqapi.ErrUnknownMethod)

	_, err = eng.RenderDocument(ctx, []byte("root: {kind: document}\nextra: 1"))
	assert.ErrorIs(t, err, jquery.ErrInvalidChainSpec)
}

func TestEngine_Cache(t *testing.T) {
	cache := memory.NewCache()
	eng := jsquery.New(jsquery.WithCache(cache))
	ctx := context.Background()

	first, err := eng.RenderDocument(ctx, []byte(showSpec))
	require.NoError(t, err)
	assert.False(t, first.Cached)
	assert.Equal(t, 1, cache.Len())

	second, err := eng.RenderDocument(ctx, []byte(showSpec))
	require.NoError(t, err)
	assert.True(t, second.Cached)
	assert.Equal(t, first.Code, second.Code)
	assert.Equal(t, first.Key, second.Key)

	_, err = eng.RenderDocument(ctx, []byte("root: {kind: document}\ncalls: [{method: nope}]"))
	require.Error(t, err)
	assert.Equal(t, 1, cache.Len(), "failed renders are not cached")
}

func TestEngine_KeyDependsOnSettings(t *testing.T) {
	spec, err := jquery.ParseChainSpec([]byte(showSpec))
	require.NoError(t, err)

	minimal, err := jsquery.New().Key(spec)
	require.NoError(t, err)
	pretty, err := jsquery.New(jsquery.WithSettings(jscode.Pretty())).Key(spec)
	require.NoError(t, err)

	old := jqapi.Default().ForVersion(semver.MustParse("1.9"))
	versioned, err := jsquery.New(jsquery.WithCatalog(old)).Key(spec)
	require.NoError(t, err)

	assert.NotEqual(t, minimal, pretty)
	assert.NotEqual(t, minimal, versioned)
	assert.Equal(t, strings.Split(minimal, "-")[0], strings.Split(pretty, "-")[0])
}

type failingCache struct{}

func (failingCache) Get(context.Context, string) (string, error) { return "", errors.New("down") }
func (failingCache) Set(context.Context, string, string) error    { return errors.New("down") }
func (failingCache) Delete(context.Context, string) error         { return errors.New("down") }

func TestEngine_CacheFailureFallsBack(t *testing.T) {
	eng := jsquery.New(jsquery.WithCache(failingCache{}))

	res, err := eng.RenderDocument(context.Background(), []byte(showSpec))
	require.NoError(t, err)
	assert.Equal(t, "$('#main').show().addClass('on')", res.Code)
	assert.False(t, res.Cached)
}

type countingCache struct {
	ports.RenderCache
	mu   sync.Mutex
	sets int
}

func (c *countingCache) Set(ctx context.Context, key, code string) error {
	c.mu.Lock()
	c.sets++
	c.mu.Unlock()
	return c.RenderCache.Set(ctx, key, code)
}

func TestEngine_LockerRendersOnce(t *testing.T) {
	cache := &countingCache{RenderCache: memory.NewCache()}
	eng := jsquery.New(jsquery.WithCache(cache), jsquery.WithLocker(memory.NewLocker(), time.Second))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := eng.RenderDocument(context.Background(), []byte(showSpec))
			assert.NoError(t, err)
			assert.Equal(t, "$('#main').show().addClass('on')", res.Code)
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, cache.sets)
}

func TestEngine_LockContextCanceled(t *testing.T) {
	locker := memory.NewLocker()
	eng := jsquery.New(jsquery.WithCache(memory.NewCache()), jsquery.WithLocker(locker, 0))

	spec, err := jquery.ParseChainSpec([]byte(showSpec))
	require.NoError(t, err)
	key, err := eng.Key(spec)
	require.NoError(t, err)

	unlock, err := locker.Lock(context.Background(), key, time.Second)
	require.NoError(t, err)
	defer func() { _ = unlock(context.Background()) }()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err = eng.Render(ctx, spec)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestEngine_Metrics(t *testing.T) {
	m := observability.NewMetrics(prometheus.NewRegistry())
	eng := jsquery.New(jsquery.WithCache(memory.NewCache()), jsquery.WithMetrics(m))
	ctx := context.Background()

	_, _ = eng.RenderDocument(ctx, []byte(showSpec))
	_, _ = eng.RenderDocument(ctx, []byte(showSpec))
	_, _ = eng.RenderDocument(ctx, []byte("root: [oops"))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Renders.WithLabelValues(observability.ResultOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Renders.WithLabelValues(observability.ResultCached)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Renders.WithLabelValues(observability.ResultError)))
}

func TestEngine_Pretty(t *testing.T) {
	eng := jsquery.New(jsquery.WithSettings(jscode.Pretty()))
	assert.Equal(t, jscode.Pretty(), eng.Settings())

	res, err := eng.RenderDocument(context.Background(), []byte("root: {kind: document}\ncalls: [{method: show}]"))
	require.NoError(t, err)
	assert.Equal(t, "$(document).show()", res.Code)
}

func TestVersion(t *testing.T) {
	_, err := semver.NewVersion(strings.TrimSpace(jsquery.Version))
	assert.NoError(t, err)
}
