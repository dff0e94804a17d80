package observability_test

import (
	"testing"
	"time"

	"github.com/aretw0/jsquery/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_ObserveRender(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := observability.NewMetrics(reg)

	m.ObserveRender(observability.ResultOK, 2, time.Millisecond)
	m.ObserveRender(observability.ResultOK, 3, time.Millisecond)
	m.ObserveRender(observability.ResultCached, 2, time.Microsecond)
	m.ObserveRender(observability.ResultError, 0, time.Microsecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Renders.WithLabelValues(observability.ResultOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Renders.WithLabelValues(observability.ResultCached)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Renders.WithLabelValues(observability.ResultError)))

	n, err := testutil.GatherAndCount(reg, "jsquery_chain_calls")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestMetrics_Nil(t *testing.T) {
	var m *observability.Metrics
	assert.NotPanics(t, func() { m.ObserveRender(observability.ResultOK, 1, time.Second) })
}

func TestNewMetrics_Unregistered(t *testing.T) {
	m := observability.NewMetrics(nil)
	m.ObserveRender(observability.ResultOK, 1, time.Second)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Renders.WithLabelValues(observability.ResultOK)))
}
