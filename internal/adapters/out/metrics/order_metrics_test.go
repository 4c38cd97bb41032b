package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()
	m, err := NewOrderMetrics(registry)
	require.NoError(t, err)

	m.SetOrderCount("IN_PROGRESS", 3)
	m.SetOrderCount("IN_PROGRESS", 2)
	m.SetOrderCount("COMPLETED", 7)

	assert.InDelta(t, 2, testutil.ToFloat64(m.orders.WithLabelValues("IN_PROGRESS")), 0)
	assert.InDelta(t, 7, testutil.ToFloat64(m.orders.WithLabelValues("COMPLETED")), 0)
	assert.Equal(t, 2, testutil.CollectAndCount(m.orders))

	_, err = NewOrderMetrics(registry)
	require.Error(t, err)
}
