package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestRecordRequest_Disabled(t *testing.T) {
	RequestsTotal, RewriteDuration = nil, nil
	ConfigLoadsTotal, ConfiguredOperations = nil, nil

	// must not panic without a registry
	RecordRequest(ResultRewritten, 0.001)
	RecordConfigLoad(false, 0)
}

func TestRecordRequest(t *testing.T) {
	RegisterRewriteMetrics(prometheus.NewRegistry())

	RecordRequest(ResultRewritten, 0.0001)
	RecordRequest(ResultRewritten, 0.0002)
	RecordRequest(ResultPassThrough, 0)

	require.Equal(t, 2.0, testutil.ToFloat64(RequestsTotal.WithLabelValues(ResultRewritten)))
	require.Equal(t, 1.0, testutil.ToFloat64(RequestsTotal.WithLabelValues(ResultPassThrough)))
	require.Equal(t, 0.0, testutil.ToFloat64(RequestsTotal.WithLabelValues(ResultUnchanged)))
}

func TestRecordConfigLoad(t *testing.T) {
	RegisterRewriteMetrics(prometheus.NewRegistry())

	RecordConfigLoad(true, 3)
	require.Equal(t, 1.0, testutil.ToFloat64(ConfigLoadsTotal.WithLabelValues("success")))
	require.Equal(t, 3.0, testutil.ToFloat64(ConfiguredOperations))

	RecordConfigLoad(false, 0)
	require.Equal(t, 1.0, testutil.ToFloat64(ConfigLoadsTotal.WithLabelValues("failure")))
	require.Equal(t, 0.0, testutil.ToFloat64(ConfiguredOperations))
}

func TestNewRegistry(t *testing.T) {
	registry := NewRegistry()
	RecordConfigLoad(true, 1)

	families, err := registry.Gather()
	require.NoError(t, err)

	names := make(map[string]bool)
	for _, f := range families {
		names[f.GetName()] = true
	}
	require.True(t, names["envoy_query_rewrite_config_loads_total"])
	require.True(t, names["envoy_query_rewrite_configured_operations"])
	require.True(t, names["go_goroutines"])
}
