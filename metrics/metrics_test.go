package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counterValue(t *testing.T, c interface{ Write(*dto.Metric) error }) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, c.Write(&m))
	return m.GetCounter().GetValue()
}

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()
	require.NotNil(t, r)
	assert.NotNil(t, r.EdgesTotal)
	assert.NotNil(t, r.ExhaustionsTotal)
	assert.NotNil(t, r.StepDuration)
	assert.NotNil(t, r.SampleRejections)
	assert.NotNil(t, r.Prometheus())
}

func TestRegistry_Record(t *testing.T) {
	r := NewRegistry()

	r.RecordEdge("2")
	r.RecordEdge("2")
	r.RecordEdge("6")
	r.RecordExhaustion("2")
	r.RecordNodes(3)
	r.RecordSampling(4, 1, 0, 2)
	r.RecordStep(time.Millisecond)
	r.RecordRun("ok", time.Second, 10, 20)

	assert.Equal(t, 2.0, counterValue(t, r.EdgesTotal.WithLabelValues("2")))
	assert.Equal(t, 1.0, counterValue(t, r.EdgesTotal.WithLabelValues("6")))
	assert.Equal(t, 1.0, counterValue(t, r.ExhaustionsTotal.WithLabelValues("2")))
	assert.Equal(t, 3.0, counterValue(t, r.NodesCreated))
	assert.Equal(t, 4.0, counterValue(t, r.SampleRejections.WithLabelValues("source")))
	assert.Equal(t, 2.0, counterValue(t, r.DriftCorrections.WithLabelValues("fallback")))

	var g dto.Metric
	require.NoError(t, r.LastEdges.Write(&g))
	assert.Equal(t, 20.0, g.GetGauge().GetValue())
}

func TestRegistry_NilIsNoop(t *testing.T) {
	var r *Registry
	assert.NotPanics(t, func() {
		r.RecordEdge("1")
		r.RecordNodes(1)
		r.RecordExhaustion("1")
		r.RecordStep(time.Second)
		r.RecordRun("ok", time.Second, 1, 1)
		r.RecordSampling(1, 1, 1, 1)
	})
}

func TestRegistry_WriteTextfile(t *testing.T) {
	r := NewRegistry()
	r.RecordEdge("1")

	path := filepath.Join(t.TempDir(), "rpanet.prom")
	require.NoError(t, r.WriteTextfile(path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(raw), `rpanet_edges_total{scenario="1"} 1`))
}
