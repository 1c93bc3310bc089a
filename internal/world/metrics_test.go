package world

import (
	"context"
	"testing"
	"time"

	"github.com/annel0/voxelcore/internal/vec"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromMetrics_TracksTick(t *testing.T) {
	reg := prometheus.NewRegistry()
	w := newTestWorld(t, WithStreaming(smallParams()))

	m, err := NewPromMetrics(reg, w.ID().String())
	require.NoError(t, err)
	w.metrics = m

	w.Update(context.Background(), time.Second, Observer{Forward: mgl32.Vec3{1, 0, 0}})

	total := float64(5 * 5 * 3)
	assert.Equal(t, total, testutil.ToFloat64(m.chunks))
	assert.Equal(t, total, testutil.ToFloat64(m.meshes))
	assert.Equal(t, total, testutil.ToFloat64(m.loaded))
	assert.Equal(t, total, testutil.ToFloat64(m.remeshed))
	assert.Equal(t, total, testutil.ToFloat64(m.quads))
	assert.Zero(t, testutil.ToFloat64(m.dirty))
	assert.Zero(t, testutil.ToFloat64(m.queued))

	w.DropChunk(vec.Vec3{})
	w.UnloadFar(vec.Vec3{X: 100})
	assert.Equal(t, total-1, testutil.ToFloat64(m.unloaded))

	families, err := reg.Gather()
	require.NoError(t, err)
	for _, f := range families {
		for _, metric := range f.GetMetric() {
			require.NotEmpty(t, metric.GetLabel())
			assert.Equal(t, "world_id", metric.GetLabel()[0].GetName())
			assert.Equal(t, w.ID().String(), metric.GetLabel()[0].GetValue())
		}
	}

	// Повторная регистрация в том же регистре — ошибка
	_, err = NewPromMetrics(reg, w.ID().String())
	assert.Error(t, err)
}
