package world

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics принимает статистику стриминга и построения сеток.
// Вызывается только из главного потока тика.
type Metrics interface {
	ObserveLoadBatch(d time.Duration, loaded int)
	ObserveRemesh(d time.Duration, remeshed int)
	ObserveTick(d time.Duration)
	AddUnloaded(n int)
	SetOccupancy(chunks, meshes, dirty, queued, quads int)
}

// NopMetrics отбрасывает все значения
type NopMetrics struct{}

func (NopMetrics) ObserveLoadBatch(time.Duration, int)  {}
func (NopMetrics) ObserveRemesh(time.Duration, int)     {}
func (NopMetrics) ObserveTick(time.Duration)            {}
func (NopMetrics) AddUnloaded(int)                      {}
func (NopMetrics) SetOccupancy(int, int, int, int, int) {}

// PromMetrics экспортирует метрики мира в Prometheus.
// Все серии помечены константной меткой world_id.
type PromMetrics struct {
	chunks prometheus.Gauge
	meshes prometheus.Gauge
	dirty  prometheus.Gauge
	queued prometheus.Gauge
	quads  prometheus.Gauge

	loaded   prometheus.Counter
	unloaded prometheus.Counter
	remeshed prometheus.Counter

	batchDuration prometheus.Histogram
	meshDuration  prometheus.Histogram
	tickDuration  prometheus.Histogram
}

// NewPromMetrics создаёт метрики и регистрирует их в reg
func NewPromMetrics(reg prometheus.Registerer, worldID string) (*PromMetrics, error) {
	labels := prometheus.Labels{"world_id": worldID}

	gauge := func(name, help string) prometheus.Gauge {
		return prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "voxel", Subsystem: "world", Name: name, Help: help, ConstLabels: labels,
		})
	}
	counter := func(name, help string) prometheus.Counter {
		return prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "voxel", Subsystem: "world", Name: name, Help: help, ConstLabels: labels,
		})
	}
	histogram := func(name, help string) prometheus.Histogram {
		return prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "voxel", Subsystem: "world", Name: name, Help: help, ConstLabels: labels,
			Buckets: []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5},
		})
	}

	m := &PromMetrics{
		chunks: gauge("chunks_loaded", "Количество загруженных чанков."),
		meshes: gauge("meshes", "Количество сеток в карте сеток."),
		dirty:  gauge("dirty_chunks", "Чанков, ожидающих перестроения сетки."),
		queued: gauge("load_queue_length", "Координат в очереди загрузки."),
		quads:  gauge("quads", "Суммарное количество квадов во всех сетках."),

		loaded:   counter("chunks_loaded_total", "Всего сгенерированных и вставленных чанков."),
		unloaded: counter("chunks_unloaded_total", "Всего выгруженных чанков."),
		remeshed: counter("chunks_remeshed_total", "Всего перестроенных сеток."),

		batchDuration: histogram("load_batch_seconds", "Длительность одной пачки генерации."),
		meshDuration:  histogram("remesh_seconds", "Длительность перестроения всех грязных чанков."),
		tickDuration:  histogram("tick_seconds", "Длительность тика стриминга."),
	}

	collectors := []prometheus.Collector{
		m.chunks, m.meshes, m.dirty, m.queued, m.quads,
		m.loaded, m.unloaded, m.remeshed,
		m.batchDuration, m.meshDuration, m.tickDuration,
	}
	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *PromMetrics) ObserveLoadBatch(d time.Duration, loaded int) {
	m.batchDuration.Observe(d.Seconds())
	m.loaded.Add(float64(loaded))
}

func (m *PromMetrics) ObserveRemesh(d time.Duration, remeshed int) {
	m.meshDuration.Observe(d.Seconds())
	m.remeshed.Add(float64(remeshed))
}

func (m *PromMetrics) ObserveTick(d time.Duration) {
	m.tickDuration.Observe(d.Seconds())
}

func (m *PromMetrics) AddUnloaded(n int) {
	m.unloaded.Add(float64(n))
}

func (m *PromMetrics) SetOccupancy(chunks, meshes, dirty, queued, quads int) {
	m.chunks.Set(float64(chunks))
	m.meshes.Set(float64(meshes))
	m.dirty.Set(float64(dirty))
	m.queued.Set(float64(queued))
	m.quads.Set(float64(quads))
}
