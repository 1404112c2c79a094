package metrics

import (
	"fmt"
	"net/http"
	"time"

	"github.com/annel0/voxel-engine/internal/engine"
	"github.com/annel0/voxel-engine/internal/logging"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// StatsProvider отдаёт снимок счётчиков движка.
// Экспортер не делает предположений о конкретной реализации —
// ему достаточно этого интерфейса.
type StatsProvider interface {
	CollectStats() engine.Stats
}

// Exporter управляет HTTP-эндпоинтом Prometheus и периодически
// обновляет Gauge/Counter по снимкам StatsProvider.
// Метрики живут в собственном регистре экспортера, а не в глобальном:
// повторное создание экспортера не конфликтует по именам.
type Exporter struct {
	provider StatsProvider
	registry *prometheus.Registry
	quit     chan struct{}
	done     chan struct{}

	last engine.Stats

	// Prometheus metrics
	ticks      prometheus.Counter
	generated  prometheus.Counter
	meshBuilds prometheus.Counter
	edits      prometheus.Counter
	respawns   prometheus.Counter
	loaded     prometheus.Gauge
	batched    prometheus.Gauge
	faces      prometheus.Gauge
}

// NewExporter создаёт экспортер, но не запускает HTTP-сервер
func NewExporter(provider StatsProvider) *Exporter {
	e := &Exporter{
		provider: provider,
		registry: prometheus.NewRegistry(),
		quit:     make(chan struct{}),
		done:     make(chan struct{}),
		ticks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "voxel",
			Name:      "ticks_total",
			Help:      "Общее число тиков симуляции.",
		}),
		generated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "voxel",
			Name:      "chunks_generated_total",
			Help:      "Общее число сгенерированных чанков.",
		}),
		meshBuilds: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "voxel",
			Name:      "mesh_builds_total",
			Help:      "Общее число построений геометрии чанков.",
		}),
		edits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "voxel",
			Name:      "block_edits_total",
			Help:      "Общее число правок блоков.",
		}),
		respawns: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "voxel",
			Name:      "respawns_total",
			Help:      "Срабатывания kill-плоскости.",
		}),
		loaded: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "voxel",
			Name:      "chunks_loaded",
			Help:      "Количество загруженных чанков.",
		}),
		batched: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "voxel",
			Name:      "chunks_batched",
			Help:      "Количество чанков с построенной геометрией.",
		}),
		faces: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "voxel",
			Name:      "batch_faces",
			Help:      "Суммарное число граней во всех батчах.",
		}),
	}

	e.registry.MustRegister(e.ticks, e.generated, e.meshBuilds, e.edits,
		e.respawns, e.loaded, e.batched, e.faces)
	return e
}

// Serve запускает HTTP-эндпоинт /metrics и цикл обновления.
// Блокирует до вызова Stop; запускать в отдельной горутине.
func (e *Exporter) Serve(port int) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(e.registry, promhttp.HandlerOpts{}))

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: mux,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Error("Ошибка HTTP-сервера метрик: %v", err)
		}
	}()

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-e.quit:
			server.Close()
			close(e.done)
			return
		case <-ticker.C:
			e.update()
		}
	}
}

// Stop останавливает экспортер и ждёт завершения цикла
func (e *Exporter) Stop() {
	close(e.quit)
	<-e.done
}

// update переносит дельты снимка счётчиков в метрики Prometheus
func (e *Exporter) update() {
	stats := e.provider.CollectStats()

	e.ticks.Add(float64(stats.Ticks - e.last.Ticks))
	e.generated.Add(float64(stats.Generated - e.last.Generated))
	e.meshBuilds.Add(float64(stats.MeshBuilds - e.last.MeshBuilds))
	e.edits.Add(float64(stats.Edits - e.last.Edits))
	e.respawns.Add(float64(stats.Respawns - e.last.Respawns))
	e.loaded.Set(float64(stats.LoadedChunks))
	e.batched.Set(float64(stats.BatchedChunks))
	e.faces.Set(float64(stats.TotalFaces))

	e.last = stats
}
