package metrics

import (
	"testing"

	"github.com/annel0/voxel-engine/internal/engine"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubProvider отдаёт фиксированный снимок счётчиков
type stubProvider struct {
	stats engine.Stats
}

func (p *stubProvider) CollectStats() engine.Stats {
	return p.stats
}

func TestExporterCounterDeltas(t *testing.T) {
	p := &stubProvider{}
	e := NewExporter(p)

	p.stats = engine.Stats{Ticks: 10, Edits: 2, LoadedChunks: 25, TotalFaces: 100}
	e.update()

	assert.Equal(t, 10.0, testutil.ToFloat64(e.ticks))
	assert.Equal(t, 2.0, testutil.ToFloat64(e.edits))
	assert.Equal(t, 25.0, testutil.ToFloat64(e.loaded))
	assert.Equal(t, 100.0, testutil.ToFloat64(e.faces))

	// Счётчики растут ровно на дельту между снимками,
	// gauge отражают последний снимок
	p.stats.Ticks = 15
	p.stats.LoadedChunks = 30
	e.update()

	assert.Equal(t, 15.0, testutil.ToFloat64(e.ticks))
	assert.Equal(t, 30.0, testutil.ToFloat64(e.loaded))
}

func TestExporterIndependentRegistries(t *testing.T) {
	// Повторное создание экспортера не должно паниковать конфликтом
	// имён метрик: каждый экспортер владеет собственным регистром
	var a, b *Exporter
	require.NotPanics(t, func() {
		a = NewExporter(&stubProvider{})
		b = NewExporter(&stubProvider{})
	})
	assert.NotSame(t, a.registry, b.registry)
}
