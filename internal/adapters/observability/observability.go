// Package observability implements ports.Observability with zap logging and
// Prometheus metrics.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/ghalamif/ForgeFeed/internal/ports"
)

// Metric names understood by IncCounter/SetGauge/ObserveLatency.
const (
	MetricSensorRows      = "forgefeed_sensor_rows_total"
	MetricProductionRows  = "forgefeed_production_rows_total"
	MetricQualityRows     = "forgefeed_quality_rows_total"
	MetricMaintenanceRows = "forgefeed_maintenance_rows_total"
	MetricBatchesWritten  = "forgefeed_batches_written_total"
	MetricSinkLatency     = "forgefeed_sink_write_seconds"
	MetricRowsBuffered    = "forgefeed_rows_buffered"
)

type ZapProm struct {
	log      *zap.Logger
	counters map[string]prometheus.Counter
	gauges   map[string]prometheus.Gauge
	histos   map[string]prometheus.Observer
}

// New registers the generator metrics on the default registry.
func New(log *zap.Logger) *ZapProm {
	return NewWithRegistry(log, prometheus.DefaultRegisterer)
}

// NewWithRegistry is New with an explicit registry, used by tests to avoid
// duplicate registration.
func NewWithRegistry(log *zap.Logger, reg prometheus.Registerer) *ZapProm {
	if log == nil {
		log = zap.NewNop()
	}

	sensorRows := prometheus.NewCounter(prometheus.CounterOpts{
		Name: MetricSensorRows,
		Help: "Sensor readings handed to the sink.",
	})
	productionRows := prometheus.NewCounter(prometheus.CounterOpts{
		Name: MetricProductionRows,
		Help: "Production records handed to the sink.",
	})
	qualityRows := prometheus.NewCounter(prometheus.CounterOpts{
		Name: MetricQualityRows,
		Help: "Quality-control records handed to the sink.",
	})
	maintenanceRows := prometheus.NewCounter(prometheus.CounterOpts{
		Name: MetricMaintenanceRows,
		Help: "Maintenance events handed to the sink.",
	})
	batches := prometheus.NewCounter(prometheus.CounterOpts{
		Name: MetricBatchesWritten,
		Help: "Batches successfully written across all tables.",
	})
	latency := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    MetricSinkLatency,
		Help:    "Per-batch sink write latency.",
		Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
	})
	buffered := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: MetricRowsBuffered,
		Help: "Rows generated in memory and not yet flushed.",
	})

	reg.MustRegister(sensorRows, productionRows, qualityRows, maintenanceRows, batches, latency, buffered)

	return &ZapProm{
		log: log,
		counters: map[string]prometheus.Counter{
			MetricSensorRows:      sensorRows,
			MetricProductionRows:  productionRows,
			MetricQualityRows:     qualityRows,
			MetricMaintenanceRows: maintenanceRows,
			MetricBatchesWritten:  batches,
		},
		gauges: map[string]prometheus.Gauge{
			MetricRowsBuffered: buffered,
		},
		histos: map[string]prometheus.Observer{
			MetricSinkLatency: latency,
		},
	}
}

func (z *ZapProm) LogInfo(msg string, fields ...ports.Field) {
	z.log.Info(msg, zapFields(fields)...)
}

func (z *ZapProm) LogError(msg string, err error, fields ...ports.Field) {
	z.log.Error(msg, append(zapFields(fields), zap.Error(err))...)
}

func (z *ZapProm) IncCounter(name string, v float64) {
	if c, ok := z.counters[name]; ok {
		c.Add(v)
	}
}

func (z *ZapProm) ObserveLatency(name string, seconds float64) {
	if h, ok := z.histos[name]; ok {
		h.Observe(seconds)
	}
}

func (z *ZapProm) SetGauge(name string, v float64) {
	if g, ok := z.gauges[name]; ok {
		g.Set(v)
	}
}

func zapFields(fields []ports.Field) []zap.Field {
	out := make([]zap.Field, 0, len(fields))
	for _, f := range fields {
		out = append(out, zap.Any(f.Key, f.Value))
	}
	return out
}

var _ ports.Observability = (*ZapProm)(nil)
