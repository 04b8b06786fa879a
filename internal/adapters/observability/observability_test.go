package observability

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ghalamif/ForgeFeed/internal/ports"
)

func TestCountersAndGauges(t *testing.T) {
	reg := prometheus.NewRegistry()
	obs := NewWithRegistry(zap.NewNop(), reg)

	obs.IncCounter(MetricSensorRows, 240)
	obs.IncCounter(MetricSensorRows, 10)
	obs.IncCounter(MetricBatchesWritten, 1)
	obs.SetGauge(MetricRowsBuffered, 512)

	families, err := testutil.GatherAndCount(reg)
	assert.NoError(t, err)
	assert.Equal(t, 7, families)

	assert.Equal(t, 250.0, testutil.ToFloat64(obs.counters[MetricSensorRows]))
	assert.Equal(t, 1.0, testutil.ToFloat64(obs.counters[MetricBatchesWritten]))
	assert.Equal(t, 512.0, testutil.ToFloat64(obs.gauges[MetricRowsBuffered]))
}

func TestUnknownMetricNamesAreIgnored(t *testing.T) {
	obs := NewWithRegistry(zap.NewNop(), prometheus.NewRegistry())

	// Must not panic.
	obs.IncCounter("no_such_counter", 1)
	obs.SetGauge("no_such_gauge", 1)
	obs.ObserveLatency("no_such_histogram", 0.1)
}

func TestLoggingCarriesFields(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	obs := NewWithRegistry(zap.New(core), prometheus.NewRegistry())

	obs.LogInfo("table_written", ports.Field{Key: "table", Value: "sensor_data"})
	obs.LogError("batch_write_failed", errors.New("disk full"), ports.Field{Key: "batch", Value: 2})

	entries := logs.All()
	assert.Len(t, entries, 2)
	assert.Equal(t, "table_written", entries[0].Message)
	assert.Equal(t, "sensor_data", entries[0].ContextMap()["table"])
	assert.Equal(t, "disk full", entries[1].ContextMap()["error"])
}
