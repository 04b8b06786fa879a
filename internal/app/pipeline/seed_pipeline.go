// Package pipeline runs a full generation pass: every record family is
// generated fully in memory, chunked into fixed-size batches, and handed to
// the sink in table order. The first failed batch aborts the run; batches
// already written stand.
package pipeline

import (
	"fmt"
	"time"

	"github.com/ghalamif/ForgeFeed/internal/adapters/observability"
	"github.com/ghalamif/ForgeFeed/internal/catalog"
	"github.com/ghalamif/ForgeFeed/internal/domain"
	"github.com/ghalamif/ForgeFeed/internal/model/maintenance"
	"github.com/ghalamif/ForgeFeed/internal/model/production"
	"github.com/ghalamif/ForgeFeed/internal/model/quality"
	"github.com/ghalamif/ForgeFeed/internal/model/signal"
	"github.com/ghalamif/ForgeFeed/internal/ports"
	"github.com/ghalamif/ForgeFeed/internal/rng"
)

type Deps struct {
	Catalog *catalog.Catalog
	Sink    ports.Sink
	Obs     ports.Observability
	Rand    *rng.Rand
}

type Options struct {
	Window             domain.Window
	SensorInterval     time.Duration
	ProductionInterval time.Duration
	BatchSize          int
}

// Report summarizes one completed run.
type Report struct {
	SensorRows      int
	ProductionRows  int
	QualityRows     int
	MaintenanceRows int
	BatchesWritten  int
}

func (r *Report) TotalRows() int {
	return r.SensorRows + r.ProductionRows + r.QualityRows + r.MaintenanceRows
}

// Run executes one generation pass. The window is validated before any
// generation work; a sink failure stops the run without touching the
// remaining tables.
func Run(deps Deps, opts Options) (*Report, error) {
	if err := opts.Window.Validate(); err != nil {
		return nil, err
	}
	if opts.BatchSize <= 0 {
		opts.BatchSize = 1000
	}

	report := &Report{}

	drift := signal.InitDrift(deps.Catalog.All(), deps.Rand)

	readings := signal.NewGenerator(deps.Rand).Stream(deps.Catalog, drift, opts.Window, opts.SensorInterval)
	report.SensorRows = len(readings)
	deps.Obs.IncCounter(observability.MetricSensorRows, float64(len(readings)))
	if err := writeTable(deps, domain.TableSensorData, domain.SensorDataColumns, rowsOf(readings), opts.BatchSize, report); err != nil {
		return report, err
	}

	prod := production.NewGenerator(deps.Rand).Stream(deps.Catalog, opts.Window, opts.ProductionInterval)
	report.ProductionRows = len(prod)
	deps.Obs.IncCounter(observability.MetricProductionRows, float64(len(prod)))
	if err := writeTable(deps, domain.TableProductionMetrics, domain.ProductionMetricsColumns, rowsOf(prod), opts.BatchSize, report); err != nil {
		return report, err
	}

	qc := quality.NewGenerator(deps.Rand).Stream(deps.Catalog.Lines(), opts.Window)
	report.QualityRows = len(qc)
	deps.Obs.IncCounter(observability.MetricQualityRows, float64(len(qc)))
	if err := writeTable(deps, domain.TableQualityControl, domain.QualityControlColumns, rowsOf(qc), opts.BatchSize, report); err != nil {
		return report, err
	}

	maint := maintenance.NewGenerator(deps.Rand)
	var events []domain.MaintenanceEvent
	for _, p := range deps.Catalog.All() {
		events = append(events, maint.Stream(p.ID, opts.Window)...)
	}
	report.MaintenanceRows = len(events)
	deps.Obs.IncCounter(observability.MetricMaintenanceRows, float64(len(events)))
	if err := writeTable(deps, domain.TableMaintenanceEvents, domain.MaintenanceEventsColumns, rowsOf(events), opts.BatchSize, report); err != nil {
		return report, err
	}

	return report, nil
}

// writeTable flushes rows in batchSize chunks, in order. On failure the error
// names the table and the batch that failed.
func writeTable(deps Deps, table string, columns []string, rows [][]any, batchSize int, report *Report) error {
	deps.Obs.SetGauge(observability.MetricRowsBuffered, float64(len(rows)))
	defer deps.Obs.SetGauge(observability.MetricRowsBuffered, 0)

	for i := 0; i < len(rows); i += batchSize {
		end := i + batchSize
		if end > len(rows) {
			end = len(rows)
		}
		batch := i/batchSize + 1

		start := time.Now()
		if err := deps.Sink.WriteTable(table, columns, rows[i:end]); err != nil {
			deps.Obs.LogError("batch_write_failed", err,
				ports.Field{Key: "table", Value: table},
				ports.Field{Key: "batch", Value: batch},
			)
			return fmt.Errorf("table %s batch %d: %w", table, batch, err)
		}
		deps.Obs.ObserveLatency(observability.MetricSinkLatency, time.Since(start).Seconds())
		deps.Obs.IncCounter(observability.MetricBatchesWritten, 1)
		report.BatchesWritten++
	}

	deps.Obs.LogInfo("table_written",
		ports.Field{Key: "table", Value: table},
		ports.Field{Key: "rows", Value: len(rows)},
		ports.Field{Key: "sink", Value: deps.Sink.Name()},
	)
	return nil
}

func rowsOf[T interface{ Row() []any }](items []T) [][]any {
	out := make([][]any, len(items))
	for i, item := range items {
		out[i] = item.Row()
	}
	return out
}
