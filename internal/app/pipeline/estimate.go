package pipeline

import (
	"github.com/ghalamif/ForgeFeed/internal/catalog"
	"github.com/ghalamif/ForgeFeed/internal/domain"
)

// Estimate is a pre-run row-count forecast. Sensor and production counts are
// exact; quality and maintenance are expectations of stochastic processes.
type Estimate struct {
	SensorRows      int
	ProductionRows  int
	QualityRows     int
	MaintenanceRows int
}

// EstimateRows forecasts what a run with these options would produce, without
// generating anything.
func EstimateRows(cat *catalog.Catalog, opts Options) Estimate {
	var est Estimate

	perTick := 0
	for _, p := range cat.All() {
		perTick += 2 // temperature + vibration
		if p.HasPressure() {
			perTick++
		}
		if p.Type == domain.EquipmentHVAC {
			perTick++
		}
	}
	est.SensorRows = opts.Window.Ticks(opts.SensorInterval) * perTick

	lineUnits := 0
	for _, line := range cat.Lines() {
		lineUnits += len(cat.OnLine(line))
	}
	est.ProductionRows = opts.Window.Ticks(opts.ProductionInterval) * lineUnits

	// Mean test gap is 105 minutes; each line tests with probability 0.7.
	minutes := opts.Window.Duration().Minutes()
	est.QualityRows = int(minutes / 105 * float64(len(cat.Lines())) * 0.7)

	// One preventive service roughly every 31.5 days plus a 2%-per-day
	// corrective chance, per unit.
	days := opts.Window.Duration().Hours() / 24
	est.MaintenanceRows = int(days * (1/31.5 + 0.02) * float64(len(cat.All())))

	return est
}
