package domain

// Logical sink tables. Column order matches the workshop schema and is shared
// by the SQL and CSV sinks.
const (
	TableSensorData        = "sensor_data"
	TableProductionMetrics = "production_metrics"
	TableQualityControl    = "quality_control"
	TableMaintenanceEvents = "maintenance_events"
)

var (
	SensorDataColumns = []string{
		"time", "equipment_id", "sensor_type", "value", "unit", "status",
	}
	ProductionMetricsColumns = []string{
		"time", "line_id", "equipment_id", "cycle_time", "throughput",
		"efficiency_score", "energy_consumption", "downtime_duration", "defect_rate",
	}
	QualityControlColumns = []string{
		"time", "batch_id", "line_id", "product_id", "test_type",
		"test_result", "measurement_value", "tolerance_min", "tolerance_max", "inspector_id",
	}
	MaintenanceEventsColumns = []string{
		"time", "equipment_id", "event_type", "maintenance_type",
		"duration", "cost", "technician_id", "description", "parts_replaced",
	}
)

// TableOrder is the order tables are written in during a run.
var TableOrder = []string{
	TableSensorData,
	TableProductionMetrics,
	TableQualityControl,
	TableMaintenanceEvents,
}
