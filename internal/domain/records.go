package domain

import "time"

// SensorKind identifies which physical quantity a reading measures.
type SensorKind string

const (
	SensorTemperature SensorKind = "temperature"
	SensorVibration   SensorKind = "vibration"
	SensorPressure    SensorKind = "pressure"
	SensorHumidity    SensorKind = "humidity"
)

// Status classifies a reading against its operating range. It is always
// derived from the value that carries it, never stored independently.
type Status string

const (
	StatusNormal   Status = "normal"
	StatusWarning  Status = "warning"
	StatusCritical Status = "critical"
)

// SensorReading is one sampled value for one equipment unit.
type SensorReading struct {
	Time        time.Time
	EquipmentID string
	Sensor      SensorKind
	Value       float64
	Unit        string
	Status      Status
}

func (r SensorReading) Row() []any {
	return []any{r.Time, r.EquipmentID, string(r.Sensor), r.Value, r.Unit, string(r.Status)}
}

// ProductionRecord is one per-equipment sample of line productivity.
type ProductionRecord struct {
	Time              time.Time
	LineID            string
	EquipmentID       string
	CycleTime         float64
	Throughput        float64
	EfficiencyScore   float64
	EnergyConsumption float64
	DowntimeDuration  float64
	DefectRate        float64
}

func (r ProductionRecord) Row() []any {
	return []any{
		r.Time, r.LineID, r.EquipmentID,
		r.CycleTime, r.Throughput, r.EfficiencyScore,
		r.EnergyConsumption, r.DowntimeDuration, r.DefectRate,
	}
}

// TestType identifies a quality-control test kind. Only dimensional and
// electrical tests produce a numeric measurement.
type TestType string

const (
	TestDimensional TestType = "dimensional"
	TestVisual      TestType = "visual"
	TestFunctional  TestType = "functional"
	TestElectrical  TestType = "electrical"
)

// HasMeasurement reports whether tests of this kind sample a numeric value
// against a tolerance band.
func (t TestType) HasMeasurement() bool {
	return t == TestDimensional || t == TestElectrical
}

// TestResult is the pass/fail outcome of a quality-control test.
type TestResult string

const (
	TestPass TestResult = "pass"
	TestFail TestResult = "fail"
)

// QualityControlRecord is one quality-control test. Measurement and tolerance
// fields are nil for test kinds that carry no measurement; that is a
// structural invariant, not missing data.
type QualityControlRecord struct {
	Time             time.Time
	BatchID          string
	LineID           string
	ProductID        string
	TestType         TestType
	TestResult       TestResult
	MeasurementValue *float64
	ToleranceMin     *float64
	ToleranceMax     *float64
	InspectorID      string
}

func (r QualityControlRecord) Row() []any {
	return []any{
		r.Time, r.BatchID, r.LineID, r.ProductID,
		string(r.TestType), string(r.TestResult),
		r.MeasurementValue, r.ToleranceMin, r.ToleranceMax,
		r.InspectorID,
	}
}

// EventType distinguishes planned from unplanned maintenance.
type EventType string

const (
	EventScheduled   EventType = "scheduled"
	EventUnscheduled EventType = "unscheduled"
)

// MaintenanceType is the maintenance discipline applied during an event.
type MaintenanceType string

const (
	MaintenancePreventive MaintenanceType = "preventive"
	MaintenanceCorrective MaintenanceType = "corrective"
	MaintenancePredictive MaintenanceType = "predictive"
)

// MaintenanceEvent is one maintenance intervention on one equipment unit.
// PartsReplaced nil means no parts were recorded.
type MaintenanceEvent struct {
	Time            time.Time
	EquipmentID     string
	EventType       EventType
	MaintenanceType MaintenanceType
	DurationHours   float64
	Cost            float64
	TechnicianID    string
	Description     string
	PartsReplaced   []string
}

func (e MaintenanceEvent) Row() []any {
	return []any{
		e.Time, e.EquipmentID, string(e.EventType), string(e.MaintenanceType),
		e.DurationHours, e.Cost, e.TechnicianID, e.Description, e.PartsReplaced,
	}
}
