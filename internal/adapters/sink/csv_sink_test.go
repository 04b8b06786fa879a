package sink

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghalamif/ForgeFeed/internal/domain"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestCSVSinkWritesHeaderOnceAcrossBatches(t *testing.T) {
	dir := t.TempDir()
	s, err := NewCSVSink(dir)
	require.NoError(t, err)

	ts := time.Date(2025, 3, 3, 8, 0, 0, 0, time.UTC)
	batch1 := [][]any{{ts, "MOTOR_001", "temperature", 61.2, "celsius", "normal"}}
	batch2 := [][]any{{ts.Add(time.Minute), "MOTOR_001", "temperature", 61.4, "celsius", "normal"}}

	require.NoError(t, s.WriteTable(domain.TableSensorData, domain.SensorDataColumns, batch1))
	require.NoError(t, s.WriteTable(domain.TableSensorData, domain.SensorDataColumns, batch2))
	require.NoError(t, s.Close())

	rows := readCSV(t, filepath.Join(dir, "sensor_data.csv"))
	require.Len(t, rows, 3)
	assert.Equal(t, domain.SensorDataColumns, rows[0])
	assert.Equal(t, "61.2", rows[1][3])
	assert.Equal(t, "61.4", rows[2][3])
}

func TestCSVSinkFormatsOptionalAndArrayCells(t *testing.T) {
	dir := t.TempDir()
	s, err := NewCSVSink(dir)
	require.NoError(t, err)

	ts := time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC)
	m := 10.21
	lo, hi := 10.0, 10.5
	qc := domain.QualityControlRecord{
		Time: ts, BatchID: "BATCH_001000", LineID: "Line 1", ProductID: "PROD_A001",
		TestType: domain.TestDimensional, TestResult: domain.TestPass,
		MeasurementValue: &m, ToleranceMin: &lo, ToleranceMax: &hi,
		InspectorID: "INSP_003",
	}
	visual := domain.QualityControlRecord{
		Time: ts, BatchID: "BATCH_001001", LineID: "Line 2", ProductID: "PROD_B002",
		TestType: domain.TestVisual, TestResult: domain.TestPass,
		InspectorID: "INSP_001",
	}
	ev := domain.MaintenanceEvent{
		Time: ts, EquipmentID: "COMP_001",
		EventType: domain.EventUnscheduled, MaintenanceType: domain.MaintenanceCorrective,
		DurationHours: 2.5, Cost: 1400.0, TechnicianID: "TECH_004",
		Description:   "Unscheduled repair: bearing failure",
		PartsReplaced: []string{"bearings", "seals"},
	}

	require.NoError(t, s.WriteTable(domain.TableQualityControl, domain.QualityControlColumns, [][]any{qc.Row(), visual.Row()}))
	require.NoError(t, s.WriteTable(domain.TableMaintenanceEvents, domain.MaintenanceEventsColumns, [][]any{ev.Row()}))
	require.NoError(t, s.Close())

	qcRows := readCSV(t, filepath.Join(dir, "quality_control.csv"))
	require.Len(t, qcRows, 3)
	assert.Equal(t, "10.21", qcRows[1][6])
	assert.Equal(t, "", qcRows[2][6], "visual test has no measurement")
	assert.Equal(t, "", qcRows[2][7])

	evRows := readCSV(t, filepath.Join(dir, "maintenance_events.csv"))
	require.Len(t, evRows, 2)
	assert.Equal(t, "{bearings,seals}", evRows[1][8])
	assert.Equal(t, "2025-03-10 14:30:00+00", evRows[1][0])
}

func TestCSVSinkEmitsLoadScript(t *testing.T) {
	dir := t.TempDir()
	s, err := NewCSVSink(dir)
	require.NoError(t, err)

	ts := time.Now()
	require.NoError(t, s.WriteTable(domain.TableSensorData, domain.SensorDataColumns,
		[][]any{{ts, "MOTOR_001", "temperature", 61.2, "celsius", "normal"}}))
	require.NoError(t, s.Close())

	script, err := os.ReadFile(filepath.Join(dir, "load_data.sql"))
	require.NoError(t, err)
	assert.Contains(t, string(script), `\COPY sensor_data FROM 'sensor_data.csv' CSV HEADER;`)
	assert.NotContains(t, string(script), "quality_control", "only written tables are loaded")
}

func TestCSVSinkCloseWithoutWrites(t *testing.T) {
	dir := t.TempDir()
	s, err := NewCSVSink(dir)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	_, err = os.Stat(filepath.Join(dir, "load_data.sql"))
	assert.True(t, os.IsNotExist(err))
}
