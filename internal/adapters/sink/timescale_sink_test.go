package sink

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/ghalamif/ForgeFeed/internal/domain"
)

func TestTimescaleSinkWriteTable(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	s := NewTimescaleSink(db)
	ts := time.Date(2025, 3, 3, 8, 0, 0, 0, time.UTC)

	rows := [][]any{
		{ts, "MOTOR_001", "temperature", 61.2, "celsius", "normal"},
		{ts, "MOTOR_001", "vibration", 6.41, "hz", "normal"},
	}

	expectedQuery := regexp.QuoteMeta(
		"INSERT INTO sensor_data (time, equipment_id, sensor_type, value, unit, status) VALUES ($1,$2,$3,$4,$5,$6),($7,$8,$9,$10,$11,$12)")
	mock.ExpectExec(expectedQuery).
		WithArgs(
			ts, "MOTOR_001", "temperature", 61.2, "celsius", "normal",
			ts, "MOTOR_001", "vibration", 6.41, "hz", "normal",
		).
		WillReturnResult(sqlmock.NewResult(0, 2))

	if err := s.WriteTable(domain.TableSensorData, domain.SensorDataColumns, rows); err != nil {
		t.Fatalf("write table: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestTimescaleSinkConvertsPartsToArray(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	s := NewTimescaleSink(db)
	ts := time.Date(2025, 3, 31, 9, 0, 0, 0, time.UTC)

	ev := domain.MaintenanceEvent{
		Time:            ts,
		EquipmentID:     "PUMP_001",
		EventType:       domain.EventScheduled,
		MaintenanceType: domain.MaintenancePreventive,
		DurationHours:   3.5,
		Cost:            812.40,
		TechnicianID:    "TECH_002",
		Description:     "Scheduled preventive maintenance for PUMP_001",
		PartsReplaced:   []string{"filters", "lubricants"},
	}

	mock.ExpectExec("INSERT INTO maintenance_events").
		WithArgs(
			ts, "PUMP_001", "scheduled", "preventive",
			3.5, 812.40, "TECH_002", "Scheduled preventive maintenance for PUMP_001",
			sqlmock.AnyArg(),
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := s.WriteTable(domain.TableMaintenanceEvents, domain.MaintenanceEventsColumns, [][]any{ev.Row()}); err != nil {
		t.Fatalf("write table: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestTimescaleSinkEmptyBatch(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	s := NewTimescaleSink(db)
	if err := s.WriteTable(domain.TableSensorData, domain.SensorDataColumns, nil); err != nil {
		t.Fatalf("expected nil error for empty batch, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestTimescaleSinkWrapsExecError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	boom := errors.New("connection reset")
	mock.ExpectExec("INSERT INTO sensor_data").WillReturnError(boom)

	s := NewTimescaleSink(db)
	ts := time.Now()
	err = s.WriteTable(domain.TableSensorData, domain.SensorDataColumns, [][]any{
		{ts, "MOTOR_001", "temperature", 61.2, "celsius", "normal"},
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped exec error, got %v", err)
	}
}

func TestTimescaleSinkRejectsColumnMismatch(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	s := NewTimescaleSink(db)
	if err := s.WriteTable(domain.TableSensorData, domain.SensorDataColumns, [][]any{{1, 2}}); err == nil {
		t.Fatalf("expected error for short row")
	}
}

func TestTimescaleSinkName(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	if s := NewTimescaleSink(db); s.Name() != "timescaledb" {
		t.Fatalf("expected sink name timescaledb, got %s", s.Name())
	}
}
