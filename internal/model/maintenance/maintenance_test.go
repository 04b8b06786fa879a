package maintenance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghalamif/ForgeFeed/internal/domain"
	"github.com/ghalamif/ForgeFeed/internal/rng"
)

var monday = time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)

func yearOfEvents(t *testing.T, seed int64) []domain.MaintenanceEvent {
	t.Helper()
	g := NewGenerator(rng.New(seed))
	w := domain.Window{Start: monday, End: monday.AddDate(1, 0, 0)}
	events := g.Stream("MOTOR_001", w)
	require.NotEmpty(t, events)
	return events
}

func TestPreventiveIntervalBounds(t *testing.T) {
	events := yearOfEvents(t, 41)

	var preventive []time.Time
	for _, ev := range events {
		if ev.MaintenanceType == domain.MaintenancePreventive {
			preventive = append(preventive, ev.Time)
		}
	}
	require.GreaterOrEqual(t, len(preventive), 2)

	prev := monday
	for _, ts := range preventive {
		gap := ts.Sub(prev)
		assert.GreaterOrEqual(t, gap, 28*24*time.Hour)
		assert.LessOrEqual(t, gap, 35*24*time.Hour)
		prev = ts
	}
}

func TestEventAndMaintenanceTypesAgree(t *testing.T) {
	for _, ev := range yearOfEvents(t, 42) {
		switch ev.MaintenanceType {
		case domain.MaintenancePreventive:
			assert.Equal(t, domain.EventScheduled, ev.EventType)
			assert.InDelta(t, 4, ev.DurationHours, 2.05, "preventive duration in [2, 6]h")
		case domain.MaintenanceCorrective:
			assert.Equal(t, domain.EventUnscheduled, ev.EventType)
			assert.InDelta(t, 4.5, ev.DurationHours, 3.55, "corrective duration in [1, 8]h")
		default:
			t.Fatalf("unexpected maintenance type %s", ev.MaintenanceType)
		}
	}
}

func TestCorrectiveFaultsLandDuringWorkingHours(t *testing.T) {
	for _, ev := range yearOfEvents(t, 43) {
		if ev.MaintenanceType != domain.MaintenanceCorrective {
			continue
		}
		hour := ev.Time.Hour()
		assert.GreaterOrEqual(t, hour, 8)
		assert.LessOrEqual(t, hour, 18)
	}
}

func TestCorrectivePartsMatchCause(t *testing.T) {
	byCause := make(map[string][]string, len(faultCauses))
	for _, fc := range faultCauses {
		byCause["Unscheduled repair: "+fc.cause] = fc.parts
	}

	for _, ev := range yearOfEvents(t, 44) {
		if ev.MaintenanceType != domain.MaintenanceCorrective {
			continue
		}
		parts, ok := byCause[ev.Description]
		require.True(t, ok, "unknown corrective description %q", ev.Description)
		if ev.PartsReplaced != nil {
			assert.Equal(t, parts, ev.PartsReplaced)
		}
	}
}

func TestEventsAreOrderedAndInsideWindow(t *testing.T) {
	g := NewGenerator(rng.New(45))
	w := domain.Window{Start: monday, End: monday.AddDate(0, 6, 0)}
	events := g.Stream("PUMP_002", w)

	prev := w.Start
	for _, ev := range events {
		assert.False(t, ev.Time.Before(prev), "events sorted by time")
		assert.False(t, ev.Time.After(w.End))
		assert.Equal(t, "PUMP_002", ev.EquipmentID)
		prev = ev.Time
	}
}

func TestWindowShorterThanMinGapHasNoPreventive(t *testing.T) {
	g := NewGenerator(rng.New(46))
	w := domain.Window{Start: monday, End: monday.AddDate(0, 0, 20)}
	for _, ev := range g.Stream("CONV_001", w) {
		assert.NotEqual(t, domain.MaintenancePreventive, ev.MaintenanceType)
	}
}
