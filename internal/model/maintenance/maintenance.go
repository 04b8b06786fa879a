// Package maintenance schedules preventive and corrective maintenance events
// per equipment unit across a generation window.
package maintenance

import (
	"fmt"
	"math"
	"time"

	"github.com/ghalamif/ForgeFeed/internal/catalog"
	"github.com/ghalamif/ForgeFeed/internal/domain"
	"github.com/ghalamif/ForgeFeed/internal/rng"
)

const (
	preventiveMinGapDays = 28
	preventiveMaxGapDays = 35

	preventivePartsChance = 0.7
	correctivePartsChance = 0.8

	// Independent per-day chance of an unplanned fault between two
	// preventive services.
	faultChancePerDay = 0.02
)

var preventiveParts = []string{"filters", "lubricants"}

// faultCauses maps each corrective fault cause to the parts it implies.
var faultCauses = []struct {
	cause string
	parts []string
}{
	{"bearing failure", []string{"bearings", "seals"}},
	{"sensor malfunction", []string{"sensors", "wiring"}},
	{"electrical issue", []string{"electrical_components"}},
	{"hydraulic leak", []string{"hydraulic_seals", "hoses"}},
	{"belt replacement", []string{"belts", "pulleys"}},
	{"calibration drift", []string{"calibration_tools"}},
}

type Generator struct {
	r *rng.Rand
}

func NewGenerator(r *rng.Rand) *Generator { return &Generator{r: r} }

// Stream produces the maintenance history for one unit, ordered by time. Two
// processes share one time cursor: preventive services 28-35 days apart, and
// per-day fault trials across each inter-service gap. The cursor always jumps
// to the next preventive time no matter how many faults fired in between.
func (g *Generator) Stream(equipmentID string, w domain.Window) []domain.MaintenanceEvent {
	var out []domain.MaintenanceEvent

	cursor := w.Start
	for cursor.Before(w.End) {
		gapDays := g.r.IntBetween(preventiveMinGapDays, preventiveMaxGapDays)
		next := cursor.AddDate(0, 0, gapDays)

		for day := 0; day < gapDays; day++ {
			if !g.r.Chance(faultChancePerDay) {
				continue
			}
			faultTime := cursor.AddDate(0, 0, day).Add(time.Duration(g.r.IntBetween(8, 18)) * time.Hour)
			if faultTime.After(w.End) {
				break
			}
			out = append(out, g.corrective(equipmentID, faultTime))
		}

		if !next.After(w.End) {
			out = append(out, g.preventive(equipmentID, next))
		}
		cursor = next
	}
	return out
}

func (g *Generator) preventive(equipmentID string, ts time.Time) domain.MaintenanceEvent {
	ev := domain.MaintenanceEvent{
		Time:            ts,
		EquipmentID:     equipmentID,
		EventType:       domain.EventScheduled,
		MaintenanceType: domain.MaintenancePreventive,
		DurationHours:   round1(g.r.Uniform(2, 6)),
		Cost:            round2(g.r.Uniform(500, 2000)),
		TechnicianID:    rng.Pick(g.r, catalog.TechnicianIDs),
		Description:     fmt.Sprintf("Scheduled preventive maintenance for %s", equipmentID),
	}
	if g.r.Chance(preventivePartsChance) {
		ev.PartsReplaced = preventiveParts
	}
	return ev
}

func (g *Generator) corrective(equipmentID string, ts time.Time) domain.MaintenanceEvent {
	fault := rng.Pick(g.r, faultCauses)
	ev := domain.MaintenanceEvent{
		Time:            ts,
		EquipmentID:     equipmentID,
		EventType:       domain.EventUnscheduled,
		MaintenanceType: domain.MaintenanceCorrective,
		DurationHours:   round1(g.r.Uniform(1, 8)),
		Cost:            round2(g.r.Uniform(200, 5000)),
		TechnicianID:    rng.Pick(g.r, catalog.TechnicianIDs),
		Description:     fmt.Sprintf("Unscheduled repair: %s", fault.cause),
	}
	if g.r.Chance(correctivePartsChance) {
		ev.PartsReplaced = fault.parts
	}
	return ev
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }

func round2(v float64) float64 { return math.Round(v*100) / 100 }
