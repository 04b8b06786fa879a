// Package production generates per-equipment line productivity metrics.
package production

import (
	"math"
	"time"

	"github.com/ghalamif/ForgeFeed/internal/catalog"
	"github.com/ghalamif/ForgeFeed/internal/domain"
	"github.com/ghalamif/ForgeFeed/internal/rng"
)

type Generator struct {
	r *rng.Rand
}

func NewGenerator(r *rng.Rand) *Generator { return &Generator{r: r} }

// shiftBase draws the line-level efficiency and throughput bases for one tick.
// Three regimes: weekend, night shift, day shift.
func (g *Generator) shiftBase(ts time.Time) (efficiency, throughput float64) {
	switch {
	case ts.Weekday() == time.Saturday || ts.Weekday() == time.Sunday:
		return g.r.Uniform(30, 50), g.r.Uniform(10, 30)
	case ts.Hour() < 6 || ts.Hour() > 22:
		return g.r.Uniform(60, 80), g.r.Uniform(40, 70)
	default:
		return g.r.Uniform(80, 95), g.r.Uniform(70, 120)
	}
}

// TickLine generates one record per equipment unit on the line. Every unit
// perturbs the shared line base independently so the line does not report
// identical values across equipment.
func (g *Generator) TickLine(line string, equipment []domain.EquipmentProfile, ts time.Time) []domain.ProductionRecord {
	baseEff, baseThr := g.shiftBase(ts)

	out := make([]domain.ProductionRecord, 0, len(equipment))
	for _, p := range equipment {
		cycleTime := g.r.Uniform(35, 55) * (100 / math.Max(baseEff, 50))
		throughput := baseThr * g.r.Uniform(0.8, 1.2)

		efficiency := baseEff * g.r.Uniform(0.9, 1.1)
		efficiency = math.Max(0, math.Min(100, efficiency))

		energyBase := 7.5
		if line == "Line 1" {
			energyBase = 8.0
		}
		energy := energyBase + (throughput/100)*5 + g.r.Uniform(-1, 1)

		// Most ticks have no downtime at all; when a stop happens its
		// length follows an exponential whose mean grows as efficiency
		// drops.
		downtimeProb := (100 - efficiency) / 100 * 0.3
		downtime := 0.0
		if g.r.Chance(downtimeProb) {
			downtime = g.r.Exp(downtimeProb * 15)
		}

		defectRate := math.Max(0, (100-efficiency)/10+g.r.Uniform(-1, 1))

		out = append(out, domain.ProductionRecord{
			Time:              ts,
			LineID:            line,
			EquipmentID:       p.ID,
			CycleTime:         round1(cycleTime),
			Throughput:        round1(throughput),
			EfficiencyScore:   round1(efficiency),
			EnergyConsumption: round2(energy),
			DowntimeDuration:  round1(downtime),
			DefectRate:        round2(defectRate),
		})
	}
	return out
}

// Stream sweeps the window at a fixed interval, lines in catalog order,
// equipment in registry order within each line.
func (g *Generator) Stream(cat *catalog.Catalog, w domain.Window, interval time.Duration) []domain.ProductionRecord {
	var out []domain.ProductionRecord
	for ts := w.Start; ts.Before(w.End); ts = ts.Add(interval) {
		for _, line := range cat.Lines() {
			out = append(out, g.TickLine(line, cat.OnLine(line), ts)...)
		}
	}
	return out
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }

func round2(v float64) float64 { return math.Round(v*100) / 100 }
