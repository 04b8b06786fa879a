// Package signal turns equipment profiles, drift state, and timestamps into
// sensor reading streams with status classification.
package signal

import (
	"math"
	"time"

	"github.com/ghalamif/ForgeFeed/internal/catalog"
	"github.com/ghalamif/ForgeFeed/internal/domain"
	"github.com/ghalamif/ForgeFeed/internal/rng"
)

// Critical thresholds are ratios of the configured upper bound and differ per
// sensor kind. Humidity is the odd one out: a two-sided warning band and no
// critical level at all.
const (
	tempCriticalRatio     = 1.1
	vibCriticalRatio      = 1.2
	pressureCriticalRatio = 1.05

	humidityWarnLow  = 40.0
	humidityWarnHigh = 70.0

	tempCycleAmplitude = 3.0
	tempNoiseRatio     = 0.3
	vibNoiseRatio      = 0.4
	pressureNoiseRatio = 0.2

	// One-off fault transients: a small chance per reading of a sudden
	// temperature jump that must be reclassified.
	spikeChance = 0.005
)

// Generator produces sensor readings. It is stateless aside from the injected
// randomness source; drift state is passed in per call.
type Generator struct {
	r *rng.Rand
}

func NewGenerator(r *rng.Rand) *Generator { return &Generator{r: r} }

// OperatingFactor models the shift schedule: equipment runs hard during day
// shifts, lighter at night, and barely at all on weekends.
func OperatingFactor(ts time.Time) float64 {
	switch {
	case ts.Weekday() == time.Saturday || ts.Weekday() == time.Sunday:
		return 0.3
	case ts.Hour() < 6 || ts.Hour() > 22:
		return 0.6
	default:
		return 1.0
	}
}

// Tick generates one reading per applicable sensor kind for one unit at one
// instant. daysElapsed is whole days since the window start; drift accumulates
// linearly with it.
func (g *Generator) Tick(p domain.EquipmentProfile, drift domain.DriftState, ts time.Time, daysElapsed float64) []domain.SensorReading {
	factor := OperatingFactor(ts)
	out := make([]domain.SensorReading, 0, 4)

	out = append(out, g.temperature(p, drift, ts, daysElapsed, factor))
	out = append(out, g.vibration(p, drift, ts, daysElapsed, factor))

	if p.HasPressure() {
		out = append(out, g.pressure(p, ts, factor))
	}
	if p.Type == domain.EquipmentHVAC {
		out = append(out, g.humidity(p, ts))
	}
	return out
}

func (g *Generator) temperature(p domain.EquipmentProfile, drift domain.DriftState, ts time.Time, days, factor float64) domain.SensorReading {
	cycle := tempCycleAmplitude * math.Sin(2*math.Pi*float64(ts.Hour())/24)
	value := p.Temp.Mid() +
		cycle +
		g.r.Gauss(0, p.Temp.Width()*tempNoiseRatio) +
		drift.TempPerDay*days +
		(factor-0.7)*5 // the schedule shifts temperature rather than scaling it

	if g.r.Chance(spikeChance) {
		value += g.r.Uniform(5, 15)
	}
	value = round1(value)

	return domain.SensorReading{
		Time:        ts,
		EquipmentID: p.ID,
		Sensor:      domain.SensorTemperature,
		Value:       value,
		Unit:        "celsius",
		Status:      classifyOver(value, p.Temp.Max, tempCriticalRatio),
	}
}

func (g *Generator) vibration(p domain.EquipmentProfile, drift domain.DriftState, ts time.Time, days, factor float64) domain.SensorReading {
	value := p.Vib.Mid()*factor +
		g.r.Gauss(0, p.Vib.Width()*vibNoiseRatio) +
		drift.VibPerDay*days
	value = round2(math.Max(0, value)) // vibration cannot be negative

	return domain.SensorReading{
		Time:        ts,
		EquipmentID: p.ID,
		Sensor:      domain.SensorVibration,
		Value:       value,
		Unit:        "hz",
		Status:      classifyOver(value, p.Vib.Max, vibCriticalRatio),
	}
}

func (g *Generator) pressure(p domain.EquipmentProfile, ts time.Time, factor float64) domain.SensorReading {
	pr := *p.Pressure
	value := pr.Mid()*factor + g.r.Gauss(0, pr.Width()*pressureNoiseRatio)
	value = round1(math.Max(0, value))

	return domain.SensorReading{
		Time:        ts,
		EquipmentID: p.ID,
		Sensor:      domain.SensorPressure,
		Value:       value,
		Unit:        "bar",
		Status:      classifyOver(value, pr.Max, pressureCriticalRatio),
	}
}

func (g *Generator) humidity(p domain.EquipmentProfile, ts time.Time) domain.SensorReading {
	value := g.r.Uniform(45, 65)
	status := domain.StatusNormal
	if value < humidityWarnLow || value > humidityWarnHigh {
		status = domain.StatusWarning
	}

	return domain.SensorReading{
		Time:        ts,
		EquipmentID: p.ID,
		Sensor:      domain.SensorHumidity,
		Value:       round1(value),
		Unit:        "percent",
		Status:      status,
	}
}

// classifyOver is the one-sided classification used for temperature,
// vibration, and pressure: warning above the range max, critical above
// max times the kind-specific ratio.
func classifyOver(value, upper, criticalRatio float64) domain.Status {
	switch {
	case value > upper*criticalRatio:
		return domain.StatusCritical
	case value > upper:
		return domain.StatusWarning
	default:
		return domain.StatusNormal
	}
}

// Stream sweeps the window at a fixed interval and emits readings ordered by
// time, then by equipment registry order. The window is half-open: the start
// tick is included, the end instant is not.
func (g *Generator) Stream(cat *catalog.Catalog, drift map[string]domain.DriftState, w domain.Window, interval time.Duration) []domain.SensorReading {
	var out []domain.SensorReading
	for ts := w.Start; ts.Before(w.End); ts = ts.Add(interval) {
		days := float64(int(ts.Sub(w.Start).Hours() / 24))
		for _, p := range cat.All() {
			out = append(out, g.Tick(p, drift[p.ID], ts, days)...)
		}
	}
	return out
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }

func round2(v float64) float64 { return math.Round(v*100) / 100 }
