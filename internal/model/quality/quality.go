// Package quality generates quality-control test records. Unlike the sensor
// and production models it is event-driven: test instants arrive at random
// intervals instead of a fixed tick.
package quality

import (
	"fmt"
	"math"
	"time"

	"github.com/ghalamif/ForgeFeed/internal/catalog"
	"github.com/ghalamif/ForgeFeed/internal/domain"
	"github.com/ghalamif/ForgeFeed/internal/rng"
)

const (
	minTestGapMinutes = 30
	maxTestGapMinutes = 180

	testChancePerLine = 0.7
	passRate          = 0.95

	// Failing measurements land at least this far outside the band so
	// rounding can never pull them back onto a tolerance boundary.
	failMargin = 0.01
)

var testTypes = []domain.TestType{
	domain.TestDimensional,
	domain.TestVisual,
	domain.TestFunctional,
	domain.TestElectrical,
}

// tolerances per measured test kind: the band itself, how far inside it
// passing measurements sit, and how far outside failing ones can land.
type toleranceSpec struct {
	min, max   float64
	passInset  float64
	failOffset float64
}

var toleranceByType = map[domain.TestType]toleranceSpec{
	domain.TestDimensional: {min: 10.0, max: 10.5, passInset: 0.05, failOffset: 0.2},
	domain.TestElectrical:  {min: 45.0, max: 55.0, passInset: 1.0, failOffset: 5.0},
}

// Generator owns the run-global batch counter; batch IDs are strictly
// increasing and never reused.
type Generator struct {
	r         *rng.Rand
	nextBatch int
}

func NewGenerator(r *rng.Rand) *Generator {
	return &Generator{r: r, nextBatch: 1000}
}

// Stream walks the window adding a random 30-180 minute gap per step and
// terminates once the next test instant would pass the window end. At each
// instant every line independently runs a test with fixed probability.
func (g *Generator) Stream(lines []string, w domain.Window) []domain.QualityControlRecord {
	var out []domain.QualityControlRecord

	current := w.Start
	for {
		next := current.Add(time.Duration(g.r.IntBetween(minTestGapMinutes, maxTestGapMinutes)) * time.Minute)
		if next.After(w.End) {
			break
		}

		for _, line := range lines {
			if !g.r.Chance(testChancePerLine) {
				continue
			}
			out = append(out, g.test(line, next))
		}
		current = next
	}
	return out
}

func (g *Generator) test(line string, ts time.Time) domain.QualityControlRecord {
	rec := domain.QualityControlRecord{
		Time:        ts,
		BatchID:     fmt.Sprintf("BATCH_%06d", g.nextBatch),
		LineID:      line,
		ProductID:   rng.Pick(g.r, catalog.ProductIDs),
		TestType:    rng.Pick(g.r, testTypes),
		TestResult:  domain.TestPass,
		InspectorID: rng.Pick(g.r, catalog.InspectorIDs),
	}
	g.nextBatch++

	if !g.r.Chance(passRate) {
		rec.TestResult = domain.TestFail
	}

	if spec, ok := toleranceByType[rec.TestType]; ok {
		m := g.measure(spec, rec.TestResult)
		rec.MeasurementValue = &m
		min, max := spec.min, spec.max
		rec.ToleranceMin = &min
		rec.ToleranceMax = &max
	}
	return rec
}

// measure samples a value consistent with the outcome: passes strictly inside
// the band with an inward margin, failures just outside on a random side.
func (g *Generator) measure(spec toleranceSpec, result domain.TestResult) float64 {
	var v float64
	if result == domain.TestPass {
		v = g.r.Uniform(spec.min+spec.passInset, spec.max-spec.passInset)
	} else if g.r.Chance(0.5) {
		v = g.r.Uniform(spec.min-spec.failOffset, spec.min-failMargin)
	} else {
		v = g.r.Uniform(spec.max+failMargin, spec.max+spec.failOffset)
	}
	return math.Round(v*100) / 100
}
