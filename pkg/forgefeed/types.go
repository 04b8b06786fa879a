package forgefeed

import (
	"github.com/ghalamif/ForgeFeed/internal/catalog"
	"github.com/ghalamif/ForgeFeed/internal/domain"
	"github.com/ghalamif/ForgeFeed/internal/ports"
	"github.com/ghalamif/ForgeFeed/internal/rng"
)

// Sink consumes ordered row batches per table and persists them anywhere.
type Sink = ports.Sink

// Observability emits logs and metrics about a generation run.
type Observability = ports.Observability

// Field is a structured log field used by Observability implementations.
type Field = ports.Field

// Catalog is the equipment registry a run generates data for.
type Catalog = catalog.Catalog

// Rand is the injectable randomness source; seed it for repeatable runs.
type Rand = rng.Rand

// Window is the half-open [start, end) range a run covers.
type Window = domain.Window

// Record types as they appear in the four sink tables.
type (
	SensorReading        = domain.SensorReading
	ProductionRecord     = domain.ProductionRecord
	QualityControlRecord = domain.QualityControlRecord
	MaintenanceEvent     = domain.MaintenanceEvent
)

// ErrEmptyWindow is returned when a window has no positive duration.
var ErrEmptyWindow = domain.ErrEmptyWindow

// DefaultCatalog returns the compiled-in workshop factory.
func DefaultCatalog() *Catalog { return catalog.Default() }

// NewRand returns a randomness source; seed 0 selects a time-derived seed.
func NewRand(seed int64) *Rand { return rng.New(seed) }
