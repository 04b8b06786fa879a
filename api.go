package forgefeed

import (
	base "github.com/ghalamif/ForgeFeed/pkg/forgefeed"
)

// Re-exported errors for convenience.
var ErrEmptyWindow = base.ErrEmptyWindow

// Type aliases so consumers can import github.com/ghalamif/ForgeFeed directly.
type (
	Config               = base.Config
	Runtime              = base.Runtime
	Option               = base.Option
	Report               = base.Report
	Sink                 = base.Sink
	Observability        = base.Observability
	Field                = base.Field
	Catalog              = base.Catalog
	Rand                 = base.Rand
	Window               = base.Window
	RowBatchSink         = base.RowBatchSink
	SensorReading        = base.SensorReading
	ProductionRecord     = base.ProductionRecord
	QualityControlRecord = base.QualityControlRecord
	MaintenanceEvent     = base.MaintenanceEvent
)

// Sink modes accepted by Config.
const (
	SinkModeTimescale = base.SinkModeTimescale
	SinkModeCSV       = base.SinkModeCSV
)

// Config helpers.
func LoadConfig(path string) (*Config, error) {
	return base.LoadConfig(path)
}

// Runtime construction and options.
func New(cfg *Config, opts ...Option) (*Runtime, error) {
	return base.New(cfg, opts...)
}

func WithSink(s Sink) Option { return base.WithSink(s) }

func WithObservability(obs Observability) Option { return base.WithObservability(obs) }

func WithRand(r *Rand) Option { return base.WithRand(r) }

func WithCatalog(cat *Catalog) Option { return base.WithCatalog(cat) }

// Defaults.
func DefaultCatalog() *Catalog { return base.DefaultCatalog() }

func NewRand(seed int64) *Rand { return base.NewRand(seed) }

// Sink adapters.
func NewCallbackSink(name string, fn RowBatchSink) Sink {
	return base.NewCallbackSink(name, fn)
}
