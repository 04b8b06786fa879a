package forgefeed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/ghalamif/ForgeFeed/internal/adapters/observability"
	"github.com/ghalamif/ForgeFeed/internal/adapters/sink"
	"github.com/ghalamif/ForgeFeed/internal/app/pipeline"
)

// Report summarizes a completed generation run.
type Report = pipeline.Report

// Runtime wires a config and optional overrides into a runnable generation pass.
type Runtime struct {
	cfg *Config

	catalog *Catalog
	sink    Sink
	obs     Observability
	rand    *Rand
	log     *zap.Logger
}

// Option customizes the dependencies used by a Runtime.
type Option func(*Runtime)

// WithSink injects a custom sink so generated rows can go to any store.
func WithSink(s Sink) Option {
	return func(r *Runtime) { r.sink = s }
}

// WithObservability replaces the default zap/Prometheus backend.
func WithObservability(obs Observability) Option {
	return func(r *Runtime) { r.obs = obs }
}

// WithRand injects a seeded randomness source for repeatable output.
func WithRand(rand *Rand) Option {
	return func(r *Runtime) { r.rand = rand }
}

// WithCatalog swaps the compiled-in equipment registry.
func WithCatalog(cat *Catalog) Option {
	return func(r *Runtime) { r.catalog = cat }
}

// WithLogger sets the zap logger backing the default observability stack.
func WithLogger(log *zap.Logger) Option {
	return func(r *Runtime) { r.log = log }
}

// New builds a Runtime from a validated config.
func New(cfg *Config, opts ...Option) (*Runtime, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}
	r := &Runtime{cfg: cfg}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r, nil
}

// Run executes one generation pass: resolve and validate the window, open the
// sink, generate and flush every table, close the sink. A sink connection
// failure aborts before any generation work.
func (r *Runtime) Run(ctx context.Context) (*Report, error) {
	window := r.cfg.ResolvedWindow(time.Now())
	if err := window.Validate(); err != nil {
		return nil, err
	}

	log := r.log
	if log == nil {
		var err error
		log, err = zap.NewProduction()
		if err != nil {
			return nil, fmt.Errorf("init logger: %w", err)
		}
		defer log.Sync()
	}

	obs := r.obs
	if obs == nil {
		obs = observability.New(log)
	}

	s := r.sink
	if s == nil {
		var err error
		s, err = openSink(r.cfg)
		if err != nil {
			return nil, err
		}
	}
	defer closeSink(s, log)

	cat := r.catalog
	if cat == nil {
		cat = DefaultCatalog()
	}

	rand := r.rand
	if rand == nil {
		rand = NewRand(r.cfg.Seed)
	}

	stopMetrics := startMetrics(r.cfg.Metrics.Addr, log)
	defer stopMetrics(ctx)

	runID := uuid.NewString()
	obs.LogInfo("run_started",
		Field{Key: "run_id", Value: runID},
		Field{Key: "sink", Value: s.Name()},
		Field{Key: "window_start", Value: window.Start},
		Field{Key: "window_end", Value: window.End},
	)

	report, err := pipeline.Run(pipeline.Deps{
		Catalog: cat,
		Sink:    s,
		Obs:     obs,
		Rand:    rand,
	}, pipeline.Options{
		Window:             window,
		SensorInterval:     r.cfg.Intervals.Sensor,
		ProductionInterval: r.cfg.Intervals.Production,
		BatchSize:          r.cfg.Sink.BatchSize,
	})
	if err != nil {
		obs.LogError("run_failed", err, Field{Key: "run_id", Value: runID})
		return report, err
	}

	obs.LogInfo("run_complete",
		Field{Key: "run_id", Value: runID},
		Field{Key: "rows", Value: report.TotalRows()},
		Field{Key: "batches", Value: report.BatchesWritten},
	)
	return report, nil
}

func openSink(cfg *Config) (Sink, error) {
	switch cfg.Sink.Mode {
	case SinkModeTimescale:
		return sink.Open(cfg.Sink.ConnString)
	case SinkModeCSV:
		return sink.NewCSVSink(cfg.Sink.Dir)
	default:
		return nil, fmt.Errorf("unknown sink mode %q", cfg.Sink.Mode)
	}
}

func closeSink(s Sink, log *zap.Logger) {
	if c, ok := s.(io.Closer); ok {
		if err := c.Close(); err != nil {
			log.Error("sink close failed", zap.Error(err))
		}
	}
}

// startMetrics serves /metrics while the run is in flight when an address is
// configured. Returns a shutdown func either way.
func startMetrics(addr string, log *zap.Logger) func(context.Context) {
	if addr == "" {
		return func(context.Context) {}
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: addr, Handler: mux}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("metrics server failed", zap.Error(err))
		}
	}()

	return func(ctx context.Context) {
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}
}
