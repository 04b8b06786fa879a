package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ghalamif/ForgeFeed/internal/domain"
)

const (
	SinkModeTimescale = "timescale"
	SinkModeCSV       = "csv"
)

type Config struct {
	Window    WindowConfig   `yaml:"window"`
	Intervals IntervalConfig `yaml:"intervals"`
	Seed      int64          `yaml:"seed"`
	Sink      SinkConfig     `yaml:"sink"`
	Metrics   MetricsConfig  `yaml:"metrics"`
}

// WindowConfig selects the generation window: either an explicit start/end
// pair or a trailing number of days ending now.
type WindowConfig struct {
	Start time.Time `yaml:"start"`
	End   time.Time `yaml:"end"`
	Days  int       `yaml:"days"`
}

type IntervalConfig struct {
	Sensor     time.Duration `yaml:"sensor"`
	Production time.Duration `yaml:"production"`
}

type SinkConfig struct {
	Mode       string `yaml:"mode"`
	ConnString string `yaml:"conn_string"`
	Dir        string `yaml:"dir"`
	BatchSize  int    `yaml:"batch_size"`
}

type MetricsConfig struct {
	Addr string `yaml:"addr"`
}

func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) ApplyDefaults() {
	if c.Window.Days == 0 && c.Window.Start.IsZero() && c.Window.End.IsZero() {
		c.Window.Days = 7
	}
	if c.Intervals.Sensor == 0 {
		c.Intervals.Sensor = time.Minute
	}
	if c.Intervals.Production == 0 {
		c.Intervals.Production = 5 * time.Minute
	}
	if c.Sink.Mode == "" {
		c.Sink.Mode = SinkModeCSV
	}
	if c.Sink.Dir == "" {
		c.Sink.Dir = "./out"
	}
	if c.Sink.BatchSize == 0 {
		c.Sink.BatchSize = 1000
	}
}

func (c *Config) Validate() error {
	switch c.Sink.Mode {
	case SinkModeTimescale:
		if c.Sink.ConnString == "" {
			return fmt.Errorf("sink.conn_string is required for timescale mode")
		}
	case SinkModeCSV:
		if c.Sink.Dir == "" {
			return fmt.Errorf("sink.dir is required for csv mode")
		}
	default:
		return fmt.Errorf("sink.mode must be %q or %q, got %q", SinkModeTimescale, SinkModeCSV, c.Sink.Mode)
	}

	if c.Intervals.Sensor <= 0 || c.Intervals.Production <= 0 {
		return fmt.Errorf("intervals must be positive")
	}
	if c.Sink.BatchSize <= 0 {
		return fmt.Errorf("sink.batch_size must be positive")
	}

	hasExplicit := !c.Window.Start.IsZero() || !c.Window.End.IsZero()
	if hasExplicit {
		if c.Window.Start.IsZero() || c.Window.End.IsZero() {
			return fmt.Errorf("window.start and window.end must be set together")
		}
		if err := (domain.Window{Start: c.Window.Start, End: c.Window.End}).Validate(); err != nil {
			return err
		}
	} else if c.Window.Days <= 0 {
		return fmt.Errorf("window.days must be positive")
	}
	return nil
}

// ResolvedWindow turns the window config into a concrete half-open range.
// Trailing-days windows end at now.
func (c *Config) ResolvedWindow(now time.Time) domain.Window {
	if !c.Window.Start.IsZero() {
		return domain.Window{Start: c.Window.Start, End: c.Window.End}
	}
	return domain.Window{Start: now.AddDate(0, 0, -c.Window.Days), End: now}
}
