package sink

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/ghalamif/ForgeFeed/internal/domain"
	"github.com/ghalamif/ForgeFeed/internal/ports"
)

const timeLayout = "2006-01-02 15:04:05-07"

// CSVSink writes one <table>.csv per table for bulk loading with \COPY. The
// header row is written on the first batch for a table; later batches append.
type CSVSink struct {
	dir     string
	files   map[string]*os.File
	writers map[string]*csv.Writer
}

func NewCSVSink(dir string) (*CSVSink, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	return &CSVSink{
		dir:     dir,
		files:   make(map[string]*os.File),
		writers: make(map[string]*csv.Writer),
	}, nil
}

func (c *CSVSink) Name() string { return "csv" }

func (c *CSVSink) WriteTable(table string, columns []string, rows [][]any) error {
	w, err := c.writer(table, columns)
	if err != nil {
		return err
	}

	record := make([]string, len(columns))
	for _, row := range rows {
		if len(row) != len(columns) {
			return fmt.Errorf("table %s: %d values for %d columns", table, len(row), len(columns))
		}
		for i, v := range row {
			record[i] = formatCell(v)
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("write %s row: %w", table, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush %s: %w", table, err)
	}
	return nil
}

func (c *CSVSink) writer(table string, columns []string) (*csv.Writer, error) {
	if w, ok := c.writers[table]; ok {
		return w, nil
	}

	f, err := os.Create(filepath.Join(c.dir, table+".csv"))
	if err != nil {
		return nil, fmt.Errorf("create %s.csv: %w", table, err)
	}
	w := csv.NewWriter(f)
	if err := w.Write(columns); err != nil {
		f.Close()
		return nil, fmt.Errorf("write %s header: %w", table, err)
	}

	c.files[table] = f
	c.writers[table] = w
	return w, nil
}

// Close flushes every table file and emits load_data.sql with \COPY
// statements for the tables that were actually written.
func (c *CSVSink) Close() error {
	for table, w := range c.writers {
		w.Flush()
		if err := w.Error(); err != nil {
			return fmt.Errorf("flush %s: %w", table, err)
		}
	}
	for table, f := range c.files {
		if err := f.Close(); err != nil {
			return fmt.Errorf("close %s.csv: %w", table, err)
		}
	}
	if len(c.files) == 0 {
		return nil
	}
	return c.writeLoadScript()
}

func (c *CSVSink) writeLoadScript() error {
	var b strings.Builder
	b.WriteString("-- Load generated CSV files into the workshop tables.\n")
	b.WriteString("-- Run after creating the schema.\n\n")
	for _, table := range domain.TableOrder {
		if _, ok := c.files[table]; !ok {
			continue
		}
		fmt.Fprintf(&b, "\\COPY %s FROM '%s.csv' CSV HEADER;\n", table, table)
	}

	path := filepath.Join(c.dir, "load_data.sql")
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write load script: %w", err)
	}
	return nil
}

func formatCell(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case time.Time:
		return x.Format(timeLayout)
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case *float64:
		if x == nil {
			return ""
		}
		return strconv.FormatFloat(*x, 'f', -1, 64)
	case []string:
		if x == nil {
			return ""
		}
		// Postgres array literal, the shape \COPY expects.
		return "{" + strings.Join(x, ",") + "}"
	default:
		return fmt.Sprint(x)
	}
}

var _ ports.Sink = (*CSVSink)(nil)
