package sink

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"github.com/ghalamif/ForgeFeed/internal/ports"
)

// TimescaleSink inserts row batches into TimescaleDB (or plain Postgres) with
// one multi-row INSERT per batch.
type TimescaleSink struct {
	db *sql.DB
}

// Open connects and pings so connection failures surface before any
// generation work starts.
func Open(connString string) (*TimescaleSink, error) {
	db, err := sql.Open("postgres", connString)
	if err != nil {
		return nil, fmt.Errorf("open timescale: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping timescale: %w", err)
	}
	return NewTimescaleSink(db), nil
}

func NewTimescaleSink(db *sql.DB) *TimescaleSink {
	return &TimescaleSink{db: db}
}

func (t *TimescaleSink) Name() string { return "timescaledb" }

func (t *TimescaleSink) WriteTable(table string, columns []string, rows [][]any) error {
	if len(rows) == 0 {
		return nil
	}

	var b strings.Builder
	b.WriteString("INSERT INTO ")
	b.WriteString(table)
	b.WriteString(" (")
	b.WriteString(strings.Join(columns, ", "))
	b.WriteString(") VALUES ")

	args := make([]any, 0, len(rows)*len(columns))
	for i, row := range rows {
		if len(row) != len(columns) {
			return fmt.Errorf("table %s row %d: %d values for %d columns", table, i, len(row), len(columns))
		}
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString("(")
		for j, v := range row {
			if j > 0 {
				b.WriteString(",")
			}
			fmt.Fprintf(&b, "$%d", len(args)+1)
			if parts, ok := v.([]string); ok {
				v = pq.Array(parts)
			}
			args = append(args, v)
		}
		b.WriteString(")")
	}

	if _, err := t.db.Exec(b.String(), args...); err != nil {
		return fmt.Errorf("insert into %s: %w", table, err)
	}
	return nil
}

func (t *TimescaleSink) Close() error { return t.db.Close() }

var _ ports.Sink = (*TimescaleSink)(nil)
