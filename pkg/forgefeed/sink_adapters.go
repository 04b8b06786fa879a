package forgefeed

import "fmt"

// RowBatchSink is the function form of a sink: one call per (table, batch).
type RowBatchSink func(table string, columns []string, rows [][]any) error

// NewCallbackSink adapts a RowBatchSink into a full Sink implementation so
// callers can plug arbitrary functions without defining structs.
func NewCallbackSink(name string, fn RowBatchSink) Sink {
	if name == "" {
		name = "callback"
	}
	return &callbackSink{name: name, fn: fn}
}

type callbackSink struct {
	name string
	fn   RowBatchSink
}

func (s *callbackSink) WriteTable(table string, columns []string, rows [][]any) error {
	if s.fn == nil {
		return fmt.Errorf("callback sink %q: nil handler", s.name)
	}
	if len(rows) == 0 {
		return nil
	}
	return s.fn(table, columns, rows)
}

func (s *callbackSink) Name() string { return s.name }
