package ports

// Sink persists ordered batches of rows for one logical table. Implementations
// must apply a batch atomically or fail it whole; the pipeline never retries a
// failed batch.
type Sink interface {
	WriteTable(table string, columns []string, rows [][]any) error
	Name() string
}
