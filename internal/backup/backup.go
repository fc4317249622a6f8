package backup

// Sink mirrors one table to a durable flat log. Users get append-only
// records; products and sales are periodically rewritten from store state.
type Sink interface {
	Append(record []string) error
	Rewrite(headers []string, rows [][]string) error
}
