package repository

import "context"

// Document type keys for year-scoped numbering
const (
	DocTypeSaleOrder = "SO"
	DocTypeInvoice   = "INV"
)

// SequenceRepository hands out year-scoped document sequence numbers.
// Next must be atomic: two concurrent calls for the same (docType, year)
// never return the same value.
type SequenceRepository interface {
	Next(ctx context.Context, docType string, year int) (int64, error)
}
