package repositories

import (
	"context"

	"github.com/SscSPs/bill_tracker_app/internal/core/domain"
)

// TransactionReader defines read operations for transaction data.
// Transactions are read-only inputs to the analytics.
type TransactionReader interface {
	// ListTransactions returns the transactions matching filter, newest first.
	ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error)
}
