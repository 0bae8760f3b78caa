package memory

import (
	"context"
	"slices"

	"github.com/SscSPs/bill_tracker_app/internal/core/domain"
	portsrepo "github.com/SscSPs/bill_tracker_app/internal/core/ports/repositories"
)

// TransactionRepository serves a fixed transaction history.
type TransactionRepository struct {
	transactions []domain.Transaction
}

var _ portsrepo.TransactionReader = (*TransactionRepository)(nil)

func NewTransactionRepository(seed []domain.Transaction) *TransactionRepository {
	return &TransactionRepository{transactions: slices.Clone(seed)}
}

// ListTransactions returns the matching transactions, newest first.
func (r *TransactionRepository) ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]domain.Transaction, 0, len(r.transactions))
	for _, t := range r.transactions {
		if filter.Matches(t) {
			out = append(out, t)
		}
	}
	slices.SortStableFunc(out, func(a, b domain.Transaction) int {
		return b.Date.Compare(a.Date)
	})
	return out, nil
}
