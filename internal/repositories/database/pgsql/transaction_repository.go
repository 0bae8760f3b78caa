package pgsql

import (
	"context"
	"fmt"
	"strings"

	"github.com/SscSPs/bill_tracker_app/internal/core/domain"
	portsrepo "github.com/SscSPs/bill_tracker_app/internal/core/ports/repositories"
	"github.com/SscSPs/bill_tracker_app/internal/models"
	"github.com/SscSPs/bill_tracker_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(pool *pgxpool.Pool) *PgxTransactionRepository {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionReader = (*PgxTransactionRepository)(nil)

// buildTransactionQuery renders the listing query for filter. Both date bounds are inclusive.
func buildTransactionQuery(filter domain.TransactionFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	if filter.Category != "" {
		args = append(args, filter.Category)
		conds = append(conds, fmt.Sprintf("category = $%d", len(args)))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		conds = append(conds, fmt.Sprintf("transaction_date >= $%d", len(args)))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		conds = append(conds, fmt.Sprintf("transaction_date <= $%d", len(args)))
	}

	var b strings.Builder
	b.WriteString(`SELECT transaction_id, transaction_date, description, amount, category, payment_method, notes, created_at FROM transactions`)
	if len(conds) > 0 {
		b.WriteString(" WHERE ")
		b.WriteString(strings.Join(conds, " AND "))
	}
	b.WriteString(" ORDER BY transaction_date DESC, transaction_id;")
	return b.String(), args
}

// ListTransactions retrieves the transactions matching filter, newest first.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	query, args := buildTransactionQuery(filter)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	txs := make([]domain.Transaction, 0)
	for rows.Next() {
		var m models.Transaction
		if err := rows.Scan(
			&m.TransactionID,
			&m.TransactionDate,
			&m.Description,
			&m.Amount,
			&m.Category,
			&m.PaymentMethod,
			&m.Notes,
			&m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		txs = append(txs, mapping.ToDomainTransaction(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}
	return txs, nil
}
