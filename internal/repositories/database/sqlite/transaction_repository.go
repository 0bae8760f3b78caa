package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/SscSPs/bill_tracker_app/internal/core/domain"
	portsrepo "github.com/SscSPs/bill_tracker_app/internal/core/ports/repositories"
	"github.com/SscSPs/bill_tracker_app/internal/models"
	"github.com/SscSPs/bill_tracker_app/internal/utils/mapping"
)

type TransactionRepository struct {
	db *sql.DB
}

func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

var _ portsrepo.TransactionReader = (*TransactionRepository)(nil)

// ListTransactions retrieves the transactions matching filter, newest first.
// Both date bounds are inclusive.
func (r *TransactionRepository) ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	var (
		conds []string
		args  []any
	)
	if filter.Category != "" {
		conds = append(conds, "category = ?")
		args = append(args, filter.Category)
	}
	if filter.From != nil {
		conds = append(conds, "transaction_date >= ?")
		args = append(args, formatDate(*filter.From))
	}
	if filter.To != nil {
		conds = append(conds, "transaction_date <= ?")
		args = append(args, formatDate(*filter.To))
	}

	query := `SELECT transaction_id, transaction_date, description, amount, category, payment_method, notes FROM transactions`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY transaction_date DESC, transaction_id;"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	txs := make([]domain.Transaction, 0)
	for rows.Next() {
		var (
			m    models.Transaction
			date string
		)
		if err := rows.Scan(
			&m.TransactionID,
			&date,
			&m.Description,
			&m.Amount,
			&m.Category,
			&m.PaymentMethod,
			&m.Notes,
		); err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		if m.TransactionDate, err = parseDate(date); err != nil {
			return nil, fmt.Errorf("transaction %s has malformed date %q: %w", m.TransactionID, date, err)
		}
		txs = append(txs, mapping.ToDomainTransaction(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}
	return txs, nil
}

// SaveTransaction inserts one transaction. Transactions are read-only to the
// services; this is used to import history.
func (r *TransactionRepository) SaveTransaction(ctx context.Context, t domain.Transaction) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO transactions (transaction_id, transaction_date, description, amount, category, payment_method, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?);`,
		t.ID,
		formatDate(t.Date),
		t.Description,
		t.Amount.String(),
		t.Category,
		sql.NullString{String: t.PaymentMethod, Valid: t.PaymentMethod != ""},
		sql.NullString{String: t.Notes, Valid: t.Notes != ""},
	)
	if err != nil {
		return mapWriteError(err, "transaction", t.ID)
	}
	return nil
}
