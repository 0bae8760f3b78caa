package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/bill_tracker_app/internal/apperrors"
	"github.com/SscSPs/bill_tracker_app/internal/core/domain"
	portsrepo "github.com/SscSPs/bill_tracker_app/internal/core/ports/repositories"
	"github.com/SscSPs/bill_tracker_app/internal/models"
	"github.com/SscSPs/bill_tracker_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxBillRepository struct {
	BaseRepository
}

// newPgxBillRepository creates a new repository for bill data.
func newPgxBillRepository(pool *pgxpool.Pool) *PgxBillRepository {
	return &PgxBillRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxBillRepository implements portsrepo.BillRepositoryFacade
var _ portsrepo.BillRepositoryFacade = (*PgxBillRepository)(nil)

const billColumns = `bill_id, name, amount, category, due_date, is_recurring, recurring_frequency,
		payment_method, status, payment_date, note, created_at, last_updated_at`

// ListBills retrieves every bill in creation order.
func (r *PgxBillRepository) ListBills(ctx context.Context) ([]domain.Bill, error) {
	query := `SELECT ` + billColumns + ` FROM bills ORDER BY created_at, bill_id;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query bills: %w", err)
	}
	defer rows.Close()

	var rowsData []models.Bill
	for rows.Next() {
		var m models.Bill
		if err := rows.Scan(
			&m.BillID,
			&m.Name,
			&m.Amount,
			&m.Category,
			&m.DueDate,
			&m.IsRecurring,
			&m.RecurringFrequency,
			&m.PaymentMethod,
			&m.Status,
			&m.PaymentDate,
			&m.Note,
			&m.CreatedAt,
			&m.LastUpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan bill row: %w", err)
		}
		rowsData = append(rowsData, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bill rows: %w", err)
	}
	return mapping.ToDomainBillSlice(rowsData), nil
}

// SaveBill inserts a new bill.
func (r *PgxBillRepository) SaveBill(ctx context.Context, bill domain.Bill) error {
	m := mapping.ToModelBill(bill)
	query := `
		INSERT INTO bills (bill_id, name, amount, category, due_date, is_recurring, recurring_frequency,
			payment_method, status, payment_date, note, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.BillID,
		m.Name,
		m.Amount,
		m.Category,
		m.DueDate,
		m.IsRecurring,
		m.RecurringFrequency,
		m.PaymentMethod,
		m.Status,
		m.PaymentDate,
		m.Note,
		m.CreatedAt,
		m.CreatedAt,
	)
	if err != nil {
		return mapWriteError(err, "bill", m.BillID)
	}
	return nil
}

// UpdateBill overwrites every mutable column of an existing bill.
func (r *PgxBillRepository) UpdateBill(ctx context.Context, bill domain.Bill) error {
	m := mapping.ToModelBill(bill)
	query := `
		UPDATE bills
		SET name = $2, amount = $3, category = $4, due_date = $5, is_recurring = $6,
			recurring_frequency = $7, payment_method = $8, status = $9, payment_date = $10,
			note = $11, last_updated_at = $12
		WHERE bill_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.BillID,
		m.Name,
		m.Amount,
		m.Category,
		m.DueDate,
		m.IsRecurring,
		m.RecurringFrequency,
		m.PaymentMethod,
		m.Status,
		m.PaymentDate,
		m.Note,
		time.Now().UTC(),
	)
	if err != nil {
		return mapWriteError(err, "bill", m.BillID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: bill %s", apperrors.ErrNotFound, m.BillID)
	}
	return nil
}

// DeleteBill removes a bill by ID.
func (r *PgxBillRepository) DeleteBill(ctx context.Context, billID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM bills WHERE bill_id = $1;`, billID)
	if err != nil {
		return fmt.Errorf("failed to delete bill %s: %w", billID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: bill %s", apperrors.ErrNotFound, billID)
	}
	return nil
}
