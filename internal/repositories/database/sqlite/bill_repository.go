package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/SscSPs/bill_tracker_app/internal/apperrors"
	"github.com/SscSPs/bill_tracker_app/internal/core/domain"
	portsrepo "github.com/SscSPs/bill_tracker_app/internal/core/ports/repositories"
	"github.com/SscSPs/bill_tracker_app/internal/models"
	"github.com/SscSPs/bill_tracker_app/internal/utils/mapping"
)

type BillRepository struct {
	db  *sql.DB
	now func() time.Time
}

func NewBillRepository(db *sql.DB) *BillRepository {
	return &BillRepository{db: db, now: time.Now}
}

var _ portsrepo.BillRepositoryFacade = (*BillRepository)(nil)

const billColumns = `bill_id, name, amount, category, due_date, is_recurring, recurring_frequency,
		payment_method, status, payment_date, note, created_at, last_updated_at`

// ListBills retrieves every bill in creation order.
func (r *BillRepository) ListBills(ctx context.Context) ([]domain.Bill, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+billColumns+` FROM bills ORDER BY created_at, bill_id;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query bills: %w", err)
	}
	defer rows.Close()

	var rowsData []models.Bill
	for rows.Next() {
		m, err := scanBill(rows)
		if err != nil {
			return nil, err
		}
		rowsData = append(rowsData, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bill rows: %w", err)
	}
	return mapping.ToDomainBillSlice(rowsData), nil
}

func scanBill(rows *sql.Rows) (models.Bill, error) {
	var (
		m                             models.Bill
		dueDate, createdAt, updatedAt string
		paymentDate                   sql.NullString
	)
	if err := rows.Scan(
		&m.BillID,
		&m.Name,
		&m.Amount,
		&m.Category,
		&dueDate,
		&m.IsRecurring,
		&m.RecurringFrequency,
		&m.PaymentMethod,
		&m.Status,
		&paymentDate,
		&m.Note,
		&createdAt,
		&updatedAt,
	); err != nil {
		return m, fmt.Errorf("failed to scan bill row: %w", err)
	}

	var err error
	if m.DueDate, err = parseDate(dueDate); err != nil {
		return m, fmt.Errorf("bill %s has malformed due_date %q: %w", m.BillID, dueDate, err)
	}
	if paymentDate.Valid {
		pd, err := parseDate(paymentDate.String)
		if err != nil {
			return m, fmt.Errorf("bill %s has malformed payment_date %q: %w", m.BillID, paymentDate.String, err)
		}
		m.PaymentDate = sql.NullTime{Time: pd, Valid: true}
	}
	if m.CreatedAt, err = time.Parse(timestampLayout, createdAt); err != nil {
		return m, fmt.Errorf("bill %s has malformed created_at %q: %w", m.BillID, createdAt, err)
	}
	m.LastUpdatedAt, _ = time.Parse(timestampLayout, updatedAt)
	return m, nil
}

// SaveBill inserts a new bill.
func (r *BillRepository) SaveBill(ctx context.Context, bill domain.Bill) error {
	m := mapping.ToModelBill(bill)
	createdAt := m.CreatedAt
	if createdAt.IsZero() {
		createdAt = r.now()
	}
	stamp := createdAt.UTC().Format(timestampLayout)

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO bills (`+billColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`,
		m.BillID,
		m.Name,
		m.Amount.String(),
		m.Category,
		formatDate(m.DueDate),
		m.IsRecurring,
		m.RecurringFrequency,
		m.PaymentMethod,
		m.Status,
		nullDate(m.PaymentDate),
		m.Note,
		stamp,
		stamp,
	)
	if err != nil {
		return mapWriteError(err, "bill", m.BillID)
	}
	return nil
}

// UpdateBill overwrites every mutable column of an existing bill.
func (r *BillRepository) UpdateBill(ctx context.Context, bill domain.Bill) error {
	m := mapping.ToModelBill(bill)
	res, err := r.db.ExecContext(ctx, `
		UPDATE bills
		SET name = ?, amount = ?, category = ?, due_date = ?, is_recurring = ?,
			recurring_frequency = ?, payment_method = ?, status = ?, payment_date = ?,
			note = ?, last_updated_at = ?
		WHERE bill_id = ?;`,
		m.Name,
		m.Amount.String(),
		m.Category,
		formatDate(m.DueDate),
		m.IsRecurring,
		m.RecurringFrequency,
		m.PaymentMethod,
		m.Status,
		nullDate(m.PaymentDate),
		m.Note,
		r.now().UTC().Format(timestampLayout),
		m.BillID,
	)
	if err != nil {
		return mapWriteError(err, "bill", m.BillID)
	}
	return requireRow(res, "bill", m.BillID)
}

// DeleteBill removes a bill by ID.
func (r *BillRepository) DeleteBill(ctx context.Context, billID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM bills WHERE bill_id = ?;`, billID)
	if err != nil {
		return fmt.Errorf("failed to delete bill %s: %w", billID, err)
	}
	return requireRow(res, "bill", billID)
}

func requireRow(res sql.Result, entity, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows for %s %s: %w", entity, id, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s %s", apperrors.ErrNotFound, entity, id)
	}
	return nil
}
