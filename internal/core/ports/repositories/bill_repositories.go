package repositories

import (
	"context"

	"github.com/SscSPs/bill_tracker_app/internal/core/domain"
)

// BillReader defines read operations for bill data
type BillReader interface {
	// ListBills returns every stored bill in creation order.
	ListBills(ctx context.Context) ([]domain.Bill, error)
}

// BillWriter defines write operations for bill data
type BillWriter interface {
	// SaveBill persists a new bill. An existing id yields apperrors.ErrDuplicate.
	SaveBill(ctx context.Context, bill domain.Bill) error

	// UpdateBill overwrites a stored bill. A missing id yields apperrors.ErrNotFound.
	UpdateBill(ctx context.Context, bill domain.Bill) error

	// DeleteBill removes a stored bill. A missing id yields apperrors.ErrNotFound.
	DeleteBill(ctx context.Context, billID string) error
}

// BillRepositoryFacade combines all bill-related repository interfaces
type BillRepositoryFacade interface {
	BillReader
	BillWriter
}
