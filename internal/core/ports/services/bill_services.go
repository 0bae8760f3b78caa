package services

import (
	"context"
	"time"

	"github.com/SscSPs/bill_tracker_app/internal/core/domain"
	"github.com/SscSPs/bill_tracker_app/internal/dto"
)

// BillReaderSvc defines read operations for bill data
type BillReaderSvc interface {
	// ListBills returns the bills matching the query with statuses derived as of now.
	ListBills(ctx context.Context, query domain.BillQuery) ([]domain.Bill, error)

	// GetBill retrieves a specific bill by its unique identifier.
	GetBill(ctx context.Context, billID string) (*domain.Bill, error)

	// Now reports the clock the service derives statuses against.
	Now() time.Time
}

// BillWriterSvc defines write operations for bill data
type BillWriterSvc interface {
	// Refresh reloads the bill collection from the repository.
	Refresh(ctx context.Context) ([]domain.Bill, error)

	// CreateBill persists a new bill.
	CreateBill(ctx context.Context, req dto.CreateBillRequest) (*domain.Bill, error)

	// UpdateBill merges the provided fields into an existing bill.
	UpdateBill(ctx context.Context, billID string, req dto.UpdateBillRequest) (*domain.Bill, error)

	// MarkBillPaid records a payment against a bill.
	MarkBillPaid(ctx context.Context, billID string, req dto.MarkBillPaidRequest) (*domain.Bill, error)

	// DeleteBill removes a bill.
	DeleteBill(ctx context.Context, billID string) error
}

// BillSvcFacade combines all bill-related service interfaces
// This is a facade for clients that need access to all operations
type BillSvcFacade interface {
	BillReaderSvc
	BillWriterSvc
}
