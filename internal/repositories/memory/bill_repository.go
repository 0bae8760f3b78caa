// Package memory provides in-process repositories used when no database is
// configured, and by tests that need a real collaborator.
package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/SscSPs/bill_tracker_app/internal/apperrors"
	"github.com/SscSPs/bill_tracker_app/internal/core/domain"
	portsrepo "github.com/SscSPs/bill_tracker_app/internal/core/ports/repositories"
)

// BillRepository keeps bills in insertion order.
type BillRepository struct {
	mu    sync.RWMutex
	bills []domain.Bill
}

var _ portsrepo.BillRepositoryFacade = (*BillRepository)(nil)

// NewBillRepository creates a repository holding a copy of seed.
func NewBillRepository(seed []domain.Bill) *BillRepository {
	r := &BillRepository{bills: make([]domain.Bill, 0, len(seed))}
	for _, b := range seed {
		r.bills = append(r.bills, b.Clone())
	}
	return r
}

func (r *BillRepository) ListBills(ctx context.Context) ([]domain.Bill, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Bill, len(r.bills))
	for i, b := range r.bills {
		out[i] = b.Clone()
	}
	return out, nil
}

func (r *BillRepository) SaveBill(ctx context.Context, bill domain.Bill) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOf(bill.ID) >= 0 {
		return fmt.Errorf("%w: bill with ID %s already exists", apperrors.ErrDuplicate, bill.ID)
	}
	r.bills = append(r.bills, bill.Clone())
	return nil
}

func (r *BillRepository) UpdateBill(ctx context.Context, bill domain.Bill) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(bill.ID)
	if i < 0 {
		return fmt.Errorf("%w: bill %s", apperrors.ErrNotFound, bill.ID)
	}
	r.bills[i] = bill.Clone()
	return nil
}

func (r *BillRepository) DeleteBill(ctx context.Context, billID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(billID)
	if i < 0 {
		return fmt.Errorf("%w: bill %s", apperrors.ErrNotFound, billID)
	}
	r.bills = slices.Delete(r.bills, i, i+1)
	return nil
}

func (r *BillRepository) indexOf(id string) int {
	return slices.IndexFunc(r.bills, func(b domain.Bill) bool { return b.ID == id })
}
