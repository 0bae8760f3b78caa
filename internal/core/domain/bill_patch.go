package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/bill_tracker_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// BillPatch is a partial update. Nil fields are left unchanged; the Clear flags
// explicitly unset optional fields. ID and CreatedAt cannot be patched.
type BillPatch struct {
	Name                    *string
	Amount                  *decimal.Decimal
	Category                *string
	DueDate                 *time.Time
	IsRecurring             *bool
	RecurringFrequency      *RecurringFrequency
	ClearRecurringFrequency bool
	PaymentMethod           *string
	PaymentDate             *time.Time
	ClearPaymentDate        bool
	Note                    *string
	Status                  *BillStatus
}

// IsEmpty reports whether the patch changes nothing.
func (p BillPatch) IsEmpty() bool {
	return p.Name == nil && p.Amount == nil && p.Category == nil && p.DueDate == nil &&
		p.IsRecurring == nil && p.RecurringFrequency == nil && !p.ClearRecurringFrequency &&
		p.PaymentMethod == nil && p.PaymentDate == nil && !p.ClearPaymentDate &&
		p.Note == nil && p.Status == nil
}

// Apply merges the patch into b and validates the result. Paid is terminal, so
// a patch that would move a paid bill to any other status is rejected.
func (p BillPatch) Apply(b Bill) (Bill, error) {
	merged := b.Clone()

	if p.Name != nil {
		merged.Name = *p.Name
	}
	if p.Amount != nil {
		merged.Amount = *p.Amount
	}
	if p.Category != nil {
		merged.Category = *p.Category
	}
	if p.DueDate != nil {
		merged.DueDate = *p.DueDate
	}
	if p.IsRecurring != nil {
		merged.IsRecurring = *p.IsRecurring
	}
	if p.ClearRecurringFrequency {
		merged.RecurringFrequency = ""
	}
	if p.RecurringFrequency != nil {
		merged.RecurringFrequency = *p.RecurringFrequency
	}
	if p.PaymentMethod != nil {
		merged.PaymentMethod = *p.PaymentMethod
	}
	if p.ClearPaymentDate {
		merged.PaymentDate = nil
	}
	if p.PaymentDate != nil {
		pd := *p.PaymentDate
		merged.PaymentDate = &pd
	}
	if p.Note != nil {
		merged.Note = *p.Note
	}
	if p.Status != nil {
		merged.Status = *p.Status
	}

	if b.Status == StatusPaid && merged.Status != StatusPaid {
		return Bill{}, fmt.Errorf("%w: bill %s is paid and cannot move to %s", apperrors.ErrValidation, b.ID, merged.Status)
	}
	if err := merged.Validate(); err != nil {
		return Bill{}, err
	}
	return merged, nil
}
