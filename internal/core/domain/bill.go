package domain

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/SscSPs/bill_tracker_app/internal/apperrors"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// BillStatus is the lifecycle state of a bill.
type BillStatus string

const (
	StatusPending BillStatus = "pending"
	StatusPaid    BillStatus = "paid"
	StatusOverdue BillStatus = "overdue"
)

// RecurringFrequency describes how often a recurring bill repeats.
type RecurringFrequency string

const (
	Weekly    RecurringFrequency = "Weekly"
	Biweekly  RecurringFrequency = "Biweekly"
	Monthly   RecurringFrequency = "Monthly"
	Quarterly RecurringFrequency = "Quarterly"
	Yearly    RecurringFrequency = "Yearly"
)

// Bill represents a single payable obligation tracked by the user.
type Bill struct {
	ID                 string             `json:"id" validate:"required"`
	Name               string             `json:"name" validate:"required"`
	Amount             decimal.Decimal    `json:"amount"`
	Category           string             `json:"category" validate:"required"`
	DueDate            time.Time          `json:"dueDate" validate:"required"`
	IsRecurring        bool               `json:"isRecurring"`
	RecurringFrequency RecurringFrequency `json:"recurringFrequency,omitempty" validate:"omitempty,oneof=Weekly Biweekly Monthly Quarterly Yearly"`
	PaymentMethod      string             `json:"paymentMethod,omitempty"`
	Status             BillStatus         `json:"status" validate:"required,oneof=pending paid overdue"`
	PaymentDate        *time.Time         `json:"paymentDate,omitempty"`
	Note               string             `json:"note,omitempty"`
	CreatedAt          time.Time          `json:"createdAt"`
}

// PaymentDetails carries the fields recorded when a bill is marked as paid.
type PaymentDetails struct {
	PaymentDate   time.Time `json:"paymentDate"`
	PaymentMethod string    `json:"paymentMethod"`
	Note          string    `json:"note"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report JSON field names so messages match what API clients send.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks required fields and the cross-field invariants of a bill.
// All failures wrap apperrors.ErrValidation.
func (b Bill) Validate() error {
	if err := validate.Struct(b); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s failed on '%s'", fe.Field(), fe.Tag()))
			}
			return fmt.Errorf("%w: %s", apperrors.ErrValidation, strings.Join(msgs, "; "))
		}
		return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	if strings.TrimSpace(b.Name) == "" {
		return fmt.Errorf("%w: name must not be blank", apperrors.ErrValidation)
	}
	if !b.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	if b.IsRecurring && b.RecurringFrequency == "" {
		return fmt.Errorf("%w: recurring bills require a recurring frequency", apperrors.ErrValidation)
	}
	if !b.IsRecurring && b.RecurringFrequency != "" {
		return fmt.Errorf("%w: recurring frequency set on a one-time bill", apperrors.ErrValidation)
	}
	if b.Status == StatusPaid && b.PaymentDate == nil {
		return fmt.Errorf("%w: paid bills require a payment date", apperrors.ErrValidation)
	}
	if b.Status != StatusPaid && b.PaymentDate != nil {
		return fmt.Errorf("%w: payment date set on a bill that is not paid", apperrors.ErrValidation)
	}
	return nil
}

// IsPaid reports whether the bill has reached the terminal paid state.
func (b Bill) IsPaid() bool {
	return b.Status == StatusPaid
}

// DeriveStatus applies the time-triggered status rule: an unpaid bill whose due
// date is before now becomes overdue. Paid bills are never changed and an
// overdue bill never moves back to pending.
func (b Bill) DeriveStatus(now time.Time) Bill {
	if b.Status == StatusPaid {
		return b
	}
	if b.DueDate.Before(now) {
		b.Status = StatusOverdue
	}
	return b
}

// Clone returns a copy of the bill that shares no pointers with the original.
func (b Bill) Clone() Bill {
	if b.PaymentDate != nil {
		pd := *b.PaymentDate
		b.PaymentDate = &pd
	}
	return b
}

// MarkPaid returns the bill with status forced to paid and the payment fields set.
func (b Bill) MarkPaid(details PaymentDetails) Bill {
	pd := details.PaymentDate
	b.Status = StatusPaid
	b.PaymentDate = &pd
	b.PaymentMethod = details.PaymentMethod
	b.Note = details.Note
	return b
}

// DeriveStatuses applies DeriveStatus to every bill and returns a new slice.
func DeriveStatuses(bills []Bill, now time.Time) []Bill {
	out := make([]Bill, len(bills))
	for i, b := range bills {
		out[i] = b.Clone().DeriveStatus(now)
	}
	return out
}
