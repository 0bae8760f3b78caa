package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/bill_tracker_app/internal/apperrors"
	"github.com/SscSPs/bill_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validBill() domain.Bill {
	return domain.Bill{
		ID:                 "bill-1",
		Name:               "Electricity",
		Amount:             decimal.RequireFromString("125.50"),
		Category:           "Utilities",
		DueDate:            time.Date(2024, 6, 25, 0, 0, 0, 0, time.UTC),
		IsRecurring:        true,
		RecurringFrequency: domain.Monthly,
		Status:             domain.StatusPending,
	}
}

func TestBill_Validate(t *testing.T) {
	paidAt := time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		mutate  func(b *domain.Bill)
		wantErr bool
	}{
		{name: "valid recurring bill", mutate: func(b *domain.Bill) {}},
		{name: "valid one-time bill", mutate: func(b *domain.Bill) {
			b.IsRecurring = false
			b.RecurringFrequency = ""
		}},
		{name: "valid paid bill", mutate: func(b *domain.Bill) {
			b.Status = domain.StatusPaid
			b.PaymentDate = &paidAt
		}},
		{name: "missing id", mutate: func(b *domain.Bill) { b.ID = "" }, wantErr: true},
		{name: "blank name", mutate: func(b *domain.Bill) { b.Name = "   " }, wantErr: true},
		{name: "missing category", mutate: func(b *domain.Bill) { b.Category = "" }, wantErr: true},
		{name: "missing due date", mutate: func(b *domain.Bill) { b.DueDate = time.Time{} }, wantErr: true},
		{name: "zero amount", mutate: func(b *domain.Bill) { b.Amount = decimal.Zero }, wantErr: true},
		{name: "negative amount", mutate: func(b *domain.Bill) { b.Amount = decimal.NewFromInt(-5) }, wantErr: true},
		{name: "unknown status", mutate: func(b *domain.Bill) { b.Status = "late" }, wantErr: true},
		{name: "unknown frequency", mutate: func(b *domain.Bill) { b.RecurringFrequency = "Daily" }, wantErr: true},
		{name: "recurring without frequency", mutate: func(b *domain.Bill) { b.RecurringFrequency = "" }, wantErr: true},
		{name: "frequency on one-time bill", mutate: func(b *domain.Bill) { b.IsRecurring = false }, wantErr: true},
		{name: "paid without payment date", mutate: func(b *domain.Bill) { b.Status = domain.StatusPaid }, wantErr: true},
		{name: "payment date on unpaid bill", mutate: func(b *domain.Bill) { b.PaymentDate = &paidAt }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := validBill()
			tt.mutate(&b)
			err := b.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, apperrors.ErrValidation)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestBill_Validate_ReportsJSONFieldNames(t *testing.T) {
	b := validBill()
	b.Category = ""
	err := b.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "category")
}

func TestBill_DeriveStatus(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	paidAt := now

	t.Run("pending past due becomes overdue", func(t *testing.T) {
		b := validBill()
		b.DueDate = now.AddDate(0, 0, -1)
		assert.Equal(t, domain.StatusOverdue, b.DeriveStatus(now).Status)
	})

	t.Run("pending in the future stays pending", func(t *testing.T) {
		b := validBill()
		b.DueDate = now.AddDate(0, 0, 1)
		assert.Equal(t, domain.StatusPending, b.DeriveStatus(now).Status)
	})

	t.Run("overdue never reverts", func(t *testing.T) {
		b := validBill()
		b.Status = domain.StatusOverdue
		b.DueDate = now.AddDate(0, 0, 10)
		assert.Equal(t, domain.StatusOverdue, b.DeriveStatus(now).Status)
	})

	t.Run("paid is untouched", func(t *testing.T) {
		b := validBill()
		b.Status = domain.StatusPaid
		b.PaymentDate = &paidAt
		b.DueDate = now.AddDate(0, -2, 0)
		assert.Equal(t, domain.StatusPaid, b.DeriveStatus(now).Status)
	})
}

func TestBill_MarkPaid(t *testing.T) {
	paidAt := time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC)
	details := domain.PaymentDetails{PaymentDate: paidAt, PaymentMethod: "Credit Card", Note: "autopay"}

	once := validBill().MarkPaid(details)
	twice := once.MarkPaid(details)

	assert.Equal(t, domain.StatusPaid, once.Status)
	require.NotNil(t, once.PaymentDate)
	assert.True(t, paidAt.Equal(*once.PaymentDate))
	assert.Equal(t, "Credit Card", once.PaymentMethod)
	assert.Equal(t, "autopay", once.Note)
	assert.Equal(t, once, twice)
	assert.NoError(t, once.Validate())
}

func TestBill_Clone(t *testing.T) {
	paidAt := time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC)
	b := validBill()
	b.Status = domain.StatusPaid
	b.PaymentDate = &paidAt

	c := b.Clone()
	*c.PaymentDate = paidAt.AddDate(1, 0, 0)

	assert.True(t, paidAt.Equal(*b.PaymentDate))
}

func TestDeriveStatuses_DoesNotModifyInput(t *testing.T) {
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	b := validBill()
	b.DueDate = now.AddDate(0, 0, -3)
	in := []domain.Bill{b}

	out := domain.DeriveStatuses(in, now)

	assert.Equal(t, domain.StatusPending, in[0].Status)
	assert.Equal(t, domain.StatusOverdue, out[0].Status)
}
