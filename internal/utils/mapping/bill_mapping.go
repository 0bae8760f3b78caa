package mapping

import (
	"database/sql"

	"github.com/SscSPs/bill_tracker_app/internal/core/domain"
	"github.com/SscSPs/bill_tracker_app/internal/models"
)

// ToModelBill converts a domain Bill to a model Bill. Empty optional strings
// and a missing payment date become NULL.
func ToModelBill(d domain.Bill) models.Bill {
	m := models.Bill{
		BillID:             d.ID,
		Name:               d.Name,
		Amount:             d.Amount,
		Category:           d.Category,
		DueDate:            d.DueDate,
		IsRecurring:        d.IsRecurring,
		RecurringFrequency: nullString(string(d.RecurringFrequency)),
		PaymentMethod:      nullString(d.PaymentMethod),
		Status:             string(d.Status),
		Note:               nullString(d.Note),
		CreatedAt:          d.CreatedAt,
	}
	if d.PaymentDate != nil {
		m.PaymentDate = sql.NullTime{Time: *d.PaymentDate, Valid: true}
	}
	return m
}

// ToDomainBill converts a model Bill to a domain Bill
func ToDomainBill(m models.Bill) domain.Bill {
	d := domain.Bill{
		ID:                 m.BillID,
		Name:               m.Name,
		Amount:             m.Amount,
		Category:           m.Category,
		DueDate:            m.DueDate,
		IsRecurring:        m.IsRecurring,
		RecurringFrequency: domain.RecurringFrequency(m.RecurringFrequency.String),
		PaymentMethod:      m.PaymentMethod.String,
		Status:             domain.BillStatus(m.Status),
		Note:               m.Note.String,
		CreatedAt:          m.CreatedAt,
	}
	if m.PaymentDate.Valid {
		pd := m.PaymentDate.Time
		d.PaymentDate = &pd
	}
	return d
}

// ToDomainBillSlice converts a slice of model Bills to a slice of domain Bills
func ToDomainBillSlice(ms []models.Bill) []domain.Bill {
	ds := make([]domain.Bill, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainBill(m)
	}
	return ds
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
