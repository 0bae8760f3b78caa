package mapping

import (
	"github.com/SscSPs/bill_tracker_app/internal/core/domain"
	"github.com/SscSPs/bill_tracker_app/internal/models"
)

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		ID:            m.TransactionID,
		Date:          m.TransactionDate,
		Description:   m.Description,
		Amount:        m.Amount,
		Category:      m.Category,
		PaymentMethod: m.PaymentMethod.String,
		Notes:         m.Notes.String,
	}
}
