package dto

import (
	"github.com/SscSPs/bill_tracker_app/internal/core/domain"
	"github.com/SscSPs/bill_tracker_app/internal/utils"
	"github.com/SscSPs/bill_tracker_app/internal/utils/dates"
	"github.com/shopspring/decimal"
)

// ListTransactionsParams defines query parameters shared by the transaction endpoints.
type ListTransactionsParams struct {
	Category string `form:"category"`
	From     string `form:"from"`
	To       string `form:"to"`
}

// ToFilter converts the parameters into a domain filter.
func (p ListTransactionsParams) ToFilter() (domain.TransactionFilter, error) {
	from, err := optionalDate("from", p.From)
	if err != nil {
		return domain.TransactionFilter{}, err
	}
	to, err := optionalDate("to", p.To)
	if err != nil {
		return domain.TransactionFilter{}, err
	}
	return domain.TransactionFilter{Category: p.Category, From: from, To: to}, nil
}

// SpendingParams defines query parameters for the spending chart.
type SpendingParams struct {
	ListTransactionsParams
	Top int `form:"top" binding:"omitempty,min=1,max=50"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	ID              string          `json:"id"`
	Date            string          `json:"date"`
	Description     string          `json:"description"`
	Amount          decimal.Decimal `json:"amount"`
	FormattedAmount string          `json:"formattedAmount"`
	Category        string          `json:"category"`
	PaymentMethod   string          `json:"paymentMethod,omitempty"`
	Notes           string          `json:"notes,omitempty"`
}

// ToListTransactionResponse converts transactions for the list endpoint.
func ToListTransactionResponse(txs []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txs))
	for i, t := range txs {
		res[i] = TransactionResponse{
			ID:              t.ID,
			Date:            t.Date.Format(dates.DateLayout),
			Description:     t.Description,
			Amount:          t.Amount,
			FormattedAmount: utils.FormatCurrency(t.Amount),
			Category:        t.Category,
			PaymentMethod:   t.PaymentMethod,
			Notes:           t.Notes,
		}
	}
	return res
}

// TransactionSummaryResponse represents the income/expense summary cards.
type TransactionSummaryResponse struct {
	Income            decimal.Decimal `json:"income"`
	Expenses          decimal.Decimal `json:"expenses"`
	Balance           decimal.Decimal `json:"balance"`
	FormattedIncome   string          `json:"formattedIncome"`
	FormattedExpenses string          `json:"formattedExpenses"`
	FormattedBalance  string          `json:"formattedBalance"`
}

// ToTransactionSummaryResponse converts a domain.TransactionSummary to its DTO.
func ToTransactionSummaryResponse(s domain.TransactionSummary) TransactionSummaryResponse {
	return TransactionSummaryResponse{
		Income:            s.Income,
		Expenses:          s.Expenses,
		Balance:           s.Balance,
		FormattedIncome:   utils.FormatCurrency(s.Income),
		FormattedExpenses: utils.FormatCurrency(s.Expenses),
		FormattedBalance:  utils.FormatCurrency(s.Balance),
	}
}
