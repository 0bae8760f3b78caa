package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/bill_tracker_app/internal/apperrors"
	"github.com/SscSPs/bill_tracker_app/internal/core/domain"
	"github.com/SscSPs/bill_tracker_app/internal/utils"
	"github.com/SscSPs/bill_tracker_app/internal/utils/dates"
	"github.com/shopspring/decimal"
)

// CreateBillRequest defines the data needed to create a new bill.
// Dates use YYYY-MM-DD; RFC3339 timestamps are accepted as well.
type CreateBillRequest struct {
	ID                 string          `json:"id"` // Optional, generated when empty
	Name               string          `json:"name" binding:"required"`
	Amount             decimal.Decimal `json:"amount"`
	Category           string          `json:"category" binding:"required"`
	DueDate            string          `json:"dueDate" binding:"required"`
	IsRecurring        bool            `json:"isRecurring"`
	RecurringFrequency string          `json:"recurringFrequency" binding:"omitempty,oneof=Weekly Biweekly Monthly Quarterly Yearly"`
	PaymentMethod      string          `json:"paymentMethod"`
	Status             string          `json:"status" binding:"omitempty,oneof=pending paid overdue"` // Defaults to pending
	PaymentDate        string          `json:"paymentDate"`
	Note               string          `json:"note"`
}

// ToBill converts the request into a domain bill. The result is not validated.
func (r CreateBillRequest) ToBill() (domain.Bill, error) {
	due, err := dates.ParseDate(r.DueDate)
	if err != nil {
		return domain.Bill{}, fmt.Errorf("%w: dueDate: %v", apperrors.ErrValidation, err)
	}

	bill := domain.Bill{
		ID:                 strings.TrimSpace(r.ID),
		Name:               strings.TrimSpace(r.Name),
		Amount:             r.Amount,
		Category:           strings.TrimSpace(r.Category),
		DueDate:            due,
		IsRecurring:        r.IsRecurring,
		RecurringFrequency: domain.RecurringFrequency(r.RecurringFrequency),
		PaymentMethod:      r.PaymentMethod,
		Status:             domain.BillStatus(r.Status),
		Note:               r.Note,
	}
	if bill.Status == "" {
		bill.Status = domain.StatusPending
	}
	if r.PaymentDate != "" {
		pd, err := dates.ParseDate(r.PaymentDate)
		if err != nil {
			return domain.Bill{}, fmt.Errorf("%w: paymentDate: %v", apperrors.ErrValidation, err)
		}
		bill.PaymentDate = &pd
	}
	return bill, nil
}

// UpdateBillRequest defines the data allowed for updating a bill.
// Use pointers to distinguish between zero-value updates and fields not provided.
// An empty recurringFrequency or paymentDate clears the field.
type UpdateBillRequest struct {
	Name               *string          `json:"name"`
	Amount             *decimal.Decimal `json:"amount"`
	Category           *string          `json:"category"`
	DueDate            *string          `json:"dueDate"`
	IsRecurring        *bool            `json:"isRecurring"`
	RecurringFrequency *string          `json:"recurringFrequency"`
	PaymentMethod      *string          `json:"paymentMethod"`
	PaymentDate        *string          `json:"paymentDate"`
	Note               *string          `json:"note"`
	Status             *string          `json:"status" binding:"omitempty,oneof=pending paid overdue"`
}

// ToPatch converts the request into a domain patch.
func (r UpdateBillRequest) ToPatch() (domain.BillPatch, error) {
	patch := domain.BillPatch{
		Name:          r.Name,
		Amount:        r.Amount,
		Category:      r.Category,
		IsRecurring:   r.IsRecurring,
		PaymentMethod: r.PaymentMethod,
		Note:          r.Note,
	}
	if r.DueDate != nil {
		due, err := dates.ParseDate(*r.DueDate)
		if err != nil {
			return domain.BillPatch{}, fmt.Errorf("%w: dueDate: %v", apperrors.ErrValidation, err)
		}
		patch.DueDate = &due
	}
	if r.RecurringFrequency != nil {
		if *r.RecurringFrequency == "" {
			patch.ClearRecurringFrequency = true
		} else {
			freq := domain.RecurringFrequency(*r.RecurringFrequency)
			patch.RecurringFrequency = &freq
		}
	}
	if r.PaymentDate != nil {
		if *r.PaymentDate == "" {
			patch.ClearPaymentDate = true
		} else {
			pd, err := dates.ParseDate(*r.PaymentDate)
			if err != nil {
				return domain.BillPatch{}, fmt.Errorf("%w: paymentDate: %v", apperrors.ErrValidation, err)
			}
			patch.PaymentDate = &pd
		}
	}
	if r.Status != nil {
		status := domain.BillStatus(*r.Status)
		patch.Status = &status
	}
	return patch, nil
}

// MarkBillPaidRequest carries the payment details recorded when paying a bill.
type MarkBillPaidRequest struct {
	PaymentDate   string `json:"paymentDate"` // Optional, defaults to today
	PaymentMethod string `json:"paymentMethod"`
	Note          string `json:"note"`
}

// ToPaymentDetails converts the request into domain payment details.
func (r MarkBillPaidRequest) ToPaymentDetails() (domain.PaymentDetails, error) {
	details := domain.PaymentDetails{
		PaymentMethod: r.PaymentMethod,
		Note:          r.Note,
	}
	if r.PaymentDate != "" {
		pd, err := dates.ParseDate(r.PaymentDate)
		if err != nil {
			return domain.PaymentDetails{}, fmt.Errorf("%w: paymentDate: %v", apperrors.ErrValidation, err)
		}
		details.PaymentDate = pd
	}
	return details, nil
}

// BillResponse defines the data returned for a bill.
type BillResponse struct {
	ID                 string          `json:"id"`
	Name               string          `json:"name"`
	Amount             decimal.Decimal `json:"amount"`
	FormattedAmount    string          `json:"formattedAmount"`
	Category           string          `json:"category"`
	DueDate            string          `json:"dueDate"`
	DueLabel           string          `json:"dueLabel"`
	IsRecurring        bool            `json:"isRecurring"`
	RecurringFrequency string          `json:"recurringFrequency,omitempty"`
	PaymentMethod      string          `json:"paymentMethod,omitempty"`
	Status             string          `json:"status"`
	PaymentDate        *string         `json:"paymentDate,omitempty"`
	Note               string          `json:"note,omitempty"`
	CreatedAt          time.Time       `json:"createdAt"`
}

// ToBillResponse converts a domain.Bill to BillResponse DTO. now drives the
// relative due label.
func ToBillResponse(b domain.Bill, now time.Time) BillResponse {
	res := BillResponse{
		ID:                 b.ID,
		Name:               b.Name,
		Amount:             b.Amount,
		FormattedAmount:    utils.FormatCurrency(b.Amount),
		Category:           b.Category,
		DueDate:            b.DueDate.Format(dates.DateLayout),
		DueLabel:           dates.FormatRelative(b.DueDate, now),
		IsRecurring:        b.IsRecurring,
		RecurringFrequency: string(b.RecurringFrequency),
		PaymentMethod:      b.PaymentMethod,
		Status:             string(b.Status),
		Note:               b.Note,
		CreatedAt:          b.CreatedAt,
	}
	if b.PaymentDate != nil {
		pd := b.PaymentDate.Format(dates.DateLayout)
		res.PaymentDate = &pd
	}
	return res
}

// ToListBillResponse converts a slice of domain.Bill to a slice of BillResponse DTOs
func ToListBillResponse(bills []domain.Bill, now time.Time) []BillResponse {
	res := make([]BillResponse, len(bills))
	for i, b := range bills {
		res[i] = ToBillResponse(b, now)
	}
	return res
}

// ListBillsParams defines query parameters for listing bills.
type ListBillsParams struct {
	View     string `form:"view"`
	Search   string `form:"search"`
	Category string `form:"category"`
	DueFrom  string `form:"dueFrom"`
	DueTo    string `form:"dueTo"`
	SortBy   string `form:"sortBy"`
	Order    string `form:"order"`
}

// ToQuery converts the parameters into a domain query.
func (p ListBillsParams) ToQuery() (domain.BillQuery, error) {
	view, err := domain.ParseBillView(p.View)
	if err != nil {
		return domain.BillQuery{}, err
	}
	sortBy, order, err := domain.ParseSort(p.SortBy, p.Order)
	if err != nil {
		return domain.BillQuery{}, err
	}
	q := domain.BillQuery{
		View:     view,
		Search:   p.Search,
		Category: p.Category,
		SortBy:   sortBy,
		Order:    order,
	}
	if q.DueFrom, err = optionalDate("dueFrom", p.DueFrom); err != nil {
		return domain.BillQuery{}, err
	}
	if q.DueTo, err = optionalDate("dueTo", p.DueTo); err != nil {
		return domain.BillQuery{}, err
	}
	return q, nil
}

// ListBillsResponse wraps the list of bills.
type ListBillsResponse struct {
	Bills []BillResponse `json:"bills"`
	Count int            `json:"count"`
}

func optionalDate(field, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := dates.ParseDate(value)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", apperrors.ErrValidation, field, err)
	}
	return &t, nil
}
