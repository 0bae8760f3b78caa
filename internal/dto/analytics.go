package dto

import (
	"time"

	"github.com/SscSPs/bill_tracker_app/internal/core/domain"
	"github.com/SscSPs/bill_tracker_app/internal/utils"
	"github.com/shopspring/decimal"
)

// BillSummaryParams defines query parameters for the KPI and category endpoints.
type BillSummaryParams struct {
	View string `form:"view"`
}

// MonthlyBreakdownParams defines query parameters for the monthly chart.
type MonthlyBreakdownParams struct {
	MonthsBack int `form:"monthsBack" binding:"omitempty,min=1,max=36"`
}

// UpcomingBillsParams defines query parameters for the upcoming bills widget.
type UpcomingBillsParams struct {
	DaysAhead int `form:"daysAhead" binding:"omitempty,min=1,max=365"`
	Limit     int `form:"limit" binding:"omitempty,min=1,max=100"`
}

// SummaryResponse represents the headline bill figures.
type SummaryResponse struct {
	BillCount             int             `json:"billCount"`
	TotalAmount           decimal.Decimal `json:"totalAmount"`
	TotalPaid             decimal.Decimal `json:"totalPaid"`
	TotalDue              decimal.Decimal `json:"totalDue"`
	PercentPaid           int64           `json:"percentPaid"`
	DueThisMonth          decimal.Decimal `json:"dueThisMonth"`
	FormattedTotalAmount  string          `json:"formattedTotalAmount"`
	FormattedTotalPaid    string          `json:"formattedTotalPaid"`
	FormattedTotalDue     string          `json:"formattedTotalDue"`
	FormattedDueThisMonth string          `json:"formattedDueThisMonth"`
}

// ToSummaryResponse converts a domain.SummaryKPI to SummaryResponse DTO
func ToSummaryResponse(k domain.SummaryKPI) SummaryResponse {
	return SummaryResponse{
		BillCount:             k.BillCount,
		TotalAmount:           k.TotalAmount,
		TotalPaid:             k.TotalPaid,
		TotalDue:              k.TotalDue,
		PercentPaid:           k.PercentPaid,
		DueThisMonth:          k.DueThisMonth,
		FormattedTotalAmount:  utils.FormatCurrency(k.TotalAmount),
		FormattedTotalPaid:    utils.FormatCurrency(k.TotalPaid),
		FormattedTotalDue:     utils.FormatCurrency(k.TotalDue),
		FormattedDueThisMonth: utils.FormatCurrency(k.DueThisMonth),
	}
}

// CategoryTotalResponse is one slice of a category pie chart.
type CategoryTotalResponse struct {
	Name           string          `json:"name"`
	Value          decimal.Decimal `json:"value"`
	FormattedValue string          `json:"formattedValue"`
}

// ToCategoryTotalResponses converts category totals for the chart endpoints.
func ToCategoryTotalResponses(totals []domain.CategoryTotal) []CategoryTotalResponse {
	res := make([]CategoryTotalResponse, len(totals))
	for i, ct := range totals {
		res[i] = CategoryTotalResponse{
			Name:           ct.Name,
			Value:          ct.Value,
			FormattedValue: utils.FormatCurrency(ct.Value),
		}
	}
	return res
}

// UpcomingBillResponse is one row of the upcoming bills widget.
type UpcomingBillResponse struct {
	Bill         BillResponse `json:"bill"`
	DaysUntilDue int          `json:"daysUntilDue"`
	Urgency      string       `json:"urgency"`
}

// ToUpcomingBillResponses converts upcoming entries, keeping their order.
func ToUpcomingBillResponses(entries []domain.UpcomingEntry, now time.Time) []UpcomingBillResponse {
	res := make([]UpcomingBillResponse, len(entries))
	for i, e := range entries {
		res[i] = UpcomingBillResponse{
			Bill:         ToBillResponse(e.Bill, now),
			DaysUntilDue: e.DaysUntilDue,
			Urgency:      string(e.Urgency),
		}
	}
	return res
}

// DashboardResponse bundles every overview figure in one payload.
type DashboardResponse struct {
	Summary      SummaryResponse            `json:"summary"`
	Categories   []CategoryTotalResponse    `json:"categories"`
	Monthly      []domain.MonthlyBreakdown  `json:"monthly"`
	Upcoming     []UpcomingBillResponse     `json:"upcoming"`
	Spending     []CategoryTotalResponse    `json:"spending"`
	Transactions TransactionSummaryResponse `json:"transactions"`
	GeneratedAt  time.Time                  `json:"generatedAt"`
}

// ToDashboardResponse converts a domain.Dashboard to DashboardResponse DTO
func ToDashboardResponse(d domain.Dashboard) DashboardResponse {
	return DashboardResponse{
		Summary:      ToSummaryResponse(d.Summary),
		Categories:   ToCategoryTotalResponses(d.Categories),
		Monthly:      d.Monthly,
		Upcoming:     ToUpcomingBillResponses(d.Upcoming, d.GeneratedAt),
		Spending:     ToCategoryTotalResponses(d.Spending),
		Transactions: ToTransactionSummaryResponse(d.Transactions),
		GeneratedAt:  d.GeneratedAt,
	}
}
