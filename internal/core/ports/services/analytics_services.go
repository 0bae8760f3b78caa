package services

import (
	"context"

	"github.com/SscSPs/bill_tracker_app/internal/core/domain"
)

// BillAnalyticsSvc derives dashboard figures from the current bill collection.
type BillAnalyticsSvc interface {
	// BillSummary computes the headline KPIs for the bills in view.
	BillSummary(ctx context.Context, view domain.BillView) (domain.SummaryKPI, error)

	// BillCategoryTotals sums the bills in view per category.
	BillCategoryTotals(ctx context.Context, view domain.BillView) ([]domain.CategoryTotal, error)

	// BillMonthlyBreakdown splits the last monthsBack months into paid and unpaid totals.
	// A non-positive monthsBack uses the configured default.
	BillMonthlyBreakdown(ctx context.Context, monthsBack int) ([]domain.MonthlyBreakdown, error)

	// UpcomingBills lists unpaid bills due within daysAhead days, at most limit entries.
	// Non-positive values use the configured defaults.
	UpcomingBills(ctx context.Context, daysAhead, limit int) ([]domain.UpcomingEntry, error)
}

// TransactionAnalyticsSvc derives figures from the transaction history.
type TransactionAnalyticsSvc interface {
	// ListTransactions returns the transactions matching filter.
	ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error)

	// SpendingByCategory returns the top expense categories. A non-positive top
	// uses the chart default.
	SpendingByCategory(ctx context.Context, filter domain.TransactionFilter, top int) ([]domain.CategoryTotal, error)

	// TransactionSummary totals income and expenses.
	TransactionSummary(ctx context.Context, filter domain.TransactionFilter) (domain.TransactionSummary, error)
}

// AnalyticsSvc combines bill and transaction analytics with the combined dashboard.
type AnalyticsSvc interface {
	BillAnalyticsSvc
	TransactionAnalyticsSvc

	// Dashboard refreshes the bills, loads transactions and computes every overview figure.
	Dashboard(ctx context.Context) (*domain.Dashboard, error)
}
