package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/bill_tracker_app/internal/core/aggregation"
	"github.com/SscSPs/bill_tracker_app/internal/core/domain"
	portsrepo "github.com/SscSPs/bill_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bill_tracker_app/internal/core/ports/services"
	"golang.org/x/sync/errgroup"
)

// analyticsService implements the AnalyticsSvc interface
type analyticsService struct {
	BaseService
	bills   portssvc.BillSvcFacade
	txRepo  portsrepo.TransactionReader
	windows AnalyticsWindows
}

// AnalyticsWindows are the default look-back and look-ahead ranges of the dashboard.
type AnalyticsWindows struct {
	MonthsBack    int
	UpcomingDays  int
	UpcomingLimit int
	TopCategories int
}

// DefaultAnalyticsWindows mirrors the dashboard defaults.
func DefaultAnalyticsWindows() AnalyticsWindows {
	return AnalyticsWindows{
		MonthsBack:    aggregation.DefaultMonthsBack,
		UpcomingDays:  aggregation.DefaultUpcomingDays,
		UpcomingLimit: aggregation.DefaultUpcomingLimit,
		TopCategories: aggregation.DefaultTopCategories,
	}
}

// AnalyticsServiceOption is a functional option for configuring the analytics service
type AnalyticsServiceOption func(*analyticsService)

// WithAnalyticsWindows overrides the default windows. Non-positive fields keep their default.
func WithAnalyticsWindows(w AnalyticsWindows) AnalyticsServiceOption {
	return func(s *analyticsService) {
		if w.MonthsBack > 0 {
			s.windows.MonthsBack = w.MonthsBack
		}
		if w.UpcomingDays > 0 {
			s.windows.UpcomingDays = w.UpcomingDays
		}
		if w.UpcomingLimit > 0 {
			s.windows.UpcomingLimit = w.UpcomingLimit
		}
		if w.TopCategories > 0 {
			s.windows.TopCategories = w.TopCategories
		}
	}
}

// NewAnalyticsService creates a new analytics service with the provided options
func NewAnalyticsService(bills portssvc.BillSvcFacade, txRepo portsrepo.TransactionReader, options ...AnalyticsServiceOption) portssvc.AnalyticsSvc {
	svc := &analyticsService{
		bills:   bills,
		txRepo:  txRepo,
		windows: DefaultAnalyticsWindows(),
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure analyticsService implements the AnalyticsSvc interface
var _ portssvc.AnalyticsSvc = (*analyticsService)(nil)

func (s *analyticsService) billsInView(ctx context.Context, view domain.BillView) ([]domain.Bill, error) {
	return s.bills.ListBills(ctx, domain.BillQuery{View: view})
}

func (s *analyticsService) BillSummary(ctx context.Context, view domain.BillView) (domain.SummaryKPI, error) {
	bills, err := s.billsInView(ctx, view)
	if err != nil {
		return domain.SummaryKPI{}, err
	}
	return aggregation.SummaryKPIs(bills, s.bills.Now()), nil
}

func (s *analyticsService) BillCategoryTotals(ctx context.Context, view domain.BillView) ([]domain.CategoryTotal, error) {
	bills, err := s.billsInView(ctx, view)
	if err != nil {
		return nil, err
	}
	return aggregation.CategoryTotals(bills), nil
}

func (s *analyticsService) BillMonthlyBreakdown(ctx context.Context, monthsBack int) ([]domain.MonthlyBreakdown, error) {
	if monthsBack <= 0 {
		monthsBack = s.windows.MonthsBack
	}
	bills, err := s.billsInView(ctx, domain.ViewAll)
	if err != nil {
		return nil, err
	}
	return aggregation.MonthlyBreakdown(bills, monthsBack, s.bills.Now()), nil
}

func (s *analyticsService) UpcomingBills(ctx context.Context, daysAhead, limit int) ([]domain.UpcomingEntry, error) {
	if daysAhead <= 0 {
		daysAhead = s.windows.UpcomingDays
	}
	if limit <= 0 {
		limit = s.windows.UpcomingLimit
	}
	bills, err := s.billsInView(ctx, domain.ViewUnpaid)
	if err != nil {
		return nil, err
	}
	return aggregation.Upcoming(bills, daysAhead, limit, s.bills.Now()), nil
}

func (s *analyticsService) ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	txs, err := s.txRepo.ListTransactions(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions", slog.String("category", filter.Category))
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txs, nil
}

func (s *analyticsService) SpendingByCategory(ctx context.Context, filter domain.TransactionFilter, top int) ([]domain.CategoryTotal, error) {
	if top <= 0 {
		top = s.windows.TopCategories
	}
	txs, err := s.ListTransactions(ctx, filter)
	if err != nil {
		return nil, err
	}
	return aggregation.TopExpenseCategories(txs, top), nil
}

func (s *analyticsService) TransactionSummary(ctx context.Context, filter domain.TransactionFilter) (domain.TransactionSummary, error) {
	txs, err := s.ListTransactions(ctx, filter)
	if err != nil {
		return domain.TransactionSummary{}, err
	}
	return aggregation.SummarizeTransactions(txs), nil
}

// Dashboard refreshes the bill collection and loads the transaction history
// concurrently, then derives every figure from one consistent snapshot.
func (s *analyticsService) Dashboard(ctx context.Context) (*domain.Dashboard, error) {
	var (
		bills []domain.Bill
		txs   []domain.Transaction
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		bills, err = s.bills.Refresh(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		txs, err = s.ListTransactions(gctx, domain.TransactionFilter{})
		return err
	})
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to build dashboard")
		return nil, err
	}

	now := s.bills.Now()
	dashboard := &domain.Dashboard{
		Summary:      aggregation.SummaryKPIs(bills, now),
		Categories:   aggregation.CategoryTotals(bills),
		Monthly:      aggregation.MonthlyBreakdown(bills, s.windows.MonthsBack, now),
		Upcoming:     aggregation.Upcoming(bills, s.windows.UpcomingDays, s.windows.UpcomingLimit, now),
		Spending:     aggregation.TopExpenseCategories(txs, s.windows.TopCategories),
		Transactions: aggregation.SummarizeTransactions(txs),
		GeneratedAt:  now,
	}

	s.LogInfo(ctx, "Dashboard generated",
		slog.Int("bill_count", len(bills)),
		slog.Int("transaction_count", len(txs)))
	return dashboard, nil
}
