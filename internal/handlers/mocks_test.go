package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/bill_tracker_app/internal/core/domain"
	portssvc "github.com/SscSPs/bill_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/bill_tracker_app/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock BillService ---
type MockBillService struct {
	mock.Mock
	now time.Time
}

func (m *MockBillService) ListBills(ctx context.Context, query domain.BillQuery) ([]domain.Bill, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Bill), args.Error(1)
}

func (m *MockBillService) GetBill(ctx context.Context, billID string) (*domain.Bill, error) {
	args := m.Called(ctx, billID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bill), args.Error(1)
}

func (m *MockBillService) Now() time.Time {
	return m.now
}

func (m *MockBillService) Refresh(ctx context.Context) ([]domain.Bill, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Bill), args.Error(1)
}

func (m *MockBillService) CreateBill(ctx context.Context, req dto.CreateBillRequest) (*domain.Bill, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bill), args.Error(1)
}

func (m *MockBillService) UpdateBill(ctx context.Context, billID string, req dto.UpdateBillRequest) (*domain.Bill, error) {
	args := m.Called(ctx, billID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bill), args.Error(1)
}

func (m *MockBillService) MarkBillPaid(ctx context.Context, billID string, req dto.MarkBillPaidRequest) (*domain.Bill, error) {
	args := m.Called(ctx, billID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bill), args.Error(1)
}

func (m *MockBillService) DeleteBill(ctx context.Context, billID string) error {
	args := m.Called(ctx, billID)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.BillSvcFacade = (*MockBillService)(nil)

// --- Mock AnalyticsService ---
type MockAnalyticsService struct {
	mock.Mock
}

func (m *MockAnalyticsService) BillSummary(ctx context.Context, view domain.BillView) (domain.SummaryKPI, error) {
	args := m.Called(ctx, view)
	return args.Get(0).(domain.SummaryKPI), args.Error(1)
}

func (m *MockAnalyticsService) BillCategoryTotals(ctx context.Context, view domain.BillView) ([]domain.CategoryTotal, error) {
	args := m.Called(ctx, view)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CategoryTotal), args.Error(1)
}

func (m *MockAnalyticsService) BillMonthlyBreakdown(ctx context.Context, monthsBack int) ([]domain.MonthlyBreakdown, error) {
	args := m.Called(ctx, monthsBack)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MonthlyBreakdown), args.Error(1)
}

func (m *MockAnalyticsService) UpcomingBills(ctx context.Context, daysAhead, limit int) ([]domain.UpcomingEntry, error) {
	args := m.Called(ctx, daysAhead, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UpcomingEntry), args.Error(1)
}

func (m *MockAnalyticsService) ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockAnalyticsService) SpendingByCategory(ctx context.Context, filter domain.TransactionFilter, top int) ([]domain.CategoryTotal, error) {
	args := m.Called(ctx, filter, top)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CategoryTotal), args.Error(1)
}

func (m *MockAnalyticsService) TransactionSummary(ctx context.Context, filter domain.TransactionFilter) (domain.TransactionSummary, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(domain.TransactionSummary), args.Error(1)
}

func (m *MockAnalyticsService) Dashboard(ctx context.Context) (*domain.Dashboard, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Dashboard), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.AnalyticsSvc = (*MockAnalyticsService)(nil)
