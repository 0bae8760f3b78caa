package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/SscSPs/bill_tracker_app/internal/core/domain"
	"github.com/SscSPs/bill_tracker_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func (suite *BillHandlerTestSuite) TestBillSummary() {
	suite.mockAnalyticsService.On("BillSummary", mock.Anything, domain.ViewRecurring).Return(domain.SummaryKPI{
		BillCount:    3,
		TotalAmount:  decimal.RequireFromString("2050.50"),
		TotalPaid:    decimal.NewFromInt(1500),
		TotalDue:     decimal.RequireFromString("550.50"),
		PercentPaid:  73,
		DueThisMonth: decimal.RequireFromString("200.50"),
	}, nil).Once()

	w := suite.serve(http.MethodGet, "/api/v1/bills/summary?view=recurring", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.SummaryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(73), resp.PercentPaid)
	suite.Equal("$2,050.50", resp.FormattedTotalAmount)
}

func (suite *BillHandlerTestSuite) TestBillSummary_InvalidView() {
	w := suite.serve(http.MethodGet, "/api/v1/bills/summary?view=nope", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockAnalyticsService.AssertNotCalled(suite.T(), "BillSummary", mock.Anything, mock.Anything)
}

func (suite *BillHandlerTestSuite) TestCategoryChart() {
	suite.mockAnalyticsService.On("BillCategoryTotals", mock.Anything, domain.ViewAll).Return([]domain.CategoryTotal{
		{Name: "Housing", Value: decimal.NewFromInt(1500)},
		{Name: "Utilities", Value: decimal.RequireFromString("171.25")},
	}, nil).Once()

	w := suite.serve(http.MethodGet, "/api/v1/bills/charts/categories", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.CategoryTotalResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp, 2)
	suite.Equal("Housing", resp[0].Name)
	suite.Equal("$171.25", resp[1].FormattedValue)
}

func (suite *BillHandlerTestSuite) TestMonthlyChart() {
	suite.mockAnalyticsService.On("BillMonthlyBreakdown", mock.Anything, 0).Return([]domain.MonthlyBreakdown{
		{Label: "Jun 24", Year: 2024, Month: 6, Total: decimal.NewFromInt(10), Paid: decimal.Zero, Unpaid: decimal.NewFromInt(10)},
	}, nil).Once()
	suite.mockAnalyticsService.On("BillMonthlyBreakdown", mock.Anything, 12).Return([]domain.MonthlyBreakdown{}, nil).Once()

	suite.Equal(http.StatusOK, suite.serve(http.MethodGet, "/api/v1/bills/charts/monthly", nil).Code)
	suite.Equal(http.StatusOK, suite.serve(http.MethodGet, "/api/v1/bills/charts/monthly?monthsBack=12", nil).Code)
	suite.Equal(http.StatusBadRequest, suite.serve(http.MethodGet, "/api/v1/bills/charts/monthly?monthsBack=99", nil).Code)
}

func (suite *BillHandlerTestSuite) TestUpcomingBills() {
	entry := domain.UpcomingEntry{Bill: *suite.sampleBill(), DaysUntilDue: 1, Urgency: domain.UrgencyDueSoon}
	suite.mockAnalyticsService.On("UpcomingBills", mock.Anything, 7, 3).Return([]domain.UpcomingEntry{entry}, nil).Once()

	w := suite.serve(http.MethodGet, "/api/v1/bills/upcoming?daysAhead=7&limit=3", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.UpcomingBillResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp, 1)
	suite.Equal("due-soon", resp[0].Urgency)
	suite.Equal("Tomorrow", resp[0].Bill.DueLabel)
}

func (suite *BillHandlerTestSuite) TestUpcomingBills_InvalidLimit() {
	w := suite.serve(http.MethodGet, "/api/v1/bills/upcoming?limit=-1", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *BillHandlerTestSuite) TestDashboard() {
	suite.mockAnalyticsService.On("Dashboard", mock.Anything).Return(&domain.Dashboard{
		Summary:      domain.SummaryKPI{BillCount: 1, TotalAmount: decimal.NewFromInt(10), TotalPaid: decimal.Zero, TotalDue: decimal.NewFromInt(10), DueThisMonth: decimal.NewFromInt(10)},
		Categories:   []domain.CategoryTotal{{Name: "Utilities", Value: decimal.NewFromInt(10)}},
		Monthly:      []domain.MonthlyBreakdown{},
		Upcoming:     []domain.UpcomingEntry{},
		Spending:     []domain.CategoryTotal{},
		Transactions: domain.TransactionSummary{Income: decimal.Zero, Expenses: decimal.Zero, Balance: decimal.Zero},
		GeneratedAt:  suite.now,
	}, nil).Once()

	w := suite.serve(http.MethodGet, "/api/v1/dashboard", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.DashboardResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(1, resp.Summary.BillCount)
	suite.Len(resp.Categories, 1)
	suite.True(resp.GeneratedAt.Equal(suite.now))
}

func (suite *BillHandlerTestSuite) TestDashboard_Failure() {
	suite.mockAnalyticsService.On("Dashboard", mock.Anything).Return(nil, errors.New("boom")).Once()

	w := suite.serve(http.MethodGet, "/api/v1/dashboard", nil)

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.JSONEq(`{"error":"Failed to build dashboard"}`, w.Body.String())
}

func (suite *BillHandlerTestSuite) TestTransactions() {
	txs := []domain.Transaction{{ID: "t1", Category: "Food", Amount: decimal.RequireFromString("-12.30"), Description: "Lunch"}}
	suite.mockAnalyticsService.On("ListTransactions", mock.Anything, mock.MatchedBy(func(f domain.TransactionFilter) bool {
		return f.Category == "Food" && f.From != nil && f.To == nil
	})).Return(txs, nil).Once()

	w := suite.serve(http.MethodGet, "/api/v1/transactions?category=Food&from=2024-06-01", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp, 1)
	suite.Equal("-$12.30", resp[0].FormattedAmount)
}

func (suite *BillHandlerTestSuite) TestTransactions_InvalidDate() {
	w := suite.serve(http.MethodGet, "/api/v1/transactions?to=yesterday", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *BillHandlerTestSuite) TestTransactionSummary() {
	suite.mockAnalyticsService.On("TransactionSummary", mock.Anything, domain.TransactionFilter{}).Return(domain.TransactionSummary{
		Income:   decimal.NewFromInt(3000),
		Expenses: decimal.NewFromInt(-1200),
		Balance:  decimal.NewFromInt(1800),
	}, nil).Once()

	w := suite.serve(http.MethodGet, "/api/v1/transactions/summary", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"formattedBalance":"$1,800.00"`)
}

func (suite *BillHandlerTestSuite) TestSpending() {
	suite.mockAnalyticsService.On("SpendingByCategory", mock.Anything, domain.TransactionFilter{}, 3).
		Return([]domain.CategoryTotal{{Name: "Rent", Value: decimal.NewFromInt(1200)}}, nil).Once()

	w := suite.serve(http.MethodGet, "/api/v1/transactions/spending?top=3", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"name":"Rent"`)
}
