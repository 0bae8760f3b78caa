package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/bill_tracker_app/internal/apperrors"
	"github.com/SscSPs/bill_tracker_app/internal/core/domain"
	portssvc "github.com/SscSPs/bill_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/bill_tracker_app/internal/dto"
	"github.com/SscSPs/bill_tracker_app/internal/handlers"
	"github.com/SscSPs/bill_tracker_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type BillHandlerTestSuite struct {
	suite.Suite
	router               *gin.Engine
	now                  time.Time
	mockBillService      *MockBillService
	mockAnalyticsService *MockAnalyticsService
}

func (suite *BillHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.now = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	suite.mockBillService = &MockBillService{now: suite.now}
	suite.mockAnalyticsService = new(MockAnalyticsService)

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	suite.router = gin.New()
	suite.router.Use(middleware.StructuredLoggingMiddleware(logger))
	handlers.RegisterRoutes(suite.router, &portssvc.ServiceContainer{
		Bill:      suite.mockBillService,
		Analytics: suite.mockAnalyticsService,
	})
}

func (suite *BillHandlerTestSuite) TearDownTest() {
	suite.mockBillService.AssertExpectations(suite.T())
	suite.mockAnalyticsService.AssertExpectations(suite.T())
}

func TestBillHandler(t *testing.T) {
	suite.Run(t, new(BillHandlerTestSuite))
}

func (suite *BillHandlerTestSuite) serve(method, url string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	}
	req, _ := http.NewRequest(method, url, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *BillHandlerTestSuite) sampleBill() *domain.Bill {
	return &domain.Bill{
		ID:                 "bill-1",
		Name:               "Electricity",
		Amount:             decimal.RequireFromString("125.50"),
		Category:           "Utilities",
		DueDate:            time.Date(2024, 6, 16, 0, 0, 0, 0, time.UTC),
		IsRecurring:        true,
		RecurringFrequency: domain.Monthly,
		Status:             domain.StatusPending,
		CreatedAt:          suite.now,
	}
}

func (suite *BillHandlerTestSuite) TestHealth() {
	w := suite.serve(http.MethodGet, "/health", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"status":"ok"`)
}

func (suite *BillHandlerTestSuite) TestListBills_Success() {
	suite.mockBillService.On("ListBills", mock.Anything, mock.MatchedBy(func(q domain.BillQuery) bool {
		return q.View == domain.ViewUnpaid && q.Search == "elec" && q.SortBy == domain.SortByAmount && q.Order == domain.Descending
	})).Return([]domain.Bill{*suite.sampleBill()}, nil).Once()

	w := suite.serve(http.MethodGet, "/api/v1/bills?view=unpaid&search=elec&sortBy=amount&order=desc", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListBillsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(1, resp.Count)
	suite.Require().Len(resp.Bills, 1)
	suite.Equal("2024-06-16", resp.Bills[0].DueDate)
	suite.Equal("Tomorrow", resp.Bills[0].DueLabel)
	suite.Equal("$125.50", resp.Bills[0].FormattedAmount)
	suite.Equal("Monthly", resp.Bills[0].RecurringFrequency)
	suite.Nil(resp.Bills[0].PaymentDate)
}

func (suite *BillHandlerTestSuite) TestListBills_InvalidQuery() {
	cases := []string{
		"/api/v1/bills?view=archived",
		"/api/v1/bills?sortBy=colour",
		"/api/v1/bills?dueFrom=15-06-2024",
	}
	for _, url := range cases {
		w := suite.serve(http.MethodGet, url, nil)
		suite.Equal(http.StatusBadRequest, w.Code, url)
	}
	suite.mockBillService.AssertNotCalled(suite.T(), "ListBills", mock.Anything, mock.Anything)
}

func (suite *BillHandlerTestSuite) TestCreateBill_Success() {
	body := map[string]any{
		"name":               "Electricity",
		"amount":             "125.50",
		"category":           "Utilities",
		"dueDate":            "2024-06-16",
		"isRecurring":        true,
		"recurringFrequency": "Monthly",
	}
	suite.mockBillService.On("CreateBill", mock.Anything, mock.MatchedBy(func(req dto.CreateBillRequest) bool {
		return req.Name == "Electricity" && req.Amount.Equal(decimal.RequireFromString("125.5")) && req.DueDate == "2024-06-16"
	})).Return(suite.sampleBill(), nil).Once()

	w := suite.serve(http.MethodPost, "/api/v1/bills", body)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.BillResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("bill-1", resp.ID)
	suite.Equal("pending", resp.Status)
}

func (suite *BillHandlerTestSuite) TestCreateBill_BindingErrors() {
	cases := []map[string]any{
		{"amount": "10", "category": "Utilities", "dueDate": "2024-06-16"},
		{"name": "x", "amount": "10", "category": "Utilities", "dueDate": "2024-06-16", "status": "cancelled"},
		{"name": "x", "amount": "10", "category": "Utilities", "dueDate": "2024-06-16", "recurringFrequency": "Daily"},
	}
	for i, body := range cases {
		w := suite.serve(http.MethodPost, "/api/v1/bills", body)
		suite.Equal(http.StatusBadRequest, w.Code, "case %d", i)
	}
	suite.mockBillService.AssertNotCalled(suite.T(), "CreateBill", mock.Anything, mock.Anything)
}

func (suite *BillHandlerTestSuite) TestCreateBill_ServiceErrors() {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"validation", fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation), http.StatusBadRequest},
		{"duplicate", fmt.Errorf("%w: %w: bill bill-1", apperrors.ErrValidation, apperrors.ErrDuplicate), http.StatusConflict},
		{"unexpected", errors.New("connection reset"), http.StatusInternalServerError},
	}
	body := map[string]any{"name": "x", "amount": "10", "category": "Utilities", "dueDate": "2024-06-16"}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.mockBillService.On("CreateBill", mock.Anything, mock.Anything).Return(nil, tt.err).Once()

			w := suite.serve(http.MethodPost, "/api/v1/bills", body)

			suite.Equal(tt.code, w.Code)
			if tt.code == http.StatusInternalServerError {
				suite.NotContains(w.Body.String(), "connection reset")
			}
		})
	}
}

func (suite *BillHandlerTestSuite) TestGetBill() {
	suite.mockBillService.On("GetBill", mock.Anything, "bill-1").Return(suite.sampleBill(), nil).Once()
	suite.mockBillService.On("GetBill", mock.Anything, "missing").
		Return(nil, fmt.Errorf("%w: bill missing", apperrors.ErrNotFound)).Once()

	suite.Equal(http.StatusOK, suite.serve(http.MethodGet, "/api/v1/bills/bill-1", nil).Code)
	suite.Equal(http.StatusNotFound, suite.serve(http.MethodGet, "/api/v1/bills/missing", nil).Code)
}

func (suite *BillHandlerTestSuite) TestUpdateBill() {
	updated := suite.sampleBill()
	updated.Name = "Power"
	suite.mockBillService.On("UpdateBill", mock.Anything, "bill-1", mock.MatchedBy(func(req dto.UpdateBillRequest) bool {
		return req.Name != nil && *req.Name == "Power" && req.Amount == nil && req.DueDate == nil
	})).Return(updated, nil).Once()

	w := suite.serve(http.MethodPut, "/api/v1/bills/bill-1", map[string]any{"name": "Power"})

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.BillResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Power", resp.Name)
}

func (suite *BillHandlerTestSuite) TestUpdateBill_NotFound() {
	suite.mockBillService.On("UpdateBill", mock.Anything, "missing", mock.Anything).
		Return(nil, fmt.Errorf("%w: bill missing", apperrors.ErrNotFound)).Once()

	w := suite.serve(http.MethodPut, "/api/v1/bills/missing", map[string]any{"name": "Power"})

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *BillHandlerTestSuite) TestPayBill_EmptyBody() {
	paidAt := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	paid := suite.sampleBill().MarkPaid(domain.PaymentDetails{PaymentDate: paidAt})
	suite.mockBillService.On("MarkBillPaid", mock.Anything, "bill-1", dto.MarkBillPaidRequest{}).Return(&paid, nil).Once()

	w := suite.serve(http.MethodPatch, "/api/v1/bills/bill-1/pay", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.BillResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("paid", resp.Status)
	suite.Require().NotNil(resp.PaymentDate)
	suite.Equal("2024-06-15", *resp.PaymentDate)
}

func (suite *BillHandlerTestSuite) TestPayBill_WithDetails() {
	req := dto.MarkBillPaidRequest{PaymentDate: "2024-06-14", PaymentMethod: "Credit Card", Note: "autopay"}
	paid := suite.sampleBill().MarkPaid(domain.PaymentDetails{
		PaymentDate:   time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC),
		PaymentMethod: "Credit Card",
		Note:          "autopay",
	})
	suite.mockBillService.On("MarkBillPaid", mock.Anything, "bill-1", req).Return(&paid, nil).Once()

	w := suite.serve(http.MethodPatch, "/api/v1/bills/bill-1/pay", req)

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"paymentMethod":"Credit Card"`)
}

func (suite *BillHandlerTestSuite) TestPayBill_NotFound() {
	suite.mockBillService.On("MarkBillPaid", mock.Anything, "missing", mock.Anything).
		Return(nil, fmt.Errorf("%w: bill missing", apperrors.ErrNotFound)).Once()

	w := suite.serve(http.MethodPatch, "/api/v1/bills/missing/pay", nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *BillHandlerTestSuite) TestDeleteBill() {
	suite.mockBillService.On("DeleteBill", mock.Anything, "bill-1").Return(nil).Once()
	suite.mockBillService.On("DeleteBill", mock.Anything, "missing").
		Return(fmt.Errorf("%w: bill missing", apperrors.ErrNotFound)).Once()

	suite.Equal(http.StatusNoContent, suite.serve(http.MethodDelete, "/api/v1/bills/bill-1", nil).Code)
	suite.Equal(http.StatusNotFound, suite.serve(http.MethodDelete, "/api/v1/bills/missing", nil).Code)
}

func (suite *BillHandlerTestSuite) TestRefreshBills() {
	suite.mockBillService.On("Refresh", mock.Anything).Return([]domain.Bill{*suite.sampleBill()}, nil).Once()

	w := suite.serve(http.MethodPost, "/api/v1/bills/refresh", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"count":1`)
}

func (suite *BillHandlerTestSuite) TestRefreshBills_Failure() {
	suite.mockBillService.On("Refresh", mock.Anything).Return(nil, errors.New("db down")).Once()

	w := suite.serve(http.MethodPost, "/api/v1/bills/refresh", nil)

	suite.Equal(http.StatusInternalServerError, w.Code)
}
