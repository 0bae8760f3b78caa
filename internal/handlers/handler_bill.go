package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/bill_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/bill_tracker_app/internal/dto"
	"github.com/SscSPs/bill_tracker_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// billHandler handles HTTP requests related to bills.
type billHandler struct {
	billService      portssvc.BillSvcFacade
	analyticsService portssvc.AnalyticsSvc
}

// newBillHandler creates a new billHandler.
func newBillHandler(bs portssvc.BillSvcFacade, as portssvc.AnalyticsSvc) *billHandler {
	return &billHandler{
		billService:      bs,
		analyticsService: as,
	}
}

// registerBillRoutes registers routes related to bills, including the bill
// analytics that hang off /bills.
func registerBillRoutes(rg *gin.RouterGroup, billService portssvc.BillSvcFacade, analyticsService portssvc.AnalyticsSvc) {
	h := newBillHandler(billService, analyticsService)

	bills := rg.Group("/bills")
	{
		bills.GET("", h.listBills)
		bills.POST("", h.createBill)
		bills.POST("/refresh", h.refreshBills)
		bills.GET("/summary", h.getBillSummary)
		bills.GET("/charts/categories", h.getCategoryChart)
		bills.GET("/charts/monthly", h.getMonthlyChart)
		bills.GET("/upcoming", h.getUpcomingBills)
		bills.GET("/:id", h.getBill)
		bills.PUT("/:id", h.updateBill)
		bills.PATCH("/:id/pay", h.payBill)
		bills.DELETE("/:id", h.deleteBill)
	}
}

// listBills godoc
// @Summary List bills
// @Description Lists bills in a view, optionally filtered by search text, category and due range, then sorted
// @Tags bills
// @Produce  json
// @Param   view query string false "all, recurring, one-time, paid or unpaid" default(all)
// @Param   search query string false "Case-insensitive match on name or category"
// @Param   category query string false "Exact category"
// @Param   dueFrom query string false "Earliest due date (YYYY-MM-DD)"
// @Param   dueTo query string false "Latest due date (YYYY-MM-DD)"
// @Param   sortBy query string false "dueDate, amount, name, category or status" default(dueDate)
// @Param   order query string false "asc or desc" default(asc)
// @Success 200 {object} dto.ListBillsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to list bills"
// @Router /bills [get]
func (h *billHandler) listBills(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListBillsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListBills", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	query, err := params.ToQuery()
	if err != nil {
		respondWithServiceError(c, logger, err, "Failed to list bills")
		return
	}

	bills, err := h.billService.ListBills(c.Request.Context(), query)
	if err != nil {
		respondWithServiceError(c, logger, err, "Failed to list bills")
		return
	}

	logger.Info("Bills listed successfully", slog.Int("count", len(bills)), slog.String("view", string(query.View)))
	c.JSON(http.StatusOK, dto.ListBillsResponse{
		Bills: dto.ToListBillResponse(bills, h.billService.Now()),
		Count: len(bills),
	})
}

// createBill godoc
// @Summary Create a new bill
// @Description Adds a bill. The id is generated when omitted.
// @Tags bills
// @Accept  json
// @Produce  json
// @Param   bill body dto.CreateBillRequest true "Bill details"
// @Success 201 {object} dto.BillResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 409 {object} map[string]string "A bill with this id already exists"
// @Failure 500 {object} map[string]string "Failed to create bill"
// @Router /bills [post]
func (h *billHandler) createBill(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateBill", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to create bill", slog.String("bill_name", req.Name), slog.String("category", req.Category))

	bill, err := h.billService.CreateBill(c.Request.Context(), req)
	if err != nil {
		respondWithServiceError(c, logger, err, "Failed to create bill")
		return
	}

	logger.Info("Bill created successfully", slog.String("bill_id", bill.ID))
	c.JSON(http.StatusCreated, dto.ToBillResponse(*bill, h.billService.Now()))
}

// refreshBills godoc
// @Summary Reload bills
// @Description Replaces the in-memory bill collection with the repository contents
// @Tags bills
// @Produce  json
// @Success 200 {object} dto.ListBillsResponse
// @Failure 500 {object} map[string]string "Failed to refresh bills"
// @Router /bills/refresh [post]
func (h *billHandler) refreshBills(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	bills, err := h.billService.Refresh(c.Request.Context())
	if err != nil {
		respondWithServiceError(c, logger, err, "Failed to refresh bills")
		return
	}

	logger.Info("Bills refreshed", slog.Int("count", len(bills)))
	c.JSON(http.StatusOK, dto.ListBillsResponse{
		Bills: dto.ToListBillResponse(bills, h.billService.Now()),
		Count: len(bills),
	})
}

// getBill godoc
// @Summary Get a bill by ID
// @Tags bills
// @Produce  json
// @Param   id path string true "Bill ID"
// @Success 200 {object} dto.BillResponse
// @Failure 404 {object} map[string]string "Bill not found"
// @Failure 500 {object} map[string]string "Failed to retrieve bill"
// @Router /bills/{id} [get]
func (h *billHandler) getBill(c *gin.Context) {
	billID := c.Param("id")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("bill_id", billID))

	bill, err := h.billService.GetBill(c.Request.Context(), billID)
	if err != nil {
		respondWithServiceError(c, logger, err, "Failed to retrieve bill")
		return
	}

	c.JSON(http.StatusOK, dto.ToBillResponse(*bill, h.billService.Now()))
}

// updateBill godoc
// @Summary Update a bill
// @Description Merges the provided fields into an existing bill. Omitted fields are left unchanged.
// @Tags bills
// @Accept  json
// @Produce  json
// @Param   id path string true "Bill ID"
// @Param   bill body dto.UpdateBillRequest true "Fields to update"
// @Success 200 {object} dto.BillResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Bill not found"
// @Failure 500 {object} map[string]string "Failed to update bill"
// @Router /bills/{id} [put]
func (h *billHandler) updateBill(c *gin.Context) {
	billID := c.Param("id")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("bill_id", billID))

	var req dto.UpdateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateBill", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	bill, err := h.billService.UpdateBill(c.Request.Context(), billID, req)
	if err != nil {
		respondWithServiceError(c, logger, err, "Failed to update bill")
		return
	}

	logger.Info("Bill updated successfully")
	c.JSON(http.StatusOK, dto.ToBillResponse(*bill, h.billService.Now()))
}

// payBill godoc
// @Summary Mark a bill as paid
// @Description Records payment date, method and note in one step. The payment date defaults to today.
// @Tags bills
// @Accept  json
// @Produce  json
// @Param   id path string true "Bill ID"
// @Param   payment body dto.MarkBillPaidRequest false "Payment details"
// @Success 200 {object} dto.BillResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Bill not found"
// @Failure 500 {object} map[string]string "Failed to mark bill as paid"
// @Router /bills/{id}/pay [patch]
func (h *billHandler) payBill(c *gin.Context) {
	billID := c.Param("id")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("bill_id", billID))

	var req dto.MarkBillPaidRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			logger.Warn("Failed to bind JSON for MarkBillPaid", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
			return
		}
	}

	bill, err := h.billService.MarkBillPaid(c.Request.Context(), billID, req)
	if err != nil {
		respondWithServiceError(c, logger, err, "Failed to mark bill as paid")
		return
	}

	logger.Info("Bill marked as paid")
	c.JSON(http.StatusOK, dto.ToBillResponse(*bill, h.billService.Now()))
}

// deleteBill godoc
// @Summary Delete a bill
// @Tags bills
// @Param   id path string true "Bill ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Bill not found"
// @Failure 500 {object} map[string]string "Failed to delete bill"
// @Router /bills/{id} [delete]
func (h *billHandler) deleteBill(c *gin.Context) {
	billID := c.Param("id")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("bill_id", billID))

	if err := h.billService.DeleteBill(c.Request.Context(), billID); err != nil {
		respondWithServiceError(c, logger, err, "Failed to delete bill")
		return
	}

	logger.Info("Bill deleted successfully")
	c.Status(http.StatusNoContent)
}

// getBillSummary godoc
// @Summary Bill KPIs
// @Description Headline totals for the bills in a view
// @Tags bills
// @Produce  json
// @Param   view query string false "all, recurring, one-time, paid or unpaid" default(all)
// @Success 200 {object} dto.SummaryResponse
// @Failure 400 {object} map[string]string "Invalid view"
// @Failure 500 {object} map[string]string "Failed to compute summary"
// @Router /bills/summary [get]
func (h *billHandler) getBillSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	view, ok := bindView(c, logger)
	if !ok {
		return
	}
	kpi, err := h.analyticsService.BillSummary(c.Request.Context(), view)
	if err != nil {
		respondWithServiceError(c, logger, err, "Failed to compute summary")
		return
	}

	c.JSON(http.StatusOK, dto.ToSummaryResponse(kpi))
}

// getCategoryChart godoc
// @Summary Bill totals per category
// @Tags bills
// @Produce  json
// @Param   view query string false "all, recurring, one-time, paid or unpaid" default(all)
// @Success 200 {array} dto.CategoryTotalResponse
// @Failure 400 {object} map[string]string "Invalid view"
// @Failure 500 {object} map[string]string "Failed to compute category totals"
// @Router /bills/charts/categories [get]
func (h *billHandler) getCategoryChart(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	view, ok := bindView(c, logger)
	if !ok {
		return
	}
	totals, err := h.analyticsService.BillCategoryTotals(c.Request.Context(), view)
	if err != nil {
		respondWithServiceError(c, logger, err, "Failed to compute category totals")
		return
	}

	c.JSON(http.StatusOK, dto.ToCategoryTotalResponses(totals))
}

// getMonthlyChart godoc
// @Summary Monthly paid and unpaid totals
// @Tags bills
// @Produce  json
// @Param   monthsBack query int false "Number of months, ending with the current one" default(6)
// @Success 200 {array} domain.MonthlyBreakdown
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to compute monthly breakdown"
// @Router /bills/charts/monthly [get]
func (h *billHandler) getMonthlyChart(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.MonthlyBreakdownParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for MonthlyBreakdown", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	months, err := h.analyticsService.BillMonthlyBreakdown(c.Request.Context(), params.MonthsBack)
	if err != nil {
		respondWithServiceError(c, logger, err, "Failed to compute monthly breakdown")
		return
	}

	c.JSON(http.StatusOK, months)
}

// getUpcomingBills godoc
// @Summary Upcoming bills
// @Description Unpaid bills due within the window, soonest first, with an urgency band
// @Tags bills
// @Produce  json
// @Param   daysAhead query int false "Look-ahead window in days" default(30)
// @Param   limit query int false "Maximum entries" default(5)
// @Success 200 {array} dto.UpcomingBillResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to list upcoming bills"
// @Router /bills/upcoming [get]
func (h *billHandler) getUpcomingBills(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.UpcomingBillsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for UpcomingBills", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	entries, err := h.analyticsService.UpcomingBills(c.Request.Context(), params.DaysAhead, params.Limit)
	if err != nil {
		respondWithServiceError(c, logger, err, "Failed to list upcoming bills")
		return
	}

	c.JSON(http.StatusOK, dto.ToUpcomingBillResponses(entries, h.billService.Now()))
}
