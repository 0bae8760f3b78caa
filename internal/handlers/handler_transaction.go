package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/bill_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/bill_tracker_app/internal/dto"
	"github.com/SscSPs/bill_tracker_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// transactionHandler handles HTTP requests related to the transaction history.
type transactionHandler struct {
	analyticsService portssvc.TransactionAnalyticsSvc
}

// registerTransactionRoutes registers routes related to transactions.
func registerTransactionRoutes(rg *gin.RouterGroup, analyticsService portssvc.TransactionAnalyticsSvc) {
	h := &transactionHandler{analyticsService: analyticsService}

	transactions := rg.Group("/transactions")
	{
		transactions.GET("", h.listTransactions)
		transactions.GET("/summary", h.getTransactionSummary)
		transactions.GET("/spending", h.getSpending)
	}
}

// listTransactions godoc
// @Summary List transactions
// @Description Newest first, optionally filtered by category and date range
// @Tags transactions
// @Produce  json
// @Param   category query string false "Exact category"
// @Param   from query string false "Earliest date (YYYY-MM-DD)"
// @Param   to query string false "Latest date (YYYY-MM-DD)"
// @Success 200 {array} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to list transactions"
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListTransactions", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	filter, err := params.ToFilter()
	if err != nil {
		respondWithServiceError(c, logger, err, "Failed to list transactions")
		return
	}

	txs, err := h.analyticsService.ListTransactions(c.Request.Context(), filter)
	if err != nil {
		respondWithServiceError(c, logger, err, "Failed to list transactions")
		return
	}

	c.JSON(http.StatusOK, dto.ToListTransactionResponse(txs))
}

// getTransactionSummary godoc
// @Summary Income, expenses and balance
// @Tags transactions
// @Produce  json
// @Param   category query string false "Exact category"
// @Param   from query string false "Earliest date (YYYY-MM-DD)"
// @Param   to query string false "Latest date (YYYY-MM-DD)"
// @Success 200 {object} dto.TransactionSummaryResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to summarize transactions"
// @Router /transactions/summary [get]
func (h *transactionHandler) getTransactionSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for TransactionSummary", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	filter, err := params.ToFilter()
	if err != nil {
		respondWithServiceError(c, logger, err, "Failed to summarize transactions")
		return
	}

	summary, err := h.analyticsService.TransactionSummary(c.Request.Context(), filter)
	if err != nil {
		respondWithServiceError(c, logger, err, "Failed to summarize transactions")
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionSummaryResponse(summary))
}

// getSpending godoc
// @Summary Top expense categories
// @Tags transactions
// @Produce  json
// @Param   top query int false "Number of categories" default(6)
// @Param   category query string false "Exact category"
// @Param   from query string false "Earliest date (YYYY-MM-DD)"
// @Param   to query string false "Latest date (YYYY-MM-DD)"
// @Success 200 {array} dto.CategoryTotalResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to compute spending"
// @Router /transactions/spending [get]
func (h *transactionHandler) getSpending(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.SpendingParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for Spending", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	filter, err := params.ToFilter()
	if err != nil {
		respondWithServiceError(c, logger, err, "Failed to compute spending")
		return
	}

	totals, err := h.analyticsService.SpendingByCategory(c.Request.Context(), filter, params.Top)
	if err != nil {
		respondWithServiceError(c, logger, err, "Failed to compute spending")
		return
	}

	c.JSON(http.StatusOK, dto.ToCategoryTotalResponses(totals))
}
