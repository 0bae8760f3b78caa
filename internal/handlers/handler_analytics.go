package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/bill_tracker_app/internal/core/domain"
	portssvc "github.com/SscSPs/bill_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/bill_tracker_app/internal/dto"
	"github.com/SscSPs/bill_tracker_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type dashboardHandler struct {
	analyticsService portssvc.AnalyticsSvc
}

func registerDashboardRoutes(rg *gin.RouterGroup, analyticsService portssvc.AnalyticsSvc) {
	h := &dashboardHandler{analyticsService: analyticsService}
	rg.GET("/dashboard", h.getDashboard)
}

// getDashboard godoc
// @Summary Dashboard overview
// @Description Refreshes the bills and returns KPIs, charts, upcoming bills and transaction figures in one payload
// @Tags dashboard
// @Produce  json
// @Success 200 {object} dto.DashboardResponse
// @Failure 500 {object} map[string]string "Failed to build dashboard"
// @Router /dashboard [get]
func (h *dashboardHandler) getDashboard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	dashboard, err := h.analyticsService.Dashboard(c.Request.Context())
	if err != nil {
		respondWithServiceError(c, logger, err, "Failed to build dashboard")
		return
	}

	c.JSON(http.StatusOK, dto.ToDashboardResponse(*dashboard))
}

// bindView reads the view query parameter. It writes a 400 response and
// returns false when the value is unknown.
func bindView(c *gin.Context, logger *slog.Logger) (domain.BillView, bool) {
	var params dto.BillSummaryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind view parameter", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return "", false
	}
	view, err := domain.ParseBillView(params.View)
	if err != nil {
		logger.Warn("Unknown bill view", slog.String("view", params.View))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return "", false
	}
	return view, true
}
