package handlers

import (
	portssvc "github.com/SscSPs/bill_tracker_app/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	services *portssvc.ServiceContainer,
) {
	registerHealthRoutes(r, services.Bill)

	setupAPIV1Routes(r, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1")

	registerBillRoutes(v1, services.Bill, services.Analytics)
	registerTransactionRoutes(v1, services.Analytics)
	registerDashboardRoutes(v1, services.Analytics)
}
