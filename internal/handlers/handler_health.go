package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/bill_tracker_app/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// registerHealthRoutes registers the liveness probe.
func registerHealthRoutes(r *gin.Engine, billService portssvc.BillReaderSvc) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"time":   billService.Now().UTC(),
		})
	})
}
