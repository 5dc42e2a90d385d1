package handlers

import (
	portssvc "github.com/firmbooks/firmbooks_backend/internal/core/ports/services"
	"github.com/firmbooks/firmbooks_backend/internal/middleware"
	"github.com/firmbooks/firmbooks_backend/internal/platform/changefeed"
	"github.com/firmbooks/firmbooks_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	hub *changefeed.Hub,
) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})
	r.GET("/", GetHome)

	// Setup API v1 routes, passing service interfaces
	setupAPIV1Routes(r, cfg, services, hub)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	hub *changefeed.Hub,
) {
	v1 := r.Group("/api/v1", middleware.ActingUserMiddleware())

	registerAccountRoutes(v1, services.AccountSvc)
	RegisterTransactionRoutes(v1, services.LedgerSvc)
	registerPartnerRoutes(v1, services.PartnerSvc, services.StatementSvc)
	registerEnquiryRoutes(v1, services.EnquirySvc)
	registerReminderRoutes(v1, services.ReminderSvc)
	registerEventRoutes(v1, hub)
}
