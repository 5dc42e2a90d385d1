package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/firmbooks/firmbooks_backend/internal/apperrors"
	portssvc "github.com/firmbooks/firmbooks_backend/internal/core/ports/services"
	"github.com/firmbooks/firmbooks_backend/internal/dto"
	"github.com/firmbooks/firmbooks_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// partnerHandler handles HTTP requests related to partners and their payments.
type partnerHandler struct {
	partnerService   portssvc.PartnerSvcFacade
	statementService portssvc.StatementSvcFacade
}

func newPartnerHandler(ps portssvc.PartnerSvcFacade, ss portssvc.StatementSvcFacade) *partnerHandler {
	return &partnerHandler{partnerService: ps, statementService: ss}
}

// registerPartnerRoutes registers routes related to partners.
func registerPartnerRoutes(rg *gin.RouterGroup, partnerService portssvc.PartnerSvcFacade, statementService portssvc.StatementSvcFacade) {
	h := newPartnerHandler(partnerService, statementService)

	partners := rg.Group("/partners")
	{
		partners.POST("", h.createPartner)
		partners.GET("", h.listPartners)
		partners.GET("/:id", h.getPartner)
		partners.PUT("/:id", h.updatePartner)
		partners.POST("/:id/payments", h.recordPayment)
		partners.GET("/:id/statement", h.getStatement)
	}
}

func (h *partnerHandler) createPartner(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createPartner", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, _ := middleware.GetUserIDFromContext(c)

	partner, err := h.partnerService.CreatePartner(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create partner in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create partner"})
		}
		return
	}

	c.JSON(http.StatusCreated, partner)
}

func (h *partnerHandler) getPartner(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	partnerID := c.Param("id")

	partner, err := h.partnerService.GetPartnerByID(c.Request.Context(), partnerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Partner not found"})
		} else {
			logger.Error("Failed to get partner from service", slog.String("error", err.Error()), slog.String("partner_id", partnerID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve partner"})
		}
		return
	}

	c.JSON(http.StatusOK, partner)
}

func (h *partnerHandler) listPartners(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	partners, err := h.partnerService.ListPartners(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list partners from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list partners"})
		return
	}

	c.JSON(http.StatusOK, partners)
}

func (h *partnerHandler) updatePartner(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	partnerID := c.Param("id")

	var req dto.UpdatePartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, _ := middleware.GetUserIDFromContext(c)

	partner, err := h.partnerService.UpdatePartner(c.Request.Context(), userID, partnerID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Partner not found"})
		} else {
			logger.Error("Failed to update partner in service", slog.String("error", err.Error()), slog.String("partner_id", partnerID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update partner"})
		}
		return
	}

	c.JSON(http.StatusOK, partner)
}

func (h *partnerHandler) recordPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	partnerID := c.Param("id")

	var req dto.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for recordPayment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, _ := middleware.GetUserIDFromContext(c)

	payment, err := h.partnerService.RecordPayment(c.Request.Context(), userID, partnerID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to record payment in service", slog.String("error", err.Error()), slog.String("partner_id", partnerID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record payment"})
		}
		return
	}

	c.JSON(http.StatusCreated, payment)
}

func (h *partnerHandler) getStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	partnerID := c.Param("id")

	statement, err := h.statementService.GetPartnerStatement(c.Request.Context(), partnerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Partner not found"})
		} else {
			logger.Error("Failed to assemble partner statement", slog.String("error", err.Error()), slog.String("partner_id", partnerID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve statement"})
		}
		return
	}

	c.JSON(http.StatusOK, statement)
}
