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

// enquiryHandler handles HTTP requests related to admission enquiries.
type enquiryHandler struct {
	enquiryService portssvc.EnquirySvcFacade
}

func newEnquiryHandler(es portssvc.EnquirySvcFacade) *enquiryHandler {
	return &enquiryHandler{enquiryService: es}
}

// registerEnquiryRoutes registers routes related to enquiries.
func registerEnquiryRoutes(rg *gin.RouterGroup, enquiryService portssvc.EnquirySvcFacade) {
	h := newEnquiryHandler(enquiryService)

	enquiries := rg.Group("/enquiries")
	{
		enquiries.POST("", h.createEnquiry)
		enquiries.GET("", h.listEnquiries)
		enquiries.GET("/:id", h.getEnquiry)
		enquiries.PUT("/:id", h.updateEnquiry)
		enquiries.DELETE("/:id", h.deleteEnquiry)
	}
}

func (h *enquiryHandler) createEnquiry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateEnquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createEnquiry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, _ := middleware.GetUserIDFromContext(c)

	enquiry, err := h.enquiryService.CreateEnquiry(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create enquiry in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create enquiry"})
		}
		return
	}

	c.JSON(http.StatusCreated, enquiry)
}

func (h *enquiryHandler) getEnquiry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	enquiryID := c.Param("id")

	enquiry, err := h.enquiryService.GetEnquiryByID(c.Request.Context(), enquiryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Enquiry not found"})
		} else {
			logger.Error("Failed to get enquiry from service", slog.String("error", err.Error()), slog.String("enquiry_id", enquiryID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve enquiry"})
		}
		return
	}

	c.JSON(http.StatusOK, enquiry)
}

func (h *enquiryHandler) listEnquiries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListEnquiriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	enquiries, err := h.enquiryService.ListEnquiries(c.Request.Context(), params)
	if err != nil {
		logger.Error("Failed to list enquiries from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list enquiries"})
		return
	}

	c.JSON(http.StatusOK, enquiries)
}

func (h *enquiryHandler) updateEnquiry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	enquiryID := c.Param("id")

	var req dto.UpdateEnquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, _ := middleware.GetUserIDFromContext(c)

	enquiry, err := h.enquiryService.UpdateEnquiry(c.Request.Context(), userID, enquiryID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Enquiry not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update enquiry in service", slog.String("error", err.Error()), slog.String("enquiry_id", enquiryID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update enquiry"})
		}
		return
	}

	c.JSON(http.StatusOK, enquiry)
}

func (h *enquiryHandler) deleteEnquiry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	enquiryID := c.Param("id")

	userID, _ := middleware.GetUserIDFromContext(c)

	if err := h.enquiryService.DeleteEnquiry(c.Request.Context(), userID, enquiryID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Enquiry not found"})
		} else {
			logger.Error("Failed to delete enquiry in service", slog.String("error", err.Error()), slog.String("enquiry_id", enquiryID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete enquiry"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
