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

// reminderHandler handles HTTP requests related to loan/bill reminders.
type reminderHandler struct {
	reminderService portssvc.ReminderSvcFacade
}

func newReminderHandler(rs portssvc.ReminderSvcFacade) *reminderHandler {
	return &reminderHandler{reminderService: rs}
}

// registerReminderRoutes registers routes related to reminders.
func registerReminderRoutes(rg *gin.RouterGroup, reminderService portssvc.ReminderSvcFacade) {
	h := newReminderHandler(reminderService)

	reminders := rg.Group("/reminders")
	{
		reminders.POST("", h.createReminder)
		reminders.GET("", h.listReminders)
		reminders.GET("/:id", h.getReminder)
		reminders.PUT("/:id", h.updateReminder)
		reminders.DELETE("/:id", h.deleteReminder)
	}
}

func (h *reminderHandler) createReminder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createReminder", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, _ := middleware.GetUserIDFromContext(c)

	reminder, err := h.reminderService.CreateReminder(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create reminder in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create reminder"})
		}
		return
	}

	c.JSON(http.StatusCreated, reminder)
}

func (h *reminderHandler) getReminder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	reminderID := c.Param("id")

	reminder, err := h.reminderService.GetReminderByID(c.Request.Context(), reminderID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Reminder not found"})
		} else {
			logger.Error("Failed to get reminder from service", slog.String("error", err.Error()), slog.String("reminder_id", reminderID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve reminder"})
		}
		return
	}

	c.JSON(http.StatusOK, reminder)
}

func (h *reminderHandler) listReminders(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListRemindersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	reminders, err := h.reminderService.ListReminders(c.Request.Context(), params)
	if err != nil {
		logger.Error("Failed to list reminders from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list reminders"})
		return
	}

	c.JSON(http.StatusOK, reminders)
}

func (h *reminderHandler) updateReminder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	reminderID := c.Param("id")

	var req dto.UpdateReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, _ := middleware.GetUserIDFromContext(c)

	reminder, err := h.reminderService.UpdateReminder(c.Request.Context(), userID, reminderID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Reminder not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update reminder in service", slog.String("error", err.Error()), slog.String("reminder_id", reminderID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update reminder"})
		}
		return
	}

	c.JSON(http.StatusOK, reminder)
}

func (h *reminderHandler) deleteReminder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	reminderID := c.Param("id")

	userID, _ := middleware.GetUserIDFromContext(c)

	if err := h.reminderService.DeleteReminder(c.Request.Context(), userID, reminderID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Reminder not found"})
		} else {
			logger.Error("Failed to delete reminder in service", slog.String("error", err.Error()), slog.String("reminder_id", reminderID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete reminder"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
