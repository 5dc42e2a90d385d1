package dto

import (
	"time"

	"github.com/firmbooks/firmbooks_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateReminderRequest defines the data needed to create a loan/bill reminder.
type CreateReminderRequest struct {
	Title   string          `json:"title" binding:"required"`
	Kind    string          `json:"kind" binding:"required,oneof=loan bill"`
	Amount  decimal.Decimal `json:"amount" binding:"required"`
	DueDate string          `json:"dueDate" binding:"required,txndate"`
	Notes   string          `json:"notes"`
}

// UpdateReminderRequest defines the editable fields of a reminder.
type UpdateReminderRequest struct {
	Title   *string          `json:"title"`
	Amount  *decimal.Decimal `json:"amount"`
	DueDate *string          `json:"dueDate" binding:"omitempty,txndate"`
	Status  *string          `json:"status" binding:"omitempty,oneof=pending done"`
	Notes   *string          `json:"notes"`
}

// ReminderResponse defines the data returned for a reminder.
type ReminderResponse struct {
	ReminderID string          `json:"reminderID"`
	Title      string          `json:"title"`
	Kind       string          `json:"kind"`
	Amount     decimal.Decimal `json:"amount"`
	DueDate    string          `json:"dueDate"`
	Status     string          `json:"status"`
	Notes      string          `json:"notes"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// ToReminderResponse converts a domain.Reminder to its DTO.
func ToReminderResponse(r *domain.Reminder) ReminderResponse {
	return ReminderResponse{
		ReminderID: r.ReminderID,
		Title:      r.Title,
		Kind:       string(r.Kind),
		Amount:     r.Amount,
		DueDate:    r.DueDate.Format(TxnDateFormat),
		Status:     string(r.Status),
		Notes:      r.Notes,
		CreatedAt:  r.CreatedAt,
	}
}

// ListRemindersResponse wraps the list of reminders.
type ListRemindersResponse struct {
	Reminders []ReminderResponse `json:"reminders"`
}

// ListRemindersParams defines query parameters for listing reminders.
type ListRemindersParams struct {
	Status string `form:"status" binding:"omitempty,oneof=pending done"`
}
