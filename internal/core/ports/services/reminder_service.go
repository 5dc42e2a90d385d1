package ports

import (
	"context"

	"github.com/firmbooks/firmbooks_backend/internal/dto"
)

// ReminderSvcFacade defines operations on loan/bill reminders.
type ReminderSvcFacade interface {
	CreateReminder(ctx context.Context, userID string, req dto.CreateReminderRequest) (*dto.ReminderResponse, error)
	GetReminderByID(ctx context.Context, reminderID string) (*dto.ReminderResponse, error)
	ListReminders(ctx context.Context, params dto.ListRemindersParams) (*dto.ListRemindersResponse, error)
	UpdateReminder(ctx context.Context, userID string, reminderID string, req dto.UpdateReminderRequest) (*dto.ReminderResponse, error)
	DeleteReminder(ctx context.Context, userID string, reminderID string) error
}
