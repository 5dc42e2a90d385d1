package repositories

import (
	"context"

	"github.com/firmbooks/firmbooks_backend/internal/core/domain"
)

// ReminderRepositoryFacade defines operations on loan/bill reminders.
type ReminderRepositoryFacade interface {
	SaveReminder(ctx context.Context, reminder domain.Reminder) error
	FindReminderByID(ctx context.Context, reminderID string) (*domain.Reminder, error)
	ListReminders(ctx context.Context, status string) ([]domain.Reminder, error)
	UpdateReminder(ctx context.Context, reminder domain.Reminder) error
	DeleteReminder(ctx context.Context, reminderID string) error
}
