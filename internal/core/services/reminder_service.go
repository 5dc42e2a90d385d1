package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/firmbooks/firmbooks_backend/internal/apperrors"
	"github.com/firmbooks/firmbooks_backend/internal/core/domain"
	portsrepo "github.com/firmbooks/firmbooks_backend/internal/core/ports/repositories"
	"github.com/firmbooks/firmbooks_backend/internal/dto"
	"github.com/firmbooks/firmbooks_backend/internal/middleware"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReminderService manages loan/bill payment reminders.
type ReminderService struct {
	reminderRepo portsrepo.ReminderRepositoryFacade
}

func NewReminderService(reminderRepo portsrepo.ReminderRepositoryFacade) *ReminderService {
	return &ReminderService{reminderRepo: reminderRepo}
}

func (s *ReminderService) CreateReminder(ctx context.Context, userID string, req dto.CreateReminderRequest) (*dto.ReminderResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: reminder amount must be positive", apperrors.ErrValidation)
	}
	dueDate, err := time.Parse(dto.TxnDateFormat, req.DueDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid due date %q", apperrors.ErrValidation, req.DueDate)
	}

	now := time.Now()
	reminder := domain.Reminder{
		ReminderID: uuid.NewString(),
		Title:      req.Title,
		Kind:       domain.ReminderKind(req.Kind),
		Amount:     req.Amount,
		DueDate:    dueDate,
		Status:     domain.ReminderPending,
		Notes:      req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.reminderRepo.SaveReminder(ctx, reminder); err != nil {
		logger.Error("Failed to save reminder in repository", slog.String("error", err.Error()), slog.String("reminder_id", reminder.ReminderID))
		return nil, err
	}

	logger.Info("Reminder created", slog.String("reminder_id", reminder.ReminderID), slog.String("kind", string(reminder.Kind)))
	resp := dto.ToReminderResponse(&reminder)
	return &resp, nil
}

func (s *ReminderService) GetReminderByID(ctx context.Context, reminderID string) (*dto.ReminderResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	reminder, err := s.reminderRepo.FindReminderByID(ctx, reminderID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find reminder by ID in repository", slog.String("error", err.Error()), slog.String("reminder_id", reminderID))
		}
		return nil, err
	}

	resp := dto.ToReminderResponse(reminder)
	return &resp, nil
}

func (s *ReminderService) ListReminders(ctx context.Context, params dto.ListRemindersParams) (*dto.ListRemindersResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	reminders, err := s.reminderRepo.ListReminders(ctx, params.Status)
	if err != nil {
		logger.Error("Failed to list reminders from repository", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list reminders: %w", err)
	}

	resp := dto.ListRemindersResponse{Reminders: make([]dto.ReminderResponse, 0, len(reminders))}
	for i := range reminders {
		resp.Reminders = append(resp.Reminders, dto.ToReminderResponse(&reminders[i]))
	}
	return &resp, nil
}

func (s *ReminderService) UpdateReminder(ctx context.Context, userID string, reminderID string, req dto.UpdateReminderRequest) (*dto.ReminderResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	reminder, err := s.reminderRepo.FindReminderByID(ctx, reminderID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		reminder.Title = *req.Title
	}
	if req.Amount != nil {
		if req.Amount.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: reminder amount must be positive", apperrors.ErrValidation)
		}
		reminder.Amount = *req.Amount
	}
	if req.DueDate != nil {
		dueDate, err := time.Parse(dto.TxnDateFormat, *req.DueDate)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid due date %q", apperrors.ErrValidation, *req.DueDate)
		}
		reminder.DueDate = dueDate
	}
	if req.Status != nil {
		reminder.Status = domain.ReminderStatus(*req.Status)
	}
	if req.Notes != nil {
		reminder.Notes = *req.Notes
	}
	reminder.LastUpdatedAt = time.Now()
	reminder.LastUpdatedBy = userID

	if err := s.reminderRepo.UpdateReminder(ctx, *reminder); err != nil {
		logger.Error("Failed to update reminder in repository", slog.String("error", err.Error()), slog.String("reminder_id", reminderID))
		return nil, err
	}

	logger.Info("Reminder updated", slog.String("reminder_id", reminderID), slog.String("status", string(reminder.Status)))
	resp := dto.ToReminderResponse(reminder)
	return &resp, nil
}

func (s *ReminderService) DeleteReminder(ctx context.Context, userID string, reminderID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.reminderRepo.FindReminderByID(ctx, reminderID); err != nil {
		return err
	}

	if err := s.reminderRepo.DeleteReminder(ctx, reminderID); err != nil {
		logger.Error("Failed to delete reminder in repository", slog.String("error", err.Error()), slog.String("reminder_id", reminderID))
		return err
	}

	logger.Info("Reminder deleted", slog.String("reminder_id", reminderID), slog.String("deleted_by", userID))
	return nil
}
