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
)

// EnquiryService manages admission enquiries.
type EnquiryService struct {
	enquiryRepo portsrepo.EnquiryRepositoryFacade
}

func NewEnquiryService(enquiryRepo portsrepo.EnquiryRepositoryFacade) *EnquiryService {
	return &EnquiryService{enquiryRepo: enquiryRepo}
}

func (s *EnquiryService) CreateEnquiry(ctx context.Context, userID string, req dto.CreateEnquiryRequest) (*dto.EnquiryResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	var followUp *time.Time
	if req.FollowUpDate != "" {
		parsed, err := time.Parse(dto.TxnDateFormat, req.FollowUpDate)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid follow-up date %q", apperrors.ErrValidation, req.FollowUpDate)
		}
		followUp = &parsed
	}

	now := time.Now()
	enquiry := domain.Enquiry{
		EnquiryID:    uuid.NewString(),
		StudentName:  req.StudentName,
		Phone:        req.Phone,
		Course:       req.Course,
		Status:       domain.EnquiryNew,
		FollowUpDate: followUp,
		Notes:        req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.enquiryRepo.SaveEnquiry(ctx, enquiry); err != nil {
		logger.Error("Failed to save enquiry in repository", slog.String("error", err.Error()), slog.String("enquiry_id", enquiry.EnquiryID))
		return nil, err
	}

	logger.Info("Enquiry created", slog.String("enquiry_id", enquiry.EnquiryID))
	resp := dto.ToEnquiryResponse(&enquiry)
	return &resp, nil
}

func (s *EnquiryService) GetEnquiryByID(ctx context.Context, enquiryID string) (*dto.EnquiryResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	enquiry, err := s.enquiryRepo.FindEnquiryByID(ctx, enquiryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find enquiry by ID in repository", slog.String("error", err.Error()), slog.String("enquiry_id", enquiryID))
		}
		return nil, err
	}

	resp := dto.ToEnquiryResponse(enquiry)
	return &resp, nil
}

func (s *EnquiryService) ListEnquiries(ctx context.Context, params dto.ListEnquiriesParams) (*dto.ListEnquiriesResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	enquiries, err := s.enquiryRepo.ListEnquiries(ctx, params.Status)
	if err != nil {
		logger.Error("Failed to list enquiries from repository", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list enquiries: %w", err)
	}

	resp := dto.ListEnquiriesResponse{Enquiries: make([]dto.EnquiryResponse, 0, len(enquiries))}
	for i := range enquiries {
		resp.Enquiries = append(resp.Enquiries, dto.ToEnquiryResponse(&enquiries[i]))
	}
	return &resp, nil
}

func (s *EnquiryService) UpdateEnquiry(ctx context.Context, userID string, enquiryID string, req dto.UpdateEnquiryRequest) (*dto.EnquiryResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	enquiry, err := s.enquiryRepo.FindEnquiryByID(ctx, enquiryID)
	if err != nil {
		return nil, err
	}

	if req.StudentName != nil {
		enquiry.StudentName = *req.StudentName
	}
	if req.Phone != nil {
		enquiry.Phone = *req.Phone
	}
	if req.Course != nil {
		enquiry.Course = *req.Course
	}
	if req.Status != nil {
		enquiry.Status = domain.EnquiryStatus(*req.Status)
	}
	if req.FollowUpDate != nil {
		parsed, err := time.Parse(dto.TxnDateFormat, *req.FollowUpDate)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid follow-up date %q", apperrors.ErrValidation, *req.FollowUpDate)
		}
		enquiry.FollowUpDate = &parsed
	}
	if req.Notes != nil {
		enquiry.Notes = *req.Notes
	}
	enquiry.LastUpdatedAt = time.Now()
	enquiry.LastUpdatedBy = userID

	if err := s.enquiryRepo.UpdateEnquiry(ctx, *enquiry); err != nil {
		logger.Error("Failed to update enquiry in repository", slog.String("error", err.Error()), slog.String("enquiry_id", enquiryID))
		return nil, err
	}

	logger.Info("Enquiry updated", slog.String("enquiry_id", enquiryID), slog.String("status", string(enquiry.Status)))
	resp := dto.ToEnquiryResponse(enquiry)
	return &resp, nil
}

func (s *EnquiryService) DeleteEnquiry(ctx context.Context, userID string, enquiryID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.enquiryRepo.FindEnquiryByID(ctx, enquiryID); err != nil {
		return err
	}

	if err := s.enquiryRepo.DeleteEnquiry(ctx, enquiryID); err != nil {
		logger.Error("Failed to delete enquiry in repository", slog.String("error", err.Error()), slog.String("enquiry_id", enquiryID))
		return err
	}

	logger.Info("Enquiry deleted", slog.String("enquiry_id", enquiryID), slog.String("deleted_by", userID))
	return nil
}
