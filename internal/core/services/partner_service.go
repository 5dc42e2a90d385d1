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

// PartnerService manages partners and their payment records.
type PartnerService struct {
	partnerRepo    portsrepo.PartnerRepositoryFacade
	partnerTxnRepo portsrepo.PartnerTransactionRepositoryFacade
}

func NewPartnerService(partnerRepo portsrepo.PartnerRepositoryFacade, partnerTxnRepo portsrepo.PartnerTransactionRepositoryFacade) *PartnerService {
	return &PartnerService{
		partnerRepo:    partnerRepo,
		partnerTxnRepo: partnerTxnRepo,
	}
}

func (s *PartnerService) CreatePartner(ctx context.Context, userID string, req dto.CreatePartnerRequest) (*dto.PartnerResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now()
	partner := domain.Partner{
		PartnerID:     uuid.NewString(),
		Name:          req.Name,
		Phone:         req.Phone,
		Email:         req.Email,
		Address:       req.Address,
		TotalInvested: decimal.Zero,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.partnerRepo.SavePartner(ctx, partner); err != nil {
		logger.Error("Failed to save partner in repository", slog.String("error", err.Error()), slog.String("partner_id", partner.PartnerID))
		return nil, err
	}

	logger.Info("Partner created", slog.String("partner_id", partner.PartnerID))
	resp := dto.ToPartnerResponse(&partner)
	return &resp, nil
}

func (s *PartnerService) GetPartnerByID(ctx context.Context, partnerID string) (*dto.PartnerResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	partner, err := s.partnerRepo.FindPartnerByID(ctx, partnerID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find partner by ID in repository", slog.String("error", err.Error()), slog.String("partner_id", partnerID))
		}
		return nil, err
	}

	resp := dto.ToPartnerResponse(partner)
	return &resp, nil
}

func (s *PartnerService) ListPartners(ctx context.Context) (*dto.ListPartnersResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	partners, err := s.partnerRepo.ListPartners(ctx)
	if err != nil {
		logger.Error("Failed to list partners from repository", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list partners: %w", err)
	}

	resp := dto.ListPartnersResponse{Partners: make([]dto.PartnerResponse, 0, len(partners))}
	for i := range partners {
		resp.Partners = append(resp.Partners, dto.ToPartnerResponse(&partners[i]))
	}
	return &resp, nil
}

func (s *PartnerService) UpdatePartner(ctx context.Context, userID string, partnerID string, req dto.UpdatePartnerRequest) (*dto.PartnerResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	partner, err := s.partnerRepo.FindPartnerByID(ctx, partnerID)
	if err != nil {
		return nil, err
	}

	// TotalInvested is owned by payment recording; contact edits never touch it.
	if req.Name != nil {
		partner.Name = *req.Name
	}
	if req.Phone != nil {
		partner.Phone = *req.Phone
	}
	if req.Email != nil {
		partner.Email = *req.Email
	}
	if req.Address != nil {
		partner.Address = *req.Address
	}
	partner.LastUpdatedAt = time.Now()
	partner.LastUpdatedBy = userID

	if err := s.partnerRepo.UpdatePartner(ctx, *partner); err != nil {
		logger.Error("Failed to update partner in repository", slog.String("error", err.Error()), slog.String("partner_id", partnerID))
		return nil, err
	}

	logger.Info("Partner updated", slog.String("partner_id", partnerID))
	resp := dto.ToPartnerResponse(partner)
	return &resp, nil
}

func (s *PartnerService) RecordPayment(ctx context.Context, userID string, partnerID string, req dto.RecordPaymentRequest) (*dto.PaymentResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: payment amount must be positive", apperrors.ErrValidation)
	}

	paymentDate, err := time.Parse(dto.TxnDateFormat, req.PaymentDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid payment date %q", apperrors.ErrValidation, req.PaymentDate)
	}

	if _, err := s.partnerRepo.FindPartnerByID(ctx, partnerID); err != nil {
		return nil, err
	}
	if req.MahajanID != nil {
		mahajans, err := s.partnerRepo.FindMahajansByIDs(ctx, []string{*req.MahajanID})
		if err != nil {
			return nil, err
		}
		if _, ok := mahajans[*req.MahajanID]; !ok {
			return nil, fmt.Errorf("%w: mahajan %s", apperrors.ErrNotFound, *req.MahajanID)
		}
	}

	now := time.Now()
	txn := domain.PartnerTransaction{
		TransactionID: uuid.NewString(),
		PartnerID:     partnerID,
		MahajanID:     req.MahajanID,
		Amount:        req.Amount,
		PaymentMode:   domain.PaymentMode(req.PaymentMode),
		Notes:         req.Notes,
		PaymentDate:   paymentDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	// SavePayment bumps the partner's invested total in the same database
	// transaction as the insert.
	if err := s.partnerTxnRepo.SavePayment(ctx, txn); err != nil {
		logger.Error("Failed to save partner payment in repository", slog.String("error", err.Error()), slog.String("partner_id", partnerID))
		return nil, err
	}

	logger.Info("Partner payment recorded",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("partner_id", partnerID),
		slog.String("payment_mode", string(txn.PaymentMode)),
	)

	resp := dto.ToPaymentResponse(txn)
	return &resp, nil
}
