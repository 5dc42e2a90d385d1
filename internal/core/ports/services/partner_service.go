package ports

import (
	"context"

	"github.com/firmbooks/firmbooks_backend/internal/dto"
)

// PartnerSvcFacade defines operations on partners and their payments.
type PartnerSvcFacade interface {
	CreatePartner(ctx context.Context, userID string, req dto.CreatePartnerRequest) (*dto.PartnerResponse, error)
	GetPartnerByID(ctx context.Context, partnerID string) (*dto.PartnerResponse, error)
	ListPartners(ctx context.Context) (*dto.ListPartnersResponse, error)
	UpdatePartner(ctx context.Context, userID string, partnerID string, req dto.UpdatePartnerRequest) (*dto.PartnerResponse, error)
	RecordPayment(ctx context.Context, userID string, partnerID string, req dto.RecordPaymentRequest) (*dto.PaymentResponse, error)
}
