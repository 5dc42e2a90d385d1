package repositories

import (
	"context"

	"github.com/firmbooks/firmbooks_backend/internal/core/domain"
)

// PartnerReader defines read operations for partner data
type PartnerReader interface {
	// FindPartnerByID retrieves a specific partner.
	FindPartnerByID(ctx context.Context, partnerID string) (*domain.Partner, error)

	// FindPartnersByIDs retrieves multiple partners by their IDs.
	FindPartnersByIDs(ctx context.Context, partnerIDs []string) (map[string]domain.Partner, error)

	// ListPartners retrieves all partners ordered by name.
	ListPartners(ctx context.Context) ([]domain.Partner, error)

	// FindMahajansByIDs retrieves mahajans by their IDs for name resolution.
	FindMahajansByIDs(ctx context.Context, mahajanIDs []string) (map[string]domain.Mahajan, error)
}

// PartnerWriter defines write operations for partner data
type PartnerWriter interface {
	// SavePartner persists a new partner.
	SavePartner(ctx context.Context, partner domain.Partner) error

	// UpdatePartner updates a partner's contact details.
	UpdatePartner(ctx context.Context, partner domain.Partner) error
}

// PartnerRepositoryFacade combines all partner repository interfaces
type PartnerRepositoryFacade interface {
	PartnerReader
	PartnerWriter
}

// PartnerTransactionRepositoryFacade defines operations on partner payments.
type PartnerTransactionRepositoryFacade interface {
	// SavePayment inserts a partner payment and bumps the partner's
	// total_invested atomically, in one database transaction.
	SavePayment(ctx context.Context, txn domain.PartnerTransaction) error

	// ListByPartnerID retrieves a partner's payments ordered by payment date
	// descending, creation time descending.
	ListByPartnerID(ctx context.Context, partnerID string) ([]domain.PartnerTransaction, error)
}
