package repositories

import (
	"context"

	"github.com/firmbooks/firmbooks_backend/internal/core/domain"
)

// FirmTransactionReader defines read operations for firm transaction data.
// All listings are ordered by transaction date descending, creation time
// descending as the tie-break.
type FirmTransactionReader interface {
	// FindTransactionByID retrieves a single firm transaction.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.FirmTransaction, error)

	// ListByAccountID retrieves a page of an account's transactions plus the
	// token for the next page ("" when exhausted). limit <= 0 falls back to
	// the default page size of 50.
	ListByAccountID(ctx context.Context, accountID string, limit int, nextToken string) ([]domain.FirmTransaction, string, error)

	// ListAllByAccountID retrieves every transaction of an account, for
	// balance folding.
	ListAllByAccountID(ctx context.Context, accountID string) ([]domain.FirmTransaction, error)

	// ListByPartnerID retrieves firm transactions tagged with a partner as
	// counterparty.
	ListByPartnerID(ctx context.Context, partnerID string) ([]domain.FirmTransaction, error)
}

// FirmTransactionWriter defines write operations for firm transaction data
type FirmTransactionWriter interface {
	// SaveTransaction persists a new firm transaction.
	SaveTransaction(ctx context.Context, txn domain.FirmTransaction) error

	// UpdateTransaction updates an existing firm transaction.
	UpdateTransaction(ctx context.Context, txn domain.FirmTransaction) error

	// DeleteTransaction removes a firm transaction row.
	DeleteTransaction(ctx context.Context, transactionID string) error
}

// FirmTransactionRepositoryFacade combines all firm transaction repository interfaces
type FirmTransactionRepositoryFacade interface {
	FirmTransactionReader
	FirmTransactionWriter
}
