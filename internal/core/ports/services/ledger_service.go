package ports

import (
	"context"

	"github.com/firmbooks/firmbooks_backend/internal/dto"
	"github.com/shopspring/decimal"
)

// LedgerSvcFacade defines operations on firm transactions and account ledgers.
// Every mutation recomputes the owning account's balance from scratch before
// reporting it back.
type LedgerSvcFacade interface {
	CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*dto.MutationResponse, error)
	GetTransactionByID(ctx context.Context, transactionID string) (*dto.TransactionResponse, error)
	UpdateTransaction(ctx context.Context, userID string, transactionID string, req dto.UpdateTransactionRequest) (*dto.MutationResponse, error)
	DeleteTransaction(ctx context.Context, userID string, transactionID string) (*dto.MutationResponse, error)
	GetAccountLedger(ctx context.Context, accountID string, params dto.ListTransactionsParams) (*dto.AccountLedgerResponse, error)
	GetAccountBalance(ctx context.Context, accountID string) (decimal.Decimal, error)
}
