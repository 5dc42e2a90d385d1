package ports

import (
	"context"

	"github.com/firmbooks/firmbooks_backend/internal/dto"
)

// AccountSvcFacade defines operations on firm accounts.
type AccountSvcFacade interface {
	CreateAccount(ctx context.Context, userID string, req dto.CreateAccountRequest) (*dto.AccountResponse, error)
	GetAccountByID(ctx context.Context, accountID string) (*dto.AccountResponse, error)
	ListAccounts(ctx context.Context, params dto.ListAccountsParams) (*dto.ListAccountsResponse, error)
	UpdateAccount(ctx context.Context, userID string, accountID string, req dto.UpdateAccountRequest) (*dto.AccountResponse, error)
	DeactivateAccount(ctx context.Context, userID string, accountID string) error
}
