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
	"github.com/firmbooks/firmbooks_backend/internal/utils/ledger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountService manages firm accounts. Every balance it reports is folded
// from the account's full transaction set at call time.
type AccountService struct {
	accountRepo portsrepo.AccountRepositoryFacade
	txnRepo     portsrepo.FirmTransactionReader
}

func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade, txnRepo portsrepo.FirmTransactionReader) *AccountService {
	return &AccountService{
		accountRepo: accountRepo,
		txnRepo:     txnRepo,
	}
}

func (s *AccountService) CreateAccount(ctx context.Context, userID string, req dto.CreateAccountRequest) (*dto.AccountResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.OpeningBalance.IsNegative() {
		return nil, fmt.Errorf("%w: opening balance cannot be negative", apperrors.ErrValidation)
	}

	now := time.Now()
	account := domain.Account{
		AccountID:      uuid.NewString(),
		Name:           req.Name,
		Kind:           domain.AccountKind(req.Kind),
		OpeningBalance: req.OpeningBalance,
		BankName:       req.BankName,
		BankAccountNo:  req.BankAccountNo,
		Description:    req.Description,
		IsActive:       true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		logger.Error("Failed to save account in repository", slog.String("error", err.Error()), slog.String("account_id", account.AccountID))
		return nil, err
	}

	logger.Info("Account created", slog.String("account_id", account.AccountID), slog.String("kind", string(account.Kind)))

	// A fresh account has no transactions, so the fold is just the opening balance.
	resp := dto.ToAccountResponse(&account, account.OpeningBalance)
	return &resp, nil
}

func (s *AccountService) GetAccountByID(ctx context.Context, accountID string) (*dto.AccountResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find account by ID in repository", slog.String("error", err.Error()), slog.String("account_id", accountID))
		}
		return nil, err
	}

	balance, err := s.foldBalance(ctx, account)
	if err != nil {
		return nil, err
	}

	resp := dto.ToAccountResponse(account, balance)
	return &resp, nil
}

func (s *AccountService) ListAccounts(ctx context.Context, params dto.ListAccountsParams) (*dto.ListAccountsResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	accounts, err := s.accountRepo.ListAccounts(ctx, params.IncludeInactive)
	if err != nil {
		logger.Error("Failed to list accounts from repository", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	resp := dto.ListAccountsResponse{Accounts: make([]dto.AccountResponse, 0, len(accounts))}
	for i := range accounts {
		balance, err := s.foldBalance(ctx, &accounts[i])
		if err != nil {
			return nil, err
		}
		resp.Accounts = append(resp.Accounts, dto.ToAccountResponse(&accounts[i], balance))
	}

	logger.Debug("Accounts listed", slog.Int("count", len(resp.Accounts)))
	return &resp, nil
}

func (s *AccountService) UpdateAccount(ctx context.Context, userID string, accountID string, req dto.UpdateAccountRequest) (*dto.AccountResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	// Kind and opening balance stay fixed for the life of the account.
	if req.Name != nil {
		account.Name = *req.Name
	}
	if req.BankName != nil {
		account.BankName = *req.BankName
	}
	if req.BankAccountNo != nil {
		account.BankAccountNo = *req.BankAccountNo
	}
	if req.Description != nil {
		account.Description = *req.Description
	}
	if req.IsActive != nil {
		account.IsActive = *req.IsActive
	}
	account.LastUpdatedAt = time.Now()
	account.LastUpdatedBy = userID

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		logger.Error("Failed to update account in repository", slog.String("error", err.Error()), slog.String("account_id", accountID))
		return nil, err
	}

	balance, err := s.foldBalance(ctx, account)
	if err != nil {
		return nil, err
	}

	logger.Info("Account updated", slog.String("account_id", accountID))
	resp := dto.ToAccountResponse(account, balance)
	return &resp, nil
}

func (s *AccountService) DeactivateAccount(ctx context.Context, userID string, accountID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	err := s.accountRepo.DeactivateAccount(ctx, accountID, userID, time.Now())
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrValidation) {
			logger.Error("Failed to deactivate account in repository", slog.String("error", err.Error()), slog.String("account_id", accountID))
		}
		return err
	}

	logger.Info("Account deactivated", slog.String("account_id", accountID))
	return nil
}

// foldBalance recomputes the account balance from every stored transaction.
// The rescan is deliberate: there is no incremental path and no stored total.
func (s *AccountService) foldBalance(ctx context.Context, account *domain.Account) (decimal.Decimal, error) {
	txns, err := s.txnRepo.ListAllByAccountID(ctx, account.AccountID)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to load transactions for balance fold", slog.String("error", err.Error()), slog.String("account_id", account.AccountID))
		return decimal.Zero, fmt.Errorf("failed to compute balance for account %s: %w", account.AccountID, err)
	}
	return ledger.Fold(account.OpeningBalance, txns), nil
}
