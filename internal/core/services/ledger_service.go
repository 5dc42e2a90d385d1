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

// LedgerService records and mutates firm transactions and derives account
// balances. Edit and delete are gated by externally-owned capability flags;
// the gate fires before any repository access.
type LedgerService struct {
	txnRepo     portsrepo.FirmTransactionRepositoryFacade
	accountRepo portsrepo.AccountReader
	partnerRepo portsrepo.PartnerReader
	caps        domain.Capabilities
}

func NewLedgerService(txnRepo portsrepo.FirmTransactionRepositoryFacade, accountRepo portsrepo.AccountReader, partnerRepo portsrepo.PartnerReader, caps domain.Capabilities) *LedgerService {
	return &LedgerService{
		txnRepo:     txnRepo,
		accountRepo: accountRepo,
		partnerRepo: partnerRepo,
		caps:        caps,
	}
}

// knownTransactionType reports whether t is one of the tags new writes may use.
// Reads stay tolerant of unknown tags; writes do not introduce them.
func knownTransactionType(t domain.TransactionType) bool {
	switch t {
	case domain.PartnerDeposit, domain.PartnerWithdrawal, domain.Expense, domain.Income, domain.Adjustment:
		return true
	}
	return false
}

func (s *LedgerService) CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*dto.MutationResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	txnType := domain.TransactionType(req.Type)
	if !knownTransactionType(txnType) {
		return nil, fmt.Errorf("%w: unknown transaction type %q", apperrors.ErrValidation, req.Type)
	}

	txnDate, err := time.Parse(dto.TxnDateFormat, req.TxnDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid transaction date %q", apperrors.ErrValidation, req.TxnDate)
	}

	account, err := s.accountRepo.FindAccountByID(ctx, req.AccountID)
	if err != nil {
		return nil, err
	}
	if !account.IsActive {
		return nil, fmt.Errorf("%w: account %s is inactive", apperrors.ErrValidation, account.AccountID)
	}

	if req.PartnerID != nil {
		if _, err := s.partnerRepo.FindPartnerByID(ctx, *req.PartnerID); err != nil {
			return nil, err
		}
	}

	now := time.Now()
	txn := domain.FirmTransaction{
		TransactionID: uuid.NewString(),
		AccountID:     req.AccountID,
		PartnerID:     req.PartnerID,
		Type:          txnType,
		Amount:        req.Amount,
		Description:   req.Description,
		TxnDate:       txnDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := txn.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		logger.Error("Failed to save transaction in repository", slog.String("error", err.Error()), slog.String("account_id", txn.AccountID))
		return nil, err
	}

	balance, err := s.foldBalance(ctx, account)
	if err != nil {
		return nil, err
	}

	logger.Info("Transaction created",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("account_id", txn.AccountID),
		slog.String("type", string(txn.Type)),
	)

	resp := dto.ToTransactionResponse(txn)
	return &dto.MutationResponse{
		Transaction:    &resp,
		AccountID:      account.AccountID,
		CurrentBalance: balance,
	}, nil
}

func (s *LedgerService) GetTransactionByID(ctx context.Context, transactionID string) (*dto.TransactionResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find transaction by ID in repository", slog.String("error", err.Error()), slog.String("transaction_id", transactionID))
		}
		return nil, err
	}

	resp := dto.ToTransactionResponse(*txn)
	return &resp, nil
}

func (s *LedgerService) UpdateTransaction(ctx context.Context, userID string, transactionID string, req dto.UpdateTransactionRequest) (*dto.MutationResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !s.caps.AllowEdit {
		return nil, fmt.Errorf("%w: transaction editing is disabled", apperrors.ErrForbidden)
	}

	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	if req.Type != nil {
		txnType := domain.TransactionType(*req.Type)
		if !knownTransactionType(txnType) {
			return nil, fmt.Errorf("%w: unknown transaction type %q", apperrors.ErrValidation, *req.Type)
		}
		txn.Type = txnType
	}
	if req.PartnerID != nil {
		if _, err := s.partnerRepo.FindPartnerByID(ctx, *req.PartnerID); err != nil {
			return nil, err
		}
		txn.PartnerID = req.PartnerID
	}
	if req.Amount != nil {
		txn.Amount = *req.Amount
	}
	if req.Description != nil {
		txn.Description = *req.Description
	}
	if req.TxnDate != nil {
		txnDate, err := time.Parse(dto.TxnDateFormat, *req.TxnDate)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid transaction date %q", apperrors.ErrValidation, *req.TxnDate)
		}
		txn.TxnDate = txnDate
	}
	if err := txn.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}
	txn.LastUpdatedAt = time.Now()
	txn.LastUpdatedBy = userID

	if err := s.txnRepo.UpdateTransaction(ctx, *txn); err != nil {
		logger.Error("Failed to update transaction in repository", slog.String("error", err.Error()), slog.String("transaction_id", transactionID))
		return nil, err
	}

	account, err := s.accountRepo.FindAccountByID(ctx, txn.AccountID)
	if err != nil {
		return nil, err
	}
	balance, err := s.foldBalance(ctx, account)
	if err != nil {
		return nil, err
	}

	logger.Info("Transaction updated", slog.String("transaction_id", transactionID), slog.String("account_id", txn.AccountID))

	resp := dto.ToTransactionResponse(*txn)
	return &dto.MutationResponse{
		Transaction:    &resp,
		AccountID:      txn.AccountID,
		CurrentBalance: balance,
	}, nil
}

func (s *LedgerService) DeleteTransaction(ctx context.Context, userID string, transactionID string) (*dto.MutationResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !s.caps.AllowDelete {
		return nil, fmt.Errorf("%w: transaction deletion is disabled", apperrors.ErrForbidden)
	}

	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	if err := s.txnRepo.DeleteTransaction(ctx, transactionID); err != nil {
		logger.Error("Failed to delete transaction in repository", slog.String("error", err.Error()), slog.String("transaction_id", transactionID))
		return nil, err
	}

	account, err := s.accountRepo.FindAccountByID(ctx, txn.AccountID)
	if err != nil {
		return nil, err
	}
	balance, err := s.foldBalance(ctx, account)
	if err != nil {
		return nil, err
	}

	logger.Info("Transaction deleted", slog.String("transaction_id", transactionID), slog.String("account_id", txn.AccountID), slog.String("deleted_by", userID))

	return &dto.MutationResponse{
		AccountID:      txn.AccountID,
		CurrentBalance: balance,
	}, nil
}

func (s *LedgerService) GetAccountLedger(ctx context.Context, accountID string, params dto.ListTransactionsParams) (*dto.AccountLedgerResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	txns, nextToken, err := s.txnRepo.ListByAccountID(ctx, accountID, params.Limit, params.NextToken)
	if err != nil {
		logger.Error("Failed to list transactions from repository", slog.String("error", err.Error()), slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	// The balance folds over the full set regardless of the requested page.
	balance, err := s.foldBalance(ctx, account)
	if err != nil {
		return nil, err
	}

	return &dto.AccountLedgerResponse{
		Account:        dto.ToAccountResponse(account, balance),
		Transactions:   dto.ToTransactionResponseSlice(txns),
		CurrentBalance: balance,
		NextToken:      nextToken,
	}, nil
}

func (s *LedgerService) GetAccountBalance(ctx context.Context, accountID string) (decimal.Decimal, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return decimal.Zero, err
	}
	return s.foldBalance(ctx, account)
}

func (s *LedgerService) foldBalance(ctx context.Context, account *domain.Account) (decimal.Decimal, error) {
	txns, err := s.txnRepo.ListAllByAccountID(ctx, account.AccountID)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to load transactions for balance fold", slog.String("error", err.Error()), slog.String("account_id", account.AccountID))
		return decimal.Zero, fmt.Errorf("failed to compute balance for account %s: %w", account.AccountID, err)
	}
	return ledger.Fold(account.OpeningBalance, txns), nil
}
