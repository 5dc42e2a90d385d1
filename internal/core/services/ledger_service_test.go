package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/firmbooks/firmbooks_backend/internal/apperrors"
	"github.com/firmbooks/firmbooks_backend/internal/core/domain"
	"github.com/firmbooks/firmbooks_backend/internal/core/services"
	"github.com/firmbooks/firmbooks_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type LedgerServiceTestSuite struct {
	suite.Suite
	mockTxnRepo     *MockFirmTransactionRepository
	mockAccountRepo *MockAccountRepository
	mockPartnerRepo *MockPartnerRepository
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockFirmTransactionRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockPartnerRepo = new(MockPartnerRepository)
}

func (suite *LedgerServiceTestSuite) newService(caps domain.Capabilities) *services.LedgerService {
	return services.NewLedgerService(suite.mockTxnRepo, suite.mockAccountRepo, suite.mockPartnerRepo, caps)
}

func (suite *LedgerServiceTestSuite) testAccount() *domain.Account {
	return &domain.Account{
		AccountID:      "acc-1",
		Name:           "Main Cash",
		Kind:           domain.Cash,
		OpeningBalance: decimal.NewFromInt(1000),
		IsActive:       true,
	}
}

func txnOn(id string, typ domain.TransactionType, amount int64, date time.Time) domain.FirmTransaction {
	return domain.FirmTransaction{
		TransactionID: id,
		AccountID:     "acc-1",
		Type:          typ,
		Amount:        decimal.NewFromInt(amount),
		TxnDate:       date,
		AuditFields:   domain.AuditFields{CreatedAt: date},
	}
}

// --- Capability gate ---

func (suite *LedgerServiceTestSuite) TestUpdateTransaction_EditDisabled() {
	ctx := context.Background()
	service := suite.newService(domain.Capabilities{AllowEdit: false, AllowDelete: true})

	desc := "changed"
	resp, err := service.UpdateTransaction(ctx, "owner", "txn-1", dto.UpdateTransactionRequest{Description: &desc})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.Nil(resp)

	// The gate fires before the repository is consulted at all.
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "FindTransactionByID", mock.Anything, mock.Anything)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "UpdateTransaction", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestDeleteTransaction_DeleteDisabled() {
	ctx := context.Background()
	service := suite.newService(domain.Capabilities{AllowEdit: true, AllowDelete: false})

	resp, err := service.DeleteTransaction(ctx, "owner", "txn-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.Nil(resp)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "FindTransactionByID", mock.Anything, mock.Anything)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "DeleteTransaction", mock.Anything, mock.Anything)
}

// --- Create ---

func (suite *LedgerServiceTestSuite) TestCreateTransaction_Success() {
	ctx := context.Background()
	service := suite.newService(domain.Capabilities{})
	account := suite.testAccount()

	req := dto.CreateTransactionRequest{
		AccountID: "acc-1",
		Type:      string(domain.Income),
		Amount:    decimal.NewFromInt(500),
		TxnDate:   "2024-01-10",
	}

	suite.mockAccountRepo.On("FindAccountByID", ctx, "acc-1").Return(account, nil)
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.FirmTransaction")).Return(nil).Once()
	suite.mockTxnRepo.On("ListAllByAccountID", ctx, "acc-1").Return([]domain.FirmTransaction{
		txnOn("txn-1", domain.Income, 500, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)),
	}, nil).Once()

	resp, err := service.CreateTransaction(ctx, "owner", req)

	suite.Require().NoError(err)
	suite.Require().NotNil(resp)
	suite.Require().NotNil(resp.Transaction)
	suite.NotEmpty(resp.Transaction.TransactionID)
	suite.Equal("Income", resp.Transaction.TypeLabel)
	suite.True(resp.Transaction.SignedAmount.Equal(decimal.NewFromInt(500)))
	suite.True(resp.CurrentBalance.Equal(decimal.NewFromInt(1500)))
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestCreateTransaction_UnknownType() {
	ctx := context.Background()
	service := suite.newService(domain.Capabilities{})

	req := dto.CreateTransactionRequest{
		AccountID: "acc-1",
		Type:      "mystery_type",
		Amount:    decimal.NewFromInt(10),
		TxnDate:   "2024-01-10",
	}

	resp, err := service.CreateTransaction(ctx, "owner", req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(resp)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestCreateTransaction_InactiveAccount() {
	ctx := context.Background()
	service := suite.newService(domain.Capabilities{})
	account := suite.testAccount()
	account.IsActive = false

	suite.mockAccountRepo.On("FindAccountByID", ctx, "acc-1").Return(account, nil).Once()

	req := dto.CreateTransactionRequest{
		AccountID: "acc-1",
		Type:      string(domain.Expense),
		Amount:    decimal.NewFromInt(10),
		TxnDate:   "2024-01-10",
	}

	resp, err := service.CreateTransaction(ctx, "owner", req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(resp)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

// --- Delete recomputes the balance from what remains ---

func (suite *LedgerServiceTestSuite) TestDeleteTransaction_BalanceRefolded() {
	ctx := context.Background()
	service := suite.newService(domain.Capabilities{AllowEdit: true, AllowDelete: true})
	account := suite.testAccount()

	jan10 := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	jan12 := time.Date(2024, 1, 12, 0, 0, 0, 0, time.UTC)
	expense := txnOn("txn-exp", domain.Expense, 300, jan12)

	suite.mockTxnRepo.On("FindTransactionByID", ctx, "txn-exp").Return(&expense, nil).Once()
	suite.mockTxnRepo.On("DeleteTransaction", ctx, "txn-exp").Return(nil).Once()
	suite.mockAccountRepo.On("FindAccountByID", ctx, "acc-1").Return(account, nil).Once()
	// Remaining set after the delete: 1000 + 500 - 100 = 1400.
	suite.mockTxnRepo.On("ListAllByAccountID", ctx, "acc-1").Return([]domain.FirmTransaction{
		txnOn("txn-dep", domain.PartnerDeposit, 500, jan10),
		txnOn("txn-wd", domain.PartnerWithdrawal, 100, jan12),
	}, nil).Once()

	resp, err := service.DeleteTransaction(ctx, "owner", "txn-exp")

	suite.Require().NoError(err)
	suite.Require().NotNil(resp)
	suite.Nil(resp.Transaction)
	suite.Equal("acc-1", resp.AccountID)
	suite.True(resp.CurrentBalance.Equal(decimal.NewFromInt(1400)), "expected 1400, got %s", resp.CurrentBalance)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

// --- Ledger page ---

func (suite *LedgerServiceTestSuite) TestGetAccountLedger_FoldsFullSetNotPage() {
	ctx := context.Background()
	service := suite.newService(domain.Capabilities{})
	account := suite.testAccount()

	jan10 := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	jan12 := time.Date(2024, 1, 12, 0, 0, 0, 0, time.UTC)
	all := []domain.FirmTransaction{
		txnOn("txn-1", domain.PartnerDeposit, 500, jan10),
		txnOn("txn-2", domain.Expense, 300, jan12),
	}

	suite.mockAccountRepo.On("FindAccountByID", ctx, "acc-1").Return(account, nil).Once()
	// The page holds a single row but the fold still covers everything.
	suite.mockTxnRepo.On("ListByAccountID", ctx, "acc-1", 1, "").Return(all[1:], "token-next", nil).Once()
	suite.mockTxnRepo.On("ListAllByAccountID", ctx, "acc-1").Return(all, nil).Once()

	resp, err := service.GetAccountLedger(ctx, "acc-1", dto.ListTransactionsParams{Limit: 1})

	suite.Require().NoError(err)
	suite.Len(resp.Transactions, 1)
	suite.Equal("token-next", resp.NextToken)
	suite.True(resp.CurrentBalance.Equal(decimal.NewFromInt(1200)))
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestGetTransactionByID_NotFound() {
	ctx := context.Background()
	service := suite.newService(domain.Capabilities{})
	missingID := uuid.NewString()

	suite.mockTxnRepo.On("FindTransactionByID", ctx, missingID).Return(nil, apperrors.ErrNotFound).Once()

	resp, err := service.GetTransactionByID(ctx, missingID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(resp)
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
