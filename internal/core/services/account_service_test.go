package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/firmbooks/firmbooks_backend/internal/apperrors"
	"github.com/firmbooks/firmbooks_backend/internal/core/domain"
	"github.com/firmbooks/firmbooks_backend/internal/core/services"
	"github.com/firmbooks/firmbooks_backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AccountServiceTestSuite struct {
	suite.Suite
	mockRepo    *MockAccountRepository
	mockTxnRepo *MockFirmTransactionRepository
	service     *services.AccountService
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockAccountRepository)
	suite.mockTxnRepo = new(MockFirmTransactionRepository)
	suite.service = services.NewAccountService(suite.mockRepo, suite.mockTxnRepo)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_Success() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		Name:           "Main Cash",
		Kind:           "cash",
		OpeningBalance: decimal.NewFromInt(1000),
	}

	suite.mockRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()

	resp, err := suite.service.CreateAccount(ctx, "owner", req)

	suite.Require().NoError(err)
	suite.Require().NotNil(resp)
	suite.NotEmpty(resp.AccountID)
	suite.Equal("Main Cash", resp.Name)
	suite.Equal("cash", resp.Kind)
	suite.True(resp.IsActive)
	suite.True(resp.OpeningBalance.Equal(decimal.NewFromInt(1000)))
	// No transactions yet, so the fold is exactly the opening balance.
	suite.True(resp.CurrentBalance.Equal(decimal.NewFromInt(1000)))
	suite.WithinDuration(time.Now(), resp.CreatedAt, time.Second)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_NegativeOpeningBalance() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		Name:           "Bad",
		Kind:           "cash",
		OpeningBalance: decimal.NewFromInt(-5),
	}

	resp, err := suite.service.CreateAccount(ctx, "owner", req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(resp)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestGetAccountByID_FoldsBalance() {
	ctx := context.Background()
	account := &domain.Account{
		AccountID:      "acc-1",
		Name:           "HDFC Current",
		Kind:           domain.Bank,
		OpeningBalance: decimal.NewFromInt(1000),
		IsActive:       true,
	}
	jan10 := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	jan12 := time.Date(2024, 1, 12, 0, 0, 0, 0, time.UTC)

	suite.mockRepo.On("FindAccountByID", ctx, "acc-1").Return(account, nil).Once()
	suite.mockTxnRepo.On("ListAllByAccountID", ctx, "acc-1").Return([]domain.FirmTransaction{
		{TransactionID: "t1", AccountID: "acc-1", Type: domain.PartnerDeposit, Amount: decimal.NewFromInt(500), TxnDate: jan10},
		{TransactionID: "t2", AccountID: "acc-1", Type: domain.Expense, Amount: decimal.NewFromInt(300), TxnDate: jan12},
	}, nil).Once()

	resp, err := suite.service.GetAccountByID(ctx, "acc-1")

	suite.Require().NoError(err)
	suite.True(resp.CurrentBalance.Equal(decimal.NewFromInt(1200)), "expected 1200, got %s", resp.CurrentBalance)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_KeepsOpeningBalance() {
	ctx := context.Background()
	account := &domain.Account{
		AccountID:      "acc-1",
		Name:           "Old Name",
		Kind:           domain.Cash,
		OpeningBalance: decimal.NewFromInt(750),
		IsActive:       true,
	}
	newName := "New Name"

	suite.mockRepo.On("FindAccountByID", ctx, "acc-1").Return(account, nil).Once()
	suite.mockRepo.On("UpdateAccount", ctx, mock.MatchedBy(func(a domain.Account) bool {
		return a.Name == newName && a.OpeningBalance.Equal(decimal.NewFromInt(750))
	})).Return(nil).Once()
	suite.mockTxnRepo.On("ListAllByAccountID", ctx, "acc-1").Return([]domain.FirmTransaction{}, nil).Once()

	resp, err := suite.service.UpdateAccount(ctx, "owner", "acc-1", dto.UpdateAccountRequest{Name: &newName})

	suite.Require().NoError(err)
	suite.Equal(newName, resp.Name)
	suite.True(resp.OpeningBalance.Equal(decimal.NewFromInt(750)))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestListAccounts_Error() {
	ctx := context.Background()
	suite.mockRepo.On("ListAccounts", ctx, false).Return(nil, fmt.Errorf("db down")).Once()

	resp, err := suite.service.ListAccounts(ctx, dto.ListAccountsParams{})

	suite.Require().Error(err)
	suite.Nil(resp)
}

func (suite *AccountServiceTestSuite) TestDeactivateAccount_Success() {
	ctx := context.Background()
	suite.mockRepo.On("DeactivateAccount", ctx, "acc-1", "owner", mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.DeactivateAccount(ctx, "owner", "acc-1")

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
