package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/firmbooks/firmbooks_backend/internal/apperrors"
	portssvc "github.com/firmbooks/firmbooks_backend/internal/core/ports/services"
	"github.com/firmbooks/firmbooks_backend/internal/dto"
	"github.com/firmbooks/firmbooks_backend/internal/handlers"
	"github.com/firmbooks/firmbooks_backend/internal/middleware"
	"github.com/firmbooks/firmbooks_backend/internal/platform/validation"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*dto.MutationResponse, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.MutationResponse), args.Error(1)
}
func (m *MockLedgerService) GetTransactionByID(ctx context.Context, transactionID string) (*dto.TransactionResponse, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.TransactionResponse), args.Error(1)
}
func (m *MockLedgerService) UpdateTransaction(ctx context.Context, userID string, transactionID string, req dto.UpdateTransactionRequest) (*dto.MutationResponse, error) {
	args := m.Called(ctx, userID, transactionID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.MutationResponse), args.Error(1)
}
func (m *MockLedgerService) DeleteTransaction(ctx context.Context, userID string, transactionID string) (*dto.MutationResponse, error) {
	args := m.Called(ctx, userID, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.MutationResponse), args.Error(1)
}
func (m *MockLedgerService) GetAccountLedger(ctx context.Context, accountID string, params dto.ListTransactionsParams) (*dto.AccountLedgerResponse, error) {
	args := m.Called(ctx, accountID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AccountLedgerResponse), args.Error(1)
}
func (m *MockLedgerService) GetAccountBalance(ctx context.Context, accountID string) (decimal.Decimal, error) {
	args := m.Called(ctx, accountID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

// --- Test Suite ---
type TransactionHandlerTestSuite struct {
	suite.Suite
	router            *gin.Engine
	mockLedgerService *MockLedgerService
}

func (suite *TransactionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.Require().NoError(validation.RegisterCustomValidators())
	suite.router = gin.New()

	suite.mockLedgerService = new(MockLedgerService)

	v1 := suite.router.Group("/api/v1", middleware.ActingUserMiddleware())
	handlers.RegisterTransactionRoutes(v1, suite.mockLedgerService)
}

func (suite *TransactionHandlerTestSuite) doJSON(method, url string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, _ := http.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *TransactionHandlerTestSuite) TestGetAccountLedger_Success() {
	accountID := uuid.NewString()
	limit := 10

	expectedTransactions := []dto.TransactionResponse{
		{
			TransactionID: uuid.NewString(),
			AccountID:     accountID,
			Type:          "income",
			TypeLabel:     "Income",
			Amount:        decimal.NewFromInt(100),
			SignedAmount:  decimal.NewFromInt(100),
			TxnDate:       "2026-03-02",
			CreatedAt:     time.Now(),
		},
		{
			TransactionID: uuid.NewString(),
			AccountID:     accountID,
			Type:          "expense",
			TypeLabel:     "Expense",
			Amount:        decimal.NewFromInt(40),
			SignedAmount:  decimal.NewFromInt(-40),
			TxnDate:       "2026-03-01",
			CreatedAt:     time.Now().Add(-time.Hour),
		},
	}
	expectedResponse := &dto.AccountLedgerResponse{
		Account:        dto.AccountResponse{AccountID: accountID, Name: "Main Cash", Kind: "cash"},
		Transactions:   expectedTransactions,
		CurrentBalance: decimal.NewFromInt(60),
	}

	suite.mockLedgerService.On("GetAccountLedger",
		mock.Anything,
		accountID,
		mock.MatchedBy(func(p dto.ListTransactionsParams) bool {
			return p.Limit == limit && p.NextToken == ""
		}),
	).Return(expectedResponse, nil).Once()

	url := fmt.Sprintf("/api/v1/accounts/%s/ledger?limit=%d", accountID, limit)
	w := suite.doJSON(http.MethodGet, url, nil)

	suite.Equal(http.StatusOK, w.Code)

	var responseBody dto.AccountLedgerResponse
	err := json.Unmarshal(w.Body.Bytes(), &responseBody)
	suite.NoError(err, "Failed to unmarshal response body")
	suite.Len(responseBody.Transactions, len(expectedTransactions))
	suite.True(responseBody.CurrentBalance.Equal(decimal.NewFromInt(60)))
	if len(responseBody.Transactions) == len(expectedTransactions) {
		suite.Equal(expectedTransactions[0].TransactionID, responseBody.Transactions[0].TransactionID)
		suite.Equal(expectedTransactions[1].TransactionID, responseBody.Transactions[1].TransactionID)
	}

	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_Success() {
	accountID := uuid.NewString()
	txnID := uuid.NewString()
	reqBody := dto.CreateTransactionRequest{
		AccountID: accountID,
		Type:      "income",
		Amount:    decimal.NewFromInt(250),
		TxnDate:   "2026-04-10",
	}
	expected := &dto.MutationResponse{
		Transaction: &dto.TransactionResponse{
			TransactionID: txnID,
			AccountID:     accountID,
			Type:          "income",
			TypeLabel:     "Income",
			Amount:        decimal.NewFromInt(250),
			SignedAmount:  decimal.NewFromInt(250),
			TxnDate:       "2026-04-10",
		},
		AccountID:      accountID,
		CurrentBalance: decimal.NewFromInt(250),
	}

	suite.mockLedgerService.On("CreateTransaction",
		mock.Anything,
		"owner", // default acting user when no header is sent
		mock.MatchedBy(func(r dto.CreateTransactionRequest) bool {
			return r.AccountID == accountID && r.Type == "income"
		}),
	).Return(expected, nil).Once()

	w := suite.doJSON(http.MethodPost, "/api/v1/transactions", reqBody)

	suite.Equal(http.StatusCreated, w.Code)

	var responseBody dto.MutationResponse
	err := json.Unmarshal(w.Body.Bytes(), &responseBody)
	suite.NoError(err)
	suite.Equal(txnID, responseBody.Transaction.TransactionID)
	suite.True(responseBody.CurrentBalance.Equal(decimal.NewFromInt(250)))

	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_BadDate() {
	reqBody := dto.CreateTransactionRequest{
		AccountID: uuid.NewString(),
		Type:      "income",
		Amount:    decimal.NewFromInt(10),
		TxnDate:   "10-04-2026",
	}

	w := suite.doJSON(http.MethodPost, "/api/v1/transactions", reqBody)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockLedgerService.AssertNotCalled(suite.T(), "CreateTransaction")
}

func (suite *TransactionHandlerTestSuite) TestUpdateTransaction_Forbidden() {
	txnID := uuid.NewString()
	newDesc := "corrected entry"
	reqBody := dto.UpdateTransactionRequest{Description: &newDesc}

	suite.mockLedgerService.On("UpdateTransaction",
		mock.Anything,
		"owner",
		txnID,
		mock.AnythingOfType("dto.UpdateTransactionRequest"),
	).Return(nil, fmt.Errorf("%w: transaction edits are disabled", apperrors.ErrForbidden)).Once()

	w := suite.doJSON(http.MethodPut, "/api/v1/transactions/"+txnID, reqBody)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestDeleteTransaction_Forbidden() {
	txnID := uuid.NewString()

	suite.mockLedgerService.On("DeleteTransaction",
		mock.Anything,
		"owner",
		txnID,
	).Return(nil, fmt.Errorf("%w: transaction deletes are disabled", apperrors.ErrForbidden)).Once()

	w := suite.doJSON(http.MethodDelete, "/api/v1/transactions/"+txnID, nil)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestGetTransaction_NotFound() {
	txnID := uuid.NewString()

	suite.mockLedgerService.On("GetTransactionByID",
		mock.Anything,
		txnID,
	).Return(nil, apperrors.ErrNotFound).Once()

	w := suite.doJSON(http.MethodGet, "/api/v1/transactions/"+txnID, nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockLedgerService.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestTransactionHandler(t *testing.T) {
	suite.Run(t, new(TransactionHandlerTestSuite))
}
