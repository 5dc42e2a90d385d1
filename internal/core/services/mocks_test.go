package services_test

import (
	"context"
	"time"

	"github.com/firmbooks/firmbooks_backend/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// MockAccountRepository is a mock type for the AccountRepositoryFacade interface
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context, includeInactive bool) ([]domain.Account, error) {
	args := m.Called(ctx, includeInactive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) DeactivateAccount(ctx context.Context, accountID string, userID string, now time.Time) error {
	args := m.Called(ctx, accountID, userID, now)
	return args.Error(0)
}

// MockFirmTransactionRepository is a mock type for the FirmTransactionRepositoryFacade interface
type MockFirmTransactionRepository struct {
	mock.Mock
}

func (m *MockFirmTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.FirmTransaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FirmTransaction), args.Error(1)
}

func (m *MockFirmTransactionRepository) ListByAccountID(ctx context.Context, accountID string, limit int, nextToken string) ([]domain.FirmTransaction, string, error) {
	args := m.Called(ctx, accountID, limit, nextToken)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).([]domain.FirmTransaction), args.String(1), args.Error(2)
}

func (m *MockFirmTransactionRepository) ListAllByAccountID(ctx context.Context, accountID string) ([]domain.FirmTransaction, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FirmTransaction), args.Error(1)
}

func (m *MockFirmTransactionRepository) ListByPartnerID(ctx context.Context, partnerID string) ([]domain.FirmTransaction, error) {
	args := m.Called(ctx, partnerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FirmTransaction), args.Error(1)
}

func (m *MockFirmTransactionRepository) SaveTransaction(ctx context.Context, txn domain.FirmTransaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockFirmTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.FirmTransaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockFirmTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	args := m.Called(ctx, transactionID)
	return args.Error(0)
}

// MockPartnerRepository is a mock type for the PartnerRepositoryFacade interface
type MockPartnerRepository struct {
	mock.Mock
}

func (m *MockPartnerRepository) FindPartnerByID(ctx context.Context, partnerID string) (*domain.Partner, error) {
	args := m.Called(ctx, partnerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Partner), args.Error(1)
}

func (m *MockPartnerRepository) FindPartnersByIDs(ctx context.Context, partnerIDs []string) (map[string]domain.Partner, error) {
	args := m.Called(ctx, partnerIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Partner), args.Error(1)
}

func (m *MockPartnerRepository) ListPartners(ctx context.Context) ([]domain.Partner, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Partner), args.Error(1)
}

func (m *MockPartnerRepository) FindMahajansByIDs(ctx context.Context, mahajanIDs []string) (map[string]domain.Mahajan, error) {
	args := m.Called(ctx, mahajanIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Mahajan), args.Error(1)
}

func (m *MockPartnerRepository) SavePartner(ctx context.Context, partner domain.Partner) error {
	args := m.Called(ctx, partner)
	return args.Error(0)
}

func (m *MockPartnerRepository) UpdatePartner(ctx context.Context, partner domain.Partner) error {
	args := m.Called(ctx, partner)
	return args.Error(0)
}

// MockPartnerTransactionRepository is a mock type for the PartnerTransactionRepositoryFacade interface
type MockPartnerTransactionRepository struct {
	mock.Mock
}

func (m *MockPartnerTransactionRepository) SavePayment(ctx context.Context, txn domain.PartnerTransaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockPartnerTransactionRepository) ListByPartnerID(ctx context.Context, partnerID string) ([]domain.PartnerTransaction, error) {
	args := m.Called(ctx, partnerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PartnerTransaction), args.Error(1)
}
