package dto

import (
	"time"

	"github.com/firmbooks/firmbooks_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to create a new firm account.
// The opening balance is fixed here and immutable afterwards.
type CreateAccountRequest struct {
	Name           string          `json:"name" binding:"required"`
	Kind           string          `json:"kind" binding:"required,oneof=cash bank"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	BankName       string          `json:"bankName"`      // Optional, bank accounts only
	BankAccountNo  string          `json:"bankAccountNo"` // Optional, bank accounts only
	Description    string          `json:"description"`   // Optional
}

// UpdateAccountRequest defines the data allowed for updating an account.
// Use pointers to distinguish between zero-value updates and fields not provided.
// Opening balance and kind are deliberately absent.
type UpdateAccountRequest struct {
	Name          *string `json:"name"`
	BankName      *string `json:"bankName"`
	BankAccountNo *string `json:"bankAccountNo"`
	Description   *string `json:"description"`
	IsActive      *bool   `json:"isActive"`
}

// AccountResponse defines the data returned for an account. CurrentBalance is
// always the fold result computed for this response, never a stored value.
type AccountResponse struct {
	AccountID      string          `json:"accountID"`
	Name           string          `json:"name"`
	Kind           string          `json:"kind"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	CurrentBalance decimal.Decimal `json:"currentBalance"`
	BankName       string          `json:"bankName"`
	BankAccountNo  string          `json:"bankAccountNo"`
	Description    string          `json:"description"`
	IsActive       bool            `json:"isActive"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// ToAccountResponse converts a domain.Account plus its folded balance to a DTO.
func ToAccountResponse(acc *domain.Account, currentBalance decimal.Decimal) AccountResponse {
	return AccountResponse{
		AccountID:      acc.AccountID,
		Name:           acc.Name,
		Kind:           string(acc.Kind),
		OpeningBalance: acc.OpeningBalance,
		CurrentBalance: currentBalance,
		BankName:       acc.BankName,
		BankAccountNo:  acc.BankAccountNo,
		Description:    acc.Description,
		IsActive:       acc.IsActive,
		CreatedAt:      acc.CreatedAt,
	}
}

// ListAccountsResponse wraps the list of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// ListAccountsParams defines query parameters for listing accounts.
type ListAccountsParams struct {
	IncludeInactive bool `form:"includeInactive,default=false"`
}
