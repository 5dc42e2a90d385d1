package domain

import (
	"github.com/shopspring/decimal"
)

// AccountKind distinguishes a cash box from a named bank account.
type AccountKind string

const (
	Cash AccountKind = "cash"
	Bank AccountKind = "bank"
)

// Account represents a firm ledger account (cash or bank) within the core domain.
// The current balance is intentionally absent: it is always derived by folding
// the account's transactions over OpeningBalance, never read from storage.
type Account struct {
	AccountID      string          `json:"accountID"` // Primary Key (UUID)
	Name           string          `json:"name"`
	Kind           AccountKind     `json:"kind"`
	OpeningBalance decimal.Decimal `json:"openingBalance"` // Fixed at creation, immutable
	BankName       string          `json:"bankName"`       // Optional, bank accounts only
	BankAccountNo  string          `json:"bankAccountNo"`  // Optional, bank accounts only
	Description    string          `json:"description"`
	IsActive       bool            `json:"isActive"` // Soft-disable; history stays intact
	AuditFields
}
