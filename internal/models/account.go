package models

import "github.com/shopspring/decimal"

// AccountKind mirrors domain.AccountKind for DB storage.
type AccountKind string

// Account represents the accounts table row. Note there is no balance
// column: balances exist only as fold results over transactions.
type Account struct {
	AccountID      string
	Name           string
	Kind           AccountKind
	OpeningBalance decimal.Decimal
	BankName       string
	BankAccountNo  string
	Description    string
	IsActive       bool
	AuditFields
}
