package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType tags a firm transaction; the tag alone encodes direction.
type TransactionType string

const (
	PartnerDeposit    TransactionType = "partner_deposit"
	PartnerWithdrawal TransactionType = "partner_withdrawal"
	Expense           TransactionType = "expense"
	Income            TransactionType = "income"
	Adjustment        TransactionType = "adjustment"
)

// FirmTransaction is a single movement on a firm account.
// Amount is always a positive magnitude; the sign is derived from Type.
type FirmTransaction struct {
	TransactionID string          `json:"transactionID"` // Primary Key (UUID)
	AccountID     string          `json:"accountID"`     // FK -> accounts (Not Null)
	PartnerID     *string         `json:"partnerID"`     // Nullable FK -> partners; nil means the counterparty is not a partner
	Type          TransactionType `json:"type"`
	Amount        decimal.Decimal `json:"amount"` // Positive magnitude
	Description   string          `json:"description"`
	TxnDate       time.Time       `json:"txnDate"` // Calendar date, distinct from CreatedAt
	AuditFields
}

// Validate checks structural invariants of a firm transaction.
func (t FirmTransaction) Validate() error {
	if t.AccountID == "" {
		return fmt.Errorf("transaction must reference an account")
	}
	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("transaction amount must be positive, got %s", t.Amount)
	}
	if t.TxnDate.IsZero() {
		return fmt.Errorf("transaction date is required")
	}
	return nil
}
