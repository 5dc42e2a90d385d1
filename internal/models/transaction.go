package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType mirrors domain.TransactionType for DB storage.
type TransactionType string

// FirmTransaction represents the firm_transactions table row.
type FirmTransaction struct {
	TransactionID string
	AccountID     string
	PartnerID     *string
	Type          TransactionType
	Amount        decimal.Decimal
	Description   string
	TxnDate       time.Time
	AuditFields
}
