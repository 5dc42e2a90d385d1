package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatementSource identifies which table a statement entry came from.
type StatementSource string

const (
	SourceFirm    StatementSource = "firm"
	SourcePartner StatementSource = "partner"
)

// StatementEntry is the uniform shape firm and partner transactions are
// normalized into for the merged partner statement.
type StatementEntry struct {
	EntryID      string          `json:"entryID"`
	Source       StatementSource `json:"source"`
	Date         time.Time       `json:"date"`
	Amount       decimal.Decimal `json:"amount"`       // Positive magnitude
	SignedAmount decimal.Decimal `json:"signedAmount"` // Amount with the type-derived sign applied
	TypeLabel    string          `json:"typeLabel"`
	PaymentMode  PaymentMode     `json:"paymentMode"`
	Counterparty string          `json:"counterparty"`
	Notes        string          `json:"notes"`
	CreatedAt    time.Time       `json:"createdAt"`
}
