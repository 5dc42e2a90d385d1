package dto

import (
	"time"

	"github.com/firmbooks/firmbooks_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// StatementEntryResponse is a single row of the merged partner statement.
type StatementEntryResponse struct {
	EntryID      string          `json:"entryID"`
	Source       string          `json:"source"`
	Date         string          `json:"date"`
	Amount       decimal.Decimal `json:"amount"`
	SignedAmount decimal.Decimal `json:"signedAmount"`
	TypeLabel    string          `json:"typeLabel"`
	PaymentMode  string          `json:"paymentMode"`
	Counterparty string          `json:"counterparty"`
	Notes        string          `json:"notes"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// ToStatementEntryResponse converts a normalized statement entry to its DTO.
func ToStatementEntryResponse(e domain.StatementEntry) StatementEntryResponse {
	return StatementEntryResponse{
		EntryID:      e.EntryID,
		Source:       string(e.Source),
		Date:         e.Date.Format(TxnDateFormat),
		Amount:       e.Amount,
		SignedAmount: e.SignedAmount,
		TypeLabel:    e.TypeLabel,
		PaymentMode:  string(e.PaymentMode),
		Counterparty: e.Counterparty,
		Notes:        e.Notes,
		CreatedAt:    e.CreatedAt,
	}
}

// PartnerStatementResponse is the merged chronological statement for a partner.
type PartnerStatementResponse struct {
	Partner PartnerResponse          `json:"partner"`
	Entries []StatementEntryResponse `json:"entries"`
}
