package dto

import (
	"time"

	"github.com/firmbooks/firmbooks_backend/internal/core/domain"
	"github.com/firmbooks/firmbooks_backend/internal/utils/ledger"
	"github.com/shopspring/decimal"
)

// TxnDateFormat is the calendar-date layout used on the wire for transaction dates.
const TxnDateFormat = "2006-01-02"

// CreateTransactionRequest defines the data needed to record a firm transaction.
// Amount is a positive magnitude; direction comes from Type alone.
type CreateTransactionRequest struct {
	AccountID   string          `json:"accountID" binding:"required"`
	PartnerID   *string         `json:"partnerID"` // Optional counterparty linkage
	Type        string          `json:"type" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Description string          `json:"description"`
	TxnDate     string          `json:"txnDate" binding:"required,txndate"`
}

// UpdateTransactionRequest defines the editable fields of a firm transaction.
type UpdateTransactionRequest struct {
	PartnerID   *string          `json:"partnerID"`
	Type        *string          `json:"type"`
	Amount      *decimal.Decimal `json:"amount"`
	Description *string          `json:"description"`
	TxnDate     *string          `json:"txnDate" binding:"omitempty,txndate"`
}

// TransactionResponse defines the data returned for a firm transaction,
// classified for display.
type TransactionResponse struct {
	TransactionID string          `json:"transactionID"`
	AccountID     string          `json:"accountID"`
	PartnerID     *string         `json:"partnerID"`
	Type          string          `json:"type"`
	TypeLabel     string          `json:"typeLabel"`
	Amount        decimal.Decimal `json:"amount"`
	SignedAmount  decimal.Decimal `json:"signedAmount"`
	Description   string          `json:"description"`
	TxnDate       string          `json:"txnDate"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// ToTransactionResponse converts a domain.FirmTransaction to its DTO.
func ToTransactionResponse(txn domain.FirmTransaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: txn.TransactionID,
		AccountID:     txn.AccountID,
		PartnerID:     txn.PartnerID,
		Type:          string(txn.Type),
		TypeLabel:     ledger.Label(txn.Type),
		Amount:        txn.Amount,
		SignedAmount:  ledger.SignedAmount(txn),
		Description:   txn.Description,
		TxnDate:       txn.TxnDate.Format(TxnDateFormat),
		CreatedAt:     txn.CreatedAt,
	}
}

// ToTransactionResponseSlice converts a slice of firm transactions.
func ToTransactionResponseSlice(txns []domain.FirmTransaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		res[i] = ToTransactionResponse(txn)
	}
	return res
}

// ListTransactionsParams defines query parameters for an account's transaction page.
type ListTransactionsParams struct {
	Limit     int    `form:"limit,default=50"`
	NextToken string `form:"nextToken"`
}

// AccountLedgerResponse is an account with its transaction page and the
// balance freshly folded from the full transaction set.
type AccountLedgerResponse struct {
	Account        AccountResponse       `json:"account"`
	Transactions   []TransactionResponse `json:"transactions"`
	CurrentBalance decimal.Decimal       `json:"currentBalance"`
	NextToken      string                `json:"nextToken,omitempty"`
}

// MutationResponse reports the result of a transaction mutation together with
// the owning account's recomputed balance.
type MutationResponse struct {
	Transaction    *TransactionResponse `json:"transaction,omitempty"`
	AccountID      string               `json:"accountID"`
	CurrentBalance decimal.Decimal      `json:"currentBalance"`
}
