package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Partner represents an investor/stakeholder of the firm.
// TotalInvested is an accumulated figure maintained by payment recording,
// not folded from a full transaction scan the way account balances are.
type Partner struct {
	PartnerID     string          `json:"partnerID"` // Primary Key (UUID)
	Name          string          `json:"name"`
	Phone         string          `json:"phone"`   // Optional
	Email         string          `json:"email"`   // Optional
	Address       string          `json:"address"` // Optional
	TotalInvested decimal.Decimal `json:"totalInvested"`
	AuditFields
}

// Mahajan is an external counterparty (vendor/lender) referenced by partner
// payments. Firm transactions mention mahajans in free text only.
type Mahajan struct {
	MahajanID string `json:"mahajanID"` // Primary Key (UUID)
	Name      string `json:"name"`
	Phone     string `json:"phone"` // Optional
	AuditFields
}

// PaymentMode tags how a partner payment was settled.
type PaymentMode string

const (
	ModeCash         PaymentMode = "cash"
	ModeBankTransfer PaymentMode = "bank_transfer"
	ModeUPI          PaymentMode = "upi"
	ModeCheque       PaymentMode = "cheque"
)

// PartnerTransaction is a payment recorded against a partner, optionally
// directed at a mahajan.
type PartnerTransaction struct {
	TransactionID string          `json:"transactionID"` // Primary Key (UUID)
	PartnerID     string          `json:"partnerID"`     // FK -> partners (Not Null)
	MahajanID     *string         `json:"mahajanID"`     // Nullable FK -> mahajans
	Amount        decimal.Decimal `json:"amount"`        // Positive magnitude
	PaymentMode   PaymentMode     `json:"paymentMode"`
	Notes         string          `json:"notes"`
	PaymentDate   time.Time       `json:"paymentDate"`
	AuditFields
}
