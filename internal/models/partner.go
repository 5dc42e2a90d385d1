package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Partner represents the partners table row.
type Partner struct {
	PartnerID     string
	Name          string
	Phone         string
	Email         string
	Address       string
	TotalInvested decimal.Decimal
	AuditFields
}

// Mahajan represents the mahajans table row.
type Mahajan struct {
	MahajanID string
	Name      string
	Phone     string
	AuditFields
}

// PartnerTransaction represents the partner_transactions table row.
type PartnerTransaction struct {
	TransactionID string
	PartnerID     string
	MahajanID     *string
	Amount        decimal.Decimal
	PaymentMode   string
	Notes         string
	PaymentDate   time.Time
	AuditFields
}
