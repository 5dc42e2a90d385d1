package dto

import (
	"time"

	"github.com/firmbooks/firmbooks_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePartnerRequest defines the data needed to register a partner.
type CreatePartnerRequest struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone"`
	Email   string `json:"email" binding:"omitempty,email"`
	Address string `json:"address"`
}

// UpdatePartnerRequest defines the editable contact fields of a partner.
type UpdatePartnerRequest struct {
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email" binding:"omitempty,email"`
	Address *string `json:"address"`
}

// RecordPaymentRequest defines the data needed to record a partner payment.
type RecordPaymentRequest struct {
	MahajanID   *string         `json:"mahajanID"` // Optional counterparty
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	PaymentMode string          `json:"paymentMode" binding:"required,oneof=cash bank_transfer upi cheque"`
	Notes       string          `json:"notes"`
	PaymentDate string          `json:"paymentDate" binding:"required,txndate"`
}

// PartnerResponse defines the data returned for a partner.
type PartnerResponse struct {
	PartnerID     string          `json:"partnerID"`
	Name          string          `json:"name"`
	Phone         string          `json:"phone"`
	Email         string          `json:"email"`
	Address       string          `json:"address"`
	TotalInvested decimal.Decimal `json:"totalInvested"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// ToPartnerResponse converts a domain.Partner to its DTO.
func ToPartnerResponse(p *domain.Partner) PartnerResponse {
	return PartnerResponse{
		PartnerID:     p.PartnerID,
		Name:          p.Name,
		Phone:         p.Phone,
		Email:         p.Email,
		Address:       p.Address,
		TotalInvested: p.TotalInvested,
		CreatedAt:     p.CreatedAt,
	}
}

// ListPartnersResponse wraps the list of partners.
type ListPartnersResponse struct {
	Partners []PartnerResponse `json:"partners"`
}

// PaymentResponse defines the data returned for a recorded partner payment.
type PaymentResponse struct {
	TransactionID string          `json:"transactionID"`
	PartnerID     string          `json:"partnerID"`
	MahajanID     *string         `json:"mahajanID"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMode   string          `json:"paymentMode"`
	Notes         string          `json:"notes"`
	PaymentDate   string          `json:"paymentDate"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// ToPaymentResponse converts a domain.PartnerTransaction to its DTO.
func ToPaymentResponse(txn domain.PartnerTransaction) PaymentResponse {
	return PaymentResponse{
		TransactionID: txn.TransactionID,
		PartnerID:     txn.PartnerID,
		MahajanID:     txn.MahajanID,
		Amount:        txn.Amount,
		PaymentMode:   string(txn.PaymentMode),
		Notes:         txn.Notes,
		PaymentDate:   txn.PaymentDate.Format(TxnDateFormat),
		CreatedAt:     txn.CreatedAt,
	}
}
