package mapping

import (
	"github.com/firmbooks/firmbooks_backend/internal/core/domain"
	"github.com/firmbooks/firmbooks_backend/internal/models"
)

// ToModelFirmTransaction converts a domain FirmTransaction to a model FirmTransaction
func ToModelFirmTransaction(d domain.FirmTransaction) models.FirmTransaction {
	return models.FirmTransaction{
		TransactionID: d.TransactionID,
		AccountID:     d.AccountID,
		PartnerID:     d.PartnerID,
		Type:          models.TransactionType(d.Type),
		Amount:        d.Amount,
		Description:   d.Description,
		TxnDate:       d.TxnDate,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainFirmTransaction converts a model FirmTransaction to a domain FirmTransaction
func ToDomainFirmTransaction(m models.FirmTransaction) domain.FirmTransaction {
	return domain.FirmTransaction{
		TransactionID: m.TransactionID,
		AccountID:     m.AccountID,
		PartnerID:     m.PartnerID,
		Type:          domain.TransactionType(m.Type),
		Amount:        m.Amount,
		Description:   m.Description,
		TxnDate:       m.TxnDate,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainFirmTransactionSlice converts a slice of model FirmTransactions to domain
func ToDomainFirmTransactionSlice(ms []models.FirmTransaction) []domain.FirmTransaction {
	ds := make([]domain.FirmTransaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainFirmTransaction(m)
	}
	return ds
}

// ToModelPartnerTransaction converts a domain PartnerTransaction to a model PartnerTransaction
func ToModelPartnerTransaction(d domain.PartnerTransaction) models.PartnerTransaction {
	return models.PartnerTransaction{
		TransactionID: d.TransactionID,
		PartnerID:     d.PartnerID,
		MahajanID:     d.MahajanID,
		Amount:        d.Amount,
		PaymentMode:   string(d.PaymentMode),
		Notes:         d.Notes,
		PaymentDate:   d.PaymentDate,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPartnerTransaction converts a model PartnerTransaction to a domain PartnerTransaction
func ToDomainPartnerTransaction(m models.PartnerTransaction) domain.PartnerTransaction {
	return domain.PartnerTransaction{
		TransactionID: m.TransactionID,
		PartnerID:     m.PartnerID,
		MahajanID:     m.MahajanID,
		Amount:        m.Amount,
		PaymentMode:   domain.PaymentMode(m.PaymentMode),
		Notes:         m.Notes,
		PaymentDate:   m.PaymentDate,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainPartnerTransactionSlice converts a slice of model PartnerTransactions to domain
func ToDomainPartnerTransactionSlice(ms []models.PartnerTransaction) []domain.PartnerTransaction {
	ds := make([]domain.PartnerTransaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPartnerTransaction(m)
	}
	return ds
}
