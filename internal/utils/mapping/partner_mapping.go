package mapping

import (
	"github.com/firmbooks/firmbooks_backend/internal/core/domain"
	"github.com/firmbooks/firmbooks_backend/internal/models"
)

// ToModelPartner converts a domain Partner to a model Partner
func ToModelPartner(d domain.Partner) models.Partner {
	return models.Partner{
		PartnerID:     d.PartnerID,
		Name:          d.Name,
		Phone:         d.Phone,
		Email:         d.Email,
		Address:       d.Address,
		TotalInvested: d.TotalInvested,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPartner converts a model Partner to a domain Partner
func ToDomainPartner(m models.Partner) domain.Partner {
	return domain.Partner{
		PartnerID:     m.PartnerID,
		Name:          m.Name,
		Phone:         m.Phone,
		Email:         m.Email,
		Address:       m.Address,
		TotalInvested: m.TotalInvested,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainMahajan converts a model Mahajan to a domain Mahajan
func ToDomainMahajan(m models.Mahajan) domain.Mahajan {
	return domain.Mahajan{
		MahajanID:   m.MahajanID,
		Name:        m.Name,
		Phone:       m.Phone,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
