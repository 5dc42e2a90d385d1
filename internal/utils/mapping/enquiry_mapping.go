package mapping

import (
	"github.com/firmbooks/firmbooks_backend/internal/core/domain"
	"github.com/firmbooks/firmbooks_backend/internal/models"
)

// ToModelEnquiry converts a domain Enquiry to a model Enquiry
func ToModelEnquiry(d domain.Enquiry) models.Enquiry {
	return models.Enquiry{
		EnquiryID:    d.EnquiryID,
		StudentName:  d.StudentName,
		Phone:        d.Phone,
		Course:       d.Course,
		Status:       string(d.Status),
		FollowUpDate: d.FollowUpDate,
		Notes:        d.Notes,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainEnquiry converts a model Enquiry to a domain Enquiry
func ToDomainEnquiry(m models.Enquiry) domain.Enquiry {
	return domain.Enquiry{
		EnquiryID:    m.EnquiryID,
		StudentName:  m.StudentName,
		Phone:        m.Phone,
		Course:       m.Course,
		Status:       domain.EnquiryStatus(m.Status),
		FollowUpDate: m.FollowUpDate,
		Notes:        m.Notes,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelReminder converts a domain Reminder to a model Reminder
func ToModelReminder(d domain.Reminder) models.Reminder {
	return models.Reminder{
		ReminderID:  d.ReminderID,
		Title:       d.Title,
		Kind:        string(d.Kind),
		Amount:      d.Amount,
		DueDate:     d.DueDate,
		Status:      string(d.Status),
		Notes:       d.Notes,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainReminder converts a model Reminder to a domain Reminder
func ToDomainReminder(m models.Reminder) domain.Reminder {
	return domain.Reminder{
		ReminderID:  m.ReminderID,
		Title:       m.Title,
		Kind:        domain.ReminderKind(m.Kind),
		Amount:      m.Amount,
		DueDate:     m.DueDate,
		Status:      domain.ReminderStatus(m.Status),
		Notes:       m.Notes,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
