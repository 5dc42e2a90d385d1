package domain

import "time"

// EnquiryStatus tracks the follow-up state of an admission enquiry.
type EnquiryStatus string

const (
	EnquiryNew      EnquiryStatus = "new"
	EnquiryFollowUp EnquiryStatus = "follow_up"
	EnquiryAdmitted EnquiryStatus = "admitted"
	EnquiryClosed   EnquiryStatus = "closed"
)

// Enquiry is an admission enquiry record.
type Enquiry struct {
	EnquiryID    string        `json:"enquiryID"` // Primary Key (UUID)
	StudentName  string        `json:"studentName"`
	Phone        string        `json:"phone"`
	Course       string        `json:"course"`
	Status       EnquiryStatus `json:"status"`
	FollowUpDate *time.Time    `json:"followUpDate"` // Nullable
	Notes        string        `json:"notes"`
	AuditFields
}
