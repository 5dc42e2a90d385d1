package models

import "time"

// Enquiry represents the enquiries table row.
type Enquiry struct {
	EnquiryID    string
	StudentName  string
	Phone        string
	Course       string
	Status       string
	FollowUpDate *time.Time
	Notes        string
	AuditFields
}
