package dto

import (
	"time"

	"github.com/firmbooks/firmbooks_backend/internal/core/domain"
)

// CreateEnquiryRequest defines the data needed to record an admission enquiry.
type CreateEnquiryRequest struct {
	StudentName  string `json:"studentName" binding:"required"`
	Phone        string `json:"phone"`
	Course       string `json:"course"`
	FollowUpDate string `json:"followUpDate" binding:"omitempty,txndate"`
	Notes        string `json:"notes"`
}

// UpdateEnquiryRequest defines the editable fields of an enquiry.
type UpdateEnquiryRequest struct {
	StudentName  *string `json:"studentName"`
	Phone        *string `json:"phone"`
	Course       *string `json:"course"`
	Status       *string `json:"status" binding:"omitempty,oneof=new follow_up admitted closed"`
	FollowUpDate *string `json:"followUpDate" binding:"omitempty,txndate"`
	Notes        *string `json:"notes"`
}

// EnquiryResponse defines the data returned for an enquiry.
type EnquiryResponse struct {
	EnquiryID    string    `json:"enquiryID"`
	StudentName  string    `json:"studentName"`
	Phone        string    `json:"phone"`
	Course       string    `json:"course"`
	Status       string    `json:"status"`
	FollowUpDate *string   `json:"followUpDate"`
	Notes        string    `json:"notes"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ToEnquiryResponse converts a domain.Enquiry to its DTO.
func ToEnquiryResponse(e *domain.Enquiry) EnquiryResponse {
	var followUp *string
	if e.FollowUpDate != nil {
		formatted := e.FollowUpDate.Format(TxnDateFormat)
		followUp = &formatted
	}
	return EnquiryResponse{
		EnquiryID:    e.EnquiryID,
		StudentName:  e.StudentName,
		Phone:        e.Phone,
		Course:       e.Course,
		Status:       string(e.Status),
		FollowUpDate: followUp,
		Notes:        e.Notes,
		CreatedAt:    e.CreatedAt,
	}
}

// ListEnquiriesResponse wraps the list of enquiries.
type ListEnquiriesResponse struct {
	Enquiries []EnquiryResponse `json:"enquiries"`
}

// ListEnquiriesParams defines query parameters for listing enquiries.
type ListEnquiriesParams struct {
	Status string `form:"status" binding:"omitempty,oneof=new follow_up admitted closed"`
}
