package ports

import (
	"context"

	"github.com/firmbooks/firmbooks_backend/internal/dto"
)

// EnquirySvcFacade defines operations on admission enquiries.
type EnquirySvcFacade interface {
	CreateEnquiry(ctx context.Context, userID string, req dto.CreateEnquiryRequest) (*dto.EnquiryResponse, error)
	GetEnquiryByID(ctx context.Context, enquiryID string) (*dto.EnquiryResponse, error)
	ListEnquiries(ctx context.Context, params dto.ListEnquiriesParams) (*dto.ListEnquiriesResponse, error)
	UpdateEnquiry(ctx context.Context, userID string, enquiryID string, req dto.UpdateEnquiryRequest) (*dto.EnquiryResponse, error)
	DeleteEnquiry(ctx context.Context, userID string, enquiryID string) error
}
