package repositories

import (
	"context"

	"github.com/firmbooks/firmbooks_backend/internal/core/domain"
)

// EnquiryRepositoryFacade defines operations on admission enquiries.
type EnquiryRepositoryFacade interface {
	SaveEnquiry(ctx context.Context, enquiry domain.Enquiry) error
	FindEnquiryByID(ctx context.Context, enquiryID string) (*domain.Enquiry, error)
	ListEnquiries(ctx context.Context, status string) ([]domain.Enquiry, error)
	UpdateEnquiry(ctx context.Context, enquiry domain.Enquiry) error
	DeleteEnquiry(ctx context.Context, enquiryID string) error
}
