package ports

import (
	"context"

	"github.com/hostelhub/hostel-api/internal/core/domain"
)

// ComplaintInput carries a complaint form submission.
type ComplaintInput struct {
	Name          string
	Email         string
	ComplaintType string
	Description   string
}

// ContactInput carries a contact form submission.
type ContactInput struct {
	Name    string
	Email   string
	Message string
}

type ComplaintRepository interface {
	Create(ctx context.Context, c *domain.Complaint) (*domain.Complaint, error)
	ListAll(ctx context.Context) ([]*domain.Complaint, error)
}

type ContactRepository interface {
	Create(ctx context.Context, m *domain.ContactMessage) (*domain.ContactMessage, error)
	ListAll(ctx context.Context) ([]*domain.ContactMessage, error)
}

// FeedbackService persists complaints and contact messages.
type FeedbackService interface {
	FileComplaint(ctx context.Context, input ComplaintInput) (*domain.Complaint, error)
	SendContactMessage(ctx context.Context, input ContactInput) (*domain.ContactMessage, error)
}
