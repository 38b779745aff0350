package ports

import (
	"context"

	"github.com/hostelhub/hostel-api/internal/core/domain"
)

// RegistrationInput carries an event registration form submission.
type RegistrationInput struct {
	FullName  string
	Email     string
	Phone     string
	Gender    string
	EventType string
	Comment   string
}

// EventRepository defines persistence for event registrations.
type EventRepository interface {
	Create(ctx context.Context, r *domain.EventRegistration) (*domain.EventRegistration, error)
	// ListAll returns registrations ordered by creation time, newest first.
	ListAll(ctx context.Context) ([]*domain.EventRegistration, error)
}

// RegistrationService handles event sign-ups and the public listing.
type RegistrationService interface {
	Register(ctx context.Context, input RegistrationInput) (*domain.EventRegistration, error)
	List(ctx context.Context) ([]*domain.EventRegistration, error)
}
